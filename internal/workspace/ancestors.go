package workspace

import (
	"iter"
	"path/filepath"
)

// Ancestors yields path itself and then each parent directory up to and
// including the filesystem root. The path is cleaned but not made absolute
// and is never touched on disk. Each call returns a fresh sequence.
func Ancestors(path string) iter.Seq[string] {
	return func(yield func(string) bool) {
		dir := filepath.Clean(path)
		for {
			if !yield(dir) {
				return
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				return
			}
			dir = parent
		}
	}
}
