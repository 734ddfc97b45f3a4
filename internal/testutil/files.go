package testutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
)

// WriteFile writes content to dir/rel, creating parent directories.
// Returns the full path.
func WriteFile(t *testing.T, dir, rel, content string) string {
	t.Helper()
	path := filepath.Join(dir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil { //nolint:gosec // test file
		t.Fatal(err)
	}
	return path
}

// Mkdir creates dir/rel and any missing parents. Returns the full path.
func Mkdir(t *testing.T, dir, rel string) string {
	t.Helper()
	path := filepath.Join(dir, rel)
	if err := os.MkdirAll(path, 0755); err != nil {
		t.Fatal(err)
	}
	return path
}

// MapReader serves absolute slash-separated paths from an in-memory tree,
// so a search can cover the whole ancestor chain up to "/".
func MapReader(fsys fstest.MapFS) func(string) ([]byte, error) {
	return func(name string) ([]byte, error) {
		rel := strings.TrimPrefix(filepath.ToSlash(name), "/")
		return fs.ReadFile(fsys, rel)
	}
}

// MapStat describes absolute slash-separated paths in an in-memory tree.
func MapStat(fsys fstest.MapFS) func(string) (fs.FileInfo, error) {
	return func(name string) (fs.FileInfo, error) {
		rel := strings.TrimPrefix(filepath.ToSlash(name), "/")
		if rel == "" {
			rel = "."
		}
		return fs.Stat(fsys, rel)
	}
}

// FailingReader returns err for path and defers every other read to next.
func FailingReader(path string, err error, next func(string) ([]byte, error)) func(string) ([]byte, error) {
	return func(name string) ([]byte, error) {
		if name == path {
			return nil, err
		}
		return next(name)
	}
}
