package workspace

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/musicinmybrain/uv/internal/settings"
)

// File names probed in every directory, in order of precedence.
const (
	ConfigFileName    = "uv.toml"
	PyProjectFileName = "pyproject.toml"
)

// Workspace pairs the options that apply to a path with the directory that
// supplied them.
type Workspace struct {
	options *settings.Options
	root    string
}

// Options returns a copy of the parsed option tree. Unset fields are nil.
func (w *Workspace) Options() settings.Options { return *w.options.Clone() }

// Root returns the absolute directory the options were read from.
func (w *Workspace) Root() string { return w.root }

// Finder searches for workspaces. The zero value reads from the local
// filesystem and logs nothing.
type Finder struct {
	// ReadFile reads a whole file. Missing files must be reported with an
	// error matching fs.ErrNotExist. Defaults to os.ReadFile.
	ReadFile func(name string) ([]byte, error)
	// Logger receives debug records for each probed source.
	Logger *slog.Logger
	// Stat describes the start path. Defaults to os.Stat.
	Stat func(name string) (fs.FileInfo, error)
}

// Find resolves the workspace for path using the local filesystem.
func Find(path string) (*Workspace, error) {
	var f Finder
	return f.Find(path)
}

// Find walks path and its ancestors, nearest first, and returns the
// workspace of the first directory that declares uv options. It returns
// nil and no error when no ancestor does. A read or parse failure stops the
// search immediately. When path names a regular file the search starts at
// the directory containing it.
func (f *Finder) Find(path string) (*Workspace, error) {
	start, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}

	if info, err := f.stat(start); err == nil && info.Mode().IsRegular() {
		start = filepath.Dir(start)
	}

	log := f.logger()
	for dir := range Ancestors(start) {
		opts, err := f.ReadOptions(dir)
		if err != nil {
			return nil, err
		}
		if opts != nil {
			log.Debug("found workspace", "root", dir)
			return &Workspace{options: opts, root: dir}, nil
		}
	}

	log.Debug("no workspace found", "start", start)
	return nil, nil
}

// ReadOptions reads the options declared in dir itself. A uv.toml takes
// precedence; pyproject.toml is only consulted when uv.toml does not exist.
// It returns nil options when dir declares none.
func (f *Finder) ReadOptions(dir string) (*settings.Options, error) {
	log := f.logger()

	path := filepath.Join(dir, ConfigFileName)
	data, err := f.read(path)
	switch {
	case err == nil:
		log.Debug("reading options", "path", path)
		opts, err := settings.Parse(data)
		if err != nil {
			return nil, &ParseError{Path: path, Err: err}
		}
		return opts, nil
	case !isNotExist(err):
		return nil, &ReadError{Path: path, Err: err}
	}

	path = filepath.Join(dir, PyProjectFileName)
	data, err = f.read(path)
	switch {
	case err == nil:
		opts, err := settings.ParsePyProject(data)
		if err != nil {
			return nil, &ParseError{Path: path, Err: err}
		}
		if opts == nil {
			log.Debug("no [tool.uv] table", "path", path)
			return nil, nil
		}
		log.Debug("reading options", "path", path)
		return opts, nil
	case !isNotExist(err):
		return nil, &ReadError{Path: path, Err: err}
	}

	return nil, nil
}

// LoadFile parses a single configuration file, choosing the pyproject.toml
// decoder by file name. It returns nil options for a pyproject.toml without
// a [tool.uv] table.
func (f *Finder) LoadFile(path string) (*settings.Options, error) {
	data, err := f.read(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	parse := settings.Parse
	if filepath.Base(path) == PyProjectFileName {
		parse = settings.ParsePyProject
	}
	opts, err := parse(data)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return opts, nil
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

func (f *Finder) stat(path string) (fs.FileInfo, error) {
	if f.Stat != nil {
		return f.Stat(path)
	}
	return os.Stat(path)
}

func (f *Finder) read(path string) ([]byte, error) {
	if f.ReadFile != nil {
		return f.ReadFile(path)
	}
	return os.ReadFile(path) //nolint:gosec // configuration path derived from the search start
}

func (f *Finder) logger() *slog.Logger {
	if f.Logger != nil {
		return f.Logger
	}
	return slog.New(slog.DiscardHandler)
}
