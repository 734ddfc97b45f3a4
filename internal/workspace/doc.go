// Package workspace locates the uv configuration that applies to a path.
// It walks the path's ancestors nearest-first and returns the first
// directory holding a uv.toml, or a pyproject.toml with a [tool.uv] table,
// together with the options parsed from it.
package workspace
