// Package settings defines the uv option schema and decodes it from
// uv.toml documents and the [tool.uv] table of pyproject.toml.
//
// Decoding is strict: unknown keys are rejected at every tier. Absent
// keys stay nil; this package never fills in defaults.
package settings
