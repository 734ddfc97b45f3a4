// Package types defines the validated value types stored in the option
// schema: index locations, package names and specifiers, resolver and
// installer enumerations, interpreter versions and timestamps.
//
// Every type implements encoding.TextUnmarshaler so invalid values are
// rejected while a configuration document is decoded, and
// encoding.TextMarshaler so a parsed tree can be rendered back.
package types
