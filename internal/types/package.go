package types

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	validName  = regexp.MustCompile(`(?i)^([a-z0-9]|[a-z0-9][a-z0-9._-]*[a-z0-9])$`)
	separators = regexp.MustCompile(`[-_.]+`)
)

// PackageName is a distribution name normalized per PEP 503.
type PackageName string

// ParsePackageName validates a PEP 508 name and returns its normalized form.
func ParsePackageName(s string) (PackageName, error) {
	if !validName.MatchString(s) {
		return "", fmt.Errorf("invalid package name: %q", s)
	}
	return PackageName(separators.ReplaceAllString(strings.ToLower(s), "-")), nil
}

func (n PackageName) String() string { return string(n) }

func (n PackageName) MarshalText() ([]byte, error) { return []byte(n), nil }

func (n *PackageName) UnmarshalText(b []byte) error {
	v, err := ParsePackageName(string(b))
	if err != nil {
		return err
	}
	*n = v
	return nil
}

// Keywords accepted by --no-binary and --only-binary.
const (
	SpecifierAll  = ":all:"
	SpecifierNone = ":none:"
)

// PackageNameSpecifier selects packages for binary/source policies: every
// package, no package, or a single named package.
type PackageNameSpecifier struct {
	keyword string
	name    PackageName
}

// ParsePackageNameSpecifier parses ":all:", ":none:" or a package name.
func ParsePackageNameSpecifier(s string) (PackageNameSpecifier, error) {
	switch s {
	case SpecifierAll, SpecifierNone:
		return PackageNameSpecifier{keyword: s}, nil
	}
	name, err := ParsePackageName(s)
	if err != nil {
		return PackageNameSpecifier{}, fmt.Errorf("invalid package specifier %q: expected %s, %s, or a package name", s, SpecifierAll, SpecifierNone)
	}
	return PackageNameSpecifier{name: name}, nil
}

// All reports whether the specifier is ":all:".
func (p PackageNameSpecifier) All() bool { return p.keyword == SpecifierAll }

// None reports whether the specifier is ":none:".
func (p PackageNameSpecifier) None() bool { return p.keyword == SpecifierNone }

// Package returns the named package, or "" for a keyword specifier.
func (p PackageNameSpecifier) Package() PackageName { return p.name }

func (p PackageNameSpecifier) String() string {
	if p.keyword != "" {
		return p.keyword
	}
	return string(p.name)
}

func (p PackageNameSpecifier) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

func (p *PackageNameSpecifier) UnmarshalText(b []byte) error {
	v, err := ParsePackageNameSpecifier(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}
