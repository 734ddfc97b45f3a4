package types

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

// PyPIURL is the simple API root of the public Python Package Index.
const PyPIURL = "https://pypi.org/simple"

// IndexURL is the base URL of a package index using the simple API.
type IndexURL struct {
	u *url.URL
}

// ParseIndexURL parses an absolute index URL.
func ParseIndexURL(s string) (IndexURL, error) {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return IndexURL{}, fmt.Errorf("invalid index URL %q: %w", s, err)
	}
	switch u.Scheme {
	case "http", "https":
		if u.Host == "" {
			return IndexURL{}, fmt.Errorf("invalid index URL %q: missing host", s)
		}
	case "file":
	case "":
		return IndexURL{}, fmt.Errorf("invalid index URL %q: relative URL without a scheme", s)
	default:
		return IndexURL{}, fmt.Errorf("invalid index URL %q: unsupported scheme %q", s, u.Scheme)
	}
	return IndexURL{u: u}, nil
}

// URL returns a copy of the underlying URL.
func (i IndexURL) URL() *url.URL {
	if i.u == nil {
		return nil
	}
	c := *i.u
	return &c
}

// IsPyPI reports whether the URL points at the public PyPI index.
func (i IndexURL) IsPyPI() bool {
	if i.u == nil {
		return false
	}
	return strings.TrimSuffix(i.u.String(), "/") == PyPIURL
}

func (i IndexURL) String() string {
	if i.u == nil {
		return ""
	}
	return i.u.String()
}

func (i IndexURL) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

func (i *IndexURL) UnmarshalText(b []byte) error {
	v, err := ParseIndexURL(string(b))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

// FlatIndexLocation is a --find-links entry: either a remote URL serving a
// flat HTML listing or a local directory of distributions.
type FlatIndexLocation struct {
	url  *url.URL
	path string
}

// ParseFlatIndexLocation parses a find-links entry. file:// URLs and values
// without an http(s) scheme are treated as local paths.
func ParseFlatIndexLocation(s string) (FlatIndexLocation, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return FlatIndexLocation{}, fmt.Errorf("invalid find-links location: empty value")
	}
	if rest, ok := strings.CutPrefix(s, "file://"); ok {
		if rest == "" {
			return FlatIndexLocation{}, fmt.Errorf("invalid find-links location %q: empty path", s)
		}
		return FlatIndexLocation{path: filepath.FromSlash(rest)}, nil
	}
	if u, err := url.Parse(s); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		if u.Host == "" {
			return FlatIndexLocation{}, fmt.Errorf("invalid find-links location %q: missing host", s)
		}
		return FlatIndexLocation{url: u}, nil
	}
	return FlatIndexLocation{path: filepath.FromSlash(s)}, nil
}

// IsPath reports whether the location refers to the local filesystem.
func (f FlatIndexLocation) IsPath() bool { return f.url == nil }

// Path returns the local path, or "" for a URL location.
func (f FlatIndexLocation) Path() string { return f.path }

func (f FlatIndexLocation) String() string {
	if f.url != nil {
		return f.url.String()
	}
	return f.path
}

func (f FlatIndexLocation) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

func (f *FlatIndexLocation) UnmarshalText(b []byte) error {
	v, err := ParseFlatIndexLocation(string(b))
	if err != nil {
		return err
	}
	*f = v
	return nil
}
