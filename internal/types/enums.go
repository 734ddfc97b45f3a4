package types

import "fmt"

// ResolutionMode selects which versions the resolver prefers.
type ResolutionMode string

const (
	ResolutionHighest      ResolutionMode = "highest"
	ResolutionLowest       ResolutionMode = "lowest"
	ResolutionLowestDirect ResolutionMode = "lowest-direct"
)

// ParseResolutionMode parses a resolution mode token.
func ParseResolutionMode(s string) (ResolutionMode, error) {
	switch ResolutionMode(s) {
	case ResolutionHighest, ResolutionLowest, ResolutionLowestDirect:
		return ResolutionMode(s), nil
	default:
		return "", fmt.Errorf("unknown resolution mode: %q (must be highest, lowest, or lowest-direct)", s)
	}
}

func (m ResolutionMode) MarshalText() ([]byte, error) { return []byte(m), nil }

func (m *ResolutionMode) UnmarshalText(b []byte) error {
	v, err := ParseResolutionMode(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// PreReleaseMode controls when pre-release versions are eligible.
type PreReleaseMode string

const (
	PreReleaseDisallow              PreReleaseMode = "disallow"
	PreReleaseAllow                 PreReleaseMode = "allow"
	PreReleaseIfNecessary           PreReleaseMode = "if-necessary"
	PreReleaseExplicit              PreReleaseMode = "explicit"
	PreReleaseIfNecessaryOrExplicit PreReleaseMode = "if-necessary-or-explicit"
)

// ParsePreReleaseMode parses a pre-release policy token.
func ParsePreReleaseMode(s string) (PreReleaseMode, error) {
	switch PreReleaseMode(s) {
	case PreReleaseDisallow, PreReleaseAllow, PreReleaseIfNecessary,
		PreReleaseExplicit, PreReleaseIfNecessaryOrExplicit:
		return PreReleaseMode(s), nil
	default:
		return "", fmt.Errorf("unknown prerelease mode: %q (must be disallow, allow, if-necessary, explicit, or if-necessary-or-explicit)", s)
	}
}

func (m PreReleaseMode) MarshalText() ([]byte, error) { return []byte(m), nil }

func (m *PreReleaseMode) UnmarshalText(b []byte) error {
	v, err := ParsePreReleaseMode(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// AnnotationStyle is how "via" annotations are rendered in compiled output.
type AnnotationStyle string

const (
	AnnotationLine  AnnotationStyle = "line"
	AnnotationSplit AnnotationStyle = "split"
)

// ParseAnnotationStyle parses an annotation style token.
func ParseAnnotationStyle(s string) (AnnotationStyle, error) {
	switch AnnotationStyle(s) {
	case AnnotationLine, AnnotationSplit:
		return AnnotationStyle(s), nil
	default:
		return "", fmt.Errorf("unknown annotation style: %q (must be line or split)", s)
	}
}

func (a AnnotationStyle) MarshalText() ([]byte, error) { return []byte(a), nil }

func (a *AnnotationStyle) UnmarshalText(b []byte) error {
	v, err := ParseAnnotationStyle(string(b))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// IndexStrategy decides how packages are looked up across several indexes.
type IndexStrategy string

const (
	// IndexFirstIndex only considers the first index that has the package.
	IndexFirstIndex IndexStrategy = "first-index"
	// IndexUnsafeAnyMatch merges versions from every index.
	IndexUnsafeAnyMatch IndexStrategy = "unsafe-any-match"
)

// ParseIndexStrategy parses an index strategy token.
func ParseIndexStrategy(s string) (IndexStrategy, error) {
	switch IndexStrategy(s) {
	case IndexFirstIndex, IndexUnsafeAnyMatch:
		return IndexStrategy(s), nil
	default:
		return "", fmt.Errorf("unknown index strategy: %q (must be first-index or unsafe-any-match)", s)
	}
}

func (s IndexStrategy) MarshalText() ([]byte, error) { return []byte(s), nil }

func (s *IndexStrategy) UnmarshalText(b []byte) error {
	v, err := ParseIndexStrategy(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// KeyringProvider selects how index credentials are looked up.
type KeyringProvider string

const (
	KeyringDisabled   KeyringProvider = "disabled"
	KeyringSubprocess KeyringProvider = "subprocess"
)

// ParseKeyringProvider parses a keyring provider token.
func ParseKeyringProvider(s string) (KeyringProvider, error) {
	switch KeyringProvider(s) {
	case KeyringDisabled, KeyringSubprocess:
		return KeyringProvider(s), nil
	default:
		return "", fmt.Errorf("unknown keyring provider: %q (must be disabled or subprocess)", s)
	}
}

func (k KeyringProvider) MarshalText() ([]byte, error) { return []byte(k), nil }

func (k *KeyringProvider) UnmarshalText(b []byte) error {
	v, err := ParseKeyringProvider(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// LinkMode is how installed files are placed into an environment.
type LinkMode string

const (
	LinkClone    LinkMode = "clone"
	LinkCopy     LinkMode = "copy"
	LinkHardlink LinkMode = "hardlink"
	LinkSymlink  LinkMode = "symlink"
)

// ParseLinkMode parses a link mode token.
func ParseLinkMode(s string) (LinkMode, error) {
	switch LinkMode(s) {
	case LinkClone, LinkCopy, LinkHardlink, LinkSymlink:
		return LinkMode(s), nil
	default:
		return "", fmt.Errorf("unknown link mode: %q (must be clone, copy, hardlink, or symlink)", s)
	}
}

func (l LinkMode) MarshalText() ([]byte, error) { return []byte(l), nil }

func (l *LinkMode) UnmarshalText(b []byte) error {
	v, err := ParseLinkMode(string(b))
	if err != nil {
		return err
	}
	*l = v
	return nil
}
