package types

import "testing"

func TestParseResolutionMode(t *testing.T) {
	tests := []struct {
		input string
		want  ResolutionMode
		err   bool
	}{
		{"highest", ResolutionHighest, false},
		{"lowest", ResolutionLowest, false},
		{"lowest-direct", ResolutionLowestDirect, false},
		{"Highest", "", true},
		{"lowest_direct", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseResolutionMode(tt.input)
			if (err != nil) != tt.err {
				t.Errorf("ParseResolutionMode(%q) error = %v, wantErr %v", tt.input, err, tt.err)
			}
			if got != tt.want {
				t.Errorf("ParseResolutionMode(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParsePreReleaseMode(t *testing.T) {
	for _, ok := range []string{"disallow", "allow", "if-necessary", "explicit", "if-necessary-or-explicit"} {
		if _, err := ParsePreReleaseMode(ok); err != nil {
			t.Errorf("ParsePreReleaseMode(%q) unexpected error: %v", ok, err)
		}
	}
	if _, err := ParsePreReleaseMode("sometimes"); err == nil {
		t.Error("expected error for unknown prerelease mode")
	}
}

func TestEnumUnmarshalText(t *testing.T) {
	var a AnnotationStyle
	if err := a.UnmarshalText([]byte("split")); err != nil || a != AnnotationSplit {
		t.Errorf("AnnotationStyle = %q, %v", a, err)
	}
	if err := a.UnmarshalText([]byte("column")); err == nil {
		t.Error("expected error for unknown annotation style")
	}
	if a != AnnotationSplit {
		t.Error("failed unmarshal must not modify the receiver")
	}

	var s IndexStrategy
	if err := s.UnmarshalText([]byte("unsafe-any-match")); err != nil || s != IndexUnsafeAnyMatch {
		t.Errorf("IndexStrategy = %q, %v", s, err)
	}
	if err := s.UnmarshalText([]byte("any")); err == nil {
		t.Error("expected error for unknown index strategy")
	}

	var k KeyringProvider
	if err := k.UnmarshalText([]byte("subprocess")); err != nil || k != KeyringSubprocess {
		t.Errorf("KeyringProvider = %q, %v", k, err)
	}
	if err := k.UnmarshalText([]byte("import")); err == nil {
		t.Error("expected error for unknown keyring provider")
	}

	var l LinkMode
	for _, ok := range []string{"clone", "copy", "hardlink", "symlink"} {
		if err := l.UnmarshalText([]byte(ok)); err != nil {
			t.Errorf("LinkMode(%q) unexpected error: %v", ok, err)
		}
	}
	if err := l.UnmarshalText([]byte("reflink")); err == nil {
		t.Error("expected error for unknown link mode")
	}
}
