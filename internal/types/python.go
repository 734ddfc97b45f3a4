package types

import (
	"fmt"
	"strconv"
	"strings"
)

// PythonVersion is a target interpreter version such as 3.12 or 3.11.4.
type PythonVersion struct {
	Major, Minor int
	Patch        *int
}

// ParsePythonVersion parses MAJOR.MINOR or MAJOR.MINOR.PATCH. Pre-releases,
// local versions and other PEP 440 suffixes are rejected.
func ParsePythonVersion(s string) (PythonVersion, error) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) < 2 || len(parts) > 3 {
		return PythonVersion{}, fmt.Errorf("invalid python version %q: expected MAJOR.MINOR or MAJOR.MINOR.PATCH", s)
	}
	nums := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 || p == "" || p[0] == '+' {
			return PythonVersion{}, fmt.Errorf("invalid python version %q: %q is not a release number", s, p)
		}
		nums[i] = n
	}
	v := PythonVersion{Major: nums[0], Minor: nums[1]}
	if len(nums) == 3 {
		v.Patch = &nums[2]
	}
	return v, nil
}

func (v PythonVersion) String() string {
	if v.Patch != nil {
		return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, *v.Patch)
	}
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

func (v PythonVersion) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

func (v *PythonVersion) UnmarshalText(b []byte) error {
	p, err := ParsePythonVersion(string(b))
	if err != nil {
		return err
	}
	*v = p
	return nil
}
