package types

import (
	"fmt"
	"strings"
	"time"
)

// Timestamp is an instant in UTC, used as the exclude-newer cutoff.
type Timestamp struct {
	time.Time
}

// ParseTimestamp accepts an RFC 3339 date-time with an offset or a plain
// calendar date, which is read as midnight UTC.
func ParseTimestamp(s string) (Timestamp, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return Timestamp{t.UTC()}, nil
	}
	// TOML allows a space or lowercase t between date and time, and a
	// lowercase z suffix.
	if len(s) > 10 && (s[10] == ' ' || s[10] == 't') {
		s = s[:10] + "T" + s[11:]
	}
	if strings.HasSuffix(s, "z") {
		s = s[:len(s)-1] + "Z"
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return Timestamp{}, fmt.Errorf("invalid timestamp %q: expected RFC 3339 date-time with offset or YYYY-MM-DD", s)
	}
	return Timestamp{t.UTC()}, nil
}

func (t Timestamp) String() string { return t.Time.Format(time.RFC3339Nano) }

func (t Timestamp) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *Timestamp) UnmarshalText(b []byte) error {
	v, err := ParseTimestamp(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
