package types

import (
	"fmt"
	"sort"
)

// ConfigSettings are key/value pairs forwarded to PEP 517 build backends.
// Each value is a string or a list of strings. Decoders fill the map
// generically; Validate checks and normalizes the value shapes.
type ConfigSettings map[string]any

// Validate converts list values to []string and rejects anything that is
// neither a string nor a list of strings.
func (c ConfigSettings) Validate() error {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		switch v := c[k].(type) {
		case string, []string:
		case []any:
			list := make([]string, len(v))
			for i, item := range v {
				s, ok := item.(string)
				if !ok {
					return fmt.Errorf("config-setting %q: item %d must be a string, got %T", k, i, item)
				}
				list[i] = s
			}
			c[k] = list
		default:
			return fmt.Errorf("config-setting %q: value must be a string or a list of strings, got %T", k, v)
		}
	}
	return nil
}

// Values returns the setting for key as a list; a single string yields one
// element.
func (c ConfigSettings) Values(key string) []string {
	switch v := c[key].(type) {
	case string:
		return []string{v}
	case []string:
		return v
	}
	return nil
}
