package settings

import (
	"encoding"
	"reflect"
	"sort"
	"strings"
)

var (
	optionsType         = reflect.TypeFor[Options]()
	textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()
)

// UnknownFieldError lists document keys that are not part of the schema,
// as dotted paths.
type UnknownFieldError struct {
	Keys []string
}

func (e *UnknownFieldError) Error() string {
	if len(e.Keys) == 1 {
		return "unknown field " + e.Keys[0]
	}
	return "unknown fields " + strings.Join(e.Keys, ", ")
}

// checkKeys rejects every key of doc that is not spelled exactly like a
// toml tag of t, descending into nested option groups. The TOML decoder
// matches field names case-insensitively, so it cannot enforce this.
func checkKeys(doc map[string]any, t reflect.Type, prefix []string) error {
	var unknown []string
	collectUnknown(doc, t, prefix, &unknown)
	if len(unknown) == 0 {
		return nil
	}
	sort.Strings(unknown)
	return &UnknownFieldError{Keys: unknown}
}

func collectUnknown(doc map[string]any, t reflect.Type, prefix []string, unknown *[]string) {
	fields := tomlFields(t)
	for key, value := range doc {
		path := append(prefix[:len(prefix):len(prefix)], key)
		ft, ok := fields[key]
		if !ok {
			*unknown = append(*unknown, strings.Join(path, "."))
			continue
		}
		for ft.Kind() == reflect.Pointer {
			ft = ft.Elem()
		}
		if ft.Kind() != reflect.Struct || reflect.PointerTo(ft).Implements(textUnmarshalerType) {
			continue
		}
		// A non-table value for a group is a type error left to the decoder.
		if sub, ok := value.(map[string]any); ok {
			collectUnknown(sub, ft, path, unknown)
		}
	}
}

// tomlFields maps the toml tag names of t to their field types.
func tomlFields(t reflect.Type) map[string]reflect.Type {
	fields := make(map[string]reflect.Type, t.NumField())
	for i := range t.NumField() {
		f := t.Field(i)
		name, _, _ := strings.Cut(f.Tag.Get("toml"), ",")
		if name == "" || name == "-" {
			continue
		}
		fields[name] = f.Type
	}
	return fields
}
