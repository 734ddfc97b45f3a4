package settings

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// Parse decodes a uv.toml document. Unknown keys at any tier are errors,
// and key names must match exactly, including case.
func Parse(data []byte) (*Options, error) {
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing options TOML: %w", err)
	}
	opts, err := decodeOptions(data, doc, nil)
	if err != nil {
		return nil, fmt.Errorf("parsing options TOML: %w", err)
	}
	return opts, nil
}

// ParsePyProject decodes the [tool.uv] table of a pyproject.toml document.
// The rest of the document only has to be valid TOML. It returns nil
// options when the table is absent or empty. The tool and uv keys are
// matched exactly, so [Tool.uv] is some other tool's table.
func ParsePyProject(data []byte) (*Options, error) {
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing pyproject TOML: %w", err)
	}

	table, err := toolTable(doc)
	if err != nil || len(table) == 0 {
		return nil, err
	}

	// Re-encode the table on its own so the typed decode cannot pick up
	// case variants of tool or uv elsewhere in the document.
	sub, err := toml.Marshal(table)
	if err != nil {
		return nil, fmt.Errorf("parsing pyproject TOML: encoding [tool.uv]: %w", err)
	}
	opts, err := decodeOptions(sub, table, []string{"tool", "uv"})
	if err != nil {
		return nil, fmt.Errorf("parsing pyproject TOML: %w", err)
	}
	if opts.IsEmpty() {
		return nil, nil
	}
	return opts, nil
}

// toolTable returns doc["tool"]["uv"], or nil when either level is absent.
func toolTable(doc map[string]any) (map[string]any, error) {
	tool, ok := doc["tool"]
	if !ok {
		return nil, nil
	}
	tools, ok := tool.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("parsing pyproject TOML: tool must be a table, got %T", tool)
	}
	uv, ok := tools["uv"]
	if !ok {
		return nil, nil
	}
	table, ok := uv.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("parsing pyproject TOML: tool.uv must be a table, got %T", uv)
	}
	return table, nil
}

// decodeOptions checks the generic form of a document against the schema
// and then decodes data into typed options.
func decodeOptions(data []byte, doc map[string]any, prefix []string) (*Options, error) {
	if err := checkKeys(doc, optionsType, prefix); err != nil {
		return nil, err
	}
	var opts Options
	if err := toml.Unmarshal(data, &opts); err != nil {
		return nil, err
	}
	if err := validate(&opts); err != nil {
		return nil, err
	}
	return &opts, nil
}

func validate(o *Options) error {
	if o.Resolver != nil {
		if err := o.Resolver.ConfigSetting.Validate(); err != nil {
			return fmt.Errorf("resolver: %w", err)
		}
	}
	if o.Pip != nil && o.Pip.Resolver != nil {
		if err := o.Pip.Resolver.ConfigSetting.Validate(); err != nil {
			return fmt.Errorf("pip.resolver: %w", err)
		}
	}
	return nil
}
