package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/musicinmybrain/uv/internal/settings"
	"github.com/musicinmybrain/uv/internal/ui"
	"github.com/musicinmybrain/uv/internal/workspace"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

func newFindCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find [path]",
		Short: "Show the workspace configuration that applies to a path",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runFind,
	}
	cmd.Flags().String("format", "auto", "Output format: auto, table, toml, yaml, or json")
	return cmd
}

// workspaceOutput is the serialized form of a resolved workspace.
type workspaceOutput struct {
	Root    string           `json:"root" yaml:"root"`
	Options settings.Options `json:"options" yaml:"options"`
}

func runFind(cmd *cobra.Command, args []string) error {
	path := "."
	if len(args) > 0 {
		path = args[0]
	}
	format, _ := cmd.Flags().GetString("format")
	format, err := resolveFormat(format, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	logger, err := newLogger(cmd)
	if err != nil {
		return err
	}
	f := workspace.Finder{Logger: logger}
	ws, err := f.Find(path)
	if err != nil {
		return err
	}
	if ws == nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "No workspace found for %s\n", path)
		return nil
	}

	out := cmd.OutOrStdout()
	result := workspaceOutput{Root: ws.Root(), Options: ws.Options()}

	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("encoding YAML: %w", err)
		}
		return enc.Close()
	case "toml":
		data, err := toml.Marshal(result.Options)
		if err != nil {
			return fmt.Errorf("encoding TOML: %w", err)
		}
		_, err = fmt.Fprintf(out, "# root: %s\n%s", result.Root, data)
		return err
	default:
		return writeTable(out, result)
	}
}

// resolveFormat picks table output for terminals and TOML otherwise.
func resolveFormat(format string, out io.Writer) (string, error) {
	switch format {
	case "table", "toml", "yaml", "json":
		return format, nil
	case "auto", "":
		if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return "table", nil
		}
		return "toml", nil
	default:
		return "", fmt.Errorf("unknown format: %q (must be auto, table, toml, yaml, or json)", format)
	}
}

func writeTable(out io.Writer, result workspaceOutput) error {
	ui.Title(out, "Workspace: %s", result.Root)

	flat, err := flattenOptions(result.Options)
	if err != nil {
		return err
	}
	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	tbl := ui.NewTable(out, "OPTION", "VALUE")
	for _, k := range keys {
		tbl.Row(k, flat[k])
	}
	if tbl.Len() == 0 {
		tbl.Row("(none)")
	}
	return tbl.Flush()
}

// flattenOptions maps dotted option keys, e.g. "pip.resolver.resolution",
// to their rendered values. Unset options are omitted.
func flattenOptions(opts settings.Options) (map[string]string, error) {
	data, err := json.Marshal(opts)
	if err != nil {
		return nil, fmt.Errorf("encoding options: %w", err)
	}
	var tree map[string]any
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("decoding options: %w", err)
	}
	flat := make(map[string]string)
	flatten("", tree, flat)
	return flat, nil
}

func flatten(prefix string, v any, out map[string]string) {
	switch v := v.(type) {
	case map[string]any:
		for k, child := range v {
			key := k
			if prefix != "" {
				key = prefix + "." + k
			}
			flatten(key, child, out)
		}
	case []any:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = fmt.Sprint(item)
		}
		out[prefix] = strings.Join(parts, ", ")
	default:
		out[prefix] = fmt.Sprint(v)
	}
}
