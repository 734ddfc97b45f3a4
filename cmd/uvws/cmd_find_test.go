package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/musicinmybrain/uv/internal/settings"
	"github.com/musicinmybrain/uv/internal/testutil"
	"gopkg.in/yaml.v3"
)

// setupProject writes a two-level configuration tree and returns the root
// and a nested start directory.
func setupProject(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "uv.toml", "quiet = true\n")
	testutil.WriteFile(t, dir, "proj/pyproject.toml", `
[project]
name = "demo"

[tool.uv]
verbose = true

[tool.uv.pip]
offline = true
no-binary = [":all:"]

[tool.uv.resolver]
exclude-newer = "2024-03-25"
`)
	return dir, testutil.Mkdir(t, dir, "proj/src")
}

func runRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestRunFind_json(t *testing.T) {
	dir, start := setupProject(t)

	out, _, err := runRoot(t, "find", start, "--format", "json")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}

	var got struct {
		Root    string         `json:"root"`
		Options map[string]any `json:"options"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, out)
	}
	if want := filepath.Join(dir, "proj"); got.Root != want {
		t.Errorf("root = %q, want %q", got.Root, want)
	}
	if got.Options["verbose"] != true {
		t.Errorf("verbose = %v, want true", got.Options["verbose"])
	}
	if _, ok := got.Options["quiet"]; ok {
		t.Error("quiet from the outer uv.toml must not leak into the result")
	}
	res, _ := got.Options["resolver"].(map[string]any)
	if res["exclude-newer"] != "2024-03-25T00:00:00Z" {
		t.Errorf("resolver.exclude-newer = %v", res["exclude-newer"])
	}
}

func TestRunFind_toml(t *testing.T) {
	dir, start := setupProject(t)

	out, _, err := runRoot(t, "find", start)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if !strings.HasPrefix(out, "# root: "+filepath.Join(dir, "proj")+"\n") {
		t.Errorf("missing root comment:\n%s", out)
	}

	// The rendered options must parse back into an equivalent tree.
	opts, err := settings.Parse([]byte(out))
	if err != nil {
		t.Fatalf("rendered TOML does not parse: %v\n%s", err, out)
	}
	if opts.Pip == nil || opts.Pip.Offline == nil || !*opts.Pip.Offline {
		t.Error("pip.offline should round-trip")
	}
	if len(opts.Pip.NoBinary) != 1 || !opts.Pip.NoBinary[0].All() {
		t.Errorf("pip.no-binary = %v", opts.Pip.NoBinary)
	}
}

func TestRunFind_yaml(t *testing.T) {
	_, start := setupProject(t)

	out, _, err := runRoot(t, "find", start, "--format", "yaml")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	var got map[string]any
	if err := yaml.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid YAML output: %v\n%s", err, out)
	}
	opts, _ := got["options"].(map[string]any)
	pip, _ := opts["pip"].(map[string]any)
	if pip["offline"] != true {
		t.Errorf("options.pip.offline = %v\n%s", pip["offline"], out)
	}
}

func TestRunFind_table(t *testing.T) {
	dir, start := setupProject(t)

	out, _, err := runRoot(t, "find", start, "--format", "table")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if !strings.Contains(out, "Workspace: "+filepath.Join(dir, "proj")) {
		t.Errorf("missing title:\n%s", out)
	}
	for _, want := range []string{"pip.offline", "pip.no-binary", ":all:", "verbose"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestRunFind_emptyOptionsTable(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "uv.toml", "")

	out, _, err := runRoot(t, "find", dir, "--format", "table")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if !strings.Contains(out, "(none)") {
		t.Errorf("empty options should render a placeholder row:\n%s", out)
	}
}

func TestRunFind_parseError(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "uv.toml", "[pip]\nofline = true\n")

	_, _, err := runRoot(t, "find", dir)
	if err == nil {
		t.Fatal("find should fail on an invalid uv.toml")
	}
	if !strings.Contains(err.Error(), "pip.ofline") {
		t.Errorf("error should name the unknown key: %v", err)
	}
}

func TestRunFind_invalidFlags(t *testing.T) {
	dir := t.TempDir()
	if _, _, err := runRoot(t, "find", dir, "--format", "xml"); err == nil {
		t.Error("expected error for unknown format")
	}
	if _, _, err := runRoot(t, "--log-level", "loud", "find", dir); err == nil {
		t.Error("expected error for unknown log level")
	}
}

func TestRunFind_debugLogging(t *testing.T) {
	_, start := setupProject(t)

	_, errOut, err := runRoot(t, "--log-level", "debug", "find", start, "--format", "json")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if !strings.Contains(errOut, "found workspace") {
		t.Errorf("expected debug log on stderr, got %q", errOut)
	}
}
