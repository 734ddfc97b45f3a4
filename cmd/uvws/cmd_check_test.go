package main

import (
	"strings"
	"testing"

	"github.com/musicinmybrain/uv/internal/testutil"
)

func TestRunCheck(t *testing.T) {
	dir := t.TempDir()
	good := testutil.WriteFile(t, dir, "uv.toml", "[installer]\nlink-mode = \"copy\"\n")
	bare := testutil.WriteFile(t, dir, "pyproject.toml", "[project]\nname = \"demo\"\n")

	out, _, err := runRoot(t, "check", good, bare)
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if !strings.Contains(out, good+": OK") {
		t.Errorf("missing OK line:\n%s", out)
	}
	if !strings.Contains(out, bare+": no [tool.uv] table") {
		t.Errorf("missing no-table line:\n%s", out)
	}
}

func TestRunCheck_failure(t *testing.T) {
	dir := t.TempDir()
	good := testutil.WriteFile(t, dir, "uv.toml", "quiet = true\n")
	bad := testutil.WriteFile(t, dir, "sub/uv.toml", "[installer]\nlink-mode = \"teleport\"\n")

	out, _, err := runRoot(t, "check", good, bad)
	if err == nil {
		t.Fatal("check should fail when a file is invalid")
	}
	if !strings.Contains(err.Error(), "1 of 2") {
		t.Errorf("error = %v", err)
	}
	if !strings.Contains(out, bad+": FAILED") || !strings.Contains(out, "teleport") {
		t.Errorf("missing failure detail:\n%s", out)
	}
}

func TestRunCheck_noArgs(t *testing.T) {
	if _, _, err := runRoot(t, "check"); err == nil {
		t.Fatal("check without files should fail")
	}
}
