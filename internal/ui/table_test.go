package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestTable_render(t *testing.T) {
	var buf bytes.Buffer
	tbl := NewTable(&buf, "KEY", "VALUE")
	tbl.Row("pip.offline", true)
	tbl.Row("resolver.resolution", "lowest-direct")
	if err := tbl.Flush(); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Errorf("expected 3 lines (header + 2 rows), got %d", len(lines))
	}
	if !strings.Contains(lines[0], "KEY") {
		t.Errorf("header missing KEY: %q", lines[0])
	}
	if !strings.Contains(lines[1], "pip.offline") || !strings.Contains(lines[1], "true") {
		t.Errorf("row 1 = %q", lines[1])
	}
	if tbl.Len() != 2 {
		t.Errorf("Len() = %d, want 2", tbl.Len())
	}
}

func TestTable_shortRow(t *testing.T) {
	var buf bytes.Buffer
	tbl := NewTable(&buf, "A", "B", "C")
	tbl.Row("only")
	if err := tbl.Flush(); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 || !strings.HasPrefix(lines[1], "only") {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestTable_emptyTable(t *testing.T) {
	var buf bytes.Buffer
	tbl := NewTable(&buf, "A", "B")
	if err := tbl.Flush(); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 1 {
		t.Errorf("expected 1 line (header only), got %d", len(lines))
	}
}

func TestTitleAndError(t *testing.T) {
	var buf bytes.Buffer
	Title(&buf, "Workspace: %s", "/proj")
	if !strings.Contains(buf.String(), "Workspace: /proj") {
		t.Errorf("title = %q", buf.String())
	}
	if got := Error(errors.New("boom")); !strings.Contains(got, "error: boom") {
		t.Errorf("Error() = %q", got)
	}
}
