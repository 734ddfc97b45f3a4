package ui

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// Title renders a bold heading line.
func Title(out io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf(format, args...)))
}

// Error renders an error message in red.
func Error(err error) string {
	return errStyle.Render("error: " + err.Error())
}

// Table renders rows of data in aligned columns.
type Table struct {
	w       *tabwriter.Writer
	headers []string
	rows    int
}

// NewTable creates a new table writer with the given column headers.
func NewTable(out io.Writer, headers ...string) *Table {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	t := &Table{w: tw, headers: headers}
	_, _ = fmt.Fprintln(tw, strings.Join(headers, "\t"))
	return t
}

// Row appends a row of values. Missing trailing values are left blank.
func (t *Table) Row(values ...any) {
	parts := make([]string, max(len(values), len(t.headers)))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%v", v)
	}
	_, _ = fmt.Fprintln(t.w, strings.Join(parts, "\t"))
	t.rows++
}

// Len returns the number of rows written so far.
func (t *Table) Len() int { return t.rows }

// Flush writes the buffered output.
func (t *Table) Flush() error {
	return t.w.Flush()
}
