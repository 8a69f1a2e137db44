// Package table renders the conversation history as a terminal table
// backed by lipgloss.
package table

import (
	"fmt"
	"os"
	"strings"

	// Packages
	lipgloss "github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	session "github.com/mutablelogic/go-weather/pkg/session"
	term "golang.org/x/term"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// TableData is implemented by data rendered as a terminal table
type TableData interface {
	// Header returns the column header labels.
	Header() []string

	// Len returns the number of rows.
	Len() int

	// Row returns the cell values for row i. Return nil to skip a row.
	// Wrap a value in Bold{} to render it in bold.
	Row(i int) []any
}

// Bold wraps a cell value so that FormatCell renders it in bold.
type Bold struct{ Value any }

// History is the conversation history, one turn per row
type History []session.Turn

var _ TableData = History(nil)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Replies are truncated to this number of runes
const MaxReply = 120

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	boldStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	cellStyle   = lipgloss.NewStyle()
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

///////////////////////////////////////////////////////////////////////////////
// HISTORY

func (History) Header() []string {
	return []string{"#", "You", "Assistant"}
}

func (h History) Len() int {
	return len(h)
}

func (h History) Row(i int) []any {
	if i < 0 || i >= len(h) {
		return nil
	}
	return []any{i + 1, Bold{h[i].User}, Truncate(h[i].Assistant, MaxReply)}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Render renders the table data as a string suitable for terminal output.
// Columns are sized to the terminal width when the table would not fit.
func Render(data TableData) string {
	t := lgtable.New().
		Headers(data.Header()...).
		Border(lipgloss.RoundedBorder()).
		BorderStyle(dimStyle).
		Wrap(true).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == lgtable.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for i := range data.Len() {
		row := data.Row(i)
		if row == nil {
			continue
		}
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = FormatCell(v)
		}
		t.Row(cells...)
	}

	// Only constrain to terminal width if the natural render exceeds it
	result := t.Render()
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 && widest(result) > w {
		t.Width(w)
		result = t.Render()
	}

	return result
}

// Truncate shortens s to max runes, collapsing newlines and appending "…"
// if truncated.
func Truncate(s string, max int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if max < 1 || len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}

// FormatCell converts a value to a display string for a table cell.
func FormatCell(v any) string {
	switch val := v.(type) {
	case nil:
		return "-"
	case Bold:
		return boldStyle.Render(FormatCell(val.Value))
	case string:
		if val == "" {
			return "-"
		}
		return val
	default:
		return fmt.Sprint(val)
	}
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func widest(s string) int {
	n := 0
	for _, line := range strings.Split(s, "\n") {
		n = max(n, lipgloss.Width(line))
	}
	return n
}
