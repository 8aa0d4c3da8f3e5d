package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// entryList is an ordered list of single-line inputs with one cursor row.
type entryList struct {
	rows        []textinput.Model
	cursor      int
	placeholder string
	disabled    bool
}

func newEntryList(placeholder string, values []string) *entryList {
	l := &entryList{placeholder: placeholder}
	l.SetValues(values)
	return l
}

func (l *entryList) newRow(value string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = l.placeholder
	ti.Prompt = ""
	ti.CharLimit = 120
	ti.Width = 40
	ti.SetValue(value)
	return ti
}

// SetValues replaces every row. An empty list still keeps one row.
func (l *entryList) SetValues(values []string) {
	if len(values) == 0 {
		values = []string{""}
	}
	l.rows = make([]textinput.Model, 0, len(values))
	for _, v := range values {
		l.rows = append(l.rows, l.newRow(v))
	}
	l.cursor = 0
	l.syncFocus()
}

func (l *entryList) Values() []string {
	out := make([]string, len(l.rows))
	for i, r := range l.rows {
		out[i] = r.Value()
	}
	return out
}

func (l *entryList) Len() int    { return len(l.rows) }
func (l *entryList) Cursor() int { return l.cursor }

// SetValue edits row i.
func (l *entryList) SetValue(i int, v string) {
	if i < 0 || i >= len(l.rows) {
		return
	}
	l.rows[i].SetValue(v)
}

func (l *entryList) Move(delta int) {
	next := l.cursor + delta
	if next < 0 || next >= len(l.rows) {
		return
	}
	l.cursor = next
	l.syncFocus()
}

// Add appends an empty row and moves the cursor onto it.
func (l *entryList) Add() {
	l.rows = append(l.rows, l.newRow(""))
	l.cursor = len(l.rows) - 1
	l.syncFocus()
}

// Remove deletes the cursor row. The last remaining row cannot be removed.
func (l *entryList) Remove() bool {
	if len(l.rows) <= 1 {
		return false
	}
	l.rows = append(l.rows[:l.cursor], l.rows[l.cursor+1:]...)
	if l.cursor >= len(l.rows) {
		l.cursor = len(l.rows) - 1
	}
	l.syncFocus()
	return true
}

// SetDisabled blurs every row so no input reaches them.
func (l *entryList) SetDisabled(disabled bool) {
	l.disabled = disabled
	l.syncFocus()
}

func (l *entryList) syncFocus() {
	for i := range l.rows {
		if i == l.cursor && !l.disabled {
			l.rows[i].Focus()
		} else {
			l.rows[i].Blur()
		}
	}
}

// Update forwards msg to the cursor row.
func (l *entryList) Update(msg tea.Msg) tea.Cmd {
	if l.disabled || len(l.rows) == 0 {
		return nil
	}
	var cmd tea.Cmd
	l.rows[l.cursor], cmd = l.rows[l.cursor].Update(msg)
	return cmd
}

// View renders at most height rows, scrolled so the cursor stays visible.
// invalid marks rows that hold text but will be skipped by the shuffle.
func (l *entryList) View(height int, invalid func(string) bool) string {
	if height < 1 {
		height = 1
	}
	start := 0
	if l.cursor >= height {
		start = l.cursor - height + 1
	}
	end := min(len(l.rows), start+height)
	numWidth := len(fmt.Sprint(len(l.rows)))

	lines := make([]string, 0, end-start+1)
	for i := start; i < end; i++ {
		marker := "  "
		if i == l.cursor && !l.disabled {
			marker = rowCursorStyle.Render("▶ ")
		}
		num := numberStyle.Render(fmt.Sprintf("%*d.", numWidth, i+1))
		row := l.rows[i].View()
		v := l.rows[i].Value()
		if invalid != nil && strings.TrimSpace(v) != "" && invalid(v) {
			row += " " + invalidRowStyle.Render("✕")
		}
		lines = append(lines, marker+num+" "+row)
	}
	if end < len(l.rows) {
		lines = append(lines, numberStyle.Render(fmt.Sprintf("   … %d satır daha", len(l.rows)-end)))
	}
	return strings.Join(lines, "\n")
}
