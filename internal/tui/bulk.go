package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

// bulkPaste is the collapsible textarea that replaces the whole entry list.
type bulkPaste struct {
	open  bool
	area  textarea.Model
	parse func(string) []string
}

func newBulkPaste(placeholder string, parse func(string) []string) *bulkPaste {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.CharLimit = 0
	ta.ShowLineNumbers = false
	ta.SetWidth(48)
	ta.SetHeight(6)
	return &bulkPaste{area: ta, parse: parse}
}

func (b *bulkPaste) Open() tea.Cmd {
	b.open = true
	return b.area.Focus()
}

func (b *bulkPaste) Close() {
	b.open = false
	b.area.Blur()
}

func (b *bulkPaste) IsOpen() bool { return b.open }

func (b *bulkPaste) Value() string { return b.area.Value() }

func (b *bulkPaste) SetValue(s string) { b.area.SetValue(s) }

// CanApply mirrors the apply button: disabled while the text is blank.
func (b *bulkPaste) CanApply() bool {
	return strings.TrimSpace(b.area.Value()) != ""
}

// Apply parses the text. On a non-empty result the textarea is cleared and
// collapsed; otherwise nothing changes and ok is false.
func (b *bulkPaste) Apply() ([]string, bool) {
	parsed := b.parse(b.area.Value())
	if len(parsed) == 0 {
		return nil, false
	}
	b.area.Reset()
	b.Close()
	return parsed, true
}

// Clear empties and collapses the textarea.
func (b *bulkPaste) Clear() {
	b.area.Reset()
	b.Close()
}

func (b *bulkPaste) Update(msg tea.Msg) tea.Cmd {
	if !b.open {
		return nil
	}
	var cmd tea.Cmd
	b.area, cmd = b.area.Update(msg)
	return cmd
}

func (b *bulkPaste) View() string {
	arrow := "▶"
	if b.open {
		arrow = "▼"
	}
	header := sectionStyle.Render(arrow + " Toplu Yapıştır")
	if !b.open {
		return header
	}
	return header + "\n" + b.area.View()
}
