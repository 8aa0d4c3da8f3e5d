package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/jask/karmator/internal/export"
)

// tickMsg drives one spin cycle. Ticks for a cycle that is no longer
// running are dropped by the machine.
type tickMsg struct {
	cycle uuid.UUID
}

type exportDoneMsg struct {
	outcome export.Outcome
	err     error
}

type statusMsg string

func tickCmd(interval time.Duration, cycle uuid.UUID) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return tickMsg{cycle: cycle}
	})
}

func statusCmd(text string) tea.Cmd {
	return func() tea.Msg { return statusMsg(text) }
}
