package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/karmator/internal/draw"
	"github.com/jask/karmator/internal/export"
	"github.com/jask/karmator/internal/names"
	"github.com/jask/karmator/internal/shuffle"
)

// Tab is one shuffle mode. The app owns key routing for global actions and
// hands everything else to the active tab.
type Tab interface {
	ID() string
	Title() string
	Scope() string
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View(width, height int) string
	Spinning() bool
	Disabled(a Action) bool
}

// env is shared by every mode of one app.
type env struct {
	ctx        context.Context
	keys       *KeyRegistry
	interval   time.Duration
	shuffler   *shuffle.Shuffler
	exporter   *export.Exporter
	log        *slog.Logger
	similarity int
}

// modeSpec describes what differs between modes; mode supplies the shared
// editing and spin behavior.
type modeSpec[R any] struct {
	id          string
	title       string
	scope       string
	section     string
	placeholder string
	seed        func() []string
	minimum     int
	threshold   int

	// valid counts usable entries; invalid marks rows that will be skipped.
	valid   func(entries []string) int
	invalid func(entry string) bool
	// people lists the names used for the similar-name hint.
	people func(entries []string) []string
	// generate captures the valid input once per cycle.
	generate func(entries []string) func() R

	render   func(r R, ok, spinning bool) string
	snapshot func(r R) export.Snapshot

	// bulkParse is nil for modes without bulk paste.
	bulkParse       func(text string) []string
	bulkPlaceholder string
}

type mode[R any] struct {
	spec    modeSpec[R]
	env     *env
	machine *draw.Machine[R]
	entries *entryList
	bulk    *bulkPaste
}

func newMode[R any](e *env, spec modeSpec[R]) *mode[R] {
	m := &mode[R]{
		spec:    spec,
		env:     e,
		machine: draw.New[R](spec.minimum, spec.threshold),
		entries: newEntryList(spec.placeholder, spec.seed()),
	}
	if spec.bulkParse != nil {
		m.bulk = newBulkPaste(spec.bulkPlaceholder, spec.bulkParse)
	}
	return m
}

func (m *mode[R]) ID() string     { return m.spec.id }
func (m *mode[R]) Title() string  { return m.spec.title }
func (m *mode[R]) Spinning() bool { return m.machine.Spinning() }

func (m *mode[R]) Scope() string {
	switch {
	case m.machine.Spinning():
		return scopeSpinning
	case m.bulk != nil && m.bulk.IsOpen():
		return scopeBulk
	default:
		return m.spec.scope
	}
}

func (m *mode[R]) Init() tea.Cmd {
	return textinput.Blink
}

// Disabled reports whether an action would currently be rejected.
func (m *mode[R]) Disabled(a Action) bool {
	if m.machine.Spinning() {
		return a != actionQuit && a != actionNextTab && a != actionPrevTab
	}
	switch a {
	case actionShuffle:
		return !m.machine.CanStart(m.spec.valid(m.entries.Values()))
	case actionRemoveRow:
		return m.entries.Len() <= 1
	case actionExport:
		_, ok := m.machine.Committed()
		return !ok
	case actionBulkApply:
		return m.bulk == nil || !m.bulk.CanApply()
	case actionBulk:
		return m.bulk == nil
	}
	return false
}

func (m *mode[R]) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tickMsg:
		return m.tick(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	if m.bulk != nil && m.bulk.IsOpen() {
		return m.bulk.Update(msg)
	}
	return m.entries.Update(msg)
}

func (m *mode[R]) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.machine.Spinning() {
		m.env.log.Debug("input ignored while spinning", "mode", m.spec.id, "key", msg.String())
		return nil
	}
	b := m.env.keys.Lookup(msg.String(), m.Scope())
	if b == nil {
		if m.bulk != nil && m.bulk.IsOpen() {
			return m.bulk.Update(msg)
		}
		return m.entries.Update(msg)
	}
	switch b.Action {
	case actionShuffle:
		return m.shuffle()
	case actionPrevRow:
		m.entries.Move(-1)
	case actionNextRow:
		m.entries.Move(1)
	case actionAddRow:
		m.entries.Add()
	case actionRemoveRow:
		if !m.entries.Remove() {
			m.env.log.Debug("remove rejected: last row", "mode", m.spec.id)
		}
	case actionReset:
		return m.reset()
	case actionExport:
		return m.export()
	case actionBulk:
		if m.bulk != nil {
			m.entries.SetDisabled(true)
			return m.bulk.Open()
		}
	case actionBulkApply:
		return m.applyBulk()
	case actionBulkClose:
		m.bulk.Close()
		m.entries.SetDisabled(false)
	}
	return nil
}

func (m *mode[R]) shuffle() tea.Cmd {
	entries := m.entries.Values()
	valid := m.spec.valid(entries)
	cycle, err := m.machine.Start(valid, m.spec.generate(entries))
	if err != nil {
		m.env.log.Debug("shuffle rejected", "mode", m.spec.id, "err", err)
		return nil
	}
	m.entries.SetDisabled(true)
	m.env.log.Info("shuffle started", "mode", m.spec.id, "draw_id", cycle, "entries", valid)
	return tickCmd(m.env.interval, cycle)
}

func (m *mode[R]) tick(msg tickMsg) tea.Cmd {
	switch m.machine.Tick(msg.cycle) {
	case draw.Continued:
		return tickCmd(m.env.interval, msg.cycle)
	case draw.Settled:
		m.entries.SetDisabled(false)
		d, _ := m.machine.Committed()
		m.env.log.Info("draw settled",
			"mode", m.spec.id,
			"draw_id", d.ID,
			"ticks", d.Ticks,
			"duration_ms", d.SettledAt.Sub(d.StartedAt).Milliseconds(),
		)
		return statusCmd("Karıştırma tamamlandı")
	}
	return nil
}

func (m *mode[R]) reset() tea.Cmd {
	if err := m.machine.Reset(); err != nil {
		m.env.log.Debug("reset rejected", "mode", m.spec.id, "err", err)
		return nil
	}
	m.entries.SetValues(m.spec.seed())
	if m.bulk != nil {
		m.bulk.Clear()
	}
	return statusCmd("Sıfırlandı")
}

func (m *mode[R]) applyBulk() tea.Cmd {
	if m.bulk == nil {
		return nil
	}
	values, ok := m.bulk.Apply()
	if !ok {
		return nil
	}
	m.entries.SetValues(values)
	m.entries.SetDisabled(false)
	m.machine.Discard()
	return statusCmd(fmt.Sprintf("%d satır eklendi", len(values)))
}

func (m *mode[R]) export() tea.Cmd {
	d, ok := m.machine.Committed()
	if !ok || m.machine.Spinning() || m.env.exporter == nil {
		return nil
	}
	snap := m.spec.snapshot(d.Result)
	exporter, ctx := m.env.exporter, m.env.ctx
	return func() tea.Msg {
		out, err := exporter.Export(ctx, snap)
		return exportDoneMsg{outcome: out, err: err}
	}
}

func (m *mode[R]) View(width, height int) string {
	shown, ok := m.machine.Display()
	result := m.spec.render(shown, ok, m.machine.Spinning())

	var below []string
	if hint := m.similarHint(); hint != "" {
		below = append(below, hint)
	}
	if m.bulk != nil {
		below = append(below, "", m.bulk.View())
	}
	tail := strings.Join(below, "\n")

	rows := height - lipgloss.Height(result) - lipgloss.Height(tail) - 3
	if rows < 3 {
		rows = 3
	}
	parts := []string{
		result,
		"",
		sectionStyle.Render(m.spec.section),
		m.entries.View(rows, m.spec.invalid),
	}
	if tail != "" {
		parts = append(parts, tail)
	}
	return lipgloss.NewStyle().MaxWidth(max(1, width)).Render(strings.Join(parts, "\n"))
}

func (m *mode[R]) similarHint() string {
	if m.spec.people == nil {
		return ""
	}
	sims := names.SimilarNames(m.spec.people(m.entries.Values()), m.env.similarity)
	if len(sims) == 0 {
		return ""
	}
	shown := make([]string, 0, 3)
	for _, s := range sims {
		if len(shown) == 3 {
			break
		}
		shown = append(shown, s.A+" ≈ "+s.B)
	}
	text := "Benzer isimler: " + strings.Join(shown, ", ")
	if extra := len(sims) - len(shown); extra > 0 {
		text += fmt.Sprintf(" (+%d)", extra)
	}
	return hintStyle.Render(text)
}
