package tui

import (
	"io"
	"log/slog"
	"slices"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/jask/karmator/internal/config"
	"github.com/jask/karmator/internal/export"
	"github.com/jask/karmator/internal/shuffle"
)

type recordingClipboard struct {
	texts []string
}

func (c *recordingClipboard) WriteText(text string) error {
	c.texts = append(c.texts, text)
	return nil
}

func testConfig(startTab string) config.Config {
	return config.Config{
		Animation: config.AnimationConfig{
			Interval:     time.Millisecond,
			PairTicks:    3,
			ClassicTicks: 4,
			OrderedTicks: 5,
		},
		Shuffle: config.ShuffleConfig{Seed: 7},
		Input:   config.InputConfig{DefaultRows: 10, SimilarityDistance: 1},
		UI:      config.UIConfig{StartTab: startTab},
	}
}

func newTestApp(t *testing.T, startTab string) (*App, *recordingClipboard) {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	clip := &recordingClipboard{}
	cfg := testConfig(startTab)
	a := New(t.Context(), cfg, Services{
		Shuffler: shuffle.New(cfg.Shuffle.Seed),
		Exporter: &export.Exporter{Clipboard: clip, DownloadDir: t.TempDir(), Log: log},
		Log:      log,
	})
	return a, clip
}

func keyMsg(name string) tea.KeyMsg {
	switch name {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+b":
		return tea.KeyMsg{Type: tea.KeyCtrlB}
	case "ctrl+d":
		return tea.KeyMsg{Type: tea.KeyCtrlD}
	case "ctrl+n":
		return tea.KeyMsg{Type: tea.KeyCtrlN}
	case "ctrl+r":
		return tea.KeyMsg{Type: tea.KeyCtrlR}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+y":
		return tea.KeyMsg{Type: tea.KeyCtrlY}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
}

func press(a *App, name string) tea.Cmd {
	_, cmd := a.Update(keyMsg(name))
	return cmd
}

// settle runs tick commands through the app until the spin reports a status.
func settle(t *testing.T, a *App, cmd tea.Cmd) int {
	t.Helper()
	ticks := 0
	for i := 0; i < 100 && cmd != nil; i++ {
		msg := cmd()
		if _, ok := msg.(tickMsg); ok {
			ticks++
		}
		_, cmd = a.Update(msg)
		if _, ok := msg.(statusMsg); ok {
			return ticks
		}
	}
	t.Fatalf("spin did not settle")
	return ticks
}

func teamsTab(t *testing.T, a *App) *mode[shuffle.Teams] {
	t.Helper()
	m, ok := a.ActiveTab().(*mode[shuffle.Teams])
	if !ok {
		t.Fatalf("active tab %q is not a team mode", a.ActiveTab().ID())
	}
	return m
}

func orderedTab(t *testing.T, a *App) *mode[[]string] {
	t.Helper()
	m, ok := a.ActiveTab().(*mode[[]string])
	if !ok {
		t.Fatalf("active tab %q is not the ordered mode", a.ActiveTab().ID())
	}
	return m
}

func TestAppStartsOnConfiguredTab(t *testing.T) {
	for _, id := range []string{config.TabPair, config.TabClassic, config.TabOrdered} {
		a, _ := newTestApp(t, id)
		if got := a.ActiveTab().ID(); got != id {
			t.Fatalf("start tab %q: got %q", id, got)
		}
	}
	a, _ := newTestApp(t, "unknown")
	require.Equal(t, config.TabPair, a.ActiveTab().ID())
}

func TestPairModeFullSpin(t *testing.T) {
	a, _ := newTestApp(t, config.TabPair)
	m := teamsTab(t, a)
	require.Equal(t, DefaultPairs, m.entries.Values())

	m.entries.SetValues([]string{"Ali-Veli", "Can-Deniz"})
	cmd := press(a, "enter")
	require.NotNil(t, cmd)
	require.True(t, a.ActiveTab().Spinning())

	// Input is ignored mid-spin.
	require.Nil(t, press(a, "ctrl+r"))
	require.Nil(t, press(a, "ctrl+n"))
	require.Equal(t, 2, m.entries.Len())

	ticks := settle(t, a, cmd)
	require.Equal(t, 3, ticks)
	require.False(t, a.ActiveTab().Spinning())
	require.Equal(t, "Karıştırma tamamlandı", a.status)

	d, ok := m.machine.Committed()
	require.True(t, ok)
	teams := d.Result
	require.Len(t, teams.A, 2)
	require.Len(t, teams.B, 2)
	all := append(slices.Clone(teams.A), teams.B...)
	require.ElementsMatch(t, []string{"Ali", "Veli", "Can", "Deniz"}, all)
	require.NotEqual(t, slices.Contains(teams.A, "Ali"), slices.Contains(teams.A, "Veli"))
	require.NotEqual(t, slices.Contains(teams.A, "Can"), slices.Contains(teams.A, "Deniz"))

	view := a.View()
	require.Contains(t, view, "Takım A")
	require.Contains(t, view, "Ali")
}

func TestClassicModeCapitalizesPairs(t *testing.T) {
	a, _ := newTestApp(t, config.TabClassic)
	m := teamsTab(t, a)
	require.Equal(t, 10, m.entries.Len())

	m.entries.SetValues([]string{"ali-veli", "oops", ""})
	require.False(t, m.Disabled(actionShuffle))
	ticks := settle(t, a, press(a, "enter"))
	require.Equal(t, 4, ticks)

	d, ok := m.machine.Committed()
	require.True(t, ok)
	require.ElementsMatch(t, []string{"Ali", "Veli"}, append(slices.Clone(d.Result.A), d.Result.B...))
}

func TestClassicBulkKeepsInvalidLines(t *testing.T) {
	a, _ := newTestApp(t, config.TabClassic)
	m := teamsTab(t, a)

	press(a, "ctrl+b")
	require.Equal(t, scopeBulk, a.ActiveTab().Scope())
	m.bulk.SetValue("ali-veli, tek\nayşe - fatma")
	press(a, "ctrl+s")

	require.False(t, m.bulk.IsOpen())
	require.Equal(t, []string{"Ali - Veli", "tek", "Ayşe - Fatma"}, m.entries.Values())
	require.Equal(t, scopeListEditor, a.ActiveTab().Scope())
}

func TestOrderedBulkPasteAndSpin(t *testing.T) {
	a, _ := newTestApp(t, config.TabOrdered)
	m := orderedTab(t, a)

	press(a, "ctrl+b")
	m.bulk.SetValue("ali, veli\ncan")
	_, cmd := a.Update(keyMsg("ctrl+s"))
	require.NotNil(t, cmd)
	_, _ = a.Update(cmd())
	require.Equal(t, []string{"Ali", "Veli", "Can"}, m.entries.Values())
	require.Equal(t, "3 satır eklendi", a.status)

	ticks := settle(t, a, press(a, "enter"))
	require.Equal(t, 5, ticks)
	d, ok := m.machine.Committed()
	require.True(t, ok)
	require.ElementsMatch(t, []string{"Ali", "Veli", "Can"}, d.Result)
	require.Contains(t, a.View(), "1.")

	// The list takes input again once the spin is over.
	press(a, "x")
	require.Equal(t, "Alix", m.entries.Values()[0])
}

func TestBulkApplyIgnoresBlankText(t *testing.T) {
	a, _ := newTestApp(t, config.TabOrdered)
	m := orderedTab(t, a)
	m.entries.SetValues([]string{"Ali", "Veli"})

	press(a, "ctrl+b")
	m.bulk.SetValue(" , \n ")
	require.False(t, m.Disabled(actionBulkApply))
	press(a, "ctrl+s")
	require.True(t, m.bulk.IsOpen())
	require.Equal(t, []string{"Ali", "Veli"}, m.entries.Values())

	press(a, "esc")
	require.False(t, m.bulk.IsOpen())
}

func TestShuffleRequiresMinimumInput(t *testing.T) {
	a, _ := newTestApp(t, config.TabOrdered)
	m := orderedTab(t, a)

	require.True(t, m.Disabled(actionShuffle), "no names")
	m.entries.SetValues([]string{"Ali", "  "})
	require.True(t, m.Disabled(actionShuffle), "one name")
	require.Nil(t, press(a, "enter"))
	require.False(t, a.ActiveTab().Spinning())

	m.entries.SetValues([]string{"Ali", "Veli"})
	require.False(t, m.Disabled(actionShuffle))

	b, _ := newTestApp(t, config.TabPair)
	p := teamsTab(t, b)
	p.entries.SetValues([]string{"Ali-", "tek", "a-b-c"})
	require.True(t, p.Disabled(actionShuffle))
	require.Nil(t, press(b, "enter"))
	p.entries.SetValues([]string{"Ali-Veli"})
	require.False(t, p.Disabled(actionShuffle))
}

func TestResetRestoresSeed(t *testing.T) {
	a, _ := newTestApp(t, config.TabPair)
	m := teamsTab(t, a)
	m.entries.SetValues([]string{"X-Y"})
	settle(t, a, press(a, "enter"))
	_, ok := m.machine.Committed()
	require.True(t, ok)

	press(a, "ctrl+r")
	require.Equal(t, DefaultPairs, m.entries.Values())
	_, ok = m.machine.Committed()
	require.False(t, ok)

	c, _ := newTestApp(t, config.TabClassic)
	cm := teamsTab(t, c)
	press(c, "ctrl+b")
	cm.bulk.SetValue("half typed")
	press(c, "esc")
	cm.entries.SetValues([]string{"A-B"})
	press(c, "ctrl+r")
	require.Equal(t, make([]string, 10), cm.entries.Values())
	require.Equal(t, "", cm.bulk.Value())
}

func TestTabSwitchDropsStaleTicks(t *testing.T) {
	a, _ := newTestApp(t, config.TabPair)
	cmd := press(a, "enter")
	require.True(t, a.ActiveTab().Spinning())

	require.NotNil(t, press(a, "tab"))
	require.Equal(t, config.TabClassic, a.ActiveTab().ID())
	require.False(t, a.ActiveTab().Spinning())

	_, next := a.Update(cmd())
	require.Nil(t, next, "stale tick must not reschedule")
	_, ok := teamsTab(t, a).machine.Committed()
	require.False(t, ok)

	press(a, "tab")
	require.Equal(t, config.TabOrdered, a.ActiveTab().ID())
	press(a, "tab")
	require.Equal(t, config.TabPair, a.ActiveTab().ID())
	press(a, "shift+tab")
	require.Equal(t, config.TabOrdered, a.ActiveTab().ID())

	// A fresh tab starts from its seed.
	press(a, "shift+tab")
	press(a, "shift+tab")
	require.Equal(t, DefaultPairs, teamsTab(t, a).entries.Values())
}

func TestExportAfterSettle(t *testing.T) {
	a, clip := newTestApp(t, config.TabPair)
	m := teamsTab(t, a)

	require.True(t, m.Disabled(actionExport))
	require.Nil(t, press(a, "ctrl+y"), "nothing to export yet")

	m.entries.SetValues([]string{"Ali-Veli"})
	settle(t, a, press(a, "enter"))
	require.False(t, m.Disabled(actionExport))

	cmd := press(a, "ctrl+y")
	require.NotNil(t, cmd)
	a.Update(cmd())
	require.Equal(t, "Panoya kopyalandı", a.status)
	require.Len(t, clip.texts, 1)
	require.Contains(t, clip.texts[0], "Takım A")
	require.Contains(t, clip.texts[0], "Veli")
}

func TestExportFailureIsSilent(t *testing.T) {
	a, _ := newTestApp(t, config.TabPair)
	a.status = "önceki"
	a.Update(exportDoneMsg{err: export.ErrEmpty})
	require.Equal(t, "önceki", a.status)

	a.Update(exportDoneMsg{outcome: export.Outcome{SavedPath: "/tmp/karmator-sonuc.png"}})
	require.Equal(t, "Kaydedildi: /tmp/karmator-sonuc.png", a.status)
}

func TestRowEditingKeys(t *testing.T) {
	a, _ := newTestApp(t, config.TabOrdered)
	m := orderedTab(t, a)
	m.entries.SetValues([]string{"Ali"})

	require.True(t, m.Disabled(actionRemoveRow))
	press(a, "ctrl+d")
	require.Equal(t, 1, m.entries.Len())

	press(a, "ctrl+n")
	require.Equal(t, 2, m.entries.Len())
	require.Equal(t, 1, m.entries.Cursor())
	press(a, "V")
	press(a, "e")
	require.Equal(t, []string{"Ali", "Ve"}, m.entries.Values())

	press(a, "ctrl+d")
	require.Equal(t, []string{"Ali"}, m.entries.Values())
}

func TestSimilarNameHint(t *testing.T) {
	a, _ := newTestApp(t, config.TabOrdered)
	m := orderedTab(t, a)
	m.entries.SetValues([]string{"Ayşe", "ayse", "Mehmet"})
	view := a.View()
	if !strings.Contains(view, "Benzer isimler") {
		t.Fatalf("expected similar name hint in view:\n%s", view)
	}
}

func TestFooterMarksDisabledActions(t *testing.T) {
	a, _ := newTestApp(t, config.TabOrdered)
	tab := a.ActiveTab()
	bindings := a.env.keys.HelpBindings(tab.Scope(), tab.Disabled)
	enabled := map[string]bool{}
	for _, kb := range bindings {
		enabled[kb.Help().Desc] = kb.Enabled()
	}
	require.False(t, enabled["karıştır"])
	require.False(t, enabled["kopyala"])
	require.True(t, enabled["ekle"])
	require.True(t, enabled["sonraki sekme"])
}

func TestQuit(t *testing.T) {
	a, _ := newTestApp(t, config.TabPair)
	cmd := press(a, "ctrl+c")
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	require.True(t, ok)
	require.Equal(t, "", a.View())
}
