package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/karmator/internal/config"
	"github.com/jask/karmator/internal/export"
	"github.com/jask/karmator/internal/shuffle"
)

type Services struct {
	Shuffler *shuffle.Shuffler
	Exporter *export.Exporter
	Log      *slog.Logger
}

type tabFactory struct {
	id  string
	new func() Tab
}

// App is the root model: a header with the mode tabs, the active tab body,
// a status bar and a key help footer.
type App struct {
	env       *env
	factories []tabFactory
	active    int
	tab       Tab

	status   string
	width    int
	height   int
	quitting bool
}

func New(ctx context.Context, cfg config.Config, services Services) *App {
	if ctx == nil {
		ctx = context.Background()
	}
	log := services.Log
	if log == nil {
		log = slog.Default()
	}
	shuffler := services.Shuffler
	if shuffler == nil {
		shuffler = shuffle.New(cfg.Shuffle.Seed)
	}
	e := &env{
		ctx:        ctx,
		keys:       NewKeyRegistry(),
		interval:   cfg.Animation.Interval,
		shuffler:   shuffler,
		exporter:   services.Exporter,
		log:        log,
		similarity: cfg.Input.SimilarityDistance,
	}
	a := &App{
		env: e,
		factories: []tabFactory{
			{id: config.TabPair, new: func() Tab { return newPairMode(e, cfg) }},
			{id: config.TabClassic, new: func() Tab { return newClassicMode(e, cfg) }},
			{id: config.TabOrdered, new: func() Tab { return newOrderedMode(e, cfg) }},
		},
		width:  80,
		height: 24,
	}
	for i, f := range a.factories {
		if f.id == cfg.UI.StartTab {
			a.active = i
		}
	}
	a.tab = a.factories[a.active].new()
	return a
}

func (a *App) Init() tea.Cmd {
	return a.tab.Init()
}

// ActiveTab exposes the current tab.
func (a *App) ActiveTab() Tab { return a.tab }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil
	case tea.KeyMsg:
		if b := a.env.keys.Lookup(msg.String(), scopeGlobal); b != nil {
			switch b.Action {
			case actionQuit:
				a.quitting = true
				return a, tea.Quit
			case actionNextTab:
				return a, a.switchTab(a.active + 1)
			case actionPrevTab:
				return a, a.switchTab(a.active - 1)
			}
		}
		return a, a.tab.Update(msg)
	case statusMsg:
		a.status = string(msg)
		return a, nil
	case exportDoneMsg:
		a.handleExport(msg)
		return a, nil
	}
	return a, a.tab.Update(msg)
}

// switchTab builds a fresh tab. Whatever the previous tab held, including a
// running spin, is discarded.
func (a *App) switchTab(i int) tea.Cmd {
	n := len(a.factories)
	i = ((i % n) + n) % n
	if a.tab.Spinning() {
		a.env.log.Debug("spin discarded by tab switch", "mode", a.tab.ID())
	}
	a.active = i
	a.tab = a.factories[i].new()
	a.status = ""
	return a.tab.Init()
}

func (a *App) handleExport(msg exportDoneMsg) {
	switch {
	case msg.err != nil:
		// Export failures stay silent; the exporter already logged them.
	case msg.outcome.Copied:
		a.status = "Panoya kopyalandı"
	case msg.outcome.SavedPath != "":
		a.status = "Kaydedildi: " + msg.outcome.SavedPath
	}
}

func (a *App) View() string {
	if a.quitting {
		return ""
	}
	header := a.renderHeader()
	status := a.renderStatusBar()
	footer := a.renderFooter()
	bodyHeight := max(0, a.height-lipgloss.Height(header)-lipgloss.Height(status)-lipgloss.Height(footer))
	var body string
	if bodyHeight > 0 {
		body = a.tab.View(max(1, a.width-2), bodyHeight)
	}
	body = fitHeight(lipgloss.NewStyle().PaddingLeft(1).Render(body), bodyHeight)
	view := strings.Join([]string{header, status, body, footer}, "\n")
	view = fitHeight(view, max(1, a.height))
	return appStyle.Width(max(1, a.width)).MaxWidth(max(1, a.width)).Render(view)
}

func (a *App) renderHeader() string {
	tabs := make([]string, 0, len(a.factories))
	for i, f := range a.factories {
		label := fmt.Sprintf("%d:%s", i+1, tabTitles[f.id])
		if i == a.active {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(label))
		}
	}
	left := headerAppStyle.Background(colorMantle).Render("Karmatör")
	right := tabSepStyle.Render(" ") + strings.Join(tabs, tabSepStyle.Render("│"))
	right = ansi.Truncate(right, max(1, a.width), "")
	leftW := ansi.StringWidth(left)
	rightW := ansi.StringWidth(right)
	gap := 1
	if leftW+rightW+1 < a.width {
		gap = a.width - leftW - rightW
	}
	return renderBar(headerBarStyle, max(1, a.width), left+strings.Repeat(" ", gap)+right, colorMantle)
}

var tabTitles = map[string]string{
	config.TabPair:    "İkili Karıştır",
	config.TabClassic: "Klasik Karıştır",
	config.TabOrdered: "Altın Günü",
}

func (a *App) renderStatusBar() string {
	msg := strings.TrimSpace(a.status)
	if msg == "" {
		msg = "Hazır"
		if a.tab.Spinning() {
			msg = "Karıştırılıyor…"
		}
	}
	return renderBar(statusBarStyle, max(1, a.width), " "+msg, colorSurface0)
}

func (a *App) renderFooter() string {
	bg := colorMantle
	keyStyle := lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Background(bg)
	descStyle := lipgloss.NewStyle().Foreground(colorMuted).Background(bg)
	offStyle := lipgloss.NewStyle().Foreground(colorSurface2).Strikethrough(true).Background(bg)
	space := lipgloss.NewStyle().Background(bg).Render(" ")
	sep := lipgloss.NewStyle().Background(bg).Render("  ")

	bindings := a.env.keys.HelpBindings(a.tab.Scope(), a.tab.Disabled)
	parts := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		parts = append(parts, renderHelp(kb, keyStyle, descStyle, offStyle, space))
	}
	return renderBar(footerStyle, max(1, a.width), strings.Join(parts, sep), bg)
}

func renderHelp(kb key.Binding, keyStyle, descStyle, offStyle lipgloss.Style, space string) string {
	h := kb.Help()
	if !kb.Enabled() {
		return offStyle.Render(h.Key + " " + h.Desc)
	}
	return keyStyle.Render(h.Key) + space + descStyle.Render(h.Desc)
}

func renderBar(style lipgloss.Style, width int, text string, bg lipgloss.TerminalColor) string {
	line := strings.ReplaceAll(text, "\n", " ")
	line = ansi.Truncate(line, width, "")
	if w := ansi.StringWidth(line); w < width {
		line += strings.Repeat(" ", width-w)
	}
	return style.Background(bg).Width(width).MaxWidth(width).Render(line)
}

func fitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
