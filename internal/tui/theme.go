package tui

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette, true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface2 lipgloss.Color = "#585b70"
	colorSurface0 lipgloss.Color = "#313244"
	colorMantle   lipgloss.Color = "#181825"
)

// Semantic aliases.
const (
	colorAccent  = colorPink
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
	colorWarning = colorYellow
	colorInfo    = colorTeal
	colorMuted   = colorSubtext0
	colorBorder  = colorSurface2
)

var (
	appStyle = lipgloss.NewStyle().Foreground(colorText)

	headerAppStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	headerBarStyle = lipgloss.NewStyle().
			Background(colorMantle).
			Foreground(colorText)
	tabSepStyle = lipgloss.NewStyle().
			Foreground(colorBorder).
			Background(colorMantle)

	activeTabStyle = lipgloss.NewStyle().
			Background(colorSurface0).
			Foreground(colorAccent).
			Bold(true).
			Padding(0, 1)
	inactiveTabStyle = lipgloss.NewStyle().
				Background(colorMantle).
				Foreground(colorOverlay1).
				Padding(0, 1)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Background(colorSurface0)
	footerStyle = lipgloss.NewStyle().
			Background(colorMantle)

	resultBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 2)
	resultBoxSpinningStyle = resultBoxStyle.
				BorderForeground(colorWarning)
	teamHeaderStyle  = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	resultItemStyle  = lipgloss.NewStyle().Foreground(colorText)
	spinItemStyle    = lipgloss.NewStyle().Foreground(colorOverlay0)
	numberStyle      = lipgloss.NewStyle().Foreground(colorMuted)
	placeholderStyle = lipgloss.NewStyle().
				Foreground(colorOverlay1).
				Italic(true)

	rowCursorStyle  = lipgloss.NewStyle().Foreground(colorFocus).Bold(true)
	invalidRowStyle = lipgloss.NewStyle().Foreground(colorError)
	hintStyle       = lipgloss.NewStyle().Foreground(colorInfo)
	sectionStyle    = lipgloss.NewStyle().Foreground(colorFocus).Bold(true)
)
