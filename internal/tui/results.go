package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/karmator/internal/shuffle"
)

const resultPlaceholder = "Karıştırmak için butona tıklayın"

func itemStyle(spinning bool) lipgloss.Style {
	if spinning {
		return spinItemStyle
	}
	return resultItemStyle
}

func boxStyle(spinning bool) lipgloss.Style {
	if spinning {
		return resultBoxSpinningStyle
	}
	return resultBoxStyle
}

// renderTeams draws the two team columns, or empty columns and the
// placeholder when there is nothing to show yet.
func renderTeams(teams shuffle.Teams, ok, spinning bool) string {
	col := func(title string, members []string) string {
		lines := []string{teamHeaderStyle.Render(title)}
		if !ok {
			lines = append(lines, placeholderStyle.Render("—"))
		}
		for _, n := range members {
			lines = append(lines, itemStyle(spinning).Render(n))
		}
		return strings.Join(lines, "\n")
	}
	a := col("Takım A", teams.A)
	b := col("Takım B", teams.B)
	divider := lipgloss.NewStyle().
		Foreground(colorBorder).
		Render(strings.TrimSuffix(strings.Repeat("│\n", max(lipgloss.Height(a), lipgloss.Height(b))), "\n"))
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(max(lipgloss.Width(a), 12)+2).Render(a),
		divider,
		lipgloss.NewStyle().PaddingLeft(2).Render(b),
	)
	if !ok {
		body += "\n\n" + placeholderStyle.Render(resultPlaceholder)
	}
	return boxStyle(spinning).Render(body)
}

// renderOrdered draws the numbered draw order.
func renderOrdered(order []string, ok, spinning bool) string {
	if !ok {
		return boxStyle(spinning).Render(placeholderStyle.Render(resultPlaceholder))
	}
	width := len(fmt.Sprint(len(order)))
	lines := make([]string, 0, len(order))
	for i, n := range order {
		lines = append(lines, numberStyle.Render(fmt.Sprintf("%*d.", width, i+1))+" "+itemStyle(spinning).Render(n))
	}
	return boxStyle(spinning).Render(strings.Join(lines, "\n"))
}
