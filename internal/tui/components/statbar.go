// Package components holds the standalone card renderers shared by the TUI
// and the one-shot CLI commands.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dexcard/dexcard/internal/view"
)

// statBarWidth is the fixed width of the filled bar segment.
const statBarWidth = 24

// TrendMarker renders the movement arrow for a stat, or "" when no trend is
// known.
func TrendMarker(trend view.Trend) string {
	switch trend {
	case view.TrendUp:
		return "▲"
	case view.TrendDown:
		return "▼"
	case view.TrendSame:
		return "·"
	default:
		return ""
	}
}

// StatBar renders one stat row: label, value, filled bar, rank marker and
// optional trend arrow.
func StatBar(s view.StatView, theme view.Theme, trend view.Trend) string {
	filled := int(s.Percent / 100 * statBarWidth)
	if filled > statBarWidth {
		filled = statBarWidth
	}
	if filled < 1 && s.Value > 0 {
		filled = 1
	}

	barStyle := lipgloss.NewStyle().Foreground(theme.AccentSoft)
	if s.IsHighlight {
		barStyle = lipgloss.NewStyle().Foreground(theme.Accent)
	}
	bar := barStyle.Render(strings.Repeat("█", filled) + strings.Repeat("░", statBarWidth-filled))

	marker := " "
	switch {
	case s.IsStrongest:
		marker = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("●")
	case s.IsWeakest:
		marker = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Render("○")
	}

	row := fmt.Sprintf("%-12s %4d %s %s", s.Label, s.Value, bar, marker)
	if arrow := TrendMarker(trend); arrow != "" {
		row += " " + arrow
	}
	return row
}
