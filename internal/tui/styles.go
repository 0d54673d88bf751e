package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	mutedColor  = lipgloss.Color("245")
	subtleColor = lipgloss.Color("240")
	textColor   = lipgloss.Color("252")
	errorColor  = lipgloss.Color("196")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			PaddingLeft(1).
			PaddingRight(1)

	taglineStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true)

	searchBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(0, 1).
			MarginTop(1).
			MarginBottom(1)

	chipStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Padding(0, 1)

	selectedChipStyle = lipgloss.NewStyle().
				Bold(true).
				Padding(0, 1).
				Reverse(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginTop(1)

	errorNoticeStyle = lipgloss.NewStyle().
				Foreground(errorColor).
				Bold(true).
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(errorColor).
				Padding(0, 2).
				MarginTop(1)

	hintStyle = lipgloss.NewStyle().
			Foreground(subtleColor).
			Italic(true)

	footerStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(subtleColor).
			PaddingTop(1).
			MarginTop(1)

	overlayTitleStyle = lipgloss.NewStyle().
				Bold(true).
				MarginBottom(1)

	groupHeaderStyle = lipgloss.NewStyle().
				Foreground(mutedColor).
				Bold(true).
				MarginTop(1)

	selectedItemStyle = lipgloss.NewStyle().
				Bold(true).
				Reverse(true).
				Padding(0, 1)

	itemStyle = lipgloss.NewStyle().
			Padding(0, 1)

	emptyStateStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true).
			PaddingTop(2).
			PaddingBottom(2)

	helpKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Width(10)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(textColor)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212"))
)
