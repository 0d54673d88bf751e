package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dexcard/dexcard/internal/format"
	"github.com/dexcard/dexcard/internal/pokeapi"
	"github.com/dexcard/dexcard/internal/view"
)

// cardWidth is the interior width of the rendered card.
const cardWidth = 52

// CardOptions carries the cross-cutting state the card render needs from the
// store and the session.
type CardOptions struct {
	Shiny       bool
	Flipped     bool
	Favorite    bool
	Collected   bool
	Insight     string
	Trends      map[string]view.Trend
	MoveDetails map[string]pokeapi.MoveDetail
	ShowHints   bool
	UsedShiny   bool
}

// Card renders the full product card for a Pokémon, front or back.
func Card(p view.Pokemon, theme view.Theme, opts CardOptions) string {
	var body string
	if opts.Flipped {
		body = cardBack(p, theme, opts)
	} else {
		body = cardFront(p, theme, opts)
	}

	border := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Accent).
		Padding(1, 2).
		Width(cardWidth)

	sections := []string{border.Render(body)}
	if opts.Insight != "" {
		insight := lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Italic(true).
			Width(cardWidth).
			Render(opts.Insight)
		sections = append(sections, insight)
	}
	if opts.ShowHints {
		sections = append(sections, cardHints(opts))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func cardFront(p view.Pokemon, theme view.Theme, opts CardOptions) string {
	var b strings.Builder

	b.WriteString(cardHeader(p, theme, opts))
	b.WriteString("\n\n")
	b.WriteString(artworkLine(p, theme, opts))
	b.WriteString("\n\n")
	b.WriteString(TypeChips(p.Types, theme))
	b.WriteString("\n\n")

	for _, s := range p.SortedByValue() {
		b.WriteString(StatBar(s, theme, opts.Trends[s.Label]))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	balance := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(string(p.Balance))
	b.WriteString(fmt.Sprintf("Total %d  •  %s", p.TotalStats, balance))
	return b.String()
}

func cardBack(p view.Pokemon, theme view.Theme, opts CardOptions) string {
	var b strings.Builder

	b.WriteString(cardHeader(p, theme, opts))
	b.WriteString("\n\n")

	section := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)

	b.WriteString(section.Render("Abilities"))
	b.WriteString("\n")
	if len(p.Abilities) == 0 {
		b.WriteString("  —\n")
	}
	for _, ability := range p.Abilities {
		b.WriteString("  " + ability + "\n")
	}

	b.WriteString("\n")
	b.WriteString(section.Render("Moves"))
	b.WriteString("\n")
	if len(p.Moves) == 0 {
		b.WriteString("  —\n")
	}
	for _, move := range p.Moves {
		b.WriteString("  " + move + moveDetailSuffix(move, opts.MoveDetails))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func cardHeader(p view.Pokemon, theme view.Theme, opts CardOptions) string {
	name := lipgloss.NewStyle().Bold(true).Render(p.DisplayName)
	id := lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Render(p.DisplayID)

	badges := ""
	if opts.Favorite {
		badges += " ♥"
	}
	if opts.Collected {
		badges += " ◆"
	}
	if opts.Shiny {
		badges += " " + lipgloss.NewStyle().Foreground(theme.Accent).Render("✦ shiny")
	}
	return fmt.Sprintf("%s %s%s", name, id, badges)
}

// artworkLine shows the active variant's artwork URL; terminals don't render
// the image itself. An empty URL means the API had no image at all.
func artworkLine(p view.Pokemon, theme view.Theme, opts CardOptions) string {
	url := p.Artwork
	if opts.Shiny {
		url = p.ShinyArtwork
	}
	if url == "" {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true).Render("no artwork available")
	}
	return lipgloss.NewStyle().Foreground(theme.AccentSoft).Render(url)
}

// moveDetailSuffix appends the resolved damage class and type when the
// best-effort lookup has produced them.
func moveDetailSuffix(move string, details map[string]pokeapi.MoveDetail) string {
	detail, ok := details[move]
	if !ok || (detail.DamageClass == "" && detail.Type == "") {
		return ""
	}
	parts := make([]string, 0, 2)
	if detail.Type != "" {
		parts = append(parts, format.Capitalize(detail.Type))
	}
	if detail.DamageClass != "" {
		parts = append(parts, detail.DamageClass)
	}
	return fmt.Sprintf("  (%s)", strings.Join(parts, ", "))
}

func cardHints(opts CardOptions) string {
	hints := make([]string, 0, 2)
	if !opts.Flipped {
		hints = append(hints, "press f to flip")
	}
	if !opts.UsedShiny {
		hints = append(hints, "press s for shiny")
	}
	if len(hints) == 0 {
		return ""
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true).
		Render(strings.Join(hints, "  •  "))
}

// TypeChips renders the type labels as accented chips.
func TypeChips(types []string, theme view.Theme) string {
	if len(types) == 0 {
		return ""
	}
	chips := make([]string, 0, len(types))
	for _, typeName := range types {
		chipTheme := view.ForType(typeName)
		chips = append(chips, lipgloss.NewStyle().
			Foreground(chipTheme.Accent).
			Bold(true).
			Render("["+format.Capitalize(typeName)+"]"))
	}
	return strings.Join(chips, " ")
}
