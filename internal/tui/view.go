package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dexcard/dexcard/internal/format"
	"github.com/dexcard/dexcard/internal/tui/components"
	"github.com/dexcard/dexcard/internal/view"
)

// View renders the current model state.
func (m Model) View() string {
	switch m.mode {
	case modeCard:
		return m.renderCardView()
	case modeCollection:
		return m.renderCollectionView()
	case modeHelp:
		return m.renderHelpView()
	default:
		return m.renderHomeView()
	}
}

func (m Model) renderHomeView() string {
	var sections []string

	title := titleStyle.Foreground(m.theme.Accent).Render("Dexcard")
	sections = append(sections, title)
	sections = append(sections, taglineStyle.Render("The minimalist terminal Pokédex"))

	sections = append(sections, m.renderStarterOrbit())
	sections = append(sections, searchBoxStyle.BorderForeground(m.theme.Accent).Render(m.input.View()))

	if chips := m.renderHistoryChips(); chips != "" {
		sections = append(sections, chips)
	}

	switch {
	case m.loading:
		sections = append(sections, statusStyle.Render(m.spinner.View()+" Fetching data from PokéAPI…"))
	case m.errMsg != "":
		sections = append(sections, errorNoticeStyle.Render(m.errMsg))
	default:
		sections = append(sections, statusStyle.Render("Search for a Pokémon to reveal its product card."))
	}

	sections = append(sections, footerStyle.Render("enter search • tab starters • ↑/↓ history • ctrl+b collection • ctrl+c quit"))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderStarterOrbit shows the six starters as selectable chips; tab cycles
// the highlight.
func (m Model) renderStarterOrbit() string {
	chips := make([]string, 0, len(starters))
	for i, st := range starters {
		label := st.Label
		theme := view.ForType(st.Type)
		if i == m.starterIndex {
			chips = append(chips, selectedChipStyle.Foreground(theme.Accent).Render(label))
		} else {
			chips = append(chips, chipStyle.Foreground(theme.Accent).Render(label))
		}
	}
	return lipgloss.NewStyle().MarginTop(1).Render(strings.Join(chips, " "))
}

func (m Model) renderHistoryChips() string {
	history := m.store.History()
	if len(history) == 0 {
		return ""
	}
	chips := make([]string, 0, len(history))
	for _, name := range history {
		chips = append(chips, chipStyle.Render(name))
	}
	return hintStyle.Render("recent: ") + strings.Join(chips, "")
}

func (m Model) renderCardView() string {
	if m.current == nil {
		return m.renderHomeView()
	}

	mem := m.currentCardMemory()
	card := components.Card(*m.current, m.theme, components.CardOptions{
		Shiny:       m.store.Shiny(),
		Flipped:     mem.Flipped,
		Favorite:    m.store.IsFavorite(m.current.Name),
		Collected:   m.store.IsCollected(m.current.Name),
		Insight:     m.insight,
		Trends:      m.trends,
		MoveDetails: m.moveDetails,
		ShowHints:   true,
		UsedShiny:   mem.UsedShiny,
	})

	var sections []string
	sections = append(sections, card)

	if m.loading {
		sections = append(sections, statusStyle.Render(m.spinner.View()+" Fetching data from PokéAPI…"))
	}
	if m.errMsg != "" {
		sections = append(sections, errorNoticeStyle.Render(m.errMsg))
	}

	bag := fmt.Sprintf("collection %d", m.store.CollectionSize())
	sections = append(sections, footerStyle.Render(
		"f flip • s shiny • v favorite • c collect • b "+bag+" • / search • esc home • q quit"))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderCollectionView() string {
	var sections []string
	sections = append(sections, overlayTitleStyle.Render("Collection Bag"))
	sections = append(sections, hintStyle.Render(fmt.Sprintf("%d collected", m.store.CollectionSize())))

	groups := m.store.GroupedCollection()
	if len(groups) == 0 {
		sections = append(sections, emptyStateStyle.Render("No Pokémon collected yet."))
	}

	index := 0
	for _, group := range groups {
		theme := view.ForType(group.Type)
		sections = append(sections, groupHeaderStyle.Foreground(theme.Accent).Render(format.Capitalize(group.Type)))
		for _, name := range group.Names {
			if index == m.collectionCursor {
				sections = append(sections, selectedItemStyle.Render(name))
			} else {
				sections = append(sections, itemStyle.Render(name))
			}
			index++
		}
	}

	sections = append(sections, footerStyle.Render("↑/↓ move • enter open • x remove • esc back"))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHelpView() string {
	rows := [][2]string{
		{"enter", "search / flip card"},
		{"tab", "cycle starters"},
		{"f", "flip card"},
		{"s", "toggle shiny"},
		{"v", "toggle favorite"},
		{"c", "add to collection"},
		{"b", "open collection"},
		{"/", "new search"},
		{"esc", "back"},
		{"q", "quit"},
	}

	var b strings.Builder
	b.WriteString(overlayTitleStyle.Render("Keys"))
	b.WriteString("\n")
	for _, row := range rows {
		b.WriteString(helpKeyStyle.Render(row[0]))
		b.WriteString(helpDescStyle.Render(row[1]))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("press any key to return"))
	return b.String()
}
