package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dexcard/dexcard/internal/state"
	apperrors "github.com/dexcard/dexcard/pkg/errors"
)

// Update handles incoming messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case fetchCompleteMsg:
		// A response from a superseded search; the newer query wins.
		if msg.Gen != m.generation {
			return m, nil
		}
		m.cancelFetch = nil
		m.applyFetched(msg.Pokemon)
		return m, nil

	case fetchErrorMsg:
		if msg.Gen != m.generation {
			return m, nil
		}
		m.cancelFetch = nil
		m.loading = false
		m.errMsg = apperrors.UserMessage(msg.Err)
		m.log.Error(msg.Err, "fetch failed")
		return m, clearErrorCmd()

	case moveDetailMsg:
		m.moveDetails[msg.Move] = msg.Detail
		return m, nil

	case clearErrorMsg:
		m.errMsg = ""
		return m, nil
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.Close()
		return m, tea.Quit
	}

	switch m.mode {
	case modeHome:
		return m.handleHomeKeys(msg)
	case modeCard:
		return m.handleCardKeys(msg)
	case modeCollection:
		return m.handleCollectionKeys(msg)
	case modeHelp:
		m.mode = m.lastMode
		return m, nil
	}
	return m, nil
}

func (m Model) handleHomeKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		query := m.input.Value()
		if query == "" && m.starterIndex >= 0 {
			query = starters[m.starterIndex].Name
		}
		return m, m.submitSearch(query)

	case tea.KeyTab:
		m.starterIndex = (m.starterIndex + 1) % len(starters)
		return m, nil

	case tea.KeyShiftTab:
		m.starterIndex--
		if m.starterIndex < 0 {
			m.starterIndex = len(starters) - 1
		}
		return m, nil

	case tea.KeyUp, tea.KeyDown:
		// Cycle the search history through the input, shell style.
		history := m.store.History()
		if len(history) == 0 {
			return m, nil
		}
		current := indexOf(history, m.input.Value())
		if msg.Type == tea.KeyUp {
			current++
		} else {
			current--
		}
		if current < 0 {
			m.input.SetValue("")
			return m, nil
		}
		if current >= len(history) {
			current = len(history) - 1
		}
		m.input.SetValue(history[current])
		m.input.CursorEnd()
		return m, nil

	case tea.KeyCtrlB:
		m.lastMode = m.mode
		m.mode = modeCollection
		return m, nil

	case tea.KeyEsc:
		m.input.SetValue("")
		m.starterIndex = -1
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleCardKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "f", "enter":
		return m.flipCard()

	case "s":
		return m.toggleShiny()

	case "v":
		if m.current != nil {
			m.store.ToggleFavorite(m.current.Name)
		}
		return m, nil

	case "c":
		if m.current != nil && m.current.PrimaryType != "" {
			m.store.MarkCollected(m.current.Name, m.current.PrimaryType)
		}
		return m, nil

	case "b":
		m.lastMode = m.mode
		m.mode = modeCollection
		m.collectionCursor = 0
		return m, nil

	case "/":
		m.mode = modeHome
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink

	case "?":
		m.lastMode = m.mode
		m.mode = modeHelp
		return m, nil

	case "esc":
		m.mode = modeHome
		m.input.SetValue("")
		m.input.Focus()
		return m, nil

	case "q":
		m.Close()
		return m, tea.Quit
	}
	return m, nil
}

// flipCard toggles the active card face and remembers it for the session.
// Flipping to the back kicks off best-effort detail lookups for any move not
// yet resolved.
func (m Model) flipCard() (tea.Model, tea.Cmd) {
	if m.current == nil {
		return m, nil
	}

	flipped := !m.currentCardMemory().Flipped
	m.store.SetCardState(m.current.Name, state.CardMemoryPatch{Flipped: &flipped})

	if !flipped {
		return m, nil
	}

	var cmds []tea.Cmd
	for _, move := range m.current.Moves {
		if _, ok := m.moveDetails[move]; ok {
			continue
		}
		cmds = append(cmds, moveDetailCmd(context.Background(), m.client, move))
	}
	return m, tea.Batch(cmds...)
}

// toggleShiny flips the global shiny toggle and stamps the card's memory,
// including the hint-suppressing UsedShiny marker.
func (m Model) toggleShiny() (tea.Model, tea.Cmd) {
	if m.current == nil {
		return m, nil
	}

	value := !m.store.Shiny()
	used := true
	m.store.SetShiny(value)
	m.store.SetCardState(m.current.Name, state.CardMemoryPatch{Shiny: &value, UsedShiny: &used})
	return m, nil
}

func (m Model) handleCollectionKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	entries := m.flattenedCollection()

	switch msg.String() {
	case "up", "k":
		if m.collectionCursor > 0 {
			m.collectionCursor--
		}
		return m, nil

	case "down", "j":
		if m.collectionCursor < len(entries)-1 {
			m.collectionCursor++
		}
		return m, nil

	case "enter":
		if m.collectionCursor < len(entries) {
			m.mode = m.lastMode
			return m, m.submitSearch(entries[m.collectionCursor])
		}
		return m, nil

	case "x":
		if m.collectionCursor < len(entries) {
			m.store.RemoveCollected(entries[m.collectionCursor])
			if m.collectionCursor > 0 {
				m.collectionCursor--
			}
		}
		return m, nil

	case "esc", "b":
		m.mode = m.lastMode
		return m, nil

	case "q":
		m.Close()
		return m, tea.Quit
	}
	return m, nil
}

// flattenedCollection lists collected names in overlay display order.
func (m Model) flattenedCollection() []string {
	var names []string
	for _, group := range m.store.GroupedCollection() {
		names = append(names, group.Names...)
	}
	return names
}

func indexOf(values []string, target string) int {
	for i, v := range values {
		if v == target {
			return i
		}
	}
	return -1
}
