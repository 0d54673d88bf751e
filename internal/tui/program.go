package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dexcard/dexcard/internal/logger"
	"github.com/dexcard/dexcard/internal/pokeapi"
	"github.com/dexcard/dexcard/internal/state"
)

// Run launches the card browser and blocks until the user quits.
func Run(store *state.Store, client *pokeapi.Client, log *logger.Logger) error {
	model := NewModel(store, client, log)
	program := tea.NewProgram(model, tea.WithAltScreen())

	final, err := program.Run()
	if m, ok := final.(Model); ok {
		m.Close()
	}
	return err
}
