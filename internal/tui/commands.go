package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dexcard/dexcard/internal/pokeapi"
	"github.com/dexcard/dexcard/internal/view"
)

// fetchCmd runs the search for a name asynchronously and maps the raw record
// to its card view. The generation travels with the result so Update can
// drop responses from superseded searches.
func fetchCmd(ctx context.Context, gen int, client *pokeapi.Client, name string) tea.Cmd {
	return func() tea.Msg {
		raw, err := client.FetchPokemon(ctx, name)
		if err != nil {
			return fetchErrorMsg{Gen: gen, Err: err}
		}
		return fetchCompleteMsg{Gen: gen, Pokemon: view.FromRaw(raw)}
	}
}

// moveDetailCmd looks up one move's damage class and type. Best-effort: the
// zero detail comes back on any failure.
func moveDetailCmd(ctx context.Context, client *pokeapi.Client, moveName string) tea.Cmd {
	return func() tea.Msg {
		return moveDetailMsg{Move: moveName, Detail: client.FetchMoveDetail(ctx, moveName)}
	}
}

// clearErrorCmd dismisses the error notice after a pause.
func clearErrorCmd() tea.Cmd {
	return tea.Tick(5*time.Second, func(time.Time) tea.Msg {
		return clearErrorMsg{}
	})
}
