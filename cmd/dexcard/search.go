package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dexcard/dexcard/internal/format"
	"github.com/dexcard/dexcard/internal/pokeapi"
	"github.com/dexcard/dexcard/internal/tui/components"
	"github.com/dexcard/dexcard/internal/view"
	"github.com/dexcard/dexcard/pkg/errors"
)

type searchFlags struct {
	shiny   bool
	flipped bool
	collect bool
}

// newSearchCmd fetches a single Pokémon and prints its card, for scripts and
// non-interactive shells.
func newSearchCmd(root *rootFlags) *cobra.Command {
	flags := &searchFlags{}

	cmd := &cobra.Command{
		Use:   "search <name>",
		Short: "Fetch a Pokémon and print its card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, root, flags, args[0])
		},
	}

	cmd.Flags().BoolVar(&flags.shiny, "shiny", false, "Render the shiny variant")
	cmd.Flags().BoolVar(&flags.flipped, "flipped", false, "Print the back of the card")
	cmd.Flags().BoolVar(&flags.collect, "collect", false, "Add the result to the collection")

	return cmd
}

func runSearch(cmd *cobra.Command, root *rootFlags, flags *searchFlags, query string) error {
	app, cleanup, err := newAppContext(root, true)
	if err != nil {
		return err
	}
	defer cleanup()

	name := format.NormalizeQuery(query)
	if name == "" {
		return fmt.Errorf("empty search query")
	}

	raw, err := app.client.FetchPokemon(context.Background(), name)
	if err != nil {
		if msg := errors.UserMessage(err); msg != "" {
			return fmt.Errorf("%s", msg)
		}
		return err
	}

	p := view.FromRaw(raw)
	app.store.AddHistory(p.Name)
	if flags.collect {
		app.store.MarkCollected(p.Name, p.PrimaryType)
	}

	opts := components.CardOptions{
		Shiny:     flags.shiny,
		Flipped:   flags.flipped,
		Favorite:  app.store.IsFavorite(p.Name),
		Collected: app.store.IsCollected(p.Name),
	}
	if flags.flipped {
		opts.MoveDetails = fetchMoveDetails(app, p)
	}

	fmt.Fprintln(cmd.OutOrStdout(), components.Card(p, view.ForPokemon(p), opts))
	return nil
}

// fetchMoveDetails resolves damage class and type for the listed moves.
// Lookups are best effort; a miss leaves the move without a suffix.
func fetchMoveDetails(app *appContext, p view.Pokemon) map[string]pokeapi.MoveDetail {
	details := make(map[string]pokeapi.MoveDetail, len(p.Moves))
	for _, move := range p.Moves {
		detail := app.client.FetchMoveDetail(context.Background(), move)
		if detail != (pokeapi.MoveDetail{}) {
			details[move] = detail
		}
	}
	return details
}
