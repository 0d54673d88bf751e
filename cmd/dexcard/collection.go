package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dexcard/dexcard/internal/format"
)

// newCollectionCmd prints the saved collection grouped by primary type.
func newCollectionCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "collection",
		Short: "List collected Pokémon grouped by type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, cleanup, err := newAppContext(root, true)
			if err != nil {
				return err
			}
			defer cleanup()

			groups := app.store.GroupedCollection()
			if len(groups) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Collection is empty. Search for a Pokémon and press c to collect it.")
				return nil
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Collection (%d)\n", app.store.CollectionSize())
			for _, group := range groups {
				fmt.Fprintf(out, "\n%s\n", format.Capitalize(group.Type))
				for _, name := range group.Names {
					fmt.Fprintf(out, "  %s\n", format.FormatName(name))
				}
			}
			return nil
		},
	}
}
