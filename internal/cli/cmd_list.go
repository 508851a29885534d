package cli

import (
	"github.com/spf13/cobra"

	"github.com/atinyakov/GadgetKeeper/internal/inventory"
)

func newListCommand(deps commandDeps) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List gadgets, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 {
				return usageErrorf("list does not accept positional arguments")
			}
			return runSession(deps, false, func(store *inventory.Store, _ string) error {
				return printGadgets(deps, store.List())
			})
		},
	}
}

func newFindCommand(deps commandDeps) *cobra.Command {
	return &cobra.Command{
		Use:   "find <query>",
		Short: "Search gadgets by name or brand",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return usageErrorf("find requires exactly one query")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(deps, false, func(store *inventory.Store, _ string) error {
				return printGadgets(deps, store.Find(args[0]))
			})
		},
	}
}
