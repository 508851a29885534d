package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/atinyakov/GadgetKeeper/internal/inventory"
)

func newGetCommand(deps commandDeps) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one gadget by id",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return usageErrorf("get requires exactly one gadget id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(deps, false, func(store *inventory.Store, _ string) error {
				g, ok := store.Get(args[0])
				if !ok {
					return fmt.Errorf("%w: %s", inventory.ErrNotFound, args[0])
				}
				return printGadget(deps, g)
			})
		},
	}
}
