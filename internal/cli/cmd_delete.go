package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/atinyakov/GadgetKeeper/internal/inventory"
)

func newDeleteCommand(deps commandDeps) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a gadget from the inventory",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return usageErrorf("delete requires exactly one gadget id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(deps, true, func(store *inventory.Store, _ string) error {
				if !store.Delete(args[0]) {
					return fmt.Errorf("%w: %s", inventory.ErrNotFound, args[0])
				}
				if deps.globals.JSON {
					return printJSON(deps.out, map[string]string{"deleted": args[0]})
				}
				_, err := fmt.Fprintf(deps.out, "deleted: %s\n", args[0])
				return err
			})
		},
	}
}
