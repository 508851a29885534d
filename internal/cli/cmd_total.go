package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/atinyakov/GadgetKeeper/internal/inventory"
)

func newTotalCommand(deps commandDeps) *cobra.Command {
	return &cobra.Command{
		Use:   "total",
		Short: "Print the combined value of all gadgets",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 {
				return usageErrorf("total does not accept positional arguments")
			}
			return runSession(deps, false, func(store *inventory.Store, _ string) error {
				total := store.TotalValue()
				if deps.globals.JSON {
					return printJSON(deps.out, map[string]float64{"total": total})
				}
				_, err := fmt.Fprintf(deps.out, "$%.2f\n", total)
				return err
			})
		},
	}
}
