package cli

import (
	"github.com/spf13/cobra"

	"github.com/atinyakov/GadgetKeeper/internal/inventory"
)

func newUpdateCommand(deps commandDeps) *cobra.Command {
	var (
		name  string
		brand string
		price float64
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change fields of an existing gadget",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return usageErrorf("update requires exactly one gadget id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// only flags the caller actually set become part of the update
			var upd inventory.GadgetUpdate
			if cmd.Flags().Changed("name") {
				upd.Name = &name
			}
			if cmd.Flags().Changed("brand") {
				upd.Brand = &brand
			}
			if cmd.Flags().Changed("price") {
				upd.Price = &price
			}
			if upd.Name == nil && upd.Brand == nil && upd.Price == nil {
				return usageErrorf("update requires at least one of --name, --brand, --price")
			}

			return runSession(deps, true, func(store *inventory.Store, _ string) error {
				g, err := store.Update(args[0], upd)
				if err != nil {
					return err
				}
				return printGadget(deps, g)
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Updated gadget name")
	cmd.Flags().StringVar(&brand, "brand", "", "Updated gadget brand")
	cmd.Flags().Float64Var(&price, "price", 0, "Updated gadget price")
	return cmd
}
