package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/atinyakov/GadgetKeeper/internal/inventory"
)

func newAddCommand(deps commandDeps) *cobra.Command {
	var (
		name  string
		brand string
		price float64
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a gadget to the inventory",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 {
				return usageErrorf("add does not accept positional arguments")
			}
			if strings.TrimSpace(name) == "" {
				return usageErrorf("add requires --name")
			}
			if strings.TrimSpace(brand) == "" {
				return usageErrorf("add requires --brand")
			}

			return runSession(deps, true, func(store *inventory.Store, _ string) error {
				g, err := store.Add(name, brand, price)
				if err != nil {
					return err
				}
				return printGadget(deps, g)
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Gadget name")
	cmd.Flags().StringVar(&brand, "brand", "", "Gadget brand")
	cmd.Flags().Float64Var(&price, "price", 0, "Gadget price")
	return cmd
}
