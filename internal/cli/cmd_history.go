package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/atinyakov/GadgetKeeper/internal/inventory"
	"github.com/atinyakov/GadgetKeeper/internal/models"
)

func newHistoryCommand(deps commandDeps) *cobra.Command {
	var (
		action string
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the change log, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 {
				return usageErrorf("history does not accept positional arguments")
			}
			var filter models.Action
			if action != "" {
				filter = models.Action(strings.ToUpper(action))
				if !filter.Valid() {
					return usageErrorf("unknown action %q: use ADD, UPDATE or DELETE", action)
				}
			}
			if limit < 0 {
				return usageErrorf("--limit must not be negative")
			}

			return runSession(deps, false, func(store *inventory.Store, _ string) error {
				entries := store.History()
				if filter != "" {
					kept := entries[:0]
					for _, e := range entries {
						if e.Action == filter {
							kept = append(kept, e)
						}
					}
					entries = kept
				}
				if limit > 0 && len(entries) > limit {
					entries = entries[:limit]
				}

				if deps.globals.JSON {
					return printJSON(deps.out, entries)
				}
				for _, e := range entries {
					if _, err := fmt.Fprintf(deps.out, "%s  %-6s  %s / %s  $%.2f\n",
						e.Timestamp.Format(time.RFC3339), e.Action,
						e.Gadget.Name, e.Gadget.Brand, e.Gadget.Price); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&action, "action", "", "Only show ADD, UPDATE or DELETE entries")
	cmd.Flags().IntVar(&limit, "limit", 0, "Cap the number of entries shown (0 means all)")
	return cmd
}
