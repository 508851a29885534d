package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/atinyakov/GadgetKeeper/internal/inventory"
	"github.com/atinyakov/GadgetKeeper/internal/vaultfile"
)

func newExportCommand(deps commandDeps) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the sealed inventory envelope to a file or stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 {
				return usageErrorf("export does not accept positional arguments")
			}
			return runSession(deps, false, func(store *inventory.Store, secret string) error {
				exp, err := store.ExportEncrypted(secret)
				if err != nil {
					return err
				}
				if out == "" {
					return printJSON(deps.out, exp)
				}
				if err := vaultfile.New(out, deps.log).Save(exp); err != nil {
					return err
				}
				_, err = fmt.Fprintf(deps.out, "exported version %d to %s\n", exp.Version, out)
				return err
			})
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Destination file (stdout when omitted)")
	return cmd
}

func newImportCommand(deps commandDeps) *cobra.Command {
	var in string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Replace the vault with a previously exported envelope",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 {
				return usageErrorf("import does not accept positional arguments")
			}
			if strings.TrimSpace(in) == "" {
				return usageErrorf("import requires --in")
			}
			secret, err := deps.secret()
			if err != nil {
				return err
			}

			exp, err := vaultfile.New(in, deps.log).Load()
			if err != nil {
				return mapCommandError(err)
			}

			// prove the envelope opens before it replaces the vault
			store := inventory.New()
			if err := store.ImportEncrypted(exp, secret); err != nil {
				return mapCommandError(err)
			}

			if err := vaultfile.New(deps.globals.VaultPath, deps.log).Save(exp); err != nil {
				return mapCommandError(err)
			}

			if deps.globals.JSON {
				return printJSON(deps.out, map[string]any{
					"imported": in,
					"gadgets":  len(store.List()),
					"version":  store.Version(),
				})
			}
			_, err = fmt.Fprintf(deps.out, "imported %d gadgets at version %d from %s\n",
				len(store.List()), store.Version(), in)
			return err
		},
	}

	cmd.Flags().StringVar(&in, "in", "", "Envelope file to import")
	return cmd
}
