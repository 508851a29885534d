package cli

import (
	"cmp"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/atinyakov/GadgetKeeper/internal/config"
	"github.com/atinyakov/GadgetKeeper/internal/models"
)

// BuildInfo carries version metadata injected at link time.
type BuildInfo struct {
	Version   string `json:"version"`
	BuildDate string `json:"build_date"`
}

type globalOptions struct {
	VaultPath string
	Secret    string
	JSON      bool
}

type commandDeps struct {
	out     io.Writer
	log     *zap.Logger
	globals *globalOptions
}

// NewRootCommand assembles the gadgetkeeper command tree. Defaults for the
// persistent flags come from the resolved configuration.
func NewRootCommand(out io.Writer, build BuildInfo, opts *config.Options, log *zap.Logger) *cobra.Command {
	globals := &globalOptions{}
	deps := commandDeps{out: out, log: log, globals: globals}

	cmd := &cobra.Command{
		Use:           "gadgetkeeper",
		Short:         "Encrypted gadget inventory",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(out)
	cmd.SetErr(out)

	cmd.PersistentFlags().StringVar(&globals.VaultPath, "vault", opts.VaultPath, "Path to the encrypted vault file")
	cmd.PersistentFlags().StringVar(&globals.Secret, "secret", "", "Vault secret (GADGETKEEPER_SECRET is preferred)")
	cmd.PersistentFlags().BoolVar(&globals.JSON, "json", false, "Print machine-readable output")

	cmd.AddCommand(
		newAddCommand(deps),
		newGetCommand(deps),
		newListCommand(deps),
		newFindCommand(deps),
		newTotalCommand(deps),
		newUpdateCommand(deps),
		newDeleteCommand(deps),
		newHistoryCommand(deps),
		newExportCommand(deps),
		newImportCommand(deps),
		newVersionCommand(out, deps, build),
	)
	cmd.InitDefaultCompletionCmd()
	return cmd
}

func newVersionCommand(out io.Writer, deps commandDeps, build BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			if deps.globals.JSON {
				return printJSON(out, build)
			}
			fmt.Fprintf(out, "Build version: %s\n", cmp.Or(build.Version, "N/A"))
			_, err := fmt.Fprintf(out, "Build date: %s\n", cmp.Or(build.BuildDate, "N/A"))
			return err
		},
	}
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printGadget(deps commandDeps, g models.Gadget) error {
	if deps.globals.JSON {
		return printJSON(deps.out, g)
	}
	_, err := fmt.Fprintf(deps.out, "%s  %s / %s  $%.2f  added %s\n",
		g.ID, g.Name, g.Brand, g.Price, g.AddedAt.Format(time.RFC3339))
	return err
}

func printGadgets(deps commandDeps, gadgets []models.Gadget) error {
	if deps.globals.JSON {
		return printJSON(deps.out, gadgets)
	}
	for _, g := range gadgets {
		if err := printGadget(deps, g); err != nil {
			return err
		}
	}
	return nil
}
