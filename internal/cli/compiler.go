package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/neon-deploy/internal/cli/render"
)

// NewCompilerCmd creates the compiler command
func NewCompilerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compiler",
		Short: "Print solc standard-JSON settings",
		Long: `Print the "settings" object of a solc standard-JSON input built from the
compiler configuration: optimizer, optimizer details, viaIR and
outputSelection.

With --output json or yaml the solc version is included next to the settings.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ExportCompilerSettings.Run(cmd.Context())
			if err != nil {
				return err
			}

			return render.NewCompilerRenderer(cmd.OutOrStdout(), app.Config.Output).Render(result)
		},
	}
}
