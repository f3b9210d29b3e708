package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/neon-deploy/internal/cli/render"
	"github.com/trebuchet-org/neon-deploy/internal/usecase"
)

// NewNetworksCmd creates the networks command
func NewNetworksCmd() *cobra.Command {
	var check, asJSON bool

	cmd := &cobra.Command{
		Use:   "networks",
		Short: "List configured network targets",
		Long: `List every network target in declaration order with its endpoint,
network id and signing key count.

With --check each endpoint is asked for its chain id. Pinned network ids
are compared against the reported chain id.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.ListNetworksParams{Probe: check}
			result, err := app.ListNetworks.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			format := outputFormat(app.Config.Output, asJSON, false)
			return render.NewNetworksRenderer(cmd.OutOrStdout(), format).Render(result)
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "Fetch chain IDs from each endpoint")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}
