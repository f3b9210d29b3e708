package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/neon-deploy/internal/cli/render"
)

// NewAccountsCmd creates the accounts command
func NewAccountsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts [network]",
		Short: "Show signer addresses for a network",
		Long: `Build the key provider for one network and print its signer addresses
in key order. The first address is the default signer.

The network comes from the argument, --network or NEON_DEPLOY_NETWORK.
Without any of them an interactive picker is shown.

Examples:
  neon-deploy accounts neondev
  NEONDEV_PRIVATE_KEYS=0x... neon-deploy accounts -n neondev`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			var network string
			if len(args) > 0 {
				network = args[0]
			}

			session, err := app.SelectNetwork.Run(cmd.Context(), network)
			if err != nil {
				return err
			}
			defer session.Close()

			view := render.NewAccountsView(session.Target, session.Provider.Accounts())
			return render.NewAccountsRenderer(cmd.OutOrStdout(), app.Config.Output).Render(view)
		},
	}

	return cmd
}
