package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/neon-deploy/internal/app"
	"github.com/trebuchet-org/neon-deploy/internal/config"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "neon-deploy",
		Short: "Deployment configuration for Neon EVM networks",
		Long: `neon-deploy resolves the deployment configuration for Neon EVM networks:
network targets with their signing keys, solc compiler settings, plugins,
test runner settings and explorer API keys.

Built-in defaults can be overridden by neon-deploy.toml in the project root
and by environment variables (<NETWORK>_RPC_URL, <NETWORK>_PRIVATE_KEYS,
DEPLOYER_PRIVATE_KEYS, ETHERSCAN_API_KEY).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			v := config.SetupViper(config.FindProjectRoot(), cmd)

			appInstance, err := app.InitApp(v)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			slog.SetDefault(appInstance.Logger)
			slog.Debug("deployment configuration loaded",
				"project_root", appInstance.Config.ProjectRoot,
				"config_file", appInstance.Config.ConfigFile,
				"networks", appInstance.Config.Deployment.NetworkNames(),
			)

			ctx := context.WithValue(cmd.Context(), appKey, appInstance)

			// PostRun is skipped when RunE fails; Execute cancels the parent
			// context in that case.
			if appInstance.Config.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
				cmd.PostRun = func(cmd *cobra.Command, args []string) {
					cancel()
				}
			}

			cmd.SetContext(ctx)

			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().StringP("network", "n", "", "Network to use (neondev, neontest, neonmain)")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Override file (defaults to neon-deploy.toml in the project root)")
	rootCmd.PersistentFlags().StringP("output", "o", "text", "Output format: text, json or yaml")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "main",
		Title: "Main Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands",
	})

	configCmd := NewConfigCmd()
	configCmd.GroupID = "main"
	rootCmd.AddCommand(configCmd)

	compilerCmd := NewCompilerCmd()
	compilerCmd.GroupID = "main"
	rootCmd.AddCommand(compilerCmd)

	networksCmd := NewNetworksCmd()
	networksCmd.GroupID = "management"
	rootCmd.AddCommand(networksCmd)

	accountsCmd := NewAccountsCmd()
	accountsCmd.GroupID = "management"
	rootCmd.AddCommand(accountsCmd)

	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// Execute runs cmd under a context that is canceled once it returns,
// releasing the command timeout whether or not the command failed
func Execute(ctx context.Context, cmd *cobra.Command) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	return cmd.ExecuteContext(ctx)
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}
