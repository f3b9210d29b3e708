package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/neon-deploy/internal/cli/render"
	domainconfig "github.com/trebuchet-org/neon-deploy/internal/domain/config"
)

// NewConfigCmd creates the config command
func NewConfigCmd() *cobra.Command {
	var asJSON, asYAML bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the resolved deployment configuration",
		Long: `Show the deployment configuration after applying built-in defaults,
neon-deploy.toml and environment variables.

Private keys are never printed. Networks show how many keys were found and
which variable they came from; API keys only show whether they are set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ShowConfig.Run(cmd.Context())
			if err != nil {
				return err
			}

			format := outputFormat(app.Config.Output, asJSON, asYAML)
			return render.NewConfigRenderer(cmd.OutOrStdout(), format).Render(result)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "Output as YAML")
	cmd.MarkFlagsMutuallyExclusive("json", "yaml")

	return cmd
}

// outputFormat applies per-command --json/--yaml shortcuts over the global --output
func outputFormat(global domainconfig.OutputFormat, asJSON, asYAML bool) domainconfig.OutputFormat {
	switch {
	case asJSON:
		return domainconfig.OutputJSON
	case asYAML:
		return domainconfig.OutputYAML
	default:
		return global
	}
}
