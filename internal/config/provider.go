package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/neon-deploy/internal/domain/config"
)

// EnvPrefix prefixes every runtime setting read from the environment
const EnvPrefix = "NEON_DEPLOY"

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		projectRoot = FindProjectRoot()
	}

	// .env files feed the environment lookups below; existing variables win
	loadDotEnv(projectRoot)

	output := config.OutputFormat(strings.ToLower(v.GetString("output")))
	switch output {
	case "":
		output = config.OutputText
	case config.OutputText, config.OutputJSON, config.OutputYAML:
	default:
		return nil, fmt.Errorf("unsupported output format %q", output)
	}

	cfg := &config.RuntimeConfig{
		ProjectRoot:    projectRoot,
		Network:        v.GetString("network"),
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
		Output:         output,
		Timeout:        v.GetDuration("timeout"),
	}

	var opts []Option
	if file := resolveOverrideFile(projectRoot, v.GetString("config")); file != "" {
		cfg.ConfigFile = file
		opts = append(opts, WithFile(file))
	}

	deployment, err := Load(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load deployment configuration: %w", err)
	}
	cfg.Deployment = deployment

	return cfg, nil
}

// resolveOverrideFile returns the explicit path, or the default file when it exists
func resolveOverrideFile(projectRoot, explicit string) string {
	if explicit != "" {
		if !filepath.IsAbs(explicit) {
			explicit = filepath.Join(projectRoot, explicit)
		}
		return explicit
	}
	candidate := filepath.Join(projectRoot, OverrideFileName)
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}
	return ""
}

// loadDotEnv loads .env and .env.local from the project root if present
func loadDotEnv(projectRoot string) {
	envFiles := []string{
		filepath.Join(projectRoot, ".env"),
		filepath.Join(projectRoot, ".env.local"),
	}

	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				slog.Warn("failed to load env file", "path", envFile, "error", err)
			}
		}
	}
}

// FindProjectRoot walks up from the current directory looking for neon-deploy.toml.
// Falls back to the current directory since the override file is optional.
func FindProjectRoot() string {
	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}

	dir := cwd
	for {
		if _, err := os.Stat(filepath.Join(dir, OverrideFileName)); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string, cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	// Set up environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	// Set defaults
	v.SetDefault("timeout", "5m")
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("output", string(config.OutputText))
	v.SetDefault("project_root", projectRoot)

	if cmd != nil {
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			key := strings.ReplaceAll(f.Name, "-", "_")
			if err := v.BindPFlag(key, f); err != nil {
				panic(err)
			}
		})
	}

	return v
}
