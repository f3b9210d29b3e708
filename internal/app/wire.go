//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/neon-deploy/internal/adapters"
	"github.com/trebuchet-org/neon-deploy/internal/config"
	"github.com/trebuchet-org/neon-deploy/internal/logging"
	"github.com/trebuchet-org/neon-deploy/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper) (*App, error) {
	wire.Build(
		// Runtime configuration, including the deployment configuration
		config.Provider,

		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewShowConfig,
		usecase.NewListNetworks,
		usecase.NewSelectNetwork,
		usecase.NewExportCompilerSettings,

		// App
		NewApp,
	)
	return nil, nil
}
