package app

import (
	"log/slog"

	"github.com/trebuchet-org/neon-deploy/internal/domain/config"
	"github.com/trebuchet-org/neon-deploy/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig

	// Shared dependencies
	Logger *slog.Logger

	// Use cases
	ShowConfig             *usecase.ShowConfig
	ListNetworks           *usecase.ListNetworks
	SelectNetwork          *usecase.SelectNetwork
	ExportCompilerSettings *usecase.ExportCompilerSettings
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	logger *slog.Logger,
	showConfig *usecase.ShowConfig,
	listNetworks *usecase.ListNetworks,
	selectNetwork *usecase.SelectNetwork,
	exportCompilerSettings *usecase.ExportCompilerSettings,
) (*App, error) {
	return &App{
		Config:                 cfg,
		Logger:                 logger,
		ShowConfig:             showConfig,
		ListNetworks:           listNetworks,
		SelectNetwork:          selectNetwork,
		ExportCompilerSettings: exportCompilerSettings,
	}, nil
}
