package usecase

import (
	"context"
	"fmt"

	"github.com/trebuchet-org/neon-deploy/internal/domain/config"
)

// SolcSettings is the "settings" object of solc's standard JSON input
type SolcSettings struct {
	Optimizer       SolcOptimizer                  `json:"optimizer" yaml:"optimizer"`
	ViaIR           bool                           `json:"viaIR" yaml:"viaIR"`
	OutputSelection map[string]map[string][]string `json:"outputSelection" yaml:"outputSelection"`
}

type SolcOptimizer struct {
	Enabled bool                    `json:"enabled" yaml:"enabled"`
	Runs    int                     `json:"runs" yaml:"runs"`
	Details config.OptimizerDetails `json:"details" yaml:"details"`
}

// ExportCompilerSettingsResult carries the compiler version next to its settings
type ExportCompilerSettingsResult struct {
	Version  string       `json:"version" yaml:"version"`
	Settings SolcSettings `json:"settings" yaml:"settings"`
}

// ExportCompilerSettings renders the compiler block for solc --standard-json
type ExportCompilerSettings struct {
	config *config.RuntimeConfig
}

// NewExportCompilerSettings creates a new ExportCompilerSettings use case
func NewExportCompilerSettings(cfg *config.RuntimeConfig) *ExportCompilerSettings {
	return &ExportCompilerSettings{config: cfg}
}

// Run executes the use case
func (uc *ExportCompilerSettings) Run(ctx context.Context) (*ExportCompilerSettingsResult, error) {
	if uc.config.Deployment == nil {
		return nil, fmt.Errorf("deployment configuration not loaded")
	}
	compiler := uc.config.Deployment.Compiler

	outputs := make([]string, len(compiler.OutputSelection))
	for i, artifact := range compiler.OutputSelection {
		outputs[i] = string(artifact)
	}

	return &ExportCompilerSettingsResult{
		Version: compiler.Version,
		Settings: SolcSettings{
			Optimizer: SolcOptimizer{
				Enabled: compiler.Optimizer.Enabled,
				Runs:    compiler.Optimizer.Runs,
				Details: compiler.Optimizer.Details,
			},
			ViaIR: compiler.ViaIR,
			OutputSelection: map[string]map[string][]string{
				"*": {"*": outputs},
			},
		},
	}, nil
}
