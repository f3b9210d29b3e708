package usecase

import (
	"context"
	"fmt"

	"github.com/trebuchet-org/neon-deploy/internal/domain/config"
)

// ShowConfigResult is the redacted view of the loaded configuration.
// Key material and API key values never appear in it.
type ShowConfigResult struct {
	ConfigFile string                    `json:"configFile,omitempty" yaml:"configFile,omitempty"`
	Networks   []NetworkSummary          `json:"networks" yaml:"networks"`
	Compiler   config.CompilerSettings   `json:"compiler" yaml:"compiler"`
	Plugins    []string                  `json:"plugins" yaml:"plugins"`
	TestRunner config.TestRunnerSettings `json:"testRunner" yaml:"testRunner"`
	APIKeys    map[string]bool           `json:"apiKeys" yaml:"apiKeys"` // service -> configured
}

// NetworkSummary is the redacted view of a network target
type NetworkSummary struct {
	Name        string `json:"name" yaml:"name"`
	RPCEndpoint string `json:"rpcEndpoint" yaml:"rpcEndpoint"`
	NetworkID   string `json:"networkId" yaml:"networkId"`
	GasLimit    uint64 `json:"gasLimit" yaml:"gasLimit"`
	GasPrice    uint64 `json:"gasPrice" yaml:"gasPrice"`
	KeyCount    int    `json:"keyCount" yaml:"keyCount"`
	KeysEnv     string `json:"keysEnv,omitempty" yaml:"keysEnv,omitempty"`
}

// ShowConfig is a use case for showing configuration
type ShowConfig struct {
	config *config.RuntimeConfig
}

// NewShowConfig creates a new ShowConfig use case
func NewShowConfig(cfg *config.RuntimeConfig) *ShowConfig {
	return &ShowConfig{
		config: cfg,
	}
}

// Run executes the show config use case
func (uc *ShowConfig) Run(ctx context.Context) (*ShowConfigResult, error) {
	deployment := uc.config.Deployment
	if deployment == nil {
		return nil, fmt.Errorf("deployment configuration not loaded")
	}

	networks := make([]NetworkSummary, len(deployment.Networks))
	for i, n := range deployment.Networks {
		networks[i] = summarize(n)
	}

	apiKeys := make(map[string]bool, len(deployment.APIKeys))
	for service, key := range deployment.APIKeys {
		apiKeys[service] = key != ""
	}

	return &ShowConfigResult{
		ConfigFile: uc.config.ConfigFile,
		Networks:   networks,
		Compiler:   deployment.Compiler,
		Plugins:    append([]string{}, deployment.Plugins...),
		TestRunner: deployment.TestRunner,
		APIKeys:    apiKeys,
	}, nil
}

func summarize(n config.NetworkTarget) NetworkSummary {
	return NetworkSummary{
		Name:        n.Name,
		RPCEndpoint: n.RPCEndpoint,
		NetworkID:   n.NetworkID,
		GasLimit:    n.GasLimit,
		GasPrice:    n.GasPrice,
		KeyCount:    len(n.Credentials.PrivateKeys),
		KeysEnv:     n.Credentials.KeysEnv,
	}
}
