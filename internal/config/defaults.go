package config

import (
	"github.com/trebuchet-org/neon-deploy/internal/domain/config"
)

const (
	NeonDevnetURL  = "https://devnet.neonevm.org"
	NeonTestnetURL = "https://testnet.neonevm.org"
	NeonMainnetURL = "https://neon-proxy-mainnet.solana.p2p.org"

	defaultGasLimit uint64 = 3000000000
	defaultGasPrice uint64 = 1000000000

	defaultSolcVersion    = "0.8.26"
	defaultOptimizerRuns  = 200
	defaultOptimizerSteps = "dhfoDgvulfnTUtnIf"

	defaultTestTimeoutMs = 100000
)

// apiKeyEnv maps each built-in verification service to the variable holding its key
var apiKeyEnv = map[string]string{
	"etherscan": "ETHERSCAN_API_KEY",
}

// defaultConfiguration returns a fresh copy of the compiled-in configuration.
// Credentials and API keys are left empty; they only ever come from the environment.
func defaultConfiguration() *config.Configuration {
	return &config.Configuration{
		Networks: []config.NetworkTarget{
			defaultTarget("neondev", NeonDevnetURL),
			defaultTarget("neontest", NeonTestnetURL),
			defaultTarget("neonmain", NeonMainnetURL),
		},
		Compiler: config.CompilerSettings{
			Version: defaultSolcVersion,
			Optimizer: config.OptimizerConfig{
				Enabled: true,
				Runs:    defaultOptimizerRuns,
				Details: config.OptimizerDetails{
					Yul: true,
					YulDetails: config.YulDetails{
						StackAllocation: true,
						OptimizerSteps:  defaultOptimizerSteps,
					},
				},
			},
			ViaIR:           true,
			OutputSelection: config.KnownOutputArtifacts(),
		},
		Plugins: []string{
			"truffle-plugin-verify",
			"truffle-contract-size",
		},
		TestRunner: config.TestRunnerSettings{
			TimeoutMs: defaultTestTimeoutMs,
			UseColors: true,
		},
		APIKeys: config.APIKeys{},
	}
}

func defaultTarget(name, endpoint string) config.NetworkTarget {
	return config.NetworkTarget{
		Name:        name,
		RPCEndpoint: endpoint,
		NetworkID:   config.NetworkIDAny,
		GasLimit:    defaultGasLimit,
		GasPrice:    defaultGasPrice,
	}
}
