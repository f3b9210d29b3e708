package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/trebuchet-org/neon-deploy/internal/domain/config"
)

// OverrideFileName is looked up in the project root when no --config is given
const OverrideFileName = "neon-deploy.toml"

// overrideFile represents the raw neon-deploy.toml structure.
// Pointer fields distinguish "absent" from zero values.
type overrideFile struct {
	Networks map[string]overrideNetwork `toml:"networks"`
	Compiler *overrideCompiler          `toml:"compiler"`
	Plugins  []string                   `toml:"plugins"`
	Test     *overrideTestRunner        `toml:"test"`
	APIKeys  map[string]string          `toml:"api_keys"`

	pluginsSet bool
}

type overrideNetwork struct {
	RPCURL         *string `toml:"rpc_url"`
	NetworkID      *string `toml:"network_id"`
	Gas            *int64  `toml:"gas"`
	GasPrice       *int64  `toml:"gas_price"`
	PrivateKeysEnv *string `toml:"private_keys_env"`
}

type overrideCompiler struct {
	Version         *string            `toml:"version"`
	ViaIR           *bool              `toml:"via_ir"`
	OutputSelection []string           `toml:"output_selection"`
	Optimizer       *overrideOptimizer `toml:"optimizer"`
}

type overrideOptimizer struct {
	Enabled         *bool   `toml:"enabled"`
	Runs            *int    `toml:"runs"`
	Yul             *bool   `toml:"yul"`
	StackAllocation *bool   `toml:"stack_allocation"`
	OptimizerSteps  *string `toml:"optimizer_steps"`
}

type overrideTestRunner struct {
	TimeoutMs *int  `toml:"timeout_ms"`
	UseColors *bool `toml:"use_colors"`
}

// decodeOverrideFile parses the override file. Unknown keys are rejected so
// that typos do not silently fall back to defaults.
func decodeOverrideFile(path string) (*overrideFile, error) {
	var raw overrideFile
	md, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return nil, config.Malformed(path, "failed to parse override file", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, config.Malformed(path, fmt.Sprintf("unknown keys: %s", strings.Join(keys, ", ")), nil)
	}

	raw.pluginsSet = md.IsDefined("plugins")
	return &raw, nil
}

// apply overlays the file onto cfg. It returns the per-network key variable
// overrides, which are resolved together with the rest of the environment.
func (f *overrideFile) apply(cfg *config.Configuration, lookup LookupEnvFunc) (map[string]string, error) {
	expand := func(field, value string) (string, error) {
		if name, ok := DetectEnvVar(value); ok {
			if v, set := lookup(name); !set || v == "" {
				return "", config.Malformed(field, fmt.Sprintf("references unset variable %s", name), nil)
			}
		}
		return os.Expand(value, func(name string) string {
			v, _ := lookup(name)
			return v
		}), nil
	}

	keysEnv := make(map[string]string)

	// New targets are appended in name order so the result does not depend on map iteration
	names := make([]string, 0, len(f.Networks))
	for name := range f.Networks {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		override := f.Networks[name]
		idx := -1
		for i := range cfg.Networks {
			if cfg.Networks[i].Name == name {
				idx = i
				break
			}
		}
		if idx == -1 {
			cfg.Networks = append(cfg.Networks, config.NetworkTarget{
				Name:      name,
				NetworkID: config.NetworkIDAny,
				GasLimit:  defaultGasLimit,
				GasPrice:  defaultGasPrice,
			})
			idx = len(cfg.Networks) - 1
		}
		target := &cfg.Networks[idx]

		if override.RPCURL != nil {
			url, err := expand(fmt.Sprintf("networks.%s.rpc_url", name), *override.RPCURL)
			if err != nil {
				return nil, err
			}
			target.RPCEndpoint = url
		}
		if override.NetworkID != nil {
			target.NetworkID = *override.NetworkID
		}
		// Signed on decode so negative values are reported instead of wrapping
		if override.Gas != nil {
			if *override.Gas <= 0 {
				return nil, config.Malformed(fmt.Sprintf("networks.%s.gas", name), "must be greater than zero", nil)
			}
			target.GasLimit = uint64(*override.Gas)
		}
		if override.GasPrice != nil {
			if *override.GasPrice < 0 {
				return nil, config.Malformed(fmt.Sprintf("networks.%s.gas_price", name), "must not be negative", nil)
			}
			target.GasPrice = uint64(*override.GasPrice)
		}
		if override.PrivateKeysEnv != nil {
			keysEnv[name] = *override.PrivateKeysEnv
		}
	}

	if c := f.Compiler; c != nil {
		if c.Version != nil {
			cfg.Compiler.Version = *c.Version
		}
		if c.ViaIR != nil {
			cfg.Compiler.ViaIR = *c.ViaIR
		}
		if c.OutputSelection != nil {
			selection := make([]config.OutputArtifact, len(c.OutputSelection))
			for i, s := range c.OutputSelection {
				selection[i] = config.OutputArtifact(s)
			}
			cfg.Compiler.OutputSelection = selection
		}
		if opt := c.Optimizer; opt != nil {
			if opt.Enabled != nil {
				cfg.Compiler.Optimizer.Enabled = *opt.Enabled
			}
			if opt.Runs != nil {
				cfg.Compiler.Optimizer.Runs = *opt.Runs
			}
			if opt.Yul != nil {
				cfg.Compiler.Optimizer.Details.Yul = *opt.Yul
			}
			if opt.StackAllocation != nil {
				cfg.Compiler.Optimizer.Details.YulDetails.StackAllocation = *opt.StackAllocation
			}
			if opt.OptimizerSteps != nil {
				cfg.Compiler.Optimizer.Details.YulDetails.OptimizerSteps = *opt.OptimizerSteps
			}
		}
	}

	if f.pluginsSet {
		cfg.Plugins = append([]string{}, f.Plugins...)
	}

	if t := f.Test; t != nil {
		if t.TimeoutMs != nil {
			cfg.TestRunner.TimeoutMs = *t.TimeoutMs
		}
		if t.UseColors != nil {
			cfg.TestRunner.UseColors = *t.UseColors
		}
	}

	for service, raw := range f.APIKeys {
		// A missing variable gives an empty key, not an error. Built-in
		// variables such as ETHERSCAN_API_KEY are applied afterwards by Load.
		cfg.APIKeys[service] = os.Expand(raw, func(name string) string {
			v, _ := lookup(name)
			return v
		})
	}

	return keysEnv, nil
}
