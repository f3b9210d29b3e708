package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/blang/semver/v4"
	"github.com/samber/lo"
	"github.com/trebuchet-org/neon-deploy/internal/domain/config"
)

var allowedEndpointSchemes = []string{"http", "https", "ws", "wss"}

// Validate checks the structural invariants of a configuration.
// The first violation is returned as a MalformedConfigurationError.
func Validate(cfg *config.Configuration) error {
	if cfg == nil {
		return config.Malformed("configuration", "is nil", nil)
	}

	if err := validateNetworks(cfg.Networks); err != nil {
		return err
	}
	if err := validateCompiler(cfg.Compiler); err != nil {
		return err
	}

	for i, plugin := range cfg.Plugins {
		if strings.TrimSpace(plugin) == "" {
			return config.Malformed(fmt.Sprintf("plugins[%d]", i), "plugin identifier is empty", nil)
		}
	}

	if cfg.TestRunner.TimeoutMs < 0 {
		return config.Malformed("test.timeout_ms", "must not be negative", nil)
	}

	if cfg.APIKeys == nil {
		return config.Malformed("api_keys", "is missing", nil)
	}

	return nil
}

func validateNetworks(networks []config.NetworkTarget) error {
	if len(networks) == 0 {
		return config.Malformed("networks", "at least one network target is required", nil)
	}

	names := make([]string, len(networks))
	for i, n := range networks {
		if strings.TrimSpace(n.Name) == "" {
			return config.Malformed(fmt.Sprintf("networks[%d].name", i), "is empty", nil)
		}
		names[i] = n.Name

		field := fmt.Sprintf("networks.%s", n.Name)
		if err := ValidateEndpoint(n.RPCEndpoint); err != nil {
			return config.Malformed(field+".rpc_url", "invalid endpoint", err)
		}
		if !n.AnyNetworkID() {
			if _, err := strconv.ParseUint(n.NetworkID, 10, 64); err != nil {
				return config.Malformed(field+".network_id", fmt.Sprintf("must be %q or a decimal chain id", config.NetworkIDAny), nil)
			}
		}
		if n.GasLimit == 0 {
			return config.Malformed(field+".gas", "must be greater than zero", nil)
		}
	}

	if dups := lo.FindDuplicates(names); len(dups) > 0 {
		return config.Malformed("networks", fmt.Sprintf("duplicate network name %q", dups[0]), nil)
	}

	return nil
}

// ValidateEndpoint requires an absolute URL with a host and an RPC scheme
func ValidateEndpoint(endpoint string) error {
	if endpoint == "" {
		return fmt.Errorf("endpoint is empty")
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return err
	}
	if !lo.Contains(allowedEndpointSchemes, strings.ToLower(u.Scheme)) {
		return fmt.Errorf("unsupported scheme %q in %s", u.Scheme, endpoint)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host in %s", endpoint)
	}
	return nil
}

func validateCompiler(c config.CompilerSettings) error {
	if c.Version == "" {
		return config.Malformed("compiler.version", "is empty", nil)
	}
	if _, err := semver.Parse(c.Version); err != nil {
		return config.Malformed("compiler.version", "not a semantic version", err)
	}
	if c.Optimizer.Runs < 0 {
		return config.Malformed("compiler.optimizer.runs", "must not be negative", nil)
	}
	if len(c.OutputSelection) == 0 {
		return config.Malformed("compiler.output_selection", "is empty", nil)
	}
	for _, artifact := range c.OutputSelection {
		if !artifact.IsKnown() {
			return config.Malformed("compiler.output_selection", fmt.Sprintf("unknown artifact %q", artifact), nil)
		}
	}
	if dups := lo.FindDuplicates(c.OutputSelection); len(dups) > 0 {
		return config.Malformed("compiler.output_selection", fmt.Sprintf("duplicate artifact %q", dups[0]), nil)
	}
	return nil
}
