package config

import (
	"regexp"
	"strings"
)

// DeployerKeysEnv is the fallback variable holding comma-separated signing keys
const DeployerKeysEnv = "DEPLOYER_PRIVATE_KEYS"

// envVarPattern matches ${VAR_NAME} patterns in TOML values
var envVarPattern = regexp.MustCompile(`^\$\{([A-Za-z_][A-Za-z0-9_]*)\}$`)

// DetectEnvVar checks if a raw TOML value is a simple ${VAR_NAME} reference.
// Returns the variable name and true if the value is a pure env var reference.
func DetectEnvVar(rawValue string) (string, bool) {
	matches := envVarPattern.FindStringSubmatch(rawValue)
	if len(matches) == 2 {
		return matches[1], true
	}
	return "", false
}

// GenerateEnvVarName generates a conventional env var name for a network's RPC URL.
// Convention: uppercase, dashes/dots to underscores, append _RPC_URL.
// Examples: neondev -> NEONDEV_RPC_URL, neon-local -> NEON_LOCAL_RPC_URL
func GenerateEnvVarName(networkName string) string {
	return envPrefix(networkName) + "_RPC_URL"
}

// GenerateKeysEnvVarName is the per-network signing key variable, e.g. NEONMAIN_PRIVATE_KEYS
func GenerateKeysEnvVarName(networkName string) string {
	return envPrefix(networkName) + "_PRIVATE_KEYS"
}

func envPrefix(networkName string) string {
	name := strings.ToUpper(networkName)
	return strings.NewReplacer("-", "_", ".", "_").Replace(name)
}
