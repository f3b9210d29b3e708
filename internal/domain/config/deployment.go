package config

import (
	"fmt"
	"sort"
)

// NetworkIDAny matches whatever network id the endpoint reports
const NetworkIDAny = "*"

// Configuration is the fully resolved deployment configuration.
// It is built by the loader and treated as read-only by every consumer.
type Configuration struct {
	Networks   []NetworkTarget    `json:"networks" yaml:"networks"`
	Compiler   CompilerSettings   `json:"compiler" yaml:"compiler"`
	Plugins    []string           `json:"plugins" yaml:"plugins"`
	TestRunner TestRunnerSettings `json:"testRunner" yaml:"testRunner"`
	APIKeys    APIKeys            `json:"apiKeys" yaml:"apiKeys"`
}

// NetworkTarget is a named deployment destination
type NetworkTarget struct {
	Name        string           `json:"name" yaml:"name"`
	RPCEndpoint string           `json:"rpcEndpoint" yaml:"rpcEndpoint"`
	Credentials CredentialSource `json:"credentials" yaml:"credentials"`
	NetworkID   string           `json:"networkId" yaml:"networkId"`
	GasLimit    uint64           `json:"gasLimit" yaml:"gasLimit"`
	GasPrice    uint64           `json:"gasPrice" yaml:"gasPrice"`
}

// AnyNetworkID reports whether the target accepts any network id
func (n NetworkTarget) AnyNetworkID() bool {
	return n.NetworkID == "" || n.NetworkID == NetworkIDAny
}

// CredentialSource describes how to build a key provider for a target.
// Keys are kept in order; the first key is the default signer.
type CredentialSource struct {
	PrivateKeys []string `json:"-" yaml:"-"`
	Endpoint    string   `json:"endpoint" yaml:"endpoint"`
	KeysEnv     string   `json:"keysEnv,omitempty" yaml:"keysEnv,omitempty"`
}

// HasKeys reports whether at least one signing key was resolved
func (c CredentialSource) HasKeys() bool {
	return len(c.PrivateKeys) > 0
}

// String never prints key material
func (c CredentialSource) String() string {
	return fmt.Sprintf("%d key(s) from %s @ %s", len(c.PrivateKeys), c.keysEnvOrUnset(), c.Endpoint)
}

func (c CredentialSource) keysEnvOrUnset() string {
	if c.KeysEnv == "" {
		return "(unset)"
	}
	return c.KeysEnv
}

// OutputArtifact is one entry of the compiler output selection
type OutputArtifact string

const (
	OutputBytecode         OutputArtifact = "evm.bytecode"
	OutputDeployedBytecode OutputArtifact = "evm.deployedBytecode"
	OutputABI              OutputArtifact = "abi"
)

// KnownOutputArtifacts returns every artifact the compiler block accepts
func KnownOutputArtifacts() []OutputArtifact {
	return []OutputArtifact{OutputBytecode, OutputDeployedBytecode, OutputABI}
}

// IsKnown checks the artifact against KnownOutputArtifacts
func (a OutputArtifact) IsKnown() bool {
	for _, known := range KnownOutputArtifacts() {
		if a == known {
			return true
		}
	}
	return false
}

// CompilerSettings mirrors the solc settings block
type CompilerSettings struct {
	Version         string           `json:"version" yaml:"version"`
	Optimizer       OptimizerConfig  `json:"optimizer" yaml:"optimizer"`
	ViaIR           bool             `json:"viaIR" yaml:"viaIR"`
	OutputSelection []OutputArtifact `json:"outputSelection" yaml:"outputSelection"`
}

type OptimizerConfig struct {
	Enabled bool             `json:"enabled" yaml:"enabled"`
	Runs    int              `json:"runs" yaml:"runs"`
	Details OptimizerDetails `json:"details" yaml:"details"`
}

type OptimizerDetails struct {
	Yul        bool       `json:"yul" yaml:"yul"`
	YulDetails YulDetails `json:"yulDetails" yaml:"yulDetails"`
}

type YulDetails struct {
	StackAllocation bool   `json:"stackAllocation" yaml:"stackAllocation"`
	OptimizerSteps  string `json:"optimizerSteps,omitempty" yaml:"optimizerSteps,omitempty"`
}

// TestRunnerSettings is passed through to the external test runner untouched
type TestRunnerSettings struct {
	TimeoutMs int  `json:"timeoutMs" yaml:"timeoutMs"`
	UseColors bool `json:"useColors" yaml:"useColors"`
}

// APIKeys maps an external service name to its credential.
// A service whose variable is unset maps to the empty string.
type APIKeys map[string]string

// Get returns the key for service, empty when unknown or unset
func (k APIKeys) Get(service string) string {
	return k[service]
}

// Services returns the configured service names in sorted order
func (k APIKeys) Services() []string {
	names := make([]string, 0, len(k))
	for name := range k {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Network finds a target by name
func (c *Configuration) Network(name string) (NetworkTarget, bool) {
	for _, n := range c.Networks {
		if n.Name == name {
			return n, true
		}
	}
	return NetworkTarget{}, false
}

// NetworkNames returns target names in declaration order
func (c *Configuration) NetworkNames() []string {
	names := make([]string, len(c.Networks))
	for i, n := range c.Networks {
		names[i] = n.Name
	}
	return names
}
