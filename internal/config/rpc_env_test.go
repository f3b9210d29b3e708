package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectEnvVar(t *testing.T) {
	tests := []struct {
		name       string
		rawValue   string
		wantEnvVar string
		wantIsVar  bool
	}{
		{
			name:       "simple env var",
			rawValue:   "${NEONDEV_RPC_URL}",
			wantEnvVar: "NEONDEV_RPC_URL",
			wantIsVar:  true,
		},
		{
			name:       "env var with underscores",
			rawValue:   "${NEON_LOCAL_RPC_URL}",
			wantEnvVar: "NEON_LOCAL_RPC_URL",
			wantIsVar:  true,
		},
		{
			name:       "hardcoded URL",
			rawValue:   "https://devnet.neonevm.org",
			wantEnvVar: "",
			wantIsVar:  false,
		},
		{
			name:       "env var with path suffix",
			rawValue:   "${MY_VAR}/path",
			wantEnvVar: "",
			wantIsVar:  false,
		},
		{
			name:       "empty string",
			rawValue:   "",
			wantEnvVar: "",
			wantIsVar:  false,
		},
		{
			name:       "localhost URL",
			rawValue:   "http://localhost:8545",
			wantEnvVar: "",
			wantIsVar:  false,
		},
		{
			name:       "env var starting with underscore",
			rawValue:   "${_MY_VAR}",
			wantEnvVar: "_MY_VAR",
			wantIsVar:  true,
		},
		{
			name:       "partial env var syntax - missing closing brace",
			rawValue:   "${UNCLOSED",
			wantEnvVar: "",
			wantIsVar:  false,
		},
		{
			name:       "deployer keys reference",
			rawValue:   "${DEPLOYER_PRIVATE_KEYS}",
			wantEnvVar: DeployerKeysEnv,
			wantIsVar:  true,
		},
		{
			name:       "reference embedded in a proxy URL",
			rawValue:   "https://neon-proxy-mainnet.solana.p2p.org/${NEON_API_TOKEN}",
			wantEnvVar: "",
			wantIsVar:  false,
		},
		{
			name:       "dollar without braces",
			rawValue:   "$MY_VAR",
			wantEnvVar: "",
			wantIsVar:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			envVar, isVar := DetectEnvVar(tt.rawValue)
			assert.Equal(t, tt.wantEnvVar, envVar)
			assert.Equal(t, tt.wantIsVar, isVar)
		})
	}
}

func TestGenerateEnvVarName(t *testing.T) {
	tests := []struct {
		name        string
		networkName string
		want        string
	}{
		{
			name:        "simple network",
			networkName: "neondev",
			want:        "NEONDEV_RPC_URL",
		},
		{
			name:        "network with dash",
			networkName: "neon-local",
			want:        "NEON_LOCAL_RPC_URL",
		},
		{
			name:        "network with number and dash",
			networkName: "neon-245022926",
			want:        "NEON_245022926_RPC_URL",
		},
		{
			name:        "already uppercase",
			networkName: "NEONMAIN",
			want:        "NEONMAIN_RPC_URL",
		},
		{
			name:        "mixed case with dash",
			networkName: "Neon-Test",
			want:        "NEON_TEST_RPC_URL",
		},
		{
			name:        "network with dot",
			networkName: "neon.devnet",
			want:        "NEON_DEVNET_RPC_URL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateEnvVarName(tt.networkName)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEnvPrefix(t *testing.T) {
	tests := map[string]string{
		"neondev":     "NEONDEV",
		"neontest":    "NEONTEST",
		"neonmain":    "NEONMAIN",
		"neon-local":  "NEON_LOCAL",
		"neon.devnet": "NEON_DEVNET",
		"Neon-Test":   "NEON_TEST",
		"neon-dev.eu": "NEON_DEV_EU",
	}

	for network, want := range tests {
		t.Run(network, func(t *testing.T) {
			assert.Equal(t, want, envPrefix(network))
		})
	}
}

func TestGenerateKeysEnvVarName(t *testing.T) {
	tests := []struct {
		networkName string
		want        string
	}{
		{"neondev", "NEONDEV_PRIVATE_KEYS"},
		{"neontest", "NEONTEST_PRIVATE_KEYS"},
		{"neonmain", "NEONMAIN_PRIVATE_KEYS"},
		{"neon-local", "NEON_LOCAL_PRIVATE_KEYS"},
		{"neon.devnet", "NEON_DEVNET_PRIVATE_KEYS"},
		{"Neon-Test", "NEON_TEST_PRIVATE_KEYS"},
	}

	for _, tt := range tests {
		t.Run(tt.networkName, func(t *testing.T) {
			got := GenerateKeysEnvVarName(tt.networkName)
			assert.Equal(t, tt.want, got)
			assert.NotEqual(t, DeployerKeysEnv, got)
		})
	}
}

func TestLoadUsesGeneratedNames(t *testing.T) {
	path := writeOverrideFile(t, `
[networks.neon-local]
rpc_url = "http://127.0.0.1:9090"
`)

	cfg, err := Load(WithFile(path), WithLookupEnv(envMap(map[string]string{
		GenerateEnvVarName("neon-local"):     "http://127.0.0.1:9091",
		GenerateKeysEnvVarName("neon-local"): anvilKey1,
		DeployerKeysEnv:                      anvilKey0,
	})))
	require.NoError(t, err)

	local, ok := cfg.Network("neon-local")
	require.True(t, ok)
	assert.Equal(t, "http://127.0.0.1:9091", local.RPCEndpoint)
	assert.Equal(t, "NEON_LOCAL_PRIVATE_KEYS", local.Credentials.KeysEnv)
	assert.Equal(t, []string{anvilKey1[2:]}, local.Credentials.PrivateKeys)

	dev, _ := cfg.Network("neondev")
	assert.Equal(t, DeployerKeysEnv, dev.Credentials.KeysEnv)
}
