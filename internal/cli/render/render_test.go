package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/neon-deploy/internal/domain/config"
	"github.com/trebuchet-org/neon-deploy/internal/usecase"
	"gopkg.in/yaml.v3"
)

func init() {
	color.NoColor = true
}

func testShowConfigResult() *usecase.ShowConfigResult {
	return &usecase.ShowConfigResult{
		Networks: []usecase.NetworkSummary{
			{Name: "neondev", RPCEndpoint: "https://devnet.neonevm.org", NetworkID: "*", GasLimit: 3000000000, GasPrice: 1000000000, KeyCount: 2, KeysEnv: "DEPLOYER_PRIVATE_KEYS"},
			{Name: "neonmain", RPCEndpoint: "https://neon-proxy-mainnet.solana.p2p.org", NetworkID: "*", GasLimit: 3000000000, GasPrice: 1000000000},
		},
		Compiler: config.CompilerSettings{
			Version: "0.8.26",
			Optimizer: config.OptimizerConfig{
				Enabled: true,
				Runs:    200,
				Details: config.OptimizerDetails{
					Yul:        true,
					YulDetails: config.YulDetails{StackAllocation: true, OptimizerSteps: "dhfoDgvulfnTUtnIf"},
				},
			},
			ViaIR:           true,
			OutputSelection: config.KnownOutputArtifacts(),
		},
		Plugins:    []string{"truffle-plugin-verify", "truffle-contract-size"},
		TestRunner: config.TestRunnerSettings{TimeoutMs: 100000, UseColors: true},
		APIKeys:    map[string]bool{"etherscan": false, "blockscout": true},
	}
}

func TestConfigRenderer(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewConfigRenderer(&buf, config.OutputText).Render(testShowConfigResult()))

		out := buf.String()
		assert.Contains(t, out, "(none, using built-in defaults)")
		assert.Contains(t, out, "NETWORK ID")
		assert.Contains(t, out, "https://devnet.neonevm.org")
		assert.Contains(t, out, "2 keys (DEPLOYER_PRIVATE_KEYS)")
		assert.Contains(t, out, "enabled, 200 runs")
		assert.Contains(t, out, "evm.bytecode, evm.deployedBytecode, abi")
		assert.Contains(t, out, "  - truffle-plugin-verify\n  - truffle-contract-size\n")
		assert.Contains(t, out, "timeout 100000ms, colors on")
		assert.Contains(t, out, "Blockscout: ✓ configured")
		assert.Contains(t, out, "Etherscan: not set")
		assert.Less(t, bytes.Index(buf.Bytes(), []byte("Blockscout")), bytes.Index(buf.Bytes(), []byte("Etherscan")))
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewConfigRenderer(&buf, config.OutputJSON).Render(testShowConfigResult()))

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Len(t, decoded["networks"], 2)
		assert.Equal(t, map[string]any{"etherscan": false, "blockscout": true}, decoded["apiKeys"])
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewConfigRenderer(&buf, config.OutputYAML).Render(testShowConfigResult()))

		var decoded struct {
			Networks []struct {
				Name        string `yaml:"name"`
				RPCEndpoint string `yaml:"rpcEndpoint"`
			} `yaml:"networks"`
			Compiler struct {
				Version string `yaml:"version"`
			} `yaml:"compiler"`
		}
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
		require.Len(t, decoded.Networks, 2)
		assert.Equal(t, "https://devnet.neonevm.org", decoded.Networks[0].RPCEndpoint)
		assert.Equal(t, "0.8.26", decoded.Compiler.Version)
	})
}

func TestNetworksRenderer(t *testing.T) {
	summaries := testShowConfigResult().Networks

	t.Run("without probe", func(t *testing.T) {
		var buf bytes.Buffer
		result := &usecase.ListNetworksResult{Networks: []usecase.NetworkStatus{
			{NetworkSummary: summaries[0]},
			{NetworkSummary: summaries[1]},
		}}
		require.NoError(t, NewNetworksRenderer(&buf, config.OutputText).Render(result))

		out := buf.String()
		assert.Contains(t, out, "🌐 Available Networks:")
		assert.Contains(t, out, "neondev")
		assert.Contains(t, out, "none")
		assert.NotContains(t, out, "STATUS")
	})

	t.Run("with probe", func(t *testing.T) {
		var buf bytes.Buffer
		result := &usecase.ListNetworksResult{Networks: []usecase.NetworkStatus{
			{NetworkSummary: summaries[0], Probed: true, ChainID: 245022926},
			{NetworkSummary: summaries[1], Probed: true, Error: errors.New("connection refused")},
		}}
		require.NoError(t, NewNetworksRenderer(&buf, config.OutputText).Render(result))

		out := buf.String()
		assert.Contains(t, out, "STATUS")
		assert.Contains(t, out, "✅ chain 245022926")
		assert.Contains(t, out, "❌ connection refused")
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		result := &usecase.ListNetworksResult{Networks: []usecase.NetworkStatus{
			{NetworkSummary: summaries[0], Probed: true, ChainID: 245022926},
			{NetworkSummary: summaries[1], Probed: true, Error: errors.New("connection refused")},
		}}
		require.NoError(t, NewNetworksRenderer(&buf, config.OutputJSON).Render(result))

		var decoded struct {
			Networks []map[string]any `json:"networks"`
		}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		require.Len(t, decoded.Networks, 2)
		assert.Equal(t, "neondev", decoded.Networks[0]["name"])
		assert.Equal(t, float64(245022926), decoded.Networks[0]["chainId"])
		assert.Equal(t, "connection refused", decoded.Networks[1]["error"])
		assert.NotContains(t, decoded.Networks[1], "chainId")
	})

	t.Run("empty", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewNetworksRenderer(&buf, config.OutputText).Render(&usecase.ListNetworksResult{}))
		assert.Equal(t, "No networks configured\n", buf.String())
	})
}

func TestAccountsRenderer(t *testing.T) {
	target := config.NetworkTarget{
		Name:        "neondev",
		RPCEndpoint: "https://devnet.neonevm.org",
		Credentials: config.CredentialSource{KeysEnv: "NEONDEV_PRIVATE_KEYS"},
	}
	view := NewAccountsView(target, []common.Address{
		common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"),
		common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8"),
	})

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewAccountsRenderer(&buf, config.OutputText).Render(view))

		out := buf.String()
		assert.Contains(t, out, "Signers for neondev (https://devnet.neonevm.org)")
		assert.Contains(t, out, "keys from NEONDEV_PRIVATE_KEYS")
		assert.Contains(t, out, "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
		assert.Contains(t, out, "default")
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewAccountsRenderer(&buf, config.OutputYAML).Render(view))
		assert.Contains(t, buf.String(), "- 0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewAccountsRenderer(&buf, config.OutputJSON).Render(view))
		assert.JSONEq(t, `{
			"network": "neondev",
			"endpoint": "https://devnet.neonevm.org",
			"keysEnv": "NEONDEV_PRIVATE_KEYS",
			"accounts": [
				"0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266",
				"0x70997970C51812dc3A010C7d01b50e0d17dc79C8"
			]
		}`, buf.String())
	})
}

func TestCompilerRenderer(t *testing.T) {
	result := &usecase.ExportCompilerSettingsResult{
		Version: "0.8.26",
		Settings: usecase.SolcSettings{
			ViaIR:           true,
			OutputSelection: map[string]map[string][]string{"*": {"*": {"abi"}}},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, NewCompilerRenderer(&buf, config.OutputText).Render(result))
	assert.JSONEq(t, `{
		"optimizer": {"enabled": false, "runs": 0, "details": {"yul": false, "yulDetails": {"stackAllocation": false}}},
		"viaIR": true,
		"outputSelection": {"*": {"*": ["abi"]}}
	}`, buf.String())

	buf.Reset()
	require.NoError(t, NewCompilerRenderer(&buf, config.OutputJSON).Render(result))
	assert.Contains(t, buf.String(), `"version": "0.8.26"`)
}

func TestFormatError(t *testing.T) {
	assert.Equal(t, "❌ Network not found", FormatError("failed to select: network not found"))
	assert.Equal(t, "✅ done", FormatSuccess("done"))
	assert.Equal(t, "⚠️  careful", FormatWarning("careful"))
}
