package usecase_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	internalconfig "github.com/trebuchet-org/neon-deploy/internal/config"
	"github.com/trebuchet-org/neon-deploy/internal/domain/config"
	"github.com/trebuchet-org/neon-deploy/internal/usecase"
)

const testKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

// MockKeyProviderFactory is a mock implementation of KeyProviderFactory
type MockKeyProviderFactory struct {
	mock.Mock
}

func (m *MockKeyProviderFactory) NewProvider(ctx context.Context, src config.CredentialSource) (usecase.KeyProvider, error) {
	args := m.Called(ctx, src)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(usecase.KeyProvider), args.Error(1)
}

// MockKeyProvider is a mock implementation of KeyProvider
type MockKeyProvider struct {
	mock.Mock
}

func (m *MockKeyProvider) Endpoint() string {
	return m.Called().String(0)
}

func (m *MockKeyProvider) Accounts() []common.Address {
	return m.Called().Get(0).([]common.Address)
}

func (m *MockKeyProvider) ChainID(ctx context.Context) (*big.Int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

func (m *MockKeyProvider) Close() {
	m.Called()
}

// MockChainProber is a mock implementation of ChainProber
type MockChainProber struct {
	mock.Mock
}

func (m *MockChainProber) ChainID(ctx context.Context, endpoint string) (uint64, error) {
	args := m.Called(ctx, endpoint)
	return args.Get(0).(uint64), args.Error(1)
}

// MockNetworkSelector is a mock implementation of NetworkSelector
type MockNetworkSelector struct {
	mock.Mock
}

func (m *MockNetworkSelector) SelectNetwork(ctx context.Context, networks []config.NetworkTarget) (string, error) {
	args := m.Called(ctx, networks)
	return args.String(0), args.Error(1)
}

// MockProgressSink records progress events and messages
type MockProgressSink struct {
	events []usecase.ProgressEvent
	infos  []string
	errors []string
}

func (m *MockProgressSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	m.events = append(m.events, event)
}

func (m *MockProgressSink) Info(message string) {
	m.infos = append(m.infos, message)
}

func (m *MockProgressSink) Error(message string) {
	m.errors = append(m.errors, message)
}

// newRuntimeConfig loads the default configuration against a fixed environment
func newRuntimeConfig(t *testing.T, env map[string]string) *config.RuntimeConfig {
	t.Helper()
	deployment, err := internalconfig.Load(internalconfig.WithLookupEnv(func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}))
	require.NoError(t, err)

	return &config.RuntimeConfig{
		ProjectRoot: t.TempDir(),
		Output:      config.OutputText,
		Deployment:  deployment,
	}
}
