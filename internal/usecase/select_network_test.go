package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/neon-deploy/internal/domain/config"
	"github.com/trebuchet-org/neon-deploy/internal/usecase"
)

func TestSelectNetwork(t *testing.T) {
	ctx := context.Background()

	t.Run("builds the provider only for the selected target", func(t *testing.T) {
		cfg := newRuntimeConfig(t, map[string]string{"DEPLOYER_PRIVATE_KEYS": testKey})
		provider := new(MockKeyProvider)
		factory := new(MockKeyProviderFactory)

		target, _ := cfg.Deployment.Network("neontest")
		factory.On("NewProvider", ctx, target.Credentials).Return(provider, nil).Once()

		uc := usecase.NewSelectNetwork(cfg, factory, nil)
		session, err := uc.Run(ctx, "neontest")
		require.NoError(t, err)

		assert.Equal(t, "neontest", session.Target.Name)
		assert.Equal(t, cfg.Deployment.Compiler, session.Compiler)
		assert.Same(t, provider, session.Provider)
		factory.AssertExpectations(t)
		factory.AssertNumberOfCalls(t, "NewProvider", 1)

		provider.On("Close").Return().Once()
		session.Close()
		provider.AssertExpectations(t)
	})

	t.Run("falls back to the runtime network", func(t *testing.T) {
		cfg := newRuntimeConfig(t, nil)
		cfg.Network = "neonmain"

		uc := usecase.NewSelectNetwork(cfg, new(MockKeyProviderFactory), nil)
		target, err := uc.Resolve(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, "neonmain", target.Name)
	})

	t.Run("unknown network suggests close names", func(t *testing.T) {
		cfg := newRuntimeConfig(t, nil)
		factory := new(MockKeyProviderFactory)

		uc := usecase.NewSelectNetwork(cfg, factory, nil)
		_, err := uc.Run(ctx, "neondv")
		require.Error(t, err)

		assert.True(t, errors.Is(err, config.ErrNetworkNotFound))
		var notFound config.NetworkNotFoundError
		require.True(t, errors.As(err, &notFound))
		assert.Equal(t, "neondv", notFound.Name)
		require.NotEmpty(t, notFound.Suggestions)
		assert.Equal(t, "neondev", notFound.Suggestions[0])
		assert.Contains(t, err.Error(), "did you mean")
		factory.AssertNotCalled(t, "NewProvider", mock.Anything, mock.Anything)
	})

	t.Run("provider errors are wrapped", func(t *testing.T) {
		cfg := newRuntimeConfig(t, nil)
		factory := new(MockKeyProviderFactory)
		factory.On("NewProvider", ctx, mock.Anything).Return(nil, config.ErrNoSigningKeys)

		uc := usecase.NewSelectNetwork(cfg, factory, nil)
		_, err := uc.Run(ctx, "neondev")
		require.Error(t, err)
		assert.True(t, errors.Is(err, config.ErrNoSigningKeys))
		assert.Contains(t, err.Error(), "neondev")
	})

	t.Run("asks the selector when no network is given", func(t *testing.T) {
		cfg := newRuntimeConfig(t, nil)
		selector := new(MockNetworkSelector)
		selector.On("SelectNetwork", ctx, cfg.Deployment.Networks).Return("neontest", nil)

		uc := usecase.NewSelectNetwork(cfg, new(MockKeyProviderFactory), selector)
		target, err := uc.Resolve(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, "neontest", target.Name)
		selector.AssertExpectations(t)
	})

	t.Run("non-interactive mode requires a network", func(t *testing.T) {
		cfg := newRuntimeConfig(t, nil)
		cfg.NonInteractive = true
		selector := new(MockNetworkSelector)

		uc := usecase.NewSelectNetwork(cfg, new(MockKeyProviderFactory), selector)
		_, err := uc.Resolve(ctx, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no network specified")
		selector.AssertNotCalled(t, "SelectNetwork", mock.Anything, mock.Anything)
	})
}

func TestSuggestNetworks(t *testing.T) {
	candidates := []string{"neondev", "neontest", "neonmain"}

	assert.Empty(t, usecase.SuggestNetworks("xyz", candidates))
	assert.Equal(t, []string{"neonmain"}, usecase.SuggestNetworks("nmain", candidates))
	assert.Len(t, usecase.SuggestNetworks("neon", candidates), 3)
}
