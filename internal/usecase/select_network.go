package usecase

import (
	"context"
	"fmt"

	"github.com/sahilm/fuzzy"
	"github.com/trebuchet-org/neon-deploy/internal/domain/config"
)

const maxNetworkSuggestions = 3

// NetworkSession is what a deployment driver needs for one selected target
type NetworkSession struct {
	Target   config.NetworkTarget
	Compiler config.CompilerSettings
	Provider KeyProvider
}

// Close releases the provider
func (s *NetworkSession) Close() {
	if s.Provider != nil {
		s.Provider.Close()
	}
}

// SelectNetwork resolves a target and builds its key provider on demand
type SelectNetwork struct {
	config   *config.RuntimeConfig
	factory  KeyProviderFactory
	selector NetworkSelector
}

// NewSelectNetwork creates a new SelectNetwork use case
func NewSelectNetwork(cfg *config.RuntimeConfig, factory KeyProviderFactory, selector NetworkSelector) *SelectNetwork {
	return &SelectNetwork{
		config:   cfg,
		factory:  factory,
		selector: selector,
	}
}

// Run picks the named network (or asks the user when name is empty) and
// constructs its provider. The caller owns the returned session.
func (uc *SelectNetwork) Run(ctx context.Context, name string) (*NetworkSession, error) {
	target, err := uc.Resolve(ctx, name)
	if err != nil {
		return nil, err
	}

	provider, err := uc.factory.NewProvider(ctx, target.Credentials)
	if err != nil {
		return nil, fmt.Errorf("failed to build key provider for %s: %w", target.Name, err)
	}

	return &NetworkSession{
		Target:   target,
		Compiler: uc.config.Deployment.Compiler,
		Provider: provider,
	}, nil
}

// Resolve finds the target without building a provider
func (uc *SelectNetwork) Resolve(ctx context.Context, name string) (config.NetworkTarget, error) {
	deployment := uc.config.Deployment
	if deployment == nil {
		return config.NetworkTarget{}, fmt.Errorf("deployment configuration not loaded")
	}

	if name == "" {
		name = uc.config.Network
	}

	if name == "" {
		if uc.config.NonInteractive || uc.selector == nil {
			return config.NetworkTarget{}, fmt.Errorf("no network specified, use --network or set NEON_DEPLOY_NETWORK")
		}
		selected, err := uc.selector.SelectNetwork(ctx, deployment.Networks)
		if err != nil {
			return config.NetworkTarget{}, err
		}
		name = selected
	}

	target, ok := deployment.Network(name)
	if !ok {
		return config.NetworkTarget{}, config.NetworkNotFoundError{
			Name:        name,
			Suggestions: SuggestNetworks(name, deployment.NetworkNames()),
		}
	}
	return target, nil
}

// SuggestNetworks returns up to three fuzzy matches for an unknown name, best first
func SuggestNetworks(name string, candidates []string) []string {
	matches := fuzzy.Find(name, candidates)
	suggestions := make([]string, 0, maxNetworkSuggestions)
	for _, m := range matches {
		if len(suggestions) == maxNetworkSuggestions {
			break
		}
		suggestions = append(suggestions, m.Str)
	}
	return suggestions
}
