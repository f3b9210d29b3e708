package usecase

import (
	"context"
	"fmt"
	"strconv"

	"github.com/trebuchet-org/neon-deploy/internal/domain/config"
)

// ListNetworksParams contains parameters for listing networks
type ListNetworksParams struct {
	// Probe asks each endpoint for its chain id
	Probe bool
}

// ListNetworksResult contains the result of listing networks
type ListNetworksResult struct {
	Networks []NetworkStatus
}

// NetworkStatus represents the status of a network
type NetworkStatus struct {
	NetworkSummary
	ChainID uint64
	Probed  bool
	Error   error
}

// ListNetworks is a use case for listing available networks
type ListNetworks struct {
	config   *config.RuntimeConfig
	prober   ChainProber
	progress ProgressSink
}

// NewListNetworks creates a new ListNetworks use case
func NewListNetworks(cfg *config.RuntimeConfig, prober ChainProber, progress ProgressSink) *ListNetworks {
	return &ListNetworks{
		config:   cfg,
		prober:   prober,
		progress: progress,
	}
}

// Run executes the use case
func (uc *ListNetworks) Run(ctx context.Context, params ListNetworksParams) (*ListNetworksResult, error) {
	if uc.config.Deployment == nil {
		return nil, fmt.Errorf("deployment configuration not loaded")
	}

	targets := uc.config.Deployment.Networks
	networks := make([]NetworkStatus, 0, len(targets))
	for _, target := range targets {
		status := NetworkStatus{NetworkSummary: summarize(target)}

		if params.Probe {
			uc.progress.OnProgress(ctx, ProgressEvent{
				Stage:   StageProbing,
				Message: fmt.Sprintf("Fetching chain ID from %s", target.Name),
				Spinner: true,
			})
			status.Probed = true
			status.ChainID, status.Error = uc.probe(ctx, target)
			if status.Error != nil {
				uc.progress.Error(fmt.Sprintf("%s: %v", target.Name, status.Error))
			} else {
				uc.progress.Info(fmt.Sprintf("%s: chain id %d", target.Name, status.ChainID))
			}
		}

		networks = append(networks, status)
	}

	if params.Probe {
		uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageCompleted})
	}

	return &ListNetworksResult{
		Networks: networks,
	}, nil
}

// probe fetches the chain id and checks it against a pinned network id
func (uc *ListNetworks) probe(ctx context.Context, target config.NetworkTarget) (uint64, error) {
	chainID, err := uc.prober.ChainID(ctx, target.RPCEndpoint)
	if err != nil {
		return 0, err
	}
	if !target.AnyNetworkID() && target.NetworkID != strconv.FormatUint(chainID, 10) {
		return chainID, fmt.Errorf("%w: %s expects network id %s, endpoint reports %d",
			config.ErrNetworkMismatch, target.Name, target.NetworkID, chainID)
	}
	return chainID, nil
}
