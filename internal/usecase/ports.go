package usecase

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/neon-deploy/internal/domain/config"
)

// KeyProvider signs for a network target and talks to its endpoint
type KeyProvider interface {
	Endpoint() string
	Accounts() []common.Address
	ChainID(ctx context.Context) (*big.Int, error)
	Close()
}

// KeyProviderFactory builds a KeyProvider from a target's credential source.
// It is only called once a network has been selected.
type KeyProviderFactory interface {
	NewProvider(ctx context.Context, src config.CredentialSource) (KeyProvider, error)
}

// ChainProber reads the chain id reported by an endpoint
type ChainProber interface {
	ChainID(ctx context.Context, endpoint string) (uint64, error)
}

// NetworkSelector lets the user pick a network interactively
type NetworkSelector interface {
	SelectNetwork(ctx context.Context, networks []config.NetworkTarget) (string, error)
}

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage   string
	Message string
	Spinner bool
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// Progress stages reported while probing networks
const (
	StageProbing   = "Probing"
	StageCompleted = "Completed"
)
