package keyprovider

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/trebuchet-org/neon-deploy/internal/usecase"
)

const defaultProbeTimeout = 10 * time.Second

// Prober reads chain ids without needing signing keys
type Prober struct {
	timeout time.Duration
}

// NewProber creates a prober with the default per-endpoint timeout
func NewProber() *Prober {
	return &Prober{timeout: defaultProbeTimeout}
}

// ChainID dials the endpoint, asks for eth_chainId and closes the client
func (p *Prober) ChainID(ctx context.Context, endpoint string) (uint64, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	client, err := ethclient.DialContext(ctx, endpoint)
	if err != nil {
		return 0, fmt.Errorf("failed to connect to %s: %w", endpoint, err)
	}
	defer client.Close()

	chainID, err := client.ChainID(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch chain ID from %s: %w", endpoint, err)
	}
	if !chainID.IsUint64() {
		return 0, fmt.Errorf("chain ID %s out of range", chainID)
	}
	return chainID.Uint64(), nil
}

var _ usecase.ChainProber = (*Prober)(nil)
