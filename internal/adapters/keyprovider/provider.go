package keyprovider

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/trebuchet-org/neon-deploy/internal/domain/config"
	"github.com/trebuchet-org/neon-deploy/internal/usecase"
)

// Provider signs with an ordered list of private keys against one endpoint.
// The first key is the default signer.
type Provider struct {
	endpoint string
	keys     []*ecdsa.PrivateKey
	accounts []common.Address
	client   *rpc.Client
	eth      *ethclient.Client
}

// New builds a provider from a credential source. HTTP endpoints are not
// contacted until the first call.
func New(ctx context.Context, src config.CredentialSource) (*Provider, error) {
	if !src.HasKeys() {
		return nil, config.ErrNoSigningKeys
	}

	p := &Provider{endpoint: src.Endpoint}
	for i, hexKey := range src.PrivateKeys {
		key, err := crypto.HexToECDSA(hexKey)
		if err != nil {
			return nil, fmt.Errorf("invalid private key #%d: %w", i+1, err)
		}
		p.keys = append(p.keys, key)
		p.accounts = append(p.accounts, crypto.PubkeyToAddress(key.PublicKey))
	}

	client, err := rpc.DialContext(ctx, src.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to create rpc client for %s: %w", src.Endpoint, err)
	}
	p.client = client
	p.eth = ethclient.NewClient(client)

	return p, nil
}

// Endpoint returns the RPC URL the provider talks to
func (p *Provider) Endpoint() string {
	return p.endpoint
}

// Accounts returns signer addresses in key order
func (p *Provider) Accounts() []common.Address {
	out := make([]common.Address, len(p.accounts))
	copy(out, p.accounts)
	return out
}

// ChainID asks the endpoint for its chain id
func (p *Provider) ChainID(ctx context.Context) (*big.Int, error) {
	chainID, err := p.eth.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch chain ID from %s: %w", p.endpoint, err)
	}
	return chainID, nil
}

// SignTx signs with the default signer
func (p *Provider) SignTx(tx *types.Transaction, chainID *big.Int) (*types.Transaction, error) {
	return p.SignTxFrom(p.accounts[0], tx, chainID)
}

// SignTxFrom signs with the key belonging to from
func (p *Provider) SignTxFrom(from common.Address, tx *types.Transaction, chainID *big.Int) (*types.Transaction, error) {
	for i, account := range p.accounts {
		if account == from {
			return types.SignTx(tx, types.LatestSignerForChainID(chainID), p.keys[i])
		}
	}
	return nil, fmt.Errorf("no key for account %s", from.Hex())
}

// Send performs a synchronous JSON-RPC call
func (p *Provider) Send(ctx context.Context, result any, method string, args ...any) error {
	return p.client.CallContext(ctx, result, method, args...)
}

// SendAsync is the callback form of Send
func (p *Provider) SendAsync(ctx context.Context, req Request, callback Callback) {
	AsyncAdapter{Sender: p}.SendAsync(ctx, req, callback)
}

// Close releases the underlying RPC client
func (p *Provider) Close() {
	if p.client != nil {
		p.client.Close()
	}
}

// Factory builds providers on demand for the selected network
type Factory struct{}

// NewFactory creates a provider factory
func NewFactory() *Factory {
	return &Factory{}
}

// NewProvider implements usecase.KeyProviderFactory
func (f *Factory) NewProvider(ctx context.Context, src config.CredentialSource) (usecase.KeyProvider, error) {
	p, err := New(ctx, src)
	if err != nil {
		return nil, err
	}
	return p, nil
}

var (
	_ usecase.KeyProvider        = (*Provider)(nil)
	_ usecase.KeyProviderFactory = (*Factory)(nil)
	_ AsyncSender                = (*Provider)(nil)
	_ Sender                     = (*Provider)(nil)
)
