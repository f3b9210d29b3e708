package render

import (
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
	"github.com/trebuchet-org/neon-deploy/internal/domain/config"
)

// AccountsView lists the signer addresses available on one network
type AccountsView struct {
	Network  string   `json:"network" yaml:"network"`
	Endpoint string   `json:"endpoint" yaml:"endpoint"`
	KeysEnv  string   `json:"keysEnv,omitempty" yaml:"keysEnv,omitempty"`
	Accounts []string `json:"accounts" yaml:"accounts"`
}

// NewAccountsView builds the view for a network's ordered signer addresses
func NewAccountsView(target config.NetworkTarget, accounts []common.Address) *AccountsView {
	return &AccountsView{
		Network:  target.Name,
		Endpoint: target.RPCEndpoint,
		KeysEnv:  target.Credentials.KeysEnv,
		Accounts: lo.Map(accounts, func(a common.Address, _ int) string { return a.Hex() }),
	}
}

// AccountsRenderer renders signer accounts
type AccountsRenderer struct {
	out    io.Writer
	format config.OutputFormat
}

// NewAccountsRenderer creates a new accounts renderer
func NewAccountsRenderer(out io.Writer, format config.OutputFormat) *AccountsRenderer {
	return &AccountsRenderer{out: out, format: format}
}

// Render renders the accounts view
func (r *AccountsRenderer) Render(view *AccountsView) error {
	if r.format != config.OutputText {
		return WriteStructured(r.out, r.format, view)
	}

	fmt.Fprintf(r.out, "🔑 Signers for %s (%s):\n", view.Network, view.Endpoint)
	if view.KeysEnv != "" {
		fmt.Fprintf(r.out, "   keys from %s\n", view.KeysEnv)
	}
	fmt.Fprintln(r.out)

	t := newTable(table.Row{"#", "Address", ""})
	for i, hex := range view.Accounts {
		role := ""
		if i == 0 {
			role = "default"
		}
		t.AppendRow(table.Row{i, hex, role})
	}
	fmt.Fprintln(r.out, t.Render())

	return nil
}

var _ Renderer[*AccountsView] = (*AccountsRenderer)(nil)
