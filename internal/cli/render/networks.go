package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/neon-deploy/internal/domain/config"
	"github.com/trebuchet-org/neon-deploy/internal/usecase"
)

// NetworksRenderer renders network lists
type NetworksRenderer struct {
	out    io.Writer
	format config.OutputFormat
}

// NewNetworksRenderer creates a new networks renderer
func NewNetworksRenderer(out io.Writer, format config.OutputFormat) *NetworksRenderer {
	return &NetworksRenderer{
		out:    out,
		format: format,
	}
}

// networkView is the structured form of a NetworkStatus
type networkView struct {
	usecase.NetworkSummary `yaml:",inline"`
	ChainID                *uint64 `json:"chainId,omitempty" yaml:"chainId,omitempty"`
	Error                  string  `json:"error,omitempty" yaml:"error,omitempty"`
}

// Render renders the list of network targets
func (r *NetworksRenderer) Render(result *usecase.ListNetworksResult) error {
	if r.format != config.OutputText {
		views := make([]networkView, len(result.Networks))
		for i, n := range result.Networks {
			views[i] = networkView{NetworkSummary: n.NetworkSummary}
			if n.Error != nil {
				views[i].Error = n.Error.Error()
			} else if n.Probed {
				chainID := n.ChainID
				views[i].ChainID = &chainID
			}
		}
		return WriteStructured(r.out, r.format, map[string]any{"networks": views})
	}

	if len(result.Networks) == 0 {
		fmt.Fprintln(r.out, "No networks configured")
		return nil
	}

	fmt.Fprintln(r.out, "🌐 Available Networks:")
	fmt.Fprintln(r.out)

	probed := result.Networks[0].Probed
	header := table.Row{"Name", "Endpoint", "Network ID", "Keys"}
	if probed {
		header = append(header, "Status")
	}

	t := newTable(header)
	for _, n := range result.Networks {
		row := table.Row{
			color.New(color.FgCyan, color.Bold).Sprint(n.Name),
			n.RPCEndpoint,
			n.NetworkID,
			formatKeys(n.NetworkSummary),
		}
		if probed {
			row = append(row, formatProbe(n))
		}
		t.AppendRow(row)
	}
	fmt.Fprintln(r.out, t.Render())

	return nil
}

func formatProbe(n usecase.NetworkStatus) string {
	if n.Error != nil {
		return color.New(color.FgRed).Sprintf("❌ %v", n.Error)
	}
	return color.New(color.FgGreen).Sprintf("✅ chain %d", n.ChainID)
}

var _ Renderer[*usecase.ListNetworksResult] = (*NetworksRenderer)(nil)
