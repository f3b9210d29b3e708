package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
	"github.com/trebuchet-org/neon-deploy/internal/domain/config"
	"github.com/trebuchet-org/neon-deploy/internal/usecase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ConfigRenderer renders config-related output
type ConfigRenderer struct {
	out    io.Writer
	format config.OutputFormat
}

// NewConfigRenderer creates a new config renderer
func NewConfigRenderer(out io.Writer, format config.OutputFormat) *ConfigRenderer {
	return &ConfigRenderer{
		out:    out,
		format: format,
	}
}

// getRelativePath returns the relative path from current directory
func getRelativePath(path string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return path
	}

	relPath, err := filepath.Rel(cwd, path)
	if err != nil {
		return path
	}

	return relPath
}

// Render renders the redacted configuration
func (r *ConfigRenderer) Render(result *usecase.ShowConfigResult) error {
	if r.format != config.OutputText {
		return WriteStructured(r.out, r.format, result)
	}

	bold := color.New(color.Bold)

	fmt.Fprintln(r.out, "📋 Deployment configuration:")
	if result.ConfigFile != "" {
		fmt.Fprintf(r.out, "📁 Override file: %s\n", getRelativePath(result.ConfigFile))
	} else {
		fmt.Fprintln(r.out, "📁 Override file: (none, using built-in defaults)")
	}

	fmt.Fprintln(r.out)
	bold.Fprintln(r.out, "Networks")
	r.renderNetworks(result.Networks)

	fmt.Fprintln(r.out)
	bold.Fprintln(r.out, "Compiler")
	r.renderCompiler(result.Compiler)

	fmt.Fprintln(r.out)
	bold.Fprintln(r.out, "Plugins")
	if len(result.Plugins) == 0 {
		fmt.Fprintln(r.out, "  (none)")
	}
	for _, plugin := range result.Plugins {
		fmt.Fprintf(r.out, "  - %s\n", plugin)
	}

	fmt.Fprintln(r.out)
	bold.Fprintln(r.out, "Test runner")
	fmt.Fprintf(r.out, "  timeout %dms, colors %s\n", result.TestRunner.TimeoutMs, onOff(result.TestRunner.UseColors))

	fmt.Fprintln(r.out)
	bold.Fprintln(r.out, "API keys")
	r.renderAPIKeys(result.APIKeys)

	return nil
}

func (r *ConfigRenderer) renderNetworks(networks []usecase.NetworkSummary) {
	t := newTable(table.Row{"Name", "Endpoint", "Network ID", "Gas", "Gas Price", "Keys"})
	for _, n := range networks {
		t.AppendRow(table.Row{
			color.New(color.FgCyan, color.Bold).Sprint(n.Name),
			n.RPCEndpoint,
			n.NetworkID,
			n.GasLimit,
			n.GasPrice,
			formatKeys(n),
		})
	}
	fmt.Fprintln(r.out, t.Render())
}

func (r *ConfigRenderer) renderCompiler(c config.CompilerSettings) {
	t := newTable(nil)
	t.AppendRow(table.Row{"solc", c.Version})
	optimizer := "disabled"
	if c.Optimizer.Enabled {
		optimizer = fmt.Sprintf("enabled, %d runs", c.Optimizer.Runs)
	}
	t.AppendRow(table.Row{"optimizer", optimizer})
	t.AppendRow(table.Row{"yul", onOff(c.Optimizer.Details.Yul)})
	t.AppendRow(table.Row{"stack allocation", onOff(c.Optimizer.Details.YulDetails.StackAllocation)})
	if steps := c.Optimizer.Details.YulDetails.OptimizerSteps; steps != "" {
		t.AppendRow(table.Row{"optimizer steps", steps})
	}
	t.AppendRow(table.Row{"viaIR", onOff(c.ViaIR)})
	outputs := lo.Map(c.OutputSelection, func(a config.OutputArtifact, _ int) string { return string(a) })
	t.AppendRow(table.Row{"outputs", strings.Join(outputs, ", ")})
	fmt.Fprintln(r.out, t.Render())
}

func (r *ConfigRenderer) renderAPIKeys(apiKeys map[string]bool) {
	if len(apiKeys) == 0 {
		fmt.Fprintln(r.out, "  (none)")
		return
	}

	title := cases.Title(language.English)
	services := lo.Keys(apiKeys)
	sort.Strings(services)
	for _, service := range services {
		name := title.String(service)
		if apiKeys[service] {
			fmt.Fprintf(r.out, "  %s: %s\n", name, color.New(color.FgGreen).Sprint("✓ configured"))
		} else {
			fmt.Fprintf(r.out, "  %s\n", FormatWarning(name+": not set"))
		}
	}
}

func formatKeys(n usecase.NetworkSummary) string {
	if n.KeyCount == 0 {
		return color.New(color.FgYellow).Sprint("none")
	}
	keys := fmt.Sprintf("%d %s", n.KeyCount, pluralize(n.KeyCount, "key", "keys"))
	if n.KeysEnv != "" {
		keys += fmt.Sprintf(" (%s)", n.KeysEnv)
	}
	return keys
}

var _ Renderer[*usecase.ShowConfigResult] = (*ConfigRenderer)(nil)
