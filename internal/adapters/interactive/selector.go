package interactive

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/sahilm/fuzzy"
	"github.com/trebuchet-org/neon-deploy/internal/domain/config"
	"github.com/trebuchet-org/neon-deploy/internal/usecase"
)

// SelectorAdapter handles interactive selection
type SelectorAdapter struct {
	config *config.RuntimeConfig
}

// NewSelectorAdapter creates a new selector adapter
func NewSelectorAdapter(cfg *config.RuntimeConfig) *SelectorAdapter {
	return &SelectorAdapter{config: cfg}
}

// SelectNetwork asks the user to pick one of the configured network targets
func (s *SelectorAdapter) SelectNetwork(ctx context.Context, networks []config.NetworkTarget) (string, error) {
	if s.config.NonInteractive {
		return "", fmt.Errorf("interactive selection not available in non-interactive mode")
	}

	if len(networks) == 0 {
		return "", fmt.Errorf("no networks configured")
	}

	if len(networks) == 1 {
		return networks[0].Name, nil
	}

	options := formatNetworkOptions(networks)

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "▸ {{ . | cyan }}",
		Inactive: "  {{ . | faint }}",
		Selected: "✓ {{ . | green }}",
		Help:     color.New(color.FgYellow).Sprint("Use arrow keys to navigate, Enter to select"),
	}

	promptSelect := promptui.Select{
		Label:             "Select network",
		Items:             options,
		Templates:         templates,
		Size:              10,
		StartInSearchMode: true,
		Searcher:          createFuzzySearchFunc(plainNetworkOptions(networks)),
	}

	index, _, err := promptSelect.Run()
	if err != nil {
		return "", fmt.Errorf("selection cancelled: %w", err)
	}

	return networks[index].Name, nil
}

// formatNetworkOptions creates display strings like "neondev (https://devnet.neonevm.org) [2 keys]"
func formatNetworkOptions(networks []config.NetworkTarget) []string {
	options := make([]string, len(networks))
	for i, network := range networks {
		name := color.New(color.FgWhite, color.Bold).Sprint(network.Name)
		endpoint := color.New(color.FgBlue).Sprint(network.RPCEndpoint)

		if n := len(network.Credentials.PrivateKeys); n > 0 {
			keys := color.New(color.FgGreen).Sprintf("[%d %s]", n, pluralize(n, "key", "keys"))
			options[i] = fmt.Sprintf("%s (%s) %s", name, endpoint, keys)
		} else {
			keys := color.New(color.FgYellow).Sprint("[no keys]")
			options[i] = fmt.Sprintf("%s (%s) %s", name, endpoint, keys)
		}
	}
	return options
}

// plainNetworkOptions returns uncoloured search text so escape codes never match
func plainNetworkOptions(networks []config.NetworkTarget) []string {
	options := make([]string, len(networks))
	for i, network := range networks {
		options[i] = network.Name + " " + network.RPCEndpoint
	}
	return options
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}

// createFuzzySearchFunc creates a fuzzy search function for promptui
func createFuzzySearchFunc(items []string) func(input string, index int) bool {
	return func(input string, index int) bool {
		// Empty search shows all items
		if input == "" {
			return true
		}

		input = strings.ToLower(input)
		item := strings.ToLower(items[index])

		if strings.Contains(item, input) {
			return true
		}

		return len(fuzzy.Find(input, []string{item})) > 0
	}
}

var _ usecase.NetworkSelector = (*SelectorAdapter)(nil)
