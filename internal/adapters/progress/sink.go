package progress

import (
	"github.com/trebuchet-org/neon-deploy/internal/domain/config"
	"github.com/trebuchet-org/neon-deploy/internal/usecase"
)

// NewProgressSink picks the spinner for interactive text output and a
// no-op sink otherwise, so JSON and YAML output stay machine readable
func NewProgressSink(cfg *config.RuntimeConfig) usecase.ProgressSink {
	if cfg.NonInteractive || cfg.Output != config.OutputText {
		return NewNopSink()
	}
	return NewSpinnerProgressReporter()
}
