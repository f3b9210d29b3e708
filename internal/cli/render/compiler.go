package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/trebuchet-org/neon-deploy/internal/domain/config"
	"github.com/trebuchet-org/neon-deploy/internal/usecase"
)

// CompilerRenderer renders solc settings
type CompilerRenderer struct {
	out    io.Writer
	format config.OutputFormat
}

// NewCompilerRenderer creates a new compiler renderer
func NewCompilerRenderer(out io.Writer, format config.OutputFormat) *CompilerRenderer {
	return &CompilerRenderer{out: out, format: format}
}

// Render prints the settings object. Text output is the bare settings JSON
// so it can be piped straight into a solc standard-json input.
func (r *CompilerRenderer) Render(result *usecase.ExportCompilerSettingsResult) error {
	if r.format != config.OutputText {
		return WriteStructured(r.out, r.format, result)
	}

	data, err := json.MarshalIndent(result.Settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode compiler settings: %w", err)
	}
	_, err = fmt.Fprintln(r.out, string(data))
	return err
}

var _ Renderer[*usecase.ExportCompilerSettingsResult] = (*CompilerRenderer)(nil)
