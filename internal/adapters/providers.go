package adapters

import (
	"github.com/google/wire"
	"github.com/trebuchet-org/neon-deploy/internal/adapters/interactive"
	"github.com/trebuchet-org/neon-deploy/internal/adapters/keyprovider"
	"github.com/trebuchet-org/neon-deploy/internal/adapters/progress"
	"github.com/trebuchet-org/neon-deploy/internal/usecase"
)

// KeyProviderSet provides signing providers and keyless chain probes
var KeyProviderSet = wire.NewSet(
	keyprovider.NewFactory,
	wire.Bind(new(usecase.KeyProviderFactory), new(*keyprovider.Factory)),

	keyprovider.NewProber,
	wire.Bind(new(usecase.ChainProber), new(*keyprovider.Prober)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewSelectorAdapter,
	wire.Bind(new(usecase.NetworkSelector), new(*interactive.SelectorAdapter)),
)

// ProgressSet provides the progress sink for the selected output mode
var ProgressSet = wire.NewSet(
	progress.NewProgressSink,
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	KeyProviderSet,
	InteractiveSet,
	ProgressSet,
)
