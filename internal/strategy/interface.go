package strategy

import (
	"github.com/bossbossk20/trade-backtest-system/internal/core"
)

// Config holds strategy configuration
type Config struct {
	Enabled bool
	Params  map[string]any
}

// Strategy defines the decision contract the backtest engine drives.
//
// Evaluate receives the bars visible so far (index 0 up to and
// including the current bar) and the currently open position, nil when
// flat. It must be deterministic for a given prefix and position state
// and must not retain state across calls; the engine guarantees it
// never sees bars beyond the current index.
type Strategy interface {
	Name() string
	Description() string

	// WarmUp returns the minimum bar index below which the strategy
	// returns Hold, usually its longest lookback parameter.
	WarmUp() int

	Init(cfg Config) error
	Evaluate(bars []core.Bar, pos *core.Position) core.Action
}
