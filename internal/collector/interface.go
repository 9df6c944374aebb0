package collector

import (
	"context"
	"time"

	"github.com/bossbossk20/trade-backtest-system/internal/core"
)

// Config holds collector configuration
type Config struct {
	Enabled  bool
	Interval string
	Path     string
	Extra    map[string]any
}

// Collector defines the interface for historical bar sources
type Collector interface {
	// Metadata
	Name() string

	// Lifecycle
	Init(cfg Config) error

	// Data fetching
	FetchHistory(ctx context.Context, symbol string, start, end time.Time, interval string) ([]core.Bar, error)
}
