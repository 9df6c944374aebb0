package backtest

import (
	"fmt"
	"time"

	"github.com/bossbossk20/trade-backtest-system/internal/core"
)

// Options configures a single backtest run.
type Options struct {
	InitialCapital float64 // starting cash, must be > 0
	CommissionRate float64 // proportional fee on entry and exit notional, in [0,1)
	InvestRatio    float64 // fraction of cash deployed on entry, in (0,1]; 0 defaults to 0.95
}

// DefaultOptions returns the reference configuration: 10k capital,
// 0.1% commission, 95% of cash deployed per entry.
func DefaultOptions() Options {
	return Options{
		InitialCapital: 10000,
		CommissionRate: 0.001,
		InvestRatio:    0.95,
	}
}

// Validate checks option preconditions. Violations are configuration
// errors and fail fast before a run starts.
func (o *Options) Validate() error {
	if o.InvestRatio == 0 {
		o.InvestRatio = 0.95
	}
	if o.InitialCapital <= 0 {
		return core.WrapError(core.ErrConfigInvalid,
			fmt.Errorf("initial capital must be > 0, got %g", o.InitialCapital))
	}
	if o.CommissionRate < 0 || o.CommissionRate >= 1 {
		return core.WrapError(core.ErrConfigInvalid,
			fmt.Errorf("commission rate must be in [0,1), got %g", o.CommissionRate))
	}
	if o.InvestRatio < 0 || o.InvestRatio > 1 {
		return core.WrapError(core.ErrConfigInvalid,
			fmt.Errorf("invest ratio must be in (0,1], got %g", o.InvestRatio))
	}
	return nil
}

// EquitySample is one point of the equity curve, recorded once per
// bar at the bar's close. Equity == Cash + PositionValue at every
// sample, and PositionValue is 0 whenever no position is open.
type EquitySample struct {
	Time          time.Time
	Cash          float64
	PositionValue float64
	Equity        float64
}

// Stats holds aggregate performance statistics for a completed run.
type Stats struct {
	TotalTrades    int
	WinningTrades  int
	LosingTrades   int
	WinRatePct     float64
	AvgWin         float64
	AvgLoss        float64
	MaxDrawdownPct float64 // most negative decline from the running equity peak, <= 0
}

// Result is the immutable outcome of one backtest run.
type Result struct {
	ID             string
	Strategy       string
	Symbol         string
	InitialCapital float64
	FinalEquity    float64
	TotalReturnPct float64
	Trades         []core.Position
	EquityCurve    []EquitySample
	Stats          Stats
	StartedAt      time.Time
	FinishedAt     time.Time
}
