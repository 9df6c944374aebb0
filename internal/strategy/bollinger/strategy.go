package bollinger

import (
	"fmt"

	"github.com/spf13/cast"

	"github.com/bossbossk20/trade-backtest-system/internal/core"
	"github.com/bossbossk20/trade-backtest-system/internal/indicator"
	"github.com/bossbossk20/trade-backtest-system/internal/strategy"
)

// Bollinger is a mean-reversion strategy: buy when the close touches
// the lower band, sell when it touches the upper band.
type Bollinger struct {
	period int
	stdDev float64
}

// New creates a Bollinger Bands strategy, defaulting to 20 bars and
// 2 standard deviations.
func New(period int, stdDev float64) *Bollinger {
	if period <= 0 {
		period = 20
	}
	if stdDev <= 0 {
		stdDev = 2
	}
	return &Bollinger{period: period, stdDev: stdDev}
}

func (b *Bollinger) Name() string {
	return "bollinger"
}

func (b *Bollinger) Description() string {
	return fmt.Sprintf("Bollinger Bands (%d, %.1f sd)", b.period, b.stdDev)
}

func (b *Bollinger) WarmUp() int {
	return b.period
}

func (b *Bollinger) Init(cfg strategy.Config) error {
	if v, ok := cfg.Params["period"]; ok {
		b.period = cast.ToInt(v)
	}
	if v, ok := cfg.Params["std_dev"]; ok {
		b.stdDev = cast.ToFloat64(v)
	}
	if b.period < 2 || b.stdDev <= 0 {
		return core.WrapError(core.ErrConfigInvalid,
			fmt.Errorf("bollinger needs period >= 2 and std_dev > 0, got %d/%.2f", b.period, b.stdDev))
	}
	return nil
}

func (b *Bollinger) Evaluate(bars []core.Bar, pos *core.Position) core.Action {
	if len(bars)-1 < b.period {
		return core.ActionHold
	}

	prices := strategy.Closes(bars)
	_, upper, lower := indicator.Bollinger(prices, b.period, b.stdDev)
	if len(upper) == 0 {
		return core.ActionHold
	}

	price := prices[len(prices)-1]
	currUpper := upper[len(upper)-1]
	currLower := lower[len(lower)-1]

	if pos == nil {
		if price <= currLower {
			return core.ActionBuy
		}
	} else {
		if price >= currUpper {
			return core.ActionSell
		}
	}

	return core.ActionHold
}
