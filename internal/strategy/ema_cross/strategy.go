package ema_cross

import (
	"fmt"

	"github.com/spf13/cast"

	"github.com/bossbossk20/trade-backtest-system/internal/core"
	"github.com/bossbossk20/trade-backtest-system/internal/indicator"
	"github.com/bossbossk20/trade-backtest-system/internal/strategy"
)

// EMACross buys when the short EMA crosses above the long EMA and
// sells on the opposite cross.
type EMACross struct {
	shortPeriod int
	longPeriod  int
}

// New creates an EMA crossover strategy, defaulting to 9/21.
func New(shortPeriod, longPeriod int) *EMACross {
	if shortPeriod <= 0 {
		shortPeriod = 9
	}
	if longPeriod <= 0 {
		longPeriod = 21
	}
	return &EMACross{shortPeriod: shortPeriod, longPeriod: longPeriod}
}

func (e *EMACross) Name() string {
	return "ema_cross"
}

func (e *EMACross) Description() string {
	return fmt.Sprintf("EMA Crossover (%d/%d)", e.shortPeriod, e.longPeriod)
}

func (e *EMACross) WarmUp() int {
	return e.longPeriod
}

func (e *EMACross) Init(cfg strategy.Config) error {
	if v, ok := cfg.Params["short_period"]; ok {
		e.shortPeriod = cast.ToInt(v)
	}
	if v, ok := cfg.Params["long_period"]; ok {
		e.longPeriod = cast.ToInt(v)
	}
	if e.shortPeriod <= 0 || e.longPeriod <= 0 || e.shortPeriod >= e.longPeriod {
		return core.WrapError(core.ErrConfigInvalid,
			fmt.Errorf("ema_cross periods must satisfy 0 < short < long, got %d/%d", e.shortPeriod, e.longPeriod))
	}
	return nil
}

func (e *EMACross) Evaluate(bars []core.Bar, pos *core.Position) core.Action {
	if len(bars)-1 < e.longPeriod {
		return core.ActionHold
	}

	prices := strategy.Closes(bars)
	shortEMA := indicator.EMA(prices, e.shortPeriod)
	longEMA := indicator.EMA(prices, e.longPeriod)

	n := len(prices)
	currShort, prevShort := shortEMA[n-1], shortEMA[n-2]
	currLong, prevLong := longEMA[n-1], longEMA[n-2]

	if pos == nil {
		if strategy.CrossedAbove(prevShort, prevLong, currShort, currLong) {
			return core.ActionBuy
		}
	} else {
		if strategy.CrossedBelow(prevShort, prevLong, currShort, currLong) {
			return core.ActionSell
		}
	}

	return core.ActionHold
}
