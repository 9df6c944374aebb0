package sma_cross

import (
	"fmt"

	"github.com/spf13/cast"

	"github.com/bossbossk20/trade-backtest-system/internal/core"
	"github.com/bossbossk20/trade-backtest-system/internal/indicator"
	"github.com/bossbossk20/trade-backtest-system/internal/strategy"
)

// SMACross implements a simple moving average crossover strategy.
// It buys on the golden cross (short MA crossing above the long MA)
// when flat and sells on the death cross when positioned.
type SMACross struct {
	shortWindow int
	longWindow  int
}

// New creates a new SMA crossover strategy. Zero or negative windows
// fall back to the 20/50 defaults.
func New(shortWindow, longWindow int) *SMACross {
	if shortWindow <= 0 {
		shortWindow = 20
	}
	if longWindow <= 0 {
		longWindow = 50
	}
	return &SMACross{
		shortWindow: shortWindow,
		longWindow:  longWindow,
	}
}

func (s *SMACross) Name() string {
	return "sma_cross"
}

func (s *SMACross) Description() string {
	return fmt.Sprintf("SMA Crossover (%d/%d)", s.shortWindow, s.longWindow)
}

func (s *SMACross) WarmUp() int {
	return s.longWindow
}

func (s *SMACross) Init(cfg strategy.Config) error {
	if v, ok := cfg.Params["short_window"]; ok {
		s.shortWindow = cast.ToInt(v)
	}
	if v, ok := cfg.Params["long_window"]; ok {
		s.longWindow = cast.ToInt(v)
	}
	if s.shortWindow <= 0 || s.longWindow <= 0 || s.shortWindow >= s.longWindow {
		return core.WrapError(core.ErrConfigInvalid,
			fmt.Errorf("sma_cross windows must satisfy 0 < short < long, got %d/%d", s.shortWindow, s.longWindow))
	}
	return nil
}

func (s *SMACross) Evaluate(bars []core.Bar, pos *core.Position) core.Action {
	if len(bars)-1 < s.longWindow {
		return core.ActionHold
	}

	prices := strategy.Closes(bars)
	shortMA := indicator.SMA(prices, s.shortWindow)
	longMA := indicator.SMA(prices, s.longWindow)

	if len(shortMA) < 2 || len(longMA) < 2 {
		return core.ActionHold
	}

	currShort := shortMA[len(shortMA)-1]
	prevShort := shortMA[len(shortMA)-2]
	currLong := longMA[len(longMA)-1]
	prevLong := longMA[len(longMA)-2]

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
