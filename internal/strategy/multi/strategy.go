package multi

import (
	"github.com/bossbossk20/trade-backtest-system/internal/core"
	"github.com/bossbossk20/trade-backtest-system/internal/indicator"
	"github.com/bossbossk20/trade-backtest-system/internal/strategy"
)

const warmUpBars = 50

// Multi combines RSI, MACD histogram, and EMA trend into one signal.
// Entry requires a depressed RSI plus either a bullish MACD histogram
// flip or a bullish EMA alignment; any bearish indicator exits.
type Multi struct{}

// New creates the multi-indicator strategy. Its component periods are
// fixed (RSI 14, MACD 12/26/9, EMA 9/21).
func New() *Multi {
	return &Multi{}
}

func (m *Multi) Name() string {
	return "multi"
}

func (m *Multi) Description() string {
	return "Multi-indicator (RSI 14 + MACD 12/26/9 + EMA 9/21)"
}

func (m *Multi) WarmUp() int {
	return warmUpBars
}

func (m *Multi) Init(cfg strategy.Config) error {
	return nil
}

func (m *Multi) Evaluate(bars []core.Bar, pos *core.Position) core.Action {
	if len(bars)-1 < warmUpBars {
		return core.ActionHold
	}

	prices := strategy.Closes(bars)

	rsiValues := indicator.RSI(prices, 14)
	if len(rsiValues) == 0 {
		return core.ActionHold
	}
	currRSI := rsiValues[len(rsiValues)-1]

	macdLine, signalLine := indicator.MACD(prices, 12, 26, 9)
	n := len(macdLine)
	currHist := macdLine[n-1] - signalLine[n-1]
	prevHist := macdLine[n-2] - signalLine[n-2]

	emaShort := indicator.EMA(prices, 9)
	emaLong := indicator.EMA(prices, 21)
	currShort := emaShort[len(emaShort)-1]
	currLong := emaLong[len(emaLong)-1]

	if pos == nil {
		rsiBullish := currRSI < 40
		macdBullish := currHist > 0 && prevHist < 0
		emaBullish := currShort > currLong

		if rsiBullish && (macdBullish || emaBullish) {
			return core.ActionBuy
		}
	} else {
		rsiBearish := currRSI > 60
		macdBearish := currHist < 0 && prevHist > 0
		emaBearish := currShort < currLong

		if rsiBearish || macdBearish || emaBearish {
			return core.ActionSell
		}
	}

	return core.ActionHold
}
