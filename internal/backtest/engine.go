package backtest

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bossbossk20/trade-backtest-system/internal/core"
	"github.com/bossbossk20/trade-backtest-system/internal/strategy"
)

// Engine replays a bar series through a strategy and simulates market
// execution with proportional commission. Every Run owns a fresh
// state, so a single Engine value can drive many runs, including
// concurrent ones.
type Engine struct {
	opts   Options
	logger *zap.Logger
}

// engineState is the per-run mutable state. It is created at the start
// of Run and never shared.
type engineState struct {
	cash        float64
	position    *core.Position // nil when flat
	trades      []core.Position
	equityCurve []EquitySample
}

// New creates an Engine with the given options. Option violations are
// reported here, before any run starts.
func New(opts Options, logger *zap.Logger) (*Engine, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{opts: opts, logger: logger}, nil
}

// Run executes the strategy over the bar series and returns the
// accumulated result. Bars must be non-empty and in non-decreasing
// time order. Business rejections (buy while positioned, sell while
// flat, insufficient cash) degrade to holds; they never error.
func (e *Engine) Run(ctx context.Context, bars []core.Bar, strat strategy.Strategy) (*Result, error) {
	if len(bars) == 0 {
		return nil, core.ErrNoData
	}
	for i := 1; i < len(bars); i++ {
		if bars[i].Time.Before(bars[i-1].Time) {
			return nil, core.ErrBarsUnordered
		}
	}

	startedAt := time.Now()
	state := &engineState{
		cash:        e.opts.InitialCapital,
		trades:      make([]core.Position, 0),
		equityCurve: make([]EquitySample, 0, len(bars)),
	}

	for i := range bars {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		bar := bars[i]

		// The strategy only ever sees bars[0..i].
		signal := strat.Evaluate(bars[:i+1], state.position)

		switch signal {
		case core.ActionBuy:
			e.openPosition(state, bar)
		case core.ActionSell:
			e.closePosition(state, bar.Close, bar.Time)
		}

		// Mark to this bar's close whether or not a trade executed.
		var positionValue float64
		if state.position != nil {
			positionValue = state.position.MarketValue(bar.Close)
		}
		state.equityCurve = append(state.equityCurve, EquitySample{
			Time:          bar.Time,
			Cash:          state.cash,
			PositionValue: positionValue,
			Equity:        state.cash + positionValue,
		})
	}

	// Force-liquidate so the result only reports realized trades.
	if state.position != nil {
		last := bars[len(bars)-1]
		e.closePosition(state, last.Close, last.Time)
	}

	result := &Result{
		ID:             uuid.NewString(),
		Strategy:       strat.Name(),
		Symbol:         bars[0].Symbol,
		InitialCapital: e.opts.InitialCapital,
		Trades:         state.trades,
		EquityCurve:    state.equityCurve,
		StartedAt:      startedAt,
		FinishedAt:     time.Now(),
	}
	result.Stats = Summarize(e.opts.InitialCapital, result.Trades, result.EquityCurve)
	result.FinalEquity = FinalEquity(e.opts.InitialCapital, result.EquityCurve)
	result.TotalReturnPct = (result.FinalEquity - e.opts.InitialCapital) / e.opts.InitialCapital * 100

	e.logger.Debug("backtest complete",
		zap.String("strategy", strat.Name()),
		zap.String("symbol", result.Symbol),
		zap.Int("bars", len(bars)),
		zap.Int("trades", len(result.Trades)),
		zap.Float64("final_equity", result.FinalEquity),
	)

	return result, nil
}

// openPosition enters a long sized at InvestRatio of cash. A buy while
// already positioned or without enough cash for notional plus
// commission is a no-op.
func (e *Engine) openPosition(state *engineState, bar core.Bar) {
	if state.position != nil || bar.Close <= 0 {
		return
	}

	size := state.cash * e.opts.InvestRatio / bar.Close
	notional := size * bar.Close
	commission := notional * e.opts.CommissionRate
	if size <= 0 || notional+commission > state.cash {
		return
	}

	state.cash -= notional + commission
	state.position = &core.Position{
		Symbol:     bar.Symbol,
		Side:       core.SideLong,
		Size:       size,
		EntryPrice: bar.Close,
		EntryTime:  bar.Time,
	}
}

// closePosition exits the open position at the given price and time.
// A sell while flat is a no-op.
func (e *Engine) closePosition(state *engineState, price float64, at time.Time) {
	if state.position == nil {
		return
	}

	pnl := state.position.Close(price, at)
	notional := state.position.Size * price
	commission := notional * e.opts.CommissionRate
	state.cash += notional - commission

	e.logger.Debug("closed position",
		zap.Float64("entry", state.position.EntryPrice),
		zap.Float64("exit", price),
		zap.Float64("pnl", pnl),
	)

	state.trades = append(state.trades, *state.position)
	state.position = nil
}
