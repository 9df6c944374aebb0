package backtest

import (
	"context"
	"runtime"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/bossbossk20/trade-backtest-system/internal/core"
	"github.com/bossbossk20/trade-backtest-system/internal/metrics"
	"github.com/bossbossk20/trade-backtest-system/internal/strategy"
)

// Runner evaluates several strategies over the same bar series in
// parallel. Runs are independent: each gets a fresh engine state, and
// the shared bar slice is only ever read.
type Runner struct {
	opts    Options
	logger  *zap.Logger
	metrics *metrics.Registry
	workers int
}

// RunnerOption customizes a Runner.
type RunnerOption func(*Runner)

// WithMetrics instruments runs with the given registry.
func WithMetrics(m *metrics.Registry) RunnerOption {
	return func(r *Runner) { r.metrics = m }
}

// WithWorkers bounds run concurrency. Values below 1 keep the
// default of one worker per CPU.
func WithWorkers(n int) RunnerOption {
	return func(r *Runner) {
		if n >= 1 {
			r.workers = n
		}
	}
}

// NewRunner creates a Runner. Option violations surface here, once,
// instead of per strategy.
func NewRunner(opts Options, logger *zap.Logger, ropts ...RunnerOption) (*Runner, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Runner{
		opts:    opts,
		logger:  logger,
		workers: runtime.NumCPU(),
	}
	for _, o := range ropts {
		o(r)
	}
	return r, nil
}

// RunAll backtests every strategy against the bars and returns the
// results in input order. A failing run is logged and dropped from
// the output; only context cancellation aborts the whole batch.
func (r *Runner) RunAll(ctx context.Context, bars []core.Bar, strategies []strategy.Strategy) ([]*Result, error) {
	results := make([]*Result, len(strategies))
	sem := make(chan struct{}, r.workers)

	var wg sync.WaitGroup
	for i, strat := range strategies {
		wg.Add(1)
		go func(i int, strat strategy.Strategy) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				return
			}

			results[i] = r.runOne(ctx, bars, strat)
		}(i, strat)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]*Result, 0, len(results))
	for _, res := range results {
		if res != nil {
			out = append(out, res)
		}
	}
	return out, nil
}

func (r *Runner) runOne(ctx context.Context, bars []core.Bar, strat strategy.Strategy) *Result {
	engine, err := New(r.opts, r.logger)
	if err != nil {
		r.logger.Warn("engine setup failed", zap.String("strategy", strat.Name()), zap.Error(err))
		return nil
	}

	start := time.Now()
	result, err := engine.Run(ctx, bars, strat)
	elapsed := time.Since(start)

	if err != nil {
		if r.metrics != nil {
			r.metrics.RecordBacktest(strat.Name(), "error", elapsed)
		}
		r.logger.Warn("backtest failed", zap.String("strategy", strat.Name()), zap.Error(err))
		return nil
	}

	if r.metrics != nil {
		r.metrics.RecordBacktest(strat.Name(), "ok", elapsed)
		r.metrics.RecordTrades(strat.Name(), result.Stats.WinningTrades, result.Stats.LosingTrades)
	}
	return result
}
