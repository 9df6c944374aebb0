package main

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/bossbossk20/trade-backtest-system/internal/backtest"
	"github.com/bossbossk20/trade-backtest-system/internal/collector"
	"github.com/bossbossk20/trade-backtest-system/internal/collector/csvfile"
	"github.com/bossbossk20/trade-backtest-system/internal/collector/yahoo"
	"github.com/bossbossk20/trade-backtest-system/internal/config"
	"github.com/bossbossk20/trade-backtest-system/internal/core"
	"github.com/bossbossk20/trade-backtest-system/internal/storage/archive"
	"github.com/bossbossk20/trade-backtest-system/internal/strategy"
	"github.com/bossbossk20/trade-backtest-system/internal/strategy/bollinger"
	"github.com/bossbossk20/trade-backtest-system/internal/strategy/buyhold"
	"github.com/bossbossk20/trade-backtest-system/internal/strategy/ema_cross"
	"github.com/bossbossk20/trade-backtest-system/internal/strategy/macd"
	"github.com/bossbossk20/trade-backtest-system/internal/strategy/multi"
	"github.com/bossbossk20/trade-backtest-system/internal/strategy/rsi"
	"github.com/bossbossk20/trade-backtest-system/internal/strategy/sma_cross"
	"github.com/bossbossk20/trade-backtest-system/internal/strategy/stochastic"
)

// loadConfig reads the config file or falls back to defaults
func loadConfig(log *zap.Logger) (*config.Config, error) {
	var cfg *config.Config
	var err error

	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	} else {
		cfg = config.Defaults()
		log.Warn("no config file specified, using defaults")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// builtinStrategies returns every strategy shipped with the binary,
// at its default parameters.
func builtinStrategies() []strategy.Strategy {
	return []strategy.Strategy{
		sma_cross.New(20, 50),
		ema_cross.New(9, 21),
		rsi.New(14, 30, 70),
		bollinger.New(20, 2),
		macd.New(12, 26, 9),
		stochastic.New(14, 3, 80, 20),
		multi.New(),
		buyhold.New(),
	}
}

// buildRegistry registers the builtin strategies and applies any
// per-strategy config overrides.
func buildRegistry(cfg *config.Config, log *zap.Logger) (*strategy.Registry, error) {
	reg := strategy.NewRegistry(log)

	for _, s := range builtinStrategies() {
		if sc, ok := cfg.Strategies[s.Name()]; ok {
			if err := s.Init(strategy.Config{Enabled: sc.Enabled, Params: sc.Params}); err != nil {
				return nil, fmt.Errorf("configuring strategy %s: %w", s.Name(), err)
			}
		}
		reg.Register(s)
	}
	return reg, nil
}

// enabledStrategies returns the registered strategies that are not
// disabled in config. Strategies without a config entry are enabled.
func enabledStrategies(reg *strategy.Registry, cfg *config.Config) []strategy.Strategy {
	var out []strategy.Strategy
	for _, s := range reg.All() {
		if sc, ok := cfg.Strategies[s.Name()]; ok && !sc.Enabled {
			continue
		}
		out = append(out, s)
	}
	return out
}

// buildCollector selects the bar source from config
func buildCollector(cfg *config.Config) (collector.Collector, error) {
	switch cfg.Data.Source {
	case "csv":
		c := csvfile.New(cfg.Data.Path)
		if err := c.Init(collector.Config{Path: cfg.Data.Path, Interval: cfg.Data.Interval}); err != nil {
			return nil, err
		}
		return c, nil
	case "yahoo":
		return yahoo.New(), nil
	default:
		return nil, fmt.Errorf("unknown data source: %s", cfg.Data.Source)
	}
}

// fetchBars loads the historical bars for a symbol and date range
func fetchBars(ctx context.Context, cfg *config.Config, log *zap.Logger, symbol string, from, to time.Time) ([]core.Bar, error) {
	src, err := buildCollector(cfg)
	if err != nil {
		return nil, err
	}

	log.Debug("fetching history",
		zap.String("source", src.Name()),
		zap.String("symbol", symbol),
		zap.Time("from", from),
		zap.Time("to", to),
	)

	bars, err := src.FetchHistory(ctx, symbol, from, to, cfg.Data.Interval)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", symbol, err)
	}

	log.Info("loaded bars", zap.String("symbol", symbol), zap.Int("count", len(bars)))
	return bars, nil
}

// buildResultStore creates the archive store, or nil when archiving
// is disabled.
func buildResultStore(cfg *config.Config) (*archive.ResultStore, error) {
	if !cfg.Archive.Enabled {
		return nil, nil
	}

	var storage archive.Storage
	var err error

	switch cfg.Archive.Type {
	case "s3":
		storage, err = archive.NewS3(archive.S3Config{
			Bucket:    cfg.Archive.S3.Bucket,
			Endpoint:  cfg.Archive.S3.Endpoint,
			Region:    cfg.Archive.S3.Region,
			AccessKey: cfg.Archive.S3.AccessKey,
			SecretKey: cfg.Archive.S3.SecretKey,
			Prefix:    cfg.Archive.S3.Prefix,
		})
	default:
		storage, err = archive.NewLocalFS(cfg.Archive.Path)
	}
	if err != nil {
		return nil, fmt.Errorf("creating archive storage: %w", err)
	}

	return archive.NewResultStore(storage), nil
}

// archiveResult saves a result when archiving is enabled
func archiveResult(ctx context.Context, store *archive.ResultStore, log *zap.Logger, result *backtest.Result) {
	if store == nil {
		return
	}
	path, err := store.Save(ctx, result)
	if err != nil {
		log.Warn("archiving result failed", zap.String("id", result.ID), zap.Error(err))
		return
	}
	log.Info("result archived", zap.String("path", path))
}

// parseDateRange parses from/to flags as YYYY-MM-DD dates
func parseDateRange(from, to string) (time.Time, time.Time, error) {
	fromDate, err := time.Parse("2006-01-02", from)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid from date format (expected YYYY-MM-DD): %w", err)
	}
	toDate, err := time.Parse("2006-01-02", to)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid to date format (expected YYYY-MM-DD): %w", err)
	}
	if toDate.Before(fromDate) {
		return time.Time{}, time.Time{}, fmt.Errorf("end date must be after start date")
	}
	// Include the last day's bar
	return fromDate, toDate.Add(24*time.Hour - time.Second), nil
}

// printResult writes the performance report for one run
func printResult(r *backtest.Result) {
	fmt.Println()
	fmt.Printf("=== Backtest Results: %s on %s ===\n", r.Strategy, r.Symbol)
	fmt.Printf("Run ID:          %s\n", r.ID)
	fmt.Printf("Initial capital: %.2f\n", r.InitialCapital)
	fmt.Printf("Final equity:    %.2f\n", r.FinalEquity)
	fmt.Printf("Total return:    %+.2f%%\n", r.TotalReturnPct)
	fmt.Println()
	fmt.Printf("Trades:          %d (%d wins / %d losses)\n",
		r.Stats.TotalTrades, r.Stats.WinningTrades, r.Stats.LosingTrades)
	fmt.Printf("Win rate:        %.2f%%\n", r.Stats.WinRatePct)
	fmt.Printf("Avg win:         %.2f\n", r.Stats.AvgWin)
	fmt.Printf("Avg loss:        %.2f\n", r.Stats.AvgLoss)
	fmt.Printf("Max drawdown:    %.2f%%\n", r.Stats.MaxDrawdownPct)
	fmt.Printf("Profit factor:   %.2f\n", backtest.ProfitFactor(r.Trades))
	fmt.Printf("Sharpe ratio:    %.2f\n", backtest.SharpeRatio(r.EquityCurve))
}
