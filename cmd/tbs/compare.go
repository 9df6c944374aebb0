package main

import (
	"context"
	"fmt"
	"net/http"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bossbossk20/trade-backtest-system/internal/backtest"
	"github.com/bossbossk20/trade-backtest-system/internal/logger"
	"github.com/bossbossk20/trade-backtest-system/internal/metrics"
)

var (
	compareSymbol  string
	compareFrom    string
	compareTo      string
	compareWorkers int
	compareListen  string
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Run all enabled strategies against one symbol",
	Long:  "Backtest every enabled strategy over the same data in parallel and rank them by total return",
	RunE:  runCompare,
}

func init() {
	compareCmd.Flags().StringVar(&compareSymbol, "symbol", "", "Symbol to backtest (required)")
	compareCmd.Flags().StringVar(&compareFrom, "from", "", "Start date YYYY-MM-DD (required)")
	compareCmd.Flags().StringVar(&compareTo, "to", "", "End date YYYY-MM-DD (required)")
	compareCmd.Flags().IntVar(&compareWorkers, "workers", 0, "Concurrent backtests (0 = number of CPUs)")
	compareCmd.Flags().StringVar(&compareListen, "metrics-listen", "", "Expose Prometheus metrics on this address while running")

	compareCmd.MarkFlagRequired("symbol")
	compareCmd.MarkFlagRequired("from")
	compareCmd.MarkFlagRequired("to")

	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	log := logger.Must(debug)
	defer log.Sync()

	cfg, err := loadConfig(log)
	if err != nil {
		return err
	}

	from, to, err := parseDateRange(compareFrom, compareTo)
	if err != nil {
		return err
	}

	reg, err := buildRegistry(cfg, log)
	if err != nil {
		return err
	}

	strategies := enabledStrategies(reg, cfg)
	if len(strategies) == 0 {
		return fmt.Errorf("no strategies enabled")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	bars, err := fetchBars(ctx, cfg, log, compareSymbol, from, to)
	if err != nil {
		return err
	}

	promReg := metrics.NewRegistry()

	listen := compareListen
	if listen == "" && cfg.Metrics.Enabled {
		listen = cfg.Metrics.Listen
	}
	if listen != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promReg.Handler())
		go func() {
			log.Info("metrics listening", zap.String("addr", listen))
			if err := http.ListenAndServe(listen, mux); err != nil {
				log.Warn("metrics server stopped", zap.Error(err))
			}
		}()
	}

	ropts := []backtest.RunnerOption{backtest.WithMetrics(promReg)}
	if compareWorkers > 0 {
		ropts = append(ropts, backtest.WithWorkers(compareWorkers))
	}

	runner, err := backtest.NewRunner(backtest.Options{
		InitialCapital: cfg.Backtest.InitialCapital,
		CommissionRate: cfg.Backtest.CommissionRate,
		InvestRatio:    cfg.Backtest.InvestRatio,
	}, log, ropts...)
	if err != nil {
		return err
	}

	results, err := runner.RunAll(ctx, bars, strategies)
	if err != nil {
		return fmt.Errorf("running backtests: %w", err)
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].TotalReturnPct > results[j].TotalReturnPct
	})

	fmt.Println()
	fmt.Printf("=== Strategy Comparison: %s (%s to %s) ===\n", compareSymbol, compareFrom, compareTo)
	fmt.Printf("%-12s %10s %8s %9s %10s\n", "STRATEGY", "RETURN", "TRADES", "WIN RATE", "MAX DD")
	for _, r := range results {
		fmt.Printf("%-12s %+9.2f%% %8d %8.2f%% %+9.2f%%\n",
			r.Strategy, r.TotalReturnPct, r.Stats.TotalTrades, r.Stats.WinRatePct, r.Stats.MaxDrawdownPct)
	}

	store, err := buildResultStore(cfg)
	if err != nil {
		return err
	}
	for _, r := range results {
		archiveResult(ctx, store, log, r)
	}

	return nil
}
