package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bossbossk20/trade-backtest-system/internal/backtest"
	"github.com/bossbossk20/trade-backtest-system/internal/logger"
)

var (
	runSymbol    string
	runFrom      string
	runTo        string
	runTradesCSV string
	runEquityCSV string
)

var runCmd = &cobra.Command{
	Use:   "run [strategy]",
	Short: "Run a backtest for one strategy",
	Long:  "Replay historical data through a strategy and show performance statistics",
	Args:  cobra.ExactArgs(1),
	RunE:  runRun,
}

func init() {
	runCmd.Flags().StringVar(&runSymbol, "symbol", "", "Symbol to backtest (required)")
	runCmd.Flags().StringVar(&runFrom, "from", "", "Start date YYYY-MM-DD (required)")
	runCmd.Flags().StringVar(&runTo, "to", "", "End date YYYY-MM-DD (required)")
	runCmd.Flags().StringVar(&runTradesCSV, "trades-csv", "", "Write the trade log to a CSV file")
	runCmd.Flags().StringVar(&runEquityCSV, "equity-csv", "", "Write the equity curve to a CSV file")

	runCmd.MarkFlagRequired("symbol")
	runCmd.MarkFlagRequired("from")
	runCmd.MarkFlagRequired("to")

	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	log := logger.Must(debug)
	defer log.Sync()

	cfg, err := loadConfig(log)
	if err != nil {
		return err
	}

	from, to, err := parseDateRange(runFrom, runTo)
	if err != nil {
		return err
	}

	reg, err := buildRegistry(cfg, log)
	if err != nil {
		return err
	}

	strat, err := reg.Get(args[0])
	if err != nil {
		return fmt.Errorf("strategy %q: %w (try 'tbs strategies')", args[0], err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	bars, err := fetchBars(ctx, cfg, log, runSymbol, from, to)
	if err != nil {
		return err
	}

	engine, err := backtest.New(backtest.Options{
		InitialCapital: cfg.Backtest.InitialCapital,
		CommissionRate: cfg.Backtest.CommissionRate,
		InvestRatio:    cfg.Backtest.InvestRatio,
	}, log)
	if err != nil {
		return err
	}

	result, err := engine.Run(ctx, bars, strat)
	if err != nil {
		return fmt.Errorf("running backtest: %w", err)
	}

	printResult(result)

	if runTradesCSV != "" {
		if err := backtest.WriteTradesCSV(result, runTradesCSV); err != nil {
			return fmt.Errorf("writing trades CSV: %w", err)
		}
		log.Info("trade log written", zap.String("path", runTradesCSV))
	}
	if runEquityCSV != "" {
		if err := backtest.WriteEquityCSV(result, runEquityCSV); err != nil {
			return fmt.Errorf("writing equity CSV: %w", err)
		}
		log.Info("equity curve written", zap.String("path", runEquityCSV))
	}

	store, err := buildResultStore(cfg)
	if err != nil {
		return err
	}
	archiveResult(ctx, store, log, result)

	return nil
}
