package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bossbossk20/trade-backtest-system/internal/backtest"
	"github.com/bossbossk20/trade-backtest-system/internal/logger"
	"github.com/bossbossk20/trade-backtest-system/internal/pinescript"
)

var (
	convertSymbol string
	convertFrom   string
	convertTo     string
)

var convertCmd = &cobra.Command{
	Use:   "convert [script.pine]",
	Short: "Convert a Pine Script file to a built-in strategy",
	Long: `Match a Pine Script source against the built-in strategy templates.
With --symbol, --from and --to the converted strategy is backtested
immediately. Unrecognized scripts fall back to a buy-once strategy and
are reported as such.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVar(&convertSymbol, "symbol", "", "Backtest the converted strategy on this symbol")
	convertCmd.Flags().StringVar(&convertFrom, "from", "", "Start date YYYY-MM-DD")
	convertCmd.Flags().StringVar(&convertTo, "to", "", "End date YYYY-MM-DD")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	log := logger.Must(debug)
	defer log.Sync()

	script, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading script: %w", err)
	}

	conv, err := pinescript.NewConverter(log).Convert(string(script))
	if err != nil {
		return fmt.Errorf("converting %s: %w", args[0], err)
	}

	if conv.Fallback {
		fmt.Printf("No known pattern in %s; substituting %s\n", args[0], conv.Strategy.Name())
	} else {
		fmt.Printf("Matched pattern %q -> strategy %s (warmup %d bars)\n",
			conv.Pattern, conv.Strategy.Name(), conv.Strategy.WarmUp())
	}

	if convertSymbol == "" {
		return nil
	}
	if convertFrom == "" || convertTo == "" {
		return fmt.Errorf("--from and --to are required with --symbol")
	}

	cfg, err := loadConfig(log)
	if err != nil {
		return err
	}

	from, to, err := parseDateRange(convertFrom, convertTo)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	bars, err := fetchBars(ctx, cfg, log, convertSymbol, from, to)
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

	result, err := engine.Run(ctx, bars, conv.Strategy)
	if err != nil {
		return fmt.Errorf("running backtest: %w", err)
	}

	if conv.Fallback {
		log.Warn("results reflect the buy-once fallback, not the original script",
			zap.String("script", args[0]))
	}
	printResult(result)

	store, err := buildResultStore(cfg)
	if err != nil {
		return err
	}
	archiveResult(ctx, store, log, result)

	return nil
}
