package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bossbossk20/trade-backtest-system/internal/logger"
)

var strategiesCmd = &cobra.Command{
	Use:   "strategies",
	Short: "List the available strategies",
	RunE:  runStrategies,
}

func init() {
	rootCmd.AddCommand(strategiesCmd)
}

func runStrategies(cmd *cobra.Command, args []string) error {
	log := logger.Must(debug)
	defer log.Sync()

	cfg, err := loadConfig(log)
	if err != nil {
		return err
	}

	reg, err := buildRegistry(cfg, log)
	if err != nil {
		return err
	}

	fmt.Printf("%-12s %-8s %s\n", "NAME", "WARMUP", "DESCRIPTION")
	for _, s := range reg.All() {
		enabled := ""
		if sc, ok := cfg.Strategies[s.Name()]; ok && !sc.Enabled {
			enabled = " (disabled)"
		}
		fmt.Printf("%-12s %-8d %s%s\n", s.Name(), s.WarmUp(), s.Description(), enabled)
	}
	return nil
}
