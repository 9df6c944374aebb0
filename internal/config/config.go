package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/bossbossk20/trade-backtest-system/internal/core"
)

type Config struct {
	Backtest   BacktestConfig            `mapstructure:"backtest"`
	Data       DataConfig                `mapstructure:"data"`
	Strategies map[string]StrategyConfig `mapstructure:"strategies"`
	Archive    ArchiveConfig             `mapstructure:"archive"`
	Metrics    MetricsConfig             `mapstructure:"metrics"`
}

type BacktestConfig struct {
	InitialCapital float64 `mapstructure:"initial_capital"`
	CommissionRate float64 `mapstructure:"commission_rate"`
	InvestRatio    float64 `mapstructure:"invest_ratio"`
}

type DataConfig struct {
	Source   string `mapstructure:"source"` // "yahoo" or "csv"
	Interval string `mapstructure:"interval"`
	Path     string `mapstructure:"path"` // For csv
}

type StrategyConfig struct {
	Enabled bool           `mapstructure:"enabled"`
	Params  map[string]any `mapstructure:"params"`
}

type ArchiveConfig struct {
	Enabled bool     `mapstructure:"enabled"`
	Type    string   `mapstructure:"type"` // "localfs" or "s3"
	Path    string   `mapstructure:"path"` // For localfs
	S3      S3Config `mapstructure:"s3"`   // For S3
}

type S3Config struct {
	Bucket    string `mapstructure:"bucket"`
	Endpoint  string `mapstructure:"endpoint"`
	Region    string `mapstructure:"region"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Prefix    string `mapstructure:"prefix"`
}

// MetricsConfig holds metrics configuration.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Listen  string `mapstructure:"listen"`
}

// Load reads configuration from file
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	// Support environment variable overrides
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	// Expand environment variables in string values
	for _, key := range v.AllKeys() {
		val := v.GetString(key)
		if strings.HasPrefix(val, "${") && strings.HasSuffix(val, "}") {
			envKey := strings.TrimSuffix(strings.TrimPrefix(val, "${"), "}")
			v.Set(key, os.Getenv(envKey))
		}
	}

	cfg := Defaults()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return cfg, nil
}

// Defaults returns a config with sensible defaults
func Defaults() *Config {
	return &Config{
		Backtest: BacktestConfig{
			InitialCapital: 10000,
			CommissionRate: 0.001,
			InvestRatio:    0.95,
		},
		Data: DataConfig{
			Source:   "yahoo",
			Interval: "1d",
		},
		Archive: ArchiveConfig{
			Enabled: false,
			Type:    "localfs",
			Path:    "results",
		},
		Metrics: MetricsConfig{
			Enabled: false,
			Listen:  ":9090",
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Backtest.InitialCapital <= 0 {
		return core.WrapError(core.ErrConfigInvalid,
			fmt.Errorf("initial_capital must be positive, got %f", c.Backtest.InitialCapital))
	}
	if c.Backtest.CommissionRate < 0 || c.Backtest.CommissionRate >= 1 {
		return core.WrapError(core.ErrConfigInvalid,
			fmt.Errorf("commission_rate must be in [0, 1), got %f", c.Backtest.CommissionRate))
	}
	if c.Backtest.InvestRatio <= 0 || c.Backtest.InvestRatio > 1 {
		return core.WrapError(core.ErrConfigInvalid,
			fmt.Errorf("invest_ratio must be in (0, 1], got %f", c.Backtest.InvestRatio))
	}

	switch c.Data.Source {
	case "yahoo":
	case "csv":
		if c.Data.Path == "" {
			return core.WrapError(core.ErrConfigMissing,
				fmt.Errorf("data path required when source is csv"))
		}
	default:
		return core.WrapError(core.ErrConfigInvalid,
			fmt.Errorf("unknown data source: %s", c.Data.Source))
	}

	if c.Archive.Enabled {
		switch c.Archive.Type {
		case "localfs":
			if c.Archive.Path == "" {
				return core.WrapError(core.ErrConfigMissing,
					fmt.Errorf("archive path required when type is localfs"))
			}
		case "s3":
			if c.Archive.S3.Bucket == "" {
				return core.WrapError(core.ErrConfigMissing,
					fmt.Errorf("s3 bucket required when archive type is s3"))
			}
		default:
			return core.WrapError(core.ErrConfigInvalid,
				fmt.Errorf("unknown archive type: %s", c.Archive.Type))
		}
	}

	return nil
}
