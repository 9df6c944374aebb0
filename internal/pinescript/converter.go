// Package pinescript maps Pine Script strategy source onto the
// built-in strategy library. It is a keyword-driven template selector,
// not a compiler: it recognizes a handful of common patterns, extracts
// their numeric parameters, and returns the matching built-in strategy.
package pinescript

import (
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/bossbossk20/trade-backtest-system/internal/core"
	"github.com/bossbossk20/trade-backtest-system/internal/strategy"
	"github.com/bossbossk20/trade-backtest-system/internal/strategy/ema_cross"
	"github.com/bossbossk20/trade-backtest-system/internal/strategy/macd"
	"github.com/bossbossk20/trade-backtest-system/internal/strategy/rsi"
	"github.com/bossbossk20/trade-backtest-system/internal/strategy/sma_cross"
)

// fallbackStartBar is where the buy-once fallback enters when no
// pattern is recognized.
const fallbackStartBar = 50

var (
	emaArgs = regexp.MustCompile(`ta\.ema\([^,)]+,\s*(\d+)\s*\)`)
	smaArgs = regexp.MustCompile(`ta\.sma\([^,)]+,\s*(\d+)\s*\)`)
	rsiArgs = regexp.MustCompile(`ta\.rsi\([^,)]+,\s*(\d+)\s*\)`)
	belowOS = regexp.MustCompile(`<\s*(\d+)`)
	aboveOB = regexp.MustCompile(`>\s*(\d+)`)
)

// Conversion is the outcome of converting one script.
type Conversion struct {
	Strategy strategy.Strategy
	Pattern  string // detected template, e.g. "ema_cross"
	Fallback bool   // true when no pattern matched and buy-once was substituted
}

// Converter selects built-in strategies for Pine Script sources.
type Converter struct {
	logger *zap.Logger
}

// NewConverter creates a Converter.
func NewConverter(logger ...*zap.Logger) *Converter {
	var l *zap.Logger
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	} else {
		l = zap.NewNop()
	}
	return &Converter{logger: l}
}

// Convert inspects the script and returns the matching built-in
// strategy. An unrecognized script does not fail: it falls back to a
// buy-once strategy, flagged via Conversion.Fallback and a warning
// log, so callers can decide whether the substitution is acceptable.
func (c *Converter) Convert(script string) (*Conversion, error) {
	if strings.TrimSpace(script) == "" {
		return nil, core.ErrScriptEmpty
	}

	switch {
	case strings.Contains(script, "ta.ema") && strings.Contains(script, "ta.crossover"):
		fast, slow := extractPair(emaArgs, script, 12, 26)
		c.logger.Info("detected ema crossover template",
			zap.Int("fast", fast), zap.Int("slow", slow))
		return &Conversion{Strategy: ema_cross.New(fast, slow), Pattern: "ema_cross"}, nil

	case strings.Contains(script, "ta.sma") && strings.Contains(script, "ta.crossover"):
		fast, slow := extractPair(smaArgs, script, 20, 50)
		c.logger.Info("detected sma crossover template",
			zap.Int("fast", fast), zap.Int("slow", slow))
		return &Conversion{Strategy: sma_cross.New(fast, slow), Pattern: "sma_cross"}, nil

	case strings.Contains(script, "ta.rsi"):
		period := extractFirst(rsiArgs, script, 14)
		oversold := float64(extractFirst(belowOS, script, 30))
		overbought := float64(extractFirst(aboveOB, script, 70))
		c.logger.Info("detected rsi template",
			zap.Int("period", period),
			zap.Float64("oversold", oversold), zap.Float64("overbought", overbought))
		return &Conversion{Strategy: rsi.NewThreshold(period, oversold, overbought), Pattern: "rsi"}, nil

	case strings.Contains(script, "ta.macd"):
		c.logger.Info("detected macd template")
		return &Conversion{Strategy: macd.New(12, 26, 9), Pattern: "macd"}, nil
	}

	c.logger.Warn("no strategy pattern recognized, falling back to buy-once",
		zap.Int("start_bar", fallbackStartBar))
	return &Conversion{
		Strategy: newBuyOnce(fallbackStartBar),
		Pattern:  "buy_once",
		Fallback: true,
	}, nil
}

// extractPair returns the first two numeric arguments matched by re,
// falling back to the given defaults.
func extractPair(re *regexp.Regexp, script string, defFirst, defSecond int) (int, int) {
	matches := re.FindAllStringSubmatch(script, -1)
	first, second := defFirst, defSecond
	if len(matches) > 0 {
		if n, err := strconv.Atoi(matches[0][1]); err == nil {
			first = n
		}
	}
	if len(matches) > 1 {
		if n, err := strconv.Atoi(matches[1][1]); err == nil {
			second = n
		}
	}
	return first, second
}

func extractFirst(re *regexp.Regexp, script string, def int) int {
	if m := re.FindStringSubmatch(script); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return n
		}
	}
	return def
}
