// plinko-sim drops balls headless and prints the payout distribution as JSON
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
	_ "go.uber.org/automaxprocs"
	"go.uber.org/zap"

	"github.com/lixenwraith/plinko/config"
	"github.com/lixenwraith/plinko/sim"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func main() {
	var (
		configPath = flag.String("config", "", "YAML config file (defaults to $PLINKO_CONFIG)")
		balls      = flag.Int("balls", 100000, "Number of balls to drop")
		workers    = flag.Int("workers", 0, "Worker goroutines (0 uses GOMAXPROCS)")
		seed       = flag.Uint64("seed", 0, "Random seed (0 uses config, then the clock)")
		wager      = flag.String("wager", "", "Wager per ball (defaults to config)")
		maxTicks   = flag.Int("max-ticks", 0, "Abandon a drop after this many ticks (0 uses default)")
		debugFlag  = flag.Bool("debug", false, "Log progress to stderr")
	)
	flag.Parse()

	if err := run(*configPath, *balls, *workers, *seed, *wager, *maxTicks, *debugFlag); err != nil {
		fmt.Fprintf(os.Stderr, "plinko-sim: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, balls, workers int, seed uint64, wagerText string, maxTicks int, debug bool) error {
	cfg, err := config.FromEnvironment(configPath)
	if err != nil {
		return err
	}

	b, err := cfg.NewBoard()
	if err != nil {
		return err
	}
	profile, err := cfg.Profile()
	if err != nil {
		return err
	}

	var wager decimal.Decimal
	if wagerText != "" {
		if wager, err = decimal.NewFromString(wagerText); err != nil {
			return fmt.Errorf("wager %q: %w", wagerText, err)
		}
	} else if wager, err = cfg.Wager(); err != nil {
		return err
	}

	if seed == 0 {
		seed = cfg.Game.Seed
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	logger := zap.NewNop()
	if debug || cfg.Debug {
		if logger, err = zap.NewDevelopment(); err != nil {
			return err
		}
		defer logger.Sync()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := sim.Run(ctx, b, profile, sim.Options{
		Balls:    balls,
		Workers:  workers,
		Seed:     seed,
		Wager:    wager,
		MaxTicks: maxTicks,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(os.Stdout, string(out))
	return err
}
