package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/plinko/audio"
	"github.com/lixenwraith/plinko/config"
	"github.com/lixenwraith/plinko/game"
	"github.com/lixenwraith/plinko/vmath"
)

var (
	configFlag = flag.String("config", "", "YAML config file (defaults to $PLINKO_CONFIG)")
	debugFlag  = flag.Bool("debug", false, "Write debug log to logs/plinko.log")
	muteFlag   = flag.Bool("mute", false, "Start with sound disabled")
)

func main() {
	flag.Parse()

	cfg, err := config.FromEnvironment(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Config errors are fatal before the terminal is taken over
	b, err := cfg.NewBoard()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid board: %v\n", err)
		os.Exit(1)
	}
	profile, err := cfg.Profile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid physics: %v\n", err)
		os.Exit(1)
	}
	wager, err := cfg.Wager()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid wager: %v\n", err)
		os.Exit(1)
	}

	logger, err := setupLogging(cfg.Debug || *debugFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		os.Exit(1)
	}

	seed := cfg.Game.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger.Info("starting",
		zap.Uint64("seed", seed),
		zap.Int("pegs", b.PegCount()),
		zap.Int("bins", b.BinCount()),
		zap.Stringer("collision_policy", profile.Policy),
	)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	screen.HideCursor()

	sound := audio.NewSoundManager(audioConfig(cfg))
	cleanup := func() {
		sound.Cleanup()
		screen.Fini()
		_ = logger.Sync()
	}

	ok := guard(func() {
		if cfg.Audio.Enabled {
			if err := sound.Initialize(); err != nil {
				// Non-fatal, game can run without sound
				logger.Warn("audio initialization failed", zap.Error(err))
			}
		}
		if *muteFlag {
			sound.ToggleMute()
		}

		session := game.NewSession(b, profile, vmath.NewFastRand(seed), wager, logger)
		NewApp(screen, session, sound, logger).Run()
	}, cleanup, os.Stderr)
	if !ok {
		os.Exit(1)
	}
}

// guard runs fn then cleanup exactly once. A panic in fn is reported to w
// after cleanup has restored the terminal, and guard returns false.
func guard(fn, cleanup func(), w io.Writer) (ok bool) {
	defer func() {
		r := recover()
		cleanup()
		if r != nil {
			fmt.Fprintf(w, "\n\x1b[31mPLINKO CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(w, "Stack Trace:\n%s\n", debug.Stack())
			ok = false
		}
	}()
	fn()
	return true
}

func audioConfig(cfg *config.Config) audio.Config {
	ac := audio.DefaultConfig()
	ac.MasterVolume = cfg.Audio.Volume
	return ac
}
