// Package config loads game tuning from defaults, an optional YAML file,
// an optional .env file and PLINKO_* environment variables, in that order.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/plinko/board"
	"github.com/lixenwraith/plinko/constants"
	"github.com/lixenwraith/plinko/physics"
)

// Environment variable names
const (
	EnvConfigPath = "PLINKO_CONFIG"
	EnvSeed       = "PLINKO_SEED"
	EnvWager      = "PLINKO_WAGER"
	EnvDebug      = "PLINKO_DEBUG"
	EnvAudio      = "PLINKO_AUDIO"
)

type BoardConfig struct {
	Width       float64   `yaml:"width"`
	Height      float64   `yaml:"height"`
	Rows        int       `yaml:"rows"`
	SpacingX    float64   `yaml:"spacing_x"`
	SpacingY    float64   `yaml:"spacing_y"`
	OriginX     float64   `yaml:"origin_x"`
	OriginY     float64   `yaml:"origin_y"`
	PegRadius   float64   `yaml:"peg_radius"`
	BinCount    int       `yaml:"bin_count"`
	BinHeight   float64   `yaml:"bin_height"`
	Multipliers []float64 `yaml:"multipliers"`
}

type PhysicsConfig struct {
	Gravity         float64 `yaml:"gravity"`
	Dampening       float64 `yaml:"dampening"`
	BallRadius      float64 `yaml:"ball_radius"`
	Nudge           float64 `yaml:"nudge"`
	KickMin         float64 `yaml:"kick_min"`
	KickMax         float64 `yaml:"kick_max"`
	SpawnY          float64 `yaml:"spawn_y"`
	CollisionPolicy string  `yaml:"collision_policy"`
}

type GameConfig struct {
	Wager string `yaml:"wager"`
	// Seed 0 seeds from the clock
	Seed uint64 `yaml:"seed"`
}

type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Physics PhysicsConfig `yaml:"physics"`
	Game    GameConfig    `yaml:"game"`
	Audio   AudioConfig   `yaml:"audio"`
	Debug   bool          `yaml:"debug"`
}

// Default mirrors the stock board and tuning constants
func Default() *Config {
	mult := make([]float64, len(constants.BinMultipliers))
	copy(mult, constants.BinMultipliers[:])
	return &Config{
		Board: BoardConfig{
			Width:       constants.BoardWidth,
			Height:      constants.BoardHeight,
			Rows:        constants.PegRows,
			SpacingX:    constants.PegSpacingX,
			SpacingY:    constants.PegSpacingY,
			OriginX:     constants.PegOriginX,
			OriginY:     constants.PegOriginY,
			PegRadius:   constants.PegRadius,
			BinCount:    constants.BinCount,
			BinHeight:   constants.BinHeight,
			Multipliers: mult,
		},
		Physics: PhysicsConfig{
			Gravity:         constants.Gravity,
			Dampening:       constants.BounceDampening,
			BallRadius:      constants.BallRadius,
			Nudge:           constants.BounceNudge,
			KickMin:         constants.KickMin,
			KickMax:         constants.KickMax,
			SpawnY:          constants.SpawnY,
			CollisionPolicy: physics.ResolveAll.String(),
		},
		Game: GameConfig{
			Wager: constants.DefaultWager,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  1.0,
		},
	}
}

// Load overlays the YAML file at path onto Default. Keys absent from the file
// keep their default; unknown keys are an error. An empty path returns
// defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// FromEnvironment reads .env if present, loads the YAML file named by path or
// PLINKO_CONFIG, then applies PLINKO_* overrides
func FromEnvironment(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv(EnvSeed); ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		c.Game.Seed = seed
	}
	if v, ok := os.LookupEnv(EnvWager); ok {
		c.Game.Wager = v
	}
	if v, ok := os.LookupEnv(EnvDebug); ok {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvDebug, err)
		}
		c.Debug = debug
	}
	if v, ok := os.LookupEnv(EnvAudio); ok {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvAudio, err)
		}
		c.Audio.Enabled = enabled
	}
	return nil
}

// BoardConfig converts to board geometry; bins split Width evenly
func (c *Config) BoardConfig() board.Config {
	var binWidth float64
	if c.Board.BinCount > 0 {
		binWidth = c.Board.Width / float64(c.Board.BinCount)
	}
	mult := make([]float64, len(c.Board.Multipliers))
	copy(mult, c.Board.Multipliers)
	return board.Config{
		Rows:        c.Board.Rows,
		SpacingX:    c.Board.SpacingX,
		SpacingY:    c.Board.SpacingY,
		OriginX:     c.Board.OriginX,
		OriginY:     c.Board.OriginY,
		BinCount:    c.Board.BinCount,
		BinWidth:    binWidth,
		BinHeight:   c.Board.BinHeight,
		Height:      c.Board.Height,
		PegRadius:   c.Board.PegRadius,
		Multipliers: mult,
	}
}

// NewBoard builds the board; failures are *board.ConfigError
func (c *Config) NewBoard() (*board.Board, error) {
	return board.New(c.BoardConfig())
}

// Profile converts and validates projectile tuning
func (c *Config) Profile() (*physics.Profile, error) {
	policy, err := physics.ParseCollisionPolicy(c.Physics.CollisionPolicy)
	if err != nil {
		return nil, fmt.Errorf("physics: %w", err)
	}
	p := &physics.Profile{
		Gravity:    c.Physics.Gravity,
		Dampening:  c.Physics.Dampening,
		BallRadius: c.Physics.BallRadius,
		Nudge:      c.Physics.Nudge,
		KickMin:    c.Physics.KickMin,
		KickMax:    c.Physics.KickMax,
		SpawnY:     c.Physics.SpawnY,
		Policy:     policy,
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("physics: %w", err)
	}
	return p, nil
}

// Wager parses the opening bet
func (c *Config) Wager() (decimal.Decimal, error) {
	w, err := decimal.NewFromString(c.Game.Wager)
	if err != nil {
		return decimal.Zero, fmt.Errorf("game wager %q: %w", c.Game.Wager, err)
	}
	if w.IsNegative() {
		return decimal.Zero, fmt.Errorf("game wager %q: must not be negative", c.Game.Wager)
	}
	return w, nil
}
