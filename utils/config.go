package utils

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/rules"
)

const (
	RendererTerminal = "terminal"
	RendererGUI      = "gui"
	RendererNone     = "none"
)

// ErrInvalidConfig marks configuration that must not start a simulation.
var ErrInvalidConfig = errors.New("invalid config")

// Duration is a time.Duration that decodes from "150ms"-style strings as well
// as integer nanoseconds.
type Duration time.Duration

func (d Duration) Std() time.Duration { return time.Duration(d) }

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	return d.set(raw)
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var raw any
	if err := node.Decode(&raw); err != nil {
		return err
	}
	return d.set(raw)
}

func (d *Duration) set(raw any) error {
	switch v := raw.(type) {
	case string:
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return errors.Wrapf(err, "[Duration] bad duration %q", v)
		}
		*d = Duration(parsed)
	case float64:
		*d = Duration(int64(v))
	case int:
		*d = Duration(v)
	default:
		return errors.Errorf("[Duration] unsupported value %v", raw)
	}
	return nil
}

// Config holds the configuration for a simulation run. It is fixed once the
// worker starts.
type Config struct {
	Width          int      `json:"width" yaml:"width"`
	Height         int      `json:"height" yaml:"height"`
	TickInterval   Duration `json:"tick_interval" yaml:"tick_interval"`
	Pattern        string   `json:"pattern" yaml:"pattern"`
	Offset         []int    `json:"offset,omitempty" yaml:"offset,omitempty"`
	Seed           [][]int  `json:"seed,omitempty" yaml:"seed,omitempty"`
	Strategy       string   `json:"strategy" yaml:"strategy"`
	RandomSeed     int64    `json:"random_seed" yaml:"random_seed"`
	MaxGenerations uint64   `json:"max_generations" yaml:"max_generations"`
	Renderer       string   `json:"renderer" yaml:"renderer"`
	MetricsAddr    string   `json:"metrics_addr,omitempty" yaml:"metrics_addr,omitempty"`
	LogLevel       string   `json:"log_level" yaml:"log_level"`
}

// DefaultConfig returns a 40x40 blinker ticking every 100ms
func DefaultConfig() Config {
	return Config{
		Width:        40,
		Height:       40,
		TickInterval: Duration(100 * time.Millisecond),
		Pattern:      "blinker",
		Strategy:     rules.StrategyConway,
		RandomSeed:   42,
		Renderer:     RendererTerminal,
		LogLevel:     "info",
	}
}

// LoadConfig loads configuration from a JSON or YAML file on top of the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &config)
	default:
		err = json.Unmarshal(data, &config)
	}
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate rejects configuration that must not start a simulation.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "grid must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.TickInterval <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "tick_interval must be positive, got %v", c.TickInterval.Std())
	}
	if !slices.Contains(rules.StrategyNames(), c.Strategy) {
		return errors.Wrapf(rules.ErrUnknownStrategy, "%q", c.Strategy)
	}
	switch c.Renderer {
	case RendererTerminal, RendererGUI, RendererNone:
	default:
		return errors.Wrapf(ErrInvalidConfig, "unknown renderer %q", c.Renderer)
	}
	if c.Offset != nil && len(c.Offset) != 2 {
		return errors.Wrapf(ErrInvalidConfig, "offset needs 2 values, got %d", len(c.Offset))
	}
	if len(c.Seed) > 0 && c.Offset != nil {
		return errors.Wrap(ErrInvalidConfig, "offset applies to named patterns, not to an explicit seed list")
	}
	if _, err := c.SeedCoords(); err != nil {
		return err
	}
	return nil
}

// SeedCoords resolves the initial alive set. An explicit seed list wins over
// the named pattern; Validate rejects an offset alongside it. Range checks
// against the grid happen in model.Grid.Seed.
func (c Config) SeedCoords() ([]model.Coord, error) {
	if len(c.Seed) > 0 {
		coords := make([]model.Coord, 0, len(c.Seed))
		for i, pair := range c.Seed {
			if len(pair) != 2 {
				return nil, errors.Wrapf(ErrInvalidConfig, "seed[%d] needs 2 values, got %d", i, len(pair))
			}
			coords = append(coords, model.Coord{X: pair[0], Y: pair[1]})
		}
		return coords, nil
	}

	pattern, err := model.LookupPattern(c.Pattern)
	if err != nil {
		return nil, err
	}
	if len(c.Offset) == 2 {
		pattern = pattern.Translate(c.Offset[0], c.Offset[1])
	}
	return pattern, nil
}

// SlogLevel maps LogLevel onto slog, defaulting to Info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
