package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/sheikhrachel/go-life/utils"
)

// flagValues mirrors the config fields that can be overridden on the command line
type flagValues struct {
	configPath     string
	width          int
	height         int
	interval       time.Duration
	pattern        string
	strategy       string
	generations    uint64
	renderer       string
	metricsAddr    string
	logLevel       string
	randomSeed     int64
	offsetX        int
	offsetY        int
	showStartupMsg bool
}

func newRootCmd() *cobra.Command {
	var (
		flags    flagValues
		defaults = utils.DefaultConfig()
	)

	cmd := &cobra.Command{
		Use:   "go-life",
		Short: "Run Conway's Game of Life on a bounded grid",
		Long: `go-life advances a fixed-size, non-wrapping Game of Life grid on a
background worker while a renderer paints each generation.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := resolveConfig(cmd, flags)
			if err != nil {
				return err
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: config.SlogLevel()}))
			return runSimulation(config, cmd.OutOrStdout(), logger, flags.showStartupMsg)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&flags.configPath, "config", "c", "", "JSON or YAML config file")
	fs.IntVar(&flags.width, "width", defaults.Width, "grid width")
	fs.IntVar(&flags.height, "height", defaults.Height, "grid height")
	fs.DurationVar(&flags.interval, "interval", defaults.TickInterval.Std(), "time between generations")
	fs.StringVarP(&flags.pattern, "pattern", "p", defaults.Pattern, "seed pattern (blinker, block, glider)")
	fs.StringVarP(&flags.strategy, "strategy", "s", defaults.Strategy, "transition strategy (conway, parallel, random)")
	fs.Uint64VarP(&flags.generations, "generations", "n", defaults.MaxGenerations, "stop after this many generations, 0 runs until interrupted")
	fs.StringVarP(&flags.renderer, "renderer", "r", defaults.Renderer, "renderer (terminal, gui, none)")
	fs.StringVar(&flags.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")
	fs.StringVar(&flags.logLevel, "log-level", defaults.LogLevel, "log level (debug, info, warn, error)")
	fs.Int64Var(&flags.randomSeed, "random-seed", defaults.RandomSeed, "seed for the random strategy")
	fs.IntVar(&flags.offsetX, "offset-x", 0, "shift the seed pattern right")
	fs.IntVar(&flags.offsetY, "offset-y", 0, "shift the seed pattern down")
	fs.BoolVar(&flags.showStartupMsg, "banner", true, "print run information before starting")

	return cmd
}

// resolveConfig layers explicitly set flags over the config file over defaults
func resolveConfig(cmd *cobra.Command, flags flagValues) (utils.Config, error) {
	config := utils.DefaultConfig()
	if flags.configPath != "" {
		loaded, err := utils.LoadConfig(flags.configPath)
		if err != nil {
			return config, err
		}
		config = loaded
	}

	fs := cmd.Flags()
	if fs.Changed("width") {
		config.Width = flags.width
	}
	if fs.Changed("height") {
		config.Height = flags.height
	}
	if fs.Changed("interval") {
		config.TickInterval = utils.Duration(flags.interval)
	}
	if fs.Changed("pattern") {
		config.Pattern = flags.pattern
		config.Seed = nil
	}
	if fs.Changed("strategy") {
		config.Strategy = flags.strategy
	}
	if fs.Changed("generations") {
		config.MaxGenerations = flags.generations
	}
	if fs.Changed("renderer") {
		config.Renderer = flags.renderer
	}
	if fs.Changed("metrics-addr") {
		config.MetricsAddr = flags.metricsAddr
	}
	if fs.Changed("log-level") {
		config.LogLevel = flags.logLevel
	}
	if fs.Changed("random-seed") {
		config.RandomSeed = flags.randomSeed
	}
	if fs.Changed("offset-x") || fs.Changed("offset-y") {
		config.Offset = []int{flags.offsetX, flags.offsetY}
	}

	return config, config.Validate()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
