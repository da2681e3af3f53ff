package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/render"
	"github.com/sheikhrachel/go-life/render/gui"
	"github.com/sheikhrachel/go-life/rules"
	"github.com/sheikhrachel/go-life/sim"
	"github.com/sheikhrachel/go-life/utils"
)

// initializeGame builds the seeded grid and the transition. Any error here is
// fatal: no worker is created for an invalid grid.
func initializeGame(config utils.Config) (*model.Grid, rules.Transition, error) {
	if err := config.Validate(); err != nil {
		return nil, nil, err
	}
	if config.Renderer == utils.RendererGUI && !gui.Supported {
		return nil, nil, gui.ErrUnsupported
	}

	grid, err := model.NewGrid(config.Width, config.Height)
	if err != nil {
		return nil, nil, err
	}
	seed, err := config.SeedCoords()
	if err != nil {
		return nil, nil, err
	}
	if err = grid.Seed(seed); err != nil {
		return nil, nil, err
	}

	transition, err := rules.ByName(config.Strategy, config.RandomSeed)
	if err != nil {
		return nil, nil, err
	}
	return grid, transition, nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(out io.Writer, config utils.Config, grid *model.Grid) {
	width, height := grid.Dimensions()
	fmt.Fprintf(out, "Strategy: %s | Interval: %v | Renderer: %s\n",
		config.Strategy, config.TickInterval.Std(), config.Renderer)
	fmt.Fprintf(out, "Grid: %dx%d | Initial living cells: %d\n",
		width, height, grid.Population())
	fmt.Fprintln(out, "Press Ctrl+C to exit gracefully")
	fmt.Fprintln(out)
}

// serveMetrics exposes reg on addr until the returned server is shut down.
func serveMetrics(addr string, reg *prometheus.Registry, logger *slog.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", "addr", addr, "error", err)
		}
	}()
	return srv
}

// runSimulation owns the grid for the whole run and only returns after the
// worker has reported done.
func runSimulation(config utils.Config, out io.Writer, logger *slog.Logger, banner bool) error {
	grid, transition, err := initializeGame(config)
	if err != nil {
		return err
	}
	logger = logger.With("run_id", uuid.NewString())

	opts := []sim.Option{
		sim.WithInterval(config.TickInterval.Std()),
		sim.WithLogger(logger),
		sim.WithMaxGenerations(config.MaxGenerations),
	}
	if config.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		opts = append(opts, sim.WithMetrics(sim.NewMetrics(reg)))
		srv := serveMetrics(config.MetricsAddr, reg, logger)
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			_ = srv.Shutdown(ctx)
		}()
	}

	var (
		stats = utils.NewStats()
		queue = sim.NewEventQueue()
		tally = sim.ListenerFuncs{Redraw: func() {
			stats.Observe(grid.Generation(), grid.Population())
		}}
		worker = sim.New(grid, transition, sim.Multi{tally, queue}, opts...)
	)

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			worker.Abort()
		case <-worker.Done():
		}
	}()

	if banner {
		displayGameInfo(out, config, grid)
	}

	worker.Start()
	switch config.Renderer {
	case utils.RendererGUI:
		err = gui.Run(grid, queue, worker, gui.Options{Title: "life"})
	case utils.RendererTerminal:
		err = renderLoop(queue, grid, render.NewTerminal(out))
	default:
		err = renderLoop(queue, grid, nil)
	}

	// the grid must outlive the worker
	worker.Abort()
	worker.Wait()

	fmt.Fprintf(out, "Final stats: %s\n", stats.Summary())
	return err
}

// renderLoop repaints on every redraw notification until the worker is done.
// A nil terminal only waits for done.
func renderLoop(queue *sim.EventQueue, grid *model.Grid, terminal *render.Terminal) error {
	if terminal != nil {
		if err := paintFrame(terminal, grid); err != nil {
			return err
		}
	}

	for {
		select {
		case <-queue.Done():
			return nil
		case <-queue.Redraw():
			if terminal == nil {
				continue
			}
			if err := paintFrame(terminal, grid); err != nil {
				return err
			}
		}
	}
}

func paintFrame(terminal *render.Terminal, grid *model.Grid) error {
	if err := terminal.Clear(); err != nil {
		return errors.Wrap(err, "clear terminal")
	}
	return errors.Wrap(terminal.Paint(grid), "paint grid")
}
