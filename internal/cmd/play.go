package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/Iron-Ham/league/internal/config"
	"github.com/Iron-Ham/league/internal/console"
	"github.com/Iron-Ham/league/internal/errors"
	"github.com/Iron-Ham/league/internal/event"
	"github.com/Iron-Ham/league/internal/game"
	"github.com/Iron-Ham/league/internal/logging"
	"github.com/Iron-Ham/league/internal/render"
	"github.com/Iron-Ham/league/internal/sim"
	"github.com/spf13/cobra"
)

var playSeed uint64

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a tournament",
	Long: `Play a tournament. This is also what running league without a
subcommand does.

A fixed --seed replays the same random results for the same answers.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().Uint64Var(&playSeed, "seed", 0, "Seed for random results (default: simulation.seed, or the clock)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if cmd.Flags().Changed("seed") {
		cfg.Simulation.Seed = playSeed
	}
	seed := cfg.Simulation.ResolveSeed(time.Now())

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Close() }()

	bus := newEventBus(logger)

	out := cmd.OutOrStdout()
	tournament := game.New(game.Config{
		Console: console.NewPrompter(cmd.InOrStdin(), out,
			console.WithLogger(logger),
			console.WithBus(bus),
		),
		Display: render.New(out, cfg.Display.Color),
		Simulator: sim.New(sim.NewSource(seed), bus, logger, sim.Options{
			SkipRandomDraws: cfg.Simulation.SkipRandomDraws,
		}),
		Bus:    bus,
		Logger: logger,
		Seed:   seed,
	})

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if err := tournament.Run(ctx); err != nil {
		logAbort(logger, err)
		return err
	}
	return nil
}

// logAbort records why a run stopped early. Runs the user ended are warnings.
func logAbort(logger *logging.Logger, err error) {
	severity := errors.GetSeverity(err)
	if severity == errors.SeverityWarning {
		logger.Warn("tournament aborted", "error", err.Error(), "severity", severity.String())
		return
	}
	logger.Error("tournament aborted", "error", err.Error(), "severity", severity.String())
}

// newLogger returns a file logger when logging is enabled. Stdout carries the
// game transcript, so a disabled logger discards everything.
func newLogger(cfg *config.Config) (*logging.Logger, error) {
	if !cfg.Logging.Enabled {
		return logging.NopLogger(), nil
	}
	logger, err := logging.NewLogger(cfg.Logging.ResolveFile(), cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return logger, nil
}

// newEventBus creates the run's bus with every event mirrored to the log.
func newEventBus(logger *logging.Logger) *event.Bus {
	bus := event.NewBus()
	bus.OnPanic(func(e event.Event, recovered any) {
		logger.Error("event handler panicked", "event_type", e.EventType(), "panic", fmt.Sprint(recovered))
	})
	bus.SubscribeAll(func(e event.Event) {
		logger.Debug("event", "event_type", e.EventType(), "data", e)
	})
	return bus
}
