// Package game runs a full tournament: team selection, the fixed number of
// rounds, and the winner announcement.
package game

import (
	"context"
	"fmt"

	"github.com/Iron-Ham/league/internal/event"
	"github.com/Iron-Ham/league/internal/league"
	"github.com/Iron-Ham/league/internal/logging"
	"github.com/Iron-Ham/league/internal/sim"
)

// Console is the user's side of the tournament.
type Console interface {
	sim.ScoreSource
	ChooseTeam(ctx context.Context, teams []*league.Team) (*league.Team, error)
	WaitForKey(ctx context.Context) error
}

// Display renders the transcript.
type Display interface {
	sim.Reporter
	Highlight(team *league.Team)
	Standings(teams []*league.Team)
	RoundHeader(round int)
	Winner(team *league.Team)
	ExitPrompt()
}

// Tournament wires the league to a console, a display and a simulator.
type Tournament struct {
	console Console
	display Display
	sim     *sim.Simulator
	bus     *event.Bus
	logger  *logging.Logger
	seed    uint64

	teams []*league.Team
	user  *league.Team
}

// Config holds the collaborators of a Tournament.
type Config struct {
	Console   Console
	Display   Display
	Simulator *sim.Simulator
	Bus       *event.Bus
	Logger    *logging.Logger
	// Seed is only reported; the simulator already owns its source.
	Seed uint64
}

// New creates a Tournament.
func New(cfg Config) *Tournament {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &Tournament{
		console: cfg.Console,
		display: cfg.Display,
		sim:     cfg.Simulator,
		bus:     cfg.Bus,
		logger:  logger,
		seed:    cfg.Seed,
	}
}

// Teams returns the league as created by Run, in creation order.
func (t *Tournament) Teams() []*league.Team { return t.teams }

// UserTeam returns the team bound to the user, or nil before selection.
func (t *Tournament) UserTeam() *league.Team { return t.user }

// Run plays the tournament to completion and waits for the exit key.
func (t *Tournament) Run(ctx context.Context) error {
	t.teams = league.NewTeams(league.TeamCount)

	user, err := t.console.ChooseTeam(ctx, t.teams)
	if err != nil {
		return fmt.Errorf("choosing team: %w", err)
	}
	t.user = user
	t.display.Highlight(user)

	t.logger.Info("tournament started", "user_team", user.Name, "seed", t.seed)
	t.bus.Publish(event.NewTournamentStartedEvent(len(t.teams), league.RoundCount, user.Name, t.seed))

	t.display.Standings(t.teams)

	for round := 1; round <= league.RoundCount; round++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("round %d: %w", round, err)
		}
		if err := t.playRound(ctx, round); err != nil {
			return err
		}
	}

	winner, err := league.Winner(t.teams)
	if err != nil {
		return fmt.Errorf("declaring winner: %w", err)
	}
	t.logger.WithTeam(winner.Name).Info("tournament won", "points", winner.Points)
	t.bus.Publish(event.NewTournamentWonEvent(winner.Name, winner.Points))

	t.display.Winner(winner)
	t.display.ExitPrompt()

	return t.console.WaitForKey(ctx)
}

func (t *Tournament) playRound(ctx context.Context, round int) error {
	t.display.RoundHeader(round)

	results, err := t.sim.PlayRound(ctx, round, t.teams, t.user, t.console, t.display)
	if err != nil {
		return fmt.Errorf("round %d: %w", round, err)
	}
	if err := league.CheckAll(t.teams); err != nil {
		return fmt.Errorf("round %d: %w", round, err)
	}

	leader := league.Rank(t.teams)[0]
	t.bus.Publish(event.NewRoundCompletedEvent(round, leader.Name, len(results)))

	t.display.Standings(t.teams)
	return nil
}
