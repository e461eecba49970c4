// Package sim plays one round of the league: a random score for every team
// the user does not control, and a user-supplied score for the one they do.
package sim

import (
	"context"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/Iron-Ham/league/internal/errors"
	"github.com/Iron-Ham/league/internal/event"
	"github.com/Iron-Ham/league/internal/league"
	"github.com/Iron-Ham/league/internal/logging"
)

// ScoreSource supplies the user's score for a round.
type ScoreSource interface {
	UserScore(ctx context.Context, team *league.Team) (goalsFor, goalsAgainst int, err error)
}

// Reporter is told about every random result as soon as it is applied.
type Reporter interface {
	MatchLine(r Result)
}

// Result is one applied match from a single team's point of view.
type Result struct {
	Round          int
	Team           *league.Team
	GoalsFor       int
	GoalsAgainst   int
	Outcome        league.Outcome
	UserControlled bool
}

// Options configure a Simulator.
type Options struct {
	// SkipRandomDraws drops level random scores without recording them.
	SkipRandomDraws bool
}

// Simulator produces and applies match results.
type Simulator struct {
	rng    *rand.Rand
	opts   Options
	bus    *event.Bus
	logger *logging.Logger
}

// New creates a Simulator drawing from rng. The same rng should be used for
// the whole run so a fixed seed reproduces every round.
func New(rng *rand.Rand, bus *event.Bus, logger *logging.Logger, opts Options) *Simulator {
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &Simulator{
		rng:    rng,
		opts:   opts,
		bus:    bus,
		logger: logger,
	}
}

// NewSource returns the PCG-backed random source used for a run.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// RandomScore draws goals scored and conceded independently from
// [0, league.MaxRandomGoals].
func (s *Simulator) RandomScore() (goalsFor, goalsAgainst int) {
	goalsFor = s.rng.IntN(league.MaxRandomGoals + 1)
	goalsAgainst = s.rng.IntN(league.MaxRandomGoals + 1)
	return goalsFor, goalsAgainst
}

// PlayRound applies one result to every team. Random results are applied and
// reported in league order; the user's score is requested last, and asked
// again if the team's record rejects it.
func (s *Simulator) PlayRound(ctx context.Context, round int, teams []*league.Team, user *league.Team, scores ScoreSource, rep Reporter) ([]Result, error) {
	if user == nil {
		return nil, fmt.Errorf("round %d: no user team", round)
	}

	if !slices.Contains(teams, user) {
		return nil, errors.NewLeagueError("cannot play round", errors.ErrUnknownTeam).WithTeam(user.Name)
	}

	logger := s.logger.WithRound(round)
	results := make([]Result, 0, len(teams))

	for _, team := range teams {
		if team == user {
			continue
		}

		gf, ga := s.RandomScore()
		if s.opts.SkipRandomDraws && gf == ga {
			logger.Debug("random draw skipped", "team", team.Name, "goals", gf)
			continue
		}

		r, err := s.apply(round, team, gf, ga, false)
		if err != nil {
			return results, err
		}
		results = append(results, r)
		if rep != nil {
			rep.MatchLine(r)
		}
	}

	r, err := s.playUser(ctx, round, user, scores)
	if err != nil {
		return results, err
	}
	results = append(results, r)

	logger.Info("round played", "results", len(results))
	return results, nil
}

func (s *Simulator) playUser(ctx context.Context, round int, user *league.Team, scores ScoreSource) (Result, error) {
	for {
		gf, ga, err := scores.UserScore(ctx, user)
		if err != nil {
			return Result{}, fmt.Errorf("reading score for %s: %w", user.Name, err)
		}

		r, err := s.apply(round, user, gf, ga, true)
		if err == nil {
			return r, nil
		}
		if !errors.IsInputError(err) {
			return Result{}, err
		}

		s.logger.WithRound(round).WithTeam(user.Name).Warn("score rejected", "error", err.Error())
		s.bus.Publish(event.NewInputRejectedEvent("score", fmt.Sprintf("%d - %d", gf, ga), err.Error()))
	}
}

func (s *Simulator) apply(round int, team *league.Team, gf, ga int, user bool) (Result, error) {
	outcome, err := team.ApplyResult(gf, ga)
	if err != nil {
		return Result{}, fmt.Errorf("applying %d-%d to %s: %w", gf, ga, team.Name, err)
	}

	s.logger.WithRound(round).WithTeam(team.Name).Debug("result applied",
		"goals_for", gf,
		"goals_against", ga,
		"outcome", outcome.String(),
		"user", user,
	)
	s.bus.Publish(event.NewMatchPlayedEvent(round, team.Name, gf, ga, outcome.String(), user))

	return Result{
		Round:          round,
		Team:           team,
		GoalsFor:       gf,
		GoalsAgainst:   ga,
		Outcome:        outcome,
		UserControlled: user,
	}, nil
}
