// Package league holds the team records of a round-based league and the
// rules that change and order them: result classification, the single
// result-application transition, and the standings comparator.
package league

import (
	"fmt"
	"math"

	"github.com/Iron-Ham/league/internal/errors"
)

const (
	// TeamCount is the number of teams in every league.
	TeamCount = 15
	// RoundCount is the number of rounds played before a winner is declared.
	RoundCount = 3
	// MaxRandomGoals is the upper bound (inclusive) of a randomly drawn goal count.
	MaxRandomGoals = 5
)

// Team is one club's aggregate record.
type Team struct {
	Name         string
	Played       int
	Won          int
	Drawn        int
	Lost         int
	GoalsFor     int
	GoalsAgainst int
	Points       int
}

// NewTeams creates count teams named "Team 1".."Team <count>" with zeroed records.
func NewTeams(count int) []*Team {
	if count <= 0 {
		return []*Team{}
	}
	teams := make([]*Team, 0, count)
	for i := 1; i <= count; i++ {
		teams = append(teams, &Team{Name: fmt.Sprintf("Team %d", i)})
	}
	return teams
}

// GoalDifference is goals scored minus goals conceded.
func (t *Team) GoalDifference() int {
	return t.GoalsFor - t.GoalsAgainst
}

// ApplyResult records one match for the team and returns its outcome.
// A negative goal count, or one that would overflow the running totals, is
// rejected and leaves the record untouched.
func (t *Team) ApplyResult(goalsFor, goalsAgainst int) (Outcome, error) {
	if goalsFor < 0 {
		return 0, errors.NewInputError("goals scored", fmt.Sprint(goalsFor), errors.ErrNegative)
	}
	if goalsAgainst < 0 {
		return 0, errors.NewInputError("goals conceded", fmt.Sprint(goalsAgainst), errors.ErrNegative)
	}
	if goalsFor > math.MaxInt-t.GoalsFor {
		return 0, errors.NewInputError("goals scored", fmt.Sprint(goalsFor), errors.ErrOutOfRange)
	}
	if goalsAgainst > math.MaxInt-t.GoalsAgainst {
		return 0, errors.NewInputError("goals conceded", fmt.Sprint(goalsAgainst), errors.ErrOutOfRange)
	}

	outcome := Classify(goalsFor, goalsAgainst)

	t.Played++
	t.GoalsFor += goalsFor
	t.GoalsAgainst += goalsAgainst
	t.Points += outcome.Points()

	switch outcome {
	case Win:
		t.Won++
	case Draw:
		t.Drawn++
	default:
		t.Lost++
	}

	return outcome, nil
}

// Check verifies that the record's counters agree with each other.
func (t *Team) Check() error {
	if t.Played != t.Won+t.Drawn+t.Lost {
		return errors.NewLeagueError(
			fmt.Sprintf("played %d != won %d + drawn %d + lost %d", t.Played, t.Won, t.Drawn, t.Lost),
			errors.ErrInvariant,
		).WithTeam(t.Name)
	}
	if want := Win.Points()*t.Won + Draw.Points()*t.Drawn; t.Points != want {
		return errors.NewLeagueError(
			fmt.Sprintf("points %d != %d from results", t.Points, want),
			errors.ErrInvariant,
		).WithTeam(t.Name)
	}
	return nil
}

// CheckAll runs Check on every team and joins the failures.
func CheckAll(teams []*Team) error {
	var errs []error
	for _, t := range teams {
		if err := t.Check(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// SelectTeam returns the team at the 1-based position index.
func SelectTeam(teams []*Team, index int) (*Team, error) {
	if len(teams) == 0 {
		return nil, errors.ErrEmptyLeague
	}
	if index < 1 || index > len(teams) {
		return nil, errors.NewInputError("team choice", fmt.Sprint(index), errors.ErrOutOfRange)
	}
	return teams[index-1], nil
}

// String renders the record on one line, mostly for logs and test failures.
func (t *Team) String() string {
	return fmt.Sprintf("%s P%d W%d D%d L%d GF%d GA%d GD%d Pts%d",
		t.Name, t.Played, t.Won, t.Drawn, t.Lost,
		t.GoalsFor, t.GoalsAgainst, t.GoalDifference(), t.Points)
}
