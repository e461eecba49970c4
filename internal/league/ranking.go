package league

import (
	"cmp"
	"slices"

	"github.com/Iron-Ham/league/internal/errors"
)

// Compare orders two teams for the standings: more points first, then better
// goal difference, then more goals scored. It returns a negative number when a
// ranks above b and zero when the three keys tie.
func Compare(a, b *Team) int {
	if c := cmp.Compare(b.Points, a.Points); c != 0 {
		return c
	}
	if c := cmp.Compare(b.GoalDifference(), a.GoalDifference()); c != 0 {
		return c
	}
	return cmp.Compare(b.GoalsFor, a.GoalsFor)
}

// Rank returns the teams in standings order. The input slice is left as is.
// Teams that tie on every key keep their input order.
func Rank(teams []*Team) []*Team {
	ranked := slices.Clone(teams)
	slices.SortStableFunc(ranked, Compare)
	return ranked
}

// Winner returns the top of the standings.
func Winner(teams []*Team) (*Team, error) {
	if len(teams) == 0 {
		return nil, errors.ErrEmptyLeague
	}
	return Rank(teams)[0], nil
}
