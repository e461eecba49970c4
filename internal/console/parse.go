// Package console reads the user's answers from a line-oriented terminal
// session. Parsing is kept in pure functions; the prompting loops only print,
// read, and retry.
package console

import (
	"strconv"
	"strings"

	"github.com/Iron-Ham/league/internal/errors"
)

// ParseTeamChoice parses a 1-based team number in [1, count].
func ParseTeamChoice(line string, count int) (int, error) {
	input := strings.TrimSpace(line)
	n, err := strconv.Atoi(input)
	if err != nil {
		return 0, errors.NewInputError("team choice", input, errors.ErrNotANumber)
	}
	if n < 1 || n > count {
		return 0, errors.NewInputError("team choice", input, errors.ErrOutOfRange)
	}
	return n, nil
}

// ParseGoals parses a non-negative goal count. There is no upper bound.
func ParseGoals(line string) (int, error) {
	input := strings.TrimSpace(line)
	n, err := strconv.Atoi(input)
	if err != nil {
		return 0, errors.NewInputError("goals", input, errors.ErrNotANumber)
	}
	if n < 0 {
		return 0, errors.NewInputError("goals", input, errors.ErrNegative)
	}
	return n, nil
}
