// Package render prints the tournament transcript: standings tables, round
// banners, match lines and the final winner.
package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/Iron-Ham/league/internal/league"
	"github.com/Iron-Ham/league/internal/sim"
)

var standingsHeaders = []string{
	"Team", "Played", "Won", "Drawn", "Lost",
	"Goals For", "Goals Against", "Goal Difference", "Points",
}

// Renderer writes the transcript to a single writer. It never modifies the
// teams it is given.
type Renderer struct {
	out    io.Writer
	styles Styles
	user   *league.Team
}

// New returns a Renderer bound to w. With color false, or when w is not a
// color terminal, output is plain text.
func New(w io.Writer, color bool) *Renderer {
	return &Renderer{
		out:    w,
		styles: newStyles(newLipglossRenderer(w, color)),
	}
}

// Highlight marks the user's team so its standings row stands out.
func (r *Renderer) Highlight(team *league.Team) {
	r.user = team
}

// Standings prints the ranked league table.
func (r *Renderer) Standings(teams []*league.Team) {
	ranked := league.Rank(teams)

	rows := make([][]string, 0, len(ranked))
	for _, t := range ranked {
		rows = append(rows, standingsRow(t))
	}

	tbl := table.New().
		Border(lipgloss.MarkdownBorder()).
		BorderStyle(r.styles.Border).
		BorderTop(false).
		BorderBottom(false).
		Headers(standingsHeaders...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return r.styles.Header
			case r.user != nil && row >= 0 && row < len(ranked) && ranked[row] == r.user:
				return r.styles.User
			default:
				return r.styles.Cell
			}
		})

	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, r.styles.Banner.Render("** Current Standings **"))
	fmt.Fprintln(r.out, tbl.String())
}

func standingsRow(t *league.Team) []string {
	return []string{
		t.Name,
		strconv.Itoa(t.Played),
		strconv.Itoa(t.Won),
		strconv.Itoa(t.Drawn),
		strconv.Itoa(t.Lost),
		strconv.Itoa(t.GoalsFor),
		strconv.Itoa(t.GoalsAgainst),
		strconv.Itoa(t.GoalDifference()),
		strconv.Itoa(t.Points),
	}
}

// RoundHeader announces round n.
func (r *Renderer) RoundHeader(n int) {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, r.styles.Banner.Render(fmt.Sprintf("** Round %d Matches **", n)))
}

// MatchLine prints one random result as it is played.
func (r *Renderer) MatchLine(res sim.Result) {
	fmt.Fprintf(r.out, "%s: %d - %d\n", res.Team.Name, res.GoalsFor, res.GoalsAgainst)
}

// Winner announces the champion.
func (r *Renderer) Winner(team *league.Team) {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, r.styles.Winner.Render(team.Name+" is the winner of the tournament!"))
}

// ExitPrompt asks for the key that ends the run.
func (r *Renderer) ExitPrompt() {
	fmt.Fprintln(r.out, r.styles.Muted.Render("Press any key to exit."))
}
