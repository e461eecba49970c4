package sim

import (
	"context"
	"math"
	"testing"

	"github.com/Iron-Ham/league/internal/errors"
	"github.com/Iron-Ham/league/internal/event"
	"github.com/Iron-Ham/league/internal/league"
)

// fixedScore answers the user prompt with a canned score.
type fixedScore struct {
	gf, ga int
	err    error
	asked  []string
}

func (f *fixedScore) UserScore(_ context.Context, team *league.Team) (int, int, error) {
	f.asked = append(f.asked, team.Name)
	return f.gf, f.ga, f.err
}

// queuedScores answers with each score in turn and reports closed input once
// they run out.
type queuedScores struct {
	scores [][2]int
	asked  int
}

func (q *queuedScores) UserScore(_ context.Context, _ *league.Team) (int, int, error) {
	if q.asked == len(q.scores) {
		return 0, 0, errors.ErrInputClosed
	}
	s := q.scores[q.asked]
	q.asked++
	return s[0], s[1], nil
}

// lineRecorder captures reported results in order.
type lineRecorder struct {
	results []Result
}

func (l *lineRecorder) MatchLine(r Result) {
	l.results = append(l.results, r)
}

func TestRandomScore_Range(t *testing.T) {
	s := New(NewSource(1), nil, nil, Options{})

	seen := make(map[int]bool)
	for i := 0; i < 2000; i++ {
		gf, ga := s.RandomScore()
		for _, g := range []int{gf, ga} {
			if g < 0 || g > league.MaxRandomGoals {
				t.Fatalf("RandomScore() produced %d, outside [0, %d]", g, league.MaxRandomGoals)
			}
			seen[g] = true
		}
	}
	if len(seen) != league.MaxRandomGoals+1 {
		t.Errorf("expected every value in [0, %d] to appear, saw %v", league.MaxRandomGoals, seen)
	}
}

func TestRandomScore_Reproducible(t *testing.T) {
	a := New(NewSource(2024), nil, nil, Options{})
	b := New(NewSource(2024), nil, nil, Options{})

	for i := 0; i < 50; i++ {
		agf, aga := a.RandomScore()
		bgf, bga := b.RandomScore()
		if agf != bgf || aga != bga {
			t.Fatalf("draw %d differs for the same seed: %d-%d vs %d-%d", i, agf, aga, bgf, bga)
		}
	}
}

func TestPlayRound(t *testing.T) {
	teams := league.NewTeams(league.TeamCount)
	user := teams[4]
	scores := &fixedScore{gf: 3, ga: 1}
	rec := &lineRecorder{}

	bus := event.NewBus()
	var events []event.MatchPlayedEvent
	bus.Subscribe(event.TypeMatchPlayed, func(e event.Event) {
		events = append(events, e.(event.MatchPlayedEvent))
	})

	s := New(NewSource(7), bus, nil, Options{})
	results, err := s.PlayRound(context.Background(), 1, teams, user, scores, rec)
	if err != nil {
		t.Fatalf("PlayRound() error = %v", err)
	}

	if len(results) != league.TeamCount {
		t.Fatalf("got %d results, want %d", len(results), league.TeamCount)
	}

	// Random results come first in league order, the user's result last.
	want := 0
	for i, r := range results[:len(results)-1] {
		if teams[want] == user {
			want++
		}
		if r.Team != teams[want] {
			t.Errorf("results[%d] = %s, want %s", i, r.Team.Name, teams[want].Name)
		}
		if r.UserControlled {
			t.Errorf("results[%d] marked as user controlled", i)
		}
		want++
	}
	last := results[len(results)-1]
	if last.Team != user || !last.UserControlled {
		t.Errorf("last result = %+v, want the user's", last)
	}

	if len(rec.results) != league.TeamCount-1 {
		t.Errorf("reported %d lines, want %d", len(rec.results), league.TeamCount-1)
	}
	for _, r := range rec.results {
		if r.UserControlled {
			t.Error("user's result should not be reported as a match line")
		}
	}

	if len(events) != league.TeamCount {
		t.Errorf("published %d events, want %d", len(events), league.TeamCount)
	}

	wantUser := league.Team{Name: "Team 5", Played: 1, Won: 1, GoalsFor: 3, GoalsAgainst: 1, Points: 3}
	if *user != wantUser {
		t.Errorf("user team = %v, want %v", user, &wantUser)
	}
	if len(scores.asked) != 1 || scores.asked[0] != "Team 5" {
		t.Errorf("user score asked for %v", scores.asked)
	}

	for _, team := range teams {
		if team.Played != 1 {
			t.Errorf("%s played %d matches, want 1", team.Name, team.Played)
		}
		if err := team.Check(); err != nil {
			t.Error(err)
		}
	}
}

func TestPlayRound_RandomDrawsRecorded(t *testing.T) {
	teams := league.NewTeams(league.TeamCount)
	s := New(NewSource(11), nil, nil, Options{})

	drawn := 0
	for round := 1; round <= 20; round++ {
		results, err := s.PlayRound(context.Background(), round, teams, teams[0], &fixedScore{gf: 0, ga: 2}, nil)
		if err != nil {
			t.Fatalf("PlayRound() error = %v", err)
		}
		for _, r := range results {
			if r.Outcome == league.Draw {
				drawn++
			}
		}
	}

	if drawn == 0 {
		t.Fatal("expected at least one random draw over 20 rounds")
	}
	for _, team := range teams[1:] {
		if team.Played != 20 {
			t.Errorf("%s played %d, want 20", team.Name, team.Played)
		}
	}
}

func TestPlayRound_SkipRandomDraws(t *testing.T) {
	teams := league.NewTeams(league.TeamCount)
	rec := &lineRecorder{}
	s := New(NewSource(11), nil, nil, Options{SkipRandomDraws: true})

	for round := 1; round <= 20; round++ {
		if _, err := s.PlayRound(context.Background(), round, teams, teams[0], &fixedScore{gf: 1, ga: 1}, rec); err != nil {
			t.Fatalf("PlayRound() error = %v", err)
		}
	}

	for _, r := range rec.results {
		if r.Outcome == league.Draw {
			t.Fatalf("random draw reported for %s with skipping enabled", r.Team.Name)
		}
	}
	for _, team := range teams[1:] {
		if team.Drawn != 0 {
			t.Errorf("%s recorded %d draws with skipping enabled", team.Name, team.Drawn)
		}
		if err := team.Check(); err != nil {
			t.Error(err)
		}
	}
	// The user's draws are always recorded.
	if teams[0].Drawn != 20 {
		t.Errorf("user drawn = %d, want 20", teams[0].Drawn)
	}
}

func TestPlayRound_ScoreSourceError(t *testing.T) {
	teams := league.NewTeams(3)
	s := New(NewSource(3), nil, nil, Options{})

	_, err := s.PlayRound(context.Background(), 1, teams, teams[1], &fixedScore{err: errors.ErrInputClosed}, nil)
	if !errors.Is(err, errors.ErrInputClosed) {
		t.Fatalf("PlayRound() error = %v, want ErrInputClosed", err)
	}
	if teams[1].Played != 0 {
		t.Error("user team should be untouched when no score was read")
	}
}

func TestPlayRound_RepromptsRejectedUserScore(t *testing.T) {
	teams := league.NewTeams(3)
	user := teams[2]

	bus := event.NewBus()
	var rejected []event.InputRejectedEvent
	bus.Subscribe(event.TypeInputRejected, func(e event.Event) {
		rejected = append(rejected, e.(event.InputRejectedEvent))
	})

	s := New(NewSource(3), bus, nil, Options{})
	scores := &queuedScores{scores: [][2]int{{-1, 0}, {2, 1}}}

	results, err := s.PlayRound(context.Background(), 1, teams, user, scores, nil)
	if err != nil {
		t.Fatalf("PlayRound() error = %v", err)
	}
	if scores.asked != 2 {
		t.Errorf("score asked %d times, want 2", scores.asked)
	}
	last := results[len(results)-1]
	if last.Team != user || last.GoalsFor != 2 || last.GoalsAgainst != 1 {
		t.Errorf("user result = %+v, want 2-1", last)
	}
	if user.Played != 1 || user.GoalsFor != 2 || user.GoalsAgainst != 1 {
		t.Errorf("user team = %+v, want one match 2-1", *user)
	}
	if len(rejected) != 1 || rejected[0].Input != "-1 - 0" {
		t.Errorf("rejection events = %+v, want one for -1 - 0", rejected)
	}
}

func TestPlayRound_RejectedUserScoreThenInputClosed(t *testing.T) {
	teams := league.NewTeams(3)
	s := New(NewSource(3), nil, nil, Options{})

	_, err := s.PlayRound(context.Background(), 1, teams, teams[2], &queuedScores{scores: [][2]int{{-1, 0}}}, nil)
	if !errors.Is(err, errors.ErrInputClosed) {
		t.Fatalf("PlayRound() error = %v, want ErrInputClosed", err)
	}
	if teams[2].Played != 0 {
		t.Error("negative score must not be applied")
	}
}

func TestPlayRound_RepromptsOverflowingUserScore(t *testing.T) {
	teams := league.NewTeams(3)
	user := teams[0]
	s := New(NewSource(5), nil, nil, Options{})

	scores := &queuedScores{scores: [][2]int{{math.MaxInt - 1, 0}, {math.MaxInt, 0}, {1, 0}}}
	if _, err := s.PlayRound(context.Background(), 1, teams, user, scores, nil); err != nil {
		t.Fatalf("round 1: %v", err)
	}
	if _, err := s.PlayRound(context.Background(), 2, teams, user, scores, nil); err != nil {
		t.Fatalf("round 2: %v", err)
	}

	if scores.asked != 3 {
		t.Errorf("score asked %d times, want 3", scores.asked)
	}
	if user.GoalsFor != math.MaxInt || user.Played != 2 || user.Won != 2 {
		t.Errorf("user team = %+v, want two wins totalling MaxInt goals", *user)
	}
	if err := user.Check(); err != nil {
		t.Error(err)
	}
}

func TestPlayRound_Cancelled(t *testing.T) {
	teams := league.NewTeams(3)
	s := New(NewSource(3), nil, nil, Options{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.PlayRound(ctx, 1, teams, teams[0], &cancelledScore{}, nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("PlayRound() error = %v, want context.Canceled", err)
	}
	if teams[0].Played != 0 {
		t.Error("user team should be untouched after cancellation")
	}
}

// cancelledScore reports the context's error like a prompt interrupted mid-read.
type cancelledScore struct{}

func (cancelledScore) UserScore(ctx context.Context, _ *league.Team) (int, int, error) {
	<-ctx.Done()
	return 0, 0, ctx.Err()
}

func TestPlayRound_UserNotInLeague(t *testing.T) {
	teams := league.NewTeams(3)
	s := New(NewSource(3), nil, nil, Options{})

	if _, err := s.PlayRound(context.Background(), 1, teams, &league.Team{Name: "Outsider"}, &fixedScore{}, nil); !errors.Is(err, errors.ErrUnknownTeam) {
		t.Errorf("PlayRound() with an outside team error = %v, want ErrUnknownTeam", err)
	}
	if _, err := s.PlayRound(context.Background(), 1, teams, nil, &fixedScore{}, nil); err == nil {
		t.Error("expected error for a nil user team")
	}
}
