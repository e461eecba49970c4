// Package event defines the events a tournament emits while it runs.
package event

import "time"

// Event is the interface that all events must implement.
type Event interface {
	// EventType returns a string identifier for this event type.
	// Convention: "category.action" (e.g., "match.played").
	EventType() string

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// Event type identifiers.
const (
	TypeMatchPlayed     = "match.played"
	TypeRoundCompleted  = "round.completed"
	TypeTournamentWon   = "tournament.won"
	TypeInputRejected   = "input.rejected"
	TypeTournamentStart = "tournament.started"
)

// baseEvent provides common fields for all events.
// Embed this in concrete event types to satisfy the Event interface.
type baseEvent struct {
	eventType string
	timestamp time.Time
}

func (e baseEvent) EventType() string    { return e.eventType }
func (e baseEvent) Timestamp() time.Time { return e.timestamp }

func newBaseEvent(eventType string) baseEvent {
	return baseEvent{
		eventType: eventType,
		timestamp: time.Now(),
	}
}

// TournamentStartedEvent is emitted once the user's team is bound.
type TournamentStartedEvent struct {
	baseEvent
	Teams    int
	Rounds   int
	UserTeam string
	Seed     uint64
}

// NewTournamentStartedEvent creates a TournamentStartedEvent.
func NewTournamentStartedEvent(teams, rounds int, userTeam string, seed uint64) TournamentStartedEvent {
	return TournamentStartedEvent{
		baseEvent: newBaseEvent(TypeTournamentStart),
		Teams:     teams,
		Rounds:    rounds,
		UserTeam:  userTeam,
		Seed:      seed,
	}
}

// MatchPlayedEvent is emitted after a result has been applied to a team.
type MatchPlayedEvent struct {
	baseEvent
	Round          int
	Team           string
	GoalsFor       int
	GoalsAgainst   int
	Outcome        string
	UserControlled bool
}

// NewMatchPlayedEvent creates a MatchPlayedEvent.
func NewMatchPlayedEvent(round int, team string, goalsFor, goalsAgainst int, outcome string, user bool) MatchPlayedEvent {
	return MatchPlayedEvent{
		baseEvent:      newBaseEvent(TypeMatchPlayed),
		Round:          round,
		Team:           team,
		GoalsFor:       goalsFor,
		GoalsAgainst:   goalsAgainst,
		Outcome:        outcome,
		UserControlled: user,
	}
}

// RoundCompletedEvent is emitted when every team's result for a round is in.
type RoundCompletedEvent struct {
	baseEvent
	Round   int
	Leader  string
	Matches int
}

// NewRoundCompletedEvent creates a RoundCompletedEvent.
func NewRoundCompletedEvent(round int, leader string, matches int) RoundCompletedEvent {
	return RoundCompletedEvent{
		baseEvent: newBaseEvent(TypeRoundCompleted),
		Round:     round,
		Leader:    leader,
		Matches:   matches,
	}
}

// TournamentWonEvent is emitted after the final round.
type TournamentWonEvent struct {
	baseEvent
	Winner string
	Points int
}

// NewTournamentWonEvent creates a TournamentWonEvent.
func NewTournamentWonEvent(winner string, points int) TournamentWonEvent {
	return TournamentWonEvent{
		baseEvent: newBaseEvent(TypeTournamentWon),
		Winner:    winner,
		Points:    points,
	}
}

// InputRejectedEvent is emitted when a prompt answer is refused.
type InputRejectedEvent struct {
	baseEvent
	Prompt string
	Input  string
	Reason string
}

// NewInputRejectedEvent creates an InputRejectedEvent.
func NewInputRejectedEvent(prompt, input, reason string) InputRejectedEvent {
	return InputRejectedEvent{
		baseEvent: newBaseEvent(TypeInputRejected),
		Prompt:    prompt,
		Input:     input,
		Reason:    reason,
	}
}
