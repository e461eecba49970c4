// Package event provides a pub-sub event bus that lets the simulator and the
// tournament flow report what happened without knowing who is listening.
//
// # Main Types
//
//   - [Event]: Interface that all events must implement
//   - [Bus]: Synchronous pub-sub dispatcher
//   - [Handler]: Function type for event handlers (func(Event))
//
// # Event Categories
//
//   - [TournamentStartedEvent]: the user's team is chosen
//   - [MatchPlayedEvent]: a result was applied to a team
//   - [RoundCompletedEvent]: all results for a round are in
//   - [TournamentWonEvent]: the final standings produced a winner
//   - [InputRejectedEvent]: a prompt answer was refused and the prompt repeats
//
// # Ordering
//
// Publish calls handlers synchronously on the caller's goroutine. Events are
// therefore observed in exactly the order the tournament produces them.
package event
