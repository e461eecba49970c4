// Package logging provides structured logging for league runs.
//
// This package wraps Go's log/slog to provide JSON-formatted logs with
// persistent attributes. The console is reserved for the game transcript, so
// logs go to a file (or stderr) and are disabled unless configured.
//
// # Basic Usage
//
//	logger, err := logging.NewLogger("/path/to/league.log", "DEBUG")
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	logger.Info("tournament started", "teams", 15)
//
// # Persistent Attributes
//
//	roundLogger := logger.WithRound(2).WithTeam("Team 5")
//	roundLogger.Debug("result applied", "outcome", "win")
//
// Output:
//
//	{"time":"...","level":"DEBUG","msg":"result applied","round":2,"team":"Team 5","outcome":"win"}
//
// # Testing
//
// Use [NopLogger] to discard all log output.
//
// # Configuration
//
//	logging:
//	  enabled: true
//	  level: debug
//	  file: ~/.config/league/league.log
package logging
