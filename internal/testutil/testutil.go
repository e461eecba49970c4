// Package testutil provides testing utilities for league tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Iron-Ham/league/internal/league"
)

// Script joins answers into the text a user would type, one line each.
func Script(lines ...string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// MustApply records a result on team and fails the test on error.
func MustApply(t *testing.T, team *league.Team, goalsFor, goalsAgainst int) {
	t.Helper()

	if _, err := team.ApplyResult(goalsFor, goalsAgainst); err != nil {
		t.Fatalf("ApplyResult(%d, %d) on %s: %v", goalsFor, goalsAgainst, team.Name, err)
	}
}

// LeagueWithResults creates len(results) teams and applies results[i] to
// team i. Each entry is a {goalsFor, goalsAgainst} pair.
func LeagueWithResults(t *testing.T, results ...[2]int) []*league.Team {
	t.Helper()

	teams := league.NewTeams(len(results))
	for i, r := range results {
		MustApply(t, teams[i], r[0], r[1])
	}
	return teams
}

// TableLines returns the lines of rendered output that belong to a
// markdown-bordered table.
func TableLines(out string) []string {
	var lines []string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "|") {
			lines = append(lines, line)
		}
	}
	return lines
}

// TableCells splits a markdown table line into trimmed cell values.
func TableCells(line string) []string {
	line = strings.TrimSpace(line)
	line = strings.TrimPrefix(line, "|")
	line = strings.TrimSuffix(line, "|")

	parts := strings.Split(line, "|")
	cells := make([]string, len(parts))
	for i, p := range parts {
		cells[i] = strings.TrimSpace(p)
	}
	return cells
}

// WriteConfig writes a config.yaml with content under dir/league and points
// XDG_CONFIG_HOME at dir. Returns the file path.
func WriteConfig(t *testing.T, dir, content string) string {
	t.Helper()

	t.Setenv("XDG_CONFIG_HOME", dir)
	path := filepath.Join(dir, "league", "config.yaml")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}
