package console

import (
	"testing"

	"github.com/Iron-Ham/league/internal/errors"
)

func TestParseTeamChoice(t *testing.T) {
	tests := []struct {
		line    string
		want    int
		wantErr error
	}{
		{"5\n", 5, nil},
		{"  1  ", 1, nil},
		{"15", 15, nil},
		{"+3", 3, nil},
		{"abc", 0, errors.ErrNotANumber},
		{"", 0, errors.ErrNotANumber},
		{"2.5", 0, errors.ErrNotANumber},
		{"0", 0, errors.ErrOutOfRange},
		{"16", 0, errors.ErrOutOfRange},
		{"-1", 0, errors.ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := ParseTeamChoice(tt.line, 15)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseTeamChoice(%q) error = %v, want %v", tt.line, err, tt.wantErr)
				}
				if !errors.IsInputError(err) {
					t.Errorf("ParseTeamChoice(%q) error is not an InputError", tt.line)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTeamChoice(%q) error = %v", tt.line, err)
			}
			if got != tt.want {
				t.Errorf("ParseTeamChoice(%q) = %d, want %d", tt.line, got, tt.want)
			}
		})
	}
}

func TestParseGoals(t *testing.T) {
	tests := []struct {
		line    string
		want    int
		wantErr error
	}{
		{"0", 0, nil},
		{"3\r\n", 3, nil},
		{"42", 42, nil},
		{"-1", 0, errors.ErrNegative},
		{"three", 0, errors.ErrNotANumber},
		{" ", 0, errors.ErrNotANumber},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := ParseGoals(tt.line)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseGoals(%q) error = %v, want %v", tt.line, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseGoals(%q) error = %v", tt.line, err)
			}
			if got != tt.want {
				t.Errorf("ParseGoals(%q) = %d, want %d", tt.line, got, tt.want)
			}
		})
	}
}
