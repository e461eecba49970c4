package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/Iron-Ham/league/internal/errors"
	"github.com/Iron-Ham/league/internal/event"
	"github.com/Iron-Ham/league/internal/league"
	"github.com/Iron-Ham/league/internal/logging"
)

const teamChoicePrompt = "Enter the number of your chosen team: "

// Prompter asks the user for their team and their scores.
type Prompter struct {
	raw         io.Reader
	in          *bufio.Reader
	out         io.Writer
	logger      *logging.Logger
	bus         *event.Bus
	interactive bool

	// pending holds the result of a read that outlived a cancelled prompt.
	pending chan readResult
}

type readResult struct {
	text string
	err  error
}

// Option configures a Prompter.
type Option func(*Prompter)

// WithLogger logs rejected answers at DEBUG.
func WithLogger(l *logging.Logger) Option {
	return func(p *Prompter) { p.logger = l }
}

// WithBus publishes an InputRejectedEvent for every rejected answer.
func WithBus(b *event.Bus) Option {
	return func(p *Prompter) { p.bus = b }
}

// WithInteractive overrides terminal detection for the key wait.
func WithInteractive(interactive bool) Option {
	return func(p *Prompter) { p.interactive = interactive }
}

// NewPrompter reads answers from in and writes prompts to out.
func NewPrompter(in io.Reader, out io.Writer, opts ...Option) *Prompter {
	p := &Prompter{
		raw:         in,
		in:          bufio.NewReader(in),
		out:         out,
		logger:      logging.NopLogger(),
		interactive: isTerminal(in),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// ChooseTeam lists the league and asks until a valid team number is given
// or ctx is cancelled.
func (p *Prompter) ChooseTeam(ctx context.Context, teams []*league.Team) (*league.Team, error) {
	if len(teams) == 0 {
		return nil, errors.ErrEmptyLeague
	}

	fmt.Fprintln(p.out, "Choose your team:")
	for i, t := range teams {
		fmt.Fprintf(p.out, "%d. %s\n", i+1, t.Name)
	}

	choice, err := p.ask(ctx, teamChoicePrompt, func(line string) (int, error) {
		return ParseTeamChoice(line, len(teams))
	})
	if err != nil {
		return nil, err
	}
	return league.SelectTeam(teams, choice)
}

// Goals asks prompt until a non-negative integer is given.
func (p *Prompter) Goals(ctx context.Context, prompt string) (int, error) {
	return p.ask(ctx, prompt, ParseGoals)
}

// UserScore asks for the goals scored by and against team.
func (p *Prompter) UserScore(ctx context.Context, team *league.Team) (int, int, error) {
	gf, err := p.Goals(ctx, fmt.Sprintf("Enter the goals scored by %s: ", team.Name))
	if err != nil {
		return 0, 0, err
	}
	ga, err := p.Goals(ctx, fmt.Sprintf("Enter the goals scored against %s: ", team.Name))
	if err != nil {
		return 0, 0, err
	}
	return gf, ga, nil
}

// WaitForKey blocks until a single key is pressed. On a terminal any key
// counts; on piped input one byte is consumed, and a closed stream returns
// immediately since the run is over either way.
func (p *Prompter) WaitForKey(ctx context.Context) error {
	if p.interactive {
		key, err := waitForKey(ctx, p.raw, p.out)
		if err != nil {
			return err
		}
		p.logger.Debug("exit key pressed", "key", key)
		return nil
	}

	_, err := p.read(ctx, func() (string, error) {
		b, err := p.in.ReadByte()
		return string(b), err
	})
	if err != nil && !errors.Is(err, io.EOF) {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("waiting for key: %w", err)
	}
	return nil
}

// ask repeats prompt until parse accepts a line. Rejected lines are logged
// and published, never shown.
func (p *Prompter) ask(ctx context.Context, prompt string, parse func(string) (int, error)) (int, error) {
	for {
		fmt.Fprint(p.out, prompt)

		line, err := p.readLine(ctx)
		if err != nil {
			return 0, err
		}

		v, err := parse(line)
		if err == nil {
			return v, nil
		}

		p.logger.Debug("input rejected", "prompt", prompt, "error", err.Error())
		var inputErr *errors.InputError
		if errors.As(err, &inputErr) {
			p.bus.Publish(event.NewInputRejectedEvent(prompt, inputErr.Input, errors.Unwrap(inputErr).Error()))
		}
	}
}

func (p *Prompter) readLine(ctx context.Context) (string, error) {
	line, err := p.read(ctx, func() (string, error) {
		return p.in.ReadString('\n')
	})
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		if errors.Is(err, io.EOF) {
			if line != "" {
				return line, nil
			}
			return "", errors.ErrInputClosed
		}
		return "", fmt.Errorf("reading input: %w", err)
	}
	return line, nil
}

// read runs fn on its own goroutine so that a blocked read does not hold up
// cancellation.
// A read left behind by a cancelled prompt is collected by the next call
// instead of starting a second reader on the same stream.
func (p *Prompter) read(ctx context.Context, fn func() (string, error)) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if p.pending == nil {
		ch := make(chan readResult, 1)
		go func() {
			text, err := fn()
			ch <- readResult{text: text, err: err}
		}()
		p.pending = ch
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-p.pending:
		p.pending = nil
		return r.text, r.err
	}
}
