package console

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// keyModel quits on the first key press and remembers which key it was.
type keyModel struct {
	key string
}

func (m keyModel) Init() tea.Cmd { return nil }

func (m keyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		m.key = k.String()
		return m, tea.Quit
	}
	return m, nil
}

func (m keyModel) View() string { return "" }

// waitForKey runs a renderer-less program that reads in (raw mode on a
// terminal) until one key arrives.
func waitForKey(ctx context.Context, in io.Reader, out io.Writer) (string, error) {
	p := tea.NewProgram(keyModel{},
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithoutRenderer(),
		tea.WithoutSignalHandler(),
	)

	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("waiting for key: %w", err)
	}
	m, ok := final.(keyModel)
	if !ok {
		return "", nil
	}
	return m.key, nil
}
