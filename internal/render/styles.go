package render

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	PrimaryColor = lipgloss.Color("#A78BFA") // Purple
	WinnerColor  = lipgloss.Color("#10B981") // Green
	MutedColor   = lipgloss.Color("#9CA3AF") // Gray
	BorderColor  = lipgloss.Color("#6B7280") // Gray
	UserColor    = lipgloss.Color("#FBBF24") // Yellow
)

// Styles holds every style used by a Renderer. They are built from the
// renderer bound to the output so that a pipe gets plain text.
type Styles struct {
	Banner lipgloss.Style
	Header lipgloss.Style
	Cell   lipgloss.Style
	User   lipgloss.Style
	Border lipgloss.Style
	Winner lipgloss.Style
	Muted  lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) Styles {
	cell := r.NewStyle().Padding(0, 1)
	return Styles{
		Banner: r.NewStyle().Bold(true).Foreground(PrimaryColor),
		Header: cell.Bold(true),
		Cell:   cell,
		User:   cell.Foreground(UserColor).Bold(true),
		Border: r.NewStyle().Foreground(BorderColor),
		Winner: r.NewStyle().Bold(true).Foreground(WinnerColor),
		Muted:  r.NewStyle().Foreground(MutedColor),
	}
}

func newLipglossRenderer(w io.Writer, color bool) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}
