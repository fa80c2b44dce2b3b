package terminal

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary   = lipgloss.Color("12")  // bright blue
	colorSecondary = lipgloss.Color("10")  // bright green
	colorDim       = lipgloss.Color("240") // gray
	colorWarning   = lipgloss.Color("11")  // bright yellow
	colorError     = lipgloss.Color("9")   // bright red
)

type styles struct {
	title    lipgloss.Style
	heading  lipgloss.Style
	duration lipgloss.Style
	dim      lipgloss.Style
	open     lipgloss.Style
	warning  lipgloss.Style
	error    lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title: r.NewStyle().
			Foreground(colorPrimary).
			Bold(true),
		heading: r.NewStyle().
			Bold(true),
		duration: r.NewStyle().
			Foreground(colorSecondary),
		dim: r.NewStyle().
			Foreground(colorDim),
		open: r.NewStyle().
			Foreground(colorPrimary),
		warning: r.NewStyle().
			Foreground(colorWarning),
		error: r.NewStyle().
			Foreground(colorError).
			Bold(true),
	}
}
