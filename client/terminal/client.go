package terminal

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/sporadisk/worktock/config"
	"github.com/sporadisk/worktock/format"
	"github.com/sporadisk/worktock/parameter"
	"golang.org/x/term"
)

type Client struct {
	TimeFormat string
	Color      string // config.ColorAuto, ColorAlways or ColorNever
	Out        io.Writer

	styles styles
}

func (c *Client) Init() error {
	if c.TimeFormat == "" {
		c.TimeFormat = format.TimeHM
	}

	err := format.ValidateTimeFormat(c.TimeFormat)
	if err != nil {
		return fmt.Errorf("ValidateTimeFormat: %w", err)
	}

	if c.Color == "" {
		c.Color = config.ColorAuto
	}
	c.Color, err = parameter.Validate(c.Color, []string{config.ColorAuto, config.ColorAlways, config.ColorNever})
	if err != nil {
		return fmt.Errorf("color: %w", err)
	}

	if c.Out == nil {
		c.Out = os.Stdout
	}

	renderer := lipgloss.NewRenderer(c.Out)
	switch {
	case c.Color == config.ColorAlways:
		renderer.SetColorProfile(termenv.ANSI256)
	case c.Color == config.ColorNever || !isTerminal(c.Out):
		renderer.SetColorProfile(termenv.Ascii)
	}
	c.styles = newStyles(renderer)
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
