package calculator

import (
	"fmt"

	"github.com/sporadisk/worktock/client/terminal"
)

func (c *Calculator) LoadSummaryOutput() error {
	// Currently only terminal output is supported
	return c.LoadTerminalOutput()
}

func (c *Calculator) LoadTerminalOutput() error {
	termClient := &terminal.Client{
		TimeFormat: c.Conf.TimeFormat,
		Color:      c.Conf.Color,
	}
	err := termClient.Init()
	if err != nil {
		return fmt.Errorf("terminal.Client.Init: %w", err)
	}

	c.SummaryOutput = termClient
	return nil
}
