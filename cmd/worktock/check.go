package main

import (
	"fmt"

	"github.com/sporadisk/worktock/calculator"
	"github.com/sporadisk/worktock/client/logfile"
	"github.com/spf13/cobra"
)

func checkCmd(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Parse the log and list every problem in it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := g.load()
			if err != nil {
				return err
			}

			text, err := logfile.ReadLog(a.logFile)
			if err != nil {
				return fmt.Errorf("logfile.ReadLog: %w", err)
			}

			err = calculator.Check(text)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "No problems found in", a.logFile)
			return nil
		},
	}
}
