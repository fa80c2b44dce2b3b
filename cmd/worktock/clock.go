package main

import (
	"fmt"
	"time"

	"github.com/sporadisk/worktock/calculator"
	"github.com/sporadisk/worktock/client/logfile"
	"github.com/sporadisk/worktock/console"
	"github.com/sporadisk/worktock/format"
	"github.com/sporadisk/worktock/logging"
	"github.com/sporadisk/worktock/stime"
	"github.com/spf13/cobra"
)

func inCmd(g *globalOptions) *cobra.Command {
	var at string
	var yes bool

	cmd := &cobra.Command{
		Use:   "in [job]",
		Short: "Clock in, on the given job or the one in force",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := g.load()
			if err != nil {
				return err
			}

			now, err := punchTime(time.Now(), at)
			if err != nil {
				return err
			}

			job := a.conf.DefaultJob
			if len(args) == 1 {
				job = args[0]
			}

			text, err := logfile.ReadLog(a.logFile)
			if err != nil {
				return fmt.Errorf("logfile.ReadLog: %w", err)
			}

			p, err := calculator.ClockIn(text, now, job)
			if err != nil {
				return fmt.Errorf("calculator.ClockIn: %w", err)
			}

			if !yes && p.ClosesEarlierDay(now) && !confirmClose(cmd, p, "Close it and clock in?") {
				logging.Log.Info("clock-in cancelled")
				return nil
			}

			err = logfile.NewWriter(a.logFile).Append(p.Records...)
			if err != nil {
				return fmt.Errorf("Writer.Append: %w", err)
			}

			if p.Closes != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Closed %s, started %s\n", p.Closes.Job, format.Timestamp(p.Closes.Time))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Clocked in at %s\n", format.Timestamp(stime.Of(now)))
			return nil
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "Clock in at this time today (H:M) instead of now")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask before closing a session from an earlier day")
	return cmd
}

func outCmd(g *globalOptions) *cobra.Command {
	var at string
	var yes bool

	cmd := &cobra.Command{
		Use:   "out",
		Short: "Clock out of the open session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := g.load()
			if err != nil {
				return err
			}

			now, err := punchTime(time.Now(), at)
			if err != nil {
				return err
			}

			text, err := logfile.ReadLog(a.logFile)
			if err != nil {
				return fmt.Errorf("logfile.ReadLog: %w", err)
			}

			p, err := calculator.ClockOut(text, now)
			if err != nil {
				return fmt.Errorf("calculator.ClockOut: %w", err)
			}

			if !yes && p.ClosesEarlierDay(now) && !confirmClose(cmd, p, "Clock out anyway?") {
				logging.Log.Info("clock-out cancelled")
				return nil
			}

			err = logfile.NewWriter(a.logFile).Append(p.Records...)
			if err != nil {
				return fmt.Errorf("Writer.Append: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Clocked out of %s at %s\n", p.Closes.Job, format.Timestamp(stime.Of(now)))
			return nil
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "Clock out at this time today (H:M) instead of now")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask before closing a session from an earlier day")
	return cmd
}

// confirmClose asks before p closes a session from an earlier day.
func confirmClose(cmd *cobra.Command, p calculator.Punch, question string) bool {
	prompt := fmt.Sprintf("The open session started on %s at %s. %s",
		format.Date(p.Closes.Date), format.Timestamp(p.Closes.Time), question)
	return console.Confirm(cmd.InOrStdin(), cmd.OutOrStdout(), prompt)
}

// punchTime returns now, or today at the clock time given with --at.
func punchTime(now time.Time, at string) (time.Time, error) {
	if at == "" {
		return now, nil
	}

	t, err := format.ParseTimestamp(at)
	if err != nil {
		return time.Time{}, fmt.Errorf("--at: %w", err)
	}

	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return midnight.Add(t.Duration()), nil
}
