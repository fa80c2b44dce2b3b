package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/sporadisk/worktock/client/logfile"
	"github.com/spf13/cobra"
)

func watchCmd(g *globalOptions) *cobra.Command {
	opts := &reportOptions{}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print a fresh report every time the log changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := g.load()
			if err != nil {
				return err
			}

			calc, err := a.calculator(opts)
			if err != nil {
				return err
			}

			calc.Subscriber, err = logfile.NewSubscriber(a.logFile)
			if err != nil {
				return fmt.Errorf("logfile.NewSubscriber: %w", err)
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			return calc.Start(ctx)
		},
	}

	opts.addFlags(cmd)
	return cmd
}
