package main

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"github.com/sporadisk/worktock/calculator"
	"github.com/sporadisk/worktock/client/logfile"
	"github.com/sporadisk/worktock/format"
	"github.com/spf13/cobra"
)

type reportOptions struct {
	since, until string
	day, week    string
	month        string
	today        bool
	job          string
	jobStart     string
	tag          string
	group        string
	long         bool
}

func (o *reportOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.since, "since", "", "Only sessions on or after this date (d/m/yyyy or yyyy-mm-dd)")
	cmd.Flags().StringVar(&o.until, "until", "", "Only sessions on or before this date")
	cmd.Flags().StringVar(&o.day, "day", "", "Only sessions on this date")
	cmd.Flags().BoolVar(&o.today, "today", false, "Only sessions today")
	cmd.Flags().StringVar(&o.week, "week", "", "Only sessions in the ISO week containing this date")
	cmd.Flags().StringVar(&o.month, "month", "", "Only sessions in this month (m/yyyy or yyyy-mm)")
	cmd.Flags().StringVar(&o.job, "job", "", "Only sessions for this job")
	cmd.Flags().StringVar(&o.jobStart, "jobstart", "", "Only sessions for jobs starting with this text")
	cmd.Flags().StringVar(&o.tag, "tag", "", "Only sessions with this tag")
	cmd.Flags().StringVar(&o.group, "group", "", "Only sessions for jobs in this group")
	cmd.Flags().BoolVar(&o.long, "long", false, "List every session")
}

func (o *reportOptions) filters(now time.Time) (calculator.FilterOptions, error) {
	f := calculator.FilterOptions{
		Job:       o.job,
		JobPrefix: o.jobStart,
		Tag:       o.tag,
		Group:     o.group,
	}

	dates := []struct {
		flag  string
		value string
		dest  **civil.Date
		parse func(string) (civil.Date, error)
	}{
		{"since", o.since, &f.Since, format.ParseDate},
		{"until", o.until, &f.Until, format.ParseDate},
		{"day", o.day, &f.Day, format.ParseDate},
		{"week", o.week, &f.Week, format.ParseDate},
		{"month", o.month, &f.Month, format.ParseMonth},
	}
	for _, d := range dates {
		if d.value == "" {
			continue
		}
		parsed, err := d.parse(d.value)
		if err != nil {
			return f, fmt.Errorf("--%s: %w", d.flag, err)
		}
		*d.dest = &parsed
	}

	if o.today {
		if f.Day != nil {
			return f, fmt.Errorf("--today and --day cannot be combined")
		}
		today := civil.DateOf(now)
		f.Day = &today
	}

	return f, nil
}

func reportCmd(g *globalOptions) *cobra.Command {
	opts := &reportOptions{}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the time worked, per day, job and tag",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(g, opts)
		},
	}

	opts.addFlags(cmd)
	return cmd
}

func runReport(g *globalOptions, opts *reportOptions) error {
	a, err := g.load()
	if err != nil {
		return err
	}

	calc, err := a.calculator(opts)
	if err != nil {
		return err
	}

	text, err := logfile.ReadLog(a.logFile)
	if err != nil {
		return fmt.Errorf("logfile.ReadLog: %w", err)
	}

	return calc.Process(text)
}

func (a *app) calculator(opts *reportOptions) (*calculator.Calculator, error) {
	calc := &calculator.Calculator{
		Conf: a.conf,
		Long: opts.long,
	}
	err := calc.Init()
	if err != nil {
		return nil, fmt.Errorf("calc.Init: %w", err)
	}

	calc.Filters, err = opts.filters(calc.Now())
	if err != nil {
		return nil, err
	}
	return calc, nil
}
