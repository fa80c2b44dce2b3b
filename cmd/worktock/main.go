package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/sporadisk/worktock/config"
	"github.com/sporadisk/worktock/logging"
	"github.com/sporadisk/worktock/summary"
	"github.com/spf13/cobra"
)

var version = "dev"

// globalOptions are the flags shared by every command.
type globalOptions struct {
	configPath string
	filePath   string
	logLevel   string
}

// app is what a command needs once flags and config are resolved.
type app struct {
	conf    *config.Config
	logFile string
}

func main() {
	g := &globalOptions{}
	report := &reportOptions{}

	rootCmd := &cobra.Command{
		Use:   "worktock",
		Short: "Keep a hand-written work log and report on it",
		Long: `worktock reads a plain text work log of dates, jobs, tags and clock times
and reports the time worked. Without a subcommand it prints a report.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(g, report)
		},
	}

	rootCmd.PersistentFlags().StringVar(&g.configPath, "config", "", "Config file (default is $HOME/.config/worktock/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&g.filePath, "file", "f", "", "Log file (overrides the config)")
	rootCmd.PersistentFlags().StringVarP(&g.logLevel, "loglevel", "l", "", "Set log level. Available: debug, info, warn, error, fatal")
	report.addFlags(rootCmd)

	rootCmd.AddCommand(reportCmd(g))
	rootCmd.AddCommand(inCmd(g))
	rootCmd.AddCommand(outCmd(g))
	rootCmd.AddCommand(watchCmd(g))
	rootCmd.AddCommand(checkCmd(g))

	if err := rootCmd.Execute(); err != nil {
		// an invalid log has already been printed with the report
		if !errors.Is(err, summary.ErrInvalid) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func (g *globalOptions) load() (*app, error) {
	conf, err := config.Load(g.configPath)
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	level := conf.LogLevel
	if g.logLevel != "" {
		level = g.logLevel
	}
	err = logging.SetLogLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging.SetLogLevel: %w", err)
	}

	if g.filePath != "" {
		conf.File = g.filePath
	}
	logFile, err := conf.LogFile()
	if err != nil {
		return nil, fmt.Errorf("conf.LogFile: %w", err)
	}
	logging.Log.Debugf("using log file %s", logFile)

	return &app{conf: conf, logFile: logFile}, nil
}
