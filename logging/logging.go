// Package logging holds the process-wide logger.
package logging

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/sporadisk/worktock/parameter"
)

var Log = logrus.New()

// Levels accepted by SetLogLevel. Trace and panic are not used.
var Levels = []string{"debug", "info", "warn", "error", "fatal"}

func SetLogLevel(level string) error {
	lvl, err := parameter.Validate(level, Levels)
	if err != nil {
		return fmt.Errorf("parameter.Validate: %w", err)
	}

	switch lvl {
	case "debug":
		Log.SetLevel(logrus.DebugLevel)
	case "info":
		Log.SetLevel(logrus.InfoLevel)
	case "warn":
		Log.SetLevel(logrus.WarnLevel)
	case "error":
		Log.SetLevel(logrus.ErrorLevel)
	case "fatal":
		Log.SetLevel(logrus.FatalLevel)
	}
	return nil
}
