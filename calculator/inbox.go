package calculator

import (
	"errors"
	"fmt"

	"github.com/sporadisk/worktock"
	"github.com/sporadisk/worktock/interval"
	"github.com/sporadisk/worktock/logging"
	"github.com/sporadisk/worktock/summary"
)

// Receive reports on a fresh copy of the log. An invalid log has already
// been shown by the output, so it is not an error here.
func (c *Calculator) Receive(text string) error {
	err := c.Process(text)
	if errors.Is(err, summary.ErrInvalid) {
		return nil
	}
	return err
}

// Process summarizes text and hands the result to the output.
func (c *Calculator) Process(text string) error {
	err := c.SummaryOutput.OutputSummary(c.Summarize(text))
	if err != nil {
		return fmt.Errorf("SummaryOutput.OutputSummary: %w", err)
	}
	return nil
}

// Summarize parses text and reports on the sessions matching c.Filters.
func (c *Calculator) Summarize(text string) summary.Summary {
	log, err := worktock.ParseLog(text)
	if err != nil {
		return summary.Summary{
			Valid:         false,
			ValidationMsg: err.Error(),
		}
	}
	logging.Log.Debugf("parsed %d entries and %d groups", len(log.Entries), len(log.Groups))

	filter, err := c.Filters.Build(MergeGroups(c.Conf.Groups, log.Groups))
	if err != nil {
		return summary.Summary{
			Valid:         false,
			ValidationMsg: err.Error(),
		}
	}

	ls := &LogSummary{
		Log:    log,
		Filter: filter,
		Now:    c.Now(),
		Long:   c.Long,
	}
	return ls.Sum()
}

// Check parses and pairs the log without reporting on it. The error holds
// every problem found.
func Check(text string) error {
	log, err := worktock.ParseLog(text)
	if err != nil {
		return err
	}

	res := interval.Reconstruct(log.Entries)
	for _, a := range res.Anomalies {
		logging.Log.Debugf("anomaly: %s", a)
	}
	return res.Anomalies.Err()
}
