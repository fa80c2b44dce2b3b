// Package worktock reads a hand-written work log and turns it into clocked
// sessions.
//
// A log is a list of records separated by commas or newlines:
//
//	=year:2024         # or year=2024
//	$clients[acme, "Big Co"]
//	3/6                # date, year carried forward
//	acme,_meeting      # job and tag
//	9:00               # clock in
//	-12:00             # clock out
//	12:30-17:45        # clock in and out in one record
//
// Jobs, dates and tags stay in force until changed, and every clock-in keeps
// a copy of them.
package worktock

import (
	"fmt"

	"github.com/sporadisk/worktock/client/logfile"
	"github.com/sporadisk/worktock/interval"
	"github.com/sporadisk/worktock/logentry"
	"github.com/sporadisk/worktock/reducer"
)

// ParseLog reads text into entries and group definitions. On failure the
// error is either a *logerr.ParseError (the text does not follow the
// grammar) or a logerr.LineErrors with every record that could not be
// applied.
func ParseLog(text string) (*logentry.Log, error) {
	lp := logfile.LogParser{}
	err := lp.Init()
	if err != nil {
		return nil, fmt.Errorf("lp.Init: %w", err)
	}

	actions, err := lp.Parse(text)
	if err != nil {
		return nil, err
	}

	return reducer.Fold(actions)
}

// ReconstructIntervals pairs entries into sessions.
func ReconstructIntervals(entries []logentry.Entry) interval.Result {
	return interval.Reconstruct(entries)
}
