// Package interval pairs clock entries into worked sessions.
package interval

import (
	"cloud.google.com/go/civil"
	"github.com/sporadisk/worktock/logentry"
	"github.com/sporadisk/worktock/logerr"
	"github.com/sporadisk/worktock/stime"
)

// Interval is one worked session. Out is on the clock of In.Date, so a
// session ending after midnight has Out beyond 24:00.
type Interval struct {
	In  logentry.InData
	Out stime.STime
}

func (iv Interval) Duration() stime.STime {
	return iv.Out.Sub(iv.In.Time)
}

// EndDate is the date the session ended on.
func (iv Interval) EndDate() civil.Date {
	return iv.In.Date.AddDays(iv.Out.Minutes() / (24 * 60))
}

// Result of a reconstruction. Open is the session still running at the end
// of the log, if any.
type Result struct {
	Intervals []Interval
	Open      *logentry.InData
	Anomalies logerr.LineErrors
}

// Reconstruct walks the entries once. A clock-in closes any session that is
// still open at its own time; a clock-out closes the open session. Negative
// pairings and clock-outs with nothing open are recorded as anomalies and
// processing continues.
func Reconstruct(entries []logentry.Entry) Result {
	res := Result{Intervals: []Interval{}}
	var current *logentry.InData

	for _, e := range entries {
		if e.IsIn() {
			if current != nil {
				res.close(*current, e.Time, e.Date)
			}
			data := *e.In
			current = &data
			continue
		}

		if current == nil {
			res.Anomalies.Add(e.LineNumber, logerr.ErrUnmatchedOut)
			continue
		}
		res.close(*current, e.Time, e.Date)
		current = nil
	}

	res.Open = current
	return res
}

func (r *Result) close(in logentry.InData, t stime.STime, date civil.Date) {
	out, err := Close(in, t, date)
	if err != nil {
		r.Anomalies.Add(in.LineNumber, err)
		return
	}
	r.Intervals = append(r.Intervals, Interval{In: in, Out: out})
}

// Close returns the closing time of in on its own day's clock when the
// session ends at t on date. A zero date is taken as the same day.
func Close(in logentry.InData, t stime.STime, date civil.Date) (stime.STime, error) {
	if date.IsZero() {
		date = in.Date
	}

	out := in.Time.Add(t.Since(date, in.Time, in.Date))
	if out.Less(in.Time) {
		return 0, logerr.ErrNegativeTime
	}
	return out, nil
}
