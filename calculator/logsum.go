package calculator

import (
	"fmt"
	"slices"
	"time"

	"cloud.google.com/go/civil"
	"github.com/sporadisk/worktock/format"
	"github.com/sporadisk/worktock/interval"
	"github.com/sporadisk/worktock/logentry"
	"github.com/sporadisk/worktock/stime"
	"github.com/sporadisk/worktock/summary"
)

// LogSummary turns a parsed log into a report.
type LogSummary struct {
	Log    *logentry.Log
	Filter Filter
	Now    time.Time
	Long   bool // keep every session in its day
}

func (ls *LogSummary) Sum() summary.Summary {
	res := interval.Reconstruct(ls.Log.Entries)
	sum := summary.Summary{Valid: true}

	for _, a := range res.Anomalies {
		sum.Warnings = append(sum.Warnings, a.Error())
	}

	for _, iv := range res.Intervals {
		if !ls.match(iv) {
			continue
		}
		sum.AddSession(iv.In.Date, summary.Session{
			Job:   iv.In.Job,
			Tags:  iv.In.Tags,
			Start: iv.In.Time,
			End:   iv.Out,
			Line:  iv.In.LineNumber,
		}, ls.Long)
	}

	if res.Open != nil {
		ls.addOpen(&sum, *res.Open)
	}

	slices.SortStableFunc(sum.Days, func(a, b summary.Day) int {
		return a.Date.Compare(b.Date)
	})
	return sum
}

// addOpen reports the session still running, closed at Now for display only.
func (ls *LogSummary) addOpen(sum *summary.Summary, open logentry.InData) {
	out, err := interval.Close(open, stime.Of(ls.Now), civil.DateOf(ls.Now))
	if err != nil {
		sum.Warnings = append(sum.Warnings, fmt.Sprintf("line %d: open session starts after %s", open.LineNumber, format.Timestamp(stime.Of(ls.Now))))
		return
	}

	if !ls.match(interval.Interval{In: open, Out: out}) {
		return
	}

	sum.Open = &summary.OpenSession{
		Job:     open.Job,
		Tags:    open.Tags,
		Date:    open.Date,
		Start:   open.Time,
		Elapsed: out.Sub(open.Time),
		Line:    open.LineNumber,
	}
}

func (ls *LogSummary) match(iv interval.Interval) bool {
	return ls.Filter == nil || ls.Filter(iv)
}
