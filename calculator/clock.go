package calculator

import (
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"github.com/sporadisk/worktock/client/logfile"
	"github.com/sporadisk/worktock/interval"
	"github.com/sporadisk/worktock/logentry"
	"github.com/sporadisk/worktock/reducer"
	"github.com/sporadisk/worktock/stime"
)

var ErrNotClockedIn = errors.New("not clocked in")

// Punch is what to append to a log to clock in or out.
type Punch struct {
	Records []string
	// Closes is the open session the punch ends, if any.
	Closes *logentry.InData
}

// ClosesEarlierDay reports whether the punch ends a session that was opened
// before the day of now.
func (p Punch) ClosesEarlierDay(now time.Time) bool {
	return p.Closes != nil && p.Closes.Date.Before(civil.DateOf(now))
}

// ClockIn returns the records that clock in at now. job is only written when
// it differs from the job in force; an empty job keeps it. A session that is
// still open is closed by the new clock-in.
func ClockIn(text string, now time.Time, job string) (Punch, error) {
	state, open, err := current(text)
	if err != nil {
		return Punch{}, err
	}

	today, t := civil.DateOf(now), stime.Of(now)
	p := Punch{}

	if open != nil {
		_, err := interval.Close(*open, t, today)
		if err != nil {
			return Punch{}, fmt.Errorf("clock-in at %s closes the session from line %d: %w", t, open.LineNumber, err)
		}
		p.Closes = open
	}

	if state.Date != today {
		p.Records = append(p.Records, logfile.DateRecord(today))
	}
	if job != "" && job != state.Job {
		p.Records = append(p.Records, logfile.NameRecord(job))
	}
	p.Records = append(p.Records, logfile.ClockInRecord(t))
	return p, nil
}

// ClockOut returns the records that close the open session at now.
func ClockOut(text string, now time.Time) (Punch, error) {
	state, open, err := current(text)
	if err != nil {
		return Punch{}, err
	}
	if open == nil {
		return Punch{}, ErrNotClockedIn
	}

	today, t := civil.DateOf(now), stime.Of(now)
	_, err = interval.Close(*open, t, today)
	if err != nil {
		return Punch{}, fmt.Errorf("clock-out at %s for the session from line %d: %w", t, open.LineNumber, err)
	}

	p := Punch{Closes: open}
	if state.Date != today {
		p.Records = append(p.Records, logfile.DateRecord(today))
	}
	p.Records = append(p.Records, logfile.ClockOutRecord(t))
	return p, nil
}

// current folds the log and returns the context in force at its end along
// with the session still open, if any.
func current(text string) (*reducer.State, *logentry.InData, error) {
	lp := logfile.LogParser{}
	err := lp.Init()
	if err != nil {
		return nil, nil, fmt.Errorf("lp.Init: %w", err)
	}

	actions, err := lp.Parse(text)
	if err != nil {
		return nil, nil, err
	}

	state := reducer.NewState()
	for _, pa := range actions {
		state.Apply(pa)
	}

	log, err := state.Result()
	if err != nil {
		return nil, nil, err
	}

	res := interval.Reconstruct(log.Entries)
	return state, res.Open, nil
}
