// Package reducer folds positioned actions into clock entries, carrying the
// job, date, tags and year forward from one record to the next.
package reducer

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"github.com/sporadisk/worktock/logentry"
	"github.com/sporadisk/worktock/logerr"
	"github.com/sporadisk/worktock/stime"
)

const keyYear = "year"

// State is the context carried between records.
type State struct {
	Job    string
	Date   civil.Date // zero until the first date record
	Tags   []string
	Year   *int
	Groups map[string][]string

	entries []logentry.Entry
	errs    logerr.LineErrors
}

func NewState() *State {
	return &State{
		Job:    logentry.DefaultJob,
		Tags:   []string{},
		Groups: map[string][]string{},
	}
}

// Fold applies every action in order. Problems are collected per line and
// folding continues past them; if any were found the result is a
// logerr.LineErrors holding all of them.
func Fold(actions []logentry.PositionedAction) (*logentry.Log, error) {
	s := NewState()
	for _, pa := range actions {
		s.Apply(pa)
	}
	return s.Result()
}

// Apply consumes one action.
func (s *State) Apply(pa logentry.PositionedAction) {
	switch a := pa.Action.(type) {
	case logentry.SetJob:
		s.Job = a.Name

	case logentry.SetDate:
		s.setDate(a, pa.Line)

	case logentry.AddTag:
		s.Tags = append(s.Tags, a.Name)

	case logentry.ClearTags:
		if a.Replacement != nil {
			s.Tags = []string{*a.Replacement}
		} else {
			s.Tags = []string{}
		}

	case logentry.SetNum:
		if a.Key == keyYear {
			year := a.Value
			s.Year = &year
		}

	case logentry.DefGroup:
		members := make([]string, len(a.Members))
		copy(members, a.Members)
		s.Groups[a.Name] = members

	case logentry.In:
		s.clockIn(a.Time, pa.Line)

	case logentry.Out:
		s.entries = append(s.entries, logentry.NewOut(a.Time, s.Date, pa.Line))

	case logentry.InOut:
		if s.clockIn(a.In, pa.Line) {
			s.entries = append(s.entries, logentry.NewOut(a.Out, s.Date, pa.Line))
		}

	default:
		s.errs.Add(pa.Line, fmt.Errorf("unknown action %T", pa.Action))
	}
}

func (s *State) setDate(a logentry.SetDate, line int) {
	year := s.Year
	if a.Year != nil {
		year = a.Year
	}
	if year == nil {
		s.errs.Add(line, logerr.NotSet("date"))
		return
	}

	d := civil.Date{Year: *year, Month: time.Month(a.Month), Day: a.Day}
	if !d.IsValid() {
		s.errs.Add(line, logerr.Message(fmt.Sprintf("invalid date %02d/%02d/%d", a.Day, a.Month, *year)))
		return
	}
	s.Date = d
}

// clockIn emits an In entry with a snapshot of the current context. A
// clock-in before any date is known is an error and emits nothing.
func (s *State) clockIn(t stime.STime, line int) bool {
	if s.Date.IsZero() {
		s.errs.Add(line, logerr.NotSet("date"))
		return false
	}

	tags := make([]string, len(s.Tags))
	copy(tags, s.Tags)

	s.entries = append(s.entries, logentry.NewIn(logentry.InData{
		Time:       t,
		Date:       s.Date,
		Job:        s.Job,
		Tags:       tags,
		LineNumber: line,
	}))
	return true
}

// Result returns the folded log, or the collected line errors.
func (s *State) Result() (*logentry.Log, error) {
	if err := s.errs.Err(); err != nil {
		return nil, err
	}

	entries := s.entries
	if entries == nil {
		entries = []logentry.Entry{}
	}
	return &logentry.Log{
		Entries: entries,
		Groups:  s.Groups,
	}, nil
}
