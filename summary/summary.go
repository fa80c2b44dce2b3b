package summary

import (
	"errors"

	"cloud.google.com/go/civil"
	"github.com/sporadisk/worktock/stime"
)

// ErrInvalid is returned by outputs given a summary that is not Valid.
var ErrInvalid = errors.New("invalid input")

type Summary struct {
	Valid         bool
	ValidationMsg string
	TimeWorked    stime.STime
	Days          []Day
	Jobs          []ResultCategory
	Tags          []ResultCategory
	Open          *OpenSession
	Warnings      []string
}

// Day holds the sessions that started on Date.
type Day struct {
	Date       civil.Date
	TimeWorked stime.STime
	Sessions   []Session
}

type Session struct {
	Job   string
	Tags  []string
	Start stime.STime
	End   stime.STime // on the clock of the day the session started
	Line  int
}

func (s Session) Duration() stime.STime {
	return s.End.Sub(s.Start)
}

// OpenSession is a clock-in with no clock-out yet. Elapsed runs up to the
// time the summary was made and is not part of any total.
type OpenSession struct {
	Job     string
	Tags    []string
	Date    civil.Date
	Start   stime.STime
	Elapsed stime.STime
	Line    int
}

type ResultCategory struct {
	Name       string
	TimeWorked stime.STime
}

func (rc *ResultCategory) MatchName(name string) bool {
	return rc.Name == name
}

// AddSession counts s towards the total, its day, its job and its tags.
func (sum *Summary) AddSession(date civil.Date, s Session, keepSession bool) {
	dur := s.Duration()
	sum.TimeWorked += dur

	day := sum.day(date)
	day.TimeWorked += dur
	if keepSession {
		day.Sessions = append(day.Sessions, s)
	}

	sum.Jobs = addCategory(sum.Jobs, s.Job, dur)
	// a tag named twice on one session is credited once
	seen := make(map[string]bool, len(s.Tags))
	for _, tag := range s.Tags {
		if seen[tag] {
			continue
		}
		seen[tag] = true
		sum.Tags = addCategory(sum.Tags, tag, dur)
	}
}

func (sum *Summary) day(date civil.Date) *Day {
	for i := range sum.Days {
		if sum.Days[i].Date == date {
			return &sum.Days[i]
		}
	}

	sum.Days = append(sum.Days, Day{Date: date})
	return &sum.Days[len(sum.Days)-1]
}

func addCategory(cats []ResultCategory, name string, dur stime.STime) []ResultCategory {
	for i, c := range cats {
		if c.MatchName(name) {
			cats[i].TimeWorked += dur
			return cats
		}
	}

	return append(cats, ResultCategory{
		Name:       name,
		TimeWorked: dur,
	})
}

type Output interface {
	OutputSummary(summary Summary) error
}
