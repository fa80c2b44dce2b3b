package logentry

import (
	"context"

	"cloud.google.com/go/civil"
	"github.com/sporadisk/worktock/stime"
)

const (
	ActionClockIn  = "in"
	ActionClockOut = "out"
)

// DefaultJob is the job in force before the log names one.
const DefaultJob = "General"

// InData is a clock-in with the context that was in force when it was read.
type InData struct {
	Time       stime.STime
	Date       civil.Date
	Job        string
	Tags       []string
	LineNumber int
}

// HasTag reports whether tag is one of the entry's tags.
func (d *InData) HasTag(tag string) bool {
	for _, t := range d.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Entry is a resolved clock-in or clock-out.
type Entry struct {
	Action     string // ActionClockIn or ActionClockOut
	In         *InData
	Time       stime.STime // clock-out time
	Date       civil.Date  // date in force at a clock-out, zero if none
	LineNumber int
}

// NewIn returns a clock-in entry.
func NewIn(data InData) Entry {
	return Entry{
		Action:     ActionClockIn,
		In:         &data,
		Time:       data.Time,
		Date:       data.Date,
		LineNumber: data.LineNumber,
	}
}

// NewOut returns a clock-out entry.
func NewOut(t stime.STime, date civil.Date, line int) Entry {
	return Entry{
		Action:     ActionClockOut,
		Time:       t,
		Date:       date,
		LineNumber: line,
	}
}

func (e Entry) IsIn() bool {
	return e.Action == ActionClockIn
}

// Log is the folded content of a log file.
type Log struct {
	Entries []Entry
	Groups  map[string][]string
}

type Receiver interface {
	Receive(text string) error
}

type Subscriber interface {
	Subscribe(ctx context.Context, receiver Receiver) error
}
