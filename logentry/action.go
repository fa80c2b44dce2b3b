package logentry

import (
	"fmt"
	"strings"

	"github.com/sporadisk/worktock/stime"
)

// Action is one semantic record read from the log.
type Action interface {
	Kind() string
}

const (
	KindSetJob    = "setjob"
	KindAddTag    = "addtag"
	KindClearTags = "cleartags"
	KindSetDate   = "setdate"
	KindSetNum    = "setnum"
	KindDefGroup  = "defgroup"
	KindIn        = "in"
	KindOut       = "out"
	KindInOut     = "inout"
)

// SetJob makes Name the job for following clock-ins.
type SetJob struct {
	Name string
}

// AddTag appends Name to the tag list.
type AddTag struct {
	Name string
}

// ClearTags empties the tag list. If Replacement is set, the list becomes
// just that tag.
type ClearTags struct {
	Replacement *string
}

// SetDate sets the current date. A nil Year means the year set with
// "=year:N" (or "year=N") is used.
type SetDate struct {
	Day   int
	Month int
	Year  *int
}

// SetNum sets a named number. Only "year" has an effect.
type SetNum struct {
	Key   string
	Value int
}

// DefGroup defines (or replaces) a named group of jobs.
type DefGroup struct {
	Name    string
	Members []string
}

type In struct {
	Time stime.STime
}

type Out struct {
	Time stime.STime
}

// InOut is a clock-in and clock-out written as one record, "9:00-12:30".
type InOut struct {
	In  stime.STime
	Out stime.STime
}

func (SetJob) Kind() string    { return KindSetJob }
func (AddTag) Kind() string    { return KindAddTag }
func (ClearTags) Kind() string { return KindClearTags }
func (SetDate) Kind() string   { return KindSetDate }
func (SetNum) Kind() string    { return KindSetNum }
func (DefGroup) Kind() string  { return KindDefGroup }
func (In) Kind() string        { return KindIn }
func (Out) Kind() string       { return KindOut }
func (InOut) Kind() string     { return KindInOut }

func (a SetJob) String() string { return "job " + a.Name }
func (a AddTag) String() string { return "_" + a.Name }

func (a ClearTags) String() string {
	if a.Replacement == nil {
		return "__"
	}
	return "__" + *a.Replacement
}

func (a SetDate) String() string {
	if a.Year == nil {
		return fmt.Sprintf("%d/%d", a.Day, a.Month)
	}
	return fmt.Sprintf("%d/%d/%d", a.Day, a.Month, *a.Year)
}

func (a SetNum) String() string { return fmt.Sprintf("%s=%d", a.Key, a.Value) }

func (a DefGroup) String() string {
	return fmt.Sprintf("$%s[%s]", a.Name, strings.Join(a.Members, ","))
}

func (a In) String() string    { return a.Time.String() }
func (a Out) String() string   { return "-" + a.Time.String() }
func (a InOut) String() string { return a.In.String() + "-" + a.Out.String() }

// PositionedAction is an action with the 1-based position it started at.
type PositionedAction struct {
	Line   int
	Col    int
	Action Action
}
