package calculator

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/sporadisk/worktock/interval"
)

// Filter selects sessions for a report.
type Filter func(iv interval.Interval) bool

// All matches the sessions every filter matches. With no filters it matches
// everything.
func All(filters ...Filter) Filter {
	return func(iv interval.Interval) bool {
		for _, f := range filters {
			if !f(iv) {
				return false
			}
		}
		return true
	}
}

// Since matches sessions starting on or after d.
func Since(d civil.Date) Filter {
	return func(iv interval.Interval) bool {
		return !iv.In.Date.Before(d)
	}
}

// Until matches sessions starting on or before d.
func Until(d civil.Date) Filter {
	return func(iv interval.Interval) bool {
		return !iv.In.Date.After(d)
	}
}

func Day(d civil.Date) Filter {
	return func(iv interval.Interval) bool {
		return iv.In.Date == d
	}
}

// Week matches sessions in the ISO week containing d.
func Week(d civil.Date) Filter {
	year, week := d.In(time.UTC).ISOWeek()
	return func(iv interval.Interval) bool {
		y, w := iv.In.Date.In(time.UTC).ISOWeek()
		return y == year && w == week
	}
}

// Month matches sessions in the calendar month of d.
func Month(d civil.Date) Filter {
	return func(iv interval.Interval) bool {
		return iv.In.Date.Year == d.Year && iv.In.Date.Month == d.Month
	}
}

func Job(name string) Filter {
	return func(iv interval.Interval) bool {
		return iv.In.Job == name
	}
}

func JobPrefix(prefix string) Filter {
	return func(iv interval.Interval) bool {
		return strings.HasPrefix(iv.In.Job, prefix)
	}
}

func Tag(name string) Filter {
	return func(iv interval.Interval) bool {
		return iv.In.HasTag(name)
	}
}

// Group matches sessions whose job is a member of the named group.
func Group(groups map[string][]string, name string) (Filter, error) {
	members, ok := groups[name]
	if !ok {
		known := make([]string, 0, len(groups))
		for g := range groups {
			known = append(known, g)
		}
		sort.Strings(known)
		return nil, fmt.Errorf("unknown group %q (known: %s)", name, strings.Join(known, ", "))
	}

	set := make(map[string]bool, len(members))
	for _, m := range members {
		set[m] = true
	}
	return func(iv interval.Interval) bool {
		return set[iv.In.Job]
	}, nil
}

// MergeGroups combines configured groups with those defined in the log. A
// group defined in the log replaces a configured one of the same name.
func MergeGroups(configured, defined map[string][]string) map[string][]string {
	merged := make(map[string][]string, len(configured)+len(defined))
	for name, members := range configured {
		merged[name] = members
	}
	for name, members := range defined {
		merged[name] = members
	}
	return merged
}

// FilterOptions are the report filters as given on the command line. Zero
// values are not applied.
type FilterOptions struct {
	Since     *civil.Date
	Until     *civil.Date
	Day       *civil.Date
	Week      *civil.Date
	Month     *civil.Date
	Job       string
	JobPrefix string
	Tag       string
	Group     string
}

// Build composes the options into one filter. groups is used to resolve
// Group.
func (o FilterOptions) Build(groups map[string][]string) (Filter, error) {
	var filters []Filter

	if o.Since != nil {
		filters = append(filters, Since(*o.Since))
	}
	if o.Until != nil {
		filters = append(filters, Until(*o.Until))
	}
	if o.Day != nil {
		filters = append(filters, Day(*o.Day))
	}
	if o.Week != nil {
		filters = append(filters, Week(*o.Week))
	}
	if o.Month != nil {
		filters = append(filters, Month(*o.Month))
	}
	if o.Job != "" {
		filters = append(filters, Job(o.Job))
	}
	if o.JobPrefix != "" {
		filters = append(filters, JobPrefix(o.JobPrefix))
	}
	if o.Tag != "" {
		filters = append(filters, Tag(o.Tag))
	}
	if o.Group != "" {
		g, err := Group(groups, o.Group)
		if err != nil {
			return nil, err
		}
		filters = append(filters, g)
	}

	return All(filters...), nil
}
