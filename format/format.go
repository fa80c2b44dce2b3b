package format

import (
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/sporadisk/worktock/stime"
)

const (
	// duration formats
	TimeHM    = "hm"    // hours and minutes (default)
	TimeM     = "m"     // minutes
	TimeClock = "clock" // zero-padded HH:MM
)

// Duration renders d in the given duration format.
func Duration(d stime.STime, format string) string {
	switch format {
	case TimeM:
		return DurationM(d)
	case TimeClock:
		return d.String()
	default:
		return DurationHM(d)
	}
}

func DurationM(d stime.STime) string {
	return fmt.Sprintf("%dm", d.Minutes())
}

func DurationHM(d stime.STime) string {
	if d.Minutes() == 0 {
		return "0m"
	}

	var sb strings.Builder
	if d < 0 {
		sb.WriteString("-")
		d = -d
	}

	hours := d.Hours()
	minutes := d.Minutes() - hours*60

	if hours > 0 {
		sb.WriteString(fmt.Sprintf("%dh", hours))
	}

	if minutes > 0 {
		if hours > 0 {
			sb.WriteString(" ")
		}

		sb.WriteString(fmt.Sprintf("%dm", minutes))
	}

	return sb.String()
}

// Timestamp renders a clock value without zero-padding the hours, as it is
// written in a log.
func Timestamp(t stime.STime) string {
	m := t.Minutes()
	sign := ""
	if m < 0 {
		sign = "-"
		m = -m
	}
	return fmt.Sprintf("%s%d:%02d", sign, m/60, m%60)
}

// Date renders d with its weekday, for report headings.
func Date(d civil.Date) string {
	return fmt.Sprintf("%s %02d.%02d.%d", d.In(time.UTC).Weekday(), d.Day, int(d.Month), d.Year)
}
