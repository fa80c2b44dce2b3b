// Package stime implements a minute-resolution clock value that is not bound
// to a single day. A value may exceed 24:00 (an overnight clock-out shown on
// the clock of the day it started) or be used as a plain duration.
package stime

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/sporadisk/worktock/logerr"
)

const (
	minutesPerHour = 60
	minutesPerDay  = 24 * minutesPerHour
)

// STime is a count of minutes from a reference zero. It is never wrapped or
// clamped to a 24 hour range.
type STime int

// New builds an STime from hours and minutes without normalizing either.
func New(hours, minutes int) STime {
	return STime(hours*minutesPerHour + minutes)
}

// Of returns the wall-clock time of day of t.
func Of(t time.Time) STime {
	return New(t.Hour(), t.Minute())
}

// Parse reads a "H:M" value. Both sides are plain non-negative integers and
// are stored as given, so "25:70" is accepted.
func Parse(s string) (STime, error) {
	hs, ms, found := strings.Cut(strings.TrimSpace(s), ":")
	if !found {
		return 0, fmt.Errorf("time %q: use ':' to separate hours and minutes", s)
	}

	hours, err := parseUint(hs)
	if err != nil {
		return 0, fmt.Errorf("time %q hours: %w", s, err)
	}
	minutes, err := parseUint(ms)
	if err != nil {
		return 0, fmt.Errorf("time %q minutes: %w", s, err)
	}

	return New(hours, minutes), nil
}

func parseUint(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsAny(s, "+-") {
		return 0, logerr.ErrNotInteger
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", logerr.ErrNotInteger, err.Error())
	}
	return n, nil
}

func (t STime) Add(o STime) STime {
	return t + o
}

func (t STime) Sub(o STime) STime {
	return t - o
}

func (t STime) Less(o STime) bool {
	return t < o
}

// Minutes returns the underlying minute count.
func (t STime) Minutes() int {
	return int(t)
}

// Hours returns the whole hours part, which may exceed 23.
func (t STime) Hours() int {
	return int(t) / minutesPerHour
}

// Duration converts t to a time.Duration.
func (t STime) Duration() time.Duration {
	return time.Duration(t) * time.Minute
}

// Since returns the time elapsed from then (on thenDate) to t (on nowDate).
// The log only records bare clock values, so a session that crosses midnight
// is reconstructed from the two dates:
//
//	t + 24h * days(thenDate -> nowDate) - then
//
// When both dates are equal this is plain subtraction.
func (t STime) Since(nowDate civil.Date, then STime, thenDate civil.Date) STime {
	days := nowDate.DaysSince(thenDate)
	return t + STime(days*minutesPerDay) - then
}

// String renders t as zero-padded HH:MM. Hours are not wrapped at 24.
func (t STime) String() string {
	m := int(t)
	sign := ""
	if m < 0 {
		sign = "-"
		m = -m
	}
	return fmt.Sprintf("%s%02d:%02d", sign, m/minutesPerHour, m%minutesPerHour)
}
