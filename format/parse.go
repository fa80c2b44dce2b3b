package format

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/sporadisk/worktock/stime"
)

// ParseTimestamp reads a time of day, H:MM.
func ParseTimestamp(ts string) (stime.STime, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(ts))
	if err != nil {
		return 0, fmt.Errorf("time.Parse: %w", err)
	}
	return stime.Of(t), nil
}

// ParseDate reads a date given as d/m/yyyy (the log's own notation) or
// yyyy-mm-dd.
func ParseDate(s string) (civil.Date, error) {
	s = strings.TrimSpace(s)

	if strings.Contains(s, "-") {
		d, err := civil.ParseDate(s)
		if err != nil {
			return civil.Date{}, fmt.Errorf("civil.ParseDate: %w", err)
		}
		return d, nil
	}

	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return civil.Date{}, fmt.Errorf("date %q: expected d/m/yyyy or yyyy-mm-dd", s)
	}

	nums, err := atoiAll(parts)
	if err != nil {
		return civil.Date{}, fmt.Errorf("date %q: %w", s, err)
	}

	d := civil.Date{Year: nums[2], Month: time.Month(nums[1]), Day: nums[0]}
	if !d.IsValid() {
		return civil.Date{}, fmt.Errorf("date %q does not exist", s)
	}
	return d, nil
}

// ParseMonth reads a month given as m/yyyy or yyyy-mm. The result is the
// first day of that month.
func ParseMonth(s string) (civil.Date, error) {
	s = strings.TrimSpace(s)

	var year, month string
	if y, m, found := strings.Cut(s, "-"); found {
		year, month = y, m
	} else if m, y, found := strings.Cut(s, "/"); found {
		year, month = y, m
	} else {
		return civil.Date{}, fmt.Errorf("month %q: expected m/yyyy or yyyy-mm", s)
	}

	nums, err := atoiAll([]string{year, month})
	if err != nil {
		return civil.Date{}, fmt.Errorf("month %q: %w", s, err)
	}

	d := civil.Date{Year: nums[0], Month: time.Month(nums[1]), Day: 1}
	if !d.IsValid() {
		return civil.Date{}, fmt.Errorf("month %q does not exist", s)
	}
	return d, nil
}

func atoiAll(parts []string) ([]int, error) {
	nums := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("strconv.Atoi: %w", err)
		}
		nums[i] = n
	}
	return nums, nil
}

func CleanParam(param string) string {
	return strings.ToLower(strings.TrimSpace(param))
}
