package calculator

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/sporadisk/worktock/config"
	"github.com/sporadisk/worktock/logerr"
	"github.com/sporadisk/worktock/stime"
	"github.com/sporadisk/worktock/summary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 6, 3, 12, 0, 0, 0, time.UTC)

func TestSummarize(t *testing.T) {
	tests := []*calcTest{
		newCalcTest("split day", true, `
			=year:2024
			3/6
			acme
			8:15
			-11:35

			11:45-16:00
		`).expectTimeWorked("7:35").
			expectJob("acme", "7:35"),
		newCalcTest("clock-in closes the previous job", true, `
			3/6/2024, acme, 9:00
			other, 10:30
			-12:00
		`).expectTimeWorked("3:00").
			expectJob("acme", "1:30").
			expectJob("other", "1:30"),
		newCalcTest("overnight", true, `
			2/6/2024, night, 22:00
			3/6/2024
			-1:00
		`).expectTimeWorked("3:00").
			expectDay(civil.Date{Year: 2024, Month: 6, Day: 2}, "3:00"),
		newCalcTest("tags", true, `
			3/6/2024, acme
			_meeting, 9:00-10:00
			_remote, 10:00-10:30
			__, 10:30-11:00
		`).expectTimeWorked("2:00").
			expectTag("meeting", "1:30").
			expectTag("remote", "0:30"),
		newCalcTest("repeated tag", true, `
			3/6/2024, acme, _a, _a, 9:00-10:00
		`).expectTimeWorked("1:00").
			expectTag("a", "1:00"),
		newCalcTest("stray clock-out", true, `
			3/6/2024
			-8:00
			9:00-10:00
		`).expectTimeWorked("1:00").
			expectWarnings(1),
		newCalcTest("clock-out before clock-in", true, `
			3/6/2024
			9:00
			-8:00
		`).expectTimeWorked("0:00").
			expectWarnings(1),
		newCalcTest("still clocked in", true, `
			3/6/2024, acme, 9:00
		`).expectTimeWorked("0:00").
			expectOpen("acme", "3:00"),
		newCalcTest("date without a year", false, `
			3/6
			9:00
		`),
		newCalcTest("not a record", false, `3/6/2024, ?`),
		newCalcTest("empty", true, "\n\n\t # nothing\n").
			expectTimeWorked("0:00"),
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c := &Calculator{
				Conf:          &config.Config{},
				SummaryOutput: &recordingOutput{},
				Now:           func() time.Time { return testNow },
			}
			require.NoError(t, c.Init())

			res := c.Summarize(test.input)
			require.Equal(t, test.expect.Valid, res.Valid, "validation message: %s", res.ValidationMsg)
			if !res.Valid {
				assert.NotEmpty(t, res.ValidationMsg)
				return
			}

			assert.Equal(t, test.expect.TimeWorked, res.TimeWorked, "time worked")
			assert.Len(t, res.Warnings, test.warnings, "warnings: %v", res.Warnings)

			for _, ej := range test.expect.Jobs {
				assert.Contains(t, res.Jobs, ej)
			}
			for _, et := range test.expect.Tags {
				assert.Contains(t, res.Tags, et)
			}

			for _, ed := range test.expect.Days {
				found := false
				for _, ad := range res.Days {
					if ad.Date == ed.Date {
						found = true
						assert.Equal(t, ed.TimeWorked, ad.TimeWorked, "day %s", ed.Date)
					}
				}
				assert.True(t, found, "day %s not in the summary", ed.Date)
			}

			if test.expect.Open == nil {
				assert.Nil(t, res.Open)
			} else {
				require.NotNil(t, res.Open)
				assert.Equal(t, test.expect.Open.Job, res.Open.Job)
				assert.Equal(t, test.expect.Open.Elapsed, res.Open.Elapsed)
			}
		})
	}
}

func TestSummarizeFilters(t *testing.T) {
	text := `
		$clients[acme, "Big Co"]
		3/6/2024, acme, 9:00-10:00
		"Big Co", _meeting, 10:00-12:00
		10/6/2024, __, hobby, 9:00-9:30
	`

	tests := []struct {
		name    string
		filters FilterOptions
		conf    map[string][]string
		worked  string
		valid   bool
	}{
		{"none", FilterOptions{}, nil, "3:30", true},
		{"day", FilterOptions{Day: &civil.Date{Year: 2024, Month: 6, Day: 10}}, nil, "0:30", true},
		{"week", FilterOptions{Week: &civil.Date{Year: 2024, Month: 6, Day: 7}}, nil, "3:00", true},
		{"since", FilterOptions{Since: &civil.Date{Year: 2024, Month: 6, Day: 4}}, nil, "0:30", true},
		{"job", FilterOptions{Job: "acme"}, nil, "1:00", true},
		{"tag", FilterOptions{Tag: "meeting"}, nil, "2:00", true},
		{"group", FilterOptions{Group: "clients"}, nil, "3:00", true},
		{"configured group", FilterOptions{Group: "fun"}, map[string][]string{"fun": {"hobby"}}, "0:30", true},
		{"log group wins", FilterOptions{Group: "clients"}, map[string][]string{"clients": {"hobby"}}, "3:00", true},
		{"unknown group", FilterOptions{Group: "nope"}, nil, "0:00", false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c := &Calculator{
				Conf:          &config.Config{Groups: test.conf},
				SummaryOutput: &recordingOutput{},
				Filters:       test.filters,
				Now:           func() time.Time { return testNow },
			}
			require.NoError(t, c.Init())

			res := c.Summarize(text)
			require.Equal(t, test.valid, res.Valid, res.ValidationMsg)
			assert.Equal(t, mustTime(test.worked), res.TimeWorked)
		})
	}
}

func TestSummarizeLong(t *testing.T) {
	c := &Calculator{
		Conf:          &config.Config{},
		SummaryOutput: &recordingOutput{},
		Long:          true,
		Now:           func() time.Time { return testNow },
	}
	require.NoError(t, c.Init())

	res := c.Summarize("4/6/2024, b, 9:00-10:00\n3/6/2024, a, 9:00-9:30, 11:00-12:00")
	require.True(t, res.Valid, res.ValidationMsg)
	require.Len(t, res.Days, 2)
	assert.Equal(t, civil.Date{Year: 2024, Month: 6, Day: 3}, res.Days[0].Date, "days are in date order")
	assert.Len(t, res.Days[0].Sessions, 2)
	assert.Len(t, res.Days[1].Sessions, 1)
	assert.Equal(t, "b", res.Days[1].Sessions[0].Job)
}

func TestReceive(t *testing.T) {
	out := &recordingOutput{}
	c := &Calculator{
		Conf:          &config.Config{},
		SummaryOutput: out,
		Now:           func() time.Time { return testNow },
	}
	require.NoError(t, c.Init())

	require.NoError(t, c.Receive("3/6/2024, 9:00-10:00"))
	require.NoError(t, c.Receive("oops ?"), "an invalid log is shown, not returned")
	require.Len(t, out.summaries, 2)
	assert.True(t, out.summaries[0].Valid)
	assert.False(t, out.summaries[1].Valid)

	assert.ErrorIs(t, c.Process("oops ?"), summary.ErrInvalid)
}

func TestCheck(t *testing.T) {
	assert.NoError(t, Check("3/6/2024, 9:00-10:00"))

	err := Check("3/6/2024\n-8:00\n9:00\n-8:30")
	le, ok := logerr.Lines(err)
	require.True(t, ok, "expected line errors, got %v", err)
	require.Len(t, le, 2)
	assert.Equal(t, 2, le[0].Line)
	assert.ErrorIs(t, le[0], logerr.ErrUnmatchedOut)
	assert.Equal(t, 3, le[1].Line)
	assert.ErrorIs(t, le[1], logerr.ErrNegativeTime)

	var pe *logerr.ParseError
	assert.ErrorAs(t, Check("?"), &pe)
}

type recordingOutput struct {
	summaries []summary.Summary
}

func (r *recordingOutput) OutputSummary(sum summary.Summary) error {
	r.summaries = append(r.summaries, sum)
	if !sum.Valid {
		return summary.ErrInvalid
	}
	return nil
}

type calcTest struct {
	name     string
	input    string
	expect   summary.Summary
	warnings int
}

func newCalcTest(name string, valid bool, input string) *calcTest {
	return &calcTest{
		name:  name,
		input: input,
		expect: summary.Summary{
			Valid: valid,
		},
	}
}

func (ct *calcTest) expectTimeWorked(tw string) *calcTest {
	ct.expect.TimeWorked = mustTime(tw)
	return ct
}

func (ct *calcTest) expectJob(name, tw string) *calcTest {
	ct.expect.Jobs = append(ct.expect.Jobs, summary.ResultCategory{Name: name, TimeWorked: mustTime(tw)})
	return ct
}

func (ct *calcTest) expectTag(name, tw string) *calcTest {
	ct.expect.Tags = append(ct.expect.Tags, summary.ResultCategory{Name: name, TimeWorked: mustTime(tw)})
	return ct
}

func (ct *calcTest) expectDay(date civil.Date, tw string) *calcTest {
	ct.expect.Days = append(ct.expect.Days, summary.Day{Date: date, TimeWorked: mustTime(tw)})
	return ct
}

func (ct *calcTest) expectOpen(job, elapsed string) *calcTest {
	ct.expect.Open = &summary.OpenSession{Job: job, Elapsed: mustTime(elapsed)}
	return ct
}

func (ct *calcTest) expectWarnings(n int) *calcTest {
	ct.warnings = n
	return ct
}

func mustTime(ts string) stime.STime {
	t, err := stime.Parse(ts)
	if err != nil {
		panic(err)
	}
	return t
}
