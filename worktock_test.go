package worktock

import (
	"errors"
	"testing"

	"cloud.google.com/go/civil"
	"github.com/sporadisk/worktock/logentry"
	"github.com/sporadisk/worktock/logerr"
	"github.com/sporadisk/worktock/stime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLog(t *testing.T) {
	log, err := ParseLog(`
=year:2024
$clients[acme, "Big Co"]
3/6
acme, _meeting
9:00
12:30-13:15
4/6, "Big Co", __
22:00
5/6
-1:30
`)
	require.NoError(t, err)
	require.Len(t, log.Entries, 5)
	assert.Equal(t, map[string][]string{"clients": {"acme", "Big Co"}}, log.Groups)

	res := ReconstructIntervals(log.Entries)
	assert.Empty(t, res.Anomalies)
	assert.Nil(t, res.Open)
	require.Len(t, res.Intervals, 3)

	jun3 := civil.Date{Year: 2024, Month: 6, Day: 3}
	jun4 := civil.Date{Year: 2024, Month: 6, Day: 4}

	// the 12:30 clock-in closes the 9:00 session
	assert.Equal(t, "acme", res.Intervals[0].In.Job)
	assert.Equal(t, []string{"meeting"}, res.Intervals[0].In.Tags)
	assert.Equal(t, jun3, res.Intervals[0].In.Date)
	assert.Equal(t, stime.New(12, 30), res.Intervals[0].Out)

	assert.Equal(t, stime.New(13, 15), res.Intervals[1].Out)

	last := res.Intervals[2]
	assert.Equal(t, "Big Co", last.In.Job)
	assert.Empty(t, last.In.Tags)
	assert.Equal(t, jun4, last.In.Date)
	assert.Equal(t, stime.New(25, 30), last.Out)
	assert.Equal(t, stime.New(3, 30), last.Duration())
}

func TestParseLogDeterministic(t *testing.T) {
	text := "1/1/2020\njob1,_a,9:00\njob2,10:00\n-11:00\n$g[job1]"

	first, err := ParseLog(text)
	require.NoError(t, err)
	second, err := ParseLog(text)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, ReconstructIntervals(first.Entries), ReconstructIntervals(second.Entries))
}

func TestParseLogImplicitClose(t *testing.T) {
	log, err := ParseLog("1/1/2020\njob1,9:00\njob2,10:00\n-11:00")
	require.NoError(t, err)

	res := ReconstructIntervals(log.Entries)
	require.Len(t, res.Intervals, 2)
	assert.Equal(t, "job1", res.Intervals[0].In.Job)
	assert.Equal(t, stime.New(9, 0), res.Intervals[0].In.Time)
	assert.Equal(t, stime.New(10, 0), res.Intervals[0].Out)
	assert.Equal(t, "job2", res.Intervals[1].In.Job)
	assert.Equal(t, stime.New(10, 0), res.Intervals[1].In.Time)
	assert.Equal(t, stime.New(11, 0), res.Intervals[1].Out)
}

func TestParseLogClearTags(t *testing.T) {
	log, err := ParseLog("1/1/2020, _a, _b, __, 9:00")
	require.NoError(t, err)
	require.Len(t, log.Entries, 1)
	assert.Empty(t, log.Entries[0].In.Tags)
}

func TestParseLogGroupOverwrite(t *testing.T) {
	log, err := ParseLog("$g[a, b]\n$g[c]")
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, log.Groups["g"])
}

func TestParseLogYearNotSet(t *testing.T) {
	_, err := ParseLog("3/6\n9:00")
	require.Error(t, err)

	le, ok := logerr.Lines(err)
	require.True(t, ok, "expected line errors, got %v", err)
	require.NotEmpty(t, le)
	assert.Equal(t, 1, le[0].Line)

	var ns *logerr.NotSetError
	assert.True(t, errors.As(le[0].Err, &ns))
}

func TestParseLogStructuralError(t *testing.T) {
	_, err := ParseLog("1/1/2020\n9:00\n  ?\n")

	var pe *logerr.ParseError
	require.True(t, errors.As(err, &pe), "expected a *logerr.ParseError, got %v", err)
	assert.Equal(t, 3, pe.Line)
	assert.Equal(t, 3, pe.Col)

	_, ok := logerr.Lines(err)
	assert.False(t, ok)
}

func TestReconstructUnmatchedOut(t *testing.T) {
	log, err := ParseLog("1/1/2020\n-8:00\njob,9:00\n-10:00")
	require.NoError(t, err)

	res := ReconstructIntervals(log.Entries)
	require.Len(t, res.Anomalies, 1)
	assert.Equal(t, 2, res.Anomalies[0].Line)
	assert.ErrorIs(t, res.Anomalies[0], logerr.ErrUnmatchedOut)

	require.Len(t, res.Intervals, 1)
	assert.Equal(t, stime.New(10, 0), res.Intervals[0].Out)
}

func TestParseLogEmpty(t *testing.T) {
	log, err := ParseLog("")
	require.NoError(t, err)
	assert.Empty(t, log.Entries)
	assert.Empty(t, log.Groups)

	res := ReconstructIntervals(log.Entries)
	assert.Empty(t, res.Intervals)
	assert.Nil(t, res.Open)
}

func TestParseLogEntryKinds(t *testing.T) {
	log, err := ParseLog("1/1/2020, 9:00-10:00")
	require.NoError(t, err)
	require.Len(t, log.Entries, 2)
	assert.Equal(t, logentry.ActionClockIn, log.Entries[0].Action)
	assert.Equal(t, logentry.ActionClockOut, log.Entries[1].Action)
}
