package format

import (
	"testing"

	"cloud.google.com/go/civil"
	"github.com/sporadisk/worktock/stime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuration(t *testing.T) {
	tests := []struct {
		d      stime.STime
		format string
		want   string
	}{
		{stime.New(7, 30), TimeHM, "7h 30m"},
		{stime.New(7, 0), TimeHM, "7h"},
		{stime.New(0, 45), TimeHM, "45m"},
		{0, TimeHM, "0m"},
		{stime.New(-1, -15), TimeHM, "-1h 15m"},
		{stime.New(7, 30), TimeM, "450m"},
		{stime.New(7, 30), TimeClock, "07:30"},
		{stime.New(26, 5), TimeClock, "26:05"},
		{stime.New(1, 5), "", "1h 5m"},
	}

	for _, test := range tests {
		assert.Equal(t, test.want, Duration(test.d, test.format), "%d minutes as %q", test.d.Minutes(), test.format)
	}
}

func TestTimestamp(t *testing.T) {
	assert.Equal(t, "9:05", Timestamp(stime.New(9, 5)))
	assert.Equal(t, "0:00", Timestamp(0))
	assert.Equal(t, "17:45", Timestamp(stime.New(17, 45)))
	assert.Equal(t, "-1:30", Timestamp(stime.New(-1, -30)))
	assert.Equal(t, "-0:05", Timestamp(stime.New(0, -5)))
}

func TestDate(t *testing.T) {
	assert.Equal(t, "Monday 03.06.2024", Date(civil.Date{Year: 2024, Month: 6, Day: 3}))
}

func TestParseDate(t *testing.T) {
	want := civil.Date{Year: 2024, Month: 6, Day: 3}

	for _, s := range []string{"3/6/2024", " 03/06/2024 ", "2024-06-03"} {
		d, err := ParseDate(s)
		require.NoError(t, err, s)
		assert.Equal(t, want, d, s)
	}

	for _, s := range []string{"", "3/6", "31/2/2024", "x/6/2024", "2024-13-01"} {
		_, err := ParseDate(s)
		assert.Error(t, err, s)
	}
}

func TestParseMonth(t *testing.T) {
	want := civil.Date{Year: 2024, Month: 6, Day: 1}

	for _, s := range []string{"6/2024", "2024-06", "2024-6"} {
		d, err := ParseMonth(s)
		require.NoError(t, err, s)
		assert.Equal(t, want, d, s)
	}

	for _, s := range []string{"", "june", "13/2024", "2024-00"} {
		_, err := ParseMonth(s)
		assert.Error(t, err, s)
	}
}

func TestParseTimestamp(t *testing.T) {
	ts, err := ParseTimestamp("9:05")
	require.NoError(t, err)
	assert.Equal(t, stime.New(9, 5), ts)

	ts, err = ParseTimestamp(" 23:59 ")
	require.NoError(t, err)
	assert.Equal(t, stime.New(23, 59), ts)

	for _, s := range []string{"24:00", "9:75", "9", ""} {
		_, err := ParseTimestamp(s)
		assert.Error(t, err, s)
	}
}

func TestValidateTimeFormat(t *testing.T) {
	for _, f := range TimeFormats {
		assert.NoError(t, ValidateTimeFormat(f))
	}
	assert.Error(t, ValidateTimeFormat("hms"))
}
