package logerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineErrorsKeepOrder(t *testing.T) {
	var le LineErrors
	le.Add(7, NotSet("date"))
	le.Add(3, ErrNegativeTime)
	le.Add(9, nil)
	le.Add(12, Message("something odd"))

	require.Len(t, le, 3)
	assert.Equal(t, []int{7, 3, 12}, []int{le[0].Line, le[1].Line, le[2].Line})

	msg := le.Error()
	assert.Contains(t, msg, "3 errors:")
	assert.Contains(t, msg, "line 7: date not set")
	assert.Contains(t, msg, "line 3: "+ErrNegativeTime.Error())
	assert.Contains(t, msg, "line 12: something odd")
}

func TestLineErrorsUnwrap(t *testing.T) {
	var le LineErrors
	le.Add(2, NotSet("date"))
	le.Add(5, fmt.Errorf("pairing: %w", ErrNegativeTime))

	var err error = le
	assert.ErrorIs(t, err, ErrNegativeTime)
	assert.NotErrorIs(t, err, ErrUnmatchedOut)

	var ns *NotSetError
	require.True(t, errors.As(err, &ns))
	assert.Equal(t, "date", ns.Field)
}

func TestLineErrorsErr(t *testing.T) {
	var le LineErrors
	assert.NoError(t, le.Err())

	le.Add(1, ErrUnmatchedOut)
	assert.Error(t, le.Err())
	assert.Equal(t, "line 1: "+ErrUnmatchedOut.Error(), le.Err().Error())
}

func TestLines(t *testing.T) {
	var le LineErrors
	le.Add(4, ErrUnmatchedOut)

	got, ok := Lines(fmt.Errorf("parse: %w", le))
	require.True(t, ok)
	assert.Equal(t, le, got)

	got, ok = Lines(LineError{Line: 8, Err: ErrNegativeTime})
	require.True(t, ok)
	assert.Equal(t, 8, got[0].Line)

	_, ok = Lines(&ParseError{Line: 1, Col: 1, Detail: "bad"})
	assert.False(t, ok)
}

func TestParseError(t *testing.T) {
	err := &ParseError{Line: 3, Col: 9, Detail: "bad group record", Err: &MismatchError{Detail: "missing ']'"}}
	assert.Equal(t, "line 3, col 9: bad group record: mismatch: missing ']'", err.Error())

	var me *MismatchError
	assert.True(t, errors.As(err, &me))
}
