// Package logerr holds the error types produced while reading a time log.
//
// A full-log parse fails in exactly one of two ways: a single *ParseError when
// the grammar rejects the text, or a LineErrors value collecting every
// per-record problem found while folding the records.
package logerr

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotInteger   = errors.New("not an integer")
	ErrNegativeTime = errors.New("clock-out is earlier than its clock-in")
	ErrUnmatchedOut = errors.New("clock-out with no open clock-in")
)

// Message is a free-text error.
func Message(text string) error {
	return errors.New(text)
}

// NotSetError reports a record that needs context which has not been given
// yet, such as a date without a year before any year is known.
type NotSetError struct {
	Field string
}

func (e *NotSetError) Error() string {
	return fmt.Sprintf("%s not set", e.Field)
}

// NotSet returns a *NotSetError for field.
func NotSet(field string) error {
	return &NotSetError{Field: field}
}

// MismatchError reports input that started a record but did not have the
// expected shape.
type MismatchError struct {
	Detail string
}

func (e *MismatchError) Error() string {
	return "mismatch: " + e.Detail
}

// ParseError is a structural failure pinned to a 1-based position in the
// source text.
type ParseError struct {
	Line   int
	Col    int
	Detail string
	Err    error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("line %d, col %d: %s", e.Line, e.Col, e.Detail)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// LineError binds an error to the source line it was found on.
type LineError struct {
	Line int
	Err  error
}

func (e LineError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Err.Error())
}

func (e LineError) Unwrap() error {
	return e.Err
}

// LineErrors aggregates line errors in the order they were found.
type LineErrors []LineError

// Add records err at line. A nil err is ignored.
func (le *LineErrors) Add(line int, err error) {
	if err == nil {
		return
	}
	*le = append(*le, LineError{Line: line, Err: err})
}

func (le LineErrors) Error() string {
	if len(le) == 1 {
		return le[0].Error()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d errors:", len(le))
	for _, e := range le {
		sb.WriteString("\n  " + e.Error())
	}
	return sb.String()
}

func (le LineErrors) Unwrap() []error {
	errs := make([]error, len(le))
	for i, e := range le {
		errs[i] = e
	}
	return errs
}

// Err returns le as an error, or nil when it is empty.
func (le LineErrors) Err() error {
	if len(le) == 0 {
		return nil
	}
	return le
}

// Lines returns the aggregated line errors inside err, if any. A single
// LineError is returned as a one-element slice.
func Lines(err error) (LineErrors, bool) {
	var le LineErrors
	if errors.As(err, &le) {
		return le, true
	}

	var single LineError
	if errors.As(err, &single) {
		return LineErrors{single}, true
	}
	return nil, false
}
