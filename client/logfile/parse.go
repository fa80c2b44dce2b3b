package logfile

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/sporadisk/worktock/logentry"
	"github.com/sporadisk/worktock/logerr"
	"github.com/sporadisk/worktock/stime"
)

const (
	// a quoted string or a bare identifier
	strValRegex = `("(?:[^"\\]|\\.)*"|\p{L}[\p{L}\p{N}_]*)`

	skipPatternRegex      = `^(?:[\s,]|#[^\n\r,]*)*`
	groupItemPatternRegex = `^` + strValRegex
	groupEndPatternRegex  = `^\]`

	clearTagsPatternRegex = `^__` + strValRegex + `?`
	addTagPatternRegex    = `^_` + strValRegex
	clockOutPatternRegex  = `^-[ \t]*(\d+):(\d+)`
	datePatternRegex      = `^(\d+)[ \t]*/[ \t]*(\d+)(?:[ \t]*/[ \t]*(\d+))?`
	clockInPatternRegex   = `^(\d+):(\d+)(?:[ \t]*-[ \t]*(\d+):(\d+))?`
	setNumPatternRegex    = `^=` + strValRegex + `[ \t]*:[ \t]*(\d+)`
	groupPatternRegex     = `^\$` + strValRegex + `[ \t]*\[`
	jobPatternRegex       = `^` + strValRegex + `(?:[ \t]*=[ \t]*(\d+))?`
)

type buildFunc func(l *LogParser, text string, m []int) (action logentry.Action, end int, err error)

type recordRule struct {
	name    string
	pattern *regexp.Regexp
	build   buildFunc
}

// Parse reads every record in text. A record that matches no rule aborts the
// whole parse with a *logerr.ParseError; no partial result is returned.
func (l *LogParser) Parse(text string) ([]logentry.PositionedAction, error) {
	pos := newPositions(text)
	actions := []logentry.PositionedAction{}

	offset := l.skip(text, 0)
	for offset < len(text) {
		rest := text[offset:]
		matched := false

		for _, rule := range l.rules {
			m := rule.pattern.FindStringSubmatchIndex(rest)
			if m == nil {
				continue
			}

			action, end, err := rule.build(l, rest, m)
			if err != nil {
				line, col := pos.at(offset)
				return nil, &logerr.ParseError{
					Line:   line,
					Col:    col,
					Detail: "bad " + rule.name + " record",
					Err:    err,
				}
			}

			line, col := pos.at(offset)
			actions = append(actions, logentry.PositionedAction{
				Line:   line,
				Col:    col,
				Action: action,
			})
			offset += end
			matched = true
			break
		}

		if !matched {
			line, col := pos.at(offset)
			return nil, &logerr.ParseError{
				Line:   line,
				Col:    col,
				Detail: fmt.Sprintf("no record matches %q", snippet(rest)),
			}
		}

		offset = l.skip(text, offset)
	}

	return actions, nil
}

// skip moves past separators, whitespace and comments.
func (l *LogParser) skip(text string, offset int) int {
	m := l.skipPattern.FindStringIndex(text[offset:])
	if m == nil {
		return offset
	}
	return offset + m[1]
}

func buildClearTags(_ *LogParser, text string, m []int) (logentry.Action, int, error) {
	raw, ok := group(text, m, 1)
	if !ok {
		return logentry.ClearTags{}, m[1], nil
	}
	name := strVal(raw)
	return logentry.ClearTags{Replacement: &name}, m[1], nil
}

func buildAddTag(_ *LogParser, text string, m []int) (logentry.Action, int, error) {
	raw, _ := group(text, m, 1)
	return logentry.AddTag{Name: strVal(raw)}, m[1], nil
}

func buildClockOut(_ *LogParser, text string, m []int) (logentry.Action, int, error) {
	t, err := timeGroups(text, m, 1)
	if err != nil {
		return nil, 0, err
	}
	return logentry.Out{Time: t}, m[1], nil
}

func buildDate(_ *LogParser, text string, m []int) (logentry.Action, int, error) {
	day, err := intGroup(text, m, 1)
	if err != nil {
		return nil, 0, err
	}
	month, err := intGroup(text, m, 2)
	if err != nil {
		return nil, 0, err
	}

	action := logentry.SetDate{Day: day, Month: month}
	if _, ok := group(text, m, 3); ok {
		year, err := intGroup(text, m, 3)
		if err != nil {
			return nil, 0, err
		}
		action.Year = &year
	}
	return action, m[1], nil
}

func buildClockIn(_ *LogParser, text string, m []int) (logentry.Action, int, error) {
	in, err := timeGroups(text, m, 1)
	if err != nil {
		return nil, 0, err
	}

	if _, ok := group(text, m, 3); !ok {
		return logentry.In{Time: in}, m[1], nil
	}

	out, err := timeGroups(text, m, 3)
	if err != nil {
		return nil, 0, err
	}
	return logentry.InOut{In: in, Out: out}, m[1], nil
}

func buildSetNum(_ *LogParser, text string, m []int) (logentry.Action, int, error) {
	raw, _ := group(text, m, 1)
	v, err := intGroup(text, m, 2)
	if err != nil {
		return nil, 0, err
	}
	return logentry.SetNum{Key: strVal(raw), Value: v}, m[1], nil
}

func buildGroup(l *LogParser, text string, m []int) (logentry.Action, int, error) {
	raw, _ := group(text, m, 1)
	action := logentry.DefGroup{Name: strVal(raw), Members: []string{}}

	end := m[1]
	for {
		end = l.skip(text, end)
		if end >= len(text) {
			return nil, 0, &logerr.MismatchError{Detail: fmt.Sprintf("group %q is missing its closing ']'", action.Name)}
		}

		rest := text[end:]
		if em := l.groupEndPattern.FindStringIndex(rest); em != nil {
			return action, end + em[1], nil
		}

		im := l.groupItemPattern.FindStringSubmatchIndex(rest)
		if im == nil {
			return nil, 0, &logerr.MismatchError{Detail: fmt.Sprintf("expected a job name or ']' in group %q, found %q", action.Name, snippet(rest))}
		}
		item, _ := group(rest, im, 1)
		action.Members = append(action.Members, strVal(item))
		end += im[1]
	}
}

func buildJob(_ *LogParser, text string, m []int) (logentry.Action, int, error) {
	raw, _ := group(text, m, 1)
	name := strVal(raw)

	if _, ok := group(text, m, 2); ok {
		v, err := intGroup(text, m, 2)
		if err != nil {
			return nil, 0, err
		}
		return logentry.SetNum{Key: name, Value: v}, m[1], nil
	}
	return logentry.SetJob{Name: name}, m[1], nil
}

// group returns submatch i, and whether it participated in the match.
func group(text string, m []int, i int) (string, bool) {
	if 2*i+1 >= len(m) || m[2*i] < 0 {
		return "", false
	}
	return text[m[2*i]:m[2*i+1]], true
}

func intGroup(text string, m []int, i int) (int, error) {
	s, _ := group(text, m, i)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", logerr.ErrNotInteger, s)
	}
	return n, nil
}

func timeGroups(text string, m []int, first int) (stime.STime, error) {
	h, err := intGroup(text, m, first)
	if err != nil {
		return 0, err
	}
	mins, err := intGroup(text, m, first+1)
	if err != nil {
		return 0, err
	}
	if h > (math.MaxInt-mins)/60 {
		return 0, fmt.Errorf("%w: %d:%d does not fit in a time value", logerr.ErrNotInteger, h, mins)
	}
	return stime.New(h, mins), nil
}

// strVal decodes a quoted string, or returns a bare identifier as is.
func strVal(raw string) string {
	if len(raw) < 2 || raw[0] != '"' {
		return raw
	}

	inner := raw[1 : len(raw)-1]
	var sb strings.Builder
	sb.Grow(len(inner))
	escaped := false
	for _, r := range inner {
		if !escaped {
			if r == '\\' {
				escaped = true
				continue
			}
			sb.WriteRune(r)
			continue
		}

		escaped = false
		switch r {
		case 't':
			sb.WriteRune('\t')
		case 'n':
			sb.WriteRune('\n')
		case 'r':
			sb.WriteRune('\r')
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// snippet returns the start of s up to the next separator, for messages.
func snippet(s string) string {
	if i := strings.IndexAny(s, ",\n\r"); i >= 0 {
		s = s[:i]
	}
	if utf8.RuneCountInString(s) > 20 {
		s = string([]rune(s)[:20]) + "..."
	}
	return s
}

// positions maps byte offsets to 1-based line and column numbers.
type positions struct {
	text       string
	lineStarts []int
}

func newPositions(text string) positions {
	starts := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return positions{text: text, lineStarts: starts}
}

func (p positions) at(offset int) (line, col int) {
	i := sort.Search(len(p.lineStarts), func(i int) bool {
		return p.lineStarts[i] > offset
	}) - 1
	col = utf8.RuneCountInString(p.text[p.lineStarts[i]:offset]) + 1
	return i + 1, col
}
