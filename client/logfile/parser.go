package logfile

import (
	"fmt"
	"regexp"
)

// LogParser turns log text into positioned actions. Records are matched by
// an ordered list of anchored patterns; the first one that matches at a
// record boundary wins.
type LogParser struct {
	skipPattern      *regexp.Regexp
	groupItemPattern *regexp.Regexp
	groupEndPattern  *regexp.Regexp
	rules            []recordRule
}

func (l *LogParser) Init() error {
	skipPattern, err := regexp.Compile(skipPatternRegex)
	if err != nil {
		return fmt.Errorf("failed to compile skip pattern: %w", err)
	}
	l.skipPattern = skipPattern

	groupItemPattern, err := regexp.Compile(groupItemPatternRegex)
	if err != nil {
		return fmt.Errorf("failed to compile group item pattern: %w", err)
	}
	l.groupItemPattern = groupItemPattern

	groupEndPattern, err := regexp.Compile(groupEndPatternRegex)
	if err != nil {
		return fmt.Errorf("failed to compile group end pattern: %w", err)
	}
	l.groupEndPattern = groupEndPattern

	// order matters: "__" before "_", "-H:M" before "H:M", and the bare
	// identifier fallback last.
	defs := []struct {
		name    string
		pattern string
		build   buildFunc
	}{
		{"clear tags", clearTagsPatternRegex, buildClearTags},
		{"add tag", addTagPatternRegex, buildAddTag},
		{"clock-out", clockOutPatternRegex, buildClockOut},
		{"date", datePatternRegex, buildDate},
		{"clock-in", clockInPatternRegex, buildClockIn},
		{"number", setNumPatternRegex, buildSetNum},
		{"group", groupPatternRegex, buildGroup},
		{"job", jobPatternRegex, buildJob},
	}

	l.rules = make([]recordRule, 0, len(defs))
	for _, d := range defs {
		pattern, err := regexp.Compile(d.pattern)
		if err != nil {
			return fmt.Errorf("failed to compile %s pattern: %w", d.name, err)
		}
		l.rules = append(l.rules, recordRule{
			name:    d.name,
			pattern: pattern,
			build:   d.build,
		})
	}

	return nil
}
