package logfile

import (
	"fmt"
	"regexp"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/sporadisk/worktock/format"
	"github.com/sporadisk/worktock/stime"
)

var bareNamePattern = regexp.MustCompile(`^\p{L}[\p{L}\p{N}_]*$`)

var nameEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\t", `\t`,
	"\n", `\n`,
	"\r", `\r`,
)

// NameRecord renders a job or tag name, quoting it unless it reads back as a
// bare identifier.
func NameRecord(name string) string {
	if bareNamePattern.MatchString(name) {
		return name
	}
	return `"` + nameEscaper.Replace(name) + `"`
}

// DateRecord renders a full date record, d/m/yyyy.
func DateRecord(d civil.Date) string {
	return fmt.Sprintf("%d/%d/%d", d.Day, int(d.Month), d.Year)
}

func ClockInRecord(t stime.STime) string {
	return format.Timestamp(t)
}

func ClockOutRecord(t stime.STime) string {
	return "-" + format.Timestamp(t)
}
