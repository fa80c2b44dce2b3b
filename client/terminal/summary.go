package terminal

import (
	"fmt"
	"strings"

	"github.com/sporadisk/worktock/format"
	"github.com/sporadisk/worktock/stime"
	"github.com/sporadisk/worktock/summary"
)

func (c *Client) OutputSummary(sum summary.Summary) error {
	outStr, err := c.Summary(sum)
	fmt.Fprint(c.Out, outStr)
	return err
}

// Summary renders sum. Warnings come first so that problems in the log are
// seen before the numbers they affect.
func (c *Client) Summary(sum summary.Summary) (string, error) {
	var sb strings.Builder
	st := c.styles

	if !sum.Valid {
		sb.WriteString(st.error.Render("Could not parse input:") + "\n" + sum.ValidationMsg + "\n")
		return sb.String(), summary.ErrInvalid
	}

	if len(sum.Warnings) > 0 {
		sb.WriteString(st.warning.Render("Warnings:") + "\n")
		for i, w := range sum.Warnings {
			sb.WriteString(fmt.Sprintf(" %d - %s\n", i+1, w))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(st.title.Render("- Summary / "+summaryPeriod(sum)+" -") + "\n")

	if len(sum.Days) > 0 {
		sb.WriteString("\n" + st.heading.Render("Days:") + "\n")
		for _, day := range sum.Days {
			sb.WriteString(fmt.Sprintf(" - %s: %s\n", format.Date(day.Date), c.formatDuration(day.TimeWorked)))
			for _, s := range day.Sessions {
				sb.WriteString(st.dim.Render(fmt.Sprintf("     %s-%s %s%s", format.Timestamp(s.Start), format.Timestamp(s.End), s.Job, tagList(s.Tags))))
				sb.WriteString(" " + c.formatDuration(s.Duration()) + "\n")
			}
		}
	}

	if len(sum.Jobs) > 0 {
		sb.WriteString("\n" + st.heading.Render("Jobs:") + "\n")
		for _, job := range sum.Jobs {
			sb.WriteString(fmt.Sprintf(" - %s: %s\n", job.Name, c.formatDuration(job.TimeWorked)))
		}
	}

	if len(sum.Tags) > 0 {
		sb.WriteString("\n" + st.heading.Render("Tags:") + "\n")
		for _, tag := range sum.Tags {
			sb.WriteString(fmt.Sprintf(" - %s: %s\n", tag.Name, c.formatDuration(tag.TimeWorked)))
		}
	}

	sb.WriteString("\nWorked: " + c.formatDuration(sum.TimeWorked) + "\n")

	if sum.Open != nil {
		o := sum.Open
		sb.WriteString(st.open.Render(fmt.Sprintf("Clocked in: %s%s since %s on %s (%s so far)",
			o.Job, tagList(o.Tags), format.Timestamp(o.Start), format.Date(o.Date), c.formatDuration(o.Elapsed))) + "\n")
	}

	return sb.String(), nil
}

func (c *Client) formatDuration(d stime.STime) string {
	return c.styles.duration.Render(format.Duration(d, c.TimeFormat))
}

func summaryPeriod(sum summary.Summary) string {
	if len(sum.Days) == 0 {
		return "no sessions"
	}

	first := format.Date(sum.Days[0].Date)
	last := format.Date(sum.Days[len(sum.Days)-1].Date)
	if first == last {
		return first
	}
	return first + " to " + last
}

func tagList(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	return " [" + strings.Join(tags, ", ") + "]"
}
