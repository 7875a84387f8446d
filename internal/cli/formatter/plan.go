package formatter

import (
	"fmt"
	"strings"

	"github.com/supervity/supervity/internal/planner"
)

const timeFormat = "Mon Jan 2 15:04"

// RenderPlan renders a synthesized study plan for the terminal. With plain
// set, no escape codes are emitted.
func RenderPlan(result *planner.StudyPlanResult, recommendations []string, plain bool) string {
	var b strings.Builder

	header := "Study Plan"
	if !plain {
		header = StyleHeader.Render(header)
	}
	b.WriteString(header + "\n\n")

	s := result.Summary
	b.WriteString(fmt.Sprintf("  overdue %d | urgent %d | upcoming %d | future %d\n",
		s.OverdueCount, s.UrgentCount, s.UpcomingCount, s.FutureCount))
	b.WriteString(fmt.Sprintf("  total work: %.1f hours\n\n", s.TotalHoursNeeded))

	if len(recommendations) > 0 {
		title := "Recommendations"
		if !plain {
			title = StyleHeader.Render(title)
		}
		b.WriteString(title + "\n")
		for _, line := range recommendations {
			b.WriteString("  - " + line + "\n")
		}
		b.WriteString("\n")
	}

	if len(result.Ranked) == 0 {
		done := "Nothing pending. Enjoy the free time."
		if !plain {
			done = StyleGreen.Render(done)
		}
		b.WriteString(done + "\n")
		return b.String()
	}

	title := "Assignments"
	if !plain {
		title = StyleHeader.Render(title)
	}
	b.WriteString(title + "\n")

	for _, r := range result.Ranked {
		b.WriteString(fmt.Sprintf("  %s  %s (%.1fh, due %s)\n",
			BucketIndicator(r.Bucket, plain),
			r.Assignment.Title,
			r.Assignment.EstimatedHours,
			r.Assignment.DueAt.Format(timeFormat)))
		for _, sess := range r.Sessions {
			line := fmt.Sprintf("      %s - %s", sess.Start.Format(timeFormat), sess.End.Format("15:04"))
			if plain {
				b.WriteString(line + "\n")
			} else {
				b.WriteString(StyleDim.Render(line) + "\n")
			}
		}
		if r.Underscheduled {
			warn := "      not enough time before the deadline"
			if plain {
				b.WriteString(warn + "\n")
			} else {
				b.WriteString(StyleYellow.Render(warn) + "\n")
			}
		}
	}

	return b.String()
}
