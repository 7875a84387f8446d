package intelligence

import (
	"fmt"
	"strings"

	"github.com/supervity/supervity/internal/contract"
	"github.com/supervity/supervity/internal/planner"
)

const recommendSystemPrompt = `You are a helpful study planning assistant for students. ` +
	`Given a summary of a student's workload, provide 3-5 concise, actionable recommendations. ` +
	`Reply with one recommendation per line and no preamble.`

const chatSystemPrompt = `You are a helpful study planning assistant for students. ` +
	`You help with time management, study tips, and academic planning.`

func buildRecommendPrompt(summary planner.Summary, items []planner.AdviceItem) string {
	var b strings.Builder
	fmt.Fprintf(&b, "The student has %d urgent assignment(s) (%d of them overdue), %d upcoming, and %d further out.\n",
		summary.DisplayUrgentCount(), summary.OverdueCount, summary.UpcomingCount, summary.FutureCount)
	fmt.Fprintf(&b, "Total hours of work needed: %.1f\n", summary.TotalHoursNeeded)

	for _, item := range items {
		switch item.Code {
		case planner.AdviceUnderscheduled:
			fmt.Fprintf(&b, "Assignment %q does not fit before its deadline (%.1f hour(s) unplaced).\n", item.Title, item.Hours)
		case planner.AdviceDueSoonReminder:
			fmt.Fprintf(&b, "Assignment %q is due within 24 hours.\n", item.Title)
		case planner.AdviceBreakDownLarge:
			b.WriteString("At least one assignment is large enough to need splitting into subtasks.\n")
		}
	}

	b.WriteString("\nRecommendations:")
	return b.String()
}

// buildChatPrompt flattens the recent conversation into a single prompt,
// keeping the last few turns for context.
func buildChatPrompt(messages []contract.ChatMessage) string {
	const maxTurns = 5

	start := 0
	if len(messages) > maxTurns {
		start = len(messages) - maxTurns
	}

	var b strings.Builder
	for _, msg := range messages[start:] {
		switch msg.Role {
		case "user":
			fmt.Fprintf(&b, "User: %s\n\n", msg.Content)
		case "assistant":
			fmt.Fprintf(&b, "Assistant: %s\n\n", msg.Content)
		}
	}
	b.WriteString("Assistant:")
	return b.String()
}
