// Package intelligence renders the planner's structured outputs into
// user-facing text, preferring the LLM and falling back to deterministic
// templates when it is disabled or unreachable. The planning engine itself
// never produces prose; everything here sits outside it.
package intelligence

import (
	"context"
	"fmt"
	"strings"

	"github.com/supervity/supervity/internal/llm"
	"github.com/supervity/supervity/internal/planner"
)

// RecommendService turns advice items and plan aggregates into the
// recommendation strings the client renders.
type RecommendService interface {
	// Render returns the recommendation lines for one synthesized plan.
	// Source is "llm" or "deterministic".
	Render(ctx context.Context, summary planner.Summary, items []planner.AdviceItem) (lines []string, source string)
}

type recommendService struct {
	client   llm.Client
	observer llm.Observer
}

// NewRecommendService creates a RecommendService backed by an LLM client.
// A nil client renders deterministically only.
func NewRecommendService(client llm.Client, observer llm.Observer) RecommendService {
	if observer == nil {
		observer = llm.NoopObserver{}
	}
	return &recommendService{client: client, observer: observer}
}

func (s *recommendService) Render(ctx context.Context, summary planner.Summary, items []planner.AdviceItem) ([]string, string) {
	deterministic := DeterministicAdvice(items)

	if s.client == nil {
		return deterministic, "deterministic"
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskRecommend,
		SystemPrompt: recommendSystemPrompt,
		UserPrompt:   buildRecommendPrompt(summary, items),
	})
	if err != nil {
		return deterministic, "deterministic"
	}

	lines := splitRecommendationLines(resp.Text)
	if len(lines) == 0 {
		return deterministic, "deterministic"
	}
	return lines, "llm"
}

// DeterministicAdvice renders advice items with fixed templates. It is the
// offline fallback and the reference wording for tests.
func DeterministicAdvice(items []planner.AdviceItem) []string {
	var lines []string
	for _, item := range items {
		switch item.Code {
		case planner.AdviceOverdueFocus:
			lines = append(lines, fmt.Sprintf("Focus on your %d overdue assignment(s) first", item.Count))
		case planner.AdviceHeavyLoad:
			lines = append(lines, fmt.Sprintf("You have %.1f hours of work pending; reserve extra study time this week", item.Hours))
		case planner.AdviceUnderscheduled:
			lines = append(lines, fmt.Sprintf("Not enough time before the deadline for %q; %.1f hour(s) could not be scheduled", item.Title, item.Hours))
		case planner.AdviceBreakDownLarge:
			lines = append(lines, "Break down large assignments into smaller tasks")
		case planner.AdviceDueSoonReminder:
			lines = append(lines, fmt.Sprintf("%q is due within 24 hours", item.Title))
		case planner.AdvicePreferredHours:
			lines = append(lines, "Schedule study sessions during your preferred hours")
		}
	}
	return lines
}

// splitRecommendationLines normalizes free-form LLM output into a clean list.
func splitRecommendationLines(text string) []string {
	var lines []string
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		line = strings.TrimLeft(line, "-*0123456789. ")
		if line == "" || strings.HasPrefix(strings.ToLower(line), "recommendations") {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
