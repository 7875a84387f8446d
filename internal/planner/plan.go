// Package planner implements the study-plan synthesis engine: urgency
// classification, workload aggregation, priority scoring, budgeted session
// placement, and structured suggestion assembly. Everything here is a pure
// function of the assignment snapshot, the injected reference instant, and
// the Config; the package holds no state and touches no clock, database, or
// network.
package planner

import (
	"time"

	"github.com/supervity/supervity/internal/domain"
)

// StudyPlanResult is the full output of one synthesis. Entirely derived and
// call-local; callers own the snapshot the assignments point into.
type StudyPlanResult struct {
	Summary     Summary
	Ranked      []ScoredAssignment
	Suggestions []Suggestion
}

// Synthesize runs the whole pipeline: classify, score and rank, aggregate,
// place sessions, compose suggestions. Completed assignments are excluded
// from every stage. Identical (assignments, now, cfg) inputs always produce
// identical results; the only timestamp in the output is the injected now.
func Synthesize(assignments []*domain.Assignment, now time.Time, cfg Config) *StudyPlanResult {
	cfg = cfg.Sanitized()

	ranked := Rank(assignments, now, cfg)
	summary := Summarize(ranked, now)
	PlanSessions(ranked, now, cfg)

	return &StudyPlanResult{
		Summary:     summary,
		Ranked:      ranked,
		Suggestions: Compose(summary, ranked, cfg),
	}
}
