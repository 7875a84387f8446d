package planner

import (
	"time"

	"github.com/supervity/supervity/internal/domain"
)

// Summary is the aggregate workload view over one snapshot.
// Overdue stays its own count here; the wire contract folds it into the
// user-facing urgent count at the boundary.
type Summary struct {
	OverdueCount  int
	UrgentCount   int
	UpcomingCount int
	FutureCount   int

	// TotalHoursNeeded sums estimated hours over all non-completed
	// assignments, overdue included.
	TotalHoursNeeded float64

	GeneratedAt time.Time
}

// DisplayUrgentCount is the externally reported urgent count: overdue
// assignments require immediate action, so they are merged in for display.
func (s Summary) DisplayUrgentCount() int {
	return s.UrgentCount + s.OverdueCount
}

// Summarize folds ranked assignments into bucket counts and total hours.
// An empty snapshot produces a zero summary, not an error.
func Summarize(ranked []ScoredAssignment, now time.Time) Summary {
	s := Summary{GeneratedAt: now}
	for _, r := range ranked {
		switch r.Bucket {
		case domain.BucketOverdue:
			s.OverdueCount++
		case domain.BucketUrgent:
			s.UrgentCount++
		case domain.BucketUpcoming:
			s.UpcomingCount++
		default:
			s.FutureCount++
		}
		s.TotalHoursNeeded += r.Assignment.EstimatedHours
	}
	return s
}
