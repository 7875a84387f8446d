package planner

import (
	"sort"
	"time"

	"github.com/supervity/supervity/internal/domain"
)

// StudySession is one contiguous placed block of study time for an assignment.
type StudySession struct {
	AssignmentID string
	Start        time.Time
	End          time.Time
}

// Hours returns the session length in hours.
func (s StudySession) Hours() float64 {
	return s.End.Sub(s.Start).Hours()
}

// ScoredAssignment wraps an assignment with its computed bucket and score.
// Ephemeral: recomputed on every synthesis, never persisted.
type ScoredAssignment struct {
	Assignment   *domain.Assignment
	Bucket       domain.UrgencyBucket
	Score        float64
	DaysUntilDue float64

	// DueSoon marks assignments inside the 24h reminder window.
	DueSoon bool

	// Filled by PlanSessions.
	Sessions       []StudySession
	Underscheduled bool
}

// Score computes the composite priority score:
// urgency of the deadline, declared importance, and an overdue penalty term.
// Scoring never fails; out-of-range priorities are clamped.
func Score(a *domain.Assignment, bucket domain.UrgencyBucket, now time.Time, cfg Config) float64 {
	days := a.DaysUntilDue(now)

	urgency := 1 - days/float64(cfg.UpcomingDays)
	if urgency < 0 {
		urgency = 0
	}
	if urgency > 1 {
		urgency = 1
	}

	overdue := 0.0
	if bucket == domain.BucketOverdue {
		overdue = 1.0
	}

	return cfg.Weights.Urgency*urgency +
		cfg.Weights.Priority*float64(a.ClampedPriority())/float64(domain.PriorityMax) +
		cfg.Weights.Overdue*overdue
}

// Rank classifies and scores every non-completed assignment and returns them
// in canonical order: score descending, then earlier due date, then higher
// declared priority, then id. The ordering is fully deterministic so repeated
// synthesis over the same snapshot yields identical results.
func Rank(assignments []*domain.Assignment, now time.Time, cfg Config) []ScoredAssignment {
	ranked := make([]ScoredAssignment, 0, len(assignments))
	for _, a := range assignments {
		if !a.Pending() {
			continue
		}
		bucket := Classify(a, now, cfg)
		ranked = append(ranked, ScoredAssignment{
			Assignment:   a,
			Bucket:       bucket,
			Score:        Score(a, bucket, now, cfg),
			DaysUntilDue: a.DaysUntilDue(now),
			DueSoon:      a.DueAt.After(now) && !a.DueAt.After(now.Add(24*time.Hour)),
		})
	}
	canonicalSort(ranked)
	return ranked
}

func canonicalSort(ranked []ScoredAssignment) {
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if !a.Assignment.DueAt.Equal(b.Assignment.DueAt) {
			return a.Assignment.DueAt.Before(b.Assignment.DueAt)
		}
		if a.Assignment.Priority != b.Assignment.Priority {
			return a.Assignment.Priority > b.Assignment.Priority
		}
		return a.Assignment.ID < b.Assignment.ID
	})
}
