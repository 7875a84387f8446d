package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/supervity/supervity/internal/domain"
)

func TestSynthesize_EmptySnapshot(t *testing.T) {
	now := time.Date(2025, 10, 6, 12, 0, 0, 0, time.UTC)

	result := Synthesize(nil, now, DefaultConfig())

	assert.Equal(t, Summary{GeneratedAt: now}, result.Summary)
	assert.Empty(t, result.Ranked)
	assert.Empty(t, result.Suggestions)
}

func TestSynthesize_BucketCountsPartitionPending(t *testing.T) {
	now := time.Date(2025, 10, 6, 12, 0, 0, 0, time.UTC)

	assignments := []*domain.Assignment{
		pendingAssignment("a-1", now.Add(-24*time.Hour), 3, 2),    // overdue
		pendingAssignment("a-2", now.Add(24*time.Hour), 3, 3),     // urgent
		pendingAssignment("a-3", now.Add(2*24*time.Hour), 2, 1),   // urgent
		pendingAssignment("a-4", now.Add(7*24*time.Hour), 4, 4),   // upcoming
		pendingAssignment("a-5", now.Add(20*24*time.Hour), 1, 5),  // future
		pendingAssignment("a-6", now.Add(3*24*time.Hour), 3, 1.5), // urgent (inclusive bound)
	}
	completed := pendingAssignment("a-7", now.Add(24*time.Hour), 5, 8)
	completed.Status = domain.AssignmentCompleted
	assignments = append(assignments, completed)

	result := Synthesize(assignments, now, DefaultConfig())
	s := result.Summary

	assert.Equal(t, 1, s.OverdueCount)
	assert.Equal(t, 3, s.UrgentCount)
	assert.Equal(t, 1, s.UpcomingCount)
	assert.Equal(t, 1, s.FutureCount)

	// Non-overdue pending partition exactly into the three windows.
	assert.Equal(t, len(result.Ranked)-s.OverdueCount, s.UrgentCount+s.UpcomingCount+s.FutureCount)
	// Overdue merges into the display count only.
	assert.Equal(t, 4, s.DisplayUrgentCount())
	// Hours sum over everything pending, overdue included, completed excluded.
	assert.InDelta(t, 16.5, s.TotalHoursNeeded, 1e-9)
	assert.Len(t, result.Ranked, 6)
}

func TestSynthesize_OverdueTriggersAdvice(t *testing.T) {
	now := time.Date(2025, 10, 6, 12, 0, 0, 0, time.UTC)
	overdue := pendingAssignment("a-1", now.Add(-24*time.Hour), 3, 2)

	result := Synthesize([]*domain.Assignment{overdue}, now, DefaultConfig())

	require.Len(t, result.Ranked, 1)
	assert.Equal(t, domain.BucketOverdue, result.Ranked[0].Bucket)
	assert.Equal(t, 1, result.Summary.DisplayUrgentCount())

	rec := findRecommendation(t, result.Suggestions)
	assert.True(t, hasAdvice(rec, AdviceOverdueFocus))
}

func TestSynthesize_Deterministic(t *testing.T) {
	now := time.Date(2025, 10, 6, 12, 0, 0, 0, time.UTC)
	build := func() []*domain.Assignment {
		return []*domain.Assignment{
			pendingAssignment("a-1", now.Add(30*time.Hour), 4, 6),
			pendingAssignment("a-2", now.Add(-2*time.Hour), 2, 3),
			pendingAssignment("a-3", now.Add(9*24*time.Hour), 5, 1),
		}
	}

	first := Synthesize(build(), now, DefaultConfig())
	second := Synthesize(build(), now, DefaultConfig())

	assert.Equal(t, first, second)
}

func TestSynthesize_RankedSortedByScoreDescending(t *testing.T) {
	now := time.Date(2025, 10, 6, 12, 0, 0, 0, time.UTC)
	assignments := []*domain.Assignment{
		pendingAssignment("a-1", now.Add(16*24*time.Hour), 1, 2),
		pendingAssignment("a-2", now.Add(12*time.Hour), 5, 2),
		pendingAssignment("a-3", now.Add(6*24*time.Hour), 3, 2),
	}

	result := Synthesize(assignments, now, DefaultConfig())

	for i := 1; i < len(result.Ranked); i++ {
		assert.GreaterOrEqual(t, result.Ranked[i-1].Score, result.Ranked[i].Score)
	}
}

func TestSynthesize_SanitizesHostileConfig(t *testing.T) {
	now := time.Date(2025, 10, 6, 12, 0, 0, 0, time.UTC)
	a := pendingAssignment("a-1", now.Add(48*time.Hour), 3, 4)

	cfg := Config{UrgentDays: -3, UpcomingDays: -1, DailyStudyBudget: -5, MaxSessionLength: 0}
	result := Synthesize([]*domain.Assignment{a}, now, cfg)

	require.Len(t, result.Ranked, 1)
	assert.NotEmpty(t, result.Ranked[0].Sessions)
}

func findRecommendation(t *testing.T, suggestions []Suggestion) *Recommendation {
	t.Helper()
	for _, s := range suggestions {
		if s.Kind == KindRecommendation {
			require.NotNil(t, s.Recommendation)
			return s.Recommendation
		}
	}
	t.Fatal("no recommendation suggestion present")
	return nil
}

func hasAdvice(rec *Recommendation, code AdviceCode) bool {
	for _, item := range rec.Items {
		if item.Code == code {
			return true
		}
	}
	return false
}
