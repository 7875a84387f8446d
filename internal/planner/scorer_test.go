package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/supervity/supervity/internal/domain"
)

func pendingAssignment(id string, due time.Time, priority int, hours float64) *domain.Assignment {
	return &domain.Assignment{
		ID:             id,
		UserID:         "u-1",
		CourseID:       "c-1",
		Title:          "Assignment " + id,
		DueAt:          due,
		Priority:       priority,
		EstimatedHours: hours,
		Status:         domain.AssignmentPending,
	}
}

func TestScore_ImminentLowPriorityBeatsDistantHighPriority(t *testing.T) {
	now := time.Date(2025, 10, 6, 12, 0, 0, 0, time.UTC)
	cfg := DefaultConfig()

	imminent := pendingAssignment("a-1", now.Add(12*time.Hour), 1, 2)
	distant := pendingAssignment("a-2", now.Add(20*24*time.Hour), 5, 2)

	scoreImminent := Score(imminent, Classify(imminent, now, cfg), now, cfg)
	scoreDistant := Score(distant, Classify(distant, now, cfg), now, cfg)

	assert.Greater(t, scoreImminent, scoreDistant)
}

func TestScore_OverduePenaltyApplied(t *testing.T) {
	now := time.Date(2025, 10, 6, 12, 0, 0, 0, time.UTC)
	cfg := DefaultConfig()

	overdue := pendingAssignment("a-1", now.Add(-time.Hour), 3, 2)
	justDue := pendingAssignment("a-2", now.Add(time.Hour), 3, 2)

	so := Score(overdue, domain.BucketOverdue, now, cfg)
	sj := Score(justDue, domain.BucketUrgent, now, cfg)

	// Both have saturated urgency; the overdue term separates them.
	assert.InDelta(t, cfg.Weights.Overdue, so-sj, 0.01)
}

func TestScore_PriorityClampedNotRejected(t *testing.T) {
	now := time.Date(2025, 10, 6, 12, 0, 0, 0, time.UTC)
	cfg := DefaultConfig()

	tooHigh := pendingAssignment("a-1", now.Add(48*time.Hour), 99, 2)
	maxed := pendingAssignment("a-2", now.Add(48*time.Hour), 5, 2)
	tooLow := pendingAssignment("a-3", now.Add(48*time.Hour), -7, 2)
	floor := pendingAssignment("a-4", now.Add(48*time.Hour), 1, 2)

	assert.Equal(t, Score(maxed, domain.BucketUrgent, now, cfg), Score(tooHigh, domain.BucketUrgent, now, cfg))
	assert.Equal(t, Score(floor, domain.BucketUrgent, now, cfg), Score(tooLow, domain.BucketUrgent, now, cfg))
}

func TestRank_ExcludesCompleted(t *testing.T) {
	now := time.Date(2025, 10, 6, 12, 0, 0, 0, time.UTC)

	done := pendingAssignment("a-1", now.Add(24*time.Hour), 5, 3)
	done.Status = domain.AssignmentCompleted
	open := pendingAssignment("a-2", now.Add(24*time.Hour), 3, 3)
	inProgress := pendingAssignment("a-3", now.Add(24*time.Hour), 3, 3)
	inProgress.Status = domain.AssignmentInProgress

	ranked := Rank([]*domain.Assignment{done, open, inProgress}, now, DefaultConfig())

	require.Len(t, ranked, 2)
	for _, r := range ranked {
		assert.NotEqual(t, "a-1", r.Assignment.ID)
	}
}

func TestRank_DeterministicTieBreaks(t *testing.T) {
	now := time.Date(2025, 10, 6, 12, 0, 0, 0, time.UTC)
	due := now.Add(48 * time.Hour)

	// Overdue assignments saturate urgency, so two of them with the same
	// priority score identically and exercise the due-date tie-break.
	overdueEarlier := pendingAssignment("a-3", now.Add(-48*time.Hour), 3, 2)
	overdueLater := pendingAssignment("a-1", now.Add(-24*time.Hour), 3, 2)
	// Exact twins, distinct ids, exercise the final id tie-break.
	twinA := pendingAssignment("a-9", due, 3, 2)
	twinB := pendingAssignment("a-2", due, 3, 2)

	ranked := Rank([]*domain.Assignment{overdueLater, twinA, twinB, overdueEarlier}, now, DefaultConfig())

	require.Len(t, ranked, 4)
	// Earlier due date wins the score tie between the two overdue twins.
	assert.Equal(t, "a-3", ranked[0].Assignment.ID)
	assert.Equal(t, "a-1", ranked[1].Assignment.ID)
	// Exact twins fall back to id order.
	idx := map[string]int{}
	for i, r := range ranked {
		idx[r.Assignment.ID] = i
	}
	assert.Less(t, idx["a-2"], idx["a-9"])
}

func TestRank_FlagsDueSoon(t *testing.T) {
	now := time.Date(2025, 10, 6, 12, 0, 0, 0, time.UTC)

	soon := pendingAssignment("a-1", now.Add(23*time.Hour), 3, 2)
	notSoon := pendingAssignment("a-2", now.Add(25*time.Hour), 3, 2)
	past := pendingAssignment("a-3", now.Add(-time.Hour), 3, 2)

	ranked := Rank([]*domain.Assignment{soon, notSoon, past}, now, DefaultConfig())

	flags := map[string]bool{}
	for _, r := range ranked {
		flags[r.Assignment.ID] = r.DueSoon
	}
	assert.True(t, flags["a-1"])
	assert.False(t, flags["a-2"])
	assert.False(t, flags["a-3"], "overdue is not a reminder, it is an overdue warning")
}
