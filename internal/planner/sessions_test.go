package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/supervity/supervity/internal/domain"
)

func TestPlanSessions_SplitsAcrossConsecutiveDays(t *testing.T) {
	now := time.Date(2025, 10, 6, 12, 0, 0, 0, time.UTC)
	a := pendingAssignment("a-1", now.Add(48*time.Hour), 3, 4)
	cfg := DefaultConfig() // max session 2h, daily budget 4h

	ranked := Rank([]*domain.Assignment{a}, now, cfg)
	require.Len(t, ranked, 1)
	assert.Equal(t, domain.BucketUrgent, ranked[0].Bucket)

	PlanSessions(ranked, now, cfg)

	sessions := ranked[0].Sessions
	require.Len(t, sessions, 2, "4h at 2h/session splits over two days")
	assert.False(t, ranked[0].Underscheduled)

	// One session per day, chronological, each exactly two hours.
	assert.Equal(t, 2.0, sessions[0].Hours())
	assert.Equal(t, 2.0, sessions[1].Hours())
	assert.True(t, sessions[0].End.Before(sessions[1].Start) || sessions[0].End.Equal(sessions[1].Start))
	assert.NotEqual(t, sessions[0].Start.Day(), sessions[1].Start.Day())
	assert.False(t, sessions[1].End.After(a.DueAt), "last session must end at or before the deadline")
}

func TestPlanSessions_UnderscheduledWhenBudgetTooSmall(t *testing.T) {
	now := time.Date(2025, 10, 6, 12, 0, 0, 0, time.UTC)
	a := pendingAssignment("a-1", now.Add(24*time.Hour), 3, 10)
	cfg := DefaultConfig()

	ranked := Rank([]*domain.Assignment{a}, now, cfg)
	PlanSessions(ranked, now, cfg)

	require.True(t, ranked[0].Underscheduled)

	placed := placedHours(ranked[0].Sessions)
	assert.Less(t, placed, 10.0)
	assert.LessOrEqual(t, placed, cfg.DailyStudyBudget*2, "at most the budget over the two walkable days")
	for _, s := range ranked[0].Sessions {
		assert.False(t, s.End.After(a.DueAt), "no session fabricated past the due time")
	}
}

func TestPlanSessions_OverdueGetsNoSessions(t *testing.T) {
	now := time.Date(2025, 10, 6, 12, 0, 0, 0, time.UTC)
	a := pendingAssignment("a-1", now.Add(-24*time.Hour), 3, 3)

	ranked := Rank([]*domain.Assignment{a}, now, DefaultConfig())
	PlanSessions(ranked, now, DefaultConfig())

	assert.Empty(t, ranked[0].Sessions)
	assert.True(t, ranked[0].Underscheduled)
}

func TestPlanSessions_SharedDailyBudgetAcrossAssignments(t *testing.T) {
	now := time.Date(2025, 10, 6, 9, 30, 0, 0, time.UTC)
	due := now.Add(24 * time.Hour)
	cfg := DefaultConfig()

	// Three assignments of 2h each against a 4h daily budget: only two fit today.
	as := []*domain.Assignment{
		pendingAssignment("a-1", due, 5, 2),
		pendingAssignment("a-2", due, 4, 2),
		pendingAssignment("a-3", due, 3, 2),
	}
	ranked := Rank(as, now, cfg)
	PlanSessions(ranked, now, cfg)

	perDay := map[string]float64{}
	for _, r := range ranked {
		for _, s := range r.Sessions {
			perDay[s.Start.Format("2006-01-02")] += s.Hours()
		}
	}
	for day, total := range perDay {
		assert.LessOrEqual(t, total, cfg.DailyStudyBudget, "day %s over budget", day)
	}
}

func TestPlanSessions_HigherScoreClaimsTimelineFirst(t *testing.T) {
	now := time.Date(2025, 10, 6, 12, 0, 0, 0, time.UTC)
	cfg := DefaultConfig()

	urgent := pendingAssignment("a-1", now.Add(24*time.Hour), 5, 2)
	relaxed := pendingAssignment("a-2", now.Add(10*24*time.Hour), 1, 2)

	ranked := Rank([]*domain.Assignment{relaxed, urgent}, now, cfg)
	require.Equal(t, "a-1", ranked[0].Assignment.ID)
	PlanSessions(ranked, now, cfg)

	require.NotEmpty(t, ranked[0].Sessions)
	require.NotEmpty(t, ranked[1].Sessions)
	assert.True(t, ranked[0].Sessions[0].Start.Before(ranked[1].Sessions[0].Start),
		"the higher-scored assignment takes the earliest free offset")
}

func TestPlanSessions_EarlyMorningWaitsForDayStart(t *testing.T) {
	now := time.Date(2025, 10, 6, 2, 0, 0, 0, time.UTC)
	a := pendingAssignment("a-1", now.Add(24*time.Hour), 3, 2)
	cfg := DefaultConfig()

	ranked := Rank([]*domain.Assignment{a}, now, cfg)
	PlanSessions(ranked, now, cfg)

	require.NotEmpty(t, ranked[0].Sessions)
	first := ranked[0].Sessions[0]
	assert.Equal(t, cfg.DayStartHour, first.Start.Hour())
	assert.True(t, first.Start.After(now))
}

func TestPlanSessions_ZeroEstimateGetsNoSessions(t *testing.T) {
	now := time.Date(2025, 10, 6, 12, 0, 0, 0, time.UTC)
	a := pendingAssignment("a-1", now.Add(48*time.Hour), 3, 0)

	ranked := Rank([]*domain.Assignment{a}, now, DefaultConfig())
	PlanSessions(ranked, now, DefaultConfig())

	assert.Empty(t, ranked[0].Sessions)
	assert.False(t, ranked[0].Underscheduled)
}
