package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/supervity/supervity/internal/domain"
	"github.com/supervity/supervity/internal/planner"
)

func TestRenderPlan_Plain(t *testing.T) {
	now := time.Date(2025, 10, 6, 9, 0, 0, 0, time.UTC)
	result := &planner.StudyPlanResult{
		Summary: planner.Summary{
			OverdueCount:     1,
			UrgentCount:      1,
			TotalHoursNeeded: 5.5,
			GeneratedAt:      now,
		},
		Ranked: []planner.ScoredAssignment{
			{
				Assignment: &domain.Assignment{
					Title:          "Lab report",
					DueAt:          now.Add(-24 * time.Hour),
					EstimatedHours: 2,
				},
				Bucket:         domain.BucketOverdue,
				Underscheduled: true,
			},
			{
				Assignment: &domain.Assignment{
					Title:          "Problem set",
					DueAt:          now.Add(48 * time.Hour),
					EstimatedHours: 3.5,
				},
				Bucket: domain.BucketUrgent,
				Sessions: []planner.StudySession{
					{Start: now, End: now.Add(2 * time.Hour)},
				},
			},
		},
	}

	out := RenderPlan(result, []string{"Focus on your 1 overdue assignment(s) first"}, true)

	assert.Contains(t, out, "overdue 1 | urgent 1")
	assert.Contains(t, out, "total work: 5.5 hours")
	assert.Contains(t, out, "Focus on your 1 overdue assignment(s) first")
	assert.Contains(t, out, "● OVERDUE")
	assert.Contains(t, out, "● URGENT")
	assert.Contains(t, out, "not enough time before the deadline")
	assert.NotContains(t, out, "\x1b[", "plain output carries no escape codes")
}

func TestRenderPlan_EmptySnapshot(t *testing.T) {
	result := &planner.StudyPlanResult{
		Summary: planner.Summary{GeneratedAt: time.Now()},
	}

	out := RenderPlan(result, nil, true)

	assert.Contains(t, out, "Nothing pending")
}
