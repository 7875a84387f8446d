package planner

import (
	"time"

	"github.com/supervity/supervity/internal/domain"
)

// Classify buckets a pending assignment by time-to-due. Boundaries are
// inclusive on the lower bound of each window: an assignment due in exactly
// UrgentDays days is urgent, not upcoming.
//
// Completed assignments never reach this function; callers filter them first.
func Classify(a *domain.Assignment, now time.Time, cfg Config) domain.UrgencyBucket {
	days := a.DaysUntilDue(now)
	switch {
	case days < 0:
		return domain.BucketOverdue
	case days <= float64(cfg.UrgentDays):
		return domain.BucketUrgent
	case days <= float64(cfg.UpcomingDays):
		return domain.BucketUpcoming
	default:
		return domain.BucketFuture
	}
}
