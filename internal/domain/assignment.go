package domain

import "time"

type Assignment struct {
	ID             string
	UserID         string
	CourseID       string
	Title          string
	Description    string
	DueAt          time.Time
	Priority       int // 1-5, user-declared importance
	EstimatedHours float64
	Status         AssignmentStatus
	Category       string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Pending reports whether the assignment still needs work.
func (a *Assignment) Pending() bool {
	return a.Status != AssignmentCompleted
}

// DaysUntilDue returns the fractional number of days between now and the due
// instant. Negative when the assignment is past due.
func (a *Assignment) DaysUntilDue(now time.Time) float64 {
	return a.DueAt.Sub(now).Hours() / 24
}

// ClampedPriority returns the priority forced into the 1-5 scale.
// Out-of-range values are clamped rather than rejected so scoring stays total.
func (a *Assignment) ClampedPriority() int {
	if a.Priority < PriorityMin {
		return PriorityMin
	}
	if a.Priority > PriorityMax {
		return PriorityMax
	}
	return a.Priority
}
