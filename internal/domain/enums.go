package domain

type AssignmentStatus string

const (
	AssignmentPending    AssignmentStatus = "pending"
	AssignmentInProgress AssignmentStatus = "in_progress"
	AssignmentCompleted  AssignmentStatus = "completed"
)

// ValidAssignmentStatuses is the canonical set of accepted status strings.
var ValidAssignmentStatuses = map[string]bool{
	"pending": true, "in_progress": true, "completed": true,
}

// ValidCategories is the canonical set of accepted assignment category strings.
// Category is optional; the empty string is always allowed.
var ValidCategories = map[string]bool{
	"homework": true, "exam": true, "project": true,
	"quiz": true, "reading": true, "lab": true, "essay": true,
}

type UrgencyBucket string

const (
	BucketOverdue  UrgencyBucket = "overdue"
	BucketUrgent   UrgencyBucket = "urgent"
	BucketUpcoming UrgencyBucket = "upcoming"
	BucketFuture   UrgencyBucket = "future"
)

const (
	// PriorityMin and PriorityMax bound the user-declared importance scale.
	PriorityMin = 1
	PriorityMax = 5
)
