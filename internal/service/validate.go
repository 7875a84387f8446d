package service

import (
	"fmt"
	"strings"

	"github.com/supervity/supervity/internal/contract"
	"github.com/supervity/supervity/internal/domain"
)

// validateAssignment rejects malformed assignments before they reach storage.
// The planning engine assumes its snapshot is well-formed; this is the gate
// that makes that assumption hold.
func validateAssignment(a *domain.Assignment) error {
	if strings.TrimSpace(a.Title) == "" {
		return &contract.ValidationError{Field: "title", Message: "must not be empty"}
	}
	if a.UserID == "" {
		return &contract.ValidationError{Field: "user_id", Message: "must not be empty"}
	}
	if a.DueAt.IsZero() {
		return &contract.ValidationError{Field: "due_date", Message: "must be a valid timestamp"}
	}
	if a.Priority < domain.PriorityMin || a.Priority > domain.PriorityMax {
		return &contract.ValidationError{
			Field:   "priority",
			Message: fmt.Sprintf("must be between %d and %d", domain.PriorityMin, domain.PriorityMax),
		}
	}
	if a.EstimatedHours < 0 {
		return &contract.ValidationError{Field: "estimated_hours", Message: "must not be negative"}
	}
	if a.Status != "" && !domain.ValidAssignmentStatuses[string(a.Status)] {
		return &contract.ValidationError{
			Field:   "status",
			Message: fmt.Sprintf("unknown status %q", a.Status),
		}
	}
	if a.Category != "" && !domain.ValidCategories[a.Category] {
		return &contract.ValidationError{
			Field:   "category",
			Message: fmt.Sprintf("unknown category %q", a.Category),
		}
	}
	return nil
}

func validateCourse(c *domain.Course) error {
	if strings.TrimSpace(c.Name) == "" {
		return &contract.ValidationError{Field: "name", Message: "must not be empty"}
	}
	if strings.TrimSpace(c.Code) == "" {
		return &contract.ValidationError{Field: "code", Message: "must not be empty"}
	}
	if c.UserID == "" {
		return &contract.ValidationError{Field: "user_id", Message: "must not be empty"}
	}
	if c.Credits < 0 {
		return &contract.ValidationError{Field: "credits", Message: "must not be negative"}
	}
	return nil
}
