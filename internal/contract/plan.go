// Package contract defines the wire shapes of the HTTP boundary. Field names
// follow the client contract exactly: snake_case JSON, ISO8601 instants, and
// a type-discriminated suggestions array.
package contract

import (
	"encoding/json"
	"fmt"
	"time"
)

// StudyPlan is the aggregate summary block of a plan response. UrgentCount
// already includes overdue assignments; OverdueCount reports them separately
// as well so clients can warn explicitly.
type StudyPlan struct {
	OverdueCount     int     `json:"overdue_count"`
	UrgentCount      int     `json:"urgent_count"`
	UpcomingCount    int     `json:"upcoming_count"`
	FutureCount      int     `json:"future_count"`
	TotalHoursNeeded float64 `json:"total_hours_needed"`
}

// AssignmentPayload is the assignment shape consumed and produced over HTTP.
type AssignmentPayload struct {
	ID             string     `json:"id"`
	UserID         string     `json:"user_id"`
	CourseID       string     `json:"course_id"`
	Title          string     `json:"title"`
	Description    string     `json:"description,omitempty"`
	DueDate        time.Time  `json:"due_date"`
	Priority       int        `json:"priority"`
	EstimatedHours float64    `json:"estimated_hours"`
	Status         string     `json:"status"`
	Category       string     `json:"category,omitempty"`
	CreatedAt      *time.Time `json:"created_at,omitempty"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}

const (
	SuggestionTypeRecommendations = "recommendations"
	SuggestionTypeAssignment      = "assignment"
)

// Suggestion is the wire form of the plan suggestion union. Exactly one
// variant is populated, selected by Type.
type Suggestion struct {
	Type string

	// recommendations variant
	Content []string

	// assignment variant
	AssignmentID   string
	Title          string
	EstimatedHours float64
	SuggestedTimes []time.Time
	Underscheduled bool
}

// suggestionJSON is the flattened encoding shared by both variants.
type suggestionJSON struct {
	Type           string      `json:"type"`
	Content        []string    `json:"content,omitempty"`
	AssignmentID   string      `json:"assignment_id,omitempty"`
	Title          string      `json:"title,omitempty"`
	EstimatedHours float64     `json:"estimated_hours,omitempty"`
	SuggestedTimes []time.Time `json:"suggested_times,omitempty"`
	Underscheduled bool        `json:"underscheduled,omitempty"`
}

func (s Suggestion) MarshalJSON() ([]byte, error) {
	switch s.Type {
	case SuggestionTypeRecommendations:
		return json.Marshal(suggestionJSON{Type: s.Type, Content: s.Content})
	case SuggestionTypeAssignment:
		return json.Marshal(suggestionJSON{
			Type:           s.Type,
			AssignmentID:   s.AssignmentID,
			Title:          s.Title,
			EstimatedHours: s.EstimatedHours,
			SuggestedTimes: s.SuggestedTimes,
			Underscheduled: s.Underscheduled,
		})
	default:
		return nil, fmt.Errorf("unknown suggestion type %q", s.Type)
	}
}

func (s *Suggestion) UnmarshalJSON(data []byte) error {
	var raw suggestionJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch raw.Type {
	case SuggestionTypeRecommendations:
		*s = Suggestion{Type: raw.Type, Content: raw.Content}
	case SuggestionTypeAssignment:
		*s = Suggestion{
			Type:           raw.Type,
			AssignmentID:   raw.AssignmentID,
			Title:          raw.Title,
			EstimatedHours: raw.EstimatedHours,
			SuggestedTimes: raw.SuggestedTimes,
			Underscheduled: raw.Underscheduled,
		}
	default:
		return fmt.Errorf("unknown suggestion type %q", raw.Type)
	}
	return nil
}

// PlanResponse is the body of POST /agent/plan/{userId}.
type PlanResponse struct {
	UserID      string              `json:"user_id"`
	StudyPlan   StudyPlan           `json:"study_plan"`
	Suggestions []Suggestion        `json:"suggestions"`
	Assignments []AssignmentPayload `json:"assignments"`
	GeneratedAt time.Time           `json:"generated_at"`
}

type PlanErrorCode string

const (
	ErrUserNotFound  PlanErrorCode = "USER_NOT_FOUND"
	ErrSnapshotLoad  PlanErrorCode = "SNAPSHOT_LOAD"
	ErrInternalError PlanErrorCode = "INTERNAL_ERROR"
)

type PlanError struct {
	Code    PlanErrorCode
	Message string
}

func (e *PlanError) Error() string {
	return string(e.Code) + ": " + e.Message
}
