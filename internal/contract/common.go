package contract

import "time"

// ErrorBody is the structured error envelope every failing endpoint returns.
// Clients surface Detail as a visible, dismissible message.
type ErrorBody struct {
	Detail string `json:"detail"`
}

// ValidationError reports a rejected field at the persistence boundary.
// Malformed input is caught here so the planning engine never sees it.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return "validation: " + e.Field + ": " + e.Message
}

// CoursePayload is the course shape consumed and produced over HTTP.
type CoursePayload struct {
	ID         string     `json:"id"`
	UserID     string     `json:"user_id"`
	Name       string     `json:"name"`
	Code       string     `json:"code"`
	Credits    int        `json:"credits"`
	Instructor string     `json:"instructor,omitempty"`
	Semester   string     `json:"semester"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

// UserPayload is the user shape for POST /users.
type UserPayload struct {
	ID        string     `json:"id"`
	Name      string     `json:"name,omitempty"`
	Email     string     `json:"email,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}
