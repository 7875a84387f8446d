package domain

import "time"

// User is an opaque owner key for courses and assignments. Identity and
// authentication live outside this module; the engine only ever sees the id.
type User struct {
	ID        string
	Name      string
	Email     string
	CreatedAt time.Time
}
