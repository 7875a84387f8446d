package domain

import "time"

type Course struct {
	ID         string
	UserID     string
	Name       string
	Code       string
	Credits    int
	Instructor string
	Semester   string

	CreatedAt time.Time
	UpdatedAt time.Time
}
