package repository

import (
	"context"
	"errors"

	"github.com/supervity/supervity/internal/domain"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

type UserRepo interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	// Ensure creates the user row if it does not exist yet. The client
	// generates ids locally, so first contact may arrive on any endpoint.
	Ensure(ctx context.Context, id string) error
}

type CourseRepo interface {
	Create(ctx context.Context, c *domain.Course) error
	GetByID(ctx context.Context, id string) (*domain.Course, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Course, error)
	Update(ctx context.Context, c *domain.Course) error
	Delete(ctx context.Context, id string) error
}

type AssignmentRepo interface {
	Create(ctx context.Context, a *domain.Assignment) error
	GetByID(ctx context.Context, id string) (*domain.Assignment, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Assignment, error)
	// ListPendingByUser returns the non-completed assignments for one user,
	// ordered by due time then id: the snapshot the planner consumes.
	ListPendingByUser(ctx context.Context, userID string) ([]*domain.Assignment, error)
	Update(ctx context.Context, a *domain.Assignment) error
	Delete(ctx context.Context, id string) error
}
