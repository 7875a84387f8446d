package service

import (
	"context"

	"github.com/supervity/supervity/internal/contract"
	"github.com/supervity/supervity/internal/domain"
)

type UserService interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

type CourseService interface {
	Create(ctx context.Context, c *domain.Course) error
	GetByID(ctx context.Context, id string) (*domain.Course, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Course, error)
	Update(ctx context.Context, c *domain.Course) error
	Delete(ctx context.Context, id string) error
}

type AssignmentService interface {
	Create(ctx context.Context, a *domain.Assignment) error
	GetByID(ctx context.Context, id string) (*domain.Assignment, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Assignment, error)
	Update(ctx context.Context, a *domain.Assignment) error
	Delete(ctx context.Context, id string) error
}

// PlanService synthesizes a study plan for one user from their pending
// assignments and renders it into the wire contract.
type PlanService interface {
	Plan(ctx context.Context, userID string) (*contract.PlanResponse, error)
	Health(ctx context.Context) contract.AgentHealth
}
