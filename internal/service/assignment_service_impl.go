package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/supervity/supervity/internal/domain"
	"github.com/supervity/supervity/internal/repository"
)

type assignmentService struct {
	assignments repository.AssignmentRepo
	users       repository.UserRepo
}

func NewAssignmentService(assignments repository.AssignmentRepo, users repository.UserRepo) AssignmentService {
	return &assignmentService{assignments: assignments, users: users}
}

func (s *assignmentService) Create(ctx context.Context, a *domain.Assignment) error {
	if a.Status == "" {
		a.Status = domain.AssignmentPending
	}
	if err := validateAssignment(a); err != nil {
		return err
	}
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if err := s.users.Ensure(ctx, a.UserID); err != nil {
		return err
	}
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now
	return s.assignments.Create(ctx, a)
}

func (s *assignmentService) GetByID(ctx context.Context, id string) (*domain.Assignment, error) {
	return s.assignments.GetByID(ctx, id)
}

func (s *assignmentService) ListByUser(ctx context.Context, userID string) ([]*domain.Assignment, error) {
	return s.assignments.ListByUser(ctx, userID)
}

func (s *assignmentService) Update(ctx context.Context, a *domain.Assignment) error {
	if err := validateAssignment(a); err != nil {
		return err
	}
	a.UpdatedAt = time.Now().UTC()
	return s.assignments.Update(ctx, a)
}

func (s *assignmentService) Delete(ctx context.Context, id string) error {
	return s.assignments.Delete(ctx, id)
}
