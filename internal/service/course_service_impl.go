package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/supervity/supervity/internal/domain"
	"github.com/supervity/supervity/internal/repository"
)

type courseService struct {
	courses repository.CourseRepo
	users   repository.UserRepo
}

func NewCourseService(courses repository.CourseRepo, users repository.UserRepo) CourseService {
	return &courseService{courses: courses, users: users}
}

func (s *courseService) Create(ctx context.Context, c *domain.Course) error {
	if err := validateCourse(c); err != nil {
		return err
	}
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if err := s.users.Ensure(ctx, c.UserID); err != nil {
		return err
	}
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
	return s.courses.Create(ctx, c)
}

func (s *courseService) GetByID(ctx context.Context, id string) (*domain.Course, error) {
	return s.courses.GetByID(ctx, id)
}

func (s *courseService) ListByUser(ctx context.Context, userID string) ([]*domain.Course, error) {
	return s.courses.ListByUser(ctx, userID)
}

func (s *courseService) Update(ctx context.Context, c *domain.Course) error {
	if err := validateCourse(c); err != nil {
		return err
	}
	c.UpdatedAt = time.Now().UTC()
	return s.courses.Update(ctx, c)
}

func (s *courseService) Delete(ctx context.Context, id string) error {
	return s.courses.Delete(ctx, id)
}
