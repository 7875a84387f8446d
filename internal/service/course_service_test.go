package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supervity/supervity/internal/contract"
	"github.com/supervity/supervity/internal/domain"
)

func testCourse(userID, name, code string) *domain.Course {
	return &domain.Course{
		UserID:   userID,
		Name:     name,
		Code:     code,
		Credits:  3,
		Semester: "Fall 2025",
	}
}

func TestCourseCreate_EnsuresUser(t *testing.T) {
	ctx := context.Background()
	users, courses, _ := setupRepos(t)
	svc := NewCourseService(courses, users)

	c := testCourse("u-9", "Linear Algebra", "MATH204")
	require.NoError(t, svc.Create(ctx, c))

	assert.NotEmpty(t, c.ID)
	_, err := users.GetByID(ctx, "u-9")
	require.NoError(t, err)
}

func TestCourseCreate_ValidationRejects(t *testing.T) {
	ctx := context.Background()
	users, courses, _ := setupRepos(t)
	svc := NewCourseService(courses, users)

	cases := []struct {
		name   string
		mutate func(c *domain.Course)
		field  string
	}{
		{"empty name", func(c *domain.Course) { c.Name = "" }, "name"},
		{"empty code", func(c *domain.Course) { c.Code = " " }, "code"},
		{"missing user", func(c *domain.Course) { c.UserID = "" }, "user_id"},
		{"negative credits", func(c *domain.Course) { c.Credits = -2 }, "credits"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := testCourse("u-1", "Physics I", "PHYS101")
			tc.mutate(c)

			err := svc.Create(ctx, c)

			var vErr *contract.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tc.field, vErr.Field)
		})
	}
}

func TestCourseUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	users, courses, _ := setupRepos(t)
	svc := NewCourseService(courses, users)

	c := testCourse("u-1", "Chemistry", "CHEM110")
	require.NoError(t, svc.Create(ctx, c))

	c.Instructor = "Dr. Okafor"
	require.NoError(t, svc.Update(ctx, c))

	stored, err := svc.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dr. Okafor", stored.Instructor)

	require.NoError(t, svc.Delete(ctx, c.ID))
	_, err = svc.GetByID(ctx, c.ID)
	assert.Error(t, err)
}
