package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/supervity/supervity/internal/db"
	"github.com/supervity/supervity/internal/domain"
	"github.com/supervity/supervity/internal/repository"
)

func setupRepos(t *testing.T) (*repository.SQLiteUserRepo, *repository.SQLiteCourseRepo, *repository.SQLiteAssignmentRepo) {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return repository.NewSQLiteUserRepo(database),
		repository.NewSQLiteCourseRepo(database),
		repository.NewSQLiteAssignmentRepo(database)
}

func testAssignment(userID, title string, due time.Time, priority int, hours float64) *domain.Assignment {
	return &domain.Assignment{
		UserID:         userID,
		CourseID:       "",
		Title:          title,
		DueAt:          due,
		Priority:       priority,
		EstimatedHours: hours,
		Status:         domain.AssignmentPending,
	}
}
