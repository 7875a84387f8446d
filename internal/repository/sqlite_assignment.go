package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/supervity/supervity/internal/domain"
)

// SQLiteAssignmentRepo implements AssignmentRepo using a SQLite database.
type SQLiteAssignmentRepo struct {
	db *sql.DB
}

// NewSQLiteAssignmentRepo creates a new SQLiteAssignmentRepo.
func NewSQLiteAssignmentRepo(db *sql.DB) *SQLiteAssignmentRepo {
	return &SQLiteAssignmentRepo{db: db}
}

const assignmentColumns = `id, user_id, course_id, title, description, due_at, priority, estimated_hours, status, category, created_at, updated_at`

func (r *SQLiteAssignmentRepo) Create(ctx context.Context, a *domain.Assignment) error {
	query := `INSERT INTO assignments (` + assignmentColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		a.ID, a.UserID, a.CourseID, a.Title, a.Description,
		formatTime(a.DueAt), a.Priority, a.EstimatedHours, string(a.Status), a.Category,
		formatTime(a.CreatedAt), formatTime(a.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting assignment: %w", err)
	}
	return nil
}

func (r *SQLiteAssignmentRepo) GetByID(ctx context.Context, id string) (*domain.Assignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM assignments WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var a domain.Assignment
	var dueAt, status, createdAt, updatedAt string
	err := row.Scan(&a.ID, &a.UserID, &a.CourseID, &a.Title, &a.Description,
		&dueAt, &a.Priority, &a.EstimatedHours, &status, &a.Category, &createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("assignment: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning assignment: %w", err)
	}
	a.DueAt = parseTime(dueAt)
	a.Status = domain.AssignmentStatus(status)
	a.CreatedAt = parseTime(createdAt)
	a.UpdatedAt = parseTime(updatedAt)
	return &a, nil
}

func (r *SQLiteAssignmentRepo) ListByUser(ctx context.Context, userID string) ([]*domain.Assignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM assignments
		WHERE user_id = ? ORDER BY due_at, id`
	return r.list(ctx, query, userID)
}

func (r *SQLiteAssignmentRepo) ListPendingByUser(ctx context.Context, userID string) ([]*domain.Assignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM assignments
		WHERE user_id = ? AND status != 'completed' ORDER BY due_at, id`
	return r.list(ctx, query, userID)
}

func (r *SQLiteAssignmentRepo) Update(ctx context.Context, a *domain.Assignment) error {
	query := `UPDATE assignments
		SET course_id = ?, title = ?, description = ?, due_at = ?, priority = ?,
		    estimated_hours = ?, status = ?, category = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		a.CourseID, a.Title, a.Description, formatTime(a.DueAt), a.Priority,
		a.EstimatedHours, string(a.Status), a.Category, formatTime(a.UpdatedAt), a.ID,
	)
	if err != nil {
		return fmt.Errorf("updating assignment: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking assignment update: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("assignment: %w", ErrNotFound)
	}
	return nil
}

func (r *SQLiteAssignmentRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM assignments WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting assignment: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking assignment delete: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("assignment: %w", ErrNotFound)
	}
	return nil
}

func (r *SQLiteAssignmentRepo) list(ctx context.Context, query string, args ...any) ([]*domain.Assignment, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing assignments: %w", err)
	}
	defer rows.Close()

	var assignments []*domain.Assignment
	for rows.Next() {
		var a domain.Assignment
		var dueAt, status, createdAt, updatedAt string
		err := rows.Scan(&a.ID, &a.UserID, &a.CourseID, &a.Title, &a.Description,
			&dueAt, &a.Priority, &a.EstimatedHours, &status, &a.Category, &createdAt, &updatedAt)
		if err != nil {
			return nil, fmt.Errorf("scanning assignment: %w", err)
		}
		a.DueAt = parseTime(dueAt)
		a.Status = domain.AssignmentStatus(status)
		a.CreatedAt = parseTime(createdAt)
		a.UpdatedAt = parseTime(updatedAt)
		assignments = append(assignments, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating assignments: %w", err)
	}
	return assignments, nil
}
