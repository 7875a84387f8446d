package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/supervity/supervity/internal/domain"
)

// SQLiteCourseRepo implements CourseRepo using a SQLite database.
type SQLiteCourseRepo struct {
	db *sql.DB
}

// NewSQLiteCourseRepo creates a new SQLiteCourseRepo.
func NewSQLiteCourseRepo(db *sql.DB) *SQLiteCourseRepo {
	return &SQLiteCourseRepo{db: db}
}

const courseColumns = `id, user_id, name, code, credits, instructor, semester, created_at, updated_at`

func (r *SQLiteCourseRepo) Create(ctx context.Context, c *domain.Course) error {
	query := `INSERT INTO courses (` + courseColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID, c.UserID, c.Name, c.Code, c.Credits, c.Instructor, c.Semester,
		formatTime(c.CreatedAt), formatTime(c.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting course: %w", err)
	}
	return nil
}

func (r *SQLiteCourseRepo) GetByID(ctx context.Context, id string) (*domain.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE id = ?`
	return r.scanCourse(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteCourseRepo) ListByUser(ctx context.Context, userID string) ([]*domain.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE user_id = ? ORDER BY code, id`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing courses: %w", err)
	}
	defer rows.Close()

	var courses []*domain.Course
	for rows.Next() {
		c, err := scanCourseRow(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating courses: %w", err)
	}
	return courses, nil
}

func (r *SQLiteCourseRepo) Update(ctx context.Context, c *domain.Course) error {
	query := `UPDATE courses SET name = ?, code = ?, credits = ?, instructor = ?, semester = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		c.Name, c.Code, c.Credits, c.Instructor, c.Semester, formatTime(c.UpdatedAt), c.ID,
	)
	if err != nil {
		return fmt.Errorf("updating course: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking course update: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("course: %w", ErrNotFound)
	}
	return nil
}

func (r *SQLiteCourseRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM courses WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting course: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking course delete: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("course: %w", ErrNotFound)
	}
	return nil
}

func (r *SQLiteCourseRepo) scanCourse(row *sql.Row) (*domain.Course, error) {
	var c domain.Course
	var createdAt, updatedAt string
	err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.Code, &c.Credits, &c.Instructor, &c.Semester, &createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("course: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning course: %w", err)
	}
	c.CreatedAt = parseTime(createdAt)
	c.UpdatedAt = parseTime(updatedAt)
	return &c, nil
}

func scanCourseRow(rows *sql.Rows) (*domain.Course, error) {
	var c domain.Course
	var createdAt, updatedAt string
	err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Code, &c.Credits, &c.Instructor, &c.Semester, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("scanning course: %w", err)
	}
	c.CreatedAt = parseTime(createdAt)
	c.UpdatedAt = parseTime(updatedAt)
	return &c, nil
}
