package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/supervity/supervity/internal/domain"
)

// SQLiteUserRepo implements UserRepo using a SQLite database.
type SQLiteUserRepo struct {
	db *sql.DB
}

// NewSQLiteUserRepo creates a new SQLiteUserRepo.
func NewSQLiteUserRepo(db *sql.DB) *SQLiteUserRepo {
	return &SQLiteUserRepo{db: db}
}

func (r *SQLiteUserRepo) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (id, name, email, created_at) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, u.ID, u.Name, u.Email, formatTime(u.CreatedAt))
	if err != nil {
		return fmt.Errorf("inserting user: %w", err)
	}
	return nil
}

func (r *SQLiteUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT id, name, email, created_at FROM users WHERE id = ?`
	var u domain.User
	var createdAt string
	err := r.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.Name, &u.Email, &createdAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("loading user: %w", err)
	}
	u.CreatedAt = parseTime(createdAt)
	return &u, nil
}

func (r *SQLiteUserRepo) Ensure(ctx context.Context, id string) error {
	query := `INSERT INTO users (id, name, email, created_at) VALUES (?, '', '', ?)
		ON CONFLICT(id) DO NOTHING`
	_, err := r.db.ExecContext(ctx, query, id, formatTime(time.Now().UTC()))
	if err != nil {
		return fmt.Errorf("ensuring user: %w", err)
	}
	return nil
}
