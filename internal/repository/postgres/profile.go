package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"encore-backend/internal/domain"
	"encore-backend/internal/repository"
)

type userProfileRepository struct {
	db *sql.DB
}

func NewUserProfileRepository(db *sql.DB) repository.UserProfileRepository {
	return &userProfileRepository{db: db}
}

func (r *userProfileRepository) GetByID(ctx context.Context, userID string) (*domain.UserProfile, error) {
	p := &domain.UserProfile{}
	query := `SELECT user_id, name, email, COALESCE(role, ''), has_applied, application_id, updated_at
		FROM profiles WHERE user_id = $1`
	err := r.db.QueryRowContext(ctx, query, userID).
		Scan(&p.UserID, &p.Name, &p.Email, &p.Role, &p.HasApplied, &p.ApplicationID, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return p, nil
}

func (r *userProfileRepository) MarkApplied(ctx context.Context, userID, applicationID string) error {
	query := `UPDATE profiles SET has_applied = TRUE, application_id = $1, updated_at = $2 WHERE user_id = $3`
	res, err := r.db.ExecContext(ctx, query, applicationID, time.Now().UTC(), userID)
	if err != nil {
		return fmt.Errorf("mark applied: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *userProfileRepository) SetRole(ctx context.Context, userID, role string) error {
	query := `UPDATE profiles SET role = $1, updated_at = $2 WHERE user_id = $3`
	res, err := r.db.ExecContext(ctx, query, role, time.Now().UTC(), userID)
	if err != nil {
		return fmt.Errorf("set role: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
