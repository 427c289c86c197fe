package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"encore-backend/internal/domain"
	"encore-backend/internal/repository"
)

type applicationRepository struct {
	db *sql.DB
}

func NewApplicationRepository(db *sql.DB) repository.ApplicationRepository {
	return &applicationRepository{db: db}
}

const applicationColumns = `id, user_id, application_type, status, note, form, photo_url,
	status_history, approved_profile, current_revision, finalized_at, finalized_by, created_at, updated_at`

func (r *applicationRepository) Create(ctx context.Context, app *domain.Application) error {
	if app.ID == "" {
		app.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if app.CreatedAt.IsZero() {
		app.CreatedAt = now
	}
	if app.UpdatedAt.IsZero() {
		app.UpdatedAt = now
	}

	form, history, approved, err := marshalApplicationJSON(app)
	if err != nil {
		return err
	}

	query := `INSERT INTO applications
		(id, user_id, application_type, status, note, form, photo_url, status_history,
		 approved_profile, current_revision, finalized_at, finalized_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err = r.db.ExecContext(ctx, query,
		app.ID, app.UserID, app.Type, app.Status, app.Note, form, nullString(app.PhotoURL),
		history, approved, app.CurrentRevision, app.FinalizedAt, app.FinalizedBy,
		app.CreatedAt, app.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert application: %w", err)
	}
	return nil
}

func (r *applicationRepository) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE id = $1`
	return scanApplication(r.db.QueryRowContext(ctx, query, id))
}

func (r *applicationRepository) GetDraft(ctx context.Context, userID string, appType domain.ApplicationType) (*domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications
		WHERE user_id = $1 AND application_type = $2 AND status = $3`
	return scanApplication(r.db.QueryRowContext(ctx, query, userID, appType, domain.ApplicationStatusDraft))
}

func (r *applicationRepository) Update(ctx context.Context, app *domain.Application) error {
	form, history, approved, err := marshalApplicationJSON(app)
	if err != nil {
		return err
	}

	query := `UPDATE applications SET
		status = $1, note = $2, form = $3, photo_url = $4, status_history = $5,
		approved_profile = $6, current_revision = $7, finalized_at = $8, finalized_by = $9, updated_at = $10
		WHERE id = $11`
	res, err := r.db.ExecContext(ctx, query,
		app.Status, app.Note, form, nullString(app.PhotoURL), history,
		approved, app.CurrentRevision, app.FinalizedAt, app.FinalizedBy, app.UpdatedAt, app.ID)
	if err != nil {
		return fmt.Errorf("update application: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *applicationRepository) List(ctx context.Context) ([]domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications ORDER BY created_at DESC`
	return r.queryApplications(ctx, query)
}

func (r *applicationRepository) ListByStatus(ctx context.Context, status domain.ApplicationStatus) ([]domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE status = $1 ORDER BY created_at DESC`
	return r.queryApplications(ctx, query, status)
}

func (r *applicationRepository) ListDraftsUpdatedBefore(ctx context.Context, cutoff time.Time) ([]domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications
		WHERE status = $1 AND updated_at < $2 ORDER BY updated_at`
	return r.queryApplications(ctx, query, domain.ApplicationStatusDraft, cutoff)
}

func (r *applicationRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM applications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete application: %w", err)
	}
	return nil
}

func (r *applicationRepository) queryApplications(ctx context.Context, query string, args ...any) ([]domain.Application, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query applications: %w", err)
	}
	defer rows.Close()

	var apps []domain.Application
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, *app)
	}
	return apps, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanApplication(row rowScanner) (*domain.Application, error) {
	var (
		app      domain.Application
		form     []byte
		photoURL sql.NullString
		history  []byte
		approved []byte
	)
	err := row.Scan(&app.ID, &app.UserID, &app.Type, &app.Status, &app.Note, &form, &photoURL,
		&history, &approved, &app.CurrentRevision, &app.FinalizedAt, &app.FinalizedBy,
		&app.CreatedAt, &app.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan application: %w", err)
	}

	app.PhotoURL = photoURL.String
	if len(form) > 0 {
		if err := json.Unmarshal(form, &app.Form); err != nil {
			return nil, fmt.Errorf("decode form: %w", err)
		}
	}
	if len(history) > 0 {
		if err := json.Unmarshal(history, &app.StatusHistory); err != nil {
			return nil, fmt.Errorf("decode status history: %w", err)
		}
	}
	if len(approved) > 0 {
		if err := json.Unmarshal(approved, &app.ApprovedProfile); err != nil {
			return nil, fmt.Errorf("decode approved profile: %w", err)
		}
	}
	return &app, nil
}

func marshalApplicationJSON(app *domain.Application) (form, history, approved []byte, err error) {
	if app.Form != nil {
		if form, err = json.Marshal(app.Form); err != nil {
			return nil, nil, nil, fmt.Errorf("encode form: %w", err)
		}
	}
	if history, err = json.Marshal(app.StatusHistory); err != nil {
		return nil, nil, nil, fmt.Errorf("encode status history: %w", err)
	}
	if app.ApprovedProfile != nil {
		if approved, err = json.Marshal(app.ApprovedProfile); err != nil {
			return nil, nil, nil, fmt.Errorf("encode approved profile: %w", err)
		}
	}
	return form, history, approved, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
