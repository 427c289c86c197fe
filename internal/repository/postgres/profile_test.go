package postgres_test

import (
	"context"
	"testing"
	"time"

	"encore-backend/internal/repository"
	"encore-backend/internal/repository/postgres"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestUserProfileRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewUserProfileRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		appID := "app-1"
		rows := sqlmock.NewRows([]string{"user_id", "name", "email", "role", "has_applied", "application_id", "updated_at"}).
			AddRow("user-1", "Jo", "jo@test.com", "admin", true, &appID, time.Now())

		mock.ExpectQuery("SELECT (.+) FROM profiles WHERE user_id = \\$1").
			WithArgs("user-1").
			WillReturnRows(rows)

		p, err := repo.GetByID(ctx, "user-1")
		assert.NoError(t, err)
		assert.Equal(t, "admin", p.Role)
		assert.True(t, p.HasApplied)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM profiles WHERE user_id = \\$1").
			WithArgs("ghost").
			WillReturnRows(sqlmock.NewRows([]string{"user_id", "name", "email", "role", "has_applied", "application_id", "updated_at"}))

		p, err := repo.GetByID(ctx, "ghost")
		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.Nil(t, p)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserProfileRepository_MarkApplied(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewUserProfileRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE profiles SET has_applied = TRUE").
			WithArgs("app-1", sqlmock.AnyArg(), "user-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.MarkApplied(ctx, "user-1", "app-1"))
	})

	t.Run("MissingProfile", func(t *testing.T) {
		mock.ExpectExec("UPDATE profiles SET has_applied = TRUE").
			WithArgs("app-1", sqlmock.AnyArg(), "ghost").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.MarkApplied(ctx, "ghost", "app-1"), repository.ErrNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserProfileRepository_SetRole(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewUserProfileRepository(db)
	ctx := context.Background()

	mock.ExpectExec("UPDATE profiles SET role = \\$1").
		WithArgs("artist", sqlmock.AnyArg(), "user-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.SetRole(ctx, "user-1", "artist"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
