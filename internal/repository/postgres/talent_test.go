package postgres_test

import (
	"context"
	"testing"
	"time"

	"encore-backend/internal/domain"
	"encore-backend/internal/repository"
	"encore-backend/internal/repository/postgres"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestTalentRepository_HasProfile(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewTalentRepository(db)
	ctx := context.Background()

	t.Run("Exists", func(t *testing.T) {
		mock.ExpectQuery("SELECT 1 FROM artists WHERE user_id = \\$1").
			WithArgs("user-1").
			WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

		exists, err := repo.HasProfile(ctx, domain.ApplicationTypeArtist, "user-1")
		assert.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("Absent", func(t *testing.T) {
		mock.ExpectQuery("SELECT 1 FROM industry_pros WHERE user_id = \\$1").
			WithArgs("user-2").
			WillReturnRows(sqlmock.NewRows([]string{"?column?"}))

		exists, err := repo.HasProfile(ctx, domain.ApplicationTypeIndustry, "user-2")
		assert.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("UnknownType", func(t *testing.T) {
		_, err := repo.HasProfile(ctx, "producer", "user-3")
		assert.Error(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTalentRepository_CreateArtist(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewTalentRepository(db)
	ctx := context.Background()

	profile := func() *domain.ArtistProfile {
		return &domain.ArtistProfile{
			TalentProfile: domain.TalentProfile{
				UserID:      "user-1",
				Name:        "The Larks",
				Email:       "larks@test.com",
				SocialLinks: []string{},
			},
			ArtistType:     "band",
			Genres:         []string{"indie"},
			StreamingLinks: []string{},
			Influences:     []string{},
			CurrentNeeds:   []string{},
			UpcomingShows:  []string{},
		}
	}

	t.Run("Success", func(t *testing.T) {
		p := profile()
		mock.ExpectExec("INSERT INTO artists").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.CreateArtist(ctx, p))
		assert.False(t, p.CreatedAt.IsZero())
	})

	t.Run("UniqueViolation", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO artists").
			WillReturnError(&pq.Error{Code: "23505"})

		err := repo.CreateArtist(ctx, profile())
		assert.ErrorIs(t, err, repository.ErrDuplicateKey)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTalentRepository_ListInstrumentalists(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewTalentRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{
		"user_id", "name", "email", "bio", "location", "photo_url", "profile_image_url",
		"years_experience", "social_links", "instrument", "favorite_genres", "equipment", "created_at",
	}).AddRow(
		"user-1", "Jo", "jo@test.com", "plays bass", "Berlin", "", "",
		nil, "{}", "bass", `{"jazz","funk"}`, "{}", time.Now(),
	)

	mock.ExpectQuery("SELECT (.+) FROM instrumentalists ORDER BY created_at DESC").
		WillReturnRows(rows)

	out, err := repo.ListInstrumentalists(ctx)
	assert.NoError(t, err)
	if assert.Len(t, out, 1) {
		assert.Equal(t, "bass", out[0].Instrument)
		assert.Equal(t, []string{"jazz", "funk"}, out[0].FavoriteGenres)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}
