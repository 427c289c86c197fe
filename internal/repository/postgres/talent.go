package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"encore-backend/internal/domain"
	"encore-backend/internal/repository"
)

// profileTables maps an application type to its destination profile
// table. Table names are only ever taken from this map, never from input.
var profileTables = map[domain.ApplicationType]string{
	domain.ApplicationTypeArtist:          "artists",
	domain.ApplicationTypeIndustry:        "industry_pros",
	domain.ApplicationTypeInstrumentalist: "instrumentalists",
}

type talentRepository struct {
	db *sql.DB
}

func NewTalentRepository(db *sql.DB) repository.TalentRepository {
	return &talentRepository{db: db}
}

func (r *talentRepository) HasProfile(ctx context.Context, appType domain.ApplicationType, userID string) (bool, error) {
	table, ok := profileTables[appType]
	if !ok {
		return false, fmt.Errorf("unknown application type %q", appType)
	}
	var one int
	query := fmt.Sprintf(`SELECT 1 FROM %s WHERE user_id = $1`, table)
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check existing profile: %w", err)
	}
	return true, nil
}

func (r *talentRepository) CreateArtist(ctx context.Context, p *domain.ArtistProfile) error {
	stampCreated(&p.CreatedAt)
	query := `INSERT INTO artists
		(user_id, name, email, bio, location, photo_url, profile_image_url, years_experience, social_links,
		 artist_type, genres, streaming_links, influences, current_needs, upcoming_shows, instagram_link, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.db.ExecContext(ctx, query,
		p.UserID, p.Name, p.Email, p.Bio, p.Location, nullString(p.PhotoURL), nullString(p.ProfileImageURL),
		p.YearsExperience, pq.Array(p.SocialLinks),
		p.ArtistType, pq.Array(p.Genres), pq.Array(p.StreamingLinks), pq.Array(p.Influences),
		pq.Array(p.CurrentNeeds), pq.Array(p.UpcomingShows), p.InstagramLink, p.CreatedAt)
	if err != nil {
		return mapInsertErr("insert artist profile", err)
	}
	return nil
}

func (r *talentRepository) CreateIndustryPro(ctx context.Context, p *domain.IndustryProProfile) error {
	stampCreated(&p.CreatedAt)
	query := `INSERT INTO industry_pros
		(user_id, name, email, bio, location, photo_url, profile_image_url, years_experience, social_links,
		 industry_role, company, favorite_artists, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.db.ExecContext(ctx, query,
		p.UserID, p.Name, p.Email, p.Bio, p.Location, nullString(p.PhotoURL), nullString(p.ProfileImageURL),
		p.YearsExperience, pq.Array(p.SocialLinks),
		p.IndustryRole, p.Company, pq.Array(p.FavoriteArtists), p.CreatedAt)
	if err != nil {
		return mapInsertErr("insert industry pro profile", err)
	}
	return nil
}

func (r *talentRepository) CreateInstrumentalist(ctx context.Context, p *domain.InstrumentalistProfile) error {
	stampCreated(&p.CreatedAt)
	query := `INSERT INTO instrumentalists
		(user_id, name, email, bio, location, photo_url, profile_image_url, years_experience, social_links,
		 instrument, favorite_genres, equipment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.db.ExecContext(ctx, query,
		p.UserID, p.Name, p.Email, p.Bio, p.Location, nullString(p.PhotoURL), nullString(p.ProfileImageURL),
		p.YearsExperience, pq.Array(p.SocialLinks),
		p.Instrument, pq.Array(p.FavoriteGenres), pq.Array(p.Equipment), p.CreatedAt)
	if err != nil {
		return mapInsertErr("insert instrumentalist profile", err)
	}
	return nil
}

const talentBaseColumns = `user_id, name, email, bio, location, COALESCE(photo_url, ''), COALESCE(profile_image_url, ''), years_experience, social_links`

func (r *talentRepository) ListArtists(ctx context.Context) ([]domain.ArtistProfile, error) {
	query := `SELECT ` + talentBaseColumns + `,
		artist_type, genres, streaming_links, influences, current_needs, upcoming_shows, instagram_link, created_at
		FROM artists ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list artists: %w", err)
	}
	defer rows.Close()

	var out []domain.ArtistProfile
	for rows.Next() {
		var p domain.ArtistProfile
		if err := rows.Scan(&p.UserID, &p.Name, &p.Email, &p.Bio, &p.Location, &p.PhotoURL, &p.ProfileImageURL,
			&p.YearsExperience, pq.Array(&p.SocialLinks),
			&p.ArtistType, pq.Array(&p.Genres), pq.Array(&p.StreamingLinks), pq.Array(&p.Influences),
			pq.Array(&p.CurrentNeeds), pq.Array(&p.UpcomingShows), &p.InstagramLink, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan artist profile: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *talentRepository) ListIndustryPros(ctx context.Context) ([]domain.IndustryProProfile, error) {
	query := `SELECT ` + talentBaseColumns + `,
		industry_role, company, favorite_artists, created_at
		FROM industry_pros ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list industry pros: %w", err)
	}
	defer rows.Close()

	var out []domain.IndustryProProfile
	for rows.Next() {
		var p domain.IndustryProProfile
		if err := rows.Scan(&p.UserID, &p.Name, &p.Email, &p.Bio, &p.Location, &p.PhotoURL, &p.ProfileImageURL,
			&p.YearsExperience, pq.Array(&p.SocialLinks),
			&p.IndustryRole, &p.Company, pq.Array(&p.FavoriteArtists), &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan industry pro profile: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *talentRepository) ListInstrumentalists(ctx context.Context) ([]domain.InstrumentalistProfile, error) {
	query := `SELECT ` + talentBaseColumns + `,
		instrument, favorite_genres, equipment, created_at
		FROM instrumentalists ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list instrumentalists: %w", err)
	}
	defer rows.Close()

	var out []domain.InstrumentalistProfile
	for rows.Next() {
		var p domain.InstrumentalistProfile
		if err := rows.Scan(&p.UserID, &p.Name, &p.Email, &p.Bio, &p.Location, &p.PhotoURL, &p.ProfileImageURL,
			&p.YearsExperience, pq.Array(&p.SocialLinks),
			&p.Instrument, pq.Array(&p.FavoriteGenres), pq.Array(&p.Equipment), &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan instrumentalist profile: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func stampCreated(t *time.Time) {
	if t.IsZero() {
		*t = time.Now().UTC()
	}
}

// mapInsertErr translates a Postgres unique violation into the
// repository-level duplicate-key sentinel.
func mapInsertErr(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return fmt.Errorf("%s: %w", op, repository.ErrDuplicateKey)
	}
	return fmt.Errorf("%s: %w", op, err)
}
