package postgres

import (
	"database/sql"

	"encore-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.ApplicationRepository
	repository.UserProfileRepository
	repository.TalentRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                    db,
		ApplicationRepository: NewApplicationRepository(db),
		UserProfileRepository: NewUserProfileRepository(db),
		TalentRepository:      NewTalentRepository(db),
	}
}
