package service

import (
	"context"
	"fmt"

	"encore-backend/internal/cache"
	"encore-backend/internal/domain"
	"encore-backend/internal/repository"
)

// talentService serves the public browse pages. Listings only change
// when a finalization lands, so they are cached per type and dropped on
// invalidation.
type talentService struct {
	talentRepo repository.TalentRepository
	listings   cache.Cache[string, any]
}

func NewTalentService(talentRepo repository.TalentRepository, listings cache.Cache[string, any]) TalentService {
	return &talentService{
		talentRepo: talentRepo,
		listings:   listings,
	}
}

func (s *talentService) ListArtists(ctx context.Context) ([]domain.ArtistProfile, error) {
	key := string(domain.ApplicationTypeArtist)
	if v, ok := s.listings.Get(key); ok {
		if cached, ok := v.([]domain.ArtistProfile); ok {
			return cached, nil
		}
	}
	profiles, err := s.talentRepo.ListArtists(ctx)
	if err != nil {
		return nil, fmt.Errorf("list artists: %w", err)
	}
	s.listings.Set(key, profiles)
	return profiles, nil
}

func (s *talentService) ListIndustryPros(ctx context.Context) ([]domain.IndustryProProfile, error) {
	key := string(domain.ApplicationTypeIndustry)
	if v, ok := s.listings.Get(key); ok {
		if cached, ok := v.([]domain.IndustryProProfile); ok {
			return cached, nil
		}
	}
	profiles, err := s.talentRepo.ListIndustryPros(ctx)
	if err != nil {
		return nil, fmt.Errorf("list industry pros: %w", err)
	}
	s.listings.Set(key, profiles)
	return profiles, nil
}

func (s *talentService) ListInstrumentalists(ctx context.Context) ([]domain.InstrumentalistProfile, error) {
	key := string(domain.ApplicationTypeInstrumentalist)
	if v, ok := s.listings.Get(key); ok {
		if cached, ok := v.([]domain.InstrumentalistProfile); ok {
			return cached, nil
		}
	}
	profiles, err := s.talentRepo.ListInstrumentalists(ctx)
	if err != nil {
		return nil, fmt.Errorf("list instrumentalists: %w", err)
	}
	s.listings.Set(key, profiles)
	return profiles, nil
}

func (s *talentService) InvalidateListings(appType domain.ApplicationType) {
	s.listings.Remove(string(appType))
}
