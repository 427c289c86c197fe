package service

import (
	"time"

	"encore-backend/internal/domain"
)

// The Build*Profile functions construct the row inserted into a
// destination profile table from the admin-approved payload. Missing
// fields default to empty strings; sequence fields default to empty
// sequences. The tolerant comma-splitting for free-text list fields
// happens at JSON decode time (domain.CommaList), so by this point
// every list is already a clean slice.

func buildTalentBase(userID string, ap *domain.ApprovedProfile, now time.Time) domain.TalentProfile {
	return domain.TalentProfile{
		UserID:          userID,
		Name:            ap.Name,
		Email:           ap.Email,
		Bio:             ap.Bio,
		Location:        ap.Location,
		PhotoURL:        ap.PhotoURL,
		ProfileImageURL: ap.PhotoURL,
		YearsExperience: ap.YearsExperience,
		SocialLinks:     nonNil(ap.SocialLinks),
		CreatedAt:       now,
	}
}

func BuildArtistProfile(userID string, ap *domain.ApprovedProfile, now time.Time) *domain.ArtistProfile {
	p := &domain.ArtistProfile{TalentProfile: buildTalentBase(userID, ap, now)}
	details := ap.Artist
	if details == nil {
		details = &domain.ArtistDetails{}
	}
	p.ArtistType = details.ArtistType
	p.Genres = nonNil(details.Genres)
	p.StreamingLinks = nonNil(details.StreamingLinks)
	p.Influences = nonNil(details.Influences)
	p.CurrentNeeds = nonNil(details.CurrentNeeds)
	p.UpcomingShows = nonNil(details.UpcomingShows)
	p.InstagramLink = details.InstagramLink
	return p
}

func BuildIndustryProProfile(userID string, ap *domain.ApprovedProfile, now time.Time) *domain.IndustryProProfile {
	p := &domain.IndustryProProfile{TalentProfile: buildTalentBase(userID, ap, now)}
	details := ap.Industry
	if details == nil {
		details = &domain.IndustryDetails{}
	}
	p.IndustryRole = details.IndustryRole
	p.Company = details.Company
	p.FavoriteArtists = nonNil(details.FavoriteArtists)
	return p
}

func BuildInstrumentalistProfile(userID string, ap *domain.ApprovedProfile, now time.Time) *domain.InstrumentalistProfile {
	p := &domain.InstrumentalistProfile{TalentProfile: buildTalentBase(userID, ap, now)}
	details := ap.Instrumentalist
	if details == nil {
		details = &domain.InstrumentalistDetails{}
	}
	p.Instrument = details.Instrument
	p.FavoriteGenres = nonNil(details.FavoriteGenres)
	p.Equipment = nonNil(details.Equipment)
	return p
}

func nonNil[S ~[]string](s S) []string {
	if s == nil {
		return []string{}
	}
	return []string(s)
}
