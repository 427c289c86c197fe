package domain

import (
	"encoding/json"
	"strings"
	"time"
)

// Role values stored on a user's profile row. An applicant's role stays
// empty until an admin finalizes their application.
const (
	RoleAdmin           = "admin"
	RoleArtist          = string(ApplicationTypeArtist)
	RoleIndustry        = string(ApplicationTypeIndustry)
	RoleInstrumentalist = string(ApplicationTypeInstrumentalist)
)

// UserProfile is the bookkeeping row in the profiles table, one per
// authenticated user.
type UserProfile struct {
	UserID        string    `json:"user_id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Role          string    `json:"role"`
	HasApplied    bool      `json:"has_applied"`
	ApplicationID *string   `json:"application_id,omitempty"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// StringList decodes a JSON array of strings. Any other JSON shape is
// coerced to an empty list instead of failing the decode.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	var values []string
	if err := json.Unmarshal(data, &values); err != nil {
		*l = nil
		return nil
	}
	*l = values
	return nil
}

// CommaList decodes either a JSON array of strings or a single
// comma-separated string. Fields historically supplied as free text
// (favorite artists, favorite genres, equipment) arrive both ways.
type CommaList []string

func (l *CommaList) UnmarshalJSON(data []byte) error {
	var values []string
	if err := json.Unmarshal(data, &values); err == nil {
		*l = values
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err == nil {
		*l = SplitCommaList(raw)
		return nil
	}
	*l = nil
	return nil
}

// SplitCommaList splits a comma-separated string into trimmed elements,
// dropping empties.
func SplitCommaList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// ApprovedProfile is the payload an admin attaches when approving an
// application. Shared fields live at the top level; exactly one of the
// per-type detail structs is expected to be set, matching the
// application's type.
type ApprovedProfile struct {
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	Bio             string     `json:"bio"`
	Location        string     `json:"location"`
	PhotoURL        string     `json:"photo_url"`
	YearsExperience *int32     `json:"years_experience,omitempty"`
	SocialLinks     StringList `json:"social_links"`

	Artist          *ArtistDetails          `json:"artist,omitempty"`
	Industry        *IndustryDetails        `json:"industry,omitempty"`
	Instrumentalist *InstrumentalistDetails `json:"instrumentalist,omitempty"`
}

type ArtistDetails struct {
	ArtistType     string     `json:"artist_type"`
	Genres         StringList `json:"genres"`
	StreamingLinks StringList `json:"streaming_links"`
	Influences     StringList `json:"influences"`
	CurrentNeeds   StringList `json:"current_needs"`
	UpcomingShows  StringList `json:"upcoming_shows"`
	InstagramLink  string     `json:"instagram_link"`
}

type IndustryDetails struct {
	IndustryRole    string    `json:"industry_role"`
	Company         string    `json:"company"`
	FavoriteArtists CommaList `json:"favorite_artists"`
}

type InstrumentalistDetails struct {
	Instrument     string    `json:"instrument"`
	FavoriteGenres CommaList `json:"favorite_genres"`
	Equipment      CommaList `json:"equipment"`
}

// TalentProfile holds the columns shared by the three materialized
// profile tables. Rows are created exactly once, at finalization.
type TalentProfile struct {
	UserID          string    `json:"user_id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Bio             string    `json:"bio"`
	Location        string    `json:"location"`
	PhotoURL        string    `json:"photo_url"`
	ProfileImageURL string    `json:"profile_image_url"`
	YearsExperience *int32    `json:"years_experience,omitempty"`
	SocialLinks     []string  `json:"social_links"`
	CreatedAt       time.Time `json:"created_at"`
}

type ArtistProfile struct {
	TalentProfile
	ArtistType     string   `json:"artist_type"`
	Genres         []string `json:"genres"`
	StreamingLinks []string `json:"streaming_links"`
	Influences     []string `json:"influences"`
	CurrentNeeds   []string `json:"current_needs"`
	UpcomingShows  []string `json:"upcoming_shows"`
	InstagramLink  string   `json:"instagram_link"`
}

type IndustryProProfile struct {
	TalentProfile
	IndustryRole    string   `json:"industry_role"`
	Company         string   `json:"company"`
	FavoriteArtists []string `json:"favorite_artists"`
}

type InstrumentalistProfile struct {
	TalentProfile
	Instrument     string   `json:"instrument"`
	FavoriteGenres []string `json:"favorite_genres"`
	Equipment      []string `json:"equipment"`
}
