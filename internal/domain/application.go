package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type ApplicationType string

const (
	ApplicationTypeArtist          ApplicationType = "artist"
	ApplicationTypeIndustry        ApplicationType = "industry"
	ApplicationTypeInstrumentalist ApplicationType = "instrumentalist"
)

func (t ApplicationType) Valid() bool {
	switch t {
	case ApplicationTypeArtist, ApplicationTypeIndustry, ApplicationTypeInstrumentalist:
		return true
	}
	return false
}

type ApplicationStatus string

const (
	ApplicationStatusDraft     ApplicationStatus = "draft"
	ApplicationStatusPending   ApplicationStatus = "pending"
	ApplicationStatusApproved  ApplicationStatus = "approved"
	ApplicationStatusRejected  ApplicationStatus = "rejected"
	ApplicationStatusFinalized ApplicationStatus = "finalized"
)

var ErrInvalidTransition = errors.New("invalid status transition")

// transitions is the full forward graph. There is no backward edge:
// a finalized application can never become a draft again.
var transitions = map[ApplicationStatus][]ApplicationStatus{
	ApplicationStatusDraft:    {ApplicationStatusPending},
	ApplicationStatusPending:  {ApplicationStatusApproved, ApplicationStatusRejected},
	ApplicationStatusApproved: {ApplicationStatusFinalized},
}

func CanTransition(from, to ApplicationStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// StatusHistoryEntry is one element of the append-only audit trail
// embedded in every application.
type StatusHistoryEntry struct {
	Status    ApplicationStatus `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	ActorID   string            `json:"actor_id"`
}

type Application struct {
	ID              string               `json:"id"`
	UserID          string               `json:"user_id"`
	Type            ApplicationType      `json:"application_type"`
	Status          ApplicationStatus    `json:"status"`
	Note            string               `json:"note"`
	Form            map[string]any       `json:"form,omitempty"`
	PhotoURL        string               `json:"photo_url,omitempty"`
	StatusHistory   []StatusHistoryEntry `json:"status_history"`
	CurrentRevision int32                `json:"current_revision"`
	ApprovedProfile *ApprovedProfile     `json:"approved_profile,omitempty"`
	FinalizedAt     *time.Time           `json:"finalized_at,omitempty"`
	FinalizedBy     *string              `json:"finalized_by,omitempty"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}

// Transition moves the application to the next status and appends the
// matching history entry. History entries are never removed or reordered;
// every legal transition grows the trail by exactly one element.
func (a *Application) Transition(to ApplicationStatus, actorID string, at time.Time) error {
	if !CanTransition(a.Status, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, a.Status, to)
	}
	a.Status = to
	a.StatusHistory = append(a.StatusHistory, StatusHistoryEntry{
		Status:    to,
		Timestamp: at,
		ActorID:   actorID,
	})
	a.UpdatedAt = at
	return nil
}

// NoteWordLimit caps the free-text note on an application form.
const NoteWordLimit = 200

// TruncateWords clamps s to at most max whitespace-separated words.
// Overflow is dropped silently rather than rejected.
func TruncateWords(s string, max int) string {
	words := strings.Fields(s)
	if len(words) <= max {
		return s
	}
	return strings.Join(words[:max], " ")
}
