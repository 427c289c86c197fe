package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"encore-backend/internal/domain"
	"encore-backend/internal/logger"
	"encore-backend/internal/repository"
	"encore-backend/internal/service"
)

// AdminHandler serves the review dashboard endpoints. Non-admin callers
// are redirected away without an error body.
type AdminHandler struct {
	reviews service.ReviewService
}

func NewAdminHandler(reviews service.ReviewService) *AdminHandler {
	return &AdminHandler{reviews: reviews}
}

// List returns every application newest-first plus the view filtered by
// the selected status (default pending). Filtering is derived from the
// full set, not a separate fetch.
func (h *AdminHandler) List(w http.ResponseWriter, r *http.Request) {
	apps, err := h.reviews.ListApplications(r.Context(), userID(r))
	if err != nil {
		h.reviewError(w, r, err, "Failed to list applications")
		return
	}

	status := domain.ApplicationStatus(r.URL.Query().Get("status"))
	if status == "" {
		status = domain.ApplicationStatusPending
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"applications": apps,
		"filtered":     service.FilterByStatus(apps, status),
	})
}

func (h *AdminHandler) Approve(w http.ResponseWriter, r *http.Request) {
	var approved domain.ApprovedProfile
	if err := json.NewDecoder(r.Body).Decode(&approved); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	app, err := h.reviews.Approve(r.Context(), userID(r), mux.Vars(r)["id"], &approved)
	if err != nil {
		h.reviewError(w, r, err, "Failed to approve application")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"application": app})
}

type rejectRequest struct {
	Reason string `json:"reason"`
}

func (h *AdminHandler) Reject(w http.ResponseWriter, r *http.Request) {
	var req rejectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	app, err := h.reviews.Reject(r.Context(), userID(r), mux.Vars(r)["id"], req.Reason)
	if err != nil {
		h.reviewError(w, r, err, "Failed to reject application")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"application": app})
}

// Finalize promotes the application and responds with the refreshed
// application list so the dashboard reflects the new status.
func (h *AdminHandler) Finalize(w http.ResponseWriter, r *http.Request) {
	adminID := userID(r)
	app, err := h.reviews.Finalize(r.Context(), adminID, mux.Vars(r)["id"])
	if err != nil {
		h.reviewError(w, r, err, "Failed to finalize application")
		return
	}

	apps, err := h.reviews.ListApplications(r.Context(), adminID)
	if err != nil {
		h.reviewError(w, r, err, "Failed to refresh applications")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"application":  app,
		"applications": apps,
	})
}

func (h *AdminHandler) reviewError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	switch {
	case errors.Is(err, service.ErrRoleMismatch):
		// Non-admins are silently sent back to the landing page.
		http.Redirect(w, r, "/", http.StatusSeeOther)
	case errors.Is(err, service.ErrDuplicateProfile):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrMissingApprovedProfile):
		respondError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrInvalidTransition):
		respondError(w, http.StatusConflict, "invalid status transition")
	case errors.Is(err, repository.ErrNotFound):
		respondError(w, http.StatusNotFound, "application not found")
	default:
		logger.ErrorContext(r.Context(), msg, "error", err)
		respondError(w, http.StatusInternalServerError, msg)
	}
}
