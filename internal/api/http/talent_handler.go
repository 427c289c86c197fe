package http

import (
	"net/http"

	"encore-backend/internal/logger"
	"encore-backend/internal/service"
)

// TalentHandler serves the public browse listings.
type TalentHandler struct {
	talent service.TalentService
}

func NewTalentHandler(talent service.TalentService) *TalentHandler {
	return &TalentHandler{talent: talent}
}

func (h *TalentHandler) ListArtists(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.talent.ListArtists(r.Context())
	if err != nil {
		logger.ErrorContext(r.Context(), "Failed to list artists", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to list artists")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"profiles": profiles})
}

func (h *TalentHandler) ListIndustryPros(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.talent.ListIndustryPros(r.Context())
	if err != nil {
		logger.ErrorContext(r.Context(), "Failed to list industry pros", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to list industry pros")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"profiles": profiles})
}

func (h *TalentHandler) ListInstrumentalists(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.talent.ListInstrumentalists(r.Context())
	if err != nil {
		logger.ErrorContext(r.Context(), "Failed to list instrumentalists", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to list instrumentalists")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"profiles": profiles})
}
