package http

import (
	"encoding/json"
	"io"
	"net/http"

	"encore-backend/internal/domain"
	"encore-backend/internal/logger"
	"encore-backend/internal/service"
)

const maxUploadBytes = 10 << 20 // 10 MB

// ApplicationHandler serves the applicant-facing draft and submission
// endpoints.
type ApplicationHandler struct {
	apps service.ApplicationService
}

func NewApplicationHandler(apps service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{apps: apps}
}

// GetDraft returns the caller's draft for the requested type, or a null
// application when none exists.
func (h *ApplicationHandler) GetDraft(w http.ResponseWriter, r *http.Request) {
	appType := domain.ApplicationType(r.URL.Query().Get("type"))
	if !appType.Valid() {
		respondError(w, http.StatusBadRequest, "invalid application type")
		return
	}

	draft, err := h.apps.GetDraft(r.Context(), userID(r), appType)
	if err != nil {
		logger.ErrorContext(r.Context(), "Failed to load draft", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to load draft")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"application": draft})
}

type saveDraftRequest struct {
	ApplicationType domain.ApplicationType `json:"application_type"`
	Form            map[string]any         `json:"form"`
}

func (h *ApplicationHandler) SaveDraft(w http.ResponseWriter, r *http.Request) {
	var req saveDraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !req.ApplicationType.Valid() {
		respondError(w, http.StatusBadRequest, "invalid application type")
		return
	}

	draft, err := h.apps.SaveDraft(r.Context(), userID(r), req.ApplicationType, req.Form)
	if err != nil {
		logger.ErrorContext(r.Context(), "Failed to save draft", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to save draft")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"application": draft})
}

// Submit accepts the multipart submission form: an application_type
// field, a JSON-encoded form field and an optional photo file.
func (h *ApplicationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		respondError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	appType := domain.ApplicationType(r.FormValue("application_type"))
	if !appType.Valid() {
		respondError(w, http.StatusBadRequest, "invalid application type")
		return
	}

	form := map[string]any{}
	if raw := r.FormValue("form"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &form); err != nil {
			respondError(w, http.StatusBadRequest, "invalid form payload")
			return
		}
	}

	photo, err := stagedPhoto(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid photo upload")
		return
	}

	if _, err := h.apps.Submit(r.Context(), userID(r), appType, form, photo, nil); err != nil {
		logger.ErrorContext(r.Context(), "Failed to submit application", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to submit application")
		return
	}

	// Successful submission sends the user to their account view.
	http.Redirect(w, r, "/account", http.StatusSeeOther)
}

func stagedPhoto(r *http.Request) (*service.StagedPhoto, error) {
	file, header, err := r.FormFile("photo")
	if err == http.ErrMissingFile {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	return &service.StagedPhoto{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
