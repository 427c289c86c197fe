package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"encore-backend/internal/auth"
	"encore-backend/internal/service"
	"encore-backend/internal/storage"
)

// NewRouter wires all HTTP routes. The local storage backend is
// optional; when present the /media routes serve uploads directly.
func NewRouter(
	apps service.ApplicationService,
	reviews service.ReviewService,
	talent service.TalentService,
	verifier auth.TokenVerifier,
	local *storage.LocalStorage,
) *mux.Router {
	r := mux.NewRouter()
	authMw := NewAuthMiddleware(verifier)

	appHandler := NewApplicationHandler(apps)
	adminHandler := NewAdminHandler(reviews)
	talentHandler := NewTalentHandler(talent)

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public browse listings
	api.HandleFunc("/artists", talentHandler.ListArtists).Methods("GET")
	api.HandleFunc("/industry-pros", talentHandler.ListIndustryPros).Methods("GET")
	api.HandleFunc("/instrumentalists", talentHandler.ListInstrumentalists).Methods("GET")

	// Applicant endpoints
	api.Handle("/applications/draft", authMw.Handler(http.HandlerFunc(appHandler.GetDraft))).Methods("GET")
	api.Handle("/applications/draft", authMw.Handler(http.HandlerFunc(appHandler.SaveDraft))).Methods("PUT")
	api.Handle("/applications", authMw.Handler(http.HandlerFunc(appHandler.Submit))).Methods("POST")

	// Admin review endpoints
	api.Handle("/admin/applications", authMw.Handler(http.HandlerFunc(adminHandler.List))).Methods("GET")
	api.Handle("/admin/applications/{id}/approve", authMw.Handler(http.HandlerFunc(adminHandler.Approve))).Methods("POST")
	api.Handle("/admin/applications/{id}/reject", authMw.Handler(http.HandlerFunc(adminHandler.Reject))).Methods("POST")
	api.Handle("/admin/applications/{id}/finalize", authMw.Handler(http.HandlerFunc(adminHandler.Finalize))).Methods("POST")

	if local != nil {
		mediaHandler := NewMediaHandler(local)
		r.HandleFunc("/media/{key:.*}", mediaHandler.Serve).Methods("GET")
	}

	return r
}
