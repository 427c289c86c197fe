package http

import (
	"io"
	"net/http"
	"path/filepath"

	"github.com/gorilla/mux"

	"encore-backend/internal/storage"
)

// MediaHandler serves uploaded photos back when the local storage
// backend is in use. Cloud-backed objects are served by the bucket
// directly.
type MediaHandler struct {
	local *storage.LocalStorage
}

func NewMediaHandler(local *storage.LocalStorage) *MediaHandler {
	return &MediaHandler{local: local}
}

func (h *MediaHandler) Serve(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]
	file, err := h.local.Open(key)
	if err != nil {
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}
	defer file.Close()

	contentType := "application/octet-stream"
	switch filepath.Ext(key) {
	case ".jpg", ".jpeg":
		contentType = "image/jpeg"
	case ".png":
		contentType = "image/png"
	case ".gif":
		contentType = "image/gif"
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	io.Copy(w, file)
}
