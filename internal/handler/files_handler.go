package handlers

import (
	"encoding/json"
	"net/http"
	"path/filepath"

	"github.com/gorilla/mux"
)

type deleteFileRequest struct {
	Filename string `json:"filename" validate:"required"`
	Type     string `json:"type" validate:"required"`
}

type DeleteFileResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// DeleteFile discards a pending file. Discarding is idempotent from
// the caller's point of view: a repeat simply reports 404.
func (h *Handlers) DeleteFile(w http.ResponseWriter, r *http.Request) {
	var req deleteFileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body.", http.StatusBadRequest)
		return
	}

	if req.Filename == "" {
		writeError(w, "Filename is required.", http.StatusBadRequest)
		return
	}

	if err := h.Files.Discard(r.Context(), req.Filename, req.Type); err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, DeleteFileResponse{
		Success: true,
		Message: req.Filename + " deleted successfully.",
	}, http.StatusOK)
}

// ServeImage serves a staged image preview. Browsers may cache
// previews for an hour.
func (h *Handlers) ServeImage(w http.ResponseWriter, r *http.Request) {
	filename := mux.Vars(r)["filename"]
	if filename != filepath.Base(filename) {
		writeError(w, "File not found.", http.StatusNotFound)
		return
	}

	w.Header().Set("Cache-Control", "public, max-age=3600")
	http.ServeFile(w, r, filepath.Join(h.Cfg.Areas.Images, filename))
}

// ServeVideo serves a staged video preview.
func (h *Handlers) ServeVideo(w http.ResponseWriter, r *http.Request) {
	filename := mux.Vars(r)["filename"]
	if filename != filepath.Base(filename) {
		writeError(w, "File not found.", http.StatusNotFound)
		return
	}

	http.ServeFile(w, r, filepath.Join(h.Cfg.Areas.Videos, filename))
}
