package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"redditstage/internal/repository"
	"redditstage/internal/service"
	"redditstage/internal/transcode"
)

// ErrorResponse uses the "message" key the frontend has always read.
type ErrorResponse struct {
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Message: message})
}

func writeSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// writeServiceError maps the pipeline error taxonomy onto HTTP
// statuses. The error text is passed through verbatim: publish-path
// failures are rare, human-reviewed operations and the diagnostic
// detail (ffmpeg stderr, reddit response body) is the whole point.
func writeServiceError(w http.ResponseWriter, err error) {
	var transcodeFailed *transcode.FailedError

	switch {
	case errors.Is(err, service.ErrInvalidRequest):
		writeError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrNoValidFiles):
		writeError(w, "Upload failed: "+err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrNotFound):
		writeError(w, "File not found.", http.StatusNotFound)
	case errors.Is(err, repository.ErrDuplicateUsername):
		writeError(w, err.Error(), http.StatusConflict)
	case errors.Is(err, transcode.ErrTimeout):
		writeError(w, "Video processing timed out. The video may be too long or complex.", http.StatusInternalServerError)
	case errors.As(err, &transcodeFailed):
		writeError(w, "Video processing failed. FFmpeg error: "+transcodeFailed.Stderr, http.StatusInternalServerError)
	default:
		// AccountUnavailable, PlatformRejected and everything
		// unexpected are upstream problems.
		writeError(w, err.Error(), http.StatusInternalServerError)
	}
}
