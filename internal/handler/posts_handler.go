package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"redditstage/internal/models"
	"redditstage/internal/service"
)

type PendingPostsResponse struct {
	Posts   []models.CandidatePost `json:"posts"`
	HasMore bool                   `json:"hasMore"`
}

type UploadResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	URL     string `json:"url"`
}

// GetPendingPosts lists one page of candidate posts for review.
// Invalid page/limit values silently fall back to 1 and 10.
func (h *Handlers) GetPendingPosts(w http.ResponseWriter, r *http.Request) {
	postType := r.URL.Query().Get("type")
	if postType == "" {
		postType = service.TypeImages
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	posts, err := h.Catalog.ListPending(r.Context(), postType)
	if err != nil {
		writeError(w, "Invalid post type specified.", http.StatusBadRequest)
		return
	}

	pagePosts, hasMore := service.Paginate(posts, page, limit)

	writeSuccess(w, PendingPostsResponse{Posts: pagePosts, HasMore: hasMore}, http.StatusOK)
}

type uploadPostRequest struct {
	AccountUsername string   `json:"accountUsername" validate:"required"`
	Username        string   `json:"username" validate:"required"`
	Caption         string   `json:"caption"`
	FlairID         string   `json:"flairId" validate:"required"`
	ImagesToUpload  []string `json:"imagesToUpload" validate:"required,min=1"`
}

// UploadPost publishes one owner's staged images as a single post or
// gallery.
func (h *Handlers) UploadPost(w http.ResponseWriter, r *http.Request) {
	var req uploadPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body.", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeError(w, "Missing required fields.", http.StatusBadRequest)
		return
	}

	result, err := h.Publish.PublishImages(r.Context(), service.PublishImagesRequest{
		AccountUsername: req.AccountUsername,
		Username:        req.Username,
		Caption:         req.Caption,
		FlairID:         req.FlairID,
		Files:           req.ImagesToUpload,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, UploadResponse{
		Success: true,
		Message: "Upload successful!",
		URL:     result.Permalink,
	}, http.StatusOK)
}

type uploadVideoRequest struct {
	AccountUsername string `json:"accountUsername" validate:"required"`
	Username        string `json:"username" validate:"required"`
	Caption         string `json:"caption"`
	FlairID         string `json:"flairId" validate:"required"`
	VideoToUpload   string `json:"videoToUpload" validate:"required"`
}

// UploadVideoPost publishes a single staged video after normalizing it
// with ffmpeg.
func (h *Handlers) UploadVideoPost(w http.ResponseWriter, r *http.Request) {
	var req uploadVideoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body.", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeError(w, "Missing required fields.", http.StatusBadRequest)
		return
	}

	result, err := h.Publish.PublishVideo(r.Context(), service.PublishVideoRequest{
		AccountUsername: req.AccountUsername,
		Username:        req.Username,
		Caption:         req.Caption,
		FlairID:         req.FlairID,
		File:            req.VideoToUpload,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, UploadResponse{
		Success: true,
		Message: "Upload successful!",
		URL:     result.Permalink,
	}, http.StatusOK)
}
