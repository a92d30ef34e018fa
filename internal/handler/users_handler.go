package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"redditstage/internal/models"
)

// GetUsers returns every registry record, ordered by display name.
func (h *Handlers) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserRepo.ListUsers(r.Context())
	if err != nil {
		writeError(w, fmt.Sprintf("Error reading users: %v", err), http.StatusInternalServerError)
		return
	}

	writeSuccess(w, users, http.StatusOK)
}

type addUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Username string `json:"username" validate:"required"`
}

type AddUserResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// AddUser registers a new handle -> display name mapping. Duplicate
// handles are rejected with 409.
func (h *Handlers) AddUser(w http.ResponseWriter, r *http.Request) {
	var req addUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body.", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeError(w, "Name and Username are required.", http.StatusBadRequest)
		return
	}

	err := h.UserRepo.CreateUser(r.Context(), &models.User{Name: req.Name, Username: req.Username})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, AddUserResponse{Success: true, Message: "User added successfully."}, http.StatusOK)
}
