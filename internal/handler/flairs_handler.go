package handlers

import (
	"net/http"
)

// GetFlairs lists the link flair templates of the subreddit the given
// account posts to.
func (h *Handlers) GetFlairs(w http.ResponseWriter, r *http.Request) {
	account := r.URL.Query().Get("account")
	if account == "" {
		writeError(w, "Account username is required.", http.StatusBadRequest)
		return
	}

	flairs, err := h.Publish.ListFlairs(r.Context(), account)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, flairs, http.StatusOK)
}
