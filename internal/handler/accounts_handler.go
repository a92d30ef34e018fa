package handlers

import (
	"fmt"
	"net/http"
)

// GetAccounts returns the usernames of the configured reddit accounts,
// ordered alphabetically. Secrets never leave the credential store.
func (h *Handlers) GetAccounts(w http.ResponseWriter, r *http.Request) {
	usernames, err := h.AccountRepo.ListUsernames(r.Context())
	if err != nil {
		writeError(w, fmt.Sprintf("Error reading accounts: %v", err), http.StatusInternalServerError)
		return
	}

	writeSuccess(w, usernames, http.StatusOK)
}
