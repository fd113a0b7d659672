package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/vitalis-app/vitalis-bookings/internal/domain"
	"github.com/vitalis-app/vitalis-bookings/internal/http/response"
)

// Register mints an identity token for the wallet and opens a session.
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req domain.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	res, err := h.identity.Register(r.Context(), &req)
	if err != nil {
		if isInputError(err) {
			response.BadRequest(w, err.Error())
			return
		}
		writeServiceError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusCreated, res)
}

// Logout clears the stored profile and reservation history.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	h.identity.Logout(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// Me returns the cached client profile.
func (h *Handlers) Me(w http.ResponseWriter, r *http.Request) {
	profile := h.identity.Profile(r.Context())
	if profile == nil {
		response.NotFound(w, "Not registered")
		return
	}
	response.WriteJSON(w, http.StatusOK, profile)
}

// isInputError picks out registration failures caused by the request
// itself rather than the ledger.
func isInputError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "required") || strings.Contains(msg, "invalid access code")
}
