package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vitalis-app/vitalis-bookings/internal/catalog"
	"github.com/vitalis-app/vitalis-bookings/internal/domain"
	"github.com/vitalis-app/vitalis-bookings/internal/http/response"
)

func lookupBusiness(id string) (string, bool) {
	business, ok := catalog.BusinessByID(id)
	if !ok {
		return "", false
	}
	return business.Name, true
}

// ListReservations returns the session's reservations in insertion order.
func (h *Handlers) ListReservations(w http.ResponseWriter, r *http.Request) {
	reservations := h.store.ListReservations(r.Context())

	dtos := make([]domain.ReservationDTO, 0, len(reservations))
	for i := range reservations {
		dtos = append(dtos, reservations[i].DTO())
	}

	response.WriteJSON(w, http.StatusOK, map[string]any{
		"reservations": dtos,
		"count":        len(dtos),
	})
}

// CancelReservation cancels on the ledger first (when referenced), then
// marks the local record cancelled.
func (h *Handlers) CancelReservation(w http.ResponseWriter, r *http.Request) {
	if err := h.bookings.Cancel(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CompleteReservation marks a reservation completed.
func (h *Handlers) CompleteReservation(w http.ResponseWriter, r *http.Request) {
	if err := h.bookings.Complete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ReconcileReservations pulls appointment status drift from the ledger.
func (h *Handlers) ReconcileReservations(w http.ResponseWriter, r *http.Request) {
	changed, err := h.bookings.Reconcile(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	response.WriteJSON(w, http.StatusOK, map[string]any{"updated": changed})
}
