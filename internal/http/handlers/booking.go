package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/vitalis-app/vitalis-bookings/internal/domain"
	"github.com/vitalis-app/vitalis-bookings/internal/http/response"
	"github.com/vitalis-app/vitalis-bookings/internal/wizard"
)

type wizardStateResponse struct {
	Step  string       `json:"step"`
	Draft domain.Draft `json:"draft"`
}

type selectRequest struct {
	BusinessID string `json:"business_id,omitempty"`
	ServiceID  string `json:"service_id,omitempty"`
	ProviderID string `json:"provider_id,omitempty"`
	Date       string `json:"date,omitempty"`
	TimeSlot   string `json:"time_slot,omitempty"`
}

func (h *Handlers) wizardFor(r *http.Request) *wizard.Wizard {
	return h.wizards.get(sessionWallet(r))
}

func (h *Handlers) writeWizardState(w http.ResponseWriter, wz *wizard.Wizard) {
	response.WriteJSON(w, http.StatusOK, wizardStateResponse{
		Step:  string(wz.Step()),
		Draft: wz.Draft(),
	})
}

// StartBooking opens the wizard for a business.
func (h *Handlers) StartBooking(w http.ResponseWriter, r *http.Request) {
	var req selectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	wz := h.wizardFor(r)
	if err := wz.Start(req.BusinessID); err != nil {
		writeServiceError(w, err)
		return
	}
	h.writeWizardState(w, wz)
}

func (h *Handlers) SelectService(w http.ResponseWriter, r *http.Request) {
	var req selectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	wz := h.wizardFor(r)
	if err := wz.SelectService(req.ServiceID); err != nil {
		writeServiceError(w, err)
		return
	}
	h.writeWizardState(w, wz)
}

func (h *Handlers) SelectProvider(w http.ResponseWriter, r *http.Request) {
	var req selectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	wz := h.wizardFor(r)
	if err := wz.SelectProvider(req.ProviderID); err != nil {
		writeServiceError(w, err)
		return
	}
	h.writeWizardState(w, wz)
}

func (h *Handlers) SelectDate(w http.ResponseWriter, r *http.Request) {
	var req selectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	wz := h.wizardFor(r)
	if err := wz.SelectDate(req.Date); err != nil {
		writeServiceError(w, err)
		return
	}
	h.writeWizardState(w, wz)
}

func (h *Handlers) SelectTime(w http.ResponseWriter, r *http.Request) {
	var req selectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	wz := h.wizardFor(r)
	if err := wz.SelectTime(req.TimeSlot); err != nil {
		writeServiceError(w, err)
		return
	}
	h.writeWizardState(w, wz)
}

// Back steps the wizard back one step, keeping entered fields.
func (h *Handlers) Back(w http.ResponseWriter, r *http.Request) {
	wz := h.wizardFor(r)
	wz.Back()
	h.writeWizardState(w, wz)
}

// GetWizard returns the current wizard state.
func (h *Handlers) GetWizard(w http.ResponseWriter, r *http.Request) {
	h.writeWizardState(w, h.wizardFor(r))
}

// CloseBooking discards the draft.
func (h *Handlers) CloseBooking(w http.ResponseWriter, r *http.Request) {
	h.wizardFor(r).Close()
	w.WriteHeader(http.StatusNoContent)
}

type confirmResponse struct {
	Reservation     domain.ReservationDTO `json:"reservation"`
	Notice          string                `json:"notice"`
	NoticeExpiresAt int64                 `json:"notice_expires_at"`
}

// ConfirmBooking submits the draft. On failure the wizard stays at the
// confirm step and the error is returned inline for retry.
func (h *Handlers) ConfirmBooking(w http.ResponseWriter, r *http.Request) {
	wz := h.wizardFor(r)

	reservation, err := h.bookings.Submit(r.Context(), wz)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	notice := "Booking confirmed!"
	if business, ok := lookupBusiness(reservation.BusinessID); ok {
		notice = "Booking confirmed for " + business + "!"
	}

	response.WriteJSON(w, http.StatusCreated, confirmResponse{
		Reservation:     reservation.DTO(),
		Notice:          notice,
		NoticeExpiresAt: time.Now().Add(wizard.SuccessNoticeTTL).UnixMilli(),
	})
}
