package domain

type ReservationStatus string

const (
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCancelled ReservationStatus = "cancelled"
	StatusCompleted ReservationStatus = "completed"
)

func ParseReservationStatus(s string) (ReservationStatus, bool) {
	switch ReservationStatus(s) {
	case StatusConfirmed, StatusCancelled, StatusCompleted:
		return ReservationStatus(s), true
	default:
		return "", false
	}
}

// CanTransition reports whether a status change is a legal lifecycle move.
// Only confirmed reservations can be cancelled or completed.
func (s ReservationStatus) CanTransition(to ReservationStatus) bool {
	return s == StatusConfirmed && (to == StatusCancelled || to == StatusCompleted)
}

// Reservation is a locally stored booking. ID is the ledger appointment
// reference when available; otherwise a locally synthesized fallback and
// AppointmentID stays empty.
type Reservation struct {
	ID            string            `json:"id"`
	AppointmentID string            `json:"appointmentId,omitempty"`
	BusinessID    string            `json:"businessId"`
	ServiceID     string            `json:"serviceId"`
	ProviderID    string            `json:"providerId,omitempty"`
	ProviderName  string            `json:"providerName,omitempty"`
	Date          string            `json:"date"`
	TimeSlot      string            `json:"timeSlot"`
	Status        ReservationStatus `json:"status"`
	CreatedAt     int64             `json:"createdAt"`
}

// ReservationPatch carries the fields UpdateReservation may shallow-merge
// onto a stored record. Nil fields are left untouched.
type ReservationPatch struct {
	AppointmentID *string            `json:"appointmentId,omitempty"`
	ProviderID    *string            `json:"providerId,omitempty"`
	ProviderName  *string            `json:"providerName,omitempty"`
	Date          *string            `json:"date,omitempty"`
	TimeSlot      *string            `json:"timeSlot,omitempty"`
	Status        *ReservationStatus `json:"status,omitempty"`
}

// Apply shallow-merges the patch onto the reservation.
func (p ReservationPatch) Apply(r *Reservation) {
	if p.AppointmentID != nil {
		r.AppointmentID = *p.AppointmentID
	}
	if p.ProviderID != nil {
		r.ProviderID = *p.ProviderID
	}
	if p.ProviderName != nil {
		r.ProviderName = *p.ProviderName
	}
	if p.Date != nil {
		r.Date = *p.Date
	}
	if p.TimeSlot != nil {
		r.TimeSlot = *p.TimeSlot
	}
	if p.Status != nil {
		r.Status = *p.Status
	}
}

// Draft is the wizard's in-progress booking accumulation. BusinessID is
// set when the wizard opens; the remaining fields fill in step by step.
type Draft struct {
	BusinessID string `json:"business_id"`
	ServiceID  string `json:"service_id"`
	ProviderID string `json:"provider_id"`
	Date       string `json:"date"`
	TimeSlot   string `json:"time_slot"`
}

// Complete reports whether all required fields for submission are present.
// Provider is optional; an empty ProviderID means "no preference".
func (d Draft) Complete() bool {
	return d.BusinessID != "" && d.ServiceID != "" && d.Date != "" && d.TimeSlot != ""
}

type ReservationDTO struct {
	ID            string `json:"id"`
	AppointmentID string `json:"appointment_id,omitempty"`
	BusinessID    string `json:"business_id"`
	ServiceID     string `json:"service_id"`
	ProviderID    string `json:"provider_id,omitempty"`
	ProviderName  string `json:"provider_name,omitempty"`
	Date          string `json:"date"`
	TimeSlot      string `json:"time_slot"`
	Status        string `json:"status"`
	CreatedAt     int64  `json:"created_at"`
}

func (r *Reservation) DTO() ReservationDTO {
	return ReservationDTO{
		ID:            r.ID,
		AppointmentID: r.AppointmentID,
		BusinessID:    r.BusinessID,
		ServiceID:     r.ServiceID,
		ProviderID:    r.ProviderID,
		ProviderName:  r.ProviderName,
		Date:          r.Date,
		TimeSlot:      r.TimeSlot,
		Status:        string(r.Status),
		CreatedAt:     r.CreatedAt,
	}
}

// Business rules
const (
	// DefaultServiceDuration is used when the selected service cannot be
	// resolved from the catalog at submission time.
	DefaultServiceDuration = 60

	// AnyProviderLabel is recorded when no concrete provider could be
	// resolved for a booking.
	AnyProviderLabel = "Any available provider"
)
