// Package session is the local session store: the current client profile
// and the reservations made in this session, kept under two fixed keys.
//
// Contract: no operation here returns an error. Storage failures and
// corrupt data are logged and collapse to safe defaults (nil profile,
// empty list, silent no-op), so callers cannot distinguish "no data"
// from "storage error".
package session

import (
	"context"
	"encoding/json"

	"github.com/vitalis-app/vitalis-bookings/internal/domain"
	"github.com/vitalis-app/vitalis-bookings/internal/store/kv"
	"github.com/vitalis-app/vitalis-bookings/pkg/logger"
)

const (
	profileKey      = "vitalis_client"
	reservationsKey = "vitalis_reservations"
)

type Store interface {
	SaveProfile(ctx context.Context, profile *domain.ClientProfile)
	LoadProfile(ctx context.Context) *domain.ClientProfile
	ClearProfile(ctx context.Context)
	AddReservation(ctx context.Context, r domain.Reservation)
	ListReservations(ctx context.Context) []domain.Reservation
	UpdateReservation(ctx context.Context, id string, patch domain.ReservationPatch)
	CancelReservation(ctx context.Context, id string)
}

type store struct {
	kv kv.Store
}

func New(backend kv.Store) Store {
	return &store{kv: backend}
}

// SaveProfile overwrites any existing stored profile wholesale.
func (s *store) SaveProfile(ctx context.Context, profile *domain.ClientProfile) {
	raw, err := json.Marshal(profile)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to save client profile", "error", err)
		return
	}
	if err := s.kv.Set(ctx, profileKey, string(raw)); err != nil {
		logger.ErrorContext(ctx, "Failed to save client profile", "error", err)
	}
}

// LoadProfile returns the stored profile, or nil when absent. Data that
// fails to parse is treated as absence.
func (s *store) LoadProfile(ctx context.Context) *domain.ClientProfile {
	raw, ok, err := s.kv.Get(ctx, profileKey)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load client profile", "error", err)
		return nil
	}
	if !ok {
		return nil
	}

	var profile domain.ClientProfile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		logger.ErrorContext(ctx, "Failed to parse stored client profile", "error", err)
		return nil
	}
	return &profile
}

// ClearProfile removes the profile and all reservations as one logical
// operation. Used on logout.
func (s *store) ClearProfile(ctx context.Context) {
	if err := s.kv.Delete(ctx, profileKey); err != nil {
		logger.ErrorContext(ctx, "Failed to clear client profile", "error", err)
	}
	if err := s.kv.Delete(ctx, reservationsKey); err != nil {
		logger.ErrorContext(ctx, "Failed to clear reservations", "error", err)
	}
}

// AddReservation appends to the stored list. Read-modify-write; two
// concurrent writers can drop one write.
func (s *store) AddReservation(ctx context.Context, r domain.Reservation) {
	existing := s.ListReservations(ctx)
	existing = append(existing, r)
	s.writeReservations(ctx, existing)
}

// ListReservations returns all stored reservations in insertion order,
// or an empty slice when there are none or the data cannot be parsed.
func (s *store) ListReservations(ctx context.Context) []domain.Reservation {
	raw, ok, err := s.kv.Get(ctx, reservationsKey)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load reservations", "error", err)
		return []domain.Reservation{}
	}
	if !ok {
		return []domain.Reservation{}
	}

	var reservations []domain.Reservation
	if err := json.Unmarshal([]byte(raw), &reservations); err != nil {
		logger.ErrorContext(ctx, "Failed to parse stored reservations", "error", err)
		return []domain.Reservation{}
	}
	return reservations
}

// UpdateReservation shallow-merges patch fields onto the record with the
// given id and rewrites the list. No-op when the id is not found.
func (s *store) UpdateReservation(ctx context.Context, id string, patch domain.ReservationPatch) {
	reservations := s.ListReservations(ctx)
	for i := range reservations {
		if reservations[i].ID == id {
			patch.Apply(&reservations[i])
			s.writeReservations(ctx, reservations)
			return
		}
	}
}

func (s *store) CancelReservation(ctx context.Context, id string) {
	status := domain.StatusCancelled
	s.UpdateReservation(ctx, id, domain.ReservationPatch{Status: &status})
}

func (s *store) writeReservations(ctx context.Context, reservations []domain.Reservation) {
	raw, err := json.Marshal(reservations)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to save reservations", "error", err)
		return
	}
	if err := s.kv.Set(ctx, reservationsKey, string(raw)); err != nil {
		logger.ErrorContext(ctx, "Failed to save reservations", "error", err)
	}
}
