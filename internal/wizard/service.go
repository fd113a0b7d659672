package wizard

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/vitalis-app/vitalis-bookings/internal/catalog"
	"github.com/vitalis-app/vitalis-bookings/internal/domain"
	"github.com/vitalis-app/vitalis-bookings/internal/ledger"
	"github.com/vitalis-app/vitalis-bookings/internal/store/session"
	"github.com/vitalis-app/vitalis-bookings/pkg/config"
	"github.com/vitalis-app/vitalis-bookings/pkg/events"
	"github.com/vitalis-app/vitalis-bookings/pkg/logger"
)

// ErrNoIdentity means the wallet carries no identity token; the client
// must register again before booking.
var ErrNoIdentity = errors.New("no client identity found on this wallet, please register again")

// ErrNotFound means the referenced reservation is not in the local store.
var ErrNotFound = errors.New("reservation not found")

type Service interface {
	// Submit runs the confirm-step submission: re-resolves the identity
	// token, records the appointment on the ledger, persists the
	// reservation, and resets the wizard. On failure the wizard stays at
	// the confirm step for retry.
	Submit(ctx context.Context, w *Wizard) (*domain.Reservation, error)

	// Cancel cancels the on-ledger appointment when one is referenced,
	// then marks the local reservation cancelled. A reservation without
	// an appointment reference is cancelled locally only.
	Cancel(ctx context.Context, id string) error

	// Complete marks a reservation completed, recording the completion
	// on the ledger when both the appointment and the provider have
	// on-chain references.
	Complete(ctx context.Context, id string) error

	// Reconcile re-queries the ledger for every confirmed reservation
	// with an appointment reference and applies status drift (cancelled
	// or completed on-chain) to the local store. Returns how many
	// records changed.
	Reconcile(ctx context.Context) (int, error)
}

type bookingService struct {
	store    session.Store
	ledger   ledger.Client
	eventBus events.Publisher
	config   *config.Config
}

func NewService(store session.Store, ledgerClient ledger.Client, eventBus events.Publisher, cfg *config.Config) Service {
	return &bookingService{
		store:    store,
		ledger:   ledgerClient,
		eventBus: eventBus,
		config:   cfg,
	}
}

func (s *bookingService) Submit(ctx context.Context, w *Wizard) (*domain.Reservation, error) {
	draft, err := w.beginSubmit()
	if err != nil {
		return nil, err
	}

	reservation, err := s.submit(ctx, draft)
	w.endSubmit(err == nil)
	if err != nil {
		return nil, err
	}
	return reservation, nil
}

func (s *bookingService) submit(ctx context.Context, draft domain.Draft) (*domain.Reservation, error) {
	business, ok := catalog.BusinessByID(draft.BusinessID)
	if !ok {
		return nil, validation("Unable to locate the selected business or service")
	}
	service, ok := catalog.ServiceByID(draft.BusinessID, draft.ServiceID)
	duration := domain.DefaultServiceDuration
	if ok {
		duration = service.Duration
	}

	// Re-resolve the identity token from the ledger: the cached profile
	// id goes stale when the on-chain package is redeployed.
	clientID, err := s.resolveClientID(ctx)
	if err != nil {
		return nil, err
	}

	provider, found := catalog.ResolveProvider(business, draft.ProviderID)
	providerName := domain.AnyProviderLabel
	providerID := draft.ProviderID
	if found {
		providerName = provider.Name
		if providerID == "" {
			providerID = provider.ID
		}
	}

	start, err := slotStart(draft.Date, draft.TimeSlot)
	if err != nil {
		return nil, validation("Invalid date or time slot")
	}
	end := start + int64(duration)*60

	appointmentID, err := s.ledger.CreateAppointment(ctx, clientID, providerName, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to record appointment: %w", err)
	}

	reservation := domain.Reservation{
		ID:            appointmentID,
		AppointmentID: appointmentID,
		BusinessID:    draft.BusinessID,
		ServiceID:     draft.ServiceID,
		ProviderID:    providerID,
		ProviderName:  providerName,
		Date:          draft.Date,
		TimeSlot:      draft.TimeSlot,
		Status:        domain.StatusConfirmed,
		CreatedAt:     time.Now().UnixMilli(),
	}
	if reservation.ID == "" {
		reservation.ID = s.fallbackID(ctx)
		reservation.AppointmentID = ""
	}

	s.store.AddReservation(ctx, reservation)

	event := events.ReservationCreatedEvent{
		ReservationID: reservation.ID,
		AppointmentID: reservation.AppointmentID,
		BusinessID:    reservation.BusinessID,
		ServiceID:     reservation.ServiceID,
		ProviderName:  reservation.ProviderName,
		Date:          reservation.Date,
		TimeSlot:      reservation.TimeSlot,
		Email:         s.profileEmail(ctx),
		CreatedAt:     reservation.CreatedAt,
	}
	if err := s.eventBus.Publish(ctx, events.ReservationCreated, event); err != nil {
		logger.ErrorContext(ctx, "Failed to publish reservation created event", "error", err, "reservation_id", reservation.ID)
	}

	return &reservation, nil
}

func (s *bookingService) Cancel(ctx context.Context, id string) error {
	reservation, ok := s.find(ctx, id)
	if !ok {
		return ErrNotFound
	}
	if !reservation.Status.CanTransition(domain.StatusCancelled) {
		return validation("Cannot cancel a %s reservation", reservation.Status)
	}

	// Ledger first, local second: a failed ledger cancel leaves local
	// state untouched so the two cannot silently diverge further.
	profile := s.store.LoadProfile(ctx)
	if reservation.AppointmentID != "" && profile != nil && profile.ID != "" {
		if err := s.ledger.CancelAppointment(ctx, profile.ID, reservation.AppointmentID); err != nil {
			return fmt.Errorf("failed to cancel appointment: %w", err)
		}
	}

	s.store.CancelReservation(ctx, id)

	event := events.ReservationCancelledEvent{
		ReservationID: id,
		AppointmentID: reservation.AppointmentID,
		BusinessID:    reservation.BusinessID,
		Date:          reservation.Date,
		TimeSlot:      reservation.TimeSlot,
		Email:         s.profileEmail(ctx),
		Reason:        "client_requested",
		CancelledAt:   time.Now().UnixMilli(),
	}
	if err := s.eventBus.Publish(ctx, events.ReservationCancelled, event); err != nil {
		logger.ErrorContext(ctx, "Failed to publish reservation cancelled event", "error", err, "reservation_id", id)
	}

	return nil
}

func (s *bookingService) Complete(ctx context.Context, id string) error {
	reservation, ok := s.find(ctx, id)
	if !ok {
		return ErrNotFound
	}
	if !reservation.Status.CanTransition(domain.StatusCompleted) {
		return validation("Cannot complete a %s reservation", reservation.Status)
	}

	if reservation.AppointmentID != "" {
		provider, found := catalog.ProviderByID(reservation.BusinessID, reservation.ProviderID)
		if found && provider.OnChainID != "" {
			if err := s.ledger.CompleteAppointment(ctx, provider.OnChainID, reservation.AppointmentID); err != nil {
				return fmt.Errorf("failed to complete appointment: %w", err)
			}
		}
	}

	status := domain.StatusCompleted
	s.store.UpdateReservation(ctx, id, domain.ReservationPatch{Status: &status})

	event := events.ReservationCompletedEvent{
		ReservationID: id,
		AppointmentID: reservation.AppointmentID,
		CompletedAt:   time.Now().UnixMilli(),
	}
	if err := s.eventBus.Publish(ctx, events.ReservationCompleted, event); err != nil {
		logger.ErrorContext(ctx, "Failed to publish reservation completed event", "error", err, "reservation_id", id)
	}

	return nil
}

func (s *bookingService) Reconcile(ctx context.Context) (int, error) {
	changed := 0
	for _, reservation := range s.store.ListReservations(ctx) {
		if reservation.Status != domain.StatusConfirmed || reservation.AppointmentID == "" {
			continue
		}

		onChain, err := s.ledger.GetAppointmentStatus(ctx, reservation.AppointmentID)
		if err != nil {
			if errors.Is(err, ledger.ErrNotFound) {
				continue
			}
			return changed, fmt.Errorf("failed to read appointment status: %w", err)
		}

		var status domain.ReservationStatus
		switch onChain {
		case ledger.AppointmentCancelled:
			status = domain.StatusCancelled
		case ledger.AppointmentCompleted:
			status = domain.StatusCompleted
		default:
			continue
		}

		s.store.UpdateReservation(ctx, reservation.ID, domain.ReservationPatch{Status: &status})
		changed++
	}
	return changed, nil
}

// resolveClientID queries the ledger for the wallet's identity token and
// refreshes the cached profile id when it drifted.
func (s *bookingService) resolveClientID(ctx context.Context) (string, error) {
	profile := s.store.LoadProfile(ctx)

	walletAddr := s.config.Ledger.WalletAddress
	if profile != nil && profile.Wallet != "" {
		walletAddr = profile.Wallet
	}
	if walletAddr == "" {
		return "", ledger.ErrNoWallet
	}

	structType := ledger.ClientStructType(s.config.Ledger.PackageID)
	clientID, err := s.ledger.FindOwnedObject(ctx, walletAddr, structType)
	if errors.Is(err, ledger.ErrNotFound) {
		return "", ErrNoIdentity
	}
	if err != nil {
		return "", fmt.Errorf("failed to resolve identity token: %w", err)
	}

	if profile != nil && profile.ID != clientID {
		profile.ID = clientID
		s.store.SaveProfile(ctx, profile)
	}

	return clientID, nil
}

func (s *bookingService) find(ctx context.Context, id string) (domain.Reservation, bool) {
	for _, r := range s.store.ListReservations(ctx) {
		if r.ID == id {
			return r, true
		}
	}
	return domain.Reservation{}, false
}

func (s *bookingService) profileEmail(ctx context.Context) string {
	if profile := s.store.LoadProfile(ctx); profile != nil {
		return profile.Email
	}
	return ""
}

// fallbackID synthesizes a local reservation id (unix millis plus a
// random base36 suffix) when the ledger did not return one. Collisions
// against the stored list are retried a few times.
func (s *bookingService) fallbackID(ctx context.Context) string {
	existing := make(map[string]bool)
	for _, r := range s.store.ListReservations(ctx) {
		existing[r.ID] = true
	}

	var id string
	for i := 0; i < 5; i++ {
		id = fmt.Sprintf("%d-%s", time.Now().UnixMilli(), randomSuffix(9))
		if !existing[id] {
			return id
		}
	}
	return id
}

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

func randomSuffix(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = base36[rand.Intn(len(base36))]
	}
	return string(b)
}

// slotStart converts a date and HH:MM slot into a unix start time.
func slotStart(date, slot string) (int64, error) {
	t, err := time.ParseInLocation("2006-01-02 15:04", date+" "+slot, time.Local)
	if err != nil {
		return 0, err
	}
	return t.Unix(), nil
}
