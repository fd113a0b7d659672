package wizard_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/vitalis-app/vitalis-bookings/internal/domain"
	"github.com/vitalis-app/vitalis-bookings/internal/ledger"
	"github.com/vitalis-app/vitalis-bookings/internal/store/kv"
	"github.com/vitalis-app/vitalis-bookings/internal/store/session"
	"github.com/vitalis-app/vitalis-bookings/internal/wizard"
	"github.com/vitalis-app/vitalis-bookings/pkg/config"
)

// ---------- Mocks ----------

type createCall struct {
	clientID     string
	providerName string
	start, end   int64
}

type mockLedger struct {
	clientID      string
	findErr       error
	appointmentID string
	createErr     error
	cancelErr     error
	completeErr   error
	statuses      map[string]ledger.AppointmentStatus

	createCalls   []createCall
	cancelCalls   int
	completeCalls int
}

func (m *mockLedger) MintClientIdentity(context.Context, string) (string, error) {
	return m.clientID, nil
}

func (m *mockLedger) FindOwnedObject(context.Context, string, string) (string, error) {
	if m.findErr != nil {
		return "", m.findErr
	}
	return m.clientID, nil
}

func (m *mockLedger) CreateAppointment(_ context.Context, clientID, providerName string, start, end int64) (string, error) {
	if m.createErr != nil {
		return "", m.createErr
	}
	m.createCalls = append(m.createCalls, createCall{clientID, providerName, start, end})
	return m.appointmentID, nil
}

func (m *mockLedger) CancelAppointment(context.Context, string, string) error {
	if m.cancelErr != nil {
		return m.cancelErr
	}
	m.cancelCalls++
	return nil
}

func (m *mockLedger) CompleteAppointment(context.Context, string, string) error {
	if m.completeErr != nil {
		return m.completeErr
	}
	m.completeCalls++
	return nil
}

func (m *mockLedger) GetAppointmentStatus(_ context.Context, appointmentID string) (ledger.AppointmentStatus, error) {
	status, ok := m.statuses[appointmentID]
	if !ok {
		return 0, ledger.ErrNotFound
	}
	return status, nil
}

type stubBus struct {
	published []string
}

func (s *stubBus) Publish(_ context.Context, subject string, _ interface{}) error {
	s.published = append(s.published, subject)
	return nil
}

func (s *stubBus) Close() error { return nil }

// ---------- Fixtures ----------

func testConfig() *config.Config {
	return &config.Config{
		Ledger: config.LedgerConfig{
			PackageID:     "0xpkg",
			WalletAddress: "0xwallet",
		},
	}
}

type fixture struct {
	store   session.Store
	ledger  *mockLedger
	bus     *stubBus
	service wizard.Service
}

func newFixture(ml *mockLedger) *fixture {
	store := session.New(kv.NewMemory())
	bus := &stubBus{}
	return &fixture{
		store:   store,
		ledger:  ml,
		bus:     bus,
		service: wizard.NewService(store, ml, bus, testConfig()),
	}
}

func confirmReady(t *testing.T) *wizard.Wizard {
	t.Helper()
	w := wizard.New()
	steps := []error{
		w.Start("biz-1"),
		w.SelectService("svc-1-1"),
		w.SelectProvider(""),
		w.SelectDate("2025-03-10"),
		w.SelectTime("09:00"),
	}
	for _, err := range steps {
		if err != nil {
			t.Fatalf("setup transition failed: %v", err)
		}
	}
	return w
}

// ---------- Tests ----------

func TestSubmitCreatesConfirmedReservation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(&mockLedger{clientID: "0xclient", appointmentID: "0xappt"})
	w := confirmReady(t)

	reservation, err := f.service.Submit(ctx, w)
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	if reservation.ID != "0xappt" || reservation.AppointmentID != "0xappt" {
		t.Errorf("expected ledger id on both fields, got %+v", reservation)
	}
	if reservation.BusinessID != "biz-1" || reservation.ServiceID != "svc-1-1" {
		t.Errorf("unexpected reservation fields: %+v", reservation)
	}
	if reservation.Date != "2025-03-10" || reservation.TimeSlot != "09:00" {
		t.Errorf("unexpected schedule: %+v", reservation)
	}
	if reservation.Status != domain.StatusConfirmed {
		t.Errorf("expected confirmed, got %s", reservation.Status)
	}

	list := f.store.ListReservations(ctx)
	if len(list) != 1 {
		t.Fatalf("expected exactly one stored reservation, got %d", len(list))
	}

	if w.Step() != wizard.StepIdle {
		t.Errorf("wizard did not reset after submit: %s", w.Step())
	}
}

func TestSubmitUsesServiceDuration(t *testing.T) {
	ml := &mockLedger{clientID: "0xclient", appointmentID: "0xappt"}
	f := newFixture(ml)
	w := confirmReady(t)

	if _, err := f.service.Submit(context.Background(), w); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	if len(ml.createCalls) != 1 {
		t.Fatalf("expected one create call, got %d", len(ml.createCalls))
	}
	call := ml.createCalls[0]
	// svc-1-1 is 45 minutes.
	if call.end-call.start != 45*60 {
		t.Errorf("expected 45 minute window, got %d seconds", call.end-call.start)
	}
	if call.clientID != "0xclient" {
		t.Errorf("expected resolved client id, got %q", call.clientID)
	}
}

func TestSubmitResolvesProviderWithOnChainPresence(t *testing.T) {
	ml := &mockLedger{clientID: "0xclient", appointmentID: "0xappt"}
	f := newFixture(ml)
	w := confirmReady(t)

	reservation, err := f.service.Submit(context.Background(), w)
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	// No preference was chosen; biz-1's first on-chain provider wins.
	if reservation.ProviderName != "Andreea Pop" || reservation.ProviderID != "prov-1-1" {
		t.Errorf("unexpected provider resolution: %+v", reservation)
	}
	if ml.createCalls[0].providerName != "Andreea Pop" {
		t.Errorf("ledger saw provider %q", ml.createCalls[0].providerName)
	}
}

func TestSubmitRefreshesStaleProfileID(t *testing.T) {
	ctx := context.Background()
	f := newFixture(&mockLedger{clientID: "0xfresh", appointmentID: "0xappt"})

	f.store.SaveProfile(ctx, &domain.ClientProfile{
		ID:     "0xstale",
		Wallet: "0xwallet",
	})

	if _, err := f.service.Submit(ctx, confirmReady(t)); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	profile := f.store.LoadProfile(ctx)
	if profile == nil || profile.ID != "0xfresh" {
		t.Errorf("expected refreshed profile id, got %+v", profile)
	}
}

func TestSubmitWithoutIdentityToken(t *testing.T) {
	ctx := context.Background()
	f := newFixture(&mockLedger{findErr: ledger.ErrNotFound})
	w := confirmReady(t)

	_, err := f.service.Submit(ctx, w)
	if !errors.Is(err, wizard.ErrNoIdentity) {
		t.Fatalf("expected ErrNoIdentity, got %v", err)
	}

	if len(f.store.ListReservations(ctx)) != 0 {
		t.Error("reservation persisted despite missing identity")
	}
	if w.Step() != wizard.StepConfirm {
		t.Errorf("wizard should stay at confirm for retry, got %s", w.Step())
	}
}

func TestSubmitLedgerFailureKeepsWizardAtConfirm(t *testing.T) {
	ctx := context.Background()
	f := newFixture(&mockLedger{clientID: "0xclient", createErr: errors.New("gas exhausted")})
	w := confirmReady(t)

	_, err := f.service.Submit(ctx, w)
	if err == nil {
		t.Fatal("expected submit error")
	}
	if !strings.Contains(err.Error(), "gas exhausted") {
		t.Errorf("error lost its cause: %v", err)
	}

	if len(f.store.ListReservations(ctx)) != 0 {
		t.Error("reservation persisted despite ledger failure")
	}
	if w.Step() != wizard.StepConfirm {
		t.Errorf("wizard should stay at confirm, got %s", w.Step())
	}

	// A retry after the ledger recovers succeeds.
	f.ledger.createErr = nil
	f.ledger.appointmentID = "0xappt"
	if _, err := f.service.Submit(ctx, w); err != nil {
		t.Fatalf("retry failed: %v", err)
	}
	if len(f.store.ListReservations(ctx)) != 1 {
		t.Error("retry did not persist the reservation")
	}
}

func TestSubmitFallbackIDWhenLedgerReturnsNone(t *testing.T) {
	ctx := context.Background()
	f := newFixture(&mockLedger{clientID: "0xclient", appointmentID: ""})

	reservation, err := f.service.Submit(ctx, confirmReady(t))
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	if reservation.ID == "" {
		t.Fatal("expected synthesized fallback id")
	}
	if reservation.AppointmentID != "" {
		t.Errorf("fallback path must leave appointment id unset, got %q", reservation.AppointmentID)
	}
	if !strings.Contains(reservation.ID, "-") {
		t.Errorf("fallback id missing random suffix: %q", reservation.ID)
	}
}

func TestSubmitIncompleteDraftRejected(t *testing.T) {
	f := newFixture(&mockLedger{clientID: "0xclient"})

	w := wizard.New()
	if err := w.Start("biz-1"); err != nil {
		t.Fatal(err)
	}

	_, err := f.service.Submit(context.Background(), w)
	if err == nil {
		t.Fatal("expected validation error for unconfirmed wizard")
	}
	var validationErr *wizard.ValidationError
	if !errors.As(err, &validationErr) {
		t.Errorf("expected ValidationError, got %T", err)
	}
}

func TestDistinctIDsAcrossSubmissions(t *testing.T) {
	ctx := context.Background()
	f := newFixture(&mockLedger{clientID: "0xclient", appointmentID: ""})

	for i := 0; i < 2; i++ {
		if _, err := f.service.Submit(ctx, confirmReady(t)); err != nil {
			t.Fatalf("submit failed: %v", err)
		}
	}

	list := f.store.ListReservations(ctx)
	if len(list) != 2 {
		t.Fatalf("expected 2 reservations, got %d", len(list))
	}
	if list[0].ID == list[1].ID {
		t.Errorf("fallback ids collided: %q", list[0].ID)
	}
}

func TestCancelWithAppointmentHitsLedgerFirst(t *testing.T) {
	ctx := context.Background()
	ml := &mockLedger{clientID: "0xclient"}
	f := newFixture(ml)

	f.store.SaveProfile(ctx, &domain.ClientProfile{ID: "0xclient", Wallet: "0xwallet"})
	f.store.AddReservation(ctx, domain.Reservation{
		ID:            "r-1",
		AppointmentID: "0xappt",
		BusinessID:    "biz-1",
		ServiceID:     "svc-1-1",
		Date:          "2025-03-10",
		TimeSlot:      "09:00",
		Status:        domain.StatusConfirmed,
	})

	if err := f.service.Cancel(ctx, "r-1"); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if ml.cancelCalls != 1 {
		t.Errorf("expected one ledger cancel, got %d", ml.cancelCalls)
	}

	list := f.store.ListReservations(ctx)
	if list[0].Status != domain.StatusCancelled {
		t.Errorf("expected cancelled, got %s", list[0].Status)
	}
}

func TestCancelLedgerFailureLeavesLocalUntouched(t *testing.T) {
	ctx := context.Background()
	f := newFixture(&mockLedger{clientID: "0xclient", cancelErr: errors.New("node down")})

	f.store.SaveProfile(ctx, &domain.ClientProfile{ID: "0xclient", Wallet: "0xwallet"})
	f.store.AddReservation(ctx, domain.Reservation{
		ID:            "r-1",
		AppointmentID: "0xappt",
		BusinessID:    "biz-1",
		Status:        domain.StatusConfirmed,
	})

	if err := f.service.Cancel(ctx, "r-1"); err == nil {
		t.Fatal("expected cancel error")
	}

	list := f.store.ListReservations(ctx)
	if list[0].Status != domain.StatusConfirmed {
		t.Errorf("local status changed despite ledger failure: %s", list[0].Status)
	}
}

func TestCancelWithoutAppointmentIsLocalOnly(t *testing.T) {
	ctx := context.Background()
	ml := &mockLedger{clientID: "0xclient"}
	f := newFixture(ml)

	f.store.AddReservation(ctx, domain.Reservation{
		ID:         "1700000000000-abc123xyz",
		BusinessID: "biz-1",
		Status:     domain.StatusConfirmed,
	})

	if err := f.service.Cancel(ctx, "1700000000000-abc123xyz"); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if ml.cancelCalls != 0 {
		t.Errorf("ledger cancel called for a local-only reservation")
	}

	list := f.store.ListReservations(ctx)
	if list[0].Status != domain.StatusCancelled {
		t.Errorf("expected cancelled, got %s", list[0].Status)
	}
}

func TestCancelRejectsNonConfirmed(t *testing.T) {
	ctx := context.Background()
	f := newFixture(&mockLedger{clientID: "0xclient"})

	f.store.AddReservation(ctx, domain.Reservation{
		ID:     "r-1",
		Status: domain.StatusCancelled,
	})

	if err := f.service.Cancel(ctx, "r-1"); err == nil {
		t.Error("expected rejection of cancelling a cancelled reservation")
	}
	if err := f.service.Cancel(ctx, "missing"); !errors.Is(err, wizard.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestReconcileAppliesLedgerDrift(t *testing.T) {
	ctx := context.Background()
	ml := &mockLedger{
		clientID: "0xclient",
		statuses: map[string]ledger.AppointmentStatus{
			"0xappt-1": ledger.AppointmentCancelled,
			"0xappt-2": ledger.AppointmentBooked,
			"0xappt-3": ledger.AppointmentCompleted,
		},
	}
	f := newFixture(ml)

	for i, appt := range []string{"0xappt-1", "0xappt-2", "0xappt-3"} {
		f.store.AddReservation(ctx, domain.Reservation{
			ID:            string(rune('a' + i)),
			AppointmentID: appt,
			Status:        domain.StatusConfirmed,
		})
	}
	// Local-only record; reconcile skips it.
	f.store.AddReservation(ctx, domain.Reservation{ID: "local", Status: domain.StatusConfirmed})

	changed, err := f.service.Reconcile(ctx)
	if err != nil {
		t.Fatalf("reconcile failed: %v", err)
	}
	if changed != 2 {
		t.Errorf("expected 2 updates, got %d", changed)
	}

	list := f.store.ListReservations(ctx)
	if list[0].Status != domain.StatusCancelled {
		t.Errorf("expected cancelled drift applied, got %s", list[0].Status)
	}
	if list[1].Status != domain.StatusConfirmed {
		t.Errorf("booked appointment should stay confirmed, got %s", list[1].Status)
	}
	if list[2].Status != domain.StatusCompleted {
		t.Errorf("expected completed drift applied, got %s", list[2].Status)
	}
	if list[3].Status != domain.StatusConfirmed {
		t.Errorf("local-only record changed: %s", list[3].Status)
	}
}

func TestSubmitPublishesEvent(t *testing.T) {
	f := newFixture(&mockLedger{clientID: "0xclient", appointmentID: "0xappt"})

	if _, err := f.service.Submit(context.Background(), confirmReady(t)); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	if len(f.bus.published) != 1 || f.bus.published[0] != "reservation.created" {
		t.Errorf("expected reservation.created event, got %v", f.bus.published)
	}
}
