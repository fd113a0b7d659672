package wizard_test

import (
	"testing"

	"github.com/vitalis-app/vitalis-bookings/internal/wizard"
)

func startWizard(t *testing.T) *wizard.Wizard {
	t.Helper()
	w := wizard.New()
	if err := w.Start("biz-1"); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	return w
}

func TestStartUnknownBusiness(t *testing.T) {
	w := wizard.New()
	if err := w.Start("biz-999"); err == nil {
		t.Fatal("expected error for unknown business")
	}
	if w.Step() != wizard.StepIdle {
		t.Errorf("wizard advanced on rejected start: %s", w.Step())
	}
}

func TestStartInitializesDraft(t *testing.T) {
	w := startWizard(t)

	if w.Step() != wizard.StepService {
		t.Errorf("expected service step, got %s", w.Step())
	}
	draft := w.Draft()
	if draft.BusinessID != "biz-1" {
		t.Errorf("expected business id set, got %q", draft.BusinessID)
	}
	if draft.ServiceID != "" || draft.Date != "" || draft.TimeSlot != "" {
		t.Errorf("expected empty draft fields, got %+v", draft)
	}
}

func TestEmptyServiceSelectionRejected(t *testing.T) {
	w := startWizard(t)

	err := w.SelectService("")
	if err == nil {
		t.Fatal("expected validation error for empty service")
	}
	var validationErr *wizard.ValidationError
	if !asValidation(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if w.Step() != wizard.StepService {
		t.Errorf("step advanced on rejected selection: %s", w.Step())
	}

	// Retrying with a selection advances.
	if err := w.SelectService("svc-1-1"); err != nil {
		t.Fatalf("retry failed: %v", err)
	}
	if w.Step() != wizard.StepProvider {
		t.Errorf("expected provider step, got %s", w.Step())
	}
}

func TestProviderSelectionIsOptional(t *testing.T) {
	w := startWizard(t)
	mustSelect(t, w.SelectService("svc-1-1"))

	// Empty selection is the explicit "no preference" choice.
	if err := w.SelectProvider(""); err != nil {
		t.Fatalf("no-preference selection rejected: %v", err)
	}
	if w.Step() != wizard.StepDate {
		t.Errorf("expected date step, got %s", w.Step())
	}
}

func TestEmptyDateAndTimeRejected(t *testing.T) {
	w := startWizard(t)
	mustSelect(t, w.SelectService("svc-1-1"))
	mustSelect(t, w.SelectProvider("prov-1-2"))

	if err := w.SelectDate(""); err == nil {
		t.Error("expected validation error for empty date")
	}
	if w.Step() != wizard.StepDate {
		t.Errorf("step advanced on empty date: %s", w.Step())
	}
	mustSelect(t, w.SelectDate("2025-03-10"))

	if err := w.SelectTime(""); err == nil {
		t.Error("expected validation error for empty time")
	}
	if w.Step() != wizard.StepTime {
		t.Errorf("step advanced on empty time: %s", w.Step())
	}
	mustSelect(t, w.SelectTime("09:00"))

	if w.Step() != wizard.StepConfirm {
		t.Errorf("expected confirm step, got %s", w.Step())
	}
}

func TestBackKeepsEnteredFields(t *testing.T) {
	w := startWizard(t)
	mustSelect(t, w.SelectService("svc-1-1"))
	mustSelect(t, w.SelectProvider("prov-1-1"))
	mustSelect(t, w.SelectDate("2025-03-10"))

	w.Back()
	if w.Step() != wizard.StepDate {
		t.Errorf("expected date step after back, got %s", w.Step())
	}

	draft := w.Draft()
	if draft.ServiceID != "svc-1-1" || draft.ProviderID != "prov-1-1" || draft.Date != "2025-03-10" {
		t.Errorf("back lost draft fields: %+v", draft)
	}

	w.Back()
	w.Back()
	if w.Step() != wizard.StepService {
		t.Errorf("expected service step, got %s", w.Step())
	}

	// Back at the first step is a no-op.
	w.Back()
	if w.Step() != wizard.StepService {
		t.Errorf("back at first step moved to %s", w.Step())
	}
}

func TestCloseDiscardsDraft(t *testing.T) {
	w := startWizard(t)
	mustSelect(t, w.SelectService("svc-1-1"))

	w.Close()
	if w.Step() != wizard.StepIdle {
		t.Errorf("expected idle after close, got %s", w.Step())
	}
	if draft := w.Draft(); draft.BusinessID != "" || draft.ServiceID != "" {
		t.Errorf("close kept draft fields: %+v", draft)
	}
}

func TestOutOfOrderSelectionRejected(t *testing.T) {
	w := startWizard(t)

	if err := w.SelectDate("2025-03-10"); err == nil {
		t.Error("expected rejection of date selection at service step")
	}
	if err := w.SelectTime("09:00"); err == nil {
		t.Error("expected rejection of time selection at service step")
	}
	if w.Step() != wizard.StepService {
		t.Errorf("step moved on rejected selections: %s", w.Step())
	}
}

func TestInvalidTimeSlotRejected(t *testing.T) {
	w := startWizard(t)
	mustSelect(t, w.SelectService("svc-1-1"))
	mustSelect(t, w.SelectProvider(""))
	mustSelect(t, w.SelectDate("2025-03-10"))

	if err := w.SelectTime("12:00"); err == nil {
		t.Error("expected rejection of slot off the grid")
	}
}

func mustSelect(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("transition failed: %v", err)
	}
}

func asValidation(err error, target **wizard.ValidationError) bool {
	v, ok := err.(*wizard.ValidationError)
	if ok {
		*target = v
	}
	return ok
}
