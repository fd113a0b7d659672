// Package wizard drives the booking flow: an explicit step machine
// accumulating a draft reservation, and the submission/cancellation
// logic around it.
package wizard

import (
	"fmt"
	"sync"
	"time"

	"github.com/vitalis-app/vitalis-bookings/internal/catalog"
	"github.com/vitalis-app/vitalis-bookings/internal/domain"
)

type Step string

const (
	StepIdle     Step = "idle"
	StepService  Step = "service"
	StepProvider Step = "provider"
	StepDate     Step = "date"
	StepTime     Step = "time"
	StepConfirm  Step = "confirm"
)

// stepOrder is the forward path through an open wizard.
var stepOrder = []Step{StepService, StepProvider, StepDate, StepTime, StepConfirm}

// SuccessNoticeTTL is how long a confirmation notice stays visible
// before auto-dismissing.
const SuccessNoticeTTL = 3 * time.Second

// ValidationError is a rejected transition or submission precondition:
// shown inline, the step does not advance.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func validation(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// Wizard is one booking flow instance. All methods are safe for
// concurrent use; the submitting flag gives the at-most-one-in-flight
// submission guarantee per instance.
type Wizard struct {
	mu         sync.Mutex
	step       Step
	draft      domain.Draft
	submitting bool
}

func New() *Wizard {
	return &Wizard{step: StepIdle}
}

func (w *Wizard) Step() Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

func (w *Wizard) Draft() domain.Draft {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.draft
}

// Start opens the wizard for a business, resetting the draft. Valid from
// any state; starting over discards the previous draft.
func (w *Wizard) Start(businessID string) error {
	if _, ok := catalog.BusinessByID(businessID); !ok {
		return validation("Unknown business")
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.submitting {
		return validation("A booking is being submitted")
	}
	w.draft = domain.Draft{BusinessID: businessID}
	w.step = StepService
	return nil
}

// SelectService records the service choice and advances to the provider
// step. Rejected with a validation error when empty or unknown.
func (w *Wizard) SelectService(serviceID string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.require(StepService); err != nil {
		return err
	}
	if serviceID == "" {
		return validation("Please select a service")
	}
	if _, ok := catalog.ServiceByID(w.draft.BusinessID, serviceID); !ok {
		return validation("Please select a service")
	}

	w.draft.ServiceID = serviceID
	w.step = StepProvider
	return nil
}

// SelectProvider records the provider choice and advances. An empty id
// is the explicit "no preference" choice and is always accepted; a
// non-empty id must exist in the business's catalog entry.
func (w *Wizard) SelectProvider(providerID string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.require(StepProvider); err != nil {
		return err
	}
	if providerID != "" {
		if _, ok := catalog.ProviderByID(w.draft.BusinessID, providerID); !ok {
			return validation("Unknown provider")
		}
	}

	w.draft.ProviderID = providerID
	w.step = StepDate
	return nil
}

func (w *Wizard) SelectDate(date string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.require(StepDate); err != nil {
		return err
	}
	if date == "" {
		return validation("Please select a date")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return validation("Please select a date")
	}

	w.draft.Date = date
	w.step = StepTime
	return nil
}

func (w *Wizard) SelectTime(slot string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.require(StepTime); err != nil {
		return err
	}
	if slot == "" || !catalog.ValidTimeSlot(slot) {
		return validation("Please select a time")
	}

	w.draft.TimeSlot = slot
	w.step = StepConfirm
	return nil
}

// Back moves to the previous step without losing any entered fields.
// At the first step it is a no-op.
func (w *Wizard) Back() {
	w.mu.Lock()
	defer w.mu.Unlock()

	for i, s := range stepOrder {
		if s == w.step && i > 0 {
			w.step = stepOrder[i-1]
			return
		}
	}
}

// Close discards the draft and returns to idle. A submission in flight
// is not interrupted; its outcome is applied to a fresh state.
func (w *Wizard) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.step = StepIdle
	w.draft = domain.Draft{}
}

// beginSubmit validates submission preconditions and claims the
// in-flight slot. Returns the draft snapshot to submit.
func (w *Wizard) beginSubmit() (domain.Draft, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step != StepConfirm {
		return domain.Draft{}, validation("Nothing to confirm")
	}
	if w.submitting {
		return domain.Draft{}, validation("A booking is already being submitted")
	}
	if !w.draft.Complete() {
		return domain.Draft{}, validation("Missing booking details")
	}

	w.submitting = true
	return w.draft, nil
}

// endSubmit releases the in-flight slot. On success the wizard resets to
// idle; on failure it stays at confirm for retry.
func (w *Wizard) endSubmit(succeeded bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.submitting = false
	if succeeded {
		w.step = StepIdle
		w.draft = domain.Draft{}
	}
}

func (w *Wizard) require(step Step) error {
	if w.step != step {
		return validation("Unexpected step: wizard is at %q", w.step)
	}
	if w.submitting {
		return validation("A booking is being submitted")
	}
	return nil
}
