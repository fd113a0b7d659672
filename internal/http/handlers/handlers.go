package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"

	"github.com/vitalis-app/vitalis-bookings/internal/http/response"
	"github.com/vitalis-app/vitalis-bookings/internal/identity"
	"github.com/vitalis-app/vitalis-bookings/internal/ledger"
	"github.com/vitalis-app/vitalis-bookings/internal/store/session"
	"github.com/vitalis-app/vitalis-bookings/internal/wizard"
	"github.com/vitalis-app/vitalis-bookings/pkg/logger"
)

type Handlers struct {
	identity identity.Service
	bookings wizard.Service
	store    session.Store
	wizards  *wizardRegistry
}

func New(identitySvc identity.Service, bookingSvc wizard.Service, store session.Store) *Handlers {
	return &Handlers{
		identity: identitySvc,
		bookings: bookingSvc,
		store:    store,
		wizards:  newWizardRegistry(),
	}
}

// wizardRegistry holds one wizard per session wallet. Each wizard is its
// own synchronization domain; the registry only guards the map.
type wizardRegistry struct {
	mu      sync.Mutex
	wizards map[string]*wizard.Wizard
}

func newWizardRegistry() *wizardRegistry {
	return &wizardRegistry{wizards: make(map[string]*wizard.Wizard)}
}

func (r *wizardRegistry) get(wallet string) *wizard.Wizard {
	r.mu.Lock()
	defer r.mu.Unlock()

	w, ok := r.wizards[wallet]
	if !ok {
		w = wizard.New()
		r.wizards[wallet] = w
	}
	return w
}

// RequireSession authenticates the Bearer session token and stores the
// wallet address on the request context.
func (h *Handlers) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			response.Unauthorized(w, "Missing session token")
			return
		}

		claims, err := h.identity.VerifyToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			response.Unauthorized(w, "Invalid session token")
			return
		}

		ctx := context.WithValue(r.Context(), logger.WalletKey, claims.Wallet)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func sessionWallet(r *http.Request) string {
	if wallet, ok := r.Context().Value(logger.WalletKey).(string); ok {
		return wallet
	}
	return ""
}

// writeServiceError maps service-layer failures onto the error taxonomy:
// validation stays inline, collaborator errors are retryable, everything
// else is internal.
func writeServiceError(w http.ResponseWriter, err error) {
	var validationErr *wizard.ValidationError
	switch {
	case errors.As(err, &validationErr):
		response.Validation(w, validationErr.Msg)
	case errors.Is(err, wizard.ErrNoIdentity):
		response.WriteError(w, http.StatusConflict, "No client identity found on this wallet. Please register again.", response.CodeNoIdentity)
	case errors.Is(err, wizard.ErrNotFound):
		response.NotFound(w, "Reservation not found")
	case errors.Is(err, ledger.ErrNoWallet):
		response.Unauthorized(w, "Connect your wallet to book an appointment")
	default:
		response.LedgerError(w, err.Error())
	}
}
