// Package identity handles client registration against the ledger and
// the local session that hangs off it.
package identity

import (
	"context"
	"crypto/subtle"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/alexedwards/argon2id"

	"github.com/vitalis-app/vitalis-bookings/internal/domain"
	"github.com/vitalis-app/vitalis-bookings/internal/ledger"
	"github.com/vitalis-app/vitalis-bookings/internal/store/session"
	"github.com/vitalis-app/vitalis-bookings/pkg/config"
	"github.com/vitalis-app/vitalis-bookings/pkg/events"
	"github.com/vitalis-app/vitalis-bookings/pkg/logger"
)

type Service interface {
	// Register mints an identity token for the wallet, persists the
	// profile locally (overwriting any previous one), and issues a
	// session token.
	Register(ctx context.Context, req *domain.RegisterRequest) (*domain.RegisterResponse, error)

	// Logout clears the stored profile and all reservations.
	Logout(ctx context.Context)

	// Profile returns the cached profile, or nil when not registered.
	Profile(ctx context.Context) *domain.ClientProfile

	// VerifyToken validates a session token and returns its claims.
	VerifyToken(token string) (*Claims, error)
}

type authService struct {
	store    session.Store
	ledger   ledger.Client
	eventBus events.Publisher
	config   *config.Config
}

func NewService(store session.Store, ledgerClient ledger.Client, eventBus events.Publisher, cfg *config.Config) Service {
	return &authService{
		store:    store,
		ledger:   ledgerClient,
		eventBus: eventBus,
		config:   cfg,
	}
}

func (s *authService) Register(ctx context.Context, req *domain.RegisterRequest) (*domain.RegisterResponse, error) {
	req.Wallet = strings.TrimSpace(req.Wallet)
	req.DisplayName = strings.TrimSpace(req.DisplayName)
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))

	if req.Wallet == "" {
		return nil, ledger.ErrNoWallet
	}
	if req.DisplayName == "" {
		return nil, fmt.Errorf("display name is required")
	}

	role := req.Role
	if role == "" {
		role = "client"
	}

	// Provider and company registration is gated by an access code.
	if role != "client" {
		if err := s.checkAccessCode(req.AccessCode); err != nil {
			return nil, err
		}
	}

	clientID, err := s.ledger.MintClientIdentity(ctx, req.DisplayName)
	if err != nil {
		return nil, fmt.Errorf("failed to mint identity token: %w", err)
	}

	profile := &domain.ClientProfile{
		ID:          clientID,
		Wallet:      req.Wallet,
		DisplayName: req.DisplayName,
		Email:       req.Email,
		CreatedAt:   time.Now().Unix(),
	}
	s.store.SaveProfile(ctx, profile)

	token, err := NewSessionToken([]byte(s.config.Auth.JWTSecret), req.Wallet, role, s.config.Auth.SessionTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}

	event := events.IdentityMintedEvent{
		ClientID:    clientID,
		Wallet:      req.Wallet,
		DisplayName: req.DisplayName,
		Email:       req.Email,
		MintedAt:    profile.CreatedAt,
	}
	if err := s.eventBus.Publish(ctx, events.IdentityMinted, event); err != nil {
		logger.ErrorContext(ctx, "Failed to publish identity minted event", "error", err, "client_id", clientID)
	}

	return &domain.RegisterResponse{Profile: *profile, Token: token}, nil
}

func (s *authService) Logout(ctx context.Context) {
	s.store.ClearProfile(ctx)
}

func (s *authService) Profile(ctx context.Context) *domain.ClientProfile {
	return s.store.LoadProfile(ctx)
}

func (s *authService) VerifyToken(token string) (*Claims, error) {
	return ParseSessionToken([]byte(s.config.Auth.JWTSecret), token)
}

func (s *authService) checkAccessCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return fmt.Errorf("access code is required")
	}

	// Deployments may pin a hashed code; the universal code is the MVP
	// fallback shared by company and provider registration.
	if s.config.Auth.AccessCodeHash != "" {
		match, err := argon2id.ComparePasswordAndHash(code, s.config.Auth.AccessCodeHash)
		if err != nil {
			return fmt.Errorf("failed to verify access code: %w", err)
		}
		if !match {
			return fmt.Errorf("invalid access code")
		}
		return nil
	}

	if subtle.ConstantTimeCompare([]byte(code), []byte(s.config.Auth.UniversalCode)) != 1 {
		return fmt.Errorf("invalid access code")
	}
	return nil
}

// HashAccessCode produces the argon2id hash for ACCESS_CODE_HASH.
func HashAccessCode(code string) (string, error) {
	return argon2id.CreateHash(code, argon2id.DefaultParams)
}

// GenerateAccessCode returns a six-digit company access code.
func GenerateAccessCode() string {
	return fmt.Sprintf("%06d", 100000+rand.Intn(900000))
}
