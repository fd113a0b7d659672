package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/vitalis-app/vitalis-bookings/internal/http/handlers"
	mw "github.com/vitalis-app/vitalis-bookings/internal/http/middleware"
	"github.com/vitalis-app/vitalis-bookings/internal/identity"
	"github.com/vitalis-app/vitalis-bookings/internal/ledger"
	"github.com/vitalis-app/vitalis-bookings/internal/notify"
	"github.com/vitalis-app/vitalis-bookings/internal/store/kv"
	"github.com/vitalis-app/vitalis-bookings/internal/store/session"
	"github.com/vitalis-app/vitalis-bookings/internal/wizard"
	"github.com/vitalis-app/vitalis-bookings/pkg/config"
	"github.com/vitalis-app/vitalis-bookings/pkg/events"
	"github.com/vitalis-app/vitalis-bookings/pkg/logger"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	// Session storage backend
	var redisKV *kv.Redis
	var backend kv.Store
	switch cfg.Session.Backend {
	case "redis":
		var err error
		redisKV, err = kv.NewRedis(cfg.Redis.URL, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			logger.Error("Failed to connect to Redis", "error", err)
			os.Exit(1)
		}
		backend = redisKV
	case "memory":
		backend = kv.NewMemory()
	default:
		if err := kv.EnsureDir(cfg.Session.FilePath); err != nil {
			logger.Error("Failed to prepare session file path", "error", err)
			os.Exit(1)
		}
		backend = kv.NewFile(cfg.Session.FilePath)
	}
	store := session.New(backend)

	// Event bus
	eventBus, err := events.NewNATSEventBus(cfg.NATS.URL)
	if err != nil {
		logger.Error("Failed to connect to NATS", "error", err)
		os.Exit(1)
	}
	defer eventBus.Close()

	// Ledger collaborator
	signer := ledger.NewHTTPSigner(cfg.Ledger.SignerURL, cfg.Ledger.RequestTimeout)
	ledgerClient := ledger.NewRPCClient(
		cfg.Ledger.RPCURL,
		cfg.Ledger.PackageID,
		cfg.Ledger.WalletAddress,
		cfg.Ledger.RequestTimeout,
		signer,
	)

	// Services
	identityService := identity.NewService(store, ledgerClient, eventBus, cfg)
	bookingService := wizard.NewService(store, ledgerClient, eventBus, cfg)

	// Notifications
	subscriber := notify.NewSubscriber(eventBus, notify.NewMailer(cfg))
	if err := subscriber.Start(); err != nil {
		logger.Error("Failed to start notification subscriber", "error", err)
		os.Exit(1)
	}

	// Handlers
	h := handlers.New(identityService, bookingService, store)

	// Router
	r := chi.NewRouter()
	r.Use(mw.RequestID)
	r.Use(mw.ServiceName("api"))
	r.Use(mw.Logging)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/catalog", func(r chi.Router) {
		r.Get("/businesses", h.ListBusinesses)
		r.Get("/businesses/{id}", h.GetBusiness)
		r.Get("/businesses/{id}/slots", h.GetSlots)
	})

	r.Route("/auth", func(r chi.Router) {
		if redisKV != nil {
			limiter := mw.NewRateLimiter(redisKV.Client(), mw.RateLimitConfig{
				Requests: 10,
				Window:   time.Minute,
				KeyFunc: func(req *http.Request) []string {
					return []string{"auth:" + mw.ClientIP(req)}
				},
			})
			r.Use(limiter.Middleware())
		}
		r.Post("/register", h.Register)
		r.With(h.RequireSession).Post("/logout", h.Logout)
	})

	r.Group(func(r chi.Router) {
		r.Use(h.RequireSession)

		r.Get("/me", h.Me)
		r.Get("/me/reservations", h.ListReservations)

		r.Route("/bookings", func(r chi.Router) {
			r.Post("/", h.StartBooking)
			r.Get("/", h.GetWizard)
			r.Delete("/", h.CloseBooking)
			r.Post("/service", h.SelectService)
			r.Post("/provider", h.SelectProvider)
			r.Post("/date", h.SelectDate)
			r.Post("/time", h.SelectTime)
			r.Post("/back", h.Back)
			r.Post("/confirm", h.ConfirmBooking)
		})

		r.Route("/reservations", func(r chi.Router) {
			r.Post("/{id}/cancel", h.CancelReservation)
			r.Post("/{id}/complete", h.CompleteReservation)
			r.Post("/reconcile", h.ReconcileReservations)
		})
	})

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Starting Vitalis bookings API", "port", cfg.Server.Port, "session_backend", cfg.Session.Backend)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		logger.Info("Shutting down")
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}
}
