// Copyright (c) 2026 Daylist. All rights reserved.
// Author: park.suhyeon.dev@gmail.com

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/suhyeonp/daylist/internal/home/calendar"
	"github.com/suhyeonp/daylist/internal/home/dashboard"
	"github.com/suhyeonp/daylist/internal/home/release"
	"github.com/suhyeonp/daylist/internal/home/todo"
	"github.com/suhyeonp/daylist/internal/platform/config"
	"github.com/suhyeonp/daylist/internal/platform/constants"
	"github.com/suhyeonp/daylist/internal/platform/middleware"
	"github.com/suhyeonp/daylist/internal/users/account"
	"github.com/suhyeonp/daylist/internal/users/identity"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Identity handles the per-provider login callback routes.
	Identity *identity.Handler

	// Account handles signup and profile management.
	Account *account.Handler

	// Todo handles the daily todo list.
	Todo *todo.Handler

	// Release handles the release checklist.
	Release *release.Handler

	// Calendar handles schedule events.
	Calendar *calendar.Handler

	// Dashboard handles the home summary.
	Dashboard *dashboard.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(middleware.Metrics())
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// # Identity Federation
	// One callback route group per external provider.
	r.Mount("/google-authentication", h.Identity.Routes(identity.LoginTypeGoogle))
	r.Mount("/kakao-authentication", h.Identity.Routes(identity.LoginTypeKakao))
	r.Mount("/naver-authentication", h.Identity.Routes(identity.LoginTypeNaver))

	// # Account Lifecycle
	r.Mount("/account", h.Account.Routes())

	// # Application API
	// Session-protected domain route groups.
	r.Route("/api", func(api chi.Router) {
		api.Use(middleware.RequireAuth)
		api.Mount("/todos", h.Todo.Routes())
		api.Mount("/releases", h.Release.Routes())
		api.Mount("/calendar/events", h.Calendar.Routes())
		api.Mount("/dashboard", h.Dashboard.Routes())
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
