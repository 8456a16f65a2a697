// Copyright (c) 2026 Daylist. All rights reserved.
// Author: park.suhyeon.dev@gmail.com

// Command api is the entry point for the Daylist HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis (optional, for login state nonces).
//  5. Run database migrations (idempotent).
//  6. Wire HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/suhyeonp/daylist/internal/api"
	"github.com/suhyeonp/daylist/internal/home/calendar"
	"github.com/suhyeonp/daylist/internal/home/dashboard"
	"github.com/suhyeonp/daylist/internal/home/release"
	"github.com/suhyeonp/daylist/internal/home/todo"
	"github.com/suhyeonp/daylist/internal/platform/config"
	"github.com/suhyeonp/daylist/internal/platform/constants"
	"github.com/suhyeonp/daylist/internal/platform/migration"
	pgstore "github.com/suhyeonp/daylist/internal/platform/postgres"
	redisstore "github.com/suhyeonp/daylist/internal/platform/redis"
	"github.com/suhyeonp/daylist/internal/platform/sec"
	"github.com/suhyeonp/daylist/internal/users/account"
	"github.com/suhyeonp/daylist/internal/users/identity"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("[Daylist] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis (optional) ───────────────────────────────────────────────
	// The login state nonces live in Redis when REDIS_URL is set. A single
	// node process can run on the in-memory store instead.
	var stateStore identity.StateStore = identity.NewMemoryStateStore()
	var checkStateStore func() error
	if cfg.RedisURL != "" {
		rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer func() {
			log.Info("closing redis client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis close error", slog.Any("error", cerr))
			}
		}()
		stateStore = identity.NewRedisStateStore(rdb)
		checkStateStore = func() error {
			return redisstore.Ping(context.Background(), rdb)
		}
	} else {
		log.Info("redis_not_configured", slog.String("state_store", "memory"))
	}

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Session Token Service ──────────────────────────────────────────
	jwtSvc, err := sec.NewTokenService(cfg.JWTSecret, constants.AuthIssuer, cfg.JWTTTL)
	must(log, err, "initialize jwt service")

	// ── 7. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckStateStore: checkStateStore,
	}, log)

	// ── 8. Domain Wiring ──────────────────────────────────────────────────
	providerClient := &http.Client{Timeout: constants.ProviderCallTimeout}
	providers := []identity.Provider{
		identity.NewGoogleAdapter(cfg.Google, providerClient),
		identity.NewKakaoAdapter(cfg.Kakao, providerClient),
		identity.NewNaverAdapter(cfg.Naver, providerClient),
	}

	accountRepository := account.NewPostgresRepository(pool)
	accountService := account.NewService(accountRepository, jwtSvc)
	accountHandler := account.NewHandler(accountService)

	identityService := identity.NewService(providers, accountRepository, jwtSvc, stateStore, log)
	identityHandler := identity.NewHandler(identityService, identity.NewResponder(cfg.PostMessageOrigin))

	todoRepository := todo.NewPostgresRepository(pool)
	todoHandler := todo.NewHandler(todo.NewService(todoRepository, log))

	releaseHandler := release.NewHandler(release.NewService(release.NewPostgresRepository(pool), log))
	calendarHandler := calendar.NewHandler(calendar.NewService(calendar.NewPostgresRepository(pool), log))

	dashboardService := dashboard.NewService(dashboard.NewPostgresRepository(pool), todoRepository, log)
	dashboardHandler := dashboard.NewHandler(dashboardService)

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Identity:  identityHandler,
		Account:   accountHandler,
		Todo:      todoHandler,
		Release:   releaseHandler,
		Calendar:  calendarHandler,
		Dashboard: dashboardHandler,
	}

	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, jwtSvc, handlers)

	// ── 10. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
