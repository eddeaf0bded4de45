// Copyright (c) 2026 Violeta. All rights reserved.
// Author: hola@violetaproject.org

// Command api is the entry point for the Violeta HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to Redis when configured (in-memory fallbacks otherwise).
//  4. Load the seed catalogue into the in-memory stores.
//  5. Wire HTTP handlers.
//  6. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/violetaproject/violeta/internal/analytics"
	"github.com/violetaproject/violeta/internal/api"
	"github.com/violetaproject/violeta/internal/core/content"
	"github.com/violetaproject/violeta/internal/core/hashtag"
	"github.com/violetaproject/violeta/internal/core/i18n"
	"github.com/violetaproject/violeta/internal/core/search"
	"github.com/violetaproject/violeta/internal/platform/config"
	"github.com/violetaproject/violeta/internal/platform/constants"
	redisstore "github.com/violetaproject/violeta/internal/platform/redis"
	"github.com/violetaproject/violeta/internal/platform/sec"
	"github.com/violetaproject/violeta/internal/seed"
	"github.com/violetaproject/violeta/internal/session"
	"github.com/violetaproject/violeta/internal/users/auth"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", "violeta"))
	slog.SetDefault(log)

	log.Info("[Violeta] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", "violeta"))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("default_language", cfg.DefaultLanguage),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. Redis (optional) ───────────────────────────────────────────────
	// Analytics counters and session preferences survive restarts with
	// Redis; without it both fall back to in-memory implementations.
	var rdb *goredis.Client
	if cfg.RedisURL != "" {
		rdb, err = redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer func() {
			log.Info("closing redis client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis close error", slog.Any("error", cerr))
			}
		}()
	} else {
		log.Info("redis_not_configured", slog.String("fallback", "in-memory"))
	}

	// ── 4. Auth Service ───────────────────────────────────────────────────
	jwtSvc, err := sec.NewTokenService(cfg.SessionSecret, constants.AuthIssuer)
	must(log, err, "initialize jwt service")

	// ── 5. Domain Wiring ──────────────────────────────────────────────────
	hashtagStore := hashtag.NewMemoryStore()
	hashtagService := hashtag.NewService(hashtagStore, log)
	hashtagHandler := hashtag.NewHandler(hashtagService)

	contentStore := content.NewMemoryStore()
	contentService := content.NewService(contentStore, log)
	contentHandler := content.NewHandler(contentService)

	must(log, seed.Load(startupCtx, hashtagService, contentService, log), "load seed catalogue")

	var reporter search.Reporter
	var sessionStore session.Store
	if rdb != nil {
		reporter = analytics.NewRedisReporter(rdb, log)
		sessionStore = session.NewRedisStore(rdb, log)
	} else {
		reporter = analytics.NewMemoryReporter()
		sessionStore = session.NewMemoryStore()
	}

	searchService := search.NewService(contentStore, search.NewLexicon(), reporter, log)
	searchHandler := search.NewHandler(searchService)

	defaultLang := i18n.Normalize(cfg.DefaultLanguage)
	sessionHandler := session.NewHandler(sessionStore, defaultLang, cfg.IsProduction())

	authService := auth.NewService(cfg.AdminUsername, cfg.AdminPasswordHash, jwtSvc, log)
	authHandler := auth.NewHandler(authService)

	// ── 6. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckCatalogue: func() error {
			records, err := contentStore.List(context.Background())
			if err != nil {
				return err
			}
			if len(records) == 0 {
				return fmt.Errorf("catalogue is empty")
			}
			return nil
		},
		CheckCache: redisCheck(rdb),
	}, log)

	// ── 7. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Auth:      authHandler,
		Content:   contentHandler,
		Hashtag:   hashtagHandler,
		Search:    searchHandler,
		Session:   sessionHandler,
	}

	server := api.NewServer(context.Background(), cfg, log, jwtSvc, handlers)

	// ── 8. Graceful Shutdown ──────────────────────────────────────────────
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

// redisCheck returns a readiness checker for the Redis client, or nil when
// Redis is not configured.
func redisCheck(rdb *goredis.Client) func() error {
	if rdb == nil {
		return nil
	}
	return func() error {
		return redisstore.Ping(context.Background(), rdb)
	}
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
