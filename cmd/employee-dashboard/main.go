// main is the entry point of the Employee Dashboard API.
//
// STARTUP SEQUENCE:
//  1. Load configuration from a YAML file
//  2. Initialise the logger
//  3. Open the SQLite key-value store
//  4. Initialise the session gate and load the employee roster
//  5. Register all HTTP routes
//  6. Start the HTTP server in a separate goroutine
//  7. Block the main goroutine until an OS signal (Ctrl+C / kill) arrives
//  8. Gracefully shut down: finish in-flight requests, then exit
//
// RUNNING THE SERVER:
//
//	go run ./cmd/employee-dashboard --config=config/local.yaml
//
// or (with the environment variable):
//
//	CONFIG_PATH=config/local.yaml go run ./cmd/employee-dashboard
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aanand-mishra/employee-dashboard/internal/config"
	"github.com/aanand-mishra/employee-dashboard/internal/employee"
	"github.com/aanand-mishra/employee-dashboard/internal/http/router"
	"github.com/aanand-mishra/employee-dashboard/internal/session"
	"github.com/aanand-mishra/employee-dashboard/internal/storage/sqlite"
	"github.com/aanand-mishra/employee-dashboard/internal/utils/logger"
)

func main() {
	// ── 1. Load Config ────────────────────────────────────────────────────
	cfg := config.MustLoad()

	// ── 2. Initialise Logger ──────────────────────────────────────────────
	// Handlers log through slog's package-level functions, so the logger
	// is also installed as the default.
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	log.Info("starting employee-dashboard",
		slog.String("env", cfg.Env),
		slog.String("version", "1.0.0"),
	)

	// ── 3. Initialise Storage ─────────────────────────────────────────────
	store, err := sqlite.New(cfg.StoragePath)
	if err != nil {
		log.Error("failed to initialise storage",
			slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer store.Close()

	log.Info("storage initialised",
		slog.String("path", cfg.StoragePath))

	// ── 4. Session gate and roster ────────────────────────────────────────
	// Both read their persisted entry exactly once, here, before the
	// first request can be served.
	ctx := context.Background()

	sess := session.New(store, log, cfg.Auth.Token)
	if err := sess.Initialize(ctx); err != nil {
		log.Error("failed to initialise session", slog.String("error", err.Error()))
		os.Exit(1)
	}

	employees := employee.New(store, log)
	employees.Subscribe(func(ev employee.Event) {
		st := employees.Stats()
		log.Debug("roster changed",
			slog.String("event", string(ev.Kind)),
			slog.String("id", ev.Employee.ID),
			slog.Int("total", st.Total),
			slog.Int("active", st.Active),
			slog.Int("inactive", st.Inactive))
	})
	if err := employees.Load(ctx); err != nil {
		log.Error("failed to load employees", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// ── 5. Create the HTTP Server ─────────────────────────────────────────
	server := &http.Server{
		Addr:    cfg.HTTPServer.Addr,
		Handler: router.New(sess, employees),

		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// ── 6. Start Server in a Goroutine ────────────────────────────────────
	go func() {
		log.Info("server started", slog.String("address", cfg.HTTPServer.Addr))

		if err := server.ListenAndServe(); err != nil &&
			err != http.ErrServerClosed {
			log.Error("server encountered an error",
				slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// ── 7. Wait for Shutdown Signal ───────────────────────────────────────
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	<-done

	log.Info("shutdown signal received, stopping server...")

	// ── 8. Graceful Shutdown ──────────────────────────────────────────────
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown server gracefully",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}
