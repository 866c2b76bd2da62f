// file: cmd/server/http_server.go
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/d4ckard/shuttle/internal/config"
	"github.com/d4ckard/shuttle/internal/lifecycle"
	"github.com/d4ckard/shuttle/internal/logging"
	"github.com/d4ckard/shuttle/internal/metrics"
	"github.com/d4ckard/shuttle/internal/schema"
)

// RunServer starts the name validation API server and blocks until it is
// shut down by a signal. It handles setup, startup, and graceful shutdown.
func RunServer(configPath string, portOverride int, shutdownTimeout time.Duration, debug bool) error {
	// Create a context that can be canceled
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Load configuration
	var cfg *config.Config
	var err error

	if configPath != "" {
		cfg, err = config.LoadFromFile(configPath)
		if err != nil {
			return errors.Wrap(err, "failed to load configuration from file")
		}
	} else {
		cfg = config.DefaultConfig()
	}

	if portOverride > 0 {
		cfg.Server.Port = portOverride
	}

	// Set up logging
	logLevel := cfg.Log.Level
	if debug {
		logLevel = logging.LevelDebug
	}
	logging.SetupDefaultLogger(logLevel)
	logger := logging.GetLogger("server")

	logger.Info("Starting server.",
		"name", cfg.Server.Name,
		"port", cfg.Server.Port,
		"debug", debug)

	machine := lifecycle.NewMachine(logger)
	if err := machine.Fire(ctx, lifecycle.EventStart); err != nil {
		return err
	}

	// Compile the request schema before accepting traffic.
	validator := schema.NewValidator(logging.GetLogger("schema"))
	if err := validator.Initialize(ctx); err != nil {
		return errors.Wrap(err, "failed to initialize request schema validator")
	}

	collector := metrics.NewCollector()
	api := newAPIServer(validator, collector, logging.GetLogger("api"))

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           api.routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("Listening.", "address", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server error.", "error", err)
			cancel() // Cancel context to trigger shutdown
		}
	}()

	if err := machine.Fire(ctx, lifecycle.EventStarted); err != nil {
		return err
	}

	// Wait for signal or context cancellation
	select {
	case sig := <-sigChan:
		logger.Info("Received signal.", "signal", sig.String())
	case <-ctx.Done():
		logger.Info("Context cancelled.")
	}

	// Initiate graceful shutdown
	logger.Info("Shutting down server...")
	if err := machine.Fire(context.Background(), lifecycle.EventStop); err != nil {
		return err
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "server shutdown error")
	}

	if err := machine.Fire(context.Background(), lifecycle.EventStopped); err != nil {
		return err
	}

	logger.Info("Server shutdown complete.")
	return nil
}
