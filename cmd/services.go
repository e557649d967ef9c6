package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/focuspulse/pulse/internal/adapters/guard"
	"github.com/focuspulse/pulse/internal/adapters/notification"
	"github.com/focuspulse/pulse/internal/adapters/storage"
	"github.com/focuspulse/pulse/internal/adapters/workspace"
	"github.com/focuspulse/pulse/internal/config"
	"github.com/focuspulse/pulse/internal/ports"
	"github.com/focuspulse/pulse/internal/services"
)

// appDeps groups all service-layer dependencies initialized at startup.
type appDeps struct {
	storage   ports.Storage
	sessions  *services.SessionService
	tasks     *services.TaskService
	workspace ports.WorkspaceDetector
	guard     ports.DistractionGuard
	notifier  *notification.Notifier
	config    *config.Config
}

// app holds all initialized service dependencies.
// Populated by initializeServices() and accessible to all commands.
var app appDeps

// initializeServices sets up all the required services and adapters.
func initializeServices() error {
	// Load configuration
	var err error
	app.config, err = config.Load()
	if err != nil {
		// If config loading fails, use defaults
		app.config = config.DefaultConfig()
	}

	// Initialize notifier
	app.notifier = notification.New(&app.config.Notifications)

	// Determine database path
	if dbPath == "" {
		dbPath = config.GetDBPath(app.config)
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0750); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}

	// Initialize storage
	app.storage, err = storage.New(dbPath)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	// Initialize adapters and services
	app.workspace = workspace.NewDetector()
	app.guard = guard.NewStub()
	app.sessions = services.NewSessionService(app.storage, app.workspace)
	app.tasks = services.NewTaskService(app.storage)

	return nil
}

// cleanupServices closes all resources.
func cleanupServices() error {
	if app.storage != nil {
		return app.storage.Close()
	}
	return nil
}

// setupSignalHandler sets up a context that cancels on interrupt signals.
func setupSignalHandler() context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		cancel()
	}()

	return ctx
}
