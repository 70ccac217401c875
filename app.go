// Package pawsgo provides the application core for a local pet-walking
// marketplace. It is designed to be decoupled from GUI implementations and
// exposes the operations a presentation layer needs: pet registration, walk
// booking, live-walk chat, walker ratings, route preferences, sessions, and
// walk-history export.
//
// The core functionality includes:
//   - A repository of pets, walks, users, and walker stats persisted as JSON
//     blobs in a flat key-value SQLite store
//   - A static walk-route catalog and walker view assembly (seed walkers plus
//     registered ones)
//   - Booking with duration-based pricing and a cancellable live-walk chat
//     simulator
//   - Walk-history export to an xlsx workbook
package pawsgo

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/pawsandgo/pawsgo/domain"
)

// Repository defines the methods consumed by the application core to interact
// with the persisted collections. It is satisfied by db.Repository; tests may
// substitute any implementation of the domain interfaces.
type Repository interface {
	domain.PetRepository
	domain.WalkRepository
	domain.WalkerRepository
	domain.UserRepository
	Close() error
}

// App is the main struct that orchestrates the marketplace core: it owns the
// repository handle, the configuration, and the logger, and carries the
// derived operations (walker assembly, booking, live walks, export) that sit
// on top of the raw collections.
//
// There is exactly one App per process and all its operations are expected to
// run on a single foreground context; last writer wins.
type App struct {
	ConfigDir string       // The configuration directory
	Config    *Config      // The application configuration
	Repo      Repository   // Repository interface over the blob store
	Logger    *zap.Logger  // Structured logger, a no-op logger by default
	Clock     func() time.Time // Clock used for timestamps, injectable in tests
}

// New creates a new App instance with default configuration and applies any
// provided options.
//
// Parameters:
//   - options: Variadic list of option functions to configure the app
//
// Returns:
//   - *App: Configured app instance
//   - error: Configuration error if any option fails
func New(options ...func(*App) error) (*App, error) {
	app := &App{
		Logger: zap.NewNop(),
		Clock:  time.Now,
	}
	err := app.WithOptions(options...)
	if err != nil {
		return nil, err
	}
	return app, nil
}

// Close releases the repository and flushes the logger.
func (app *App) Close() error {
	_ = app.Logger.Sync()
	if app.Repo == nil {
		return nil
	}
	if err := app.Repo.Close(); err != nil {
		return fmt.Errorf("closing app : %w", err)
	}
	return nil
}

// timestamp renders the app clock in the format stored on entities.
func (app *App) timestamp() string {
	return app.Clock().UTC().Format(time.RFC3339)
}
