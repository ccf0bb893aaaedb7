// Package cli carries the shared plumbing for all delo commands: the
// application context, output formatting, exit codes, and flag helpers.
package cli

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kadyrovd/delo/internal/app"
	"github.com/kadyrovd/delo/internal/config"
	"github.com/kadyrovd/delo/internal/database"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App
	Config *config.Config

	db    *sql.DB
	owned bool
}

// NewCLI initializes the CLI: loads config and opens the task database.
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	dbPath, err := cfg.DatabasePath()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve database path: %w", err)
	}

	db, err := database.InitDB(ctx, dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &CLI{
		App:    app.New(db),
		Config: cfg,
		db:     db,
		owned:  true,
	}, nil
}

// NewCLIWithDB wraps an existing database connection without taking
// ownership of it. Used by tests.
func NewCLIWithDB(db *sql.DB, cfg *config.Config) *CLI {
	return &CLI{
		App:    app.New(db),
		Config: cfg,
		db:     db,
	}
}

// Close cleans up CLI resources.
func (c *CLI) Close() error {
	if c.owned && c.db != nil {
		return c.db.Close()
	}
	return nil
}

type contextKey struct{}

// WithCLI stores the CLI instance in a context.
func WithCLI(ctx context.Context, c *CLI) context.Context {
	return context.WithValue(ctx, contextKey{}, c)
}

// GetCLIFromContext retrieves the CLI instance placed in the command
// context by the root command (or a test harness).
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	c, ok := ctx.Value(contextKey{}).(*CLI)
	if !ok || c == nil {
		return nil, errors.New("CLI not initialized in command context")
	}
	return c, nil
}
