package cli

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/internlog/internal/app"
	"github.com/thenoetrevino/internlog/internal/config"
	"github.com/thenoetrevino/internlog/internal/database"
	"github.com/thenoetrevino/internlog/internal/logging"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App       // Application container with services
	Config *config.Config // Effective configuration for this invocation

	// borrowed is set when App belongs to the caller (tests) and must not be closed
	borrowed bool
}

// NewCLI opens the configured database and wires the application services
func NewCLI(ctx context.Context, cfg *config.Config) (*CLI, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	path, err := cfg.DatabasePath()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve database path: %w", err)
	}

	application, err := app.Open(ctx, path,
		app.WithLogger(logging.Logger),
		app.WithTotalDays(cfg.Program.TotalDays),
		app.WithTaskLimit(cfg.Tasks.Limit),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &CLI{App: application, Config: cfg}, nil
}

// Repo returns the data store behind the services
func (c *CLI) Repo() database.DataStore {
	return c.App.Repo()
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if c.borrowed {
		return nil
	}
	return c.App.Close()
}
