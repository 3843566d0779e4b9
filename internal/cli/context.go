package cli

import (
	"context"

	"github.com/thenoetrevino/internlog/internal/app"
	"github.com/thenoetrevino/internlog/internal/config"
)

type (
	configKey struct{}
	appKey    struct{}
)

// WithApp makes GetCLIFromContext use a instead of opening the database.
// The app is borrowed: closing the CLI leaves it open.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey{}, a)
}

// WithConfig stores the loaded configuration for subcommands
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// ConfigFromContext returns the configuration stored by WithConfig, or the
// defaults when the command runs outside the root command.
func ConfigFromContext(ctx context.Context) *config.Config {
	if ctx != nil {
		if cfg, ok := ctx.Value(configKey{}).(*config.Config); ok && cfg != nil {
			return cfg
		}
	}
	return config.Default()
}

// GetCLIFromContext returns a CLI for the command.
// An app stored with WithApp is used as-is and left open on Close.
// Otherwise the configured database is opened.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg := ConfigFromContext(ctx)

	if a, ok := ctx.Value(appKey{}).(*app.App); ok && a != nil {
		return &CLI{App: a, Config: cfg, borrowed: true}, nil
	}

	return NewCLI(ctx, cfg)
}
