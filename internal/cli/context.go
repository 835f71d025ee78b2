package cli

import (
	"context"
	"errors"
)

type contextKey struct{}

// ErrNoCLI is returned when a command runs without a CLI in its context
var ErrNoCLI = errors.New("cli not initialized")

// WithCLI stores c in ctx for the command tree
func WithCLI(ctx context.Context, c *CLI) context.Context {
	return context.WithValue(ctx, contextKey{}, c)
}

// GetCLIFromContext returns the CLI stored by WithCLI
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		return nil, ErrNoCLI
	}
	c, ok := ctx.Value(contextKey{}).(*CLI)
	if !ok || c == nil {
		return nil, ErrNoCLI
	}
	return c, nil
}
