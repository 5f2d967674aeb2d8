package observability

import (
	"context"

	"github.com/google/uuid"
)

// runIDKey is unexported so no other package can set or shadow the run ID.
type runIDKey struct{}

// NewRunID returns a random identifier for one batch run.
func NewRunID() string {
	return uuid.NewString()
}

// StartRun attaches a fresh run ID to ctx and returns both.
func StartRun(ctx context.Context) (context.Context, string) {
	id := NewRunID()
	return ContextWithRunID(ctx, id), id
}

func ContextWithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runIDKey{}, id)
}

// RunIDFromContext returns the run ID in ctx, or "" when none was attached.
func RunIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(runIDKey{}).(string)
	return id
}
