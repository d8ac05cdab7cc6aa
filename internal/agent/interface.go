package agent

import (
	"context"

	"conversational-task-manager/internal/model"
)

// UseCase is the natural-language command router. Handle is stateless:
// every call is a pure function of (scope, message) plus the store
// reads and writes it performs. Nothing survives between calls.
type UseCase interface {
	// Handle classifies the message, resolves the referenced task if
	// any, dispatches exactly one store operation, and renders the
	// outcome as a short reply. It never returns an error: every
	// failure becomes an error-shaped Reply.
	Handle(ctx context.Context, sc model.Scope, message string) Reply
}
