package assistant

import (
	"context"

	"github.com/pkparthk/Buddy-AI/internal/model"
)

// UseCase is the command classification and dispatch engine.
type UseCase interface {
	// Process classifies the query, runs the matching category handler and,
	// when no confident answer exists, degrades through the fallback chain.
	// The returned error is non-nil only for contract violations (empty
	// query); every conversational outcome is a CommandResult.
	Process(ctx context.Context, sc model.Scope, input ProcessInput) (CommandResult, error)

	// Reset discards the session's conversation transcript.
	Reset(ctx context.Context, sc model.Scope)
}
