package usecase

import (
	"context"

	"github.com/pkparthk/Buddy-AI/internal/assistant"
	"github.com/pkparthk/Buddy-AI/internal/model"
	"github.com/pkparthk/Buddy-AI/pkg/gemini"
)

// handleConversation answers a conversational query with the generative
// backend, framed by the session transcript. Backend failure never
// propagates: quota exhaustion and any other error both degrade to curated
// offline answers, still success=true with a Note.
func (uc *implUseCase) handleConversation(ctx context.Context, sc model.Scope, query string) assistant.CommandResult {
	transcript := uc.sessions.Get(sc.SessionID)

	reply, err := uc.llm.GenerateText(ctx, transcript.PromptFor(query))
	if err == nil {
		transcript.Append(query, reply)
		return assistant.CommandResult{
			Success:       true,
			Message:       reply,
			Action:        actionAIConversation,
			OriginalQuery: query,
		}
	}

	note := noteOfflineFallback
	if gemini.IsQuotaExceeded(err) {
		note = noteQuotaFallback
	}
	uc.l.Warnf(ctx, "handleConversation: backend failed, degrading: %v", err)

	return assistant.CommandResult{
		Success:       true,
		Message:       curatedAnswer(query),
		Action:        actionAIConversation,
		OriginalQuery: query,
		Note:          note,
	}
}
