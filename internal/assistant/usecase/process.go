package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkparthk/Buddy-AI/internal/assistant"
	"github.com/pkparthk/Buddy-AI/internal/assistant/pattern"
	"github.com/pkparthk/Buddy-AI/internal/model"
)

// Process classifies and dispatches one query. Handler panics are recovered
// at this boundary into a success=false error result; everything else
// degrades into a success=true answer.
func (uc *implUseCase) Process(ctx context.Context, sc model.Scope, input assistant.ProcessInput) (assistant.CommandResult, error) {
	if strings.TrimSpace(input.Query) == "" {
		return assistant.CommandResult{}, assistant.ErrEmptyQuery
	}

	query := strings.ToLower(strings.TrimSpace(input.Query))
	uc.l.Infof(ctx, "Process: session=%s query=%q", sc.SessionID, query)

	result := uc.dispatch(ctx, sc, query)

	if result.Success {
		uc.voice.Say(result.Message)
	}
	return result, nil
}

// Reset discards the session's conversation transcript.
func (uc *implUseCase) Reset(ctx context.Context, sc model.Scope) {
	uc.sessions.Reset(sc.SessionID)
	uc.l.Infof(ctx, "Reset: session=%s", sc.SessionID)
}

func (uc *implUseCase) dispatch(ctx context.Context, sc model.Scope, query string) (result assistant.CommandResult) {
	// The one path allowed to produce success=false for ordinary input.
	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "dispatch: handler panic: %v", r)
			result = assistant.CommandResult{
				Success: false,
				Message: fmt.Sprintf("Error executing command: %v", r),
				Action:  actionError,
			}
		}
	}()

	// In-band reset command, before any pattern work.
	if strings.Contains(query, "reset chat") {
		uc.sessions.Reset(sc.SessionID)
		return assistant.CommandResult{
			Success: true,
			Message: msgChatReset,
			Action:  actionResetChat,
		}
	}

	if len(query) < 3 {
		return assistant.CommandResult{
			Success: true,
			Message: msgIncompleteQuery,
			Action:  actionIncompleteQuery,
		}
	}

	// A truncated weather phrasing would otherwise match the weather
	// pattern with a junk location and run a useless lookup.
	if strings.HasPrefix(query, "what is temperature") && len(strings.Fields(query)) <= 4 {
		return assistant.CommandResult{
			Success: true,
			Message: msgIncompleteWeather,
			Action:  actionIncompleteWeather,
		}
	}

	m := pattern.Find(query)
	if m == nil {
		return uc.interpret(ctx, sc, query)
	}

	switch m.Category {
	case assistant.CategoryGreeting:
		return uc.handleGreeting(query)
	case assistant.CategoryIdentity:
		return uc.handleIdentity(query)
	case assistant.CategoryDirectOpen:
		return uc.handleDirectOpen(ctx, m.Group(1), query)
	case assistant.CategoryWeather:
		return uc.handleWeather(ctx, m, query)
	case assistant.CategoryAIConversation:
		return uc.handleConversation(ctx, sc, query)
	case assistant.CategoryCalculations:
		// The full matched text, not a capture group: the arithmetic arms
		// need the operator, which "what is (lhs) op (rhs)" style captures
		// would split away.
		return uc.handleCalculation(ctx, m.Raw)
	case assistant.CategoryWebSearch:
		return uc.handleWebSearch(ctx, query, m.Group(1))
	case assistant.CategorySystemControl:
		return uc.handleSystemControl(ctx, m.Group(1))
	case assistant.CategoryMediaControl:
		return uc.handleMediaControl(ctx, query, m.Group(1))
	case assistant.CategoryInformation:
		return uc.handleInformation(ctx, m, query)
	case assistant.CategorySystemInfo:
		return uc.handleSystemInfo(ctx, query)
	default:
		return uc.interpret(ctx, sc, query)
	}
}
