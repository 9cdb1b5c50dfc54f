package usecase

import "github.com/pkparthk/Buddy-AI/internal/assistant"

func (uc *implUseCase) handleGreeting(query string) assistant.CommandResult {
	message, ok := greetingResponses[query]
	if !ok {
		message = greetingDefault
	}
	return assistant.CommandResult{
		Success:       true,
		Message:       message,
		Action:        actionGreeting,
		OriginalQuery: query,
	}
}

func (uc *implUseCase) handleIdentity(query string) assistant.CommandResult {
	message, ok := identityResponses[query]
	if !ok {
		message = identityDefault
	}
	return assistant.CommandResult{
		Success:       true,
		Message:       message,
		Action:        actionIdentity,
		OriginalQuery: query,
	}
}
