package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/pkparthk/Buddy-AI/internal/assistant"
	"github.com/pkparthk/Buddy-AI/internal/assistant/pattern"
)

// handleWebSearch opens the query on the platform the user hinted at,
// defaulting to Google.
func (uc *implUseCase) handleWebSearch(ctx context.Context, query, term string) assistant.CommandResult {
	term = strings.TrimSpace(term)
	if term == "" {
		return assistant.CommandResult{
			Success: true,
			Message: msgIncompleteQuery,
			Action:  actionIncompleteQuery,
		}
	}

	platform := pattern.SearchPlatform(query)
	template, ok := pattern.SearchTemplates[platform]
	if !ok {
		platform = "google"
		template = pattern.SearchTemplates[platform]
	}

	searchURL := strings.Replace(template, "{}", url.QueryEscape(term), 1)
	if err := uc.opener.Open(searchURL); err != nil {
		uc.l.Errorf(ctx, "handleWebSearch: open %s: %v", searchURL, err)
		return assistant.CommandResult{
			Success: false,
			Message: fmt.Sprintf("Could not open search for '%s': %v", term, err),
			Action:  actionWebSearch,
		}
	}

	return assistant.CommandResult{
		Success: true,
		Message: fmt.Sprintf("Searching for '%s' on %s", term, titleCase(platform)),
		Action:  actionWebSearch,
		URL:     searchURL,
	}
}
