package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/pkparthk/Buddy-AI/internal/assistant"
	"github.com/pkparthk/Buddy-AI/internal/assistant/pattern"
)

// handleMediaControl routes "play X" to a YouTube search and answers the
// other transport verbs with a polite limitation notice, since there is no
// media session to control.
func (uc *implUseCase) handleMediaControl(ctx context.Context, query, target string) assistant.CommandResult {
	target = strings.TrimSpace(target)
	if strings.HasPrefix(query, "play") && target != "" {
		searchURL := strings.Replace(pattern.SearchTemplates["youtube"], "{}", url.QueryEscape(target), 1)
		if err := uc.opener.Open(searchURL); err != nil {
			uc.l.Errorf(ctx, "handleMediaControl: open %s: %v", searchURL, err)
			return assistant.CommandResult{
				Success: false,
				Message: fmt.Sprintf("Could not play '%s': %v", target, err),
				Action:  actionMediaControl,
			}
		}
		return assistant.CommandResult{
			Success: true,
			Message: fmt.Sprintf("Playing '%s' on YouTube", target),
			Action:  actionMediaControl,
			URL:     searchURL,
		}
	}

	return assistant.CommandResult{
		Success: true,
		Message: "I can start media by searching YouTube, but I can't control playback on this device yet.",
		Action:  actionMediaControl,
	}
}
