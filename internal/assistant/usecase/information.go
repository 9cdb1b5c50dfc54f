package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/pkparthk/Buddy-AI/internal/assistant"
	"github.com/pkparthk/Buddy-AI/internal/assistant/pattern"
	"github.com/pkparthk/Buddy-AI/pkg/newsapi"
)

// handleInformation answers time, date, weather, and news queries. The
// clock answers are local and never fail; weather and news go through
// their clients.
func (uc *implUseCase) handleInformation(ctx context.Context, m *pattern.Match, query string) assistant.CommandResult {
	switch {
	case strings.Contains(query, "time"):
		now := time.Now().Format("3:04 PM")
		return assistant.CommandResult{
			Success: true,
			Message: "The current time is " + now,
			Action:  actionTimeInfo,
			Data:    now,
		}

	case strings.Contains(query, "date"):
		today := time.Now().Format("Monday, January 2, 2006")
		return assistant.CommandResult{
			Success: true,
			Message: "Today is " + today,
			Action:  actionDateInfo,
			Data:    today,
		}

	case strings.Contains(query, "weather") || strings.Contains(query, "temperature"):
		location := strings.TrimSpace(m.Group(1))
		if location == "" || location == "current location" {
			location = pattern.Location(query)
		}
		return uc.weatherLookup(ctx, location)

	case strings.Contains(query, "news"):
		topic := pattern.Topic(m)
		res := uc.news.Headlines(ctx, topic, newsapi.DefaultCount)
		return assistant.CommandResult{
			Success: res.Success,
			Message: res.Message,
			Action:  actionNewsInfo,
			Data:    res.Articles,
		}
	}

	return assistant.CommandResult{
		Success: false,
		Message: "Could not process information request",
		Action:  actionInformation,
	}
}
