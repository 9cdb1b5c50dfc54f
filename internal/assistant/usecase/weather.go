package usecase

import (
	"context"
	"strings"

	"github.com/pkparthk/Buddy-AI/internal/assistant"
	"github.com/pkparthk/Buddy-AI/internal/assistant/pattern"
)

func (uc *implUseCase) handleWeather(ctx context.Context, m *pattern.Match, query string) assistant.CommandResult {
	location := strings.TrimSpace(m.Group(1))
	if location == "" {
		location = pattern.Location(query)
	}
	return uc.weatherLookup(ctx, location)
}

func (uc *implUseCase) weatherLookup(ctx context.Context, location string) assistant.CommandResult {
	res := uc.weather.Current(ctx, location)

	result := assistant.CommandResult{
		Success: res.Success,
		Message: res.Message,
		Action:  actionWeatherInfo,
	}
	if res.Data != nil {
		result.Data = res.Data
	}
	return result
}
