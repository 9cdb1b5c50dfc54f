package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const (
	defaultAPIURL  = "https://api.openweathermap.org/data/2.5/weather"
	defaultTimeout = 10 * time.Second

	// defaultLocation answers "weather here" style queries; IP geolocation
	// is out of scope, so an explicit city stands in.
	defaultLocation = "London"
)

// Client is the OpenWeatherMap current-weather API client.
type Client struct {
	apiKey     string
	apiURL     string
	httpClient *http.Client
}

// NewClient creates a new OpenWeatherMap client with the given API key.
// An empty key is allowed; lookups then fail with a configuration message.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		apiURL:     defaultAPIURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// Current looks up current weather for a location. The three credential /
// lookup failures are distinct, user-visible messages; only transport
// problems come back as errors.
func (c *Client) Current(ctx context.Context, location string) Result {
	if c.apiKey == "" {
		return Result{
			Success: false,
			Message: "Weather API key not configured. Please set OPENWEATHER_API_KEY environment variable.",
		}
	}

	query := CanonicalCity(location)

	params := url.Values{}
	params.Set("q", query)
	params.Set("appid", c.apiKey)
	params.Set("units", "metric")

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+"?"+params.Encode(), nil)
	if err != nil {
		return Result{Success: false, Message: fmt.Sprintf("Error getting weather: %v", err)}
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return Result{Success: false, Message: fmt.Sprintf("Network error getting weather: %v", err)}
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// fall through to decode
	case http.StatusUnauthorized:
		return Result{
			Success: false,
			Message: "Weather API key is invalid or not activated yet. Please check your OpenWeatherMap API key or wait for activation (can take up to 2 hours).",
		}
	case http.StatusNotFound:
		return Result{
			Success: false,
			Message: fmt.Sprintf("Location '%s' not found. Please try a different city name or include country code (e.g., 'London,UK').", location),
		}
	default:
		return Result{
			Success: false,
			Message: fmt.Sprintf("Could not get weather for %s. API returned status %d.", location, resp.StatusCode),
		}
	}

	var body apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Result{Success: false, Message: fmt.Sprintf("Error getting weather: %v", err)}
	}

	info := Info{
		Location:    body.Name,
		Temperature: body.Main.Temp,
		Humidity:    body.Main.Humidity,
		WindSpeed:   body.Wind.Speed,
	}
	if len(body.Weather) > 0 {
		info.Description = body.Weather[0].Description
	}

	return Result{
		Success: true,
		Message: fmt.Sprintf(
			"The temperature in %s is %.1f°C with %s. Humidity is at %d%% and wind speed is %.1f m/s.",
			info.Location, info.Temperature, info.Description, info.Humidity, info.WindSpeed,
		),
		Data: &info,
	}
}
