package openweather

import "strings"

// Info is the structured weather payload.
type Info struct {
	Location    string  `json:"location"`
	Temperature float64 `json:"temperature"`
	Description string  `json:"description"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
}

// Result is the uniform lookup outcome: success flag plus a human-readable
// message, with structured data only on success.
type Result struct {
	Success bool
	Message string
	Data    *Info
}

// apiResponse mirrors the fields of the OpenWeatherMap response this client
// actually reads.
type apiResponse struct {
	Name string `json:"name"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

// cityAliases canonicalizes common alternate spellings to a City,CountryCode
// query the API resolves reliably.
var cityAliases = map[string]string{
	"bangalore": "Bengaluru,IN",
	"bengaluru": "Bengaluru,IN",
	"mumbai":    "Mumbai,IN",
	"bombay":    "Mumbai,IN",
	"delhi":     "New Delhi,IN",
	"new delhi": "New Delhi,IN",
	"calcutta":  "Kolkata,IN",
	"kolkata":   "Kolkata,IN",
	"chennai":   "Chennai,IN",
	"madras":    "Chennai,IN",
	"hyderabad": "Hyderabad,IN",
	"pune":      "Pune,IN",
	"ahmedabad": "Ahmedabad,IN",
}

// CanonicalCity normalizes a free-text location into the query sent to the
// API. Placeholder locations map to the default city.
func CanonicalCity(location string) string {
	lower := strings.ToLower(strings.TrimSpace(location))
	switch lower {
	case "", "auto", "current location", "here":
		return defaultLocation
	}
	if canonical, ok := cityAliases[lower]; ok {
		return canonical
	}
	return location
}
