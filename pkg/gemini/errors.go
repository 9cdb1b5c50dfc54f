package gemini

import (
	"errors"
	"net/http"
	"strings"
)

var (
	// ErrQuotaExceeded signals the API refused service due to usage limits.
	// Callers degrade to offline answers instead of surfacing this.
	ErrQuotaExceeded = errors.New("gemini: quota exceeded")

	// ErrMissingAPIKey is returned before any network call when the client
	// was built without a key.
	ErrMissingAPIKey = errors.New("gemini: API key is required")

	// ErrEmptyResponse is returned when the API answered 200 with no usable
	// candidate text.
	ErrEmptyResponse = errors.New("gemini: empty response")
)

// quota/rate markers the API puts in error bodies alongside (or instead of)
// a 429 status.
var quotaMarkers = []string{"quota", "rate limit", "rate_limit", "resource_exhausted", "429"}

func quotaExceeded(status int, body []byte) bool {
	if status == http.StatusTooManyRequests {
		return true
	}
	lower := strings.ToLower(string(body))
	for _, marker := range quotaMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// IsQuotaExceeded reports whether err is (or wraps) a quota exhaustion.
func IsQuotaExceeded(err error) bool {
	return errors.Is(err, ErrQuotaExceeded)
}
