package pattern

import "strings"

// weatherStopwords are stripped from a query when inferring a location the
// regex capture did not provide.
var weatherStopwords = map[string]struct{}{
	"weather": {}, "temperature": {}, "what": {}, "is": {}, "the": {},
	"in": {}, "for": {}, "of": {}, "how": {}, "tell": {}, "me": {}, "about": {},
}

// Location infers a location from a weather query by dropping stopwords.
// Never fails: an empty remainder yields "current location".
func Location(query string) string {
	var kept []string
	for _, word := range strings.Fields(strings.ToLower(query)) {
		if _, stop := weatherStopwords[word]; !stop {
			kept = append(kept, word)
		}
	}
	if location := strings.TrimSpace(strings.Join(kept, " ")); location != "" {
		return location
	}
	return "current location"
}

// Topic returns the first capture group of a match, defaulting to
// "general".
func Topic(m *Match) string {
	if topic := strings.TrimSpace(m.Group(1)); topic != "" {
		return topic
	}
	return "general"
}

// platformKeywords route a search query to the platform whose keyword set
// matches first; declaration order is the priority order.
var platformKeywords = []struct {
	platform string
	words    []string
}{
	{"youtube", []string{"video", "watch", "tutorial", "how to", "music", "song"}},
	{"stackoverflow", []string{"code", "programming", "python", "javascript", "error", "bug"}},
	{"amazon", []string{"buy", "purchase", "price", "product", "shop"}},
	{"maps", []string{"location", "address", "directions", "near me", "restaurant"}},
	{"reddit", []string{"news", "trending", "latest"}},
}

// SearchPlatform chooses the destination platform for a web search query.
// Defaults to google.
func SearchPlatform(query string) string {
	lower := strings.ToLower(query)
	for _, pk := range platformKeywords {
		for _, word := range pk.words {
			if strings.Contains(lower, word) {
				return pk.platform
			}
		}
	}
	return "google"
}
