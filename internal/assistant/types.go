package assistant

// Category is an intent bucket. The order of AllCategories is the dispatch
// order: the first category whose pattern matches wins, so reordering this
// list is a behavior change.
type Category string

const (
	CategoryGreeting       Category = "greeting"
	CategoryIdentity       Category = "identity"
	CategoryDirectOpen     Category = "direct_open"
	CategoryWeather        Category = "weather"
	CategoryAIConversation Category = "ai_conversation"
	CategoryCalculations   Category = "calculations"
	CategoryWebSearch      Category = "web_search"
	CategorySystemControl  Category = "system_control"
	CategoryMediaControl   Category = "media_control"
	CategoryInformation    Category = "information"
	CategorySystemInfo     Category = "system_info"
)

// AllCategories in declaration (= evaluation) order.
var AllCategories = []Category{
	CategoryGreeting,
	CategoryIdentity,
	CategoryDirectOpen,
	CategoryWeather,
	CategoryAIConversation,
	CategoryCalculations,
	CategoryWebSearch,
	CategorySystemControl,
	CategoryMediaControl,
	CategoryInformation,
	CategorySystemInfo,
}

// CommandResult is the canonical output of every handler and every fallback
// stage. Success=true does not promise a useful answer: degraded answers
// stay Success=true with Note set; Success=false is reserved for hard
// failures (handler panic, missing sensor, failed launch, unreachable API).
type CommandResult struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	Action        string `json:"action"`
	Data          any    `json:"data,omitempty"`
	Note          string `json:"note,omitempty"`
	URL           string `json:"url,omitempty"`
	OriginalQuery string `json:"original_query,omitempty"`
}

// ProcessInput is the single inbound operation's payload.
type ProcessInput struct {
	Query string
}
