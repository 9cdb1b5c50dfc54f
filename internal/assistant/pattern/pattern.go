// Package pattern holds the intent pattern table, the static name
// registries, and the entity extractors used by the dispatch engine.
package pattern

import (
	"regexp"

	"github.com/pkparthk/Buddy-AI/internal/assistant"
)

// Match is the outcome of a successful pattern scan. Produced fresh per
// call, never retained.
type Match struct {
	Category assistant.Category
	Groups   []string // capture groups, Groups[0] unset-capture == ""
	Raw      string   // the full matched substring
}

// CategoryPatterns binds one category to its ordered pattern list.
type CategoryPatterns struct {
	Category assistant.Category
	Patterns []*regexp.Regexp
}

func compile(exprs ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, len(exprs))
	for i, expr := range exprs {
		compiled[i] = regexp.MustCompile("(?i)" + expr)
	}
	return compiled
}

// Table is the dispatch table. Categories are evaluated top to bottom,
// patterns within a category in declared order; the first match anywhere in
// the normalized query wins. The order is a semantic contract pinned by
// tests, not an artifact.
var Table = []CategoryPatterns{
	{
		Category: assistant.CategoryGreeting,
		Patterns: compile(
			`^(?:hi|hello|hey|good morning|good afternoon|good evening)(?:\s+there)?(?:\s+buddy)?$`,
			`^how are you(?:\s+doing)?(?:\s+today)?$`,
			`^how(?:'s| is) (?:your day|it going)`,
			`^(?:what's up|sup)$`,
		),
	},
	{
		Category: assistant.CategoryIdentity,
		Patterns: compile(
			`who are you`,
			`what(?:'s| is) your name`,
			`what are you called`,
			`tell me about yourself`,
			`what(?:'s| is) your identity`,
			`introduce yourself`,
			`who am i (?:talking|speaking) (?:to|with)`,
			`what kind of (?:ai|assistant) are you`,
		),
	},
	{
		Category: assistant.CategoryDirectOpen,
		Patterns: compile(
			`open (?:the )?(?:website )?(?:called )?(.+?)(?:\s+website|\s+site|\s+app|\s+application)?$`,
			`go to (?:the )?(?:website )?(?:called )?(.+?)(?:\s+website|\s+site)?$`,
			`visit (?:the )?(?:website )?(?:called )?(.+?)(?:\s+website|\s+site)?$`,
			`navigate to (?:the )?(?:website )?(?:called )?(.+?)(?:\s+website|\s+site)?$`,
			`launch (?:the )?(?:website )?(?:called )?(.+?)(?:\s+website|\s+site|\s+app|\s+application)?$`,
		),
	},
	{
		Category: assistant.CategoryWeather,
		Patterns: compile(
			`weather (?:in |for |of )?(.+)`,
			`temperature (?:in |for |of )?(.+)`,
			`(.+) (?:weather|temperature)`,
			`what(?:'s| is) the (?:weather|temperature) (?:in |of |for )?(.+)`,
			`how(?:'s| is) the weather (?:in |of |for )?(.+)`,
		),
	},
	{
		Category: assistant.CategoryAIConversation,
		Patterns: compile(
			// General knowledge answered by AI rather than web search.
			`what is (?:artificial intelligence|ai|machine learning|quantum computing|blockchain|programming)`,
			`explain (?:artificial intelligence|ai|machine learning|quantum computing|blockchain|programming)`,
			`tell me about (?:artificial intelligence|ai|machine learning|quantum computing|blockchain|programming)`,
			`how does (?:artificial intelligence|ai|machine learning|quantum computing|the internet|programming) work`,
			// Creative requests.
			`write (?:a|an) (.+)`,
			`create (?:a|an) (.+)`,
			`tell me a (?:joke|story)`,
			`make (?:a|an) (.+)`,
			// Advice and help.
			`how (?:do i|can i|should i) (.+)`,
			`what should i do (?:if|when|about) (.+)`,
			`help me (?:with|understand) (.+)`,
			`can you help (?:me )?(.+)`,
			// Conversational.
			`what do you think about (.+)`,
			`do you (?:like|enjoy|prefer) (.+)`,
			`are you (.+)`,
			// Educational.
			`explain (.+) in simple terms`,
			`what are the (?:benefits|advantages|disadvantages) of (.+)`,
			`why (?:is|are|do|does) (.+)`,
			`how to (.+) better`,
			`what's the difference between (.+) and (.+)`,
		),
	},
	{
		Category: assistant.CategoryCalculations,
		Patterns: compile(
			`calculate (.+)`,
			`what(?:'s| is) (.+?) (?:\+|\-|\*|\/|\^|plus|minus|times|divided by) (.+)`,
			`convert (.+?) to (.+)`,
			`how many (.+?) in (.+)`,
			`what(?:'s| is) (\d+)% of (\d+)`,
			`(\d+) percent of (\d+)`,
			`solve:? (.+)`,
			`(\d+) (?:\+|\-|\*|\/|\^|plus|minus|times|divided by) (\d+)`,
			`(\d+)%?\s*(?:of|from)\s*(\d+)`,
			`(\d+(?:\.\d+)?)\s*[\+\-\*\/]\s*(\d+(?:\.\d+)?)`,
			`(\d+(?:\.\d+)?)\s+(?:plus|minus|times|divided by)\s+(\d+(?:\.\d+)?)`,
		),
	},
	{
		Category: assistant.CategoryWebSearch,
		Patterns: compile(
			`search (?:for |about )?(.+)`,
			`look up (.+)`,
			`google (.+)`,
			`search (.+) on (.+)`,
			`find (.+) videos?`,
			`show me (.+) tutorials?`,
			`find (?:information about |me )?(.+) (?:website|site|online)`,
			`who is (.+) (?:person|celebrity|actor|musician)`,
			`what is (.+) (?:website|company|organization|movie|book)`,
			`tell me about (.+) (?:news|recent|latest)`,
		),
	},
	{
		Category: assistant.CategorySystemControl,
		Patterns: compile(
			`start (?:the )?(?:application )?(.+)`,
			`run (?:the )?(?:application )?(.+)`,
			`execute (?:the )?(?:application )?(.+)`,
		),
	},
	{
		Category: assistant.CategoryMediaControl,
		Patterns: compile(
			`play (.+)`,
			`pause (.+)`,
			`stop (.+)`,
			`skip (.+)`,
			`next (.+)`,
			`previous (.+)`,
		),
	},
	{
		Category: assistant.CategoryInformation,
		Patterns: compile(
			`what(?:'s| is) the time`,
			`current time`,
			`what(?:'s| is) the date`,
			`today(?:'s| is) date`,
			`news (?:about |on )?(.+)?`,
		),
	},
	{
		Category: assistant.CategorySystemInfo,
		Patterns: compile(
			`battery (?:level|status)`,
			`memory usage`,
			`cpu usage`,
			`disk space`,
			`system (?:info|information)`,
		),
	},
}

// Find scans the table in order and returns the first match, or nil.
func Find(query string) *Match {
	for _, cp := range Table {
		for _, re := range cp.Patterns {
			sub := re.FindStringSubmatch(query)
			if sub == nil {
				continue
			}
			m := &Match{
				Category: cp.Category,
				Raw:      sub[0],
			}
			if len(sub) > 1 {
				m.Groups = sub[1:]
			}
			return m
		}
	}
	return nil
}

// Group returns the i-th capture group (1-based, like regexp submatches) or
// "" when absent.
func (m *Match) Group(i int) string {
	if m == nil || i < 1 || i > len(m.Groups) {
		return ""
	}
	return m.Groups[i-1]
}
