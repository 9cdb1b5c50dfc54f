package pattern

import (
	"testing"

	"github.com/pkparthk/Buddy-AI/internal/assistant"
)

func TestTableOrder(t *testing.T) {
	// The dispatch order is a contract; this pins it.
	if len(Table) != len(assistant.AllCategories) {
		t.Fatalf("table has %d categories, want %d", len(Table), len(assistant.AllCategories))
	}
	for i, cp := range Table {
		if cp.Category != assistant.AllCategories[i] {
			t.Errorf("position %d: got %s, want %s", i, cp.Category, assistant.AllCategories[i])
		}
	}
}

func TestTableNoDuplicateCategories(t *testing.T) {
	seen := map[assistant.Category]bool{}
	for _, cp := range Table {
		if seen[cp.Category] {
			t.Errorf("category %s declared twice", cp.Category)
		}
		seen[cp.Category] = true
	}
}

func TestFind(t *testing.T) {
	cases := []struct {
		query string
		want  assistant.Category
	}{
		{"hello", assistant.CategoryGreeting},
		{"how are you", assistant.CategoryGreeting},
		{"who are you", assistant.CategoryIdentity},
		{"open youtube", assistant.CategoryDirectOpen},
		{"go to github", assistant.CategoryDirectOpen},
		{"weather in mumbai", assistant.CategoryWeather},
		{"what is the temperature in delhi", assistant.CategoryWeather},
		{"what is artificial intelligence", assistant.CategoryAIConversation},
		{"tell me a joke", assistant.CategoryAIConversation},
		{"write a poem", assistant.CategoryAIConversation},
		{"calculate 2 + 2", assistant.CategoryCalculations},
		{"what is 15 + 27", assistant.CategoryCalculations},
		{"20 percent of 50", assistant.CategoryCalculations},
		{"search for golang generics", assistant.CategoryWebSearch},
		{"look up regex syntax", assistant.CategoryWebSearch},
		{"run notepad", assistant.CategorySystemControl},
		{"play lo-fi beats", assistant.CategoryMediaControl},
		{"what is the time", assistant.CategoryInformation},
		{"news about technology", assistant.CategoryInformation},
		{"battery status", assistant.CategorySystemInfo},
		{"cpu usage", assistant.CategorySystemInfo},
	}

	for _, tc := range cases {
		t.Run(tc.query, func(t *testing.T) {
			m := Find(tc.query)
			if m == nil {
				t.Fatalf("no match for %q", tc.query)
			}
			if m.Category != tc.want {
				t.Errorf("Find(%q) = %s, want %s", tc.query, m.Category, tc.want)
			}
		})
	}
}

func TestFindPrecedence(t *testing.T) {
	// "open spotify" matches direct_open and (as "play …"-adjacent text)
	// nothing earlier; "weather in delhi videos" matches weather before
	// web_search because weather is declared first.
	m := Find("weather in delhi videos")
	if m == nil || m.Category != assistant.CategoryWeather {
		t.Errorf("expected weather to win, got %+v", m)
	}

	// greeting is declared before identity, so an exact greeting wins even
	// in the presence of later catch-alls.
	m = Find("hello")
	if m == nil || m.Category != assistant.CategoryGreeting {
		t.Errorf("expected greeting, got %+v", m)
	}
}

func TestFindNoMatch(t *testing.T) {
	if m := Find("quantum entanglement of pastrami"); m != nil {
		t.Errorf("expected no match, got %+v", m)
	}
}

func TestMatchGroups(t *testing.T) {
	m := Find("open youtube")
	if m == nil {
		t.Fatal("no match")
	}
	if got := m.Group(1); got != "youtube" {
		t.Errorf("Group(1) = %q, want %q", got, "youtube")
	}
	if got := m.Group(5); got != "" {
		t.Errorf("out-of-range group should be empty, got %q", got)
	}
}

func TestLocation(t *testing.T) {
	cases := []struct {
		query string
		want  string
	}{
		{"what is the weather in mumbai", "mumbai"},
		{"tell me about the temperature of new york", "new york"},
		{"weather", "current location"},
	}
	for _, tc := range cases {
		if got := Location(tc.query); got != tc.want {
			t.Errorf("Location(%q) = %q, want %q", tc.query, got, tc.want)
		}
	}
}

func TestSearchPlatform(t *testing.T) {
	cases := []struct {
		query string
		want  string
	}{
		{"funny cat videos", "youtube"},
		{"python index error", "stackoverflow"},
		{"buy mechanical keyboard", "amazon"},
		{"directions to the airport", "maps"},
		{"latest tech news", "reddit"},
		{"history of rome", "google"},
	}
	for _, tc := range cases {
		if got := SearchPlatform(tc.query); got != tc.want {
			t.Errorf("SearchPlatform(%q) = %q, want %q", tc.query, got, tc.want)
		}
	}
}

func TestTopic(t *testing.T) {
	m := Find("news about technology")
	if m == nil {
		t.Fatal("no match")
	}
	if got := Topic(m); got != "technology" {
		t.Errorf("Topic = %q, want technology", got)
	}

	m = Find("what is the time")
	if got := Topic(m); got != "general" {
		t.Errorf("Topic without capture = %q, want general", got)
	}
}
