package newsapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestClient(t *testing.T, key string, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient(key)
	c.apiURL = srv.URL
	return c
}

func TestHeadlines(t *testing.T) {
	t.Run("Missing API key", func(t *testing.T) {
		c := NewClient("")
		res := c.Headlines(context.Background(), "tech", 5)
		if res.Success {
			t.Fatal("expected failure without API key")
		}
		if !strings.Contains(res.Message, "NEWS_API_KEY") {
			t.Errorf("message should name the missing variable: %q", res.Message)
		}
	})

	t.Run("Success with summary", func(t *testing.T) {
		c := newTestClient(t, "key", func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("q"); got != "tech" {
				t.Errorf("expected topic tech, got %q", got)
			}
			w.Write([]byte(`{"status":"ok","articles":[
				{"title":"Go 1.26 released","source":{"name":"The Register"}},
				{"title":"New chips announced","source":{"name":"Reuters"}}
			]}`))
		})

		res := c.Headlines(context.Background(), "tech", 5)
		if !res.Success {
			t.Fatalf("unexpected failure: %s", res.Message)
		}
		if !strings.Contains(res.Message, "1. Go 1.26 released - The Register") {
			t.Errorf("summary misses numbered headline: %q", res.Message)
		}
		if len(res.Articles) != 2 {
			t.Errorf("expected 2 articles, got %d", len(res.Articles))
		}
	})

	t.Run("Empty topic defaults to general", func(t *testing.T) {
		c := newTestClient(t, "key", func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("q"); got != "general" {
				t.Errorf("expected default topic general, got %q", got)
			}
			w.Write([]byte(`{"status":"ok","articles":[{"title":"A","source":{"name":"B"}}]}`))
		})

		if res := c.Headlines(context.Background(), "", 1); !res.Success {
			t.Fatalf("unexpected failure: %s", res.Message)
		}
	})

	t.Run("No articles", func(t *testing.T) {
		c := newTestClient(t, "key", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"ok","articles":[]}`))
		})

		res := c.Headlines(context.Background(), "obscuretopic", 5)
		if res.Success {
			t.Fatal("expected failure when nothing found")
		}
		if !strings.Contains(res.Message, "obscuretopic") {
			t.Errorf("message should echo the topic: %q", res.Message)
		}
	})

	t.Run("API error", func(t *testing.T) {
		c := newTestClient(t, "key", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		if res := c.Headlines(context.Background(), "tech", 5); res.Success {
			t.Fatal("expected failure on upstream error")
		}
	})
}
