package openweather

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

func TestCanonicalCity(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"bombay", "Mumbai,IN"},
		{"Bangalore", "Bengaluru,IN"},
		{"madras", "Chennai,IN"},
		{"current location", "London"},
		{"here", "London"},
		{"", "London"},
		{"Paris", "Paris"},
	}
	for _, tc := range cases {
		if got := CanonicalCity(tc.in); got != tc.want {
			t.Errorf("CanonicalCity(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCurrent(t *testing.T) {
	t.Run("Missing API key", func(t *testing.T) {
		c := NewClient("")
		res := c.Current(context.Background(), "Mumbai")
		if res.Success {
			t.Fatal("expected failure without API key")
		}
		if !strings.Contains(res.Message, "OPENWEATHER_API_KEY") {
			t.Errorf("message should name the missing variable: %q", res.Message)
		}
	})

	t.Run("Success", func(t *testing.T) {
		c := newTestClient(t, "key", func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("q"); got != "Mumbai,IN" {
				t.Errorf("expected canonical city Mumbai,IN, got %q", got)
			}
			w.Write([]byte(`{"name":"Mumbai","main":{"temp":31.5,"humidity":70},"weather":[{"description":"haze"}],"wind":{"speed":3.2}}`))
		})

		res := c.Current(context.Background(), "bombay")
		if !res.Success {
			t.Fatalf("unexpected failure: %s", res.Message)
		}
		if res.Data == nil || res.Data.Location != "Mumbai" {
			t.Errorf("unexpected data: %+v", res.Data)
		}
		if !strings.Contains(res.Message, "31.5°C") {
			t.Errorf("message missing temperature: %q", res.Message)
		}
	})

	t.Run("Invalid key", func(t *testing.T) {
		c := newTestClient(t, "bad", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})

		res := c.Current(context.Background(), "Mumbai")
		if res.Success {
			t.Fatal("expected failure on 401")
		}
		if !strings.Contains(res.Message, "invalid") {
			t.Errorf("401 message should mention invalid key: %q", res.Message)
		}
	})

	t.Run("Location not found", func(t *testing.T) {
		c := newTestClient(t, "key", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		res := c.Current(context.Background(), "Atlantis")
		if res.Success {
			t.Fatal("expected failure on 404")
		}
		if !strings.Contains(res.Message, "Atlantis") {
			t.Errorf("404 message should echo the location: %q", res.Message)
		}
	})
}
