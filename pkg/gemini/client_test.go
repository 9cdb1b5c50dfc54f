package gemini

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient("test-key")
	c.apiURL = srv.URL
	return c
}

func TestGenerateText(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				t.Errorf("expected POST, got %s", r.Method)
			}
			w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"hello there"}]}}]}`))
		})

		got, err := c.GenerateText(context.Background(), "say hi")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "hello there" {
			t.Errorf("unexpected text: %q", got)
		}
	})

	t.Run("Quota 429", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error":{"message":"Resource has been exhausted"}}`))
		})

		_, err := c.GenerateText(context.Background(), "say hi")
		if !IsQuotaExceeded(err) {
			t.Errorf("expected quota error, got %v", err)
		}
	})

	t.Run("Quota marker in body", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"error":{"status":"RESOURCE_EXHAUSTED","message":"quota exceeded for model"}}`))
		})

		_, err := c.GenerateText(context.Background(), "say hi")
		if !IsQuotaExceeded(err) {
			t.Errorf("expected quota error, got %v", err)
		}
	})

	t.Run("Generic server error is not quota", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":{"message":"backend unavailable"}}`))
		})

		_, err := c.GenerateText(context.Background(), "say hi")
		if err == nil {
			t.Fatal("expected an error")
		}
		if IsQuotaExceeded(err) {
			t.Error("generic 500 misclassified as quota exhaustion")
		}
	})

	t.Run("Empty candidates", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"candidates":[]}`))
		})

		_, err := c.GenerateText(context.Background(), "say hi")
		if !errors.Is(err, ErrEmptyResponse) {
			t.Errorf("expected ErrEmptyResponse, got %v", err)
		}
	})

	t.Run("Missing API key", func(t *testing.T) {
		c := NewClient("")
		_, err := c.GenerateText(context.Background(), "say hi")
		if !errors.Is(err, ErrMissingAPIKey) {
			t.Errorf("expected ErrMissingAPIKey, got %v", err)
		}
	})
}
