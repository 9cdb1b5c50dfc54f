package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/pkparthk/Buddy-AI/config"
	"github.com/pkparthk/Buddy-AI/internal/assistant"
	"github.com/pkparthk/Buddy-AI/internal/middleware"
	"github.com/pkparthk/Buddy-AI/internal/model"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, arg ...any)                    {}
func (nopLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) Info(ctx context.Context, arg ...any)                     {}
func (nopLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (nopLogger) Warn(ctx context.Context, arg ...any)                     {}
func (nopLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (nopLogger) Error(ctx context.Context, arg ...any)                    {}
func (nopLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (nopLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (nopLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (nopLogger) Panic(ctx context.Context, arg ...any)                    {}
func (nopLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type stubUseCase struct {
	result     assistant.CommandResult
	err        error
	gotQuery   string
	gotSession string
	resets     []string
}

func (s *stubUseCase) Process(ctx context.Context, sc model.Scope, input assistant.ProcessInput) (assistant.CommandResult, error) {
	s.gotQuery = input.Query
	s.gotSession = sc.SessionID
	return s.result, s.err
}

func (s *stubUseCase) Reset(ctx context.Context, sc model.Scope) {
	s.resets = append(s.resets, sc.SessionID)
}

func newTestRouter(uc assistant.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()

	cfg := &config.Config{}
	cfg.RateLimit.Enabled = false
	mw := middleware.New(nopLogger{}, cfg)

	h := New(nopLogger{}, uc)
	RegisterRoutes(engine.Group("/api/v1"), h, mw)
	return engine
}

func TestProcessEndpoint(t *testing.T) {
	uc := &stubUseCase{result: assistant.CommandResult{
		Success: true,
		Message: "Opening Youtube",
		Action:  "direct_open",
		URL:     "https://www.youtube.com",
	}}
	router := newTestRouter(uc)

	body := bytes.NewBufferString(`{"query":"open youtube","session_id":"s1"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/assistant/commands", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != 200 {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if uc.gotQuery != "open youtube" || uc.gotSession != "s1" {
		t.Errorf("use case got query=%q session=%q", uc.gotQuery, uc.gotSession)
	}

	var resp struct {
		ErrorCode int         `json:"error_code"`
		Message   string      `json:"message"`
		Data      processResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.ErrorCode != 0 {
		t.Errorf("error_code = %d", resp.ErrorCode)
	}
	if resp.Data.Action != "direct_open" || resp.Data.URL != "https://www.youtube.com" {
		t.Errorf("data = %+v", resp.Data)
	}
}

func TestProcessEndpointValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing query", `{"session_id":"s1"}`},
		{"empty body", `{}`},
		{"malformed json", `{"query":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &stubUseCase{}
			router := newTestRouter(uc)

			w := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/api/v1/assistant/commands", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			if w.Code != 400 {
				t.Errorf("status = %d, want 400", w.Code)
			}
			if uc.gotQuery != "" {
				t.Errorf("use case was called with query %q", uc.gotQuery)
			}
		})
	}
}

func TestProcessEndpointEmptyQueryError(t *testing.T) {
	uc := &stubUseCase{err: assistant.ErrEmptyQuery}
	router := newTestRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/assistant/commands", bytes.NewBufferString(`{"query":"   "}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != 400 {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestResetEndpoint(t *testing.T) {
	uc := &stubUseCase{}
	router := newTestRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/assistant/reset", bytes.NewBufferString(`{"session_id":"s7"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != 200 {
		t.Fatalf("status = %d", w.Code)
	}
	if len(uc.resets) != 1 || uc.resets[0] != "s7" {
		t.Errorf("resets = %v", uc.resets)
	}
}

func TestResetEndpointEmptyBody(t *testing.T) {
	uc := &stubUseCase{}
	router := newTestRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/assistant/reset", nil)
	router.ServeHTTP(w, req)

	if w.Code != 200 {
		t.Fatalf("status = %d", w.Code)
	}
	if len(uc.resets) != 1 || uc.resets[0] != "" {
		t.Errorf("resets = %v, want one reset of the default session", uc.resets)
	}
}

func TestCategoriesEndpoint(t *testing.T) {
	router := newTestRouter(&stubUseCase{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/assistant/categories", nil)
	router.ServeHTTP(w, req)

	if w.Code != 200 {
		t.Fatalf("status = %d", w.Code)
	}

	var resp struct {
		Data categoriesResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp.Data.Categories) != len(assistant.AllCategories) {
		t.Fatalf("got %d categories, want %d", len(resp.Data.Categories), len(assistant.AllCategories))
	}
	if resp.Data.Categories[0] != string(assistant.CategoryGreeting) {
		t.Errorf("first category = %q", resp.Data.Categories[0])
	}
}
