package http

import (
	"github.com/pkparthk/Buddy-AI/internal/assistant"
	"github.com/pkparthk/Buddy-AI/internal/model"
)

// --- Request DTOs ---

type processReq struct {
	Query     string `json:"query" binding:"required"`
	SessionID string `json:"session_id"`
}

func (r processReq) validate() error { return nil }

func (r processReq) toInput() assistant.ProcessInput {
	return assistant.ProcessInput{Query: r.Query}
}

func (r processReq) scope() model.Scope {
	return model.Scope{SessionID: r.SessionID}
}

type resetReq struct {
	SessionID string `json:"session_id"`
}

func (r resetReq) scope() model.Scope {
	return model.Scope{SessionID: r.SessionID}
}

// --- Response DTOs ---

type processResp struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	Action        string `json:"action"`
	Data          any    `json:"data,omitempty"`
	Note          string `json:"note,omitempty"`
	URL           string `json:"url,omitempty"`
	OriginalQuery string `json:"original_query,omitempty"`
}

func (h *handler) newProcessResp(out assistant.CommandResult) processResp {
	return processResp{
		Success:       out.Success,
		Message:       out.Message,
		Action:        out.Action,
		Data:          out.Data,
		Note:          out.Note,
		URL:           out.URL,
		OriginalQuery: out.OriginalQuery,
	}
}

type categoriesResp struct {
	Categories []string `json:"categories"`
}

func (h *handler) newCategoriesResp() categoriesResp {
	categories := make([]string, len(assistant.AllCategories))
	for i, category := range assistant.AllCategories {
		categories[i] = string(category)
	}
	return categoriesResp{Categories: categories}
}
