package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/pkparthk/Buddy-AI/internal/assistant"
	"github.com/pkparthk/Buddy-AI/pkg/response"
)

// Process godoc
// @Summary     Process a command
// @Description Classifies the query into a command category, runs the matching handler and returns the outcome. Unmatched queries degrade through the AI fallback chain.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body processReq true "Command query plus optional session id"
// @Success     200 {object} processResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/assistant/commands [POST]
func (h *handler) Process(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processProcessReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Process(ctx, req.scope(), req.toInput())
	if err != nil {
		if errors.Is(err, assistant.ErrEmptyQuery) {
			response.Error(c, err, nil)
			return
		}
		h.l.Errorf(ctx, "uc.Process: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newProcessResp(output))
}

// Reset godoc
// @Summary     Reset a conversation
// @Description Discards the session's conversation transcript. Subsequent AI-backed turns start from an empty history.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body resetReq false "Session to reset; empty body resets the default session"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/assistant/reset [POST]
func (h *handler) Reset(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processResetReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	h.uc.Reset(ctx, req.scope())
	response.OK(c, nil)
}

// Categories godoc
// @Summary     List command categories
// @Description Returns the command categories in their evaluation order.
// @Tags        Assistant
// @Produce     json
// @Success     200 {object} categoriesResp
// @Router      /api/v1/assistant/categories [GET]
func (h *handler) Categories(c *gin.Context) {
	response.OK(c, h.newCategoriesResp())
}
