package http

import (
	"github.com/gin-gonic/gin"
)

// processProcessReq binds and validates the process command request body.
func (h *handler) processProcessReq(c *gin.Context) (processReq, error) {
	var req processReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processResetReq binds the reset request body. An empty body is valid and
// resets the default session.
func (h *handler) processResetReq(c *gin.Context) (resetReq, error) {
	var req resetReq
	if c.Request.ContentLength == 0 {
		return req, nil
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
