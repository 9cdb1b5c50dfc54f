package http

import (
	"github.com/gin-gonic/gin"

	"github.com/pkparthk/Buddy-AI/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Process is rate limited; the cheap read-only endpoints are not.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	assistant := rg.Group("/assistant")
	{
		assistant.POST("/commands", mw.RateLimit(), h.Process)
		assistant.POST("/reset", h.Reset)
		assistant.GET("/categories", h.Categories)
	}
}
