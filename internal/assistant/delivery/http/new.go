package http

import (
	"github.com/gin-gonic/gin"

	"github.com/pkparthk/Buddy-AI/internal/assistant"
	"github.com/pkparthk/Buddy-AI/pkg/log"
)

// Handler is the public interface for the assistant HTTP delivery layer.
type Handler interface {
	Process(c *gin.Context)
	Reset(c *gin.Context)
	Categories(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc assistant.UseCase
}

// New creates a new HTTP handler for the assistant domain.
func New(l log.Logger, uc assistant.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
