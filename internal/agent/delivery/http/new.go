package http

import (
	"github.com/gin-gonic/gin"

	"conversational-task-manager/internal/agent"
	"conversational-task-manager/pkg/log"
)

// Handler is the public interface for the agent HTTP delivery layer.
type Handler interface {
	Chat(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc agent.UseCase
}

// New creates a new HTTP handler for the agent endpoint.
func New(l log.Logger, uc agent.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
