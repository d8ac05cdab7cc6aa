package http

import (
	"github.com/gin-gonic/gin"

	"conversational-task-manager/internal/middleware"
)

// RegisterRoutes maps the agent endpoint. Auth and the per-user rate
// limit apply.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	ag := rg.Group("/agent", mw.Auth(), mw.RateLimit())
	{
		ag.POST("/chat", h.Chat)
	}
}
