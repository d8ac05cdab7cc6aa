package http

import (
	"github.com/gin-gonic/gin"

	"conversational-task-manager/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All routes require an authenticated caller and share the per-user
// rate limit.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks", mw.Auth(), mw.RateLimit())
	{
		tasks.POST("", h.Create)
		tasks.GET("", h.List)
		tasks.PUT("/:id", h.Update)
		tasks.PATCH("/:id/complete", h.Complete)
		tasks.DELETE("/:id", h.Delete)
	}
}
