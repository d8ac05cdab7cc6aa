package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"conversational-task-manager/internal/model"
	"conversational-task-manager/internal/user"
	"conversational-task-manager/pkg/response"
)

// APIKeyHeader carries the caller's API key.
const APIKeyHeader = "X-API-Key"

// scopeContextKey is the gin context key holding the authenticated scope.
const scopeContextKey = "auth_scope"

// Auth authenticates the request via API key and stores the caller's
// scope on the context. Invalid and missing keys both return 401.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		u, err := m.directory.Authenticate(ctx, c.GetHeader(APIKeyHeader))
		if err != nil {
			if !errors.Is(err, user.ErrInvalidAPIKey) {
				m.l.Errorf(ctx, "auth middleware: directory lookup failed: %v", err)
			}
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(scopeContextKey, model.Scope{UserID: u.ID, Email: u.Email})
		c.Next()
	}
}

// ScopeFromContext returns the authenticated scope set by Auth.
func ScopeFromContext(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeContextKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}
