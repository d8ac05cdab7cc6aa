package http

import (
	"github.com/gin-gonic/gin"

	"conversational-task-manager/internal/middleware"
	"conversational-task-manager/pkg/response"
)

// Chat godoc
// @Summary     Send a natural language command
// @Description Routes a free-text message to the matching task operation and replies in natural language.
// @Tags        Agent
// @Accept      json
// @Produce     json
// @Param       X-API-Key header string  true "API key"
// @Param       body      body   chatReq true "Message"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/agent/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	reply := h.uc.Handle(ctx, sc, req.Message)

	response.OK(c, newChatResp(reply))
}
