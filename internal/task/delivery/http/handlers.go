package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"conversational-task-manager/internal/middleware"
	"conversational-task-manager/internal/task"
	"conversational-task-manager/pkg/response"
)

// Create godoc
// @Summary     Create a task
// @Description Creates a task owned by the authenticated user.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       X-API-Key header string    true "API key"
// @Param       body      body   createReq true "Task data"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	input, err := req.toInput()
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	created, err := h.uc.Create(ctx, sc, input)
	if err != nil {
		h.handleError(c, "uc.Create", err)
		return
	}

	response.OK(c, newTaskResp(created))
}

// List godoc
// @Summary     List tasks
// @Description Returns the authenticated user's tasks, optionally filtered.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       X-API-Key header string true  "API key"
// @Param       completed query  bool   false "Filter by completion state"
// @Param       priority  query  string false "Filter by priority (low/medium/high)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	tasks, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.handleError(c, "uc.List", err)
		return
	}

	response.OK(c, newListResp(tasks))
}

// Update godoc
// @Summary     Update a task
// @Description Updates the title and/or description of a task. Partial update.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       X-API-Key header string    true "API key"
// @Param       id        path   int       true "Task ID"
// @Param       body      body   updateReq true "Fields to update"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	updated, err := h.uc.Update(ctx, sc, req.toInput())
	if err != nil {
		h.handleError(c, "uc.Update", err)
		return
	}

	response.OK(c, newTaskResp(updated))
}

// Complete godoc
// @Summary     Set task completion
// @Description Marks a task done or not done.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       X-API-Key header string      true "API key"
// @Param       id        path   int         true "Task ID"
// @Param       body      body   completeReq true "Completion state"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id}/complete [PATCH]
func (h *handler) Complete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processCompleteReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	updated, err := h.uc.SetCompletion(ctx, sc, req.toInput())
	if err != nil {
		h.handleError(c, "uc.SetCompletion", err)
		return
	}

	response.OK(c, newTaskResp(updated))
}

// Delete godoc
// @Summary     Delete a task
// @Description Permanently removes a task by ID.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       X-API-Key header string true "API key"
// @Param       id        path   int    true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	id, err := parseTaskID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.Delete(ctx, sc, task.DeleteInput{TaskID: id}); err != nil {
		h.handleError(c, "uc.Delete", err)
		return
	}

	response.OK(c, nil)
}

// handleError translates store errors into HTTP responses.
func (h *handler) handleError(c *gin.Context, op string, err error) {
	ctx := c.Request.Context()

	switch {
	case errors.Is(err, task.ErrNotFound):
		response.NotFound(c, "task not found")
	case errors.Is(err, task.ErrValidation):
		response.Error(c, err, nil)
	default:
		h.l.Errorf(ctx, "%s: %v", op, err)
		response.InternalError(c, err)
	}
}
