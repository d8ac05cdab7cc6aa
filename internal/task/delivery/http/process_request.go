package http

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// processCreateReq binds and validates the create task request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processListReq binds and validates the list tasks query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processUpdateReq binds and validates the update task request body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	id, err := parseTaskID(c)
	if err != nil {
		return req, err
	}
	req.TaskID = id
	return req, req.validate()
}

// processCompleteReq binds and validates the completion request body + URI param.
func (h *handler) processCompleteReq(c *gin.Context) (completeReq, error) {
	var req completeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	id, err := parseTaskID(c)
	if err != nil {
		return req, err
	}
	req.TaskID = id
	return req, nil
}

func parseTaskID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidTaskID
	}
	return id, nil
}
