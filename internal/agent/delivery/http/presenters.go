package http

import "conversational-task-manager/internal/agent"

type chatReq struct {
	Message string `json:"message" binding:"required,min=1,max=1000"`
}

type chatMetadata struct {
	Intent          string  `json:"intent"`
	ToolCalled      *string `json:"tool_called"`
	Confidence      float64 `json:"confidence"`
	ExecutionTimeMS int64   `json:"execution_time_ms"`
}

type chatResp struct {
	Response string       `json:"response"`
	Metadata chatMetadata `json:"metadata"`
}

func newChatResp(reply agent.Reply) chatResp {
	meta := chatMetadata{
		Intent:          string(reply.Intent),
		Confidence:      reply.Confidence,
		ExecutionTimeMS: reply.ExecutionTimeMS,
	}
	if reply.ToolCalled != "" {
		tool := string(reply.ToolCalled)
		meta.ToolCalled = &tool
	}
	return chatResp{
		Response: reply.Response,
		Metadata: meta,
	}
}
