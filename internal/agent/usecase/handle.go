package usecase

import (
	"context"
	"time"
	"unicode/utf8"

	"conversational-task-manager/internal/agent"
	"conversational-task-manager/internal/model"
)

// Handle runs the full pipeline: validate, classify, extract, resolve,
// dispatch, format. Every failure short-circuits to an error-shaped
// reply; nothing escapes as an error and nothing survives the call.
func (uc implUseCase) Handle(ctx context.Context, sc model.Scope, message string) agent.Reply {
	start := time.Now()

	// Length bounds count characters, not bytes, matching the delivery
	// layer's binding rules.
	if n := utf8.RuneCountInString(message); n < MessageMinLen || n > MessageMaxLen {
		return agent.Reply{
			Response:        replyInvalidMessage,
			Intent:          agent.IntentUnknown,
			Confidence:      0,
			ExecutionTimeMS: elapsedMS(start),
		}
	}

	classification := uc.classifier.Classify(message)
	uc.l.Debugf(ctx, "classified %q as %s (%.2f) for user %s",
		truncate(message, 50), classification.Intent, classification.Confidence, sc.UserID)

	if classification.Intent == agent.IntentUnknown {
		return agent.Reply{
			Response:        replyUnknown,
			Intent:          agent.IntentUnknown,
			Confidence:      classification.Confidence,
			ExecutionTimeMS: elapsedMS(start),
		}
	}

	params := uc.extractor.Extract(message, classification.Intent)
	outcome := uc.dispatch(ctx, sc, classification.Intent, params)

	reply := agent.Reply{
		Response:        formatReply(classification.Intent, outcome),
		Intent:          classification.Intent,
		ToolCalled:      outcome.Tool,
		Confidence:      classification.Confidence,
		ExecutionTimeMS: elapsedMS(start),
	}

	if !outcome.Success {
		uc.l.Warnf(ctx, "dispatch %s failed for user %s: %s (%s)",
			classification.Intent, sc.UserID, outcome.ErrorText, outcome.ErrorKind)
	}
	return reply
}

// elapsedMS reports wall time with a floor of 1ms so fast requests do
// not show up as zero.
func elapsedMS(start time.Time) int64 {
	ms := time.Since(start).Milliseconds()
	if ms < 1 {
		return 1
	}
	return ms
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
