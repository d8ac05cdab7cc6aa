package usecase

import (
	"fmt"
	"strings"

	"conversational-task-manager/internal/agent"
	"conversational-task-manager/internal/model"
	"conversational-task-manager/internal/task"
	"conversational-task-manager/pkg/response"
)

// formatReply renders an outcome as a short sentence. Templates are
// fixed per (intent, outcome) pair so identical inputs always produce
// identical strings.
func formatReply(intent agent.Intent, outcome agent.Outcome) string {
	if !outcome.Success {
		return formatFailure(outcome)
	}

	switch intent {
	case agent.IntentCreate:
		return formatCreated(outcome.Task)
	case agent.IntentList:
		return formatTaskList(outcome.Tasks)
	case agent.IntentComplete:
		return formatCompletion(outcome.Task)
	case agent.IntentUpdate:
		return formatUpdated(outcome)
	case agent.IntentDelete:
		return fmt.Sprintf("Deleted task '%s'", outcome.Task.Title)
	}

	return replyStoreFailure
}

func formatFailure(outcome agent.Outcome) string {
	switch outcome.ErrorKind {
	case agent.ErrorKindNotFound:
		return replyNotFound
	case agent.ErrorKindValidation:
		return "Invalid input: " + validationDetail(outcome.ErrorText)
	default:
		return replyStoreFailure
	}
}

// validationDetail strips the sentinel prefix the store wraps its
// validation errors with, leaving just the human-readable part.
func validationDetail(text string) string {
	return strings.TrimPrefix(text, task.ErrValidation.Error()+": ")
}

func formatCreated(t *model.Task) string {
	var details []string
	if t.Priority != "" {
		details = append(details, "priority: "+string(t.Priority))
	}
	if t.DueDate != nil {
		details = append(details, "due: "+t.DueDate.Format(response.DateFormat))
	}

	if len(details) > 0 {
		return fmt.Sprintf("Task created: %s (%s)", t.Title, strings.Join(details, ", "))
	}
	return "Task created: " + t.Title
}

func formatTaskList(tasks []model.Task) string {
	count := len(tasks)
	if count == 0 {
		return replyNoTasks
	}

	shown := tasks
	if count > ListReplyMaxTasks {
		shown = tasks[:ListReplyMaxTasks]
	}

	items := make([]string, len(shown))
	for i, t := range shown {
		status := ""
		if t.Completed {
			status = "✓"
		}
		items[i] = fmt.Sprintf("%d) %s%s", i+1, status, t.Title)
	}

	plural := "s"
	if count == 1 {
		plural = ""
	}

	summary := fmt.Sprintf("You have %d task%s: %s", count, plural, strings.Join(items, " "))
	if count > ListReplyMaxTasks {
		summary += fmt.Sprintf(" (showing first %d)", ListReplyMaxTasks)
	}
	return summary
}

func formatCompletion(t *model.Task) string {
	if t.Completed {
		return fmt.Sprintf("Marked '%s' as done", t.Title)
	}
	return fmt.Sprintf("Marked '%s' as not done", t.Title)
}

func formatUpdated(outcome agent.Outcome) string {
	t := outcome.Task
	switch {
	case outcome.OldTitle != "" && t.Title != "" && outcome.OldTitle != t.Title:
		return fmt.Sprintf("Updated '%s' to '%s'", outcome.OldTitle, t.Title)
	case t.Title != "":
		return fmt.Sprintf("Updated task '%s'", t.Title)
	default:
		return fmt.Sprintf("Updated task %d", t.ID)
	}
}
