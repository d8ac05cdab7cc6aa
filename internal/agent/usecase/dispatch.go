package usecase

import (
	"context"
	"errors"

	"conversational-task-manager/internal/agent"
	"conversational-task-manager/internal/model"
	"conversational-task-manager/internal/task"
)

// dispatch maps the intent to exactly one store operation. Failures
// before the store mutation (missing target, failed resolution,
// missing update values) leave Outcome.Tool empty; once a store
// operation is invoked its tool name is reported even on failure.
// Nothing is ever retried: a retry could double-create or
// double-delete.
func (uc implUseCase) dispatch(ctx context.Context, sc model.Scope, intent agent.Intent, params agent.Params) agent.Outcome {
	switch intent {
	case agent.IntentCreate:
		return uc.dispatchCreate(ctx, sc, params)
	case agent.IntentList:
		return uc.dispatchList(ctx, sc, params)
	case agent.IntentComplete:
		return uc.dispatchComplete(ctx, sc, params)
	case agent.IntentUpdate:
		return uc.dispatchUpdate(ctx, sc, params)
	case agent.IntentDelete:
		return uc.dispatchDelete(ctx, sc, params)
	}

	return agent.Outcome{ErrorKind: agent.ErrorKindStoreFailure, ErrorText: "unsupported intent"}
}

func (uc implUseCase) dispatchCreate(ctx context.Context, sc model.Scope, params agent.Params) agent.Outcome {
	ctx, cancel := context.WithTimeout(ctx, uc.storeTimeout)
	defer cancel()

	created, err := uc.store.Create(ctx, sc, task.CreateInput{
		Title:       params.Title,
		Description: params.Description,
		Priority:    params.Priority,
		DueDate:     params.DueDate,
	})
	if err != nil {
		return failedOutcome(agent.ToolAddTask, err)
	}

	return agent.Outcome{Tool: agent.ToolAddTask, Success: true, Task: &created}
}

func (uc implUseCase) dispatchList(ctx context.Context, sc model.Scope, params agent.Params) agent.Outcome {
	ctx, cancel := context.WithTimeout(ctx, uc.storeTimeout)
	defer cancel()

	tasks, err := uc.store.List(ctx, sc, task.ListInput{
		Completed: params.CompletedFilter,
		Priority:  params.PriorityFilter,
	})
	if err != nil {
		return failedOutcome(agent.ToolListTasks, err)
	}

	return agent.Outcome{Tool: agent.ToolListTasks, Success: true, Tasks: tasks}
}

func (uc implUseCase) dispatchComplete(ctx context.Context, sc model.Scope, params agent.Params) agent.Outcome {
	resolved, outcome, ok := uc.resolveTarget(ctx, sc, params.Target)
	if !ok {
		return outcome
	}

	ctx, cancel := context.WithTimeout(ctx, uc.storeTimeout)
	defer cancel()

	updated, err := uc.store.SetCompletion(ctx, sc, task.SetCompletionInput{
		TaskID:    resolved.ID,
		Completed: params.Completed,
	})
	if err != nil {
		return failedOutcome(agent.ToolCompleteTask, err)
	}

	return agent.Outcome{Tool: agent.ToolCompleteTask, Success: true, Task: &updated}
}

func (uc implUseCase) dispatchUpdate(ctx context.Context, sc model.Scope, params agent.Params) agent.Outcome {
	resolved, outcome, ok := uc.resolveTarget(ctx, sc, params.Target)
	if !ok {
		return outcome
	}

	if params.NewTitle == "" && params.NewDescription == "" {
		return agent.Outcome{
			ErrorKind: agent.ErrorKindValidation,
			ErrorText: "at least one of new title or new description must be provided",
		}
	}

	input := task.UpdateInput{TaskID: resolved.ID}
	if params.NewTitle != "" {
		input.NewTitle = &params.NewTitle
	}
	if params.NewDescription != "" {
		input.NewDescription = &params.NewDescription
	}

	ctx, cancel := context.WithTimeout(ctx, uc.storeTimeout)
	defer cancel()

	updated, err := uc.store.Update(ctx, sc, input)
	if err != nil {
		return failedOutcome(agent.ToolUpdateTask, err)
	}

	return agent.Outcome{
		Tool:     agent.ToolUpdateTask,
		Success:  true,
		Task:     &updated,
		OldTitle: resolved.Title,
	}
}

func (uc implUseCase) dispatchDelete(ctx context.Context, sc model.Scope, params agent.Params) agent.Outcome {
	resolved, outcome, ok := uc.resolveTarget(ctx, sc, params.Target)
	if !ok {
		return outcome
	}

	ctx, cancel := context.WithTimeout(ctx, uc.storeTimeout)
	defer cancel()

	if err := uc.store.Delete(ctx, sc, task.DeleteInput{TaskID: resolved.ID}); err != nil {
		return failedOutcome(agent.ToolDeleteTask, err)
	}

	return agent.Outcome{Tool: agent.ToolDeleteTask, Success: true, Task: &resolved}
}

// resolveTarget runs the resolver for intents that name a task. The
// bool reports whether dispatch may proceed; when false the returned
// Outcome is the failure to surface.
func (uc implUseCase) resolveTarget(ctx context.Context, sc model.Scope, target *agent.TargetRef) (model.Task, agent.Outcome, bool) {
	if target == nil {
		return model.Task{}, agent.Outcome{ErrorKind: agent.ErrorKindNotFound, ErrorText: "no task reference in message"}, false
	}

	ctx, cancel := context.WithTimeout(ctx, uc.storeTimeout)
	defer cancel()

	resolved, err := uc.resolver.Resolve(ctx, sc, *target)
	if err != nil {
		if errors.Is(err, task.ErrNotFound) {
			return model.Task{}, agent.Outcome{ErrorKind: agent.ErrorKindNotFound, ErrorText: "task not found"}, false
		}
		return model.Task{}, agent.Outcome{ErrorKind: agent.ErrorKindStoreFailure, ErrorText: err.Error()}, false
	}

	return resolved, agent.Outcome{}, true
}

func failedOutcome(tool agent.Tool, err error) agent.Outcome {
	outcome := agent.Outcome{Tool: tool, ErrorText: err.Error()}
	switch {
	case errors.Is(err, task.ErrNotFound):
		outcome.ErrorKind = agent.ErrorKindNotFound
	case errors.Is(err, task.ErrValidation):
		outcome.ErrorKind = agent.ErrorKindValidation
	default:
		outcome.ErrorKind = agent.ErrorKindStoreFailure
	}
	return outcome
}
