package resolver

import (
	"context"

	"conversational-task-manager/internal/agent"
	"conversational-task-manager/internal/model"
	"conversational-task-manager/internal/task"
	"conversational-task-manager/pkg/log"
	"conversational-task-manager/pkg/similarity"
)

// MatchThreshold is the minimum similarity score for a title fragment
// to resolve to a task.
const MatchThreshold = 0.70

// Resolver turns a target reference into a concrete task owned by the
// caller. This is the only place the router reads the store before
// deciding which mutation to dispatch.
type Resolver struct {
	l      log.Logger
	store  task.UseCase
	scorer similarity.Scorer
}

func New(l log.Logger, store task.UseCase, scorer similarity.Scorer) Resolver {
	return Resolver{
		l:      l,
		store:  store,
		scorer: scorer,
	}
}

// Resolve maps target to one of the caller's tasks. A numeric id is
// validated against the caller's own tasks; a title fragment is
// matched by similarity. Wrong owner, no match above threshold, and a
// tie at the best score all come back as task.ErrNotFound, never
// distinguished.
func (r Resolver) Resolve(ctx context.Context, sc model.Scope, target agent.TargetRef) (model.Task, error) {
	tasks, err := r.store.List(ctx, sc, task.ListInput{})
	if err != nil {
		return model.Task{}, err
	}

	switch target.Kind {
	case agent.TargetID:
		for _, t := range tasks {
			if t.ID == target.ID {
				return t, nil
			}
		}
		return model.Task{}, task.ErrNotFound

	case agent.TargetTitleFragment:
		return r.resolveFragment(ctx, sc, tasks, target.Fragment)
	}

	return model.Task{}, task.ErrNotFound
}

func (r Resolver) resolveFragment(ctx context.Context, sc model.Scope, tasks []model.Task, fragment string) (model.Task, error) {
	var (
		best      model.Task
		bestScore float64
		tied      bool
	)

	for _, t := range tasks {
		score := r.scorer.Score(fragment, t.Title)
		if score < MatchThreshold {
			continue
		}
		switch {
		case score > bestScore:
			best = t
			bestScore = score
			tied = false
		case score == bestScore:
			tied = true
		}
	}

	if bestScore == 0 {
		return model.Task{}, task.ErrNotFound
	}
	if tied {
		// Two tasks scored identically at the top. Refusing beats
		// mutating the wrong one.
		r.l.Warnf(ctx, "ambiguous fragment %q for user %s, refusing to pick", fragment, sc.UserID)
		return model.Task{}, task.ErrNotFound
	}

	return best, nil
}
