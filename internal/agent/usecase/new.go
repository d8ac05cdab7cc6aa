package usecase

import (
	"time"

	"conversational-task-manager/internal/agent"
	"conversational-task-manager/internal/agent/classifier"
	"conversational-task-manager/internal/agent/extractor"
	"conversational-task-manager/internal/agent/resolver"
	"conversational-task-manager/internal/task"
	"conversational-task-manager/pkg/log"
	"conversational-task-manager/pkg/similarity"
)

type implUseCase struct {
	l            log.Logger
	classifier   classifier.Classifier
	extractor    extractor.Extractor
	resolver     resolver.Resolver
	store        task.UseCase
	storeTimeout time.Duration
}

// New builds the command router on top of the task store. The
// timezone governs relative due-date parsing; storeTimeout bounds
// every store call (zero means the default).
func New(l log.Logger, store task.UseCase, timezone string, storeTimeout time.Duration) (agent.UseCase, error) {
	ext, err := extractor.New(timezone)
	if err != nil {
		return nil, err
	}
	if storeTimeout <= 0 {
		storeTimeout = DefaultStoreTimeout
	}

	return implUseCase{
		l:            l,
		classifier:   classifier.New(),
		extractor:    ext,
		resolver:     resolver.New(l, store, similarity.NewContainment()),
		store:        store,
		storeTimeout: storeTimeout,
	}, nil
}
