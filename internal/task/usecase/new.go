package usecase

import (
	"conversational-task-manager/internal/task"
	"conversational-task-manager/internal/task/repository"
	"conversational-task-manager/pkg/gcalendar"
	pkgLog "conversational-task-manager/pkg/log"
)

type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.Repository
	calendar   *gcalendar.Client // optional, nil when not configured
	calendarID string
	timezone   string
}

var _ task.UseCase = (*implUseCase)(nil)

// New creates a new task UseCase instance. calendar may be nil; due-date
// mirroring is then skipped.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	calendar *gcalendar.Client,
	calendarID string,
	timezone string,
) *implUseCase {
	if calendarID == "" {
		calendarID = "primary"
	}
	return &implUseCase{
		l:          l,
		repo:       repo,
		calendar:   calendar,
		calendarID: calendarID,
		timezone:   timezone,
	}
}
