package usecase

import (
	"conversational-task-manager/internal/user"
	"conversational-task-manager/internal/user/repository"
	pkgLog "conversational-task-manager/pkg/log"
)

type implDirectory struct {
	l    pkgLog.Logger
	repo repository.Repository
}

var _ user.Directory = (*implDirectory)(nil)

// New creates a new user Directory instance.
func New(l pkgLog.Logger, repo repository.Repository) *implDirectory {
	return &implDirectory{l: l, repo: repo}
}
