package middleware

import (
	"conversational-task-manager/internal/user"
	"conversational-task-manager/pkg/log"
)

// Middleware bundles the HTTP middlewares and their dependencies.
type Middleware struct {
	l         log.Logger
	directory user.Directory
	limiter   *rateLimiter
}

// Config holds middleware settings.
type Config struct {
	RateLimitPerMin int
}

func New(l log.Logger, directory user.Directory, cfg Config) Middleware {
	return Middleware{
		l:         l,
		directory: directory,
		limiter:   newRateLimiter(cfg.RateLimitPerMin),
	}
}
