package log

type contextKey string

// RequestIDKey carries the per-request id set by the request-id middleware.
const RequestIDKey contextKey = "request_id"
