package redis

import "errors"

var (
	// ErrEmptyURL is returned when REDIS_URL is blank.
	ErrEmptyURL = errors.New("redis: empty connection url")
	// ErrInvalidURL wraps a go-redis URL parse failure.
	ErrInvalidURL = errors.New("redis: invalid connection url")
	// ErrNotReady is returned when no PING succeeded within the retry budget.
	ErrNotReady = errors.New("redis: server not ready")
	// ErrHealthcheckFailed wraps a failed readiness PING.
	ErrHealthcheckFailed = errors.New("redis: healthcheck failed")
)
