package ratelimiter

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dmitrymomot/qrkit/pkg/clientip"
	"github.com/dmitrymomot/qrkit/pkg/logger"
)

// KeyFunc derives the bucket key from a request.
type KeyFunc func(r *http.Request) string

// ByIP keys buckets by client IP.
func ByIP(r *http.Request) string {
	return "ip:" + clientip.FromRequest(r)
}

// DeniedFunc writes the response for a throttled request.
type DeniedFunc func(w http.ResponseWriter, r *http.Request, res *Result)

// MiddlewareOption configures Middleware.
type MiddlewareOption func(*middlewareConfig)

type middlewareConfig struct {
	denied DeniedFunc
	log    *slog.Logger
}

// WithDeniedHandler replaces the plain-text 429 response.
func WithDeniedHandler(f DeniedFunc) MiddlewareOption {
	return func(c *middlewareConfig) {
		if f != nil {
			c.denied = f
		}
	}
}

// WithLogger logs store failures.
func WithLogger(l *slog.Logger) MiddlewareOption {
	return func(c *middlewareConfig) {
		if l != nil {
			c.log = l
		}
	}
}

// Middleware throttles requests per key and sets X-RateLimit-* headers.
// When the store fails the request is let through.
func Middleware(b *Bucket, keyFunc KeyFunc, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	cfg := &middlewareConfig{
		denied: func(w http.ResponseWriter, _ *http.Request, _ *Result) {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		},
		log: logger.Noop(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			res, err := b.Allow(r.Context(), keyFunc(r))
			if err != nil {
				cfg.log.ErrorContext(r.Context(), "rate limit check failed",
					logger.Component("ratelimiter"),
					logger.Error(err),
				)
				next.ServeHTTP(w, r)
				return
			}

			h := w.Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(max(0, res.Remaining)))
			h.Set("X-RateLimit-Reset", strconv.FormatInt(res.ResetAt.Unix(), 10))

			if !res.Allowed() {
				secs := int(res.RetryAfter().Seconds() + 0.999)
				h.Set("Retry-After", strconv.Itoa(max(1, secs)))
				cfg.denied(w, r, res)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
