package generator

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/qrkit/handler"
	"github.com/dmitrymomot/qrkit/pkg/clientip"
	"github.com/dmitrymomot/qrkit/pkg/links"
	"github.com/dmitrymomot/qrkit/pkg/logger"
	"github.com/dmitrymomot/qrkit/pkg/qrcode"
	"github.com/dmitrymomot/qrkit/pkg/ratelimiter"
	"github.com/dmitrymomot/qrkit/pkg/requestid"
)

// HealthEndpoints serves liveness and readiness endpoints.
type HealthEndpoints interface {
	LivenessHandler() http.HandlerFunc
	ReadinessHandler() http.HandlerFunc
}

// RouterOptions configures the generator router. Links and Health are
// optional; without Links the link routes are not mounted and tracking
// requests are rejected.
type RouterOptions struct {
	Encoder         *qrcode.Encoder
	Links           *links.Service
	TrackingBaseURL string
	Health          HealthEndpoints
	// RateLimiter throttles generation and link creation per client IP.
	RateLimiter *ratelimiter.Bucket
	Logger      *slog.Logger
}

// Router builds the HTTP routes.
func Router(opts RouterOptions) chi.Router {
	if opts.Encoder == nil {
		opts.Encoder = qrcode.NewEncoder()
	}
	if opts.Logger == nil {
		opts.Logger = logger.Noop()
	}
	errorHandler := handler.NewErrorHandler(opts.Logger, classify)

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(clientip.Middleware)
	r.Use(middleware.Recoverer)

	throttle := func(next http.Handler) http.Handler { return next }
	if opts.RateLimiter != nil {
		throttle = ratelimiter.Middleware(opts.RateLimiter, ratelimiter.ByIP,
			ratelimiter.WithDeniedHandler(rateLimited),
			ratelimiter.WithLogger(opts.Logger),
		)
	}

	if opts.Health != nil {
		r.Get("/healthz", opts.Health.LivenessHandler())
		r.Get("/readyz", opts.Health.ReadinessHandler())
	}

	gen := &generateService{
		encoder:      opts.Encoder,
		links:        opts.Links,
		trackingURL:  opts.TrackingBaseURL,
		errorHandler: errorHandler,
	}
	r.With(throttle).Post("/qrcode", gen.generateHandler())

	if opts.Links != nil {
		ls := &linkService{
			links:        opts.Links,
			trackingURL:  opts.TrackingBaseURL,
			errorHandler: errorHandler,
		}
		r.With(throttle).Post("/links", ls.createHandler())
		r.Get("/links/{code}", ls.showHandler())
		r.Get("/r/{code}", ls.redirectHandler())
	}

	return r
}

func rateLimited(w http.ResponseWriter, r *http.Request, _ *ratelimiter.Result) {
	detail := &handler.ErrorDetail{
		Code:      "rate_limited",
		Message:   "too many requests, please retry later",
		RequestID: requestid.FromContext(r.Context()),
	}
	_ = handler.ErrorJSON(http.StatusTooManyRequests, detail).Render(w, r)
}
