package clientip

import (
	"net/http"

	"github.com/dmitrymomot/qrkit/pkg/logger"
)

// Middleware resolves the client IP once, stores it in the request context
// and tags records logged with that context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := FromRequest(r)
		ctx := WithContext(r.Context(), ip)
		if ip != "" {
			ctx = logger.ContextWithAttrs(ctx, logger.ClientIP(ip))
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
