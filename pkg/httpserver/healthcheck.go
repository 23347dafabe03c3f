package httpserver

import (
	"context"
	"net/http"
	"slices"
	"strings"

	"github.com/dmitrymomot/qrkit/pkg/logger"
)

// CheckFunc reports whether a dependency is usable.
type CheckFunc func(ctx context.Context) error

type namedCheck struct {
	name  string
	check CheckFunc
}

// AddReadinessCheck registers a dependency check consulted by ReadinessHandler.
// Registering the same name twice replaces the earlier check.
func (s *Server) AddReadinessCheck(name string, check CheckFunc) {
	if name == "" || check == nil {
		panic("AddReadinessCheck: name and check are required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.checks = slices.DeleteFunc(s.checks, func(c namedCheck) bool { return c.name == name })
	s.checks = append(s.checks, namedCheck{name: name, check: check})
}

// LivenessHandler always answers 200 ALIVE while the process serves requests.
func (s *Server) LivenessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ALIVE"))
	}
}

// ReadinessHandler runs every registered check. It answers 200 READY when
// all pass and 503 NOT_READY listing the failed checks otherwise.
func (s *Server) ReadinessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		checks := slices.Clone(s.checks)
		timeout := s.cfg.CheckTimeout
		s.mu.Unlock()

		var failed []string
		for _, c := range checks {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			err := c.check(ctx)
			cancel()
			if err != nil {
				s.log.ErrorContext(r.Context(), "readiness check failed",
					logger.Component(c.name),
					logger.Error(err),
				)
				failed = append(failed, c.name)
			}
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if len(failed) > 0 {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("NOT_READY: " + strings.Join(failed, ",")))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("READY"))
	}
}
