package links

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/qrkit/pkg/logger"
)

const (
	DefaultCodeLength  = 7
	DefaultMaxAttempts = 5
)

// Service creates and resolves tracked links.
type Service struct {
	repo        Repository
	codeLength  int
	maxAttempts int
	now         func() time.Time
	logger      *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

func WithCodeLength(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.codeLength = n
		}
	}
}

// WithMaxAttempts bounds how many codes Create tries before ErrCodeSpace.
func WithMaxAttempts(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxAttempts = n
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock replaces time.Now for CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

func NewService(repo Repository, opts ...Option) *Service {
	s := &Service{
		repo:        repo,
		codeLength:  DefaultCodeLength,
		maxAttempts: DefaultMaxAttempts,
		now:         time.Now,
		logger:      logger.Noop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create stores a link to destination under a fresh random code.
func (s *Service) Create(ctx context.Context, destination string) (Link, error) {
	destination = strings.TrimSpace(destination)
	if !validDestination(destination) {
		return Link{}, ErrInvalidDestination
	}

	for range s.maxAttempts {
		code, err := generateCode(s.codeLength)
		if err != nil {
			return Link{}, fmt.Errorf("generate code: %w", err)
		}

		link := Link{
			ID:          uuid.New(),
			Code:        code,
			Destination: destination,
			CreatedAt:   s.now().UTC().Truncate(time.Millisecond),
		}
		err = s.repo.Insert(ctx, link)
		switch {
		case err == nil:
			s.logger.InfoContext(ctx, "tracked link created",
				logger.Component("links"),
				logger.LinkCode(code),
			)
			return link, nil
		case errors.Is(err, ErrCodeTaken):
			s.logger.DebugContext(ctx, "link code collision", logger.LinkCode(code))
			continue
		default:
			return Link{}, err
		}
	}

	return Link{}, ErrCodeSpace
}

// Resolve returns the link stored under code.
func (s *Service) Resolve(ctx context.Context, code string) (Link, error) {
	if !ValidCode(code) {
		return Link{}, ErrNotFound
	}
	return s.repo.FindByCode(ctx, code)
}

// RecordVisit counts one visit and returns the updated link.
func (s *Service) RecordVisit(ctx context.Context, code string) (Link, error) {
	if !ValidCode(code) {
		return Link{}, ErrNotFound
	}
	if _, err := s.repo.IncrementVisits(ctx, code); err != nil {
		return Link{}, err
	}
	return s.repo.FindByCode(ctx, code)
}

// TrackingURL joins baseURL and code. A "{code}" placeholder in baseURL is
// replaced; otherwise the code is appended as the last path segment.
func TrackingURL(baseURL, code string) string {
	if strings.Contains(baseURL, "{code}") {
		return strings.ReplaceAll(baseURL, "{code}", url.PathEscape(code))
	}
	return strings.TrimRight(baseURL, "/") + "/" + url.PathEscape(code)
}

func validDestination(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
