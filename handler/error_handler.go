package handler

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/qrkit/pkg/logger"
	"github.com/dmitrymomot/qrkit/pkg/requestid"
)

// Classifier maps domain errors to a status and detail. It returns false for
// errors it does not recognize.
type Classifier func(err error) (status int, detail *ErrorDetail, ok bool)

// DefaultErrorHandler renders err as JSON without logging.
func DefaultErrorHandler(ctx Context, err error) {
	NewErrorHandler(nil)(ctx, err)
}

// NewErrorHandler returns an ErrorHandler that renders errors as JSON.
// Classifiers are consulted in order before the generic mapping. Client
// errors are logged at warn level, server errors at error level.
func NewErrorHandler(log *slog.Logger, classifiers ...Classifier) ErrorHandler {
	if log == nil {
		log = logger.Noop()
	}

	return func(ctx Context, err error) {
		status, detail := classify(err, classifiers)
		r := ctx.Request()

		detail.RequestID = requestid.FromContext(r.Context())
		log.Log(r.Context(), logLevel(status), "request failed",
			logger.Group("http",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", status),
			),
			logger.ErrorCode(detail.Code),
			logger.Error(err),
		)

		if renderErr := ErrorJSON(status, detail).Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.ErrorContext(r.Context(), "failed to render error response", logger.Error(renderErr))
		}
	}
}

func classify(err error, classifiers []Classifier) (int, *ErrorDetail) {
	for _, c := range classifiers {
		if status, detail, ok := c(err); ok {
			return status, detail
		}
	}
	return errorToDetail(err)
}

func logLevel(status int) slog.Level {
	if status >= http.StatusBadRequest && status < http.StatusInternalServerError {
		return slog.LevelWarn
	}
	return slog.LevelError
}
