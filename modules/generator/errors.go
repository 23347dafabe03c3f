package generator

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/qrkit/handler"
	"github.com/dmitrymomot/qrkit/pkg/links"
	"github.com/dmitrymomot/qrkit/pkg/qrcode"
)

// ErrTrackingDisabled is returned for tracking requests when no link store is configured.
var ErrTrackingDisabled = errors.New("link tracking is not enabled")

var failureStatus = map[string]int{
	qrcode.CodeValidation:       http.StatusBadRequest,
	qrcode.CodeBuild:            http.StatusBadRequest,
	qrcode.CodeCapacityExceeded: http.StatusRequestEntityTooLarge,
	qrcode.CodeNotSupported:     http.StatusNotImplemented,
}

// classify maps generation and link errors to HTTP responses.
func classify(err error) (int, *handler.ErrorDetail, bool) {
	switch {
	case errors.Is(err, links.ErrNotFound):
		return http.StatusNotFound, &handler.ErrorDetail{Code: "not_found", Message: "link not found"}, true
	case errors.Is(err, links.ErrInvalidDestination):
		return http.StatusBadRequest, &handler.ErrorDetail{
			Code:    qrcode.CodeValidation,
			Message: "invalid input",
			Details: map[string]string{"destination": "must be an absolute http or https URL"},
		}, true
	case errors.Is(err, ErrTrackingDisabled):
		return http.StatusNotImplemented, &handler.ErrorDetail{Code: qrcode.CodeNotSupported, Message: err.Error()}, true
	}

	f := qrcode.Classify(err)
	status, ok := failureStatus[f.Code]
	if !ok {
		return 0, nil, false
	}
	return status, &handler.ErrorDetail{Code: f.Code, Message: f.Message, Details: f.Fields}, true
}
