package qrcode

import (
	"errors"

	"github.com/dmitrymomot/qrkit/pkg/payload"
	"github.com/dmitrymomot/qrkit/pkg/render"
	"github.com/dmitrymomot/qrkit/pkg/symbol"
	"github.com/dmitrymomot/qrkit/pkg/validator"
)

// ErrInternal wraps failures the caller cannot correct.
var ErrInternal = errors.New("failed to generate QR code")

// Stable error codes exposed to callers.
const (
	CodeValidation       = "validation_error"
	CodeBuild            = "build_error"
	CodeCapacityExceeded = "capacity_exceeded"
	CodeNotSupported     = "not_supported"
	CodeInternal         = "internal_error"
)

// Failure is the external description of an error.
type Failure struct {
	Code    string
	Message string
	// Fields maps field names to reasons for validation failures.
	Fields map[string]string
}

// UserCorrectable reports whether changing the input can fix the failure.
func (f Failure) UserCorrectable() bool {
	switch f.Code {
	case CodeValidation, CodeBuild, CodeCapacityExceeded:
		return true
	}
	return false
}

// Classify maps an error returned by this package to a Failure. Internal
// errors get a generic message.
func Classify(err error) Failure {
	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
		return Failure{Code: CodeValidation, Message: "invalid input", Fields: verrs.Map()}
	}

	switch {
	case errors.Is(err, payload.ErrBuild):
		return Failure{Code: CodeBuild, Message: buildMessage(err)}
	case errors.Is(err, symbol.ErrCapacityExceeded):
		return Failure{Code: CodeCapacityExceeded, Message: "content is too long for a QR code, please shorten it"}
	case errors.Is(err, render.ErrNotSupported):
		return Failure{Code: CodeNotSupported, Message: "output format is not supported yet"}
	}
	return Failure{Code: CodeInternal, Message: ErrInternal.Error()}
}

// buildMessage returns the specific builder reason without the ErrBuild prefix.
func buildMessage(err error) string {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			if e != payload.ErrBuild {
				return e.Error()
			}
		}
	}
	return payload.ErrBuild.Error()
}
