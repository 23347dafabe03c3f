package payload

import "errors"

var (
	// ErrBuild wraps every failure raised by a builder.
	ErrBuild = errors.New("failed to build payload")

	ErrEmptyContent        = errors.New("content cannot be empty")
	ErrMissingSSID         = errors.New("wifi SSID cannot be empty")
	ErrMissingName         = errors.New("no usable name could be derived")
	ErrMissingRecipient    = errors.New("recipient cannot be empty")
	ErrMissingNumber       = errors.New("phone number cannot be empty")
	ErrInvalidCoordinates  = errors.New("latitude and longitude must be numbers")
	ErrMissingEventField   = errors.New("event requires summary, start and end")
	ErrUnrecognizedDate    = errors.New("unrecognized date/time format")
	ErrMissingPaymentField = errors.New("payment requires name, IBAN and amount")
	ErrInvalidAmount       = errors.New("amount must be a number")
	ErrUnknownKind         = errors.New("unknown content kind")
)

func buildError(err error) error {
	return errors.Join(ErrBuild, err)
}
