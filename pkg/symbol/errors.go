package symbol

import "errors"

var (
	ErrEmptyContent     = errors.New("content cannot be empty")
	ErrCapacityExceeded = errors.New("content too long to encode at any version")
	ErrInvalidLevel     = errors.New("invalid error correction level")
	ErrInvalidVersion   = errors.New("version must be between 1 and 40")
)
