package render

import "errors"

var (
	ErrNotSupported  = errors.New("output format is not supported")
	ErrUnknownFormat = errors.New("unknown output format")
	ErrInvalidColor  = errors.New("color must be in #RRGGBB form")
	ErrEmptyMatrix   = errors.New("matrix is empty")
	ErrEncodeFailed  = errors.New("failed to encode image")
)
