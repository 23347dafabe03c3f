package links

import "errors"

var (
	ErrNotFound           = errors.New("link not found")
	ErrCodeTaken          = errors.New("link code already exists")
	ErrCodeSpace          = errors.New("failed to allocate a unique link code")
	ErrInvalidDestination = errors.New("destination must be an absolute http or https URL")
)
