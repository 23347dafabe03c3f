package symbol

import (
	"fmt"

	skipqrcode "github.com/skip2/go-qrcode"
)

const (
	minVersion = 1
	maxVersion = 40
)

type options struct {
	minVersion int
	fallback   bool
}

// Option configures Encode.
type Option func(*options)

// WithMinVersion makes Encode produce a symbol of at least version v.
// Zero means no minimum.
func WithMinVersion(v int) Option {
	return func(o *options) {
		o.minVersion = v
	}
}

// WithoutFallback makes Encode fail instead of lowering the level when the
// content does not fit.
func WithoutFallback() Option {
	return func(o *options) {
		o.fallback = false
	}
}

// Encode builds the matrix for content at the given level.
func Encode(content string, level Level, opts ...Option) (*Matrix, error) {
	if content == "" {
		return nil, ErrEmptyContent
	}
	if !level.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLevel, int(level))
	}

	o := options{fallback: true}
	for _, opt := range opts {
		opt(&o)
	}
	if o.minVersion != 0 && (o.minVersion < minVersion || o.minVersion > maxVersion) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidVersion, o.minVersion)
	}

	for l := level; l >= LevelL; l-- {
		q, err := encodeAt(content, l, o.minVersion)
		if err == nil {
			q.DisableBorder = true
			return &Matrix{
				modules: q.Bitmap(),
				version: q.VersionNumber,
				level:   l,
			}, nil
		}
		if !o.fallback {
			break
		}
	}

	return nil, ErrCapacityExceeded
}

// encodeAt selects the smallest fitting version, raised to minVersion if needed.
func encodeAt(content string, level Level, minVersion int) (*skipqrcode.QRCode, error) {
	q, err := skipqrcode.New(content, level.recovery())
	if err != nil {
		return nil, err
	}
	if q.VersionNumber >= minVersion {
		return q, nil
	}
	return skipqrcode.NewWithForcedVersion(content, minVersion, level.recovery())
}
