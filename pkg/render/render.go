package render

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/qrkit/pkg/symbol"
)

// Render draws m in the requested format. Options are validated first and
// the returned buffer is complete or nil.
func Render(m *symbol.Matrix, opts Options) ([]byte, error) {
	if m == nil || m.Size() == 0 {
		return nil, ErrEmptyMatrix
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	opts = opts.normalize()
	if err := opts.checkSize(m.Size()); err != nil {
		return nil, err
	}

	var (
		data []byte
		err  error
	)
	switch {
	case opts.Format.raster():
		data, err = renderRaster(m, opts)
	case opts.Format == FormatSVG:
		data = renderSVG(m, opts)
	case opts.Format == FormatTXT:
		data = renderText(m, opts)
	default:
		return nil, fmt.Errorf("%w: %s", ErrNotSupported, opts.Format)
	}
	if err != nil {
		return nil, errors.Join(ErrEncodeFailed, err)
	}
	return data, nil
}
