package render

import (
	"fmt"

	"github.com/dmitrymomot/qrkit/pkg/validator"
)

const (
	DefaultScale  = 10
	DefaultBorder = 4

	MinScale  = 1
	MaxScale  = 100
	MinBorder = 0
	MaxBorder = 20

	// MaxRasterSide bounds the pixel width of raster output, quiet zone
	// included, so one request cannot allocate hundreds of megabytes.
	MaxRasterSide = 8192
)

// Options controls how a matrix is drawn.
type Options struct {
	Format     Format
	Scale      int // pixels per module
	Border     int // quiet zone width in modules
	Foreground Color
	Background Background
}

// DefaultOptions returns PNG output, scale 10, border 4, black on white.
func DefaultOptions() Options {
	return Options{
		Format:     DefaultFormat,
		Scale:      DefaultScale,
		Border:     DefaultBorder,
		Foreground: Black,
		Background: DefaultBackground(),
	}
}

// Validate reports every out-of-range option as validator.ValidationErrors.
// Format names that are recognized but not implemented pass validation.
func (o Options) Validate() error {
	f := o.normalize().Format
	_, formatErr := ParseFormat(string(f))

	return validator.Apply(
		validator.When(formatErr != nil,
			validator.Fail("format", "unknown output format", "validation.format")),
		validator.Between("scale", o.Scale, MinScale, MaxScale),
		validator.Between("border", o.Border, MinBorder, MaxBorder),
		validator.When(formatErr == nil && o.Background.Transparent() && !f.SupportsTransparency(),
			validator.Fail("background", "transparent background is not supported by "+f.String(), "validation.transparency")),
	)
}

// checkSize rejects raster output wider than MaxRasterSide for a symbol of
// the given module count.
func (o Options) checkSize(modules int) error {
	side := (modules + 2*o.Border) * o.Scale
	return validator.Apply(
		validator.When(o.Format.raster() && side > MaxRasterSide,
			validator.Fail("scale", fmt.Sprintf("image would be %d pixels wide, the limit is %d", side, MaxRasterSide), "validation.image_size")),
	)
}

func (o Options) normalize() Options {
	if o.Format == "" {
		o.Format = DefaultFormat
	}
	if o.Format == "jpg" {
		o.Format = FormatJPEG
	}
	return o
}
