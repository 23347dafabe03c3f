package qrcode

import (
	"strconv"
	"strings"

	"github.com/dmitrymomot/qrkit/pkg/binder"
	"github.com/dmitrymomot/qrkit/pkg/render"
	"github.com/dmitrymomot/qrkit/pkg/symbol"
	"github.com/dmitrymomot/qrkit/pkg/validator"
)

const maxVersion = 40

// Options combines symbol and rendering parameters.
type Options struct {
	Level symbol.Level
	// MinVersion forces at least this symbol version; zero picks the smallest.
	MinVersion int
	render.Options
}

// DefaultOptions returns level M, automatic version and render.DefaultOptions.
func DefaultOptions() Options {
	return Options{
		Level:   symbol.DefaultLevel,
		Options: render.DefaultOptions(),
	}
}

// Validate reports every invalid option as validator.ValidationErrors.
func (o Options) Validate() error {
	return validator.Merge(
		validator.Apply(
			validator.When(!o.Level.Valid(),
				validator.Fail("level", "must be one of L, M, Q, H", "validation.level")),
			validator.Between("min_version", o.MinVersion, 0, maxVersion),
		),
		o.Options.Validate(),
	)
}

// RawOptions holds options as strings, e.g. straight from a form. Empty
// values take the defaults; any other value, "0" included, is validated as
// given.
type RawOptions struct {
	Level       string `form:"error_correction" json:"level"`
	Scale       string `form:"scale" json:"scale"`
	Border      string `form:"border" json:"border"`
	Foreground  string `form:"dark_color" json:"foreground"`
	Background  string `form:"light_color" json:"background"`
	Transparent string `form:"transparent_bg" json:"transparent"`
	Format      string `form:"output_format" json:"format"`
	MinVersion  string `form:"min_version" json:"min_version"`
}

// Resolve parses and validates every option, collecting all problems.
func (r RawOptions) Resolve() (Options, error) {
	opts := DefaultOptions()
	var errs validator.ValidationErrors

	fail := func(field, message, key string) {
		errs.Add(validator.ValidationError{Field: field, Message: message, TranslationKey: key})
	}
	integer := func(field, value string, dst *int) {
		if strings.TrimSpace(value) == "" {
			return
		}
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			fail(field, "must be a whole number", "validation.integer")
			return
		}
		*dst = n
	}

	if level, err := symbol.ParseLevel(r.Level); err != nil {
		fail("level", "must be one of L, M, Q, H", "validation.level")
	} else {
		opts.Level = level
	}

	if format, err := render.ParseFormat(r.Format); err != nil {
		fail("format", "unknown output format", "validation.format")
	} else {
		opts.Format = format
	}

	integer("scale", r.Scale, &opts.Scale)
	integer("border", r.Border, &opts.Border)
	integer("min_version", r.MinVersion, &opts.MinVersion)

	color := func(field, value string) (render.Color, bool) {
		value = strings.TrimSpace(value)
		if err := validator.Apply(validator.HexColor(field, value)); err != nil {
			errs = append(errs, validator.ExtractValidationErrors(err)...)
			return render.Color{}, false
		}
		c, err := render.ParseColor(value)
		return c, err == nil
	}

	if strings.TrimSpace(r.Foreground) != "" {
		if c, ok := color("foreground", r.Foreground); ok {
			opts.Foreground = c
		}
	}

	transparent, err := binder.ParseBool(r.Transparent)
	if err != nil {
		fail("transparent", "must be a boolean", "validation.boolean")
	}
	switch {
	case transparent:
		opts.Background = render.TransparentBackground()
	case strings.TrimSpace(r.Background) != "":
		if c, ok := color("background", r.Background); ok {
			opts.Background = render.SolidBackground(c)
		}
	}

	var parseErr error
	if !errs.IsEmpty() {
		parseErr = errs
	}
	if err := validator.Merge(parseErr, opts.Validate()); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// format returns the canonical output format, resolving aliases and the default.
func (o Options) format() render.Format {
	f, err := render.ParseFormat(string(o.Format))
	if err != nil {
		return o.Format
	}
	return f
}
