package qrcode

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dmitrymomot/qrkit/pkg/logger"
	"github.com/dmitrymomot/qrkit/pkg/payload"
	"github.com/dmitrymomot/qrkit/pkg/render"
	"github.com/dmitrymomot/qrkit/pkg/symbol"
	"github.com/dmitrymomot/qrkit/pkg/validator"
)

// Output is a generated QR code file.
type Output struct {
	Data      []byte
	MIMEType  string
	Extension string
	// Content is the exact string embedded in the symbol.
	Content string
	Version int
	// Level is the error-correction level actually used.
	Level symbol.Level
}

// DataURI returns the file as a base64 data: URI for <img src>.
func (o *Output) DataURI() string {
	return "data:" + o.MIMEType + ";base64," + base64.StdEncoding.EncodeToString(o.Data)
}

// Filename returns name with the output's extension appended.
func (o *Output) Filename(name string) string {
	return name + "." + o.Extension
}

// Encoder generates QR codes. It is safe for concurrent use.
type Encoder struct {
	logger *slog.Logger
}

// EncoderOption configures an Encoder.
type EncoderOption func(*Encoder)

// WithLogger sets the logger used for unexpected failures and debug traces.
func WithLogger(l *slog.Logger) EncoderOption {
	return func(e *Encoder) {
		if l != nil {
			e.logger = l
		}
	}
}

// NewEncoder creates an Encoder. Without WithLogger nothing is logged.
func NewEncoder(opts ...EncoderOption) *Encoder {
	e := &Encoder{logger: logger.Noop()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Generate validates p together with opts, then builds, encodes and renders it.
func (e *Encoder) Generate(ctx context.Context, p payload.Payload, opts Options) (*Output, error) {
	if p == nil {
		return nil, errors.Join(payload.ErrBuild, payload.ErrUnknownKind)
	}
	if err := validator.Merge(opts.Validate(), p.Validate()); err != nil {
		return nil, err
	}

	out, err := e.generate(ctx, p, opts)
	if err != nil {
		return nil, e.fail(ctx, p.Kind(), opts, err)
	}
	return out, nil
}

// Encode decodes fields into the payload named by kind and generates it.
// Field and option errors are reported together.
func (e *Encoder) Encode(ctx context.Context, kind string, fields map[string]any, opts Options) (*Output, error) {
	p, err := payload.FromFields(kind, fields)
	if err != nil {
		if validator.IsValidationError(err) {
			return nil, validator.Merge(err, opts.Validate())
		}
		return nil, e.fail(ctx, payload.Kind(kind), opts, err)
	}
	return e.Generate(ctx, p, opts)
}

// EncodeRaw is Encode with options still in string form, as received from a
// form or JSON body. Option and field errors are reported together.
func (e *Encoder) EncodeRaw(ctx context.Context, kind string, fields map[string]any, raw RawOptions) (*Output, error) {
	p, opts, err := Prepare(kind, fields, raw)
	if err != nil {
		return nil, err
	}
	return e.Generate(ctx, p, opts)
}

// Prepare resolves raw options and decodes fields into a validated payload
// without encoding anything. Option and field errors are reported together,
// and recognized but unimplemented formats fail with render.ErrNotSupported.
// Callers use it to reject a request before acting on it.
func Prepare(kind string, fields map[string]any, raw RawOptions) (payload.Payload, Options, error) {
	opts, optErr := raw.Resolve()
	p, err := payload.FromFields(kind, fields)
	if err == nil {
		err = p.Validate()
	}
	if err := validator.Merge(optErr, err); err != nil {
		return nil, Options{}, err
	}
	if f := opts.format(); !f.Implemented() {
		return nil, Options{}, fmt.Errorf("%w: %s", render.ErrNotSupported, f)
	}
	return p, opts, nil
}

func (e *Encoder) generate(ctx context.Context, p payload.Payload, opts Options) (*Output, error) {
	start := time.Now()
	format := opts.format()
	if !format.Implemented() {
		return nil, fmt.Errorf("%w: %s", render.ErrNotSupported, format)
	}

	content, err := p.Build()
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m, err := symbol.Encode(content, opts.Level, symbol.WithMinVersion(opts.MinVersion))
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := render.Render(m, opts.Options)
	if err != nil {
		return nil, err
	}

	if m.Level() != opts.Level {
		e.logger.DebugContext(ctx, "error correction level lowered to fit content",
			logger.Kind(string(p.Kind())),
			slog.String("requested", opts.Level.String()),
			slog.String("used", m.Level().String()),
		)
	}
	e.logger.DebugContext(ctx, "qr code generated",
		logger.Kind(string(p.Kind())),
		logger.OutputFormat(format.String()),
		slog.Int("version", m.Version()),
		slog.Int("bytes", len(data)),
		logger.Duration(time.Since(start)),
	)

	return &Output{
		Data:      data,
		MIMEType:  format.MIMEType(),
		Extension: format.Extension(),
		Content:   content,
		Version:   m.Version(),
		Level:     m.Level(),
	}, nil
}

// fail logs unexpected errors and wraps them with ErrInternal.
func (e *Encoder) fail(ctx context.Context, kind payload.Kind, opts Options, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	if Classify(err).Code != CodeInternal {
		return err
	}
	e.logger.ErrorContext(ctx, "qr code generation failed",
		logger.Component("qrcode"),
		logger.Kind(string(kind)),
		logger.OutputFormat(opts.format().String()),
		logger.Error(err),
	)
	return errors.Join(ErrInternal, err)
}

var defaultEncoder = NewEncoder()

// Generate runs Encoder.Generate on an encoder without logging.
func Generate(ctx context.Context, p payload.Payload, opts Options) (*Output, error) {
	return defaultEncoder.Generate(ctx, p, opts)
}

// Encode runs Encoder.Encode on an encoder without logging.
func Encode(ctx context.Context, kind string, fields map[string]any, opts Options) (*Output, error) {
	return defaultEncoder.Encode(ctx, kind, fields, opts)
}

// EncodeRaw uses a default Encoder that does not log.
func EncodeRaw(ctx context.Context, kind string, fields map[string]any, raw RawOptions) (*Output, error) {
	return defaultEncoder.EncodeRaw(ctx, kind, fields, raw)
}
