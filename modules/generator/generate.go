package generator

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/dmitrymomot/qrkit/handler"
	"github.com/dmitrymomot/qrkit/pkg/links"
	"github.com/dmitrymomot/qrkit/pkg/payload"
	"github.com/dmitrymomot/qrkit/pkg/qrcode"
	"github.com/dmitrymomot/qrkit/pkg/validator"
)

const downloadName = "qrcode"

// PreviewResponse is returned instead of the file when a preview is requested.
type PreviewResponse struct {
	DataURI  string `json:"data_uri"`
	MIMEType string `json:"mime_type"`
	Filename string `json:"filename"`
	Content  string `json:"content"`
	Version  int    `json:"version"`
	Level    string `json:"level"`
}

type generateService struct {
	encoder      *qrcode.Encoder
	links        *links.Service
	trackingURL  string
	errorHandler handler.ErrorHandler
}

func (s *generateService) generateHandler() http.HandlerFunc {
	return handler.Wrap(s.generate,
		handler.WithBinders[GenerateRequest](bindGenerate),
		handler.WithErrorHandler[GenerateRequest](s.errorHandler),
	)
}

func (s *generateService) generate(ctx handler.Context, req GenerateRequest) handler.Response {
	// Reject bad input before a tracked link is stored for it.
	_, opts, err := qrcode.Prepare(req.Kind, req.Fields, req.Options)
	if err != nil {
		return handler.Error(err)
	}

	if req.Track {
		if err := s.track(ctx, &req); err != nil {
			return handler.Error(err)
		}
	}

	out, err := s.encoder.Encode(ctx, req.Kind, req.Fields, opts)
	if err != nil {
		return handler.Error(err)
	}

	if req.Preview {
		return handler.JSON(PreviewResponse{
			DataURI:  out.DataURI(),
			MIMEType: out.MIMEType,
			Filename: out.Filename(downloadName),
			Content:  out.Content,
			Version:  out.Version,
			Level:    out.Level.String(),
		})
	}

	return handler.File(out.Data, out.MIMEType, out.Filename(downloadName),
		handler.WithFileHeader("X-QR-Version", strconv.Itoa(out.Version)),
		handler.WithFileHeader("X-QR-Level", out.Level.String()),
	)
}

// track swaps the url field of a url payload for a tracking URL that
// redirects to it. Other kinds are left untouched.
func (s *generateService) track(ctx handler.Context, req *GenerateRequest) error {
	kind, err := payload.ParseKind(req.Kind)
	if err != nil || kind != payload.KindURL {
		return nil
	}
	if s.links == nil {
		return ErrTrackingDisabled
	}

	destination, _ := req.Fields["url"].(string)
	if strings.TrimSpace(destination) == "" {
		return nil
	}

	link, err := s.links.Create(ctx, destination)
	if err != nil {
		if errors.Is(err, links.ErrInvalidDestination) {
			return validator.ValidationErrors{{
				Field:          "url",
				Message:        "must be an absolute http or https URL to be tracked",
				TranslationKey: "validation.url",
			}}
		}
		return err
	}

	fields := make(map[string]any, len(req.Fields))
	for k, v := range req.Fields {
		fields[k] = v
	}
	fields["url"] = links.TrackingURL(s.trackingURL, link.Code)
	req.Fields = fields
	return nil
}
