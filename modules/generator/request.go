package generator

import (
	"fmt"
	"mime"
	"net/http"

	"github.com/dmitrymomot/qrkit/pkg/binder"
	"github.com/dmitrymomot/qrkit/pkg/qrcode"
)

// GenerateRequest is a decoded POST /qrcode body.
type GenerateRequest struct {
	Kind    string
	Fields  map[string]any
	Options qrcode.RawOptions
	Track   bool
	// Preview asks for a JSON body with a data URI instead of a download.
	Preview bool
}

// generateForm is the form encoding: options and control keys are named
// explicitly, every other key is a payload field.
type generateForm struct {
	Kind        string `form:"kind"`
	ContentType string `form:"content_type"`
	Track       bool   `form:"track"`
	Preview     bool   `form:"is_preview"`
	qrcode.RawOptions
	Fields map[string]string `form:"*"`
}

type generateJSON struct {
	Kind    string         `json:"kind"`
	Fields  map[string]any `json:"fields"`
	Options map[string]any `json:"options"`
	Track   bool           `json:"track"`
	Preview bool           `json:"preview"`
}

func bindGenerate(r *http.Request, v any) error {
	req, ok := v.(*GenerateRequest)
	if !ok {
		return binder.ErrInvalidTarget
	}

	if isJSON(r) {
		var body generateJSON
		if err := binder.JSON()(r, &body); err != nil {
			return err
		}

		options := make(map[string][]string, len(body.Options))
		for k, val := range body.Options {
			if val != nil {
				options[k] = []string{fmt.Sprint(val)}
			}
		}
		if err := binder.Decode(&req.Options, "json", options); err != nil {
			return err
		}

		req.Kind = body.Kind
		req.Fields = body.Fields
		req.Track = body.Track
		req.Preview = body.Preview
		return nil
	}

	var form generateForm
	if err := binder.Form()(r, &form); err != nil {
		return err
	}

	req.Kind = form.Kind
	if req.Kind == "" {
		req.Kind = form.ContentType
	}
	req.Options = form.RawOptions
	req.Track = form.Track
	req.Preview = form.Preview
	req.Fields = make(map[string]any, len(form.Fields))
	for k, val := range form.Fields {
		req.Fields[k] = val
	}
	return nil
}

// bindBody decodes JSON or form bodies depending on the content type.
func bindBody(r *http.Request, v any) error {
	if isJSON(r) {
		return binder.JSON()(r, v)
	}
	return binder.Form()(r, v)
}

func isJSON(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "application/json"
}
