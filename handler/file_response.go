package handler

import (
	"net/http"
	"strconv"
	"strings"
)

var quoteEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\r", "", "\n", "")

type fileResponse struct {
	data        []byte
	contentType string
	filename    string
	inline      bool
	headers     http.Header
}

func (f fileResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	disposition := "attachment"
	if f.inline {
		disposition = "inline"
	}
	if f.filename != "" {
		disposition += `; filename="` + quoteEscaper.Replace(f.filename) + `"`
	}

	h := w.Header()
	for k, v := range f.headers {
		h[k] = v
	}
	h.Set("Content-Type", f.contentType)
	h.Set("Content-Length", strconv.Itoa(len(f.data)))
	h.Set("Content-Disposition", disposition)
	h.Set("X-Content-Type-Options", "nosniff")
	h.Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)

	_, err := w.Write(f.data)
	return err
}

// FileOption configures a file response.
type FileOption func(*fileResponse)

// Inline asks the client to display the file instead of downloading it.
func Inline() FileOption {
	return func(f *fileResponse) { f.inline = true }
}

// WithFileHeader adds a response header.
func WithFileHeader(key, value string) FileOption {
	return func(f *fileResponse) {
		if f.headers == nil {
			f.headers = make(http.Header)
		}
		f.headers.Set(key, value)
	}
}

// File responds with data as a downloadable attachment.
func File(data []byte, contentType, filename string, opts ...FileOption) Response {
	f := &fileResponse{data: data, contentType: contentType, filename: filename}
	if f.contentType == "" {
		f.contentType = "application/octet-stream"
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}
