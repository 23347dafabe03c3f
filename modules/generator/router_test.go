package generator_test

import (
	"bytes"
	"context"
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrkit/handler"
	"github.com/dmitrymomot/qrkit/modules/generator"
	"github.com/dmitrymomot/qrkit/pkg/httpserver"
	"github.com/dmitrymomot/qrkit/pkg/links"
	"github.com/dmitrymomot/qrkit/pkg/ratelimiter"
	"github.com/dmitrymomot/qrkit/pkg/requestid"
)

const trackingBase = "https://qr.example.com/r/"

func newRouter(t *testing.T, withLinks bool) http.Handler {
	t.Helper()
	opts := generator.RouterOptions{
		TrackingBaseURL: trackingBase,
		Health:          httpserver.New(httpserver.Config{}),
	}
	if withLinks {
		opts.Links = links.NewService(links.NewMemoryRepository())
	}
	return generator.Router(opts)
}

func postForm(t *testing.T, h http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func postJSON(t *testing.T, h http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func errorEnvelope(t *testing.T, rec *httptest.ResponseRecorder) *handler.ErrorDetail {
	t.Helper()
	var body handler.JSONResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	require.NotNil(t, body.Error)
	return body.Error
}

func TestGenerate_Form(t *testing.T) {
	t.Parallel()
	h := newRouter(t, false)

	rec := postForm(t, h, "/qrcode", url.Values{
		"content_type":     {"wifi"},
		"ssid":             {"Home"},
		"password":         {"secret"},
		"security":         {"WPA"},
		"error_correction": {"Q"},
		"scale":            {"4"},
		"border":           {"2"},
	})

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="qrcode.png"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "Q", rec.Header().Get("X-QR-Level"))
	assert.NotEmpty(t, rec.Header().Get(requestid.Header))

	img, err := png.Decode(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	assert.Zero(t, img.Bounds().Dx()%4)
}

func TestGenerate_JSON(t *testing.T) {
	t.Parallel()
	h := newRouter(t, false)

	rec := postJSON(t, h, "/qrcode", `{
		"kind": "text",
		"fields": {"text": "hello"},
		"options": {"format": "svg", "scale": 3, "transparent": true}
	}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="qrcode.svg"`, rec.Header().Get("Content-Disposition"))
	assert.Contains(t, rec.Body.String(), "<svg")
}

func TestGenerate_Errors(t *testing.T) {
	t.Parallel()
	h := newRouter(t, false)

	tests := []struct {
		name        string
		form        url.Values
		wantStatus  int
		wantCode    string
		wantDetails []string
	}{
		{
			name:        "missing ssid and bad color",
			form:        url.Values{"kind": {"wifi"}, "dark_color": {"blue"}},
			wantStatus:  http.StatusBadRequest,
			wantCode:    "validation_error",
			wantDetails: []string{"ssid", "foreground"},
		},
		{
			name:        "unknown kind",
			form:        url.Values{"kind": {"barcode"}},
			wantStatus:  http.StatusBadRequest,
			wantCode:    "validation_error",
			wantDetails: []string{"kind"},
		},
		{
			name:       "format not implemented",
			form:       url.Values{"kind": {"text"}, "text": {"hi"}, "output_format": {"pdf"}},
			wantStatus: http.StatusNotImplemented,
			wantCode:   "not_supported",
		},
		{
			name:       "content too long",
			form:       url.Values{"kind": {"text"}, "text": {strings.Repeat("x", 8000)}},
			wantStatus: http.StatusRequestEntityTooLarge,
			wantCode:   "capacity_exceeded",
		},
		{
			name:       "tracking without link store",
			form:       url.Values{"kind": {"url"}, "url": {"https://example.com"}, "track": {"on"}},
			wantStatus: http.StatusNotImplemented,
			wantCode:   "not_supported",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := postForm(t, h, "/qrcode", tt.form)
			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())

			detail := errorEnvelope(t, rec)
			assert.Equal(t, tt.wantCode, detail.Code)
			assert.NotEmpty(t, detail.RequestID)
			for _, field := range tt.wantDetails {
				assert.Contains(t, detail.Details, field)
			}
		})
	}
}

func TestGenerate_UnsupportedMediaType(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/qrcode", strings.NewReader("hello"))
	req.Header.Set("Content-Type", "text/plain")
	rec := httptest.NewRecorder()
	newRouter(t, false).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
}

func TestGenerate_Tracked(t *testing.T) {
	t.Parallel()
	h := newRouter(t, true)

	rec := postForm(t, h, "/qrcode", url.Values{
		"kind":          {"url"},
		"url":           {"https://example.com/landing"},
		"track":         {"on"},
		"output_format": {"txt"},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, `attachment; filename="qrcode.txt"`, rec.Header().Get("Content-Disposition"))

	rec = postForm(t, h, "/qrcode", url.Values{
		"kind":  {"url"},
		"url":   {"ftp://example.com"},
		"track": {"on"},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, errorEnvelope(t, rec).Details, "url")
}

type countingRepository struct {
	links.Repository
	inserts atomic.Int64
}

func (r *countingRepository) Insert(ctx context.Context, link links.Link) error {
	r.inserts.Add(1)
	return r.Repository.Insert(ctx, link)
}

func TestGenerate_TrackedRejectionStoresNoLink(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		extra      url.Values
		wantStatus int
		wantField  string
	}{
		{name: "scale too large", extra: url.Values{"scale": {"500"}}, wantStatus: http.StatusBadRequest, wantField: "scale"},
		{name: "scale zero", extra: url.Values{"scale": {"0"}}, wantStatus: http.StatusBadRequest, wantField: "scale"},
		{name: "bad color", extra: url.Values{"dark_color": {"red"}}, wantStatus: http.StatusBadRequest, wantField: "foreground"},
		{name: "unimplemented format", extra: url.Values{"output_format": {"pdf"}}, wantStatus: http.StatusNotImplemented},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			repo := &countingRepository{Repository: links.NewMemoryRepository()}
			h := generator.Router(generator.RouterOptions{
				TrackingBaseURL: trackingBase,
				Links:           links.NewService(repo),
			})

			form := url.Values{"kind": {"url"}, "url": {"https://example.com"}, "track": {"on"}}
			for k, v := range tt.extra {
				form[k] = v
			}
			rec := postForm(t, h, "/qrcode", form)
			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantField != "" {
				assert.Contains(t, errorEnvelope(t, rec).Details, tt.wantField)
			}
			assert.Zero(t, repo.inserts.Load())
		})
	}

	t.Run("accepted request stores one link", func(t *testing.T) {
		t.Parallel()
		repo := &countingRepository{Repository: links.NewMemoryRepository()}
		h := generator.Router(generator.RouterOptions{
			TrackingBaseURL: trackingBase,
			Links:           links.NewService(repo),
		})
		rec := postForm(t, h, "/qrcode", url.Values{"kind": {"url"}, "url": {"https://example.com"}, "track": {"on"}})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.EqualValues(t, 1, repo.inserts.Load())
	})
}

func TestGenerate_Preview(t *testing.T) {
	t.Parallel()
	h := newRouter(t, false)

	check := func(t *testing.T, rec *httptest.ResponseRecorder, mime string) generator.PreviewResponse {
		t.Helper()
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Empty(t, rec.Header().Get("Content-Disposition"))

		var body struct {
			Data generator.PreviewResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, mime, body.Data.MIMEType)
		assert.True(t, strings.HasPrefix(body.Data.DataURI, "data:"+mime+";base64,"))
		return body.Data
	}

	preview := check(t, postForm(t, h, "/qrcode", url.Values{
		"kind":       {"text"},
		"text":       {"hello"},
		"is_preview": {"on"},
	}), "image/png")
	assert.Equal(t, "hello", preview.Content)
	assert.Equal(t, "qrcode.png", preview.Filename)
	assert.Equal(t, "M", preview.Level)

	preview = check(t, postJSON(t, h, "/qrcode",
		`{"kind":"url","fields":{"url":"https://example.com"},"options":{"format":"svg"},"preview":true}`,
	), "image/svg+xml")
	assert.Equal(t, "https://example.com", preview.Content)
}

func TestLinks(t *testing.T) {
	t.Parallel()
	h := newRouter(t, true)

	rec := postJSON(t, h, "/links", `{"destination":"https://example.com/landing"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created struct {
		Data generator.LinkResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	code := created.Data.Code
	require.NotEmpty(t, code)
	assert.Equal(t, trackingBase+code, created.Data.TrackingURL)
	assert.Zero(t, created.Data.Visits)

	for range 2 {
		rec = get(t, h, "/r/"+code)
		require.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "https://example.com/landing", rec.Header().Get("Location"))
	}

	rec = get(t, h, "/links/"+code)
	require.Equal(t, http.StatusOK, rec.Code)
	var shown struct {
		Data generator.LinkResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &shown))
	assert.Equal(t, int64(2), shown.Data.Visits)
}

func TestLinks_Errors(t *testing.T) {
	t.Parallel()
	h := newRouter(t, true)

	rec := get(t, h, "/r/unknown1")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", errorEnvelope(t, rec).Code)

	rec = get(t, h, "/links/unknown1")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = postForm(t, h, "/links", url.Values{"destination": {"javascript:alert(1)"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, errorEnvelope(t, rec).Details, "destination")
}

func TestLinks_NotMountedWithoutStore(t *testing.T) {
	t.Parallel()

	rec := get(t, newRouter(t, false), "/r/abc1234")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealth(t *testing.T) {
	t.Parallel()
	h := newRouter(t, false)

	assert.Equal(t, "ALIVE", get(t, h, "/healthz").Body.String())
	assert.Equal(t, "READY", get(t, h, "/readyz").Body.String())
}

func TestRateLimit(t *testing.T) {
	t.Parallel()

	bucket, err := ratelimiter.NewBucket(
		ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0)),
		ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Minute},
	)
	require.NoError(t, err)
	h := generator.Router(generator.RouterOptions{RateLimiter: bucket})

	form := url.Values{"kind": {"text"}, "text": {"hi"}}
	require.Equal(t, http.StatusOK, postForm(t, h, "/qrcode", form).Code)

	rec := postForm(t, h, "/qrcode", form)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "rate_limited", errorEnvelope(t, rec).Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
}
