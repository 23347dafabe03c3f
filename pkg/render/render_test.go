package render_test

import (
	"bytes"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"

	"github.com/dmitrymomot/qrkit/pkg/render"
	"github.com/dmitrymomot/qrkit/pkg/symbol"
	"github.com/dmitrymomot/qrkit/pkg/validator"
)

func extract(err error) []string {
	return validator.ExtractValidationErrors(err).Fields()
}

func matrix(t *testing.T) *symbol.Matrix {
	t.Helper()
	m, err := symbol.Encode("https://example.com", symbol.LevelM)
	require.NoError(t, err)
	return m
}

func TestRender_Raster(t *testing.T) {
	t.Parallel()
	m := matrix(t)

	decoders := map[render.Format]func([]byte) (image.Image, error){
		render.FormatPNG:  func(b []byte) (image.Image, error) { return png.Decode(bytes.NewReader(b)) },
		render.FormatJPEG: func(b []byte) (image.Image, error) { return jpeg.Decode(bytes.NewReader(b)) },
		render.FormatGIF:  func(b []byte) (image.Image, error) { return gif.Decode(bytes.NewReader(b)) },
		render.FormatBMP:  func(b []byte) (image.Image, error) { return bmp.Decode(bytes.NewReader(b)) },
	}

	for format, decode := range decoders {
		t.Run(format.String(), func(t *testing.T) {
			t.Parallel()
			opts := render.DefaultOptions()
			opts.Format = format
			opts.Scale = 3
			opts.Border = 2

			data, err := render.Render(m, opts)
			require.NoError(t, err)

			img, err := decode(data)
			require.NoError(t, err)
			side := (m.Size() + 4) * 3
			assert.Equal(t, image.Rect(0, 0, side, side), img.Bounds())
		})
	}
}

func TestImage(t *testing.T) {
	t.Parallel()
	m := matrix(t)

	t.Run("modules and quiet zone", func(t *testing.T) {
		t.Parallel()
		opts := render.DefaultOptions()
		opts.Scale = 2
		opts.Border = 1
		opts.Foreground = render.Color{R: 0x11, G: 0x22, B: 0x33}
		opts.Background = render.SolidBackground(render.Color{R: 0xee, G: 0xee, B: 0xee})
		img := render.Image(m, opts)

		// quiet zone
		r, g, b, a := img.At(0, 0).RGBA()
		assert.Equal(t, []uint32{0xeeee, 0xeeee, 0xeeee, 0xffff}, []uint32{r, g, b, a})
		// top-left finder module
		r, g, b, _ = img.At(2, 2).RGBA()
		assert.Equal(t, []uint32{0x1111, 0x2222, 0x3333}, []uint32{r, g, b})
		r, _, _, _ = img.At(3, 3).RGBA()
		assert.Equal(t, uint32(0x1111), r)
	})

	t.Run("transparent background is alpha zero", func(t *testing.T) {
		t.Parallel()
		opts := render.DefaultOptions()
		opts.Background = render.TransparentBackground()

		data, err := render.Render(m, opts)
		require.NoError(t, err)
		img, err := png.Decode(bytes.NewReader(data))
		require.NoError(t, err)

		_, _, _, a := img.At(0, 0).RGBA()
		assert.Zero(t, a)
		_, _, _, a = img.At(opts.Border*opts.Scale, opts.Border*opts.Scale).RGBA()
		assert.Equal(t, uint32(0xffff), a)
	})
}

func TestRender_SVG(t *testing.T) {
	t.Parallel()
	m := matrix(t)

	t.Run("solid background", func(t *testing.T) {
		t.Parallel()
		opts := render.DefaultOptions()
		opts.Format = render.FormatSVG
		opts.Foreground = render.Color{B: 0xff}

		data, err := render.Render(m, opts)
		require.NoError(t, err)
		svg := string(data)

		modules := m.Size() + 2*render.DefaultBorder
		px := modules * render.DefaultScale
		assert.True(t, strings.HasPrefix(svg, `<?xml version="1.0" encoding="UTF-8"?>`))
		assert.Contains(t, svg, `width="`+strconv.Itoa(px)+`" height="`+strconv.Itoa(px)+`"`)
		assert.Contains(t, svg, `viewBox="0 0 `+strconv.Itoa(modules)+" "+strconv.Itoa(modules)+`"`)
		assert.Contains(t, svg, `<rect width="`+strconv.Itoa(modules)+`" height="`+strconv.Itoa(modules)+`" fill="#ffffff"/>`)
		assert.Contains(t, svg, `<path fill="#0000ff" d="M4 4h7v1h-7z`)
		assert.True(t, strings.HasSuffix(svg, "</svg>\n"))
	})

	t.Run("transparent background has no rect", func(t *testing.T) {
		t.Parallel()
		opts := render.DefaultOptions()
		opts.Format = render.FormatSVG
		opts.Background = render.TransparentBackground()

		data, err := render.Render(m, opts)
		require.NoError(t, err)
		assert.NotContains(t, string(data), "<rect")
		assert.Contains(t, string(data), "<path")
	})
}

func TestRender_Text(t *testing.T) {
	t.Parallel()
	m := matrix(t)

	opts := render.DefaultOptions()
	opts.Format = render.FormatTXT
	opts.Border = 1

	data, err := render.Render(m, opts)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	require.Len(t, lines, m.Size()+2)
	assert.Equal(t, strings.Repeat("  ", m.Size()+2), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "  "+strings.Repeat("██", 7)+"  "))
}

func TestRender_Errors(t *testing.T) {
	t.Parallel()
	m := matrix(t)

	t.Run("not supported", func(t *testing.T) {
		t.Parallel()
		for _, f := range []render.Format{render.FormatPDF, render.FormatHTML, render.FormatEPS} {
			opts := render.DefaultOptions()
			opts.Format = f
			data, err := render.Render(m, opts)
			require.ErrorIs(t, err, render.ErrNotSupported)
			assert.Nil(t, data)
		}
	})

	t.Run("invalid options", func(t *testing.T) {
		t.Parallel()
		opts := render.DefaultOptions()
		opts.Scale = -1
		_, err := render.Render(m, opts)
		require.ErrorIs(t, err, validator.ErrValidationFailed)
	})

	t.Run("raster larger than the pixel limit", func(t *testing.T) {
		t.Parallel()
		big, err := symbol.Encode("hi", symbol.LevelL, symbol.WithMinVersion(40))
		require.NoError(t, err)

		opts := render.DefaultOptions()
		opts.Scale = render.MaxScale
		opts.Border = render.MaxBorder
		data, err := render.Render(big, opts)
		require.ErrorIs(t, err, validator.ErrValidationFailed)
		assert.Equal(t, []string{"scale"}, extract(err))
		assert.Nil(t, data)

		opts.Format = render.FormatSVG
		_, err = render.Render(big, opts)
		require.NoError(t, err, "vector output has no pixel limit")
	})

	t.Run("nil matrix", func(t *testing.T) {
		t.Parallel()
		_, err := render.Render(nil, render.DefaultOptions())
		require.ErrorIs(t, err, render.ErrEmptyMatrix)
	})
}

func TestRender_Deterministic(t *testing.T) {
	t.Parallel()
	m := matrix(t)

	for _, f := range render.Formats() {
		opts := render.DefaultOptions()
		opts.Format = f
		a, err := render.Render(m, opts)
		require.NoError(t, err)
		b, err := render.Render(m, opts)
		require.NoError(t, err)
		assert.Equal(t, a, b, f.String())
	}
}
