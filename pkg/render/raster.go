package render

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"

	"golang.org/x/image/bmp"

	"github.com/dmitrymomot/qrkit/pkg/symbol"
)

const jpegQuality = 95

const (
	lightIndex = 0
	darkIndex  = 1
)

// Image draws m as a two-entry paletted image. Index 0 is the background.
// opts are not validated; Render checks them and the size limit first.
func Image(m *symbol.Matrix, opts Options) *image.Paletted {
	opts = opts.normalize()
	side := (m.Size() + 2*opts.Border) * opts.Scale
	palette := color.Palette{opts.Background.paint(), opts.Foreground.rgba()}
	img := image.NewPaletted(image.Rect(0, 0, side, side), palette)

	offset := opts.Border * opts.Scale
	for y := range m.Size() {
		for x := range m.Size() {
			if !m.Dark(x, y) {
				continue
			}
			x0, y0 := offset+x*opts.Scale, offset+y*opts.Scale
			for py := y0; py < y0+opts.Scale; py++ {
				row := img.Pix[py*img.Stride:]
				for px := x0; px < x0+opts.Scale; px++ {
					row[px] = darkIndex
				}
			}
		}
	}
	return img
}

func renderRaster(m *symbol.Matrix, opts Options) ([]byte, error) {
	img := Image(m, opts)

	var buf bytes.Buffer
	var err error
	switch opts.Format {
	case FormatPNG:
		enc := png.Encoder{CompressionLevel: png.BestCompression}
		err = enc.Encode(&buf, img)
	case FormatJPEG:
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality})
	case FormatGIF:
		err = gif.Encode(&buf, img, &gif.Options{NumColors: len(img.Palette)})
	case FormatBMP:
		err = bmp.Encode(&buf, img)
	}
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
