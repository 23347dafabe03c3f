// Package render serializes a symbol.Matrix into an image or text document.
//
// Raster formats (PNG, JPEG, GIF, BMP) are drawn as a two-colour paletted
// image where every module is Scale pixels wide and the quiet zone is Border
// modules wide. SVG output draws all dark modules as one path on top of an
// optional background rectangle. TXT output uses block characters and is
// meant for terminals.
//
//	m, _ := symbol.Encode("https://example.com", symbol.LevelM)
//	opts := render.DefaultOptions()
//	opts.Format = render.FormatSVG
//	opts.Background = render.TransparentBackground()
//	data, err := render.Render(m, opts)
//
// HTML, PDF and EPS are recognized names that fail with ErrNotSupported.
package render
