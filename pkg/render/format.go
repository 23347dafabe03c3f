package render

import (
	"fmt"
	"slices"
	"strings"
)

// Format names an output serialization.
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
	FormatGIF  Format = "gif"
	FormatBMP  Format = "bmp"
	FormatSVG  Format = "svg"
	FormatTXT  Format = "txt"

	// Recognized but not implemented.
	FormatHTML Format = "html"
	FormatPDF  Format = "pdf"
	FormatEPS  Format = "eps"
)

// DefaultFormat is used when no format is requested.
const DefaultFormat = FormatPNG

// Formats lists the implemented formats.
func Formats() []Format {
	return []Format{FormatPNG, FormatJPEG, FormatGIF, FormatBMP, FormatSVG, FormatTXT}
}

// ParseFormat accepts a format name in any case; "jpg" is an alias of jpeg
// and an empty string yields DefaultFormat.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case "":
		return DefaultFormat, nil
	case "jpg":
		return FormatJPEG, nil
	case FormatPNG, FormatJPEG, FormatGIF, FormatBMP, FormatSVG, FormatTXT,
		FormatHTML, FormatPDF, FormatEPS:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Implemented reports whether Render can produce f.
func (f Format) Implemented() bool {
	return slices.Contains(Formats(), f)
}

func (f Format) raster() bool {
	switch f {
	case FormatPNG, FormatJPEG, FormatGIF, FormatBMP:
		return true
	}
	return false
}

// SupportsTransparency reports whether f can carry an alpha-zero background.
// TXT ignores colours and accepts it.
func (f Format) SupportsTransparency() bool {
	return f != FormatJPEG && f != FormatBMP
}

// MIMEType returns the content type of f.
func (f Format) MIMEType() string {
	switch f {
	case FormatPNG:
		return "image/png"
	case FormatJPEG:
		return "image/jpeg"
	case FormatGIF:
		return "image/gif"
	case FormatBMP:
		return "image/bmp"
	case FormatSVG:
		return "image/svg+xml"
	case FormatTXT:
		return "text/plain"
	case FormatHTML:
		return "text/html"
	case FormatPDF:
		return "application/pdf"
	case FormatEPS:
		return "application/postscript"
	}
	return "application/octet-stream"
}

// Extension returns the file extension of f without the dot.
func (f Format) Extension() string {
	if f == FormatJPEG {
		return "jpg"
	}
	return string(f)
}

func (f Format) String() string {
	return string(f)
}
