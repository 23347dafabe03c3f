package payload

import (
	"math"
	"strconv"
	"strings"

	"github.com/dmitrymomot/qrkit/pkg/validator"
)

// Geo encodes a geo: URI with an optional search query.
// Coordinates are kept as text so malformed input is reported by Validate.
type Geo struct {
	Latitude  string `field:"latitude"`
	Longitude string `field:"longitude"`
	Query     string `field:"query"`
}

func (Geo) Kind() Kind { return KindGeo }
func (Geo) isPayload() {}

func (p Geo) Validate() error {
	return validator.Apply(
		validator.Required("latitude", p.Latitude),
		validator.When(present(p.Latitude), validator.Number("latitude", p.Latitude)),
		validator.Required("longitude", p.Longitude),
		validator.When(present(p.Longitude), validator.Number("longitude", p.Longitude)),
	)
}

func (p Geo) Build() (string, error) {
	lat, ok := validator.ParseNumber(p.Latitude)
	if !ok {
		return "", buildError(ErrInvalidCoordinates)
	}
	lon, ok := validator.ParseNumber(p.Longitude)
	if !ok {
		return "", buildError(ErrInvalidCoordinates)
	}

	out := "geo:" + formatCoordinate(lat) + "," + formatCoordinate(lon)
	if p.Query != "" {
		out += "?q=" + pathEscape(p.Query)
	}
	return out, nil
}

// formatCoordinate prints the shortest round-tripping decimal, always with a
// fractional part ("40.0"), switching to exponent form for very small or
// very large magnitudes.
func formatCoordinate(f float64) string {
	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
