package symbol

import (
	"fmt"
	"strings"

	skipqrcode "github.com/skip2/go-qrcode"
)

// Level is the error-correction strength of a symbol.
type Level int

const (
	LevelL Level = iota // ~7% recovery
	LevelM              // ~15% recovery
	LevelQ              // ~25% recovery
	LevelH              // ~30% recovery
)

// DefaultLevel is used when no level is requested.
const DefaultLevel = LevelM

// ParseLevel accepts L, M, Q or H in any case. An empty string yields DefaultLevel.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "":
		return DefaultLevel, nil
	case "L":
		return LevelL, nil
	case "M":
		return LevelM, nil
	case "Q":
		return LevelQ, nil
	case "H":
		return LevelH, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
}

func (l Level) String() string {
	switch l {
	case LevelL:
		return "L"
	case LevelM:
		return "M"
	case LevelQ:
		return "Q"
	case LevelH:
		return "H"
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// Valid reports whether l is one of the four defined levels.
func (l Level) Valid() bool {
	return l >= LevelL && l <= LevelH
}

func (l Level) recovery() skipqrcode.RecoveryLevel {
	switch l {
	case LevelL:
		return skipqrcode.Low
	case LevelQ:
		return skipqrcode.High
	case LevelH:
		return skipqrcode.Highest
	}
	return skipqrcode.Medium
}
