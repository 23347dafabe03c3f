package symbol

// Matrix is an immutable square grid of modules without quiet zone.
type Matrix struct {
	modules [][]bool
	version int
	level   Level
}

// Size returns the number of modules per side.
func (m *Matrix) Size() int {
	return len(m.modules)
}

// Dark reports whether the module at column x, row y is dark.
// Coordinates outside the grid are light.
func (m *Matrix) Dark(x, y int) bool {
	if y < 0 || y >= len(m.modules) || x < 0 || x >= len(m.modules[y]) {
		return false
	}
	return m.modules[y][x]
}

// Version returns the symbol version, 1 to 40.
func (m *Matrix) Version() int {
	return m.version
}

// Level returns the error-correction level the symbol was encoded with.
// It may be weaker than the requested one.
func (m *Matrix) Level() Level {
	return m.level
}
