package render

import (
	"bytes"

	"github.com/dmitrymomot/qrkit/pkg/symbol"
)

const (
	darkCell  = "██"
	lightCell = "  "
)

// renderText prints one line per module row; colours and scale are ignored.
func renderText(m *symbol.Matrix, opts Options) []byte {
	var b bytes.Buffer
	for y := -opts.Border; y < m.Size()+opts.Border; y++ {
		for x := -opts.Border; x < m.Size()+opts.Border; x++ {
			if m.Dark(x, y) {
				b.WriteString(darkCell)
			} else {
				b.WriteString(lightCell)
			}
		}
		b.WriteByte('\n')
	}
	return b.Bytes()
}
