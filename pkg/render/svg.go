package render

import (
	"bytes"
	"fmt"

	"github.com/dmitrymomot/qrkit/pkg/symbol"
)

// renderSVG sizes the document in pixels and draws in module units.
func renderSVG(m *symbol.Matrix, opts Options) []byte {
	modules := m.Size() + 2*opts.Border
	px := modules * opts.Scale

	var b bytes.Buffer
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	fmt.Fprintf(&b,
		`<svg xmlns="http://www.w3.org/2000/svg" version="1.1" width="%d" height="%d" viewBox="0 0 %d %d" shape-rendering="crispEdges">`+"\n",
		px, px, modules, modules)
	if !opts.Background.Transparent() {
		fmt.Fprintf(&b, `<rect width="%d" height="%d" fill="%s"/>`+"\n",
			modules, modules, opts.Background.Color().Hex())
	}

	fmt.Fprintf(&b, `<path fill="%s" d="`, opts.Foreground.Hex())
	first := true
	for y := range m.Size() {
		for x := 0; x < m.Size(); {
			if !m.Dark(x, y) {
				x++
				continue
			}
			run := 1
			for m.Dark(x+run, y) {
				run++
			}
			if !first {
				b.WriteByte(' ')
			}
			first = false
			fmt.Fprintf(&b, "M%d %dh%dv1h-%dz", x+opts.Border, y+opts.Border, run, run)
			x += run
		}
	}
	b.WriteString(`"/>` + "\n</svg>\n")

	return b.Bytes()
}
