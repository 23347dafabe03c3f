// Package symbol builds QR Code module matrices.
//
// Encode picks the smallest symbol version able to hold the content at the
// requested error-correction level. When the content does not fit, weaker
// levels are tried in turn and the level actually used is reported by the
// returned Matrix. Capacity tables, mode selection, Reed-Solomon coding and
// mask evaluation are delegated to github.com/skip2/go-qrcode.
//
//	m, err := symbol.Encode("https://example.com", symbol.LevelM)
//	if errors.Is(err, symbol.ErrCapacityExceeded) {
//		// content is too long for a version 40 symbol
//	}
//	for y := range m.Size() {
//		for x := range m.Size() {
//			_ = m.Dark(x, y)
//		}
//	}
//
// A Matrix never includes the quiet zone; renderers add it.
package symbol
