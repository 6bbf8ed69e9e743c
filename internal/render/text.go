// Package render turns sim state into pixels or text.
package render

import (
	"fmt"
	"io"
	"strings"
)

// WriteSymbols writes a row-major grid of per-site symbols as text, one row per
// line, framed so empty edges stay visible.
func WriteSymbols(w io.Writer, symbols []string, width int) error {
	if width <= 0 || len(symbols)%width != 0 {
		return fmt.Errorf("render: %d symbols do not fill rows of %d", len(symbols), width)
	}
	cell := 1
	for _, s := range symbols {
		cell = max(cell, len(s))
	}
	border := "+" + strings.Repeat("-", width*cell) + "+\n"

	var b strings.Builder
	b.WriteString(border)
	for row := 0; row < len(symbols)/width; row++ {
		b.WriteByte('|')
		for _, s := range symbols[row*width : (row+1)*width] {
			b.WriteString(s)
			b.WriteString(strings.Repeat(" ", cell-len(s)))
		}
		b.WriteString("|\n")
	}
	b.WriteString(border)
	_, err := io.WriteString(w, b.String())
	return err
}
