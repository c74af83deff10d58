package render

import "github.com/lucasb-eyer/go-colorful"

// brailleBuf is a grid of braille cells addressed by micro pixel, two
// columns by four rows per cell.
type brailleBuf struct {
	w, h   int
	masks  [][]uint8
	colors [][]colorful.Color
}

func newBrailleBuf(w, h int) *brailleBuf {
	masks := make([][]uint8, h)
	colors := make([][]colorful.Color, h)
	for i := range masks {
		masks[i] = make([]uint8, w)
		colors[i] = make([]colorful.Color, w)
	}
	return &brailleBuf{w: w, h: h, masks: masks, colors: colors}
}

// brailleBits maps a micro pixel (column, row) inside a cell to its dot.
var brailleBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// set turns on the micro pixel at (mx, my). The cell takes the colour of
// the last dot set in it.
func (b *brailleBuf) set(mx, my int, c colorful.Color) {
	if mx < 0 || my < 0 {
		return
	}
	cx, cy := mx/2, my/4
	if cx >= b.w || cy >= b.h {
		return
	}
	b.masks[cy][cx] |= brailleBits[mx%2][my%4]
	b.colors[cy][cx] = c
}

// at returns the braille rune of a cell, or false if no dot is set.
func (b *brailleBuf) at(x, y int) (rune, colorful.Color, bool) {
	mask := b.masks[y][x]
	if mask == 0 {
		return 0, colorful.Color{}, false
	}
	return rune(0x2800 + int(mask)), b.colors[y][x], true
}
