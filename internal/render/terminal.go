package render

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/minoise/internal/scene"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	glyphFull = '█'
	glyphRim  = '▓'
	glyphDot  = '●'
	glyphTiny = '•'
)

type cell struct {
	r    rune
	fg   colorful.Color
	bold bool
	set  bool
}

// Canvas is a grid of terminal cells.
type Canvas struct {
	Width  int
	Height int

	cells   [][]cell
	braille *brailleBuf
}

// NewCanvas creates an empty canvas. Unset cells render as spaces so the
// terminal background shows through.
func NewCanvas(width, height int) *Canvas {
	width = max(width, 1)
	height = max(height, 1)
	cells := make([][]cell, height)
	for i := range cells {
		cells[i] = make([]cell, width)
	}
	return &Canvas{
		Width:   width,
		Height:  height,
		cells:   cells,
		braille: newBrailleBuf(width, height),
	}
}

// Set puts a glyph at (x, y). Out of range positions are ignored.
func (c *Canvas) Set(x, y int, r rune, fg colorful.Color, bold bool) {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height {
		return
	}
	c.cells[y][x] = cell{r: r, fg: fg, bold: bold, set: true}
}

// Text writes s starting at (x, y), clipped to the canvas.
func (c *Canvas) Text(x, y int, s string, fg colorful.Color, bold bool) {
	for i, r := range []rune(s) {
		c.Set(x+i, y, r, fg, bold)
	}
}

// Dot sets a braille micro pixel at cell coordinates (x, y), which may be
// fractional.
func (c *Canvas) Dot(x, y float64, fg colorful.Color) {
	c.braille.set(int(math.Floor(x*2)), int(math.Floor(y*4)), fg)
}

// Disc fills a circle of radius rows centered at (x, y). Horizontal extent
// is doubled to stay round on terminal cells.
func (c *Canvas) Disc(x, y, radius float64, fg, rim colorful.Color, bold bool) {
	px, py := int(math.Floor(x)), int(math.Floor(y))
	if radius < 0.45 {
		c.Set(px, py, glyphTiny, fg, bold)
		return
	}
	if radius < 0.9 {
		c.Set(px, py, glyphDot, fg, bold)
		return
	}

	aspect := float64(scene.TerminalCellAspect)
	minY, maxY := int(math.Floor(y-radius)), int(math.Ceil(y+radius))
	minX, maxX := int(math.Floor(x-radius*aspect)), int(math.Ceil(x+radius*aspect))
	for cy := minY; cy <= maxY; cy++ {
		for cx := minX; cx <= maxX; cx++ {
			dx := (float64(cx) + 0.5 - x) / aspect
			dy := float64(cy) + 0.5 - y
			d := math.Hypot(dx, dy)
			switch {
			case d <= radius-0.6:
				c.Set(cx, cy, glyphFull, fg, bold)
			case d <= radius:
				c.Set(cx, cy, glyphRim, rim, bold)
			}
		}
	}
}

// String renders the canvas with ANSI styling. Runs of cells with the
// same style share one escape sequence.
func (c *Canvas) String() string {
	var b strings.Builder
	for y := 0; y < c.Height; y++ {
		var (
			run      strings.Builder
			runStyle lipgloss.Style
			runKey   string
		)
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runKey == "" {
				b.WriteString(run.String())
			} else {
				b.WriteString(runStyle.Render(run.String()))
			}
			run.Reset()
		}

		for x := 0; x < c.Width; x++ {
			r, style, key := c.resolve(x, y)
			if key != runKey {
				flush()
				runStyle, runKey = style, key
			}
			run.WriteRune(r)
		}
		flush()
		if y < c.Height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Plain renders the canvas without styling.
func (c *Canvas) Plain() string {
	lines := make([]string, c.Height)
	for y := range lines {
		row := make([]rune, c.Width)
		for x := range row {
			row[x], _, _ = c.resolve(x, y)
		}
		lines[y] = string(row)
	}
	return strings.Join(lines, "\n")
}

func (c *Canvas) resolve(x, y int) (rune, lipgloss.Style, string) {
	if cl := c.cells[y][x]; cl.set {
		key := cl.fg.Hex()
		if cl.bold {
			key += "b"
		}
		return cl.r, lipgloss.NewStyle().Foreground(lipgloss.Color(cl.fg.Hex())).Bold(cl.bold), key
	}
	if r, fg, ok := c.braille.at(x, y); ok {
		return r, lipgloss.NewStyle().Foreground(lipgloss.Color(fg.Hex())), fg.Hex()
	}
	return ' ', lipgloss.Style{}, ""
}

// Terminal draws sc onto a width x height canvas.
//
// Entities are drawn far to near. Artists and tracks fade in with the
// scene fade; genres are always opaque. The hovered entity is highlighted
// and labelled above its sphere.
func Terminal(sc *scene.Scene, width, height int) *Canvas {
	palette := sc.Layout.Palette
	canvas := NewCanvas(width, height)
	pr := scene.NewTerminalProjector(canvas.Width, canvas.Height)
	placed := sc.Place(pr)

	var label *scene.Placed
	for i := range placed {
		p := &placed[i]
		fg := shade(palette, p, sc.Fade.Value())

		if !p.Floats() {
			canvas.Dot(p.Screen.X, p.Screen.Y, fg)
			continue
		}

		rim := palette.Shade(fg, 0.4, 1)
		canvas.Disc(p.Screen.X, p.Screen.Y, p.Radius, fg, rim, p.Hovered || p.Selected)
		if p.Hovered {
			label = p
		}
	}

	if label != nil {
		drawLabel(canvas, label, palette)
	}
	return canvas
}

func drawLabel(canvas *Canvas, p *scene.Placed, palette scene.Palette) {
	text := " " + p.Label + " "
	y := int(math.Floor(p.Screen.Y - max(p.Radius, 0.5) - 1))
	if y < 0 {
		y = int(p.Screen.Y) + int(math.Ceil(p.Radius)) + 1
	}
	x := int(p.Screen.X) - len([]rune(text))/2
	x = max(0, min(x, canvas.Width-len([]rune(text))))
	canvas.Text(x, y, text, palette.Highlight(p.Color), true)
}

func shade(palette scene.Palette, p *scene.Placed, fade float64) colorful.Color {
	opacity := 1.0
	if p.Kind != scene.KindGenre {
		opacity = fade
	}
	c := p.Color
	if p.Hovered || p.Selected {
		c = palette.Highlight(c)
	}
	return palette.Shade(c, p.Nearness, opacity)
}
