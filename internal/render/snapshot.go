package render

import (
	"image"
	"image/color"
	"math"

	"github.com/cockroachdb/errors"
	ioutils "github.com/handiism/minoise/internal/io"
	"github.com/handiism/minoise/internal/scene"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// SnapshotOptions configures Snapshot.
type SnapshotOptions struct {
	Width  int
	Height int

	// Supersample renders at this multiple of the output size before
	// scaling down. Values below 1 mean 1.
	Supersample int

	// Caption is drawn in the top left corner when not empty.
	Caption string

	// LabelAll labels every sphere instead of only the hovered one.
	LabelAll bool

	// FontSize is the label size in output pixels.
	FontSize float64
}

// DefaultSnapshotOptions returns 1280x720 at 3x supersampling.
func DefaultSnapshotOptions() SnapshotOptions {
	return SnapshotOptions{
		Width:       1280,
		Height:      720,
		Supersample: 3,
		LabelAll:    true,
		FontSize:    14,
	}
}

// Snapshot renders sc into an image of opts.Width x opts.Height.
func Snapshot(sc *scene.Scene, opts SnapshotOptions) (*image.RGBA, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, errors.Newf("invalid snapshot size %dx%d", opts.Width, opts.Height)
	}
	ss := max(opts.Supersample, 1)
	if opts.FontSize <= 0 {
		opts.FontSize = 14
	}

	w, h := opts.Width*ss, opts.Height*ss
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	palette := sc.Layout.Palette

	fillBackground(img, palette.Background)

	face, err := newFace(opts.FontSize * float64(ss))
	if err != nil {
		return nil, errors.Wrap(err, "load label font")
	}
	defer face.Close()

	pr := scene.NewImageProjector(w, h)
	placed := sc.Place(pr)

	for i := range placed {
		p := &placed[i]
		fg := shade(palette, p, sc.Fade.Value())
		if !p.Floats() {
			fillCircle(img, p.Screen.X, p.Screen.Y, 2.5*float64(ss), 0, fg, palette.Background, false)
			continue
		}
		fillCircle(img, p.Screen.X, p.Screen.Y, p.Radius, p.Spin, fg, palette.Background, true)
	}

	for i := range placed {
		p := &placed[i]
		if !p.Floats() || !(opts.LabelAll || p.Hovered) {
			continue
		}
		y := p.Screen.Y - p.Radius - float64(ss)*6
		drawText(img, face, p.Screen.X, y, p.Label, palette.Highlight(p.Color), true)
	}

	if opts.Caption != "" {
		drawText(img, face, float64(12*ss), float64(12*ss)+opts.FontSize*float64(ss), opts.Caption,
			colorful.Color{R: 0.92, G: 0.92, B: 0.95}, false)
	}

	if ss == 1 {
		return img, nil
	}
	return ioutils.Downscale(img, opts.Width, opts.Height), nil
}

func newFace(size float64) (font.Face, error) {
	fnt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
}

// fillBackground paints a vertical gradient from bg at the top to a
// slightly lighter shade at the bottom.
func fillBackground(img *image.RGBA, bg colorful.Color) {
	bottom := bg.BlendLab(colorful.Color{R: 0.25, G: 0.22, B: 0.35}, 0.35)
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		t := float64(y-b.Min.Y) / float64(max(b.Dy()-1, 1))
		c := toRGBA(bg.BlendLab(bottom, t))
		for x := b.Min.X; x < b.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

// fillCircle draws a disc of radius r at (cx, cy). Glossy discs get a
// highlight toward the upper left, carried sideways by spin, and darken
// toward the rim.
func fillCircle(img *image.RGBA, cx, cy, r, spin float64, fg, bg colorful.Color, glossy bool) {
	if r < 0.5 {
		r = 0.5
	}
	b := img.Bounds()
	minX, maxX := max(int(cx-r)-1, b.Min.X), min(int(cx+r)+1, b.Max.X-1)
	minY, maxY := max(int(cy-r)-1, b.Min.Y), min(int(cy+r)+1, b.Max.Y-1)
	white := colorful.Color{R: 1, G: 1, B: 1}
	// Highlight point (-0.35, 0.87) on the front of the sphere, turned by spin.
	gx := (-0.35*math.Cos(spin) + 0.87*math.Sin(spin)) * r
	gy := -0.35 * r

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			dx, dy := float64(x)+0.5-cx, float64(y)+0.5-cy
			d := math.Hypot(dx, dy)
			if d > r {
				continue
			}
			c := fg
			if glossy {
				hx, hy := dx-gx, dy-gy
				gloss := 1 - math.Min(1, math.Hypot(hx, hy)/r)
				c = c.BlendLab(white, gloss*gloss*0.6)
				c = c.BlendLab(bg, math.Pow(d/r, 4)*0.5)
			}
			img.SetRGBA(x, y, toRGBA(c.Clamped()))
		}
	}
}

// drawText draws s with its baseline at y. Centered text is centered on x,
// otherwise x is the left edge.
func drawText(img *image.RGBA, face font.Face, x, y float64, s string, c colorful.Color, centered bool) {
	if centered {
		x -= float64(font.MeasureString(face, s).Ceil()) / 2
	}
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(toRGBA(c.Clamped())),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(int(x)), Y: fixed.I(int(y))},
	}
	d.DrawString(s)
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
