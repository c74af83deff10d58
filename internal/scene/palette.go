package scene

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette holds the colours of the scene.
type Palette struct {
	// Genres maps lowercase genre names to their colour.
	Genres map[string]colorful.Color

	// DefaultGenre colours genres missing from Genres.
	DefaultGenre colorful.Color

	Artist     colorful.Color
	Track      colorful.Color
	Background colorful.Color
}

// DefaultPalette returns the built-in colours.
func DefaultPalette() Palette {
	return Palette{
		Genres: map[string]colorful.Color{
			"jazz":       mustHex("#8ac7db"),
			"rock":       mustHex("#f27272"),
			"pop":        mustHex("#f3b562"),
			"electronic": mustHex("#b086f9"),
			"classical":  mustHex("#9ecf8b"),
		},
		DefaultGenre: mustHex("#b28bff"),
		Artist:       mustHex("#f39c12"),
		Track:        mustHex("#ffe0a3"),
		Background:   mustHex("#12121c"),
	}
}

// Genre returns the colour for a genre name. Matching ignores case.
func (p Palette) Genre(name string) colorful.Color {
	if c, ok := p.Genres[strings.ToLower(name)]; ok {
		return c
	}
	return p.DefaultGenre
}

// Shade blends c toward the background. nearness is 1 for the nearest
// entity and 0 for the farthest; opacity is the fade value. Both are
// clamped to [0, 1].
func (p Palette) Shade(c colorful.Color, nearness, opacity float64) colorful.Color {
	nearness = clamp01(nearness)
	opacity = clamp01(opacity)

	// Far entities keep 55% of their colour.
	shaded := c.BlendLab(p.Background, (1-nearness)*0.45)
	return p.Background.BlendLab(shaded, opacity).Clamped()
}

// Highlight brightens c toward white for hovered and selected entities.
func (p Palette) Highlight(c colorful.Color) colorful.Color {
	return c.BlendLab(colorful.Color{R: 1, G: 1, B: 1}, 0.25).Clamped()
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
