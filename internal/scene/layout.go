package scene

import (
	"strconv"

	"github.com/handiism/minoise/internal/model"
	"github.com/lucasb-eyer/go-colorful"
)

// DefaultGenreScale spreads genre spheres out at the top tier.
const DefaultGenreScale = 3

// SphereRadius is the world radius of an unscaled entity sphere.
const SphereRadius = 0.25

// LabelOffset lifts an entity label above its sphere, in world units.
const LabelOffset = 0.4

// Kind is the hierarchy tier an entity belongs to.
type Kind int

const (
	KindGenre Kind = iota
	KindArtist
	KindTrack
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindGenre:
		return "genre"
	case KindArtist:
		return "artist"
	case KindTrack:
		return "track"
	default:
		return "unknown"
	}
}

// Entity is one drawable item of the scene.
type Entity struct {
	Kind Kind

	// Key identifies the entity across frames.
	Key string

	// Label is the text shown on hover.
	Label string

	// Base is the resting world position.
	Base model.Point

	Color colorful.Color

	// Selected entities are drawn enlarged like hovered ones.
	Selected bool

	// Exactly one of these is set, matching Kind.
	Genre  *model.Genre
	Artist *model.Artist
	Track  *model.Track
}

// Floats reports whether the entity bobs and scales like a floating sphere.
// Track dots stay still.
func (e Entity) Floats() bool {
	return e.Kind != KindTrack
}

// Layout positions the entities of each tier.
type Layout struct {
	// GenreScale multiplies genre centroids.
	GenreScale float64

	Palette Palette
}

// NewLayout creates a layout with the default scale and palette.
func NewLayout() Layout {
	return Layout{GenreScale: DefaultGenreScale, Palette: DefaultPalette()}
}

// Genres places one entity per genre of ds at its scaled centroid.
func (l Layout) Genres(ds *model.Dataset) []Entity {
	if ds == nil {
		return nil
	}
	scale := l.GenreScale
	if scale == 0 {
		scale = DefaultGenreScale
	}
	out := make([]Entity, 0, len(ds.Genres))
	for i, g := range ds.Genres {
		out = append(out, Entity{
			Kind:  KindGenre,
			Key:   "genre:" + strconv.Itoa(i),
			Label: g.Name,
			Base:  g.Centroid.Scale(scale),
			Color: l.Palette.Genre(g.Name),
			Genre: g,
		})
	}
	return out
}

// Artists places one entity per artist of g at its centroid. The artist
// equal to selected is marked Selected.
func (l Layout) Artists(g *model.Genre, selected *model.Artist) []Entity {
	if g == nil {
		return nil
	}
	out := make([]Entity, 0, len(g.Artists))
	for i, a := range g.Artists {
		out = append(out, Entity{
			Kind:     KindArtist,
			Key:      "artist:" + g.Name + "/" + strconv.Itoa(i),
			Label:    a.Name,
			Base:     a.Centroid,
			Color:    l.Palette.Artist,
			Selected: a == selected,
			Genre:    g,
			Artist:   a,
		})
	}
	return out
}

// Tracks places one entity per positioned track of a.
func (l Layout) Tracks(a *model.Artist) []Entity {
	if a == nil {
		return nil
	}
	tracks := a.PositionedTracks()
	out := make([]Entity, 0, len(tracks))
	for i, t := range tracks {
		label := t.Name
		if label == "" {
			label = a.Name
		}
		out = append(out, Entity{
			Kind:   KindTrack,
			Key:    trackKey(a, i),
			Label:  label,
			Base:   t.Coords,
			Color:  l.Palette.Track,
			Genre:  a.Genre,
			Artist: a,
			Track:  t,
		})
	}
	return out
}

func trackKey(a *model.Artist, i int) string {
	genre := ""
	if a.Genre != nil {
		genre = a.Genre.Name
	}
	return "track:" + genre + "/" + a.Name + "/" + strconv.Itoa(i)
}
