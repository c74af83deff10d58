package model

import "iter"

// Dataset is the full hierarchy loaded for one projection.
//
// A Dataset is treated as immutable once returned by a loader. Switching
// projection replaces the whole value; nothing edits it in place.
type Dataset struct {
	// Projection is the method whose coordinates this dataset holds.
	Projection Projection

	// Genres contains every genre in asset order.
	Genres []*Genre
}

// NewDataset creates a Dataset for the given projection.
func NewDataset(p Projection, genres []*Genre) *Dataset {
	return &Dataset{Projection: p, Genres: genres}
}

// IsEmpty reports whether the dataset has no genres. A nil dataset is empty.
func (d *Dataset) IsEmpty() bool {
	return d == nil || len(d.Genres) == 0
}

// Genre returns the first genre with the given name.
func (d *Dataset) Genre(name string) (*Genre, bool) {
	if d == nil {
		return nil, false
	}
	for _, g := range d.Genres {
		if g.Name == name {
			return g, true
		}
	}
	return nil, false
}

// HasGenre reports whether g is one of this dataset's genres, by identity.
func (d *Dataset) HasGenre(g *Genre) bool {
	if d == nil || g == nil {
		return false
	}
	for _, candidate := range d.Genres {
		if candidate == g {
			return true
		}
	}
	return false
}

// Stats summarizes the size of a dataset.
type Stats struct {
	Genres           int
	Artists          int
	Tracks           int
	PositionedTracks int
}

// Stats counts the entities of every tier.
func (d *Dataset) Stats() Stats {
	var s Stats
	if d == nil {
		return s
	}
	s.Genres = len(d.Genres)
	for _, g := range d.Genres {
		s.Artists += len(g.Artists)
		for _, a := range g.Artists {
			s.Tracks += len(a.Tracks)
			for _, t := range a.Tracks {
				if t.HasCoords {
					s.PositionedTracks++
				}
			}
		}
	}
	return s
}

// Points yields every point of the dataset exactly once: each genre
// centroid, each artist centroid and each track coordinate. Tracks without
// coordinates are skipped.
func (d *Dataset) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		if d == nil {
			return
		}
		for _, g := range d.Genres {
			if !yield(g.Centroid) {
				return
			}
			for _, a := range g.Artists {
				if !yield(a.Centroid) {
					return
				}
				for _, t := range a.Tracks {
					if !t.HasCoords {
						continue
					}
					if !yield(t.Coords) {
						return
					}
				}
			}
		}
	}
}
