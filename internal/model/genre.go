package model

// Genre is the top tier of the hierarchy.
type Genre struct {
	// Name is the genre label, e.g. "jazz".
	Name string

	// Centroid is the precomputed representative point of the genre cluster.
	Centroid Point

	// Artists contains every artist of the genre in asset order.
	Artists []*Artist
}

// NewGenre creates a Genre and links the given artists back to it.
func NewGenre(name string, centroid Point, artists ...*Artist) *Genre {
	g := &Genre{Name: name, Centroid: centroid}
	for _, a := range artists {
		g.AddArtist(a)
	}
	return g
}

// AddArtist appends an artist and sets its Genre reference.
func (g *Genre) AddArtist(a *Artist) {
	a.Genre = g
	g.Artists = append(g.Artists, a)
}

// HasArtist reports whether a is one of this genre's artists.
// Membership is by identity, not by name: two genres may list
// artists with the same name.
func (g *Genre) HasArtist(a *Artist) bool {
	if a == nil {
		return false
	}
	for _, candidate := range g.Artists {
		if candidate == a {
			return true
		}
	}
	return false
}

// Artist returns the first artist with the given name.
func (g *Genre) Artist(name string) (*Artist, bool) {
	for _, a := range g.Artists {
		if a.Name == name {
			return a, true
		}
	}
	return nil, false
}

// TrackCount returns the number of tracks across all artists of the genre.
func (g *Genre) TrackCount() int {
	n := 0
	for _, a := range g.Artists {
		n += len(a.Tracks)
	}
	return n
}

// Artist is the middle tier of the hierarchy.
type Artist struct {
	// Genre is a reference to the parent genre.
	Genre *Genre

	// Name is the artist name.
	Name string

	// Centroid is the precomputed representative point of the artist's tracks.
	Centroid Point

	// Tracks contains all tracks of the artist in asset order.
	Tracks []*Track
}

// NewArtist creates an Artist and links the given tracks back to it.
func NewArtist(name string, centroid Point, tracks ...*Track) *Artist {
	a := &Artist{Name: name, Centroid: centroid}
	for _, t := range tracks {
		a.AddTrack(t)
	}
	return a
}

// AddTrack appends a track and sets its Artist reference.
func (a *Artist) AddTrack(t *Track) {
	t.Artist = a
	a.Tracks = append(a.Tracks, t)
}

// PositionedTracks returns the tracks that have coordinates.
func (a *Artist) PositionedTracks() []*Track {
	out := make([]*Track, 0, len(a.Tracks))
	for _, t := range a.Tracks {
		if t.HasCoords {
			out = append(out, t)
		}
	}
	return out
}
