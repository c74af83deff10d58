package model

// Track represents a single track positioned in the projection space.
//
// The source assets name track coordinates differently per projection
// (PC1..PC3 for PCA, U1..U3 for UMAP). By the time a Track exists those
// names have been normalized into Coords. When the asset did not provide all
// three axes HasCoords is false and Coords is the zero point; such tracks
// still count toward their artist's track total but have no position.
type Track struct {
	// Artist is a reference to the parent artist.
	Artist *Artist

	// Name is the track title. Empty when the asset does not provide one.
	Name string

	// Coords is the normalized position. Only meaningful when HasCoords is true.
	Coords Point

	// HasCoords reports whether all three axes were present.
	HasCoords bool
}

// NewTrack creates a Track. A nil coords pointer marks the track as having
// no position.
func NewTrack(name string, coords *Point) *Track {
	t := &Track{Name: name}
	if coords != nil {
		t.Coords = *coords
		t.HasCoords = true
	}
	return t
}
