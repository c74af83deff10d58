package dto

import (
	"github.com/handiism/minoise/internal/model"
)

// JSONTrack represents a track from a hierarchy asset.
//
// PCA assets name the axes PC1..PC3 and UMAP assets name them U1..U3.
// Both sets are decoded so either asset can be read with the same type.
type JSONTrack struct {
	Name string `json:"track_name"`

	PC1 *float64 `json:"PC1"`
	PC2 *float64 `json:"PC2"`
	PC3 *float64 `json:"PC3"`

	U1 *float64 `json:"U1"`
	U2 *float64 `json:"U2"`
	U3 *float64 `json:"U3"`
}

// Coords returns the normalized coordinate of the track.
//
// Each axis takes the PC value when present and the U value otherwise.
// If any axis is still missing the track has no position and nil is
// returned; missing axes are never guessed.
func (jt *JSONTrack) Coords() *model.Point {
	x := firstOf(jt.PC1, jt.U1)
	y := firstOf(jt.PC2, jt.U2)
	z := firstOf(jt.PC3, jt.U3)
	if x == nil || y == nil || z == nil {
		return nil
	}
	return &model.Point{X: *x, Y: *y, Z: *z}
}

// ToTrack converts JSONTrack to a model.Track.
func (jt *JSONTrack) ToTrack() *model.Track {
	return model.NewTrack(jt.Name, jt.Coords())
}

func firstOf(a, b *float64) *float64 {
	if a != nil {
		return a
	}
	return b
}
