package dto

import (
	"fmt"

	"github.com/handiism/minoise/internal/model"
)

// JSONGenre represents one genre entry of a hierarchy asset.
type JSONGenre struct {
	Genre    string       `json:"genre"`
	Centroid []float64    `json:"centroid"`
	Artists  []JSONArtist `json:"artists"`
}

// JSONArtist represents one artist entry nested in a genre.
type JSONArtist struct {
	Name     string      `json:"artist_name"`
	Centroid []float64   `json:"centroid"`
	Tracks   []JSONTrack `json:"tracks"`
}

// ToDataset converts decoded genres to a model.Dataset.
//
// Centroids must have exactly three components; anything else is reported
// with the path of the offending entry.
func ToDataset(genres []JSONGenre, p model.Projection) (*model.Dataset, error) {
	out := make([]*model.Genre, 0, len(genres))
	for i, jg := range genres {
		g, err := jg.ToGenre()
		if err != nil {
			return nil, fmt.Errorf("genre %d (%q): %w", i, jg.Genre, err)
		}
		out = append(out, g)
	}
	return model.NewDataset(p, out), nil
}

// ToGenre converts a JSONGenre and its artists to a model.Genre.
func (jg *JSONGenre) ToGenre() (*model.Genre, error) {
	centroid, err := toPoint(jg.Centroid)
	if err != nil {
		return nil, err
	}

	g := model.NewGenre(jg.Genre, centroid)
	for i, ja := range jg.Artists {
		a, err := ja.ToArtist()
		if err != nil {
			return nil, fmt.Errorf("artist %d (%q): %w", i, ja.Name, err)
		}
		g.AddArtist(a)
	}
	return g, nil
}

// ToArtist converts a JSONArtist and its tracks to a model.Artist.
func (ja *JSONArtist) ToArtist() (*model.Artist, error) {
	centroid, err := toPoint(ja.Centroid)
	if err != nil {
		return nil, err
	}

	a := model.NewArtist(ja.Name, centroid)
	for _, jt := range ja.Tracks {
		a.AddTrack(jt.ToTrack())
	}
	return a, nil
}

func toPoint(v []float64) (model.Point, error) {
	if len(v) != 3 {
		return model.Point{}, fmt.Errorf("centroid has %d components, want 3", len(v))
	}
	return model.Point{X: v[0], Y: v[1], Z: v[2]}, nil
}
