package scene

import "github.com/handiism/minoise/internal/model"

// Center returns the point the camera orbits for a dataset: the unweighted
// mean of every genre centroid, every artist centroid and every positioned
// track. Each contributes one point. An empty dataset centers on the origin.
func Center(ds *model.Dataset) model.Point {
	var (
		sum model.Point
		n   int
	)
	for p := range ds.Points() {
		sum = sum.Add(p)
		n++
	}
	if n == 0 {
		return model.Origin
	}
	d := float64(n)
	return model.Point{X: sum.X / d, Y: sum.Y / d, Z: sum.Z / d}
}
