// Package model defines the core data structures used throughout
// the minoise application.
//
// # Dataset
//
// A Dataset is the hierarchy loaded for one projection method: an ordered
// list of genres, each holding its artists, each holding its tracks.
//
//	ds := model.NewDataset(model.ProjectionUMAP, genres)
//	for p := range ds.Points() {
//	    fmt.Println(p) // every centroid and every positioned track
//	}
//
// A Dataset is never modified after it is built. Loading a different
// projection produces a new Dataset that replaces the old one.
//
// # Genre, Artist and Track
//
// Genres and artists carry a precomputed centroid supplied by the dataset.
// Tracks carry a coordinate that may be missing when the source asset did not
// provide all three axes:
//
//	track := model.NewTrack("Blue in Green", &model.Point{X: 1, Y: 2, Z: 3})
//	if track.HasCoords {
//	    fmt.Println(track.Coords)
//	}
//
// # Projection
//
// Projection names the dimensionality-reduction method whose coordinates a
// dataset holds. Each projection is stored as its own asset:
//
//	model.ProjectionPCA.AssetName()  // "minoise_hierarchy_pca.json"
//	model.ProjectionUMAP.AssetName() // "minoise_hierarchy_umap.json"
package model
