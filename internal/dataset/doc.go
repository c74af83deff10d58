// Package dataset loads the genre → artist → track hierarchy for a
// projection method.
//
// The package handles three concerns:
//
//  1. Fetching the raw asset bytes from a Source (a directory, the
//     built-in sample assets, or an HTTP base URL)
//  2. Parsing the asset JSON into a model.Dataset, normalizing the two
//     track coordinate conventions
//  3. Preloading several projections concurrently for validation
//
// # Loading
//
//	loader := dataset.NewLoader(dataset.NewDirSource("/srv/minoise"))
//	ds, err := loader.Load(ctx, model.ProjectionUMAP)
//	if errors.Is(err, dataset.ErrAssetNotFound) {
//	    // no asset for that projection
//	}
//
// # Asset Format
//
// Each asset is a JSON array of genres:
//
//	[{"genre": "jazz", "centroid": [x, y, z],
//	  "artists": [{"artist_name": "...", "centroid": [x, y, z],
//	               "tracks": [{"PC1": x, "PC2": y, "PC3": z}]}]}]
//
// UMAP assets use U1..U3 instead of PC1..PC3. A track missing any axis is
// kept but has no position.
package dataset
