// Package http provides the HTTP client used to fetch dataset assets from a
// remote location.
//
// The Client in this package handles:
//   - User-Agent headers
//   - Timeout handling
//   - Mapping of non-200 responses to a StatusError
//
// # Basic Usage
//
//	client := http.NewClient()
//
//	// Fetch a dataset asset
//	data, err := client.Get(ctx, "https://example.org/data/minoise_hierarchy_umap.json")
//
//	var statusErr *http.StatusError
//	if errors.As(err, &statusErr) && statusErr.Code == 404 {
//	    // asset does not exist
//	}
package http
