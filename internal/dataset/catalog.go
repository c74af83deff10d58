package dataset

import (
	"context"
	"time"

	"github.com/handiism/minoise/internal/logging"
	"github.com/handiism/minoise/internal/model"
	"golang.org/x/sync/errgroup"
)

// DefaultPreloadConcurrency is used when a Catalog is created with a
// non-positive limit.
const DefaultPreloadConcurrency = 2

// PreloadResult is the outcome of loading one projection.
type PreloadResult struct {
	Projection model.Projection
	Dataset    *model.Dataset
	Err        error
	Elapsed    time.Duration
}

// Catalog loads several projections from the same loader.
type Catalog struct {
	loader *Loader
	limit  int
}

// NewCatalog creates a Catalog that runs at most limit loads at a time.
func NewCatalog(loader *Loader, limit int) *Catalog {
	if limit < 1 {
		limit = DefaultPreloadConcurrency
	}
	return &Catalog{loader: loader, limit: limit}
}

// Preload loads every given projection concurrently and returns one result
// per projection in the order given. With no projections, all supported
// projections are loaded.
//
// A failing projection does not stop the others; its error is reported in
// its result.
func (c *Catalog) Preload(ctx context.Context, projections ...model.Projection) []PreloadResult {
	if len(projections) == 0 {
		projections = model.Projections()
	}

	results := make([]PreloadResult, len(projections))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.limit)

	for i, p := range projections {
		g.Go(func() error {
			start := time.Now()
			ds, err := c.loader.Load(ctx, p)
			results[i] = PreloadResult{
				Projection: p,
				Dataset:    ds,
				Err:        err,
				Elapsed:    time.Since(start),
			}
			if err != nil {
				logging.Warnw("Preload failed", "projection", p.String(), "error", err)
			}
			return nil // Continue with other projections
		})
	}

	_ = g.Wait()
	return results
}

// Failed returns the results that carry an error.
func Failed(results []PreloadResult) []PreloadResult {
	var out []PreloadResult
	for _, r := range results {
		if r.Err != nil {
			out = append(out, r)
		}
	}
	return out
}
