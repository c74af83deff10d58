package dataset

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/handiism/minoise/internal/logging"
	"github.com/handiism/minoise/internal/model"
)

// Loader fetches and parses hierarchy assets.
type Loader struct {
	source Source
}

// NewLoader creates a Loader reading from src.
func NewLoader(src Source) *Loader {
	return &Loader{source: src}
}

// Source returns the source the loader reads from.
func (l *Loader) Source() Source {
	return l.source
}

// Load fetches and parses the asset for projection p.
func (l *Loader) Load(ctx context.Context, p model.Projection) (*model.Dataset, error) {
	start := time.Now()

	data, err := l.source.Fetch(ctx, p)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s dataset", p)
	}

	ds, err := Parse(data, p)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s dataset", p)
	}

	stats := ds.Stats()
	logging.Debugw("Dataset parsed",
		"projection", p.String(),
		"source", l.source.Describe(),
		"bytes", len(data),
		"genres", stats.Genres,
		"artists", stats.Artists,
		"tracks", stats.Tracks,
		"elapsed", time.Since(start))

	return ds, nil
}
