package model

import (
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrUnknownProjection is returned by ParseProjection for names other than
// "pca" and "umap".
var ErrUnknownProjection = errors.New("unknown projection method")

// Projection represents a supported dimensionality-reduction method.
type Projection int

const (
	// ProjectionPCA is principal component analysis. Track axes are named PC1..PC3.
	ProjectionPCA Projection = iota

	// ProjectionUMAP is uniform manifold approximation. Track axes are named U1..U3.
	ProjectionUMAP
)

// DefaultProjection is the projection shown when nothing else is configured.
const DefaultProjection = ProjectionUMAP

// assetPrefix is the file name prefix shared by all dataset assets.
const assetPrefix = "minoise_hierarchy_"

// Projections returns every supported projection in selector order.
func Projections() []Projection {
	return []Projection{ProjectionPCA, ProjectionUMAP}
}

// String returns the lowercase method name used in asset names and config.
//
// Returns:
//   - "pca" for ProjectionPCA
//   - "umap" for ProjectionUMAP
func (p Projection) String() string {
	switch p {
	case ProjectionPCA:
		return "pca"
	case ProjectionUMAP:
		return "umap"
	default:
		return "unknown"
	}
}

// Label returns the uppercase name shown on the projection selector.
func (p Projection) Label() string {
	return strings.ToUpper(p.String())
}

// AssetName returns the file name of the dataset asset for the projection.
func (p Projection) AssetName() string {
	return assetPrefix + p.String() + ".json"
}

// Next returns the projection after p in selector order, wrapping around.
func (p Projection) Next() Projection {
	all := Projections()
	for i, candidate := range all {
		if candidate == p {
			return all[(i+1)%len(all)]
		}
	}
	return DefaultProjection
}

// ParseProjection converts a method name to a Projection. Matching ignores
// case and surrounding whitespace.
func ParseProjection(name string) (Projection, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "pca":
		return ProjectionPCA, nil
	case "umap":
		return ProjectionUMAP, nil
	}
	return 0, errors.Wrapf(ErrUnknownProjection, "%q", name)
}

// ProjectionForAsset returns the projection whose AssetName is the base name
// of path.
func ProjectionForAsset(path string) (Projection, bool) {
	base := filepath.Base(path)
	for _, p := range Projections() {
		if base == p.AssetName() {
			return p, true
		}
	}
	return 0, false
}
