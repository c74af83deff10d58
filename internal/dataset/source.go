package dataset

import (
	"context"
	"embed"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/handiism/minoise/internal/model"
)

// ErrAssetNotFound is returned when a source has no asset for a projection.
var ErrAssetNotFound = errors.New("dataset asset not found")

// Source provides the raw bytes of the hierarchy asset for a projection.
type Source interface {
	// Fetch returns the asset bytes for p.
	Fetch(ctx context.Context, p model.Projection) ([]byte, error)

	// Describe returns a short human readable location, used in logs.
	Describe() string
}

//go:embed assets/*.json
var sampleAssets embed.FS

// DirSource reads assets from a directory on disk.
type DirSource struct {
	Dir string
}

// NewDirSource creates a DirSource rooted at dir.
func NewDirSource(dir string) *DirSource {
	return &DirSource{Dir: dir}
}

// Fetch reads <Dir>/<p.AssetName()>.
func (s *DirSource) Fetch(ctx context.Context, p model.Projection) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name := s.Path(p)
	data, err := os.ReadFile(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.WithHintf(errors.Mark(errors.Wrapf(err, "read %s", name), ErrAssetNotFound),
				"place %s in %s or pick another projection", p.AssetName(), s.Dir)
		}
		return nil, errors.Wrapf(err, "read %s", name)
	}
	return data, nil
}

// Path returns the file path of the asset for p.
func (s *DirSource) Path(p model.Projection) string {
	return filepath.Join(s.Dir, p.AssetName())
}

// Describe implements Source.
func (s *DirSource) Describe() string {
	return s.Dir
}

// EmbeddedSource serves the sample assets compiled into the binary.
type EmbeddedSource struct {
	fsys fs.FS
}

// NewEmbeddedSource creates a source backed by the built-in sample assets.
func NewEmbeddedSource() *EmbeddedSource {
	return &EmbeddedSource{fsys: sampleAssets}
}

// Fetch implements Source.
func (s *EmbeddedSource) Fetch(ctx context.Context, p model.Projection) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := fs.ReadFile(s.fsys, path.Join("assets", p.AssetName()))
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "embedded %s", p.AssetName()), ErrAssetNotFound)
	}
	return data, nil
}

// Describe implements Source.
func (s *EmbeddedSource) Describe() string {
	return "built-in sample"
}
