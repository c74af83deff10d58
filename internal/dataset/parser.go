package dataset

import (
	"encoding/json"

	"github.com/cockroachdb/errors"
	"github.com/handiism/minoise/internal/dataset/dto"
	"github.com/handiism/minoise/internal/model"
)

// ErrMalformedDataset marks assets that could be read but not decoded into a
// hierarchy.
var ErrMalformedDataset = errors.New("malformed dataset")

// Parse decodes a hierarchy asset into a Dataset for projection p.
//
// Returns an error marked with ErrMalformedDataset if:
//   - The bytes are not a JSON array of genres
//   - Any genre or artist centroid does not have exactly three components
func Parse(data []byte, p model.Projection) (*model.Dataset, error) {
	var genres []dto.JSONGenre
	if err := json.Unmarshal(data, &genres); err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "decode %s", p.AssetName()), ErrMalformedDataset)
	}

	ds, err := dto.ToDataset(genres, p)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "convert %s", p.AssetName()), ErrMalformedDataset)
	}

	return ds, nil
}
