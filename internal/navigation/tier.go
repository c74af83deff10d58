package navigation

import (
	"fmt"

	"github.com/handiism/minoise/internal/model"
	"github.com/handiism/minoise/internal/scene"
)

// RenderTier is the set of entities the scene shows for a state.
type RenderTier int

const (
	// TierGenres shows one sphere per genre.
	TierGenres RenderTier = iota

	// TierArtists shows the artists of the selected genre.
	TierArtists

	// TierSummary shows the selected artist's tracks and summary, with the
	// genre's artists still visible.
	TierSummary
)

// String returns the tier name.
func (t RenderTier) String() string {
	switch t {
	case TierGenres:
		return "genres"
	case TierArtists:
		return "artists"
	case TierSummary:
		return "summary"
	default:
		return "unknown"
	}
}

// Tier derives the render tier from s.
func Tier(s State) RenderTier {
	switch s.Level() {
	case LevelArtistSelected:
		return TierSummary
	case LevelGenreSelected:
		return TierArtists
	default:
		return TierGenres
	}
}

// Summary returns the one-line caption for s.
func Summary(s State) string {
	switch s.Level() {
	case LevelArtistSelected:
		return fmt.Sprintf("%s / %d tracks", s.artist.Name, len(s.artist.Tracks))
	case LevelGenreSelected:
		return fmt.Sprintf("%s / %d artists", s.genre.Name, len(s.genre.Artists))
	default:
		return "Select a genre"
	}
}

// Breadcrumb returns the path of s, e.g. "All genres › jazz › Marlow Quartet".
func Breadcrumb(s State) string {
	crumb := "All genres"
	if s.genre != nil {
		crumb += " › " + s.genre.Name
	}
	if s.artist != nil {
		crumb += " › " + s.artist.Name
	}
	return crumb
}

// Entities lays out what the scene draws for s: the genres of ds at Top,
// the selected genre's artists below it, plus the selected artist's tracks
// at the summary tier.
func Entities(l scene.Layout, ds *model.Dataset, s State) []scene.Entity {
	switch Tier(s) {
	case TierSummary:
		return append(l.Artists(s.genre, s.artist), l.Tracks(s.artist)...)
	case TierArtists:
		return l.Artists(s.genre, nil)
	default:
		return l.Genres(ds)
	}
}
