package navigation

import (
	"fmt"

	"github.com/handiism/minoise/internal/model"
)

// Level is the depth of the drill-down.
type Level int

const (
	LevelTop Level = iota
	LevelGenreSelected
	LevelArtistSelected
)

// String returns the level name used in logs.
func (l Level) String() string {
	switch l {
	case LevelTop:
		return "top"
	case LevelGenreSelected:
		return "genre"
	case LevelArtistSelected:
		return "artist"
	default:
		return "unknown"
	}
}

// State is the current selection. The zero value is Top.
//
// An artist is only ever set together with the genre it belongs to.
type State struct {
	genre  *model.Genre
	artist *model.Artist
}

// Top returns the state with nothing selected.
func Top() State {
	return State{}
}

// Genre returns the selected genre, or nil at Top.
func (s State) Genre() *model.Genre {
	return s.genre
}

// Artist returns the selected artist, or nil unless at ArtistSelected.
func (s State) Artist() *model.Artist {
	return s.artist
}

// Level returns the drill-down depth of s.
func (s State) Level() Level {
	switch {
	case s.artist != nil:
		return LevelArtistSelected
	case s.genre != nil:
		return LevelGenreSelected
	default:
		return LevelTop
	}
}

// IsTop reports whether nothing is selected.
func (s State) IsTop() bool {
	return s.genre == nil
}

// SelectGenre returns the state with g selected and no artist. A nil genre
// leaves the state unchanged.
func (s State) SelectGenre(g *model.Genre) State {
	if g == nil {
		return s
	}
	return State{genre: g}
}

// SelectArtist returns the state with a selected within the current genre.
// If no genre is selected or a is not one of its artists the state is
// returned unchanged.
func (s State) SelectArtist(a *model.Artist) State {
	if s.genre == nil || !s.genre.HasArtist(a) {
		return s
	}
	return State{genre: s.genre, artist: a}
}

// Back returns the state one level up. Back at Top is a no-op.
func (s State) Back() State {
	switch s.Level() {
	case LevelArtistSelected:
		return State{genre: s.genre}
	default:
		return Top()
	}
}

// String describes the state, e.g. "ArtistSelected(jazz, Marlow Quartet)".
func (s State) String() string {
	switch s.Level() {
	case LevelArtistSelected:
		return fmt.Sprintf("ArtistSelected(%s, %s)", s.genre.Name, s.artist.Name)
	case LevelGenreSelected:
		return fmt.Sprintf("GenreSelected(%s)", s.genre.Name)
	default:
		return "Top"
	}
}
