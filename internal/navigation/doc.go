// Package navigation implements the genre → artist → track summary
// drill-down and the dataset load sequencing around it.
//
// # State
//
// State is an immutable value. Every transition returns a new State and
// leaves the receiver untouched:
//
//	s := navigation.Top()
//	s = s.SelectGenre(jazz)    // GenreSelected(jazz)
//	s = s.SelectArtist(artist) // ArtistSelected(jazz, artist)
//	s = s.Back()               // GenreSelected(jazz)
//
// The tier to render is always derived from the state with Tier and
// Summary; it is never stored.
//
// # Controller
//
// Controller owns the current state, the loaded dataset and the scene
// center. Loads are asynchronous: RequestLoad issues a numbered request,
// and ApplyLoad accepts a result only if it answers the latest request.
// Results for superseded requests are discarded.
package navigation
