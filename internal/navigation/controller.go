package navigation

import (
	"github.com/handiism/minoise/internal/logging"
	"github.com/handiism/minoise/internal/model"
	"github.com/handiism/minoise/internal/scene"
)

// LoadRequest identifies one dataset load. Seq increases with every request.
type LoadRequest struct {
	Seq        uint64
	Projection model.Projection
}

// LoadResult is the answer to a LoadRequest. Exactly one of Dataset and Err
// is set.
type LoadResult struct {
	Request LoadRequest
	Dataset *model.Dataset
	Err     error
}

// Outcome reports what ApplyLoad did with a result.
type Outcome int

const (
	// OutcomeApplied means the dataset was replaced and navigation reset.
	OutcomeApplied Outcome = iota

	// OutcomeStale means a newer request was issued; the result was dropped.
	OutcomeStale

	// OutcomeFailed means the load failed; dataset and state are unchanged.
	OutcomeFailed
)

// String returns the outcome name used in logs.
func (o Outcome) String() string {
	switch o {
	case OutcomeApplied:
		return "applied"
	case OutcomeStale:
		return "stale"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// FadeFunc is notified whenever a genre is selected.
type FadeFunc func(g *model.Genre)

// Controller holds the navigation state together with the dataset it
// navigates. It is not safe for concurrent use; all calls are expected to
// come from the UI loop.
type Controller struct {
	state      State
	dataset    *model.Dataset
	projection model.Projection
	center     model.Point

	seq     uint64
	settled uint64

	onFade FadeFunc
}

// NewController creates a controller at Top with no dataset.
func NewController(p model.Projection) *Controller {
	return &Controller{projection: p}
}

// OnFade registers the fade cue callback. Pass nil to remove it.
func (c *Controller) OnFade(fn FadeFunc) {
	c.onFade = fn
}

// State returns the current navigation state.
func (c *Controller) State() State {
	return c.state
}

// Tier returns the render tier of the current state.
func (c *Controller) Tier() RenderTier {
	return Tier(c.state)
}

// Dataset returns the loaded dataset, or nil before the first successful load.
func (c *Controller) Dataset() *model.Dataset {
	return c.dataset
}

// Center returns the scene center of the loaded dataset.
func (c *Controller) Center() model.Point {
	return c.center
}

// Projection returns the active projection, which is the projection of the
// latest request even while that request is in flight.
func (c *Controller) Projection() model.Projection {
	return c.projection
}

// Loading reports whether the latest request has not been answered yet.
func (c *Controller) Loading() bool {
	return c.seq != c.settled
}

// RequestLoad makes p the active projection and issues a new request.
// Any request still in flight becomes stale.
func (c *Controller) RequestLoad(p model.Projection) LoadRequest {
	c.seq++
	c.projection = p

	logging.Debugw("Dataset load requested", "projection", p.String(), "seq", c.seq)

	return LoadRequest{Seq: c.seq, Projection: p}
}

// Reload issues a new request for the active projection.
func (c *Controller) Reload() LoadRequest {
	return c.RequestLoad(c.projection)
}

// ApplyLoad applies the result of a load.
//
// A result that does not answer the latest request is discarded. A failed
// load is logged and leaves the dataset and the state as they were. A
// successful load replaces the dataset, recomputes the center and resets
// navigation to Top.
func (c *Controller) ApplyLoad(res LoadResult) Outcome {
	if res.Request.Seq != c.seq {
		logging.Debugw("Discarding stale dataset",
			"projection", res.Request.Projection.String(),
			"seq", res.Request.Seq,
			"latest", c.seq)
		return OutcomeStale
	}
	c.settled = res.Request.Seq

	if res.Err != nil {
		logging.Errorw("Dataset load failed",
			"projection", res.Request.Projection.String(),
			"seq", res.Request.Seq,
			"error", res.Err)
		return OutcomeFailed
	}

	c.dataset = res.Dataset
	c.center = scene.Center(res.Dataset)
	c.state = Top()

	stats := res.Dataset.Stats()
	logging.Infow("Dataset loaded",
		"projection", res.Request.Projection.String(),
		"seq", res.Request.Seq,
		"genres", stats.Genres,
		"artists", stats.Artists,
		"tracks", stats.Tracks,
		"center", c.center.String())

	return OutcomeApplied
}

// SelectGenre moves to GenreSelected(g) and fires the fade cue.
// It does nothing unless g belongs to the loaded dataset.
func (c *Controller) SelectGenre(g *model.Genre) State {
	if !c.dataset.HasGenre(g) {
		return c.state
	}
	c.state = c.state.SelectGenre(g)
	if c.onFade != nil {
		c.onFade(g)
	}
	return c.state
}

// SelectArtist moves to ArtistSelected when a belongs to the selected genre.
func (c *Controller) SelectArtist(a *model.Artist) State {
	c.state = c.state.SelectArtist(a)
	return c.state
}

// Back moves one level up.
func (c *Controller) Back() State {
	c.state = c.state.Back()
	return c.state
}
