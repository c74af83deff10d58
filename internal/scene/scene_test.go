package scene

import (
	"math"
	"slices"
	"testing"
	"time"

	"github.com/handiism/minoise/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jazzDataset() *model.Dataset {
	track := model.NewTrack("t", &model.Point{X: 2})
	artist := model.NewArtist("A", model.Point{X: 1}, track)
	jazz := model.NewGenre("jazz", model.Point{}, artist)
	return model.NewDataset(model.ProjectionPCA, []*model.Genre{jazz})
}

func sampleDataset() *model.Dataset {
	rock := model.NewGenre("Rock", model.Point{X: 1, Y: 1, Z: 1},
		model.NewArtist("B", model.Point{X: 2, Y: -1, Z: 0},
			model.NewTrack("one", &model.Point{X: 3, Y: 3, Z: 3}),
			model.NewTrack("partial", nil),
		),
		model.NewArtist("C", model.Point{X: -4, Y: 0, Z: 2},
			model.NewTrack("two", &model.Point{X: -1, Y: 5, Z: 0.5}),
		),
	)
	pop := model.NewGenre("pop", model.Point{X: -2, Y: 0, Z: 1},
		model.NewArtist("D", model.Point{X: 0, Y: 0, Z: -3}),
	)
	return model.NewDataset(model.ProjectionUMAP, []*model.Genre{rock, pop})
}

func assertPointInDelta(t *testing.T, want, got model.Point, delta float64) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, delta, "x")
	assert.InDelta(t, want.Y, got.Y, delta, "y")
	assert.InDelta(t, want.Z, got.Z, delta, "z")
}

func TestCenter(t *testing.T) {
	t.Run("nil dataset", func(t *testing.T) {
		assert.Equal(t, model.Origin, Center(nil))
	})

	t.Run("no genres", func(t *testing.T) {
		assert.Equal(t, model.Origin, Center(model.NewDataset(model.ProjectionPCA, nil)))
	})

	t.Run("jazz", func(t *testing.T) {
		assert.Equal(t, model.Point{X: 1}, Center(jazzDataset()))
	})

	t.Run("mean of every point once, partial tracks excluded", func(t *testing.T) {
		// 2 genres + 3 artists + 2 positioned tracks.
		want := model.Point{
			X: (1 - 2 + 2 - 4 + 0 + 3 - 1) / 7.0,
			Y: (1 + 0 - 1 + 0 + 0 + 3 + 5) / 7.0,
			Z: (1 + 1 + 0 + 2 - 3 + 3 + 0.5) / 7.0,
		}
		assertPointInDelta(t, want, Center(sampleDataset()), 1e-12)
	})

	t.Run("traversal order does not matter", func(t *testing.T) {
		ds := sampleDataset()
		reversed := model.NewDataset(ds.Projection, slices.Clone(ds.Genres))
		slices.Reverse(reversed.Genres)
		assertPointInDelta(t, Center(ds), Center(reversed), 1e-12)
	})
}

func TestCamera(t *testing.T) {
	target := model.Point{X: 1, Y: 2, Z: 3}

	t.Run("starts in front of the target", func(t *testing.T) {
		cam := NewCamera(target, 12)
		assertPointInDelta(t, model.Point{X: 1, Y: 2, Z: 15}, cam.Eye(), 1e-4)
	})

	t.Run("orbit keeps distance", func(t *testing.T) {
		cam := NewCamera(target, 12)
		for i := 0; i < 50; i++ {
			cam.Orbit(0.3, 0.07)
			dist := cam.Position().Sub(cam.Target).Length()
			require.InDelta(t, 12, dist, 1e-3)
		}
		assert.LessOrEqual(t, cam.Pitch, float32(maxPitch))
	})

	t.Run("auto rotate speed", func(t *testing.T) {
		cam := NewCamera(target, 12)
		cam.Update(time.Second)
		assert.InDelta(t, 2*math.Pi/60*0.8, cam.Yaw, 1e-5)

		cam.AutoRotate = false
		cam.Update(time.Second)
		assert.InDelta(t, 2*math.Pi/60*0.8, cam.Yaw, 1e-5)
	})

	t.Run("zoom clamps", func(t *testing.T) {
		cam := NewCamera(target, 12)
		cam.Zoom(0.5)
		assert.InDelta(t, 6, cam.Distance, 1e-6)
		cam.Zoom(0.01)
		assert.Equal(t, float32(MinDistance), cam.Distance)
		cam.Zoom(1000)
		assert.Equal(t, float32(MaxDistance), cam.Distance)
	})

	t.Run("retarget resets angles", func(t *testing.T) {
		cam := NewCamera(target, 12)
		cam.Orbit(1, 0.5)
		cam.Retarget(model.Origin)
		assertPointInDelta(t, model.Point{Z: 12}, cam.Eye(), 1e-4)
	})
}

func TestProjector(t *testing.T) {
	cam := NewCamera(model.Point{X: 1, Y: 1, Z: 1}, 12)
	pr := NewTerminalProjector(80, 24)

	center, ok := pr.Project(cam, model.Point{X: 1, Y: 1, Z: 1})
	require.True(t, ok)
	assert.InDelta(t, 40, center.X, 1e-4)
	assert.InDelta(t, 12, center.Y, 1e-4)
	assert.InDelta(t, 12, center.Depth, 1e-4)
	assert.True(t, pr.InBounds(center))

	right, ok := pr.Project(cam, model.Point{X: 2, Y: 1, Z: 1})
	require.True(t, ok)
	assert.Greater(t, right.X, center.X)
	assert.InDelta(t, center.Y, right.Y, 1e-4)

	up, ok := pr.Project(cam, model.Point{X: 1, Y: 2, Z: 1})
	require.True(t, ok)
	assert.Less(t, up.Y, center.Y)
	// Terminal cells are twice as tall as wide.
	assert.InDelta(t, 2*(center.Y-up.Y), right.X-center.X, 1e-3)

	_, ok = pr.Project(cam, model.Point{X: 1, Y: 1, Z: 20})
	assert.False(t, ok, "points behind the camera are culled")
}

func TestLayout(t *testing.T) {
	ds := sampleDataset()
	l := NewLayout()

	genres := l.Genres(ds)
	require.Len(t, genres, 2)
	assert.Equal(t, model.Point{X: 3, Y: 3, Z: 3}, genres[0].Base)
	assert.Equal(t, DefaultPalette().Genre("rock"), genres[0].Color)
	assert.Equal(t, DefaultPalette().DefaultGenre, DefaultPalette().Genre("ambient"))

	rock := ds.Genres[0]
	artists := l.Artists(rock, rock.Artists[1])
	require.Len(t, artists, 2)
	assert.Equal(t, rock.Artists[0].Centroid, artists[0].Base)
	assert.False(t, artists[0].Selected)
	assert.True(t, artists[1].Selected)

	tracks := l.Tracks(rock.Artists[0])
	require.Len(t, tracks, 1, "unpositioned tracks are not drawn")
	assert.Equal(t, "one", tracks[0].Label)
	assert.False(t, tracks[0].Floats())
}

func TestFade(t *testing.T) {
	f := NewFade()
	assert.Equal(t, 1.0, f.Value())

	f.Reset()
	assert.Equal(t, 0.0, f.Value())
	assert.False(t, f.Done())

	f.Advance(250 * time.Millisecond)
	assert.InDelta(t, 0.25, f.Value(), 1e-9)

	f.Advance(2 * time.Second)
	assert.Equal(t, 1.0, f.Value())
	assert.True(t, f.Done())
}

func TestSphere(t *testing.T) {
	s := NewSphere(60)
	for i := 0; i < 120; i++ {
		s.Step(true)
	}
	assert.InDelta(t, ActiveScale, s.Scale(), 0.01)
	assert.InDelta(t, 120*SpinPerFrame, s.Spin(), 1e-9)

	for i := 0; i < 120; i++ {
		s.Step(false)
	}
	assert.InDelta(t, RestScale, s.Scale(), 0.01)
}

func TestBob(t *testing.T) {
	base := model.Point{X: 0, Y: 1, Z: 2}
	assert.Equal(t, base, Bob(base, 0))

	half := math.Pi / 2
	quarter := time.Duration(half * float64(time.Second))
	got := Bob(base, quarter)
	assert.InDelta(t, 1+BobAmplitude, got.Y, 1e-6)
	assert.Equal(t, base.X, got.X)
	assert.Equal(t, base.Z, got.Z)
}

func TestScene_HoverNextDuplicateNames(t *testing.T) {
	same1 := model.NewArtist("Same", model.Point{X: 1})
	same2 := model.NewArtist("Same", model.Point{X: 2})
	other := model.NewArtist("Other", model.Point{X: 3})
	g := model.NewGenre("jazz", model.Point{}, same1, same2, other)
	twin := model.NewGenre("jazz", model.Point{Y: 1})
	ds := model.NewDataset(model.ProjectionPCA, []*model.Genre{g, twin})

	tests := []struct {
		name     string
		entities []Entity
		want     int
	}{
		{"artists", NewLayout().Artists(g, nil), 3},
		{"genres", NewLayout().Genres(ds), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := New(DefaultOptions())
			sc.SetEntities(tt.entities)

			seen := map[Entity]bool{}
			for range 2 * tt.want {
				sc.HoverNext(1)
				h, ok := sc.Hovered()
				require.True(t, ok)
				seen[h] = true
			}
			assert.Len(t, seen, tt.want, "every entity is reachable")
		})
	}
}

func TestPalette_Shade(t *testing.T) {
	p := DefaultPalette()
	c := p.Genre("jazz")

	assert.InDelta(t, 0, c.DistanceLab(p.Shade(c, 1, 1)), 1e-3)
	assert.InDelta(t, 0, p.Background.DistanceLab(p.Shade(c, 1, 0)), 1e-3)
	assert.Greater(t, c.DistanceLab(p.Shade(c, 0, 1)), 0.01, "far entities are dimmed")
}

func TestScene_HoverAndPick(t *testing.T) {
	sc := New(DefaultOptions())
	sc.Camera.AutoRotate = false
	ds := sampleDataset()
	sc.SetEntities(sc.Layout.Genres(ds))
	rock, pop := ds.Genres[0], ds.Genres[1]

	sc.HoverNext(1)
	h, ok := sc.Hovered()
	require.True(t, ok)
	assert.Equal(t, rock, h.Genre)

	sc.HoverNext(1)
	h, _ = sc.Hovered()
	assert.Equal(t, pop, h.Genre)

	sc.HoverNext(1)
	h, _ = sc.Hovered()
	assert.Equal(t, rock, h.Genre, "wraps around")

	for i := 0; i < 90; i++ {
		sc.Step(sc.FrameDuration())
	}

	pr := NewTerminalProjector(120, 40)
	placed := sc.Place(pr)
	require.Len(t, placed, 2)
	assert.GreaterOrEqual(t, placed[0].Screen.Depth, placed[1].Screen.Depth, "far to near")
	assert.Equal(t, 1.0, placed[1].Nearness)

	for _, p := range placed {
		if p.Genre == rock {
			assert.True(t, p.Hovered)
			assert.InDelta(t, ActiveScale, p.Scale, 0.02)
			assert.InDelta(t, 90*SpinPerFrame, p.Spin, 1e-9)

			got, ok := Pick(placed, p.Screen.X, p.Screen.Y, 0.5, TerminalCellAspect)
			require.True(t, ok)
			assert.Equal(t, p.Key, got.Key)
		}
	}

	_, ok = Pick(placed, -100, -100, 0.5, TerminalCellAspect)
	assert.False(t, ok)

	// Switching tiers drops the hover.
	sc.SetEntities(sc.Layout.Artists(ds.Genres[1], nil))
	_, ok = sc.Hovered()
	assert.False(t, ok)
}
