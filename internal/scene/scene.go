package scene

import (
	"math"
	"sort"
	"time"

	"github.com/handiism/minoise/internal/model"
)

// Options configures a Scene.
type Options struct {
	FPS             int
	AutoRotate      bool
	AutoRotateSpeed float64
	CameraDistance  float64
	Layout          Layout
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		FPS:             30,
		AutoRotate:      true,
		AutoRotateSpeed: DefaultAutoRotateSpeed,
		CameraDistance:  DefaultDistance,
		Layout:          NewLayout(),
	}
}

// Scene is the animated view of a set of entities.
type Scene struct {
	Camera *Camera
	Layout Layout
	Fade   *Fade

	fps      int
	elapsed  time.Duration
	entities []Entity
	spheres  map[string]*Sphere
	hovered  string
}

// New creates an empty scene centered on the origin.
func New(opts Options) *Scene {
	if opts.FPS <= 0 {
		opts.FPS = 30
	}
	if opts.Layout.GenreScale == 0 {
		opts.Layout = NewLayout()
	}
	cam := NewCamera(model.Origin, opts.CameraDistance)
	cam.AutoRotate = opts.AutoRotate
	cam.AutoRotateSpeed = float32(opts.AutoRotateSpeed)

	return &Scene{
		Camera:  cam,
		Layout:  opts.Layout,
		Fade:    NewFade(),
		fps:     opts.FPS,
		spheres: make(map[string]*Sphere),
	}
}

// FPS returns the frame rate the animation is tuned for.
func (s *Scene) FPS() int {
	return s.fps
}

// FrameDuration returns the time between two frames.
func (s *Scene) FrameDuration() time.Duration {
	return time.Second / time.Duration(s.fps)
}

// Elapsed returns the animation clock.
func (s *Scene) Elapsed() time.Duration {
	return s.elapsed
}

// Retarget points the camera at center, as after a dataset load.
func (s *Scene) Retarget(center model.Point) {
	s.Camera.Retarget(center)
}

// SetEntities replaces the drawn entities. Animation state is kept for
// entities whose key is unchanged. The hover is cleared if its entity is
// gone.
func (s *Scene) SetEntities(entities []Entity) {
	s.entities = entities

	keep := make(map[string]*Sphere, len(entities))
	for _, e := range entities {
		if !e.Floats() {
			continue
		}
		if sp, ok := s.spheres[e.Key]; ok {
			keep[e.Key] = sp
		} else {
			keep[e.Key] = NewSphere(s.fps)
		}
	}
	s.spheres = keep

	if _, ok := s.entity(s.hovered); !ok {
		s.hovered = ""
	}
}

// Entities returns the current entities in layout order.
func (s *Scene) Entities() []Entity {
	return s.entities
}

// Hover marks the entity with key as hovered. An empty or unknown key
// clears the hover.
func (s *Scene) Hover(key string) {
	if _, ok := s.entity(key); !ok {
		key = ""
	}
	s.hovered = key
}

// Hovered returns the hovered entity.
func (s *Scene) Hovered() (Entity, bool) {
	return s.entity(s.hovered)
}

// HoverNext moves the hover by step among the floating entities, wrapping
// around. With nothing hovered it starts at the first (or last) one.
func (s *Scene) HoverNext(step int) {
	var keys []string
	for _, e := range s.entities {
		if e.Floats() {
			keys = append(keys, e.Key)
		}
	}
	if len(keys) == 0 {
		s.hovered = ""
		return
	}

	idx := -1
	for i, k := range keys {
		if k == s.hovered {
			idx = i
			break
		}
	}
	if idx < 0 {
		if step < 0 {
			idx = 0
		} else {
			idx = len(keys) - 1
		}
	}
	n := len(keys)
	s.hovered = keys[((idx+step)%n+n)%n]
}

// Step advances the animation by one frame of dt.
func (s *Scene) Step(dt time.Duration) {
	s.elapsed += dt
	s.Camera.Update(dt)
	s.Fade.Advance(dt)
	for _, e := range s.entities {
		if sp, ok := s.spheres[e.Key]; ok {
			sp.Step(e.Selected || e.Key == s.hovered)
		}
	}
}

// Placed is an entity positioned on screen for one frame.
type Placed struct {
	Entity

	// World is the animated world position.
	World model.Point

	Screen ScreenPoint

	// Scale is the animated sphere scale, 1 for tracks.
	Scale float64

	// Spin is the sphere rotation around the vertical axis, 0 for tracks.
	Spin float64

	// Radius is the sphere radius in screen rows.
	Radius float64

	// Nearness is 1 for the nearest visible entity and 0 for the farthest.
	Nearness float64

	Hovered bool
}

// Place projects every entity through pr and returns the visible ones
// ordered far to near, so later entries draw over earlier ones.
func (s *Scene) Place(pr Projector) []Placed {
	out := make([]Placed, 0, len(s.entities))
	for _, e := range s.entities {
		world := e.Base
		scale, spin := 1.0, 0.0
		if sp, ok := s.spheres[e.Key]; ok {
			world = Bob(e.Base, s.elapsed)
			scale, spin = sp.Scale(), sp.Spin()
		}
		sp, ok := pr.Project(s.Camera, world)
		if !ok {
			continue
		}
		out = append(out, Placed{
			Entity:  e,
			World:   world,
			Screen:  sp,
			Scale:   scale,
			Spin:    spin,
			Radius:  SphereRadius * scale * sp.Scale,
			Hovered: e.Key == s.hovered,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Screen.Depth > out[j].Screen.Depth
	})

	if len(out) > 0 {
		far, near := out[0].Screen.Depth, out[len(out)-1].Screen.Depth
		for i := range out {
			if far == near {
				out[i].Nearness = 1
				continue
			}
			out[i].Nearness = (far - out[i].Screen.Depth) / (far - near)
		}
	}
	return out
}

// Pick returns the floating entity nearest to screen position (x, y) whose
// sphere, grown by slack screen rows, contains the point. Horizontal
// distance is divided by aspect so the test is round on screen. Ties go to
// the entity nearer the camera.
func Pick(placed []Placed, x, y, slack, aspect float64) (Placed, bool) {
	if aspect <= 0 {
		aspect = 1
	}
	var (
		best     Placed
		bestDist = math.Inf(1)
		found    bool
	)
	for _, p := range placed {
		if !p.Floats() {
			continue
		}
		dx := (p.Screen.X - x) / aspect
		dy := p.Screen.Y - y
		dist := math.Hypot(dx, dy)
		if dist > p.Radius+slack {
			continue
		}
		if !found || dist < bestDist || (dist == bestDist && p.Screen.Depth < best.Screen.Depth) {
			best, bestDist, found = p, dist, true
		}
	}
	return best, found
}

func (s *Scene) entity(key string) (Entity, bool) {
	if key == "" {
		return Entity{}, false
	}
	for _, e := range s.entities {
		if e.Key == key {
			return e, true
		}
	}
	return Entity{}, false
}
