package scene

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/handiism/minoise/internal/model"
)

const (
	// BobAmplitude is the height of the vertical float, in world units.
	BobAmplitude = 0.08

	// SpinPerFrame is the sphere rotation added every frame, in radians.
	SpinPerFrame = 0.002

	// RestScale and ActiveScale are the scale targets of idle and of
	// hovered or selected spheres.
	RestScale   = 1.0
	ActiveScale = 1.4

	springFrequency = 6.0
	springDamping   = 1.0
)

// Sphere is the per-entity animation state of a floating sphere.
type Sphere struct {
	scale    float64
	velocity float64
	spin     float64

	spring harmonica.Spring
}

// NewSphere creates a sphere at rest scale animated at fps frames per
// second.
func NewSphere(fps int) *Sphere {
	if fps <= 0 {
		fps = 30
	}
	return &Sphere{
		scale:  RestScale,
		spring: harmonica.NewSpring(harmonica.FPS(fps), springFrequency, springDamping),
	}
}

// Step advances one frame. Active spheres grow toward ActiveScale, others
// return to RestScale.
func (s *Sphere) Step(active bool) {
	target := RestScale
	if active {
		target = ActiveScale
	}
	s.scale, s.velocity = s.spring.Update(s.scale, s.velocity, target)
	s.spin = math.Mod(s.spin+SpinPerFrame, 2*math.Pi)
}

// Scale returns the current scale factor.
func (s *Sphere) Scale() float64 {
	return s.scale
}

// Spin returns the current rotation around the vertical axis in radians.
func (s *Sphere) Spin() float64 {
	return s.spin
}

// Bob returns base lifted by the floating offset at elapsed time t. The
// phase depends on the x coordinate so neighbours do not move in lockstep.
func Bob(base model.Point, t time.Duration) model.Point {
	base.Y += math.Sin(t.Seconds()+base.X) * BobAmplitude
	return base
}
