package scene

import (
	"time"

	"cogentcore.org/core/math32"
	"github.com/handiism/minoise/internal/model"
)

const (
	// DefaultDistance is the initial camera distance from the scene center.
	DefaultDistance = 12

	// DefaultAutoRotateSpeed matches one revolution every 75 seconds.
	DefaultAutoRotateSpeed = 0.8

	// MinDistance and MaxDistance bound zooming.
	MinDistance = 2
	MaxDistance = 80

	// maxPitch keeps the camera off the poles so the up vector stays defined.
	maxPitch = math32.Pi/2 - 0.05
)

var worldUp = math32.Vec3(0, 1, 0)

// Camera orbits a target point at a fixed distance.
//
// With zero yaw and pitch the camera sits at target + (0, 0, Distance)
// looking down -Z. Yaw turns around the world Y axis, pitch tilts toward
// the poles.
type Camera struct {
	Target   math32.Vector3
	Distance float32
	Yaw      float32
	Pitch    float32

	AutoRotate      bool
	AutoRotateSpeed float32
}

// NewCamera creates a camera looking at target from distance.
func NewCamera(target model.Point, distance float64) *Camera {
	if distance <= 0 {
		distance = DefaultDistance
	}
	return &Camera{
		Target:          toVec3(target),
		Distance:        float32(distance),
		AutoRotate:      true,
		AutoRotateSpeed: DefaultAutoRotateSpeed,
	}
}

// Retarget moves the orbit pivot to p and resets the orbit angles, keeping
// the distance.
func (c *Camera) Retarget(p model.Point) {
	c.Target = toVec3(p)
	c.Yaw = 0
	c.Pitch = 0
}

// Rotation returns the orientation of the camera around its target.
func (c *Camera) Rotation() (pitch, yaw math32.Quat) {
	pitch = math32.NewQuatAxisAngle(math32.Vec3(1, 0, 0), -c.Pitch)
	yaw = math32.NewQuatAxisAngle(worldUp, c.Yaw)
	return pitch, yaw
}

// Position returns the camera position in world space.
func (c *Camera) Position() math32.Vector3 {
	pitch, yaw := c.Rotation()
	offset := math32.Vec3(0, 0, c.Distance).MulQuat(pitch).MulQuat(yaw)
	return c.Target.Add(offset)
}

// Eye returns the camera position as a model point.
func (c *Camera) Eye() model.Point {
	return toPoint(c.Position())
}

// Basis returns the camera's right, up and forward unit vectors.
func (c *Camera) Basis() (right, up, forward math32.Vector3) {
	forward = c.Target.Sub(c.Position()).Normal()
	right = forward.Cross(worldUp).Normal()
	up = right.Cross(forward)
	return right, up, forward
}

// Update advances auto-rotation by dt. The speed follows orbit-control
// convention: speed 1 is one revolution per minute.
func (c *Camera) Update(dt time.Duration) {
	if !c.AutoRotate {
		return
	}
	c.Yaw += 2 * math32.Pi / 60 * c.AutoRotateSpeed * float32(dt.Seconds())
	c.Yaw = wrapAngle(c.Yaw)
}

// Orbit turns the camera by the given yaw and pitch deltas in radians.
func (c *Camera) Orbit(dYaw, dPitch float32) {
	c.Yaw = wrapAngle(c.Yaw + dYaw)
	c.Pitch = math32.Clamp(c.Pitch+dPitch, -maxPitch, maxPitch)
}

// Zoom multiplies the distance by factor, within MinDistance and
// MaxDistance. Factors below 1 move closer.
func (c *Camera) Zoom(factor float32) {
	if factor <= 0 {
		return
	}
	c.Distance = math32.Clamp(c.Distance*factor, MinDistance, MaxDistance)
}

func wrapAngle(a float32) float32 {
	a = math32.Mod(a, 2*math32.Pi)
	if a < 0 {
		a += 2 * math32.Pi
	}
	return a
}

func toVec3(p model.Point) math32.Vector3 {
	return math32.Vec3(float32(p.X), float32(p.Y), float32(p.Z))
}

func toPoint(v math32.Vector3) model.Point {
	return model.Point{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)}
}
