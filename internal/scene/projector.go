package scene

import (
	"cogentcore.org/core/math32"
	"github.com/handiism/minoise/internal/model"
)

const (
	// DefaultFOV is the vertical field of view in degrees.
	DefaultFOV = 50

	// TerminalCellAspect is the height of a terminal cell over its width.
	TerminalCellAspect = 2

	nearPlane = 0.1
)

// ScreenPoint is a world point projected onto the screen.
type ScreenPoint struct {
	// X and Y are in screen units (cells or pixels), origin top left.
	X, Y float64

	// Depth is the distance along the view direction. Smaller is nearer.
	Depth float64

	// Scale converts a world length at this depth to screen rows.
	Scale float64
}

// Projector maps world points onto a Width x Height screen through a
// perspective camera.
type Projector struct {
	Width  int
	Height int

	// FOV is the vertical field of view in degrees.
	FOV float32

	// CellAspect is the height of one screen unit over its width: 2 for
	// terminal cells, 1 for pixels.
	CellAspect float32
}

// NewTerminalProjector creates a projector for a grid of terminal cells.
func NewTerminalProjector(width, height int) Projector {
	return Projector{Width: width, Height: height, FOV: DefaultFOV, CellAspect: TerminalCellAspect}
}

// NewImageProjector creates a projector for square pixels.
func NewImageProjector(width, height int) Projector {
	return Projector{Width: width, Height: height, FOV: DefaultFOV, CellAspect: 1}
}

// Project maps p through cam. It returns false for points behind or too
// close to the camera.
func (pr Projector) Project(cam *Camera, p model.Point) (ScreenPoint, bool) {
	pos := cam.Position()
	right, up, forward := cam.Basis()

	rel := toVec3(p).Sub(pos)
	depth := rel.Dot(forward)
	if depth < nearPlane {
		return ScreenPoint{}, false
	}

	focal := 1 / math32.Tan(math32.DegToRad(pr.fov())/2)
	halfH := float32(pr.Height) / 2
	aspect := pr.CellAspect
	if aspect <= 0 {
		aspect = 1
	}

	// Rows per world unit at this depth.
	scale := focal / depth * halfH
	sx := float32(pr.Width)/2 + rel.Dot(right)*scale*aspect
	sy := halfH - rel.Dot(up)*scale

	return ScreenPoint{
		X:     float64(sx),
		Y:     float64(sy),
		Depth: float64(depth),
		Scale: float64(scale),
	}, true
}

// InBounds reports whether sp lies on the screen.
func (pr Projector) InBounds(sp ScreenPoint) bool {
	return sp.X >= 0 && sp.Y >= 0 && sp.X < float64(pr.Width) && sp.Y < float64(pr.Height)
}

func (pr Projector) fov() float32 {
	if pr.FOV <= 0 {
		return DefaultFOV
	}
	return pr.FOV
}
