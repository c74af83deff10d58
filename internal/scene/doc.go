// Package scene computes everything about the 3D view that does not depend
// on how it is drawn: the scene center, the orbiting camera, the perspective
// projector, entity layout per tier, the floating sphere animation, the
// genre fade, the palette and hit testing.
//
// World coordinates are model.Point (float64). Camera math runs on
// cogentcore math32 vectors and quaternions.
package scene
