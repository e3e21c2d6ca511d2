package lighting

import "github.com/obradley/deskscene/pkg/glmath"

// Bounds is an axis-aligned box around the shadow-receiving scene.
type Bounds struct {
	Min, Max glmath.Vec3
}

// Center returns the center point of the bounds.
func (b Bounds) Center() glmath.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Radius returns the half-diagonal.
func (b Bounds) Radius() float32 {
	return b.Max.Sub(b.Min).Scale(0.5).Length()
}

// SceneBounds covers the desk arrangement: the floor slab, the back
// wall, and everything standing on the desk.
func SceneBounds() Bounds {
	return Bounds{
		Min: glmath.Vec3{X: -31.2, Y: -5.1, Z: -21.6},
		Max: glmath.Vec3{X: 31.2, Y: 21.1, Z: 11.3},
	}
}

// LightSpaceMatrix builds the view-projection transform from the
// light's point of view, orthographic and sized to enclose the given
// bounds. Deterministic for a fixed rig and bounds.
func LightSpaceMatrix(l Descriptor, b Bounds) glmath.Mat4 {
	center := b.Center()
	radius := b.Radius()

	up := glmath.Vec3{Y: 1}
	dir := center.Sub(l.Position).Normalize()
	if dir.Y > 0.99 || dir.Y < -0.99 {
		up = glmath.Vec3{Z: 1}
	}

	view := glmath.LookAt(l.Position, center, up)

	padding := radius * 0.1
	half := radius + padding
	near := float32(0.1)
	far := l.Position.Distance(center) + radius + padding

	proj := glmath.Ortho(-half, half, -half, half, near, far)

	return proj.Mul(view)
}
