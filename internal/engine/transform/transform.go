// Package transform composes model matrices for scene objects.
package transform

import "github.com/obradley/deskscene/pkg/glmath"

// ComposeModel builds a model matrix from a scale, Euler rotation in
// degrees, and a world position. The composition order is fixed at
// Translate * RotateX * RotateY * RotateZ * Scale; every object in the
// scene depends on this order and it must not vary per object.
func ComposeModel(scale glmath.Vec3, rotXDeg, rotYDeg, rotZDeg float32, position glmath.Vec3) glmath.Mat4 {
	t := glmath.Translate(position.X, position.Y, position.Z)
	rx := glmath.RotateX(glmath.Radians(rotXDeg))
	ry := glmath.RotateY(glmath.Radians(rotYDeg))
	rz := glmath.RotateZ(glmath.Radians(rotZDeg))
	s := glmath.Scale(scale.X, scale.Y, scale.Z)

	return t.Mul(rx).Mul(ry).Mul(rz).Mul(s)
}
