package transform

import (
	"math"
	"testing"

	"github.com/obradley/deskscene/pkg/glmath"
)

func TestComposeModelIdentity(t *testing.T) {
	m := ComposeModel(glmath.Vec3{X: 1, Y: 1, Z: 1}, 0, 0, 0, glmath.Vec3{})
	id := glmath.Identity()

	for i := 0; i < 16; i++ {
		if math.Abs(float64(m[i]-id[i])) > 1e-6 {
			t.Fatalf("unit transform should be identity, element %d: got %f", i, m[i])
		}
	}
}

func TestComposeModelOrder(t *testing.T) {
	// Scale 2, then translate (5,0,0). Scale must apply before
	// translation: the origin lands exactly at (5,0,0), not (10,0,0).
	m := ComposeModel(glmath.Vec3{X: 2, Y: 2, Z: 2}, 0, 0, 0, glmath.Vec3{X: 5})
	center := m.TransformPoint(glmath.Vec3{})

	if center != (glmath.Vec3{X: 5}) {
		t.Errorf("origin: got %v, want (5,0,0)", center)
	}

	// A unit point doubles then shifts
	p := m.TransformPoint(glmath.Vec3{X: 1})
	if p != (glmath.Vec3{X: 7}) {
		t.Errorf("unit point: got %v, want (7,0,0)", p)
	}
}

func TestComposeModelRotationDegrees(t *testing.T) {
	// 90 degrees around Y sends +X to -Z
	m := ComposeModel(glmath.Vec3{X: 1, Y: 1, Z: 1}, 0, 90, 0, glmath.Vec3{})
	p := m.TransformPoint(glmath.Vec3{X: 1})

	if math.Abs(float64(p.X)) > 1e-6 || math.Abs(float64(p.Z+1)) > 1e-6 {
		t.Errorf("rotY(90): got %v, want (0,0,-1)", p)
	}
}

func TestComposeModelRotationBeforeTranslation(t *testing.T) {
	// Rotation happens in local space: translate afterward, so a
	// rotated point still ends up offset by the full translation.
	m := ComposeModel(glmath.Vec3{X: 1, Y: 1, Z: 1}, 0, 90, 0, glmath.Vec3{Y: 3})
	p := m.TransformPoint(glmath.Vec3{X: 1})

	if math.Abs(float64(p.Y-3)) > 1e-6 {
		t.Errorf("translation should apply after rotation, got %v", p)
	}
}
