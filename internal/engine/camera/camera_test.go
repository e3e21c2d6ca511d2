package camera

import (
	"math"
	"testing"

	"github.com/obradley/deskscene/pkg/glmath"
)

func TestNewCameraHome(t *testing.T) {
	c := New()
	if c.Position != (glmath.Vec3{X: 4, Y: 8, Z: 14}) {
		t.Errorf("home position: got %v", c.Position)
	}
	// Default pitch looks down
	if c.Front().Y >= 0 {
		t.Errorf("camera should start looking down, front=%v", c.Front())
	}
}

func TestPitchClamp(t *testing.T) {
	c := New()
	// Drag far past vertical
	c.Rotate(0, 100000)

	if c.pitch > pitchLimit {
		t.Errorf("pitch=%f, want <= %d", c.pitch, pitchLimit)
	}
	c.Rotate(0, -200000)
	if c.pitch < -pitchLimit {
		t.Errorf("pitch=%f, want >= -%d", c.pitch, pitchLimit)
	}
}

func TestSpeedClamp(t *testing.T) {
	c := New()
	c.AdjustSpeed(1000)
	if c.Speed() != maxSpeed {
		t.Errorf("speed=%f, want %f", c.Speed(), float32(maxSpeed))
	}
	c.AdjustSpeed(-1000)
	if c.Speed() != minSpeed {
		t.Errorf("speed=%f, want %f", c.Speed(), float32(minSpeed))
	}
}

func TestMoveForwardFollowsFront(t *testing.T) {
	c := New()
	before := c.Position
	c.Move(Forward, 1)

	delta := c.Position.Sub(before).Normalize()
	front := c.Front()
	if math.Abs(float64(delta.Dot(front))-1) > 1e-5 {
		t.Errorf("forward move direction %v should match front %v", delta, front)
	}
}

func TestVerticalMoveIsWorldAligned(t *testing.T) {
	c := New()
	before := c.Position
	c.Move(Up, 1)

	delta := c.Position.Sub(before)
	if delta.X != 0 || delta.Z != 0 || delta.Y <= 0 {
		t.Errorf("Up should move along world +Y only, got %v", delta)
	}
}

func TestMoveScalesWithSpeedAndDt(t *testing.T) {
	c := New()
	before := c.Position
	c.Move(Forward, 0.5)
	dist := c.Position.Distance(before)

	want := c.Speed() * 0.5
	if math.Abs(float64(dist-want)) > 1e-5 {
		t.Errorf("moved %f, want %f", dist, want)
	}
}

func TestViewMatrixMapsPositionToOrigin(t *testing.T) {
	c := New()
	p := c.ViewMatrix().TransformPoint(c.Position)
	if math.Abs(float64(p.X)) > 1e-4 || math.Abs(float64(p.Y)) > 1e-4 || math.Abs(float64(p.Z)) > 1e-4 {
		t.Errorf("view matrix should map the eye to the origin, got %v", p)
	}
}
