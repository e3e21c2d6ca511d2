// Package camera implements the fly camera and the projection
// controller.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/obradley/deskscene/pkg/glmath"
)

const (
	defaultYaw   = -90
	defaultPitch = -20
	pitchLimit   = 89

	mouseSensitivity = 0.1
	minSpeed         = 0.1
	maxSpeed         = 10
)

// Direction names a movement axis relative to the camera's current
// orientation.
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
	Up
	Down
)

// Camera is a free-flying camera with yaw/pitch orientation. Vertical
// movement runs along world Y, not the camera's tilted up vector, so
// Q/E always raise and lower the viewpoint.
type Camera struct {
	Position glmath.Vec3
	front    glmath.Vec3
	right    glmath.Vec3
	up       glmath.Vec3
	worldUp  glmath.Vec3

	yaw   float32
	pitch float32
	speed float32
}

// New returns a camera at the scene's home viewpoint, looking down
// toward the desk.
func New() *Camera {
	c := &Camera{
		Position: glmath.Vec3{X: 4, Y: 8, Z: 14},
		worldUp:  glmath.Vec3{Y: 1},
		yaw:      defaultYaw,
		pitch:    defaultPitch,
		speed:    2.5,
	}
	c.updateVectors()
	return c
}

// Rotate applies a mouse delta to yaw and pitch. Pitch is clamped to
// just short of vertical to keep the view basis well defined.
func (c *Camera) Rotate(dx, dy float32) {
	c.yaw += dx * mouseSensitivity
	c.pitch += dy * mouseSensitivity

	if c.pitch > pitchLimit {
		c.pitch = pitchLimit
	}
	if c.pitch < -pitchLimit {
		c.pitch = -pitchLimit
	}
	c.updateVectors()
}

// AdjustSpeed scales movement speed by the scroll delta, clamped so
// the camera can neither stall nor teleport.
func (c *Camera) AdjustSpeed(scrollDY float32) {
	c.speed += scrollDY
	if c.speed < minSpeed {
		c.speed = minSpeed
	}
	if c.speed > maxSpeed {
		c.speed = maxSpeed
	}
}

// Speed returns the current movement speed in units per second.
func (c *Camera) Speed() float32 {
	return c.speed
}

// Move displaces the camera along one of its axes, scaled by speed and
// the frame's delta time.
func (c *Camera) Move(dir Direction, dt float32) {
	v := c.speed * dt
	switch dir {
	case Forward:
		c.Position = c.Position.Add(c.front.Scale(v))
	case Backward:
		c.Position = c.Position.Sub(c.front.Scale(v))
	case Left:
		c.Position = c.Position.Sub(c.right.Scale(v))
	case Right:
		c.Position = c.Position.Add(c.right.Scale(v))
	case Up:
		c.Position = c.Position.Add(c.worldUp.Scale(v))
	case Down:
		c.Position = c.Position.Sub(c.worldUp.Scale(v))
	}
}

// ViewMatrix returns the world-to-view transform.
func (c *Camera) ViewMatrix() glmath.Mat4 {
	return glmath.LookAt(c.Position, c.Position.Add(c.front), c.up)
}

// Front returns the camera's forward direction.
func (c *Camera) Front() glmath.Vec3 {
	return c.front
}

func (c *Camera) updateVectors() {
	yaw := glmath.Radians(c.yaw)
	pitch := glmath.Radians(c.pitch)

	c.front = glmath.Vec3{
		X: math32.Cos(yaw) * math32.Cos(pitch),
		Y: math32.Sin(pitch),
		Z: math32.Sin(yaw) * math32.Cos(pitch),
	}.Normalize()
	c.right = c.front.Cross(c.worldUp).Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}
