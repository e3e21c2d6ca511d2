package camera

import "github.com/obradley/deskscene/pkg/glmath"

// Mode selects between the two projection styles.
type Mode int

const (
	Perspective Mode = iota
	Orthographic
)

const (
	fovYDeg   = 45
	nearPlane = 0.1
	farPlane  = 100
	orthoHalf = 20
)

// Target receives recomputed projection matrices. The uniform gateway
// satisfies it.
type Target interface {
	SetMat4(name string, m glmath.Mat4)
}

// Projection owns the projection matrix and pushes it to its target
// whenever the mode or screen size changes. Toggling modes is
// idempotent: switching to the mode already active recomputes the same
// matrix bit for bit.
type Projection struct {
	mode   Mode
	width  int32
	height int32
	matrix glmath.Mat4
	target Target
}

// NewProjection starts in perspective mode at the given screen size.
func NewProjection(width, height int32, target Target) *Projection {
	p := &Projection{
		mode:   Perspective,
		width:  width,
		height: height,
		target: target,
	}
	p.recompute()
	return p
}

// Mode returns the active projection mode.
func (p *Projection) Mode() Mode {
	return p.mode
}

// Matrix returns the current projection matrix.
func (p *Projection) Matrix() glmath.Mat4 {
	return p.matrix
}

// SetMode switches projection style and pushes the new matrix.
func (p *Projection) SetMode(m Mode) {
	p.mode = m
	p.recompute()
}

// SetScreenDimensions updates the aspect ratio after a window resize
// and pushes the new matrix.
func (p *Projection) SetScreenDimensions(width, height int32) {
	if width <= 0 || height <= 0 {
		return
	}
	p.width = width
	p.height = height
	p.recompute()
}

func (p *Projection) recompute() {
	aspect := float32(p.width) / float32(p.height)
	switch p.mode {
	case Orthographic:
		p.matrix = glmath.Ortho(-orthoHalf*aspect, orthoHalf*aspect, -orthoHalf, orthoHalf, nearPlane, farPlane)
	default:
		p.matrix = glmath.Perspective(glmath.Radians(fovYDeg), aspect, nearPlane, farPlane)
	}
	if p.target != nil {
		p.target.SetMat4("projection", p.matrix)
	}
}
