package shader

import "github.com/obradley/deskscene/pkg/glmath"

// UniformTarget receives per-object matrices during a render pass.
type UniformTarget interface {
	SetMat4(name string, m glmath.Mat4)
}

// Gateway fronts the main color program and the depth-only program.
// The model matrix must reach both: the depth pass and the color pass
// have to rasterize identical geometry or shadows drift off the
// objects that cast them.
type Gateway struct {
	Main  *Program
	Depth *Program

	targets []UniformTarget
}

// NewGateway wires the two render passes behind one interface.
func NewGateway(main, depth *Program) *Gateway {
	g := &Gateway{Main: main, Depth: depth}
	if main != nil {
		g.targets = append(g.targets, main)
	}
	if depth != nil {
		g.targets = append(g.targets, depth)
	}
	return g
}

// AddTarget registers an additional pass that needs per-object model
// matrices (for example a second shadow pass).
func (g *Gateway) AddTarget(t UniformTarget) {
	g.targets = append(g.targets, t)
}

// SetModelMatrix writes the model matrix to every registered target.
func (g *Gateway) SetModelMatrix(m glmath.Mat4) {
	for _, t := range g.targets {
		t.SetMat4("model", m)
	}
}
