// Package shadow renders the depth-only pass into an off-screen target
// for shadow mapping.
package shadow

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/obradley/deskscene/internal/engine/shader"
	"github.com/obradley/deskscene/internal/logger"
	"github.com/obradley/deskscene/pkg/glmath"
)

// Resolution is the fixed shadow map size (width = height).
const Resolution = 1024

// Caster replays the scene's shadow-casting geometry. The scene
// composer implements it with the same object list the color pass
// draws, so both passes rasterize identical geometry.
type Caster interface {
	CastShadows()
}

type state int

const (
	stateIdle state = iota
	stateDepthRendering
)

// Engine owns the shadow framebuffer and drives the depth pass.
type Engine struct {
	fbo          uint32
	depthTexture uint32
	depth        *shader.Program
	st           state
	valid        bool
	prevViewport [4]int32
}

// NewEngine creates an engine that renders through the given
// depth-only program. Call Init once a GL context exists.
func NewEngine(depth *shader.Program) *Engine {
	return &Engine{depth: depth}
}

// Init allocates the framebuffer and the depth texture. Areas outside
// the shadow frustum sample the white border and are treated as fully
// lit. An incomplete framebuffer is logged and leaves the engine in a
// degraded mode where depth passes are skipped; rendering continues
// without valid shadows.
func (e *Engine) Init() {
	gl.GenFramebuffers(1, &e.fbo)

	gl.GenTextures(1, &e.depthTexture)
	gl.BindTexture(gl.TEXTURE_2D, e.depthTexture)
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.DEPTH_COMPONENT24,
		Resolution,
		Resolution,
		0,
		gl.DEPTH_COMPONENT,
		gl.FLOAT,
		nil,
	)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_BORDER)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_BORDER)

	borderColor := []float32{1, 1, 1, 1}
	gl.TexParameterfv(gl.TEXTURE_2D, gl.TEXTURE_BORDER_COLOR, &borderColor[0])

	gl.BindFramebuffer(gl.FRAMEBUFFER, e.fbo)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.TEXTURE_2D, e.depthTexture, 0)

	// Depth only, no color buffer
	gl.DrawBuffer(gl.NONE)
	gl.ReadBuffer(gl.NONE)

	if status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER); status != gl.FRAMEBUFFER_COMPLETE {
		logger.Error("shadow framebuffer incomplete, shadows disabled",
			zap.Uint32("status", status),
		)
		e.valid = false
	} else {
		e.valid = true
	}

	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// Valid reports whether the depth target can be rendered to.
func (e *Engine) Valid() bool {
	return e.valid
}

// RenderDepthPass renders the caster's geometry into the depth target
// from the light's point of view. Front faces are culled during the
// pass to reduce shadow acne. Viewport, culling, and framebuffer
// bindings are restored on exit.
func (e *Engine) RenderDepthPass(lightSpace glmath.Mat4, caster Caster) {
	if !e.valid || e.st != stateIdle {
		return
	}
	e.st = stateDepthRendering

	gl.GetIntegerv(gl.VIEWPORT, &e.prevViewport[0])
	gl.Viewport(0, 0, Resolution, Resolution)
	gl.BindFramebuffer(gl.FRAMEBUFFER, e.fbo)
	gl.Clear(gl.DEPTH_BUFFER_BIT)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.FRONT)

	e.depth.Use()
	e.depth.SetMat4("lightSpaceMatrix", lightSpace)

	caster.CastShadows()

	gl.CullFace(gl.BACK)
	gl.Disable(gl.CULL_FACE)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(e.prevViewport[0], e.prevViewport[1], e.prevViewport[2], e.prevViewport[3])

	e.st = stateIdle
}

// BindTexture binds the depth texture to the numbered texture unit for
// shadow sampling in the color pass.
func (e *Engine) BindTexture(unit int32) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(gl.TEXTURE_2D, e.depthTexture)
}

// Destroy releases the framebuffer and depth texture.
func (e *Engine) Destroy() {
	if e.fbo != 0 {
		gl.DeleteFramebuffers(1, &e.fbo)
		e.fbo = 0
	}
	if e.depthTexture != 0 {
		gl.DeleteTextures(1, &e.depthTexture)
		e.depthTexture = 0
	}
	e.valid = false
}
