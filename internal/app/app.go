// Package app wires the engine together and runs the frame loop.
package app

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/obradley/deskscene/internal/config"
	"github.com/obradley/deskscene/internal/engine/camera"
	"github.com/obradley/deskscene/internal/engine/imagedec"
	"github.com/obradley/deskscene/internal/engine/input"
	"github.com/obradley/deskscene/internal/engine/lighting"
	"github.com/obradley/deskscene/internal/engine/material"
	"github.com/obradley/deskscene/internal/engine/mesh"
	"github.com/obradley/deskscene/internal/engine/shader"
	"github.com/obradley/deskscene/internal/engine/shadow"
	"github.com/obradley/deskscene/internal/engine/texture"
	"github.com/obradley/deskscene/internal/engine/window"
	"github.com/obradley/deskscene/internal/logger"
	"github.com/obradley/deskscene/internal/scene"
)

const windowTitle = "Desk Scene"

// App holds the running renderer.
type App struct {
	window     *window.Window
	poller     *input.Poller
	gateway    *shader.Gateway
	composer   *scene.Composer
	camera     *camera.Camera
	projection *camera.Projection
	shadows    *shadow.Engine

	bounds   lighting.Bounds
	lastTime float64
}

// New creates the window, builds the pipeline, and prepares the scene.
// A window or context failure is the one fatal setup error; shader and
// texture problems degrade and are logged.
func New(cfg *config.Config) (*App, error) {
	win, err := window.New(
		windowTitle,
		int32(cfg.Graphics.Width), int32(cfg.Graphics.Height),
		cfg.Graphics.Fullscreen, cfg.Graphics.VSync,
	)
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}

	shaderDir := cfg.Assets.ShaderDir
	main, err := shader.LoadProgram(
		filepath.Join(shaderDir, "main.vert"),
		filepath.Join(shaderDir, "main.frag"),
	)
	if err != nil {
		logger.Error("main shader failed, rendering degraded", zap.Error(err))
	}
	depth, err := shader.LoadProgram(
		filepath.Join(shaderDir, "depth.vert"),
		filepath.Join(shaderDir, "depth.frag"),
	)
	if err != nil {
		logger.Error("depth shader failed, shadows degraded", zap.Error(err))
	}

	gateway := shader.NewGateway(main, depth)
	shadows := shadow.NewEngine(depth)
	textures := texture.NewRegistry(imagedec.Decode, &texture.GLUploader{})
	composer := scene.NewComposer(
		gateway,
		mesh.NewLibrary(),
		textures,
		material.NewTable(),
		shadows,
		cfg.Assets.TextureDir,
	)

	cam := camera.New()
	proj := camera.NewProjection(int32(cfg.Graphics.Width), int32(cfg.Graphics.Height), main)

	a := &App{
		window:     win,
		poller:     input.NewPoller(),
		gateway:    gateway,
		composer:   composer,
		camera:     cam,
		projection: proj,
		shadows:    shadows,
		bounds:     lighting.SceneBounds(),
	}

	composer.Prepare()
	a.lastTime = win.Elapsed()

	return a, nil
}

// Run drives the frame loop until quit is requested.
func (a *App) Run() {
	for {
		now := a.window.Elapsed()
		dt := float32(now - a.lastTime)
		a.lastTime = now

		st := a.poller.Poll()
		if st.Quit {
			return
		}
		a.applyInput(st, dt)

		a.renderFrame()
		a.window.Swap()
	}
}

func (a *App) applyInput(st input.State, dt float32) {
	if st.Resized {
		a.window.Resize(st.Width, st.Height)
		a.projection.SetScreenDimensions(st.Width, st.Height)
	}

	if st.CursorDX != 0 || st.CursorDY != 0 {
		a.camera.Rotate(st.CursorDX, st.CursorDY)
	}
	if st.ScrollDY != 0 {
		a.camera.AdjustSpeed(st.ScrollDY)
	}

	if st.MoveForward {
		a.camera.Move(camera.Forward, dt)
	}
	if st.MoveBackward {
		a.camera.Move(camera.Backward, dt)
	}
	if st.MoveLeft {
		a.camera.Move(camera.Left, dt)
	}
	if st.MoveRight {
		a.camera.Move(camera.Right, dt)
	}
	if st.MoveUp {
		a.camera.Move(camera.Up, dt)
	}
	if st.MoveDown {
		a.camera.Move(camera.Down, dt)
	}

	if st.SelectPerspective {
		a.projection.SetMode(camera.Perspective)
	}
	if st.SelectOrthographic {
		a.projection.SetMode(camera.Orthographic)
	}
}

func (a *App) renderFrame() {
	rig := lighting.Dramatic()
	lightSpace := lighting.LightSpaceMatrix(rig.Lights[0], a.bounds)

	a.composer.RenderDepthPass(lightSpace)

	clearFrame()
	a.composer.RenderColor(a.camera.ViewMatrix(), lightSpace, a.camera.Position)
}

// Close tears everything down in reverse construction order.
func (a *App) Close() {
	a.composer.Destroy()
	a.gateway.Main.Destroy()
	a.gateway.Depth.Destroy()
	a.window.Close()
}
