// Package window owns the SDL window and the OpenGL context.
package window

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/obradley/deskscene/internal/logger"
)

func init() {
	// OpenGL and SDL event handling must stay on the main thread
	runtime.LockOSThread()
}

// Window wraps the SDL window and its GL context.
type Window struct {
	sdlWindow *sdl.Window
	glContext sdl.GLContext
	width     int32
	height    int32
}

// New initializes SDL, creates a resizable GL 4.1 core window, and
// loads the OpenGL function pointers. The mouse is captured in
// relative mode for camera control.
func New(title string, width, height int32, fullscreen, vsync bool) (*Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("sdl init: %w", err)
	}

	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 4)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24)

	flags := uint32(sdl.WINDOW_OPENGL | sdl.WINDOW_SHOWN | sdl.WINDOW_RESIZABLE | sdl.WINDOW_ALLOW_HIGHDPI)
	if fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}

	sdlWindow, err := sdl.CreateWindow(
		title,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		width, height,
		flags,
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("creating window: %w", err)
	}

	glContext, err := sdlWindow.GLCreateContext()
	if err != nil {
		sdlWindow.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("creating GL context: %w", err)
	}

	if err := gl.Init(); err != nil {
		sdl.GLDeleteContext(glContext)
		sdlWindow.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("loading GL functions: %w", err)
	}

	if vsync {
		if err := sdl.GLSetSwapInterval(1); err != nil {
			logger.Warn("vsync unavailable", zap.Error(err))
		}
	}

	sdl.SetRelativeMouseMode(true)

	w := &Window{
		sdlWindow: sdlWindow,
		glContext: glContext,
		width:     width,
		height:    height,
	}

	logger.Info("window created",
		zap.Int32("width", width),
		zap.Int32("height", height),
		zap.String("gl_version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("gl_renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	return w, nil
}

// Size returns the current drawable dimensions.
func (w *Window) Size() (int32, int32) {
	return w.width, w.height
}

// Resize records the new window dimensions and updates the viewport.
func (w *Window) Resize(width, height int32) {
	if width <= 0 || height <= 0 {
		return
	}
	w.width = width
	w.height = height
	gl.Viewport(0, 0, width, height)
}

// Swap presents the back buffer.
func (w *Window) Swap() {
	w.sdlWindow.GLSwap()
}

// Elapsed returns seconds since SDL init, monotonic.
func (w *Window) Elapsed() float64 {
	return float64(sdl.GetTicks64()) / 1000.0
}

// Close tears down the GL context, the window, and SDL.
func (w *Window) Close() {
	sdl.SetRelativeMouseMode(false)
	if w.glContext != nil {
		sdl.GLDeleteContext(w.glContext)
		w.glContext = nil
	}
	if w.sdlWindow != nil {
		w.sdlWindow.Destroy()
		w.sdlWindow = nil
	}
	sdl.Quit()
}
