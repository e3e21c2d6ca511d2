// Package input drains SDL events into a per-frame snapshot.
package input

import "github.com/veandco/go-sdl2/sdl"

// State is everything that happened since the previous poll, plus the
// keys currently held. The frame loop reads it once and acts; nothing
// in the engine touches SDL events directly.
type State struct {
	Quit bool

	Resized       bool
	Width, Height int32

	CursorDX float32
	CursorDY float32
	ScrollDY float32

	MoveForward  bool
	MoveBackward bool
	MoveLeft     bool
	MoveRight    bool
	MoveUp       bool
	MoveDown     bool

	SelectPerspective  bool
	SelectOrthographic bool
}

// Poller wraps SDL event pumping.
type Poller struct{}

// NewPoller returns an event poller.
func NewPoller() *Poller {
	return &Poller{}
}

// Poll drains the SDL event queue and samples the keyboard. Mouse Y is
// reversed so that moving the mouse up pitches the camera up.
func (p *Poller) Poll() State {
	var s State

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			s.Quit = true

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN {
				switch e.Keysym.Sym {
				case sdl.K_ESCAPE:
					s.Quit = true
				case sdl.K_p:
					s.SelectPerspective = true
				case sdl.K_o:
					s.SelectOrthographic = true
				}
			}

		case *sdl.MouseMotionEvent:
			s.CursorDX += float32(e.XRel)
			s.CursorDY -= float32(e.YRel)

		case *sdl.MouseWheelEvent:
			s.ScrollDY += float32(e.Y)

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				s.Resized = true
				s.Width = e.Data1
				s.Height = e.Data2
			}
		}
	}

	keys := sdl.GetKeyboardState()
	s.MoveForward = keys[sdl.SCANCODE_W] != 0
	s.MoveBackward = keys[sdl.SCANCODE_S] != 0
	s.MoveLeft = keys[sdl.SCANCODE_A] != 0
	s.MoveRight = keys[sdl.SCANCODE_D] != 0
	s.MoveUp = keys[sdl.SCANCODE_Q] != 0
	s.MoveDown = keys[sdl.SCANCODE_E] != 0

	return s
}
