package shader

import (
	"fmt"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/obradley/deskscene/pkg/glmath"
)

// Program wraps one GPU program and caches its uniform locations.
// Every setter is a no-op when the underlying handle is unset, so a
// program that failed to build degrades to silence instead of crashing
// mid-frame.
type Program struct {
	id        uint32
	locations map[string]int32
}

// LoadProgram reads GLSL sources from disk and compiles them. On
// compile or link failure the returned Program has an unset handle and
// the error carries the driver's info log; callers are expected to log
// it and continue rendering degraded.
func LoadProgram(vertPath, fragPath string) (*Program, error) {
	p := &Program{locations: make(map[string]int32)}

	vertSrc, err := os.ReadFile(vertPath)
	if err != nil {
		return p, fmt.Errorf("reading vertex shader %s: %w", vertPath, err)
	}
	fragSrc, err := os.ReadFile(fragPath)
	if err != nil {
		return p, fmt.Errorf("reading fragment shader %s: %w", fragPath, err)
	}

	id, err := CompileProgram(string(vertSrc), string(fragSrc))
	if err != nil {
		return p, fmt.Errorf("building program %s + %s: %w", vertPath, fragPath, err)
	}
	p.id = id
	return p, nil
}

// Handle returns the raw GL program handle (0 when unset).
func (p *Program) Handle() uint32 {
	if p == nil {
		return 0
	}
	return p.id
}

// Use makes this program current.
func (p *Program) Use() {
	if p == nil || p.id == 0 {
		return
	}
	gl.UseProgram(p.id)
}

// Destroy deletes the GL program.
func (p *Program) Destroy() {
	if p == nil || p.id == 0 {
		return
	}
	gl.DeleteProgram(p.id)
	p.id = 0
}

func (p *Program) loc(name string) int32 {
	if l, ok := p.locations[name]; ok {
		return l
	}
	l := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
	p.locations[name] = l
	return l
}

// SetMat4 sets a mat4 uniform.
func (p *Program) SetMat4(name string, m glmath.Mat4) {
	if p == nil || p.id == 0 {
		return
	}
	gl.ProgramUniformMatrix4fv(p.id, p.loc(name), 1, false, &m[0])
}

// SetVec3 sets a vec3 uniform.
func (p *Program) SetVec3(name string, v glmath.Vec3) {
	if p == nil || p.id == 0 {
		return
	}
	gl.ProgramUniform3f(p.id, p.loc(name), v.X, v.Y, v.Z)
}

// SetVec4 sets a vec4 uniform.
func (p *Program) SetVec4(name string, v glmath.Vec4) {
	if p == nil || p.id == 0 {
		return
	}
	gl.ProgramUniform4f(p.id, p.loc(name), v.X, v.Y, v.Z, v.W)
}

// SetVec2 sets a vec2 uniform.
func (p *Program) SetVec2(name string, x, y float32) {
	if p == nil || p.id == 0 {
		return
	}
	gl.ProgramUniform2f(p.id, p.loc(name), x, y)
}

// SetFloat sets a float uniform.
func (p *Program) SetFloat(name string, v float32) {
	if p == nil || p.id == 0 {
		return
	}
	gl.ProgramUniform1f(p.id, p.loc(name), v)
}

// SetInt sets an int (or bool) uniform.
func (p *Program) SetInt(name string, v int32) {
	if p == nil || p.id == 0 {
		return
	}
	gl.ProgramUniform1i(p.id, p.loc(name), v)
}

// SetSampler points a sampler2D uniform at a texture unit.
func (p *Program) SetSampler(name string, unit int32) {
	p.SetInt(name, unit)
}
