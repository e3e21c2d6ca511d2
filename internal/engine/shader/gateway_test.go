package shader

import (
	"testing"

	"github.com/obradley/deskscene/pkg/glmath"
)

type recordingTarget struct {
	mats map[string]glmath.Mat4
}

func newRecordingTarget() *recordingTarget {
	return &recordingTarget{mats: make(map[string]glmath.Mat4)}
}

func (r *recordingTarget) SetMat4(name string, m glmath.Mat4) {
	r.mats[name] = m
}

func TestSetModelMatrixReachesEveryTarget(t *testing.T) {
	g := NewGateway(nil, nil)
	a := newRecordingTarget()
	b := newRecordingTarget()
	g.AddTarget(a)
	g.AddTarget(b)

	m := glmath.Translate(1, 2, 3)
	g.SetModelMatrix(m)

	if a.mats["model"] != m {
		t.Errorf("first target: got %v", a.mats["model"])
	}
	if b.mats["model"] != m {
		t.Errorf("second target: got %v", b.mats["model"])
	}
	if a.mats["model"] != b.mats["model"] {
		t.Error("targets should receive the identical matrix")
	}
}

func TestNewGatewaySkipsNilPrograms(t *testing.T) {
	g := NewGateway(nil, nil)
	if len(g.targets) != 0 {
		t.Errorf("nil programs should not register as targets, got %d", len(g.targets))
	}
}

func TestUnsetProgramSettersAreNoOps(t *testing.T) {
	// A program that failed to build has handle 0; every setter must
	// return without touching GL (no context exists in tests).
	p := &Program{locations: make(map[string]int32)}

	p.Use()
	p.SetMat4("model", glmath.Identity())
	p.SetVec3("viewPosition", glmath.Vec3{X: 1})
	p.SetVec4("objectColor", glmath.Vec4{W: 1})
	p.SetVec2("UVscale", 1, 1)
	p.SetFloat("material.shininess", 32)
	p.SetInt("bUseTexture", 1)
	p.SetSampler("objectTexture", 0)
	p.Destroy()

	if p.Handle() != 0 {
		t.Errorf("handle=%d, want 0", p.Handle())
	}
}

func TestNilProgramSettersAreNoOps(t *testing.T) {
	var p *Program

	p.Use()
	p.SetMat4("model", glmath.Identity())
	p.SetInt("bUseLighting", 1)
	p.Destroy()

	if p.Handle() != 0 {
		t.Errorf("nil handle=%d, want 0", p.Handle())
	}
}

func TestGatewayWithUnsetProgramsIsSafe(t *testing.T) {
	main := &Program{locations: make(map[string]int32)}
	depth := &Program{locations: make(map[string]int32)}
	g := NewGateway(main, depth)

	// Must not panic without a GL context
	g.SetModelMatrix(glmath.Translate(5, 0, 0))
}
