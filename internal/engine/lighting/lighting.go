// Package lighting holds the scene's two-light rig and its shader
// uniform contract.
package lighting

import (
	"fmt"
	"math"

	"github.com/obradley/deskscene/pkg/glmath"
)

// ActiveLights is the number of lights the rig drives. Index 0 is the
// primary spot-capable light, index 1 the point accent.
const ActiveLights = 2

// Descriptor describes one light source. Cutoff angles are stored as
// cosines, ready for the fragment shader's cone test.
type Descriptor struct {
	Position          glmath.Vec3
	AmbientColor      glmath.Vec3
	DiffuseColor      glmath.Vec3
	SpecularColor     glmath.Vec3
	FocalStrength     float32
	SpecularIntensity float32

	IsSpot        bool
	SpotDirection glmath.Vec3
	Cutoff        float32
	OuterCutoff   float32

	Constant  float32
	Linear    float32
	Quadratic float32
}

// Uniforms is the slice of the shader program the rig writes through.
type Uniforms interface {
	SetVec3(name string, v glmath.Vec3)
	SetFloat(name string, v float32)
	SetInt(name string, v int32)
}

// Rig holds exactly two light descriptors.
type Rig struct {
	Lights [ActiveLights]Descriptor
}

// Baseline returns the preparation-time rig: a balanced overhead
// spotlight and a cool blue accent. It exists to validate the pipeline
// before the first real frame; the render pass overrides it.
func Baseline() Rig {
	return Rig{Lights: [ActiveLights]Descriptor{
		{
			Position:          glmath.Vec3{X: 1, Y: 12, Z: 2},
			AmbientColor:      glmath.Vec3{X: 0.4, Y: 0.4, Z: 0.4},
			DiffuseColor:      glmath.Vec3{X: 8, Y: 8, Z: 8},
			SpecularColor:     glmath.Vec3{X: 5, Y: 5, Z: 5},
			FocalStrength:     64,
			SpecularIntensity: 1,
			IsSpot:            true,
			SpotDirection:     glmath.Vec3{X: -0.1, Y: -1, Z: -0.2}.Normalize(),
			Cutoff:            cosDeg(25),
			OuterCutoff:       cosDeg(45),
			Constant:          1,
		},
		accentLight(),
	}}
}

// Dramatic returns the per-frame rig: the primary light moved low and
// tightened to a hard 15/25 degree cone for strong object shadows. The
// accent light is unchanged.
func Dramatic() Rig {
	r := Baseline()
	r.Lights[0].Position = glmath.Vec3{X: 2, Y: 8, Z: -3}
	r.Lights[0].DiffuseColor = glmath.Vec3{X: 25, Y: 25, Z: 25}
	r.Lights[0].SpotDirection = glmath.Vec3{X: -0.3, Y: -1, Z: 0.4}.Normalize()
	r.Lights[0].Cutoff = cosDeg(15)
	r.Lights[0].OuterCutoff = cosDeg(25)
	return r
}

func accentLight() Descriptor {
	return Descriptor{
		Position:          glmath.Vec3{X: -5, Y: 6, Z: 8},
		AmbientColor:      glmath.Vec3{X: 0.1, Y: 0.1, Z: 0.3},
		DiffuseColor:      glmath.Vec3{X: 0.3, Y: 0.5, Z: 1},
		SpecularColor:     glmath.Vec3{X: 0.5, Y: 0.7, Z: 1},
		FocalStrength:     32,
		SpecularIntensity: 0.8,
		Constant:          1,
	}
}

// Apply writes every descriptor to the lightSources[i].* uniforms.
// Spot-only fields are written for spot lights and explicitly cleared
// for the rest, so cone state from an earlier frame can never leak
// onto a point light.
func (r Rig) Apply(u Uniforms) {
	for i, l := range r.Lights {
		base := fmt.Sprintf("lightSources[%d]", i)
		u.SetVec3(base+".position", l.Position)
		u.SetVec3(base+".ambientColor", l.AmbientColor)
		u.SetVec3(base+".diffuseColor", l.DiffuseColor)
		u.SetVec3(base+".specularColor", l.SpecularColor)
		u.SetFloat(base+".focalStrength", l.FocalStrength)
		u.SetFloat(base+".specularIntensity", l.SpecularIntensity)

		if l.IsSpot {
			u.SetVec3(base+".spotDirection", l.SpotDirection.Normalize())
			u.SetFloat(base+".cutoff", l.Cutoff)
			u.SetFloat(base+".outerCutoff", l.OuterCutoff)
		} else {
			// cos(theta) >= -1 always holds, so a cleared cone never
			// rejects a fragment
			u.SetVec3(base+".spotDirection", glmath.Vec3{})
			u.SetFloat(base+".cutoff", -1)
			u.SetFloat(base+".outerCutoff", -1)
		}

		u.SetFloat(base+".constant", l.Constant)
		u.SetFloat(base+".linear", l.Linear)
		u.SetFloat(base+".quadratic", l.Quadratic)
	}
	u.SetInt("numActiveLights", ActiveLights)
}

func cosDeg(deg float32) float32 {
	return float32(math.Cos(float64(glmath.Radians(deg))))
}
