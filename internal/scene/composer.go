// Package scene assembles the desk arrangement and renders it through
// the two-pass shadow pipeline.
package scene

import (
	"path/filepath"

	"go.uber.org/zap"

	"github.com/obradley/deskscene/internal/engine/lighting"
	"github.com/obradley/deskscene/internal/engine/material"
	"github.com/obradley/deskscene/internal/engine/mesh"
	"github.com/obradley/deskscene/internal/engine/shader"
	"github.com/obradley/deskscene/internal/engine/shadow"
	"github.com/obradley/deskscene/internal/engine/texture"
	"github.com/obradley/deskscene/internal/engine/transform"
	"github.com/obradley/deskscene/internal/logger"
	"github.com/obradley/deskscene/pkg/glmath"
)

// ShadowMapUnit is the texture unit reserved for the shadow map,
// above the registry's object texture slots.
const ShadowMapUnit = 15

// Composer owns the draw list and renders it for both passes. It is
// the shadow engine's Caster: the depth pass replays exactly the
// geometry the color pass draws.
type Composer struct {
	gateway   *shader.Gateway
	meshes    *mesh.Library
	textures  *texture.Registry
	materials *material.Table
	shadows   *shadow.Engine

	objects    []Object
	textureDir string
}

// NewComposer wires the composer to its collaborators. Call Prepare
// once a GL context exists.
func NewComposer(
	gateway *shader.Gateway,
	meshes *mesh.Library,
	textures *texture.Registry,
	materials *material.Table,
	shadows *shadow.Engine,
	textureDir string,
) *Composer {
	return &Composer{
		gateway:    gateway,
		meshes:     meshes,
		textures:   textures,
		materials:  materials,
		shadows:    shadows,
		objects:    Objects(),
		textureDir: textureDir,
	}
}

// Prepare loads meshes, textures, and materials, applies the baseline
// light rig, and initializes the shadow target. Texture failures are
// logged inside the registry and the affected objects fall back to
// solid color.
func (c *Composer) Prepare() {
	c.meshes.Load()

	for _, t := range TextureManifest() {
		c.textures.Load(filepath.Join(c.textureDir, t.File), t.Tag)
	}
	c.textures.BindAll()

	RegisterMaterials(c.materials)

	lighting.Baseline().Apply(c.gateway.Main)
	c.shadows.Init()

	logger.Info("scene prepared",
		zap.Int("objects", len(c.objects)),
		zap.Int("textures", c.textures.Count()),
		zap.Int("materials", c.materials.Len()),
		zap.Bool("shadows", c.shadows.Valid()),
	)
}

// Objects exposes the draw list.
func (c *Composer) Objects() []Object {
	return c.objects
}

// CastShadows replays every object's transform and shape for the depth
// pass. Surface state is irrelevant here; only geometry writes depth.
func (c *Composer) CastShadows() {
	for _, o := range c.objects {
		c.gateway.SetModelMatrix(modelMatrix(o))
		c.meshes.Draw(o.Mesh)
	}
}

// RenderDepthPass runs the shadow pass over the full object list.
func (c *Composer) RenderDepthPass(lightSpace glmath.Mat4) {
	c.shadows.RenderDepthPass(lightSpace, c)
}

// RenderColor draws the scene with full surface state. The dramatic
// light override is re-applied every frame: uniform state persists
// across frames and the baseline rig is only pipeline validation.
func (c *Composer) RenderColor(view glmath.Mat4, lightSpace glmath.Mat4, viewPosition glmath.Vec3) {
	main := c.gateway.Main
	main.Use()

	lighting.Dramatic().Apply(main)

	main.SetMat4("view", view)
	main.SetVec3("viewPosition", viewPosition)
	main.SetMat4("lightSpaceMatrix", lightSpace)

	c.shadows.BindTexture(ShadowMapUnit)
	main.SetSampler("shadowMap", ShadowMapUnit)

	for _, o := range c.objects {
		c.drawObject(o)
	}
}

func (c *Composer) drawObject(o Object) {
	main := c.gateway.Main

	main.SetInt("bUseLighting", boolInt(o.UseLighting))

	textured := false
	if o.TextureTag != "" {
		if slot, ok := c.textures.Bind(o.TextureTag); ok {
			main.SetSampler("objectTexture", int32(slot))
			main.SetVec2("UVscale", o.UVScale[0], o.UVScale[1])
			textured = true
		}
	}
	main.SetInt("bUseTexture", boolInt(textured))
	if !textured {
		main.SetVec4("objectColor", o.Color)
	}

	m := c.materials.FindOrDefault(o.MaterialTag)
	main.SetVec3("material.ambientColor", m.AmbientColor)
	main.SetFloat("material.ambientStrength", m.AmbientStrength)
	main.SetVec3("material.diffuseColor", m.DiffuseColor)
	main.SetVec3("material.specularColor", m.SpecularColor)
	main.SetFloat("material.shininess", m.Shininess)

	c.gateway.SetModelMatrix(modelMatrix(o))
	c.meshes.Draw(o.Mesh)
}

// Destroy releases scene-owned GPU resources.
func (c *Composer) Destroy() {
	c.textures.ReleaseAll()
	c.meshes.Destroy()
	c.shadows.Destroy()
}

func modelMatrix(o Object) glmath.Mat4 {
	return transform.ComposeModel(o.Scale, o.Rotation.X, o.Rotation.Y, o.Rotation.Z, o.Position)
}

func boolInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
