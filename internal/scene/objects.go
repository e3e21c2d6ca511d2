package scene

import (
	"github.com/obradley/deskscene/internal/engine/material"
	"github.com/obradley/deskscene/internal/engine/mesh"
	"github.com/obradley/deskscene/pkg/glmath"
)

// Texture tags. Materials are registered under the same tags, so one
// string resolves both the surface image and its reflectance.
const (
	DeskTexture      = "deskTexture"
	LaptopTexture    = "laptopTex"
	ScreenTexture    = "screenTex"
	MugTexture       = "mugTex"
	HandleTexture    = "handleTex"
	FloorTexture     = "floorTex"
	WallTexture      = "wallTex"
	LampShadeTexture = "lampShadeTex"
	LampBaseTexture  = "lampBaseTex"
)

// TextureManifest maps every texture tag to its image file, relative
// to the configured texture directory.
func TextureManifest() []struct{ Tag, File string } {
	return []struct{ Tag, File string }{
		{DeskTexture, "rusticwood.jpg"},
		{LaptopTexture, "stainless.jpg"},
		{ScreenTexture, "wallpaper.jpg"},
		{MugTexture, "tilesf2.jpg"},
		{HandleTexture, "stainedglass.jpg"},
		{FloorTexture, "pavers.jpg"},
		{WallTexture, "backdrop.jpg"},
		{LampShadeTexture, "circular-brushed-gold-texture.jpg"},
		{LampBaseTexture, "stainless_end.jpg"},
	}
}

// Keyboard layout constants. 60 keys in a 5x12 grid on the laptop
// base.
const (
	keyWidth   = 0.385
	keyHeight  = 0.11
	keyDepth   = 0.33
	keyRows    = 5
	keyCols    = 12
	keySpacing = 0.055
	keyStartX  = -2.31
	keyY       = 0.902
	keyStartZ  = -1.1
)

// Object is one draw call in the scene: a primitive shape, its
// transform, and its surface parameters. The same list drives both the
// depth pass (transform and shape only) and the color pass.
type Object struct {
	Name     string
	Mesh     mesh.Kind
	Scale    glmath.Vec3
	Rotation glmath.Vec3 // degrees, applied X then Y then Z
	Position glmath.Vec3

	TextureTag  string // empty means solid color
	UVScale     [2]float32
	MaterialTag string
	Color       glmath.Vec4
	UseLighting bool
}

// RegisterMaterials seeds the table with the seven surface types the
// scene uses, keyed by texture tag.
func RegisterMaterials(t *material.Table) {
	const (
		dramaticAmbient = 0.05
		metalAmbient    = 0.03
	)
	t.Register(material.Descriptor{
		Tag:             DeskTexture,
		AmbientColor:    glmath.Vec3{X: 1, Y: 0.9, Z: 0.7},
		AmbientStrength: dramaticAmbient,
		DiffuseColor:    glmath.Vec3{X: 1, Y: 0.9, Z: 0.6},
		SpecularColor:   glmath.Vec3{X: 0.5, Y: 0.5, Z: 0.5},
		Shininess:       32,
	})
	t.Register(material.Descriptor{
		Tag:             MugTexture,
		AmbientColor:    glmath.Vec3{X: 0.9, Y: 0.9, Z: 1},
		AmbientStrength: dramaticAmbient,
		DiffuseColor:    glmath.Vec3{X: 0.8, Y: 0.8, Z: 0.9},
		SpecularColor:   glmath.Vec3{X: 1, Y: 1, Z: 1},
		Shininess:       128,
	})
	t.Register(material.Descriptor{
		Tag:             LaptopTexture,
		AmbientColor:    glmath.Vec3{X: 0.3, Y: 0.3, Z: 0.3},
		AmbientStrength: metalAmbient,
		DiffuseColor:    glmath.Vec3{X: 0.4, Y: 0.4, Z: 0.4},
		SpecularColor:   glmath.Vec3{X: 0.7, Y: 0.7, Z: 0.7},
		Shininess:       256,
	})
	stone := material.Descriptor{
		AmbientColor:    glmath.Vec3{X: 0.3, Y: 0.3, Z: 0.3},
		AmbientStrength: metalAmbient,
		DiffuseColor:    glmath.Vec3{X: 0.6, Y: 0.6, Z: 0.6},
		SpecularColor:   glmath.Vec3{X: 0.3, Y: 0.3, Z: 0.3},
		Shininess:       64,
	}
	stone.Tag = FloorTexture
	t.Register(stone)
	stone.Tag = WallTexture
	t.Register(stone)
	t.Register(material.Descriptor{
		Tag:             LampShadeTexture,
		AmbientColor:    glmath.Vec3{X: 1, Y: 0.8, Z: 0.4},
		AmbientStrength: 0.3,
		DiffuseColor:    glmath.Vec3{X: 0.9, Y: 0.7, Z: 0.3},
		SpecularColor:   glmath.Vec3{X: 1, Y: 0.9, Z: 0.6},
		Shininess:       256,
	})
	t.Register(material.Descriptor{
		Tag:             LampBaseTexture,
		AmbientColor:    glmath.Vec3{X: 0.3, Y: 0.3, Z: 0.3},
		AmbientStrength: metalAmbient,
		DiffuseColor:    glmath.Vec3{X: 0.4, Y: 0.4, Z: 0.4},
		SpecularColor:   glmath.Vec3{X: 0.7, Y: 0.7, Z: 0.7},
		Shininess:       256,
	})
}

// Objects returns the scene's draw list in render order. The list is
// fixed content: same output on every call.
func Objects() []Object {
	defaultUV := [2]float32{1, 1}

	objects := []Object{
		{
			Name:        "desk",
			Mesh:        mesh.Box,
			Scale:       glmath.Vec3{X: 38, Y: 0.475, Z: 23.75},
			Position:    glmath.Vec3{X: 0, Y: -0.5, Z: -5},
			TextureTag:  DeskTexture,
			UVScale:     defaultUV,
			MaterialTag: DeskTexture,
			UseLighting: true,
		},
		{
			Name:        "mug body",
			Mesh:        mesh.Cylinder,
			Scale:       glmath.Vec3{X: 0.575, Y: 1.725, Z: 0.575},
			Rotation:    glmath.Vec3{X: 15, Y: 20},
			Position:    glmath.Vec3{X: 5, Y: 0.75, Z: -2},
			TextureTag:  MugTexture,
			UVScale:     defaultUV,
			MaterialTag: MugTexture,
			UseLighting: true,
		},
		{
			Name:     "mug handle",
			Mesh:     mesh.Torus,
			Scale:    glmath.Vec3{X: 0.36225, Y: 0.36225, Z: 0.36225},
			Rotation: glmath.Vec3{Z: 90},
			Position: glmath.Vec3{X: 5.5, Y: 1.5, Z: -2},
			// stained glass image over the ceramic reflectance
			TextureTag:  HandleTexture,
			UVScale:     defaultUV,
			MaterialTag: MugTexture,
			UseLighting: true,
		},
		{
			Name:        "laptop base",
			Mesh:        mesh.Box,
			Scale:       glmath.Vec3{X: 6.6, Y: 0.11, Z: 4.4},
			Position:    glmath.Vec3{X: 0, Y: 0.88, Z: -0.55},
			TextureTag:  LaptopTexture,
			UVScale:     [2]float32{2, 2},
			MaterialTag: LaptopTexture,
			UseLighting: true,
		},
		{
			Name:        "laptop screen",
			Mesh:        mesh.Box,
			Scale:       glmath.Vec3{X: 6.6, Y: 3.3, Z: 0.11},
			Rotation:    glmath.Vec3{X: -45},
			Position:    glmath.Vec3{X: 0, Y: 1.76, Z: -2.2},
			TextureTag:  LaptopTexture,
			UVScale:     [2]float32{2, 2},
			MaterialTag: LaptopTexture,
			UseLighting: true,
		},
		{
			Name:        "display panel",
			Mesh:        mesh.Box,
			Scale:       glmath.Vec3{X: 6.05, Y: 3.08, Z: 0.055},
			Rotation:    glmath.Vec3{X: -45},
			Position:    glmath.Vec3{X: 0, Y: 1.76, Z: -2.145},
			TextureTag:  ScreenTexture,
			UVScale:     defaultUV,
			MaterialTag: LaptopTexture,
			UseLighting: true,
		},
	}

	objects = append(objects, keyboardKeys()...)

	objects = append(objects,
		Object{
			Name:        "lamp base",
			Mesh:        mesh.Cylinder,
			Scale:       glmath.Vec3{X: 1, Y: 0.4, Z: 1},
			Position:    glmath.Vec3{X: -6, Y: 0.2, Z: 2},
			TextureTag:  LampBaseTexture,
			UVScale:     defaultUV,
			MaterialTag: LampBaseTexture,
			UseLighting: true,
		},
		Object{
			Name:        "lamp stem",
			Mesh:        mesh.Cylinder,
			Scale:       glmath.Vec3{X: 0.12, Y: 2.8, Z: 0.12},
			Position:    glmath.Vec3{X: -6, Y: 0.5, Z: 2},
			TextureTag:  LampBaseTexture,
			UVScale:     defaultUV,
			MaterialTag: LampBaseTexture,
			UseLighting: true,
		},
		Object{
			Name:        "lamp shade",
			Mesh:        mesh.Cone,
			Scale:       glmath.Vec3{X: 1.4, Y: 1.2, Z: 1.4},
			Position:    glmath.Vec3{X: -6, Y: 2.5, Z: 2},
			TextureTag:  LampShadeTexture,
			UVScale:     defaultUV,
			MaterialTag: LampShadeTexture,
			UseLighting: true,
		},
		Object{
			Name:        "floor",
			Mesh:        mesh.Box,
			Scale:       glmath.Vec3{X: 62.4, Y: 0.13, Z: 32.5},
			Position:    glmath.Vec3{X: 0, Y: -5, Z: -5},
			TextureTag:  FloorTexture,
			UVScale:     [2]float32{4, 4},
			MaterialTag: FloorTexture,
			UseLighting: true,
		},
		wall(),
	)

	return objects
}

// wall sits on the floor slab: its center is half the wall height
// above the floor's top face.
func wall() Object {
	const (
		floorY      = -5.0
		floorHeight = 0.13
		wallHeight  = 26.0
	)
	wallY := float32(floorY + floorHeight/2 + wallHeight/2)

	return Object{
		Name:        "wall",
		Mesh:        mesh.Box,
		Scale:       glmath.Vec3{X: 62.4, Y: wallHeight, Z: 0.65},
		Position:    glmath.Vec3{X: 0, Y: wallY, Z: -21.25},
		TextureTag:  WallTexture,
		UVScale:     [2]float32{2, 2},
		MaterialTag: WallTexture,
		UseLighting: true,
	}
}

// keyboardKeys lays out the 60 keys as untextured dark boxes on the
// laptop base.
func keyboardKeys() []Object {
	keys := make([]Object, 0, keyRows*keyCols)
	for r := 0; r < keyRows; r++ {
		for c := 0; c < keyCols; c++ {
			keys = append(keys, Object{
				Name:        "keyboard key",
				Mesh:        mesh.Box,
				Scale:       glmath.Vec3{X: keyWidth, Y: keyHeight, Z: keyDepth},
				Position: glmath.Vec3{
					X: keyStartX + float32(c)*(keyWidth+keySpacing),
					Y: keyY,
					Z: keyStartZ + float32(r)*(keyDepth+keySpacing),
				},
				Color:       glmath.Vec4{X: 0.15, Y: 0.15, Z: 0.15, W: 1},
				UseLighting: true,
			})
		}
	}
	return keys
}
