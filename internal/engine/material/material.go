// Package material maps string tags to surface reflectance properties.
package material

import "github.com/obradley/deskscene/pkg/glmath"

// Descriptor holds the reflectance coefficients of one surface type.
// Immutable once registered.
type Descriptor struct {
	Tag             string
	AmbientColor    glmath.Vec3
	AmbientStrength float32
	DiffuseColor    glmath.Vec3
	SpecularColor   glmath.Vec3
	Shininess       float32
}

// Default is the descriptor substituted when a lookup misses: neutral
// white with the standard wood shininess. A missing material is a
// cosmetic degradation, never an error.
func Default() Descriptor {
	white := glmath.Vec3{X: 1, Y: 1, Z: 1}
	return Descriptor{
		AmbientColor:    white,
		AmbientStrength: 0.05,
		DiffuseColor:    white,
		SpecularColor:   white,
		Shininess:       32,
	}
}

// Table stores descriptors in registration order. Duplicate tags are
// allowed; the first registration wins at lookup time.
type Table struct {
	materials []Descriptor
}

// NewTable creates an empty material table.
func NewTable() *Table {
	return &Table{}
}

// Register appends a descriptor. No duplicate checking.
func (t *Table) Register(d Descriptor) {
	t.materials = append(t.materials, d)
}

// Find returns the first descriptor registered under tag.
func (t *Table) Find(tag string) (Descriptor, bool) {
	for _, m := range t.materials {
		if m.Tag == tag {
			return m, true
		}
	}
	return Descriptor{}, false
}

// FindOrDefault resolves a tag, substituting the default descriptor on
// a miss.
func (t *Table) FindOrDefault(tag string) Descriptor {
	if d, ok := t.Find(tag); ok {
		return d
	}
	return Default()
}

// Len returns the number of registered descriptors.
func (t *Table) Len() int {
	return len(t.materials)
}
