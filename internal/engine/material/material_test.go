package material

import (
	"testing"

	"github.com/obradley/deskscene/pkg/glmath"
)

func wood() Descriptor {
	return Descriptor{
		Tag:             "wood",
		AmbientColor:    glmath.Vec3{X: 1, Y: 0.9, Z: 0.7},
		AmbientStrength: 0.05,
		DiffuseColor:    glmath.Vec3{X: 1, Y: 0.9, Z: 0.6},
		SpecularColor:   glmath.Vec3{X: 0.5, Y: 0.5, Z: 0.5},
		Shininess:       32,
	}
}

func TestFindRegistered(t *testing.T) {
	tbl := NewTable()
	tbl.Register(wood())

	d, ok := tbl.Find("wood")
	if !ok {
		t.Fatal("Find(wood) should succeed")
	}
	if d.Shininess != 32 {
		t.Errorf("shininess=%f, want 32", d.Shininess)
	}
}

func TestFindMissing(t *testing.T) {
	tbl := NewTable()
	tbl.Register(wood())

	if _, ok := tbl.Find("ceramic"); ok {
		t.Error("Find(ceramic) should miss")
	}
}

func TestFindOrDefaultSubstitutes(t *testing.T) {
	tbl := NewTable()
	tbl.Register(wood())

	d := tbl.FindOrDefault("ceramic")
	if d != Default() {
		t.Errorf("missing tag should resolve to the default descriptor, got %+v", d)
	}
}

func TestDuplicateFirstWins(t *testing.T) {
	tbl := NewTable()
	first := wood()
	second := wood()
	second.Shininess = 999
	tbl.Register(first)
	tbl.Register(second)

	d, _ := tbl.Find("wood")
	if d.Shininess != 32 {
		t.Errorf("first registration should win, got shininess %f", d.Shininess)
	}
	if tbl.Len() != 2 {
		t.Errorf("Len=%d, want 2 (duplicates are kept)", tbl.Len())
	}
}

func TestDefaultIsNeutralWhite(t *testing.T) {
	d := Default()
	white := glmath.Vec3{X: 1, Y: 1, Z: 1}

	if d.AmbientColor != white || d.DiffuseColor != white || d.SpecularColor != white {
		t.Errorf("default colors should be white: %+v", d)
	}
	if d.AmbientStrength != 0.05 || d.Shininess != 32 {
		t.Errorf("default scalars: strength=%f shininess=%f", d.AmbientStrength, d.Shininess)
	}
}
