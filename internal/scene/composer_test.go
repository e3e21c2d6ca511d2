package scene

import (
	"testing"

	"github.com/obradley/deskscene/internal/engine/material"
	"github.com/obradley/deskscene/internal/engine/mesh"
	"github.com/obradley/deskscene/internal/engine/shader"
	"github.com/obradley/deskscene/internal/engine/shadow"
	"github.com/obradley/deskscene/internal/engine/texture"
	"github.com/obradley/deskscene/pkg/glmath"
)

type nullUploader struct{}

func (nullUploader) Upload(pixels []byte, width, height, channels int) (uint32, error) {
	return 1, nil
}
func (nullUploader) Bind(unit int, handle uint32) {}
func (nullUploader) Delete(handle uint32)         {}

// degradedComposer builds a composer whose GL-backed collaborators are
// all in their unset state: programs with handle 0, an unloaded mesh
// library, an uninitialized shadow engine.
func degradedComposer() *Composer {
	gw := shader.NewGateway(nil, nil)
	return NewComposer(
		gw,
		mesh.NewLibrary(),
		texture.NewRegistry(func(string) ([]byte, int, int, int, error) {
			return make([]byte, 4), 1, 1, 4, nil
		}, nullUploader{}),
		material.NewTable(),
		shadow.NewEngine(nil),
		"textures",
	)
}

func TestComposerHoldsFullObjectList(t *testing.T) {
	c := degradedComposer()
	if len(c.Objects()) != len(Objects()) {
		t.Errorf("composer holds %d objects, want %d", len(c.Objects()), len(Objects()))
	}
}

func TestCastShadowsSurvivesDegradedPipeline(t *testing.T) {
	// With no GL context every collaborator must no-op; the traversal
	// itself must still complete.
	c := degradedComposer()
	c.CastShadows()
}

func TestRenderDepthPassNoOpWithoutShadowTarget(t *testing.T) {
	c := degradedComposer()
	// Engine was never initialized, Valid() is false
	c.RenderDepthPass(glmath.Identity())
}
