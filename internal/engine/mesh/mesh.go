// Package mesh generates and draws the primitive shapes the scene is
// assembled from.
package mesh

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/obradley/deskscene/internal/logger"
)

// Kind identifies a primitive shape.
type Kind int

const (
	Plane Kind = iota
	Box
	Cylinder
	Cone
	Torus
	kindCount
)

func (k Kind) String() string {
	switch k {
	case Plane:
		return "plane"
	case Box:
		return "box"
	case Cylinder:
		return "cylinder"
	case Cone:
		return "cone"
	case Torus:
		return "torus"
	}
	return "unknown"
}

// Vertex is the interleaved layout shared by every primitive:
// position(3) + normal(3) + texcoord(2), 32 bytes.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// Data is a generated primitive before GPU upload.
type Data struct {
	Vertices []Vertex
	Indices  []uint32
}

type buffers struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

// Library uploads each primitive once and draws it by kind. Every
// scene object instances one of these five shapes; per-object size and
// placement come from the model matrix, not the geometry.
type Library struct {
	shapes [kindCount]buffers
	loaded bool
}

// NewLibrary creates an empty library. Call Load once a GL context
// exists.
func NewLibrary() *Library {
	return &Library{}
}

// Load generates all primitives and uploads them to the GPU.
func (l *Library) Load() {
	if l.loaded {
		return
	}
	l.shapes[Plane] = upload(PlaneData())
	l.shapes[Box] = upload(BoxData())
	l.shapes[Cylinder] = upload(CylinderData(defaultSegments))
	l.shapes[Cone] = upload(ConeData(defaultSegments))
	l.shapes[Torus] = upload(TorusData(defaultSegments, defaultSegments))
	l.loaded = true

	for k := Kind(0); k < kindCount; k++ {
		logger.Debug("mesh uploaded",
			zap.Stringer("kind", k),
			zap.Int32("indices", l.shapes[k].indexCount),
		)
	}
}

func upload(d Data) buffers {
	var b buffers
	b.indexCount = int32(len(d.Indices))

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(d.Vertices)*int(unsafe.Sizeof(Vertex{})), unsafe.Pointer(&d.Vertices[0]), gl.STATIC_DRAW)

	gl.GenBuffers(1, &b.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(d.Indices)*4, unsafe.Pointer(&d.Indices[0]), gl.STATIC_DRAW)

	stride := int32(unsafe.Sizeof(Vertex{}))

	// Position (location 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)

	// Normal (location 1) - offset 12
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 12)

	// TexCoord (location 2) - offset 24
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 24)

	gl.BindVertexArray(0)
	return b
}

// Draw renders one primitive with the currently bound program.
func (l *Library) Draw(k Kind) {
	if !l.loaded || k < 0 || k >= kindCount {
		return
	}
	b := l.shapes[k]
	gl.BindVertexArray(b.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, b.indexCount, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

// Destroy releases all GPU buffers.
func (l *Library) Destroy() {
	if !l.loaded {
		return
	}
	for k := Kind(0); k < kindCount; k++ {
		b := &l.shapes[k]
		gl.DeleteVertexArrays(1, &b.vao)
		gl.DeleteBuffers(1, &b.vbo)
		gl.DeleteBuffers(1, &b.ebo)
		*b = buffers{}
	}
	l.loaded = false
}
