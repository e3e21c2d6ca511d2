// Package texture owns the GPU textures of the scene, keyed by string
// tags. The registry is small and populated once during scene
// preparation; lookups are linear scans where the first match wins.
package texture

import (
	"go.uber.org/zap"

	"github.com/obradley/deskscene/internal/logger"
)

// Capacity is the fixed number of texture slots. The scene needs nine;
// unit 15 is reserved for the shadow map.
const Capacity = 16

// Entry pairs a tag with its GPU texture handle.
type Entry struct {
	Tag    string
	Handle uint32
}

// DecodeFunc turns an image path into raw pixels plus dimensions and
// channel count.
type DecodeFunc func(path string) (pixels []byte, width, height, channels int, err error)

// Uploader abstracts the GPU side of texture management so registry
// semantics can be exercised without a GL context.
type Uploader interface {
	Upload(pixels []byte, width, height, channels int) (uint32, error)
	Bind(unit int, handle uint32)
	Delete(handle uint32)
}

// Registry holds loaded textures in registration order. The slot index
// of an entry doubles as its texture unit.
type Registry struct {
	decode  DecodeFunc
	gpu     Uploader
	entries [Capacity]Entry
	count   int
}

// NewRegistry creates an empty registry using the given decoder and
// GPU uploader.
func NewRegistry(decode DecodeFunc, gpu Uploader) *Registry {
	return &Registry{decode: decode, gpu: gpu}
}

// Load decodes the image at path and uploads it under the given tag.
// Only 3- and 4-channel images are accepted. Failures are logged and
// leave the registry unchanged; the scene renders without the texture.
func (r *Registry) Load(path, tag string) bool {
	if r.count >= Capacity {
		logger.Warn("texture registry full", zap.String("tag", tag), zap.Int("capacity", Capacity))
		return false
	}

	pixels, width, height, channels, err := r.decode(path)
	if err != nil {
		logger.Warn("texture decode failed", zap.String("path", path), zap.Error(err))
		return false
	}
	if channels != 3 && channels != 4 {
		logger.Warn("unsupported texture format",
			zap.String("path", path),
			zap.Int("channels", channels),
		)
		return false
	}

	handle, err := r.gpu.Upload(pixels, width, height, channels)
	if err != nil {
		logger.Warn("texture upload failed", zap.String("path", path), zap.Error(err))
		return false
	}

	r.entries[r.count] = Entry{Tag: tag, Handle: handle}
	r.count++

	logger.Info("texture loaded",
		zap.String("tag", tag),
		zap.String("path", path),
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Int("channels", channels),
		zap.Int("slot", r.count-1),
	)
	return true
}

// Count returns the number of loaded textures.
func (r *Registry) Count() int {
	return r.count
}

// BindAll binds every loaded texture to the unit matching its slot
// index, so shaders can address textures by registry order.
func (r *Registry) BindAll() {
	for i := 0; i < r.count; i++ {
		r.gpu.Bind(i, r.entries[i].Handle)
	}
}

// Bind activates the unit of the tagged texture and binds it, returning
// the slot for sampler wiring. Returns false for unknown tags.
func (r *Registry) Bind(tag string) (int, bool) {
	slot, ok := r.FindSlot(tag)
	if !ok {
		return 0, false
	}
	r.gpu.Bind(slot, r.entries[slot].Handle)
	return slot, true
}

// FindHandle returns the GPU handle for a tag. First match wins.
func (r *Registry) FindHandle(tag string) (uint32, bool) {
	for i := 0; i < r.count; i++ {
		if r.entries[i].Tag == tag {
			return r.entries[i].Handle, true
		}
	}
	return 0, false
}

// FindSlot returns the slot index for a tag. First match wins.
func (r *Registry) FindSlot(tag string) (int, bool) {
	for i := 0; i < r.count; i++ {
		if r.entries[i].Tag == tag {
			return i, true
		}
	}
	return 0, false
}

// ReleaseAll frees every GPU handle and resets the registry. Safe to
// call on an already-empty registry.
func (r *Registry) ReleaseAll() {
	for i := 0; i < r.count; i++ {
		r.gpu.Delete(r.entries[i].Handle)
		r.entries[i] = Entry{}
	}
	r.count = 0
}
