package texture

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// GLUploader uploads pixel data as 2D textures with repeat wrapping,
// linear filtering, and mipmaps.
type GLUploader struct{}

// Upload creates the texture object and returns its handle.
func (GLUploader) Upload(pixels []byte, width, height, channels int) (uint32, error) {
	var internalFormat int32
	var format uint32
	switch channels {
	case 3:
		internalFormat, format = gl.RGB8, gl.RGB
	case 4:
		internalFormat, format = gl.RGBA8, gl.RGBA
	default:
		return 0, fmt.Errorf("unsupported channel count %d", channels)
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		internalFormat,
		int32(width),
		int32(height),
		0,
		format,
		gl.UNSIGNED_BYTE,
		gl.Ptr(pixels),
	)
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return id, nil
}

// Bind binds a texture handle to the numbered texture unit.
func (GLUploader) Bind(unit int, handle uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(gl.TEXTURE_2D, handle)
}

// Delete frees the texture object.
func (GLUploader) Delete(handle uint32) {
	gl.DeleteTextures(1, &handle)
}
