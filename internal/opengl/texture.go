package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"room-renderer/scene"
)

// TextureUploader moves decoded textures into GL texture objects and binds
// them to the units the registry assigned.
type TextureUploader struct{}

func NewTextureUploader() *TextureUploader {
	return &TextureUploader{}
}

// Upload creates a GL texture object from the decoded pixels, with mipmaps
// and repeat wrapping. The internal format follows the channel count.
func (u *TextureUploader) Upload(texture *scene.Texture) error {
	var internalFormat int32
	var format uint32
	switch texture.Channels {
	case 3:
		internalFormat = gl.RGB8
		format = gl.RGB
	case 4:
		internalFormat = gl.RGBA8
		format = gl.RGBA
	default:
		return fmt.Errorf("texture %q: unsupported channel count %d", texture.Tag, texture.Channels)
	}

	var handle uint32
	gl.GenTextures(1, &handle)
	gl.BindTexture(gl.TEXTURE_2D, handle)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	// Rows are tightly packed regardless of width.
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, internalFormat,
		int32(texture.Width), int32(texture.Height), 0,
		format, gl.UNSIGNED_BYTE, gl.Ptr(texture.Pixels))
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	texture.Handle = handle
	return nil
}

// Bind attaches the texture to its assigned unit for the rest of the frame
// loop.
func (u *TextureUploader) Bind(texture *scene.Texture) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(texture.Slot))
	gl.BindTexture(gl.TEXTURE_2D, texture.Handle)
}

// Release deletes the GL texture object.
func (u *TextureUploader) Release(texture *scene.Texture) {
	if texture.Handle == 0 {
		return
	}
	gl.DeleteTextures(1, &texture.Handle)
	texture.Handle = 0
}
