package scene

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Texture is a decoded image ready for upload: tightly packed 8-bit pixels,
// bottom row first, either 3 or 4 channels.
type Texture struct {
	Tag      string
	Path     string
	Width    int
	Height   int
	Channels int
	Pixels   []byte

	// Handle is the GPU object name once uploaded, 0 before.
	Handle uint32
	// Slot is the texture unit the texture is bound to, -1 before binding.
	Slot int
}

// LoadTexture decodes an image file into a Texture. Rows are flipped so the
// first pixel row is the bottom of the image, matching the UV origin the
// meshes use. Single-channel images are rejected.
func LoadTexture(path, tag string) (*Texture, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open texture %s: %w", path, err)
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode texture %s: %w", path, err)
	}

	channels := channelCount(img)
	if channels < 3 {
		return nil, fmt.Errorf("texture %s: unsupported %s channel layout", path, format)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)

	pixels := make([]byte, width*height*channels)
	for y := 0; y < height; y++ {
		srcRow := rgba.Pix[y*rgba.Stride : y*rgba.Stride+width*4]
		dstRow := pixels[(height-1-y)*width*channels:]
		for x := 0; x < width; x++ {
			copy(dstRow[x*channels:x*channels+channels], srcRow[x*4:x*4+channels])
		}
	}

	return &Texture{
		Tag:      tag,
		Path:     path,
		Width:    width,
		Height:   height,
		Channels: channels,
		Pixels:   pixels,
		Slot:     -1,
	}, nil
}

// channelCount maps the decoder's native pixel layout to the number of
// channels kept for upload. Opaque formats drop the alpha byte.
func channelCount(img image.Image) int {
	switch img.(type) {
	case *image.Gray, *image.Gray16, *image.Alpha, *image.Alpha16:
		return 1
	case *image.YCbCr, *image.CMYK:
		return 3
	default:
		return 4
	}
}
