// Package imagedec turns image files into raw pixel data for texture
// upload. Decoding is delegated to bild/imgio; this package only maps
// the decoded form onto the channel layouts the texture registry
// understands.
package imagedec

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/imgio"
)

// Decode loads the image at path and returns tightly packed pixel rows,
// bottom row first to match the OpenGL texture origin, along with the
// image dimensions and channel count. The channel count reflects the
// source image: RGBA-family images report 4, YCbCr (JPEG) reports 3,
// grayscale reports 1. Callers decide which counts they accept.
func Decode(path string) (pixels []byte, width, height, channels int, err error) {
	img, err := imgio.Open(path)
	if err != nil {
		return nil, 0, 0, 0, fmt.Errorf("decoding %s: %w", path, err)
	}

	b := img.Bounds()
	width, height = b.Dx(), b.Dy()

	switch src := img.(type) {
	case *image.NRGBA:
		return flipRows(src.Pix, src.Stride, width*4, height), width, height, 4, nil
	case *image.RGBA:
		return flipRows(src.Pix, src.Stride, width*4, height), width, height, 4, nil
	case *image.Gray:
		return flipRows(src.Pix, src.Stride, width, height), width, height, 1, nil
	case *image.YCbCr:
		return ycbcrToRGB(src, width, height), width, height, 3, nil
	default:
		return genericToRGBA(img, width, height), width, height, 4, nil
	}
}

// flipRows copies rowBytes from each stride-aligned row, last row first.
func flipRows(pix []byte, stride, rowBytes, height int) []byte {
	out := make([]byte, rowBytes*height)
	for y := 0; y < height; y++ {
		src := pix[y*stride : y*stride+rowBytes]
		dst := out[(height-1-y)*rowBytes:]
		copy(dst, src)
	}
	return out
}

func ycbcrToRGB(src *image.YCbCr, width, height int) []byte {
	out := make([]byte, width*height*3)
	b := src.Bounds()
	for y := 0; y < height; y++ {
		row := out[(height-1-y)*width*3:]
		for x := 0; x < width; x++ {
			r, g, bb, _ := src.YCbCrAt(b.Min.X+x, b.Min.Y+y).RGBA()
			row[x*3+0] = byte(r >> 8)
			row[x*3+1] = byte(g >> 8)
			row[x*3+2] = byte(bb >> 8)
		}
	}
	return out
}

func genericToRGBA(img image.Image, width, height int) []byte {
	out := make([]byte, width*height*4)
	b := img.Bounds()
	for y := 0; y < height; y++ {
		row := out[(height-1-y)*width*4:]
		for x := 0; x < width; x++ {
			r, g, bb, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			row[x*4+0] = byte(r >> 8)
			row[x*4+1] = byte(g >> 8)
			row[x*4+2] = byte(bb >> 8)
			row[x*4+3] = byte(a >> 8)
		}
	}
	return out
}
