package imagedec

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writePNG(t *testing.T, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "img.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDecodeRGBAPNG(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})

	pixels, w, h, channels, err := Decode(writePNG(t, img))
	if err != nil {
		t.Fatal(err)
	}
	if w != 2 || h != 2 || channels != 4 {
		t.Errorf("got %dx%d/%d channels, want 2x2/4", w, h, channels)
	}
	if len(pixels) != 2*2*4 {
		t.Errorf("pixel buffer length %d, want 16", len(pixels))
	}
}

func TestDecodeFlipsRows(t *testing.T) {
	// Top row red, bottom row blue. After the flip the buffer starts
	// with the blue (bottom) row.
	img := image.NewNRGBA(image.Rect(0, 0, 1, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(0, 1, color.NRGBA{B: 255, A: 255})

	pixels, _, _, _, err := Decode(writePNG(t, img))
	if err != nil {
		t.Fatal(err)
	}
	if pixels[2] != 255 {
		t.Errorf("first row should be the image's bottom (blue), got %v", pixels[:4])
	}
	if pixels[4] != 255 {
		t.Errorf("second row should be the image's top (red), got %v", pixels[4:8])
	}
}

func TestDecodeGrayscalePNG(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 3, 3))

	_, w, h, channels, err := Decode(writePNG(t, img))
	if err != nil {
		t.Fatal(err)
	}
	if channels != 1 {
		t.Errorf("grayscale channels=%d, want 1", channels)
	}
	if w != 3 || h != 3 {
		t.Errorf("got %dx%d, want 3x3", w, h)
	}
}

func TestDecodeJPEG(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			src.SetRGBA(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}

	path := filepath.Join(t.TempDir(), "img.jpg")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := jpeg.Encode(f, src, nil); err != nil {
		t.Fatal(err)
	}
	f.Close()

	pixels, w, h, channels, err := Decode(path)
	if err != nil {
		t.Fatal(err)
	}
	if channels != 3 {
		t.Errorf("JPEG channels=%d, want 3", channels)
	}
	if len(pixels) != w*h*3 {
		t.Errorf("pixel buffer length %d, want %d", len(pixels), w*h*3)
	}
}

func TestDecodeMissingFile(t *testing.T) {
	if _, _, _, _, err := Decode(filepath.Join(t.TempDir(), "absent.png")); err == nil {
		t.Error("missing file should return an error")
	}
}
