package ocr

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

// makeScan creates a small grayscale test image with a dark band,
// standing in for a scanned page.
func makeScan(width, height int) image.Image {
	img := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.White)
		}
	}
	for x := width / 4; x < width/2; x++ {
		for y := height / 4; y < height/2; y++ {
			img.Set(x, y, color.Black)
		}
	}
	return img
}

func TestPrepareUpscalesSmallScans(t *testing.T) {
	data, err := Prepare(makeScan(200, 500))
	if err != nil {
		t.Fatalf("Prepare failed: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Prepare did not produce valid PNG: %v", err)
	}
	if h := img.Bounds().Dy(); h < minPageHeight {
		t.Errorf("Expected upscale to at least %d px, got %d", minPageHeight, h)
	}
}

func TestPrepareKeepsLargeScans(t *testing.T) {
	data, err := Prepare(makeScan(1500, 2400))
	if err != nil {
		t.Fatalf("Prepare failed: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Prepare did not produce valid PNG: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 1500 || b.Dy() != 2400 {
		t.Errorf("Expected dimensions preserved, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestPrepareRejectsEmptyImage(t *testing.T) {
	if _, err := Prepare(image.NewGray(image.Rect(0, 0, 0, 0))); err == nil {
		t.Error("Expected an error for an empty image")
	}
}

func TestClean(t *testing.T) {
	raw := "黃帝者，少典\n之子。　姓公孫\n"
	want := "黃帝者少典之子姓公孫"
	if got := Clean(raw); got != want {
		t.Errorf("Clean = %q, want %q", got, want)
	}
}
