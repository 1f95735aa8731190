package main

import (
	"image"
	"os"
	"path/filepath"

	eb "github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/exp/constraints"
)

func f64[N constraints.Integer | constraints.Float](n N) float64 {
	return float64(n)
}

func f32[N constraints.Integer | constraints.Float](n N) float32 {
	return float32(n)
}

func CursorFPt() FPoint {
	mx, my := eb.CursorPosition()
	return FPt(f64(mx), f64(my))
}

// RelativePath resolves path relative to the executable directory.
func RelativePath(path string) (string, error) {
	exePath, err := os.Executable()
	if err != nil {
		return "", err
	}

	return filepath.Join(filepath.Dir(exePath), path), nil
}

func ImageImageFromEbImage(img *eb.Image) image.Image {
	bounds := img.Bounds()

	out := image.NewRGBA(RectWH(bounds.Dx(), bounds.Dy()))
	img.ReadPixels(out.Pix)

	return out
}
