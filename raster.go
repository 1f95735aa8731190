package main

import (
	"image"
	"runtime"
	"sync"
)

// Software rasterizer for the background kernel. Every pixel is an
// independent kernel call, so rows are just fanned out across workers
// with nothing to lock. Pixels are sampled at their centers.

func RenderBackgroundPixels(
	buf []byte,
	mode BackgroundMode,
	pal Palette,
	width, height int,
	t float64,
) []byte {
	if len(buf) != width*height*4 {
		buf = make([]byte, width*height*4)
	}

	workers := min(runtime.NumCPU(), height)

	rowsPerWorker := (height + workers - 1) / workers

	var wg sync.WaitGroup

	for start := 0; start < height; start += rowsPerWorker {
		end := min(start+rowsPerWorker, height)

		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()

			for y := y0; y < y1; y++ {
				for x := 0; x < width; x++ {
					uv := FPt(
						(f64(x)+0.5)/f64(width),
						(f64(y)+0.5)/f64(height),
					)

					c := BackgroundColorAt(mode, pal, uv, t)

					i := (y*width + x) * 4
					buf[i+0] = uint8(c[0]*255 + 0.5)
					buf[i+1] = uint8(c[1]*255 + 0.5)
					buf[i+2] = uint8(c[2]*255 + 0.5)
					buf[i+3] = uint8(c[3]*255 + 0.5)
				}
			}
		}(start, end)
	}

	wg.Wait()

	return buf
}

// RenderBackgroundImage is RenderBackgroundPixels into a fresh image.
// The kernel always returns alpha 1 so premultiplied and straight
// alpha are the same bytes.
func RenderBackgroundImage(
	mode BackgroundMode,
	pal Palette,
	width, height int,
	t float64,
) *image.NRGBA {
	img := image.NewNRGBA(RectWH(width, height))
	img.Pix = RenderBackgroundPixels(img.Pix, mode, pal, width, height, t)
	return img
}
