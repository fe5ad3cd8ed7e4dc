package compressor

import (
	"image"
	"math"

	"golang.org/x/image/draw"
)

// fit returns the largest size within bound that keeps the aspect ratio of
// w x h. Images already inside the bound keep their size.
func fit(w, h int, bound Bound) (int, int) {
	if w <= bound.Width && h <= bound.Height {
		return w, h
	}

	scale := math.Min(float64(bound.Width)/float64(w), float64(bound.Height)/float64(h))

	nw := clamp(int(math.Round(float64(w)*scale)), 1, bound.Width)
	nh := clamp(int(math.Round(float64(h)*scale)), 1, bound.Height)

	return nw, nh
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// flatten draws src, scaled to w x h, over an opaque white canvas. JPEG has
// no alpha channel, so transparent pixels would otherwise turn black.
func flatten(src image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)

	b := src.Bounds()
	if b.Dx() == w && b.Dy() == h {
		draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Over)

		return dst
	}

	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)

	return dst
}
