package entity

import "image"

// maskAlphaThreshold: pixels more opaque than this count as solid.
const maskAlphaThreshold = 127

// Mask is a bitmap of the solid pixels of a sprite, used for per-pixel
// collision where a bounding-box test is too coarse.
type Mask struct {
	w, h int
	bits []bool
}

// MaskFromImage derives a mask from an image's alpha channel.
func MaskFromImage(img image.Image) *Mask {
	b := img.Bounds()
	m := &Mask{w: b.Dx(), h: b.Dy(), bits: make([]bool, b.Dx()*b.Dy())}
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			_, _, _, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			m.bits[y*m.w+x] = a>>8 > maskAlphaThreshold
		}
	}
	return m
}

func (m *Mask) solid(x, y int) bool {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return false
	}
	return m.bits[y*m.w+x]
}

// Overlap reports whether any solid pixel of o, placed at offset (dx, dy)
// relative to m's origin, lands on a solid pixel of m.
func (m *Mask) Overlap(o *Mask, dx, dy int) bool {
	x0 := max(0, dx)
	y0 := max(0, dy)
	x1 := min(m.w, dx+o.w)
	y1 := min(m.h, dy+o.h)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if m.bits[y*m.w+x] && o.solid(x-dx, y-dy) {
				return true
			}
		}
	}
	return false
}
