package assets

import (
	"image"
	"image/color"
	"math/rand"

	"invaders/internal/config"
)

// starfield paints a full-screen night-sky backdrop: a near-black base with
// scattered stars of varying brightness. The layout is fixed per run.
func starfield() *Sprite {
	w, h := config.ScreenWidth, config.ScreenHeight
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	base := color.RGBA{0x08, 0x06, 0x14, 0xff}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dst.SetRGBA(x, y, base)
		}
	}
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 180; i++ {
		x := rng.Intn(w)
		y := rng.Intn(h)
		v := uint8(120 + rng.Intn(136))
		dst.SetRGBA(x, y, color.RGBA{v, v, v, 0xff})
		if rng.Intn(6) == 0 && x+1 < w {
			dst.SetRGBA(x+1, y, color.RGBA{v, v, v, 0xff})
		}
	}
	return &Sprite{src: dst}
}
