package entity

import (
	"github.com/hajimehoshi/ebiten/v2"

	"invaders/internal/assets"
	"invaders/internal/config"
	"invaders/internal/sound"
)

// Explosion plays a fixed frame sequence at the point of a destruction event,
// then removes itself. Explosions always run to completion and are never
// reused.
type Explosion struct {
	frames  []*assets.Sprite
	cx, cy  float64 // anchor point (center)
	index   int
	counter int // ticks the current frame has been held
	alive   bool
}

// NewExplosion starts an explosion of the given size class (1 small, 2
// medium, 3 large) centered at (cx, cy), with its sound.
func NewExplosion(w *World, cx, cy float64, size int) *Explosion {
	w.Sound.Play(sound.Explosion)
	return &Explosion{
		frames: w.Lib.ExplosionFrames(size),
		cx:     cx,
		cy:     cy,
		alive:  true,
	}
}

func (e *Explosion) Alive() bool { return e.alive }

// Update holds each frame for ExplosionSpeed ticks, then advances; after the
// last frame's hold the explosion dies.
func (e *Explosion) Update() {
	e.counter++
	if e.counter >= config.ExplosionSpeed && e.index < len(e.frames)-1 {
		e.counter = 0
		e.index++
	}
	if e.index >= len(e.frames)-1 && e.counter >= config.ExplosionSpeed {
		e.alive = false
	}
}

func (e *Explosion) Draw(screen *ebiten.Image) {
	frame := e.frames[e.index]
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(e.cx-frame.Width()/2, e.cy-frame.Height()/2)
	screen.DrawImage(frame.Image(), op)
}
