package entity

import (
	"github.com/hajimehoshi/ebiten/v2"

	"invaders/internal/assets"
	"invaders/internal/config"
)

// AlienBullet is return fire: constant downward velocity, removed below the
// screen or on hitting the ship. The ship is a persistent, larger target, so
// the hit test is per-pixel rather than a box check.
type AlienBullet struct {
	world  *World
	sprite *assets.Sprite
	mask   *Mask

	x, y  float64 // top-left
	alive bool
}

// NewAlienBullet spawns a bullet whose center sits at (cx, bottomY), the
// muzzle of the firing alien.
func NewAlienBullet(w *World, cx, bottomY float64) *AlienBullet {
	ab := &AlienBullet{world: w, sprite: w.Lib.AlienBullet, alive: true}
	ab.mask = MaskFromImage(ab.sprite.Source())
	ab.x = cx - ab.sprite.Width()/2
	ab.y = bottomY - ab.sprite.Height()/2
	return ab
}

func (ab *AlienBullet) Alive() bool { return ab.alive }

// Update moves the bullet down one step, culls it below the screen, and
// checks the ship mask.
func (ab *AlienBullet) Update() {
	ab.y += config.EnemyBulletSpeed
	if ab.y+ab.sprite.Height() > config.ScreenHeight+config.OffscreenMargin {
		ab.alive = false
		return
	}
	ab.collide()
}

func (ab *AlienBullet) collide() {
	for _, s := range ab.world.Ships.Members() {
		if !s.alive {
			continue
		}
		if !s.mask.Overlap(ab.mask, int(ab.x-s.x), int(ab.y-s.y)) {
			continue
		}
		ab.alive = false
		s.Damage(1)
		ab.world.SpawnExplosion(ab.x+ab.sprite.Width()/2, ab.y+ab.sprite.Height()/2, 1)
		s.checkDeath()
		return
	}
}

func (ab *AlienBullet) Draw(screen *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(ab.x, ab.y)
	screen.DrawImage(ab.sprite.Image(), op)
}
