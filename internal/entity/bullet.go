package entity

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"

	"invaders/internal/assets"
	"invaders/internal/config"
)

// Bullet is a player shot: constant upward velocity, removed on leaving the
// screen or on its first alien hit.
type Bullet struct {
	world  *World
	sprite *assets.Sprite

	x, y  float64 // top-left
	shape resolv.IShape
	alive bool
}

// NewBullet spawns a bullet whose center sits at (cx, topY), the muzzle of
// the ship.
func NewBullet(w *World, cx, topY float64) *Bullet {
	b := &Bullet{world: w, sprite: w.Lib.PlayerBullet, alive: true}
	b.x = cx - b.sprite.Width()/2
	b.y = topY - b.sprite.Height()/2
	b.shape = resolv.NewRectangleFromTopLeft(b.x, b.y, b.sprite.Width(), b.sprite.Height())
	b.shape.Tags().Set(TagBullet)
	w.Space.Add(b.shape)
	return b
}

func (b *Bullet) Alive() bool { return b.alive }

// Update moves the bullet up one step, culls it above the screen, and
// resolves at most one alien hit.
func (b *Bullet) Update() {
	b.y -= config.PlayerBulletSpeed
	if b.y < -config.OffscreenMargin {
		b.kill()
		return
	}
	b.shape.SetPosition(b.x+b.sprite.Width()/2, b.y+b.sprite.Height()/2)
	b.collide()
}

func (b *Bullet) collide() {
	var hit resolv.IShape
	b.shape.IntersectionTest(resolv.IntersectionTestSettings{
		TestAgainst: b.shape.SelectTouchingCells(0).FilterShapes().ByTags(TagAlien),
		OnIntersect: func(set resolv.IntersectionSet) bool {
			hit = set.OtherShape
			return false // one target per bullet
		},
	})
	if hit == nil {
		return
	}
	if !b.world.Fleet.KillByShape(hit) {
		return
	}
	b.kill()
	b.world.SpawnExplosion(b.x+b.sprite.Width()/2, b.y+b.sprite.Height()/2, 2)
}

func (b *Bullet) kill() {
	if !b.alive {
		return
	}
	b.alive = false
	b.world.Space.Remove(b.shape)
}

func (b *Bullet) Draw(screen *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(b.x, b.y)
	screen.DrawImage(b.sprite.Image(), op)
}
