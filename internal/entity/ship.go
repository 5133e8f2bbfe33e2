package entity

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"invaders/internal/assets"
	"invaders/internal/config"
	"invaders/internal/sound"
)

// Health bar geometry, drawn under the ship.
const (
	healthBarGap    = 10
	healthBarHeight = 15
)

var (
	healthBarBack = color.RGBA{0xfa, 0x00, 0x00, 0xff}
	healthBarFill = color.RGBA{0x00, 0xff, 0x00, 0xff}
)

// Ship is the player. It polls the sampled input once per tick, clamps its
// movement to the screen, and fires on a cooldown while it has health left.
type Ship struct {
	world  *World
	sprite *assets.Sprite
	mask   *Mask

	x, y        float64 // top-left
	healthStart int
	health      int
	lastShot    time.Time
	alive       bool
	exploded    bool
}

// NewShip places the ship with its center at (cx, cy).
func NewShip(w *World, cx, cy float64, health int) *Ship {
	s := &Ship{
		world:       w,
		sprite:      w.Lib.Ship,
		healthStart: health,
		health:      health,
		lastShot:    w.Clock.Now(),
		alive:       true,
	}
	s.mask = MaskFromImage(s.sprite.Source())
	s.x = cx - s.sprite.Width()/2
	s.y = cy - s.sprite.Height()/2
	return s
}

func (s *Ship) Alive() bool { return s.alive }

// Health returns the remaining health, never negative.
func (s *Ship) Health() int { return s.health }

// Damage removes health points, clamping at zero.
func (s *Ship) Damage(n int) {
	s.health -= n
	if s.health < 0 {
		s.health = 0
	}
}

// Update advances the ship one tick: movement, firing, death check.
func (s *Ship) Update(in Input) {
	s.move(in)
	s.shoot(in)
	s.checkDeath()
}

func (s *Ship) move(in Input) {
	if in.Left && s.x > 0 {
		s.x -= config.PlayerSpeed
	}
	if in.Right && s.x+s.sprite.Width() < config.ScreenWidth {
		s.x += config.PlayerSpeed
	}
	if s.x < 0 {
		s.x = 0
	}
	if limit := config.ScreenWidth - s.sprite.Width(); s.x > limit {
		s.x = limit
	}
}

func (s *Ship) shoot(in Input) {
	now := s.world.Clock.Now()
	if !in.Fire || s.health <= 0 || now.Sub(s.lastShot) <= config.PlayerCooldown {
		return
	}
	s.world.Bullets.Add(NewBullet(s.world, s.x+s.sprite.Width()/2, s.y))
	s.world.Sound.Play(sound.Shoot)
	s.lastShot = now
}

// checkDeath spawns the one death explosion and retires the ship.
func (s *Ship) checkDeath() {
	if s.health > 0 || s.exploded {
		return
	}
	s.world.SpawnExplosion(s.x+s.sprite.Width()/2, s.y+s.sprite.Height()/2, 3)
	s.exploded = true
	s.alive = false
}

func (s *Ship) Draw(screen *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(s.x, s.y)
	screen.DrawImage(s.sprite.Image(), op)
	s.drawHealthBar(screen)
}

func (s *Ship) drawHealthBar(screen *ebiten.Image) {
	w := float32(s.sprite.Width())
	x := float32(s.x)
	y := float32(s.y + s.sprite.Height() + healthBarGap)
	vector.DrawFilledRect(screen, x, y, w, healthBarHeight, healthBarBack, false)
	fill := w * float32(s.health) / float32(s.healthStart)
	vector.DrawFilledRect(screen, x, y, fill, healthBarHeight, healthBarFill, false)
}
