package entity

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"

	"invaders/internal/assets"
	"invaders/internal/config"
)

// Alien oscillates horizontally, reversing direction after a fixed number of
// frames of travel. It carries a shape in the collision space so player
// bullets can find it.
type Alien struct {
	world  *World
	sprite *assets.Sprite

	x, y    float64 // top-left
	counter int
	dir     int
	shape   resolv.IShape
	alive   bool
}

// NewAlien places an alien with its center at (cx, cy), with a randomly
// picked sprite variant.
func NewAlien(w *World, cx, cy float64) *Alien {
	a := &Alien{
		world:  w,
		sprite: w.Lib.Aliens[w.Rand.Intn(len(w.Lib.Aliens))],
		dir:    1,
		alive:  true,
	}
	a.x = cx - a.sprite.Width()/2
	a.y = cy - a.sprite.Height()/2
	a.shape = resolv.NewRectangleFromTopLeft(a.x, a.y, a.sprite.Width(), a.sprite.Height())
	a.shape.Tags().Set(TagAlien)
	w.Space.Add(a.shape)
	return a
}

func (a *Alien) Alive() bool { return a.alive }

// Update moves the alien one pixel sideways, turning around every
// AlienTurnFrames ticks.
func (a *Alien) Update() {
	a.x += float64(a.dir)
	a.counter++
	if a.counter > config.AlienTurnFrames {
		a.dir = -a.dir
		a.counter = 0
	}
	// Rectangle shapes are positioned by their center.
	a.shape.SetPosition(a.x+a.sprite.Width()/2, a.y+a.sprite.Height()/2)
}

// Muzzle is the center-bottom point shots leave from.
func (a *Alien) Muzzle() (x, y float64) {
	return a.x + a.sprite.Width()/2, a.y + a.sprite.Height()
}

func (a *Alien) kill() {
	if !a.alive {
		return
	}
	a.alive = false
	a.world.Space.Remove(a.shape)
}

func (a *Alien) Draw(screen *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(a.x, a.y)
	screen.DrawImage(a.sprite.Image(), op)
}

// Fleet is the group of live aliens plus the fleet-level operations the
// controller and bullets need.
type Fleet struct {
	world *World
	group Group[*Alien]
}

// SpawnGrid fills the fleet with rows x cols aliens on the standard grid.
func (f *Fleet) SpawnGrid(rows, cols int) {
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			cx := float64(config.GridOriginX + col*config.GridStepX)
			cy := float64(config.GridOriginY + row*config.GridStepY)
			f.group.Add(NewAlien(f.world, cx, cy))
		}
	}
}

// Len counts live aliens.
func (f *Fleet) Len() int { return f.group.Len() }

// Update advances every live alien.
func (f *Fleet) Update() {
	for _, a := range f.group.Members() {
		if a.alive {
			a.Update()
		}
	}
}

// Compact drops destroyed aliens.
func (f *Fleet) Compact() { f.group.Compact() }

// Random returns a uniformly chosen live alien, or nil if none remain.
func (f *Fleet) Random() *Alien {
	live := make([]*Alien, 0, len(f.group.Members()))
	for _, a := range f.group.Members() {
		if a.alive {
			live = append(live, a)
		}
	}
	if len(live) == 0 {
		return nil
	}
	return live[f.world.Rand.Intn(len(live))]
}

// KillByShape destroys the live alien owning the given collision shape.
// It reports whether an alien was actually removed, so a bullet can never
// claim a kill twice.
func (f *Fleet) KillByShape(sh resolv.IShape) bool {
	for _, a := range f.group.Members() {
		if a.alive && a.shape == sh {
			a.kill()
			return true
		}
	}
	return false
}

func (f *Fleet) Draw(screen *ebiten.Image) {
	for _, a := range f.group.Members() {
		if a.alive {
			a.Draw(screen)
		}
	}
}
