// Package entity implements the game's moving parts: the player ship, both
// bullet kinds, the alien fleet, and explosions. Entities update themselves
// once per tick against the collections they were handed at construction;
// the controller owns sequencing and win/loss decisions.
package entity

import (
	"math/rand"

	"github.com/solarlune/resolv"

	"invaders/internal/assets"
	"invaders/internal/config"
	"invaders/internal/sound"
)

// Collision tags for the shared space.
var (
	TagAlien  = resolv.NewTag("alien")
	TagBullet = resolv.NewTag("bullet")
)

// World bundles the collaborators every entity needs: sprites, the clock,
// the sound bank, the collision space, and the groups entities spawn into.
type World struct {
	Lib   *assets.Library
	Clock Clock
	Sound *sound.Bank
	Space *resolv.Space
	Rand  *rand.Rand

	Ships        *Group[*Ship]
	Bullets      *Group[*Bullet]
	Fleet        *Fleet
	AlienBullets *Group[*AlienBullet]
	Explosions   *Group[*Explosion]
}

// NewWorld creates an empty world. Sound may be nil for a silent world.
func NewWorld(lib *assets.Library, clk Clock, snd *sound.Bank, rng *rand.Rand) *World {
	w := &World{
		Lib:   lib,
		Clock: clk,
		Sound: snd,
		Space: resolv.NewSpace(config.ScreenWidth, config.ScreenHeight, 32, 32),
		Rand:  rng,

		Ships:        &Group[*Ship]{},
		Bullets:      &Group[*Bullet]{},
		AlienBullets: &Group[*AlienBullet]{},
		Explosions:   &Group[*Explosion]{},
	}
	w.Fleet = &Fleet{world: w}
	return w
}

// SpawnExplosion adds an explosion centered at (cx, cy) and plays its sound.
func (w *World) SpawnExplosion(cx, cy float64, size int) {
	w.Explosions.Add(NewExplosion(w, cx, cy, size))
}
