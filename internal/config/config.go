// Package config holds the fixed gameplay tuning table. Everything here is
// consumed at startup; there is no runtime reconfiguration.
package config

import "time"

// Display
const (
	ScreenWidth  = 600
	ScreenHeight = 800
	TPS          = 90 // logic ticks per second
	WindowTitle  = "Space Invaders"
)

// Player settings
const (
	PlayerSpeed       = 5                      // horizontal pixels per tick
	PlayerBulletSpeed = 5                      // upward pixels per tick
	PlayerCooldown    = 300 * time.Millisecond // minimum delay between shots
	PlayerStartHealth = 3
)

// Enemy settings
const (
	EnemyBulletSpeed = 4 // downward pixels per tick
	AlienCooldown    = time.Second
	AlienRows        = 5
	AlienCols        = 5
	AlienTurnFrames  = 75 // ticks of travel before reversing direction
)

// Alien grid placement (centers)
const (
	GridOriginX = 100
	GridStepX   = 100
	GridOriginY = 100
	GridStepY   = 70
)

// Explosion animation: ticks each of the 5 frames is held.
const ExplosionSpeed = 3

// Sequencing
const (
	StartCountdown    = 5 // seconds of "GET READY!" before play
	CountdownInterval = time.Second
	EndDelay          = 3 * time.Second // terminal-state display before exit
)

// Bullets are culled this many pixels past the screen edge.
const OffscreenMargin = 10

// Audio
const SampleRate = 44100

// Debug enables the tick-rate / entity-count overlay.
const Debug = false
