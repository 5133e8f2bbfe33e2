package entity

import (
	"testing"
	"time"

	"invaders/internal/config"
)

func TestShipMovementClampsToScreen(t *testing.T) {
	w := newTestWorld()
	s := addTestShip(w, config.ScreenWidth/2, 640)

	for i := 0; i < 1000; i++ {
		s.move(Input{Left: true})
	}
	if s.x != 0 {
		t.Errorf("x after holding left = %v, want 0", s.x)
	}

	for i := 0; i < 1000; i++ {
		s.move(Input{Right: true})
	}
	if want := config.ScreenWidth - s.sprite.Width(); s.x != want {
		t.Errorf("x after holding right = %v, want %v", s.x, want)
	}
}

func TestShipFireCooldown(t *testing.T) {
	clk := NewManualClock(time.Unix(100, 0))
	w := newTestWorld()
	w.Clock = clk
	s := addTestShip(w, 300, 640)

	// Immediately after spawn the cooldown has not elapsed.
	s.shoot(Input{Fire: true})
	if got := w.Bullets.Len(); got != 0 {
		t.Fatalf("bullets fired inside cooldown = %d, want 0", got)
	}

	clk.Advance(config.PlayerCooldown + time.Millisecond)
	s.shoot(Input{Fire: true})
	if got := w.Bullets.Len(); got != 1 {
		t.Fatalf("bullets after cooldown = %d, want 1", got)
	}

	// Held fire does not repeat until the cooldown elapses again.
	s.shoot(Input{Fire: true})
	if got := w.Bullets.Len(); got != 1 {
		t.Errorf("bullets immediately after a shot = %d, want 1", got)
	}

	clk.Advance(config.PlayerCooldown + time.Millisecond)
	s.shoot(Input{Fire: true})
	if got := w.Bullets.Len(); got != 2 {
		t.Errorf("bullets after second cooldown = %d, want 2", got)
	}
}

func TestShipCannotFireWithoutHealth(t *testing.T) {
	clk := NewManualClock(time.Unix(100, 0))
	w := newTestWorld()
	w.Clock = clk
	s := addTestShip(w, 300, 640)
	s.Damage(config.PlayerStartHealth)

	clk.Advance(config.PlayerCooldown + time.Millisecond)
	s.shoot(Input{Fire: true})
	if got := w.Bullets.Len(); got != 0 {
		t.Errorf("destroyed ship fired %d bullets", got)
	}
}

func TestShipDamageNeverGoesNegative(t *testing.T) {
	w := newTestWorld()
	s := addTestShip(w, 300, 640)

	s.Damage(config.PlayerStartHealth + 5)
	if got := s.Health(); got != 0 {
		t.Errorf("health = %d, want floor of 0", got)
	}
}

func TestShipDeathSpawnsExactlyOneExplosion(t *testing.T) {
	w := newTestWorld()
	s := addTestShip(w, 300, 640)
	s.Damage(config.PlayerStartHealth)

	s.Update(Input{})
	if s.Alive() {
		t.Fatal("ship alive at zero health after update")
	}
	if got := w.Explosions.Len(); got != 1 {
		t.Fatalf("explosions after death = %d, want 1", got)
	}

	// The one-shot guard: further updates never spawn another.
	s.checkDeath()
	s.checkDeath()
	if got := w.Explosions.Len(); got != 1 {
		t.Errorf("explosions after repeated checks = %d, want 1", got)
	}
}
