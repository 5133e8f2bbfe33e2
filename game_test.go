package main

import (
	"math/rand"
	"testing"
	"time"

	"invaders/internal/config"
	"invaders/internal/entity"
)

func newTestGame() (*Game, *entity.ManualClock) {
	clk := entity.NewManualClock(time.Unix(1000, 0))
	return newGame(clk, nil, rand.New(rand.NewSource(1))), clk
}

// startPlaying fast-forwards through the countdown.
func startPlaying(t *testing.T, g *Game, clk *entity.ManualClock) {
	t.Helper()
	for i := 0; i < config.StartCountdown; i++ {
		clk.Advance(config.CountdownInterval + time.Millisecond)
		if g.step(entity.Input{}) {
			t.Fatal("game terminated during countdown")
		}
	}
	if g.state != StatePlaying {
		t.Fatalf("state after countdown = %v, want StatePlaying", g.state)
	}
}

func TestInitialSetup(t *testing.T) {
	g, _ := newTestGame()

	if g.state != StateCountdown {
		t.Errorf("initial state = %v, want StateCountdown", g.state)
	}
	if g.countdown != config.StartCountdown {
		t.Errorf("countdown = %d, want %d", g.countdown, config.StartCountdown)
	}
	if got := g.world.Fleet.Len(); got != config.AlienRows*config.AlienCols {
		t.Errorf("aliens = %d, want %d", got, config.AlienRows*config.AlienCols)
	}
	if got := g.ship.Health(); got != config.PlayerStartHealth {
		t.Errorf("health = %d, want %d", got, config.PlayerStartHealth)
	}
}

func TestCountdownDecrementsOncePerSecond(t *testing.T) {
	g, clk := newTestGame()

	// No decrement inside the first second, regardless of tick count.
	for i := 0; i < 10; i++ {
		clk.Advance(50 * time.Millisecond)
		g.step(entity.Input{})
	}
	if g.countdown != config.StartCountdown {
		t.Fatalf("countdown = %d after half a second, want %d", g.countdown, config.StartCountdown)
	}

	clk.Advance(600 * time.Millisecond)
	g.step(entity.Input{})
	if g.countdown != config.StartCountdown-1 {
		t.Fatalf("countdown = %d after a second, want %d", g.countdown, config.StartCountdown-1)
	}
	if g.state != StateCountdown {
		t.Fatal("entered play before the countdown finished")
	}

	for i := 0; i < config.StartCountdown-1; i++ {
		clk.Advance(config.CountdownInterval + time.Millisecond)
		g.step(entity.Input{})
	}
	if g.countdown != 0 {
		t.Errorf("countdown = %d at the end, want 0", g.countdown)
	}
	if g.state != StatePlaying {
		t.Error("countdown reached zero without starting play")
	}
}

// clearFleet shoots every alien at its spawn position with a dedicated
// bullet; positions are still pristine because the fleet only moves during
// play.
func clearFleet(g *Game) {
	for row := 0; row < config.AlienRows; row++ {
		for col := 0; col < config.AlienCols; col++ {
			cx := float64(config.GridOriginX + col*config.GridStepX)
			cy := float64(config.GridOriginY + row*config.GridStepY)
			g.world.Bullets.Add(entity.NewBullet(g.world, cx, cy+config.PlayerBulletSpeed))
		}
	}
}

func TestWonWhenFleetDestroyed(t *testing.T) {
	g, clk := newTestGame()
	startPlaying(t, g, clk)

	clearFleet(g)
	if g.step(entity.Input{}) {
		t.Fatal("terminated on the winning frame")
	}

	if g.state != StateWon {
		t.Fatalf("state = %v, want StateWon", g.state)
	}
	if g.world.Fleet.Len() != 0 {
		t.Errorf("aliens left = %d, want 0", g.world.Fleet.Len())
	}
	if g.ship.Health() == 0 {
		t.Error("won with zero health")
	}
}

func TestLostWhenHealthReachesZero(t *testing.T) {
	g, clk := newTestGame()
	startPlaying(t, g, clk)

	g.ship.Damage(config.PlayerStartHealth)
	g.step(entity.Input{})

	if g.state != StateLost {
		t.Fatalf("state = %v, want StateLost", g.state)
	}
	// Loss wins over remaining aliens.
	if g.world.Fleet.Len() == 0 {
		t.Error("expected surviving aliens in the lost state")
	}
	// The dead ship left the group but spawned its explosion.
	if got := g.world.Ships.Len(); got != 0 {
		t.Errorf("live ships = %d, want 0", got)
	}
	if g.world.Explosions.Len() == 0 {
		t.Error("no explosion for the destroyed ship")
	}
}

// The killing blow usually lands through an alien bullet, after the ship's
// own update already ran that frame; the ship must still die and explode
// before the lost screen freezes the scene.
func TestLostViaAlienBulletKillingBlow(t *testing.T) {
	g, clk := newTestGame()
	startPlaying(t, g, clk)

	g.ship.Damage(config.PlayerStartHealth - 1)
	// Dead center of the ship once the bullet has moved one step.
	g.world.AlienBullets.Add(entity.NewAlienBullet(g.world, 300, 640-config.EnemyBulletSpeed))
	g.step(entity.Input{})

	if g.state != StateLost {
		t.Fatalf("state = %v, want StateLost", g.state)
	}
	if g.ship.Alive() {
		t.Error("ship alive on the lost screen")
	}
	if got := g.world.Ships.Len(); got != 0 {
		t.Errorf("live ships = %d, want 0", got)
	}
	// Bullet impact plus the ship's death explosion.
	if got := g.world.Explosions.Len(); got != 2 {
		t.Errorf("explosions = %d, want 2", got)
	}
}

func TestTerminationAfterEndDelay(t *testing.T) {
	for _, tt := range []struct {
		name string
		end  func(g *Game)
	}{
		{"won", clearFleet},
		{"lost", func(g *Game) { g.ship.Damage(config.PlayerStartHealth) }},
	} {
		t.Run(tt.name, func(t *testing.T) {
			g, clk := newTestGame()
			startPlaying(t, g, clk)
			tt.end(g)
			g.step(entity.Input{})

			clk.Advance(config.EndDelay - 100*time.Millisecond)
			if g.step(entity.Input{}) {
				t.Fatal("terminated before the end delay elapsed")
			}
			clk.Advance(200 * time.Millisecond)
			if !g.step(entity.Input{}) {
				t.Fatal("did not terminate after the end delay")
			}
		})
	}
}

func TestAlienFireCooldown(t *testing.T) {
	g, clk := newTestGame()
	startPlaying(t, g, clk)

	g.step(entity.Input{})
	if got := g.world.AlienBullets.Len(); got != 0 {
		t.Fatalf("aliens fired %d bullets inside cooldown, want 0", got)
	}

	clk.Advance(config.AlienCooldown + time.Millisecond)
	g.step(entity.Input{})
	if got := g.world.AlienBullets.Len(); got != 1 {
		t.Fatalf("alien bullets = %d after cooldown, want 1", got)
	}

	g.step(entity.Input{})
	if got := g.world.AlienBullets.Len(); got != 1 {
		t.Errorf("alien bullets = %d right after a shot, want 1", got)
	}

	clk.Advance(config.AlienCooldown + time.Millisecond)
	g.step(entity.Input{})
	if got := g.world.AlienBullets.Len(); got != 2 {
		t.Errorf("alien bullets = %d after second cooldown, want 2", got)
	}
}

// Invariants over a stretch of real play: the alien count never grows, and
// health never grows or drops below zero.
func TestPlayInvariants(t *testing.T) {
	g, clk := newTestGame()
	startPlaying(t, g, clk)

	aliens := g.world.Fleet.Len()
	health := g.ship.Health()
	tick := time.Second / config.TPS
	for i := 0; i < 2000 && g.state == StatePlaying; i++ {
		clk.Advance(tick)
		g.step(entity.Input{Fire: true})

		if n := g.world.Fleet.Len(); n > aliens {
			t.Fatalf("alien count grew from %d to %d", aliens, n)
		} else {
			aliens = n
		}
		if h := g.ship.Health(); h > health || h < 0 {
			t.Fatalf("health went from %d to %d", health, h)
		} else {
			health = h
		}
	}
}
