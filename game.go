package main

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"invaders/internal/assets"
	"invaders/internal/config"
	"invaders/internal/entity"
	"invaders/internal/sound"
)

// State is the controller's phase.
type State int

const (
	StateCountdown State = iota
	StatePlaying
	StateWon
	StateLost
)

// Game owns the world and sequences one run: countdown, active play, then a
// short end-state display before the loop terminates.
type Game struct {
	world *entity.World
	ship  *entity.Ship

	state         State
	countdown     int
	lastCount     time.Time
	lastAlienShot time.Time
	endedAt       time.Time // set once, on entering a terminal state

	face *text.GoTextFace
}

// NewGame wires up the full game: assets, audio, a fresh world, the ship, and
// the alien grid. Audio failures abort, per the no-recovery startup model.
func NewGame() *Game {
	snd, err := sound.NewBank()
	if err != nil {
		log.Fatalf("init audio: %v", err)
	}
	g := newGame(entity.SystemClock{}, snd, rand.New(rand.NewSource(time.Now().UnixNano())))
	snd.StartMusic()
	return g
}

func newGame(clk entity.Clock, snd *sound.Bank, rng *rand.Rand) *Game {
	w := entity.NewWorld(assets.Load(), clk, snd, rng)
	g := &Game{
		world:         w,
		state:         StateCountdown,
		countdown:     config.StartCountdown,
		lastCount:     clk.Now(),
		lastAlienShot: clk.Now(),
		face:          assets.FontFace(40),
	}
	g.ship = entity.NewShip(w, config.ScreenWidth/2, config.ScreenHeight*4/5, config.PlayerStartHealth)
	w.Ships.Add(g.ship)
	w.Fleet.SpawnGrid(config.AlienRows, config.AlienCols)
	return g
}

func readInput() entity.Input {
	return entity.Input{
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Fire:  ebiten.IsKeyPressed(ebiten.KeySpace),
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if g.step(readInput()) {
		return ebiten.Termination
	}
	return nil
}

// step advances one tick and reports whether the run is over. Explosions
// animate in every state; everything else only moves while playing.
func (g *Game) step(in entity.Input) bool {
	g.updateExplosions()
	switch g.state {
	case StateCountdown:
		g.updateCountdown()
	case StatePlaying:
		g.updatePlaying(in)
	case StateWon, StateLost:
		return g.world.Clock.Now().Sub(g.endedAt) > config.EndDelay
	}
	return false
}

func (g *Game) updateExplosions() {
	for _, e := range g.world.Explosions.Members() {
		if e.Alive() {
			e.Update()
		}
	}
	g.world.Explosions.Compact()
}

func (g *Game) updateCountdown() {
	now := g.world.Clock.Now()
	if now.Sub(g.lastCount) <= config.CountdownInterval {
		return
	}
	g.countdown--
	g.lastCount = now
	if g.countdown <= 0 {
		g.state = StatePlaying
		g.lastAlienShot = now
	}
}

func (g *Game) updatePlaying(in entity.Input) {
	w := g.world
	for _, s := range w.Ships.Members() {
		if s.Alive() {
			s.Update(in)
		}
	}
	for _, b := range w.Bullets.Members() {
		if b.Alive() {
			b.Update()
		}
	}
	w.Fleet.Update()
	for _, ab := range w.AlienBullets.Members() {
		if ab.Alive() {
			ab.Update()
		}
	}

	w.Ships.Compact()
	w.Bullets.Compact()
	w.Fleet.Compact()
	w.AlienBullets.Compact()

	switch {
	case g.ship.Health() == 0:
		g.finish(StateLost, sound.Loss)
	case w.Fleet.Len() == 0:
		g.finish(StateWon, sound.Win)
	default:
		g.alienFire()
	}
}

// finish enters a terminal state, recording the entry time the end delay is
// measured from and playing the one-shot jingle.
func (g *Game) finish(s State, e sound.Effect) {
	g.state = s
	g.endedAt = g.world.Clock.Now()
	g.world.Sound.Play(e)
}

// alienFire has a random surviving alien return fire on the shared cooldown.
func (g *Game) alienFire() {
	now := g.world.Clock.Now()
	if now.Sub(g.lastAlienShot) <= config.AlienCooldown {
		return
	}
	attacker := g.world.Fleet.Random()
	if attacker == nil {
		return
	}
	x, y := attacker.Muzzle()
	g.world.AlienBullets.Add(entity.NewAlienBullet(g.world, x, y))
	g.world.Sound.Play(sound.EnemyShoot)
	g.lastAlienShot = now
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.world.Lib.Background.Image(), nil)

	for _, s := range g.world.Ships.Members() {
		if s.Alive() {
			s.Draw(screen)
		}
	}
	for _, b := range g.world.Bullets.Members() {
		if b.Alive() {
			b.Draw(screen)
		}
	}
	g.world.Fleet.Draw(screen)
	for _, ab := range g.world.AlienBullets.Members() {
		if ab.Alive() {
			ab.Draw(screen)
		}
	}
	for _, e := range g.world.Explosions.Members() {
		if e.Alive() {
			e.Draw(screen)
		}
	}

	switch g.state {
	case StateCountdown:
		g.drawText(screen, "GET READY!", config.ScreenWidth/2-110, config.ScreenHeight/2+50)
		g.drawText(screen, fmt.Sprintf("%d", g.countdown), config.ScreenWidth/2-10, config.ScreenHeight/2+100)
	case StateWon:
		g.drawText(screen, "YOU WIN!", config.ScreenWidth/2-110, config.ScreenHeight/2+50)
	case StateLost:
		g.drawText(screen, "GAME OVER!", config.ScreenWidth/2-110, config.ScreenHeight/2+50)
	}

	if config.Debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS %0.1f aliens %d", ebiten.ActualTPS(), g.world.Fleet.Len()))
	}
}

func (g *Game) drawText(screen *ebiten.Image, msg string, x, y float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, msg, g.face, op)
}

// Layout fixes the logical resolution; the window scales it up or down.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}
