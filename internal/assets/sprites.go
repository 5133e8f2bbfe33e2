// Package assets builds every drawable the game uses. Sprites are authored as
// in-source pixel grids and kept as plain image.RGBA so game logic (bounds,
// masks) never needs the GPU; the ebiten texture is uploaded on first draw.
package assets

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite pairs a CPU-side pixel buffer with its lazily uploaded texture.
type Sprite struct {
	src *image.RGBA
	img *ebiten.Image
}

// Source returns the CPU-side pixels (used for mask building).
func (s *Sprite) Source() *image.RGBA { return s.src }

// Width returns the sprite width in pixels.
func (s *Sprite) Width() float64 { return float64(s.src.Bounds().Dx()) }

// Height returns the sprite height in pixels.
func (s *Sprite) Height() float64 { return float64(s.src.Bounds().Dy()) }

// Image uploads the pixels into VRAM on first use.
func (s *Sprite) Image() *ebiten.Image {
	if s.img == nil {
		s.img = ebiten.NewImageFromImage(s.src)
	}
	return s.img
}

// FromArt rasterizes a pixel-grid drawing. Each byte of each row is looked up
// in the palette; bytes missing from the palette stay transparent. Every grid
// cell becomes a scale x scale block.
func FromArt(rows []string, palette map[byte]color.RGBA, scale int) *Sprite {
	h := len(rows)
	w := 0
	for _, r := range rows {
		if len(r) > w {
			w = len(r)
		}
	}
	dst := image.NewRGBA(image.Rect(0, 0, w*scale, h*scale))
	for gy, row := range rows {
		for gx := 0; gx < len(row); gx++ {
			c, ok := palette[row[gx]]
			if !ok {
				continue
			}
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					dst.SetRGBA(gx*scale+dx, gy*scale+dy, c)
				}
			}
		}
	}
	return &Sprite{src: dst}
}

var (
	white  = color.RGBA{0xf0, 0xf0, 0xf0, 0xff}
	cyan   = color.RGBA{0x58, 0xc8, 0xe0, 0xff}
	steel  = color.RGBA{0x90, 0x98, 0xa8, 0xff}
	flame  = color.RGBA{0xff, 0x8c, 0x28, 0xff}
	green  = color.RGBA{0x58, 0xd8, 0x58, 0xff}
	purple = color.RGBA{0xb0, 0x68, 0xe8, 0xff}
	red    = color.RGBA{0xe8, 0x40, 0x40, 0xff}
	yellow = color.RGBA{0xf8, 0xe0, 0x48, 0xff}
)

var shipPalette = map[byte]color.RGBA{
	'W': white, 'C': cyan, 'S': steel, 'F': flame,
}

var shipArt = []string{
	".......W.......",
	"......WWW......",
	"......WCW......",
	".....WWCWW.....",
	".....WWWWW.....",
	"..W..WWWWW..W..",
	".WW.WWWWWWW.WW.",
	"WWWWWWWWWWWWWWW",
	"WWSWWWWWWWWWSWW",
	"WW..WF...FW..WW",
}

var alienPalettes = []map[byte]color.RGBA{
	{'X': green, 'E': white},
	{'X': purple, 'E': yellow},
	{'X': cyan, 'E': red},
}

// Three body shapes; paired with the palettes above for visual variety.
var alienArts = [][]string{
	{
		"..X.....X..",
		"...X...X...",
		"..XXXXXXX..",
		".XX.XXX.XX.",
		"XXXXXXXXXXX",
		"X.XXXXXXX.X",
		"X.X.....X.X",
		"...XX.XX...",
	},
	{
		"...XXXXX...",
		".XXXXXXXXX.",
		"XXXXXXXXXXX",
		"XX.EXXXE.XX",
		"XXXXXXXXXXX",
		"..XX.X.XX..",
		".X..X.X..X.",
		"X.X.....X.X",
	},
	{
		"..X.....X..",
		"X..X...X..X",
		"X.XXXXXXX.X",
		"XXX.EXE.XXX",
		"XXXXXXXXXXX",
		".XXXXXXXXX.",
		"..X.....X..",
		".X.......X.",
	},
}

var playerBulletArt = []string{
	".Y.",
	"YYY",
	"YYY",
	"YYY",
	"YYY",
	"YYY",
	".Y.",
	".Y.",
}

var alienBulletArt = []string{
	".R.",
	".R.",
	"RRR",
	"RRR",
	"RRR",
	"RRR",
	".R.",
	".R.",
}

// Library holds every sprite the game draws, built once at startup.
type Library struct {
	Ship         *Sprite
	PlayerBullet *Sprite
	AlienBullet  *Sprite
	Aliens       []*Sprite
	Background   *Sprite

	explosions map[int][]*Sprite
}

// Explosion size classes, diameter in pixels.
var explosionSizePx = map[int]int{1: 20, 2: 40, 3: 100}

// ExplosionFrameCount is the length of every explosion animation.
const ExplosionFrameCount = 5

// Load builds the complete sprite set.
func Load() *Library {
	lib := &Library{
		Ship:         FromArt(shipArt, shipPalette, 4),
		PlayerBullet: FromArt(playerBulletArt, map[byte]color.RGBA{'Y': yellow}, 2),
		AlienBullet:  FromArt(alienBulletArt, map[byte]color.RGBA{'R': red}, 2),
		Background:   starfield(),
		explosions:   make(map[int][]*Sprite),
	}
	for i, art := range alienArts {
		lib.Aliens = append(lib.Aliens, FromArt(art, alienPalettes[i], 4))
	}
	for size, px := range explosionSizePx {
		frames := make([]*Sprite, ExplosionFrameCount)
		for f := range frames {
			frames[f] = explosionFrame(px, f)
		}
		lib.explosions[size] = frames
	}
	return lib
}

// ExplosionFrames returns the animation for a size class (1 small, 2 medium,
// 3 large). Unknown classes fall back to small.
func (l *Library) ExplosionFrames(size int) []*Sprite {
	if frames, ok := l.explosions[size]; ok {
		return frames
	}
	return l.explosions[1]
}

// explosionFrame draws one frame of an expanding fireball: a hot core with an
// orange shell, growing with the frame index and thinning out at the end.
func explosionFrame(px, frame int) *Sprite {
	dst := image.NewRGBA(image.Rect(0, 0, px, px))
	c := float64(px) / 2
	outer := c * (0.35 + 0.65*float64(frame+1)/float64(ExplosionFrameCount))
	core := outer * 0.55
	if frame == ExplosionFrameCount-1 {
		core = 0 // last frame is a dissipating shell
	}
	for y := 0; y < px; y++ {
		for x := 0; x < px; x++ {
			d := math.Hypot(float64(x)+0.5-c, float64(y)+0.5-c)
			switch {
			case d <= core:
				dst.SetRGBA(x, y, yellow)
			case d <= outer:
				dst.SetRGBA(x, y, flame)
			}
		}
	}
	return &Sprite{src: dst}
}
