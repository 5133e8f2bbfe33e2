package sound

import (
	"bytes"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"invaders/internal/config"
)

// Effect names a one-shot sound.
type Effect int

const (
	Shoot Effect = iota
	EnemyShoot
	Explosion
	Win
	Loss
)

// wavNames maps effects to their optional on-disk overrides.
var wavNames = map[Effect]string{
	Shoot:      "assets/player_shot.wav",
	EnemyShoot: "assets/enemy_shot.wav",
	Explosion:  "assets/explosion.wav",
	Win:        "assets/win.wav",
	Loss:       "assets/loss.wav",
}

const volume = 0.5

// Bank owns the audio context and one player per effect. A nil *Bank is a
// valid silent bank, so logic code never has to branch on audio availability.
type Bank struct {
	ctx     *audio.Context
	players map[Effect]*audio.Player
	music   *audio.Player
}

// NewBank initializes the audio device and prepares every effect, preferring
// WAV files in assets/ and falling back to the built-in synth clips.
func NewBank() (*Bank, error) {
	ctx := audio.NewContext(config.SampleRate)
	b := &Bank{ctx: ctx, players: make(map[Effect]*audio.Player)}
	for effect, clip := range synthClips() {
		p, err := loadWav(ctx, wavNames[effect])
		if err != nil {
			p, err = ctx.NewPlayer(bytes.NewReader(clip))
			if err != nil {
				return nil, fmt.Errorf("prepare effect %d: %w", effect, err)
			}
		}
		p.SetVolume(volume)
		b.players[effect] = p
	}
	music, err := ctx.NewPlayer(newTuneStream())
	if err != nil {
		return nil, fmt.Errorf("prepare music: %w", err)
	}
	music.SetVolume(volume)
	b.music = music
	return b, nil
}

func synthClips() map[Effect][]byte {
	return map[Effect][]byte{
		Shoot:      tone(880, 0.08, 0.4),
		EnemyShoot: tone(330, 0.10, 0.4),
		Explosion:  noise(0.30, 0.5),
		Win:        sequence(tone(523, 0.15, 0.4), tone(659, 0.15, 0.4), tone(784, 0.15, 0.4), tone(1047, 0.30, 0.4)),
		Loss:       sequence(tone(392, 0.20, 0.4), tone(330, 0.20, 0.4), tone(262, 0.40, 0.4)),
	}
}

func loadWav(ctx *audio.Context, path string) (*audio.Player, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := wav.DecodeWithoutResampling(f)
	if err != nil {
		return nil, err
	}
	return audio.NewPlayer(ctx, s)
}

// Play fires an effect from the start. Safe on a nil bank.
func (b *Bank) Play(e Effect) {
	if b == nil {
		return
	}
	p := b.players[e]
	if p == nil {
		return
	}
	_ = p.Rewind()
	p.Play()
}

// StartMusic begins the looping background tune. Safe on a nil bank.
func (b *Bank) StartMusic() {
	if b == nil || b.music == nil {
		return
	}
	b.music.Play()
}
