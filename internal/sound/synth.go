// Package sound owns the audio device and every effect the game plays.
// Effects are synthesized square-wave/noise PCM so the game is self-contained;
// a WAV file of the same name in assets/ overrides the synth version.
package sound

import (
	"math"
	"math/rand"

	"invaders/internal/config"
)

// tone renders a square wave as 16-bit stereo PCM. A short linear fade at the
// tail keeps the cut from clicking.
func tone(freq, durSec, vol float64) []byte {
	n := int(config.SampleRate * durSec)
	buf := make([]byte, n*4)
	fade := n / 8
	for i := 0; i < n; i++ {
		v := vol
		if cycle := math.Sin(2 * math.Pi * freq * float64(i) / config.SampleRate); cycle < 0 {
			v = -vol
		}
		if left := n - i; left < fade {
			v *= float64(left) / float64(fade)
		}
		writeFrame(buf, i, v)
	}
	return buf
}

// noise renders a decaying white-noise burst (the explosion rumble).
func noise(durSec, vol float64) []byte {
	n := int(config.SampleRate * durSec)
	buf := make([]byte, n*4)
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < n; i++ {
		decay := 1 - float64(i)/float64(n)
		writeFrame(buf, i, (rng.Float64()*2-1)*vol*decay*decay)
	}
	return buf
}

// sequence joins clips back to back.
func sequence(clips ...[]byte) []byte {
	var out []byte
	for _, c := range clips {
		out = append(out, c...)
	}
	return out
}

func writeFrame(buf []byte, i int, v float64) {
	s := int16(v * 32767)
	buf[4*i] = byte(s)
	buf[4*i+1] = byte(s >> 8)
	buf[4*i+2] = byte(s)
	buf[4*i+3] = byte(s >> 8)
}
