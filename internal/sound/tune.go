package sound

import (
	"math"
	"math/rand"

	"invaders/internal/config"
)

// tuneStream generates the looping background music: a slow random walk over
// a pentatonic note set, rendered as a square wave. It never returns io.EOF,
// so the player treats it as an endless track.
type tuneStream struct {
	tick float64
	freq float64
	rng  *rand.Rand
}

var tuneNotes = []float64{220, 261, 329, 392, 440, 523}

func newTuneStream() *tuneStream {
	return &tuneStream{freq: 220, rng: rand.New(rand.NewSource(3))}
}

func (s *tuneStream) Read(buf []byte) (int, error) {
	for i := 0; i+3 < len(buf); i += 4 {
		s.tick++
		if int(s.tick)%(config.SampleRate/3) == 0 {
			s.freq = tuneNotes[s.rng.Intn(len(tuneNotes))]
		}
		v := 0.08
		if math.Sin(2*math.Pi*s.freq*s.tick/config.SampleRate) < 0 {
			v = -0.08
		}
		frame := int16(v * 32767)
		buf[i] = byte(frame)
		buf[i+1] = byte(frame >> 8)
		buf[i+2] = byte(frame)
		buf[i+3] = byte(frame >> 8)
	}
	return len(buf) / 4 * 4, nil
}
