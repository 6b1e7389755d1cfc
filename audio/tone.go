package audio

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
)

// Tone returns a sine effect at freq Hz lasting dur, with a linear decay so
// it ends without a click.
func Tone(freq float64, dur time.Duration) Effect {
	return Effect{
		Name: fmt.Sprintf("tone %.0fHz %v", freq, dur),
		New: func() beep.Streamer {
			return beep.Take(SampleRate.N(dur), decay(dur, func(t float64) float64 {
				return math.Sin(2 * math.Pi * freq * t)
			}))
		},
	}
}

// Noise returns a decaying white noise burst, used for explosions.
func Noise(dur time.Duration) Effect {
	return Effect{
		Name: fmt.Sprintf("noise %v", dur),
		New: func() beep.Streamer {
			return beep.Take(SampleRate.N(dur), decay(dur, func(float64) float64 {
				return rand.Float64()*2 - 1
			}))
		},
	}
}

// decay renders wave(t) scaled by an envelope falling from 0.3 to 0 over dur.
func decay(dur time.Duration, wave func(t float64) float64) beep.Streamer {
	total := SampleRate.N(dur)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			env := 0.0
			if pos < total {
				env = 0.3 * (1 - float64(pos)/float64(total))
			}
			v := env * wave(float64(pos)/float64(SampleRate))
			samples[i] = [2]float64{v, v}
			pos++
		}
		return len(samples), true
	})
}
