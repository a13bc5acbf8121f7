package audio

import (
	"math"
	"time"

	"github.com/faiface/beep"

	"git.lost.host/meutraa/hitline/internal/game"
)

const clickVolume = 0.12

// Tone is a sine wave at freq that fades out over d.
func Tone(freq float64, d time.Duration) beep.Streamer {
	n := SampleRate.N(d)
	i := 0
	return beep.Take(n, beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for j := range samples {
			env := 1 - float64(i)/float64(n)
			if env < 0 {
				env = 0
			}
			v := clickVolume * env * math.Sin(2*math.Pi*freq*float64(i)/float64(SampleRate))
			samples[j][0] = v
			samples[j][1] = v
			i++
		}
		return len(samples), true
	}))
}

// JudgementTone returns the pitch and length of the click for j
func JudgementTone(j game.Judgement) (float64, time.Duration) {
	switch j {
	case game.Perfect:
		return 1200, 60 * time.Millisecond
	case game.Great:
		return 900, 60 * time.Millisecond
	case game.Good:
		return 700, 60 * time.Millisecond
	}
	return 200, 120 * time.Millisecond
}

// Click sounds the tone for j once the speaker is open, and is silent before.
func Click(j game.Judgement) {
	if !Ready() {
		return
	}
	freq, d := JudgementTone(j)
	play(Tone(freq, d))
}
