package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

// SampleRate is the rate the speaker runs at, songs are resampled to it
const SampleRate = beep.SampleRate(44100)

var (
	mu    sync.Mutex
	ready bool

	// Replaced in tests
	initSpeaker = speaker.Init
	play        = speaker.Play
)

// Init opens the speaker. A failed attempt may be retried, for example after
// the player has pressed a key.
func Init() error {
	mu.Lock()
	defer mu.Unlock()
	if ready {
		return nil
	}
	if err := initSpeaker(SampleRate, SampleRate.N(time.Second/60)); nil != err {
		return fmt.Errorf("unable to open speaker: %w", err)
	}
	ready = true
	return nil
}

func Ready() bool {
	mu.Lock()
	defer mu.Unlock()
	return ready
}

// Play mixes s into the speaker output.
func Play(s beep.Streamer) error {
	if err := Init(); nil != err {
		return err
	}
	play(s)
	return nil
}
