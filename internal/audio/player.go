package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/vorbis"
	"github.com/faiface/beep/wav"
)

// Player is a decoded song whose playback position can drive the song time.
type Player struct {
	streamer beep.StreamSeekCloser
	format   beep.Format
}

// Open decodes an .mp3, .ogg or .wav file.
func Open(file string) (*Player, error) {
	f, err := os.Open(file)
	if nil != err {
		return nil, err
	}

	var streamer beep.StreamSeekCloser
	var format beep.Format
	switch strings.ToLower(filepath.Ext(file)) {
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".ogg":
		streamer, format, err = vorbis.Decode(f)
	case ".wav":
		streamer, format, err = wav.Decode(f)
	default:
		f.Close()
		return nil, fmt.Errorf("unsupported audio file %v", file)
	}
	if nil != err {
		f.Close()
		return nil, fmt.Errorf("unable to decode %v: %w", file, err)
	}
	return &Player{streamer: streamer, format: format}, nil
}

// Play starts the song from the beginning.
func (p *Player) Play() error {
	if err := Init(); nil != err {
		return err
	}

	speaker.Lock()
	err := p.streamer.Seek(0)
	speaker.Unlock()
	if nil != err {
		return fmt.Errorf("unable to rewind song: %w", err)
	}

	var s beep.Streamer = p.streamer
	if p.format.SampleRate != SampleRate {
		s = beep.Resample(4, p.format.SampleRate, SampleRate, s)
	}
	return Play(s)
}

// Position is how far into the song playback has got.
func (p *Player) Position() time.Duration {
	speaker.Lock()
	pos := p.streamer.Position()
	speaker.Unlock()
	return p.format.SampleRate.D(pos)
}

func (p *Player) Close() error {
	return p.streamer.Close()
}
