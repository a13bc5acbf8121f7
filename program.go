package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"git.lost.host/meutraa/hitline/internal/audio"
	"git.lost.host/meutraa/hitline/internal/chart"
	"git.lost.host/meutraa/hitline/internal/clock"
	"git.lost.host/meutraa/hitline/internal/config"
	"git.lost.host/meutraa/hitline/internal/game"
	"git.lost.host/meutraa/hitline/internal/input"
	"git.lost.host/meutraa/hitline/internal/loop"
	"git.lost.host/meutraa/hitline/internal/parser"
	"git.lost.host/meutraa/hitline/internal/render"
	"git.lost.host/meutraa/hitline/internal/score"
	"git.lost.host/meutraa/hitline/internal/session"
	"github.com/eiannone/keyboard"
)

// Attempts at opening the speaker, each after a key press
const audioAttempts = 3

type Program struct {
	Config    *config.Config
	Parser    *parser.DefaultParser
	Generator *chart.DefaultGenerator
	Renderer  *render.DefaultRenderer
	Session   *session.Session

	// Overrides the wall clock for chart only sessions
	Clock clock.TimeSource

	table  *config.Table
	track  *game.Track
	player *audio.Player
	keys   <-chan keyboard.KeyEvent

	quit       bool
	frames     uint64
	slowFrames uint64
}

func (p *Program) Init() error {
	// Ensure our Default implementations are used
	if nil == p.Parser {
		p.Parser = &parser.DefaultParser{}
	}
	if nil == p.Generator {
		p.Generator = chart.NewGenerator(p.Config.Seed)
	}
	if nil == p.Renderer {
		p.Renderer = &render.DefaultRenderer{BarRow: int(p.Config.BarRow)}
	}

	var err error
	p.table, err = p.Config.Table()
	if nil != err {
		return err
	}
	difficulty, err := p.table.Difficulty(p.Config.Difficulty)
	if nil != err {
		return err
	}

	p.track, err = p.selectTrack()
	if nil != err {
		return err
	}
	log.Printf("Loaded %q with %v notes at %v", p.track.Name, len(p.track.Pattern), difficulty.Name)

	if p.Config.Audio != "" {
		p.player, err = audio.Open(p.Config.Audio)
		if nil != err {
			return err
		}
	}

	p.Session = session.New(difficulty, p.Config.Lead)
	p.Session.OnJudgement = p.onJudgement
	return nil
}

func (p *Program) selectTrack() (*game.Track, error) {
	cfg := p.Config
	switch {
	case cfg.Chart != "":
		tracks, err := p.Parser.Parse(cfg.Chart)
		if nil != err {
			return nil, fmt.Errorf("unable to parse chart: %w", err)
		}
		return tracks[0], nil
	case cfg.Generate, cfg.Audio != "":
		// A song without a chart gets one from its tempo
		return p.Generator.FromTempo(cfg.BPM, cfg.Offset, cfg.Count), nil
	}

	spec, err := p.table.Track(cfg.Track)
	if cfg.Random && len(p.table.Tracks) > 0 {
		spec, err = p.table.Tracks[p.Generator.Pick(len(p.table.Tracks))], nil
	}
	if nil != err {
		return nil, err
	}
	return p.Generator.Procedural(spec.Name, spec.BPM, spec.Length, spec.LaneSet(), spec.Density), nil
}

func (p *Program) onJudgement(r score.Result) {
	audio.Click(r.Judgement)
	p.Renderer.Flash(r.Lane, r.Judgement)
}

// Start begins the session, against the song when there is one.
func (p *Program) Start() error {
	if nil != p.player {
		return p.Session.StartWithMedia(p.track, p.player)
	}
	ts := p.Clock
	if nil == ts {
		ts = clock.NewWallClock(nil)
	}
	p.Session.Start(p.track, ts)
	return nil
}

// startWithRetry waits for a key press between attempts at starting audio
func (p *Program) startWithRetry(ctx context.Context) error {
	var err error
	for i := 0; i < audioAttempts; i++ {
		err = p.Start()
		if !errors.Is(err, session.ErrAudioUnavailable) {
			return err
		}
		log.Println(err)
		p.Renderer.Message(err.Error())
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-p.keys:
		}
	}
	return err
}

// Update runs one frame: pending presses, then the tick, then the render.
func (p *Program) Update() bool {
	for _, ev := range input.Drain(p.keys, p.Config) {
		if nil != ev.Err {
			log.Println("unable to read key", ev.Err)
			continue
		}
		if ev.Quit {
			p.quit = true
			p.Session.Stop()
			return false
		}
		if ev.Lane < 0 {
			continue
		}
		p.Session.Hit(ev.Lane)
	}

	playing := p.Session.Tick()
	p.Renderer.Render(p.Session.Snapshot())
	return playing
}

func (p *Program) onFrame(took time.Duration) {
	p.frames++
	if took > p.Config.FramePeriod {
		p.slowFrames++
	}
}

// Run plays the session to its end and returns the final state.
func (p *Program) Run(ctx context.Context) (session.Snapshot, error) {
	keys, err := input.Open(128)
	if nil != err {
		return session.Snapshot{}, fmt.Errorf("unable to open keyboard: %w", err)
	}
	p.keys = keys
	defer func() {
		if err := input.Close(); nil != err {
			log.Println("unable to close keyboard", err)
		}
	}()

	if err := p.Renderer.Init(); nil != err {
		return session.Snapshot{}, err
	}
	defer func() {
		// Restore the terminal state
		p.Renderer.Deinit()
	}()

	if err := p.startWithRetry(ctx); nil != err {
		return session.Snapshot{}, err
	}

	l := loop.Loop{Period: p.Config.FramePeriod, OnFrame: p.onFrame}
	if err := l.Run(ctx, func(time.Duration) bool { return p.Update() }); nil != err {
		return p.Session.Snapshot(), err
	}
	log.Printf("Finished after %v frames, %v over budget", p.frames, p.slowFrames)

	// Leave the final screen up until a key is pressed
	if !p.quit {
		select {
		case <-ctx.Done():
		case <-p.keys:
		}
	}
	return p.Session.Snapshot(), nil
}

func (p *Program) Close() {
	if nil != p.player {
		p.player.Close()
	}
}
