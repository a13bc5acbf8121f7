package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"git.lost.host/meutraa/hitline/internal/config"
	"git.lost.host/meutraa/hitline/internal/game"
	"git.lost.host/meutraa/hitline/internal/render"
	"git.lost.host/meutraa/hitline/internal/theme"
	"github.com/eiannone/keyboard"
)

type manualClock struct {
	now time.Duration
}

func (c *manualClock) SongTime() time.Duration { return c.now }

func newProgram(t *testing.T, args ...string) (*Program, *bytes.Buffer) {
	cfg, err := config.Parse(args)
	if nil != err {
		t.Fatal(err)
	}
	var out bytes.Buffer
	r := &render.DefaultRenderer{Out: &out, Theme: &theme.DefaultTheme{}, BarRow: 4}
	r.SetSize(80, 30)
	p := &Program{Config: cfg, Renderer: r}
	if err := p.Init(); nil != err {
		t.Fatal(err)
	}
	return p, &out
}

func press(cfg *config.Config, lane int) keyboard.KeyEvent {
	return keyboard.KeyEvent{Rune: []rune(cfg.Keys)[lane]}
}

func TestPlayGeneratedChart(t *testing.T) {
	p, out := newProgram(t, "--generate", "--bpm", "120", "--count", "4", "--seed", "1")
	if len(p.track.Pattern) != 4 {
		t.Fatalf("expected 4 generated notes, got %v", len(p.track.Pattern))
	}

	c := &manualClock{}
	p.Clock = c
	if err := p.Start(); nil != err {
		t.Fatal(err)
	}
	keys := make(chan keyboard.KeyEvent, 8)
	p.keys = keys

	// Hit the first two notes dead on and ignore the rest
	for i, e := range p.track.Pattern[:2] {
		c.now = e.Time
		keys <- press(p.Config, e.Lane)
		keys <- keyboard.KeyEvent{Rune: 'z'}
		if !p.Update() {
			t.Fatalf("stopped after note %v", i)
		}
	}
	st := p.Session.State()
	if st.Score != 600 || st.Combo != 2 {
		t.Errorf("after two perfects %+v", st)
	}
	if out.Len() == 0 {
		t.Error("nothing rendered")
	}

	for c.now = time.Second; c.now <= 2750*time.Millisecond; c.now += 250 * time.Millisecond {
		if !p.Update() {
			t.Fatalf("stopped early at %v", c.now)
		}
	}
	c.now = 2751 * time.Millisecond
	if p.Update() {
		t.Fatal("still playing after the last note")
	}
	st = p.Session.State()
	if st.Count(game.Miss) != 2 || st.Combo != 0 || st.Score != 600 {
		t.Errorf("final state %+v", st)
	}
	if p.quit {
		t.Error("natural end marked as quit")
	}
}

func TestQuitKey(t *testing.T) {
	p, _ := newProgram(t, "--track", "0", "--seed", "3")
	p.Clock = &manualClock{}
	p.Start()
	keys := make(chan keyboard.KeyEvent, 1)
	p.keys = keys

	keys <- keyboard.KeyEvent{Key: keyboard.KeyEsc}
	if p.Update() {
		t.Fatal("still running after escape")
	}
	if !p.quit || p.Session.Playing() {
		t.Error("escape did not stop the session")
	}
}

func TestSelectTrack(t *testing.T) {
	p, _ := newProgram(t, "--seed", "5")
	if p.track.Name != "Syncopated" || len(p.track.Pattern) != 80 {
		t.Errorf("default track %v with %v notes", p.track.Name, len(p.track.Pattern))
	}

	p, _ = newProgram(t, "--track", "Rapid Fire", "--seed", "5")
	if p.track.Name != "Rapid Fire" || len(p.track.Pattern) != 100 {
		t.Errorf("named track %v with %v notes", p.track.Name, len(p.track.Pattern))
	}

	p, _ = newProgram(t, "--random", "--seed", "5")
	found := false
	for _, s := range p.table.Tracks {
		found = found || s.Name == p.track.Name
	}
	if !found {
		t.Errorf("random track %q is not built in", p.track.Name)
	}
}

func TestRandomTrackFollowsSeed(t *testing.T) {
	for seed := 0; seed < 8; seed++ {
		a, _ := newProgram(t, "--random", "--seed", fmt.Sprint(seed))
		b, _ := newProgram(t, "--random", "--seed", fmt.Sprint(seed))
		if a.track.Name != b.track.Name || len(a.track.Pattern) != len(b.track.Pattern) {
			t.Errorf("seed %v gave %q and %q", seed, a.track.Name, b.track.Name)
			continue
		}
		for i := range a.track.Pattern {
			if a.track.Pattern[i] != b.track.Pattern[i] {
				t.Errorf("seed %v differs at event %v", seed, i)
				break
			}
		}
	}
}

func TestSelectChartFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "song.sm")
	os.WriteFile(file, []byte(`#TITLE:Tiny;
#OFFSET:0;
#BPMS:0=60;
#NOTES:
     dance-single:
     :
     Beginner:
     1:
     0:
1000
0100
0010
0001
;
`), 0o644)
	p, _ := newProgram(t, "--chart", file, "-D", "easy")
	if p.track.Name != "Tiny (Beginner)" || len(p.track.Pattern) != 4 {
		t.Fatalf("chart track %v %v", p.track.Name, p.track.Pattern)
	}
	if p.track.Pattern[3].Time != 3*time.Second || p.track.Pattern[3].Lane != 3 {
		t.Errorf("last note %+v", p.track.Pattern[3])
	}
}

func TestInitErrors(t *testing.T) {
	dir := t.TempDir()
	garbage := filepath.Join(dir, "song.ogg")
	os.WriteFile(garbage, []byte("not a song"), 0o644)

	bad := [][]string{
		{"--difficulty", "impossible"},
		{"--track", "42"},
		{"--audio", garbage},
	}
	for _, args := range bad {
		cfg, err := config.Parse(args)
		if nil != err {
			t.Fatal(err)
		}
		p := &Program{Config: cfg}
		if err := p.Init(); nil == err {
			t.Errorf("%v initialised", args)
		}
	}
}
