package config

import (
	"errors"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"git.lost.host/meutraa/hitline/internal/game"
	"gopkg.in/alecthomas/kingpin.v2"
)

const (
	Version = "0.3.0"

	DefaultBPM = 120.0
)

type Config struct {
	Difficulty  string
	Track       string
	Random      bool
	Generate    bool
	BPM         float64
	Offset      time.Duration
	Count       int
	Audio       string
	Chart       string
	Tracks      string
	Lead        time.Duration
	FramePeriod time.Duration
	Keys        string
	BarRow      uint
	Seed        int64
	LogFile     string
}

// Parse reads the command line, args excludes the program name.
func Parse(args []string) (*Config, error) {
	app := kingpin.New("hitline", "Four lane rhythm game for the terminal")
	app.Version(Version)

	c := &Config{}
	app.Flag("difficulty", "Difficulty tier").Default("medium").Short('D').StringVar(&c.Difficulty)
	app.Flag("track", "Built-in track, by index or name").Default("1").Short('t').StringVar(&c.Track)
	app.Flag("random", "Play a random built-in track").BoolVar(&c.Random)
	app.Flag("generate", "Generate a chart from --bpm and --offset").Short('g').BoolVar(&c.Generate)
	bpm := app.Flag("bpm", "Tempo for generated charts").Default("120").String()
	offset := app.Flag("offset", "Seconds before the first generated note").Default("0").Short('o').String()
	app.Flag("count", "Notes in a generated chart").Default("120").IntVar(&c.Count)
	app.Flag("audio", "Song to play, the song drives the timing").Short('a').ExistingFileVar(&c.Audio)
	app.Flag("chart", "StepMania .sm chart to play").Short('c').ExistingFileVar(&c.Chart)
	app.Flag("tracks", "YAML table of difficulties and built-in tracks").ExistingFileVar(&c.Tracks)
	app.Flag("lead", "Time a note is visible before it should be hit").Default("2s").DurationVar(&c.Lead)
	app.Flag("frame-period", "Game loop tick period").Default("16ms").Short('p').DurationVar(&c.FramePeriod)
	app.Flag("keys", "Keys for the four lanes").Default("dfjk").Short('k').StringVar(&c.Keys)
	app.Flag("bar-row", "Rows between the hit bar and the bottom").Default("4").UintVar(&c.BarRow)
	app.Flag("seed", "Seed for chart generation, 0 picks one").Default("0").Int64Var(&c.Seed)
	app.Flag("log", "File to write logs to while playing").Default("hitline.log").StringVar(&c.LogFile)

	if _, err := app.Parse(args); nil != err {
		return nil, err
	}
	c.BPM, c.Offset = ParseTempo(*bpm, *offset)
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}

	if err := c.Validate(); nil != err {
		return nil, err
	}
	return c, nil
}

// ParseTempo reads user supplied tempo fields, falling back to 120 bpm and
// no offset when they are not usable numbers.
func ParseTempo(bpm, offset string) (float64, time.Duration) {
	b, err := strconv.ParseFloat(strings.TrimSpace(bpm), 64)
	if nil != err || b <= 0 || math.IsNaN(b) || math.IsInf(b, 0) {
		log.Printf("bpm %q is not usable, using %v", bpm, DefaultBPM)
		b = DefaultBPM
	}
	o, err := strconv.ParseFloat(strings.TrimSpace(offset), 64)
	if nil != err || math.IsNaN(o) || math.IsInf(o, 0) {
		log.Printf("offset %q is not usable, using 0", offset)
		o = 0
	}
	return b, time.Duration(o * float64(time.Second))
}

func (c *Config) Validate() error {
	if c.Lead <= 0 {
		return errors.New("lead time must be positive")
	}
	if c.FramePeriod <= 0 {
		return errors.New("frame period must be positive")
	}
	if utf8.RuneCountInString(c.Keys) != game.Lanes {
		return fmt.Errorf("expected %v lane keys, got %q", game.Lanes, c.Keys)
	}
	if c.Count < 0 {
		return errors.New("note count cannot be negative")
	}
	return nil
}

// KeyLane returns the lane bound to r, or -1.
func (c *Config) KeyLane(r rune) int {
	for i, k := range []rune(strings.ToLower(c.Keys)) {
		if r == k || r == []rune(strings.ToUpper(string(k)))[0] {
			return i
		}
	}
	return -1
}

// Table returns the difficulty and track table in use.
func (c *Config) Table() (*Table, error) {
	if c.Tracks == "" {
		return DefaultTable()
	}
	return LoadTable(c.Tracks)
}
