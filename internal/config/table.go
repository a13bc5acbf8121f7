package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"git.lost.host/meutraa/hitline/internal/game"
)

//go:embed tracks.yaml
var defaultTable []byte

// TrackSpec describes a procedurally generated built-in track
type TrackSpec struct {
	Name    string  `yaml:"name"`
	BPM     float64 `yaml:"bpm"`
	Length  int     `yaml:"length"`
	Density float64 `yaml:"density"`
	Lanes   []int   `yaml:"lanes,omitempty"` // Defaults to every lane
}

type Table struct {
	Difficulties []game.Difficulty `yaml:"difficulties"`
	Tracks       []TrackSpec       `yaml:"tracks"`
}

// DefaultTable returns the built-in difficulties and tracks.
func DefaultTable() (*Table, error) {
	return decodeTable(defaultTable)
}

// LoadTable reads a table from a yaml file.
func LoadTable(file string) (*Table, error) {
	data, err := os.ReadFile(file)
	if nil != err {
		return nil, fmt.Errorf("unable to read track table: %w", err)
	}
	return decodeTable(data)
}

func decodeTable(data []byte) (*Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); nil != err {
		return nil, fmt.Errorf("unable to parse track table: %w", err)
	}
	if err := t.Validate(); nil != err {
		return nil, err
	}
	return &t, nil
}

func (t *Table) Validate() error {
	if len(t.Difficulties) == 0 {
		return errors.New("track table has no difficulties")
	}
	for _, d := range t.Difficulties {
		if d.HitWindow <= 0 {
			return fmt.Errorf("difficulty %q needs a positive hit window", d.Name)
		}
	}
	for _, s := range t.Tracks {
		if s.BPM <= 0 || s.Length <= 0 || s.Density <= 0 {
			return fmt.Errorf("track %q needs a positive bpm, length and density", s.Name)
		}
		for _, l := range s.Lanes {
			if l < 0 || l >= game.Lanes {
				return fmt.Errorf("track %q uses lane %v", s.Name, l)
			}
		}
	}
	return nil
}

func (t *Table) Difficulty(name string) (game.Difficulty, error) {
	for _, d := range t.Difficulties {
		if strings.EqualFold(d.Name, name) {
			return d, nil
		}
	}
	return game.Difficulty{}, fmt.Errorf("unknown difficulty %q", name)
}

// Track finds a built-in track by index or by name.
func (t *Table) Track(ref string) (TrackSpec, error) {
	if index, err := strconv.Atoi(ref); nil == err {
		if index < 0 || index >= len(t.Tracks) {
			return TrackSpec{}, fmt.Errorf("no track at index %v", index)
		}
		return t.Tracks[index], nil
	}
	for _, s := range t.Tracks {
		if strings.EqualFold(s.Name, ref) {
			return s, nil
		}
	}
	return TrackSpec{}, fmt.Errorf("unknown track %q", ref)
}

func (s TrackSpec) LaneSet() []int {
	if len(s.Lanes) > 0 {
		return s.Lanes
	}
	lanes := make([]int, game.Lanes)
	for i := range lanes {
		lanes[i] = i
	}
	return lanes
}
