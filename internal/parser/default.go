package parser

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"git.lost.host/meutraa/hitline/internal/game"
)

// ErrNoCharts is returned when a file has no four lane charts
var ErrNoCharts = errors.New("no dance-single charts found")

type DefaultParser struct{}

type bpm struct {
	StartingBeat float64
	Value        float64
}

type difficulty struct {
	Name    string
	Section string
}

func (p *DefaultParser) getSecondsPerNote(rates []bpm, currentBeat float64, bpn float64) float64 {
	sel := rates[0].Value
	for _, rate := range rates {
		if currentBeat >= rate.StartingBeat {
			sel = rate.Value
		} else {
			break
		}
	}
	return bpn * 60.0 / sel
}

// 0 – No note
// 1 – Normal note
// 2 – Hold head
// 3 – Hold/Roll tail
// 4 – Roll head
// M – Mine (or other negative note)
// K – Automatic keysound
// L – Lift note
// F – Fake note

// Heads of holds and rolls are played as single notes
func (p *DefaultParser) mapToNote(ch byte) bool {
	return ch == '1' || ch == '2' || ch == '4'
}

func (p *DefaultParser) Parse(file string) ([]*game.Track, error) {
	data, err := os.ReadFile(file)
	if nil != err {
		return nil, err
	}
	return p.ParseString(string(data))
}

func (p *DefaultParser) ParseString(data string) ([]*game.Track, error) {
	str := strings.ReplaceAll(data, "\r", "")
	sections := strings.Split(str, "#NOTES:")
	meta := sections[0]
	difficulties := []difficulty{}
	for _, section := range sections[1:] {
		lines := strings.SplitN(section, "\n", 7)
		if len(lines) < 7 {
			continue
		}
		chartType := strings.TrimSuffix(strings.TrimSpace(lines[1]), ":")
		if chartType != "dance-single" {
			continue
		}
		difficulties = append(difficulties, difficulty{
			Name:    strings.TrimSuffix(strings.TrimSpace(lines[3]), ":"),
			Section: lines[6],
		})
	}
	if len(difficulties) == 0 {
		return nil, ErrNoCharts
	}

	title := ""
	offset := 0.0
	bpms := []bpm{}

	for _, mdl := range strings.Split(meta, "\n#") {
		mdl = strings.TrimPrefix(strings.TrimSpace(mdl), "#")
		// Anything after the semicolon is a comment or the next tag
		if i := strings.Index(mdl, ";"); i >= 0 {
			mdl = mdl[:i]
		}
		switch {
		case strings.HasPrefix(mdl, "TITLE:"):
			title = strings.TrimSpace(strings.TrimPrefix(mdl, "TITLE:"))
		case strings.HasPrefix(mdl, "OFFSET:"):
			mdl = strings.TrimPrefix(mdl, "OFFSET:")
			offs, err := strconv.ParseFloat(strings.TrimSpace(mdl), 64)
			if nil != err {
				return nil, fmt.Errorf("unable to parse offset: %w", err)
			}
			offset = -offs
		case strings.HasPrefix(mdl, "BPMS:"):
			mdl = strings.TrimPrefix(mdl, "BPMS:")
			mdl = strings.ReplaceAll(mdl, "\n", "")
			for _, b := range strings.Split(mdl, ",") {
				as := strings.Split(b, "=")
				if len(as) != 2 {
					return nil, fmt.Errorf("malformed bpm %q", b)
				}
				sb, err := strconv.ParseFloat(strings.TrimSpace(as[0]), 64)
				if nil != err {
					return nil, fmt.Errorf("unable to parse bpm beat: %w", err)
				}
				value, err := strconv.ParseFloat(strings.TrimSpace(as[1]), 64)
				if nil != err {
					return nil, fmt.Errorf("unable to parse bpm: %w", err)
				}
				if value <= 0 {
					return nil, fmt.Errorf("bpm %v at beat %v is not positive", value, sb)
				}
				bpms = append(bpms, bpm{StartingBeat: sb, Value: value})
			}
		}
	}
	if len(bpms) == 0 {
		return nil, errors.New("chart has no bpms")
	}

	tracks := []*game.Track{}
	for _, difficulty := range difficulties {
		// Start time of first note
		seconds := offset
		var currentBeat float64 = 0.0

		events := []game.Event{}

		// The section runs until the closing semicolon
		section := difficulty.Section
		if i := strings.Index(section, ";"); i >= 0 {
			section = section[:i]
		}

		for _, block := range strings.Split(section, ",") {
			lines := []string{}
			for _, l := range strings.Split(block, "\n") {
				if i := strings.Index(l, "//"); i >= 0 {
					l = l[:i]
				}
				l = strings.TrimSpace(l)
				if len(l) == game.Lanes {
					lines = append(lines, l)
				}
			}
			if len(lines) == 0 {
				continue
			}

			// Beat count is 4 per block
			beatsPerNote := 4.0 / float64(len(lines)) // 1/4, 1/8, 1/16, 1/24 etc

			for _, line := range lines {
				for lane := 0; lane < game.Lanes; lane++ {
					if p.mapToNote(line[lane]) {
						events = append(events, game.Event{
							Time: time.Duration(seconds * float64(time.Second)),
							Lane: lane,
						})
					}
				}
				seconds += p.getSecondsPerNote(bpms, currentBeat, beatsPerNote)
				currentBeat += beatsPerNote
			}
		}

		name := difficulty.Name
		if title != "" {
			name = fmt.Sprintf("%v (%v)", title, difficulty.Name)
		}
		tracks = append(tracks, &game.Track{
			Name:    name,
			BPM:     bpms[0].Value,
			Pattern: events,
		})
	}

	return tracks, nil
}
