package testdata

import (
	"gopkg.in/yaml.v3"

	"git.lost.host/meutraa/hitline/internal/game"
)

// GetTrack decodes the fixture track, a fresh copy on every call.
func GetTrack() (*game.Track, error) {
	var track game.Track
	if err := yaml.Unmarshal([]byte(data), &track); nil != err {
		return nil, err
	}
	return &track, nil
}
