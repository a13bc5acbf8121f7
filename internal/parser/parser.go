package parser

import "git.lost.host/meutraa/hitline/internal/game"

type Parser interface {
	Parse(file string) ([]*game.Track, error)
}
