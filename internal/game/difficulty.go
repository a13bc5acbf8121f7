package game

import (
	"time"
)

type Difficulty struct {
	Name      string        `yaml:"name"`
	HitWindow time.Duration `yaml:"hitWindow"` // Largest |offset| that still counts as a hit
	Speed     float64       `yaml:"speed"`     // Scroll speed in pixels per second
}
