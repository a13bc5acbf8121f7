package game

type Judgement int

const (
	Unjudged Judgement = iota
	Perfect
	Great
	Good
	Miss
)

// Judgements in HUD order
var Judgements = [...]Judgement{Perfect, Great, Good, Miss}

func (j Judgement) String() string {
	switch j {
	case Perfect:
		return "Perfect"
	case Great:
		return "Great"
	case Good:
		return "Good"
	case Miss:
		return "Miss"
	}
	return "-"
}

// Points is the base score before the multiplier is applied.
func (j Judgement) Points() int {
	switch j {
	case Perfect:
		return 300
	case Great:
		return 150
	case Good:
		return 50
	}
	return 0
}

func (j Judgement) IsHit() bool {
	return j == Perfect || j == Great || j == Good
}
