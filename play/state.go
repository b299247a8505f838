package play

import "fmt"

type State int

const (
	MENU State = iota + 1
	PLAYING
	FINISHED
)

func (s State) Name() string {
	switch s {
	case MENU:
		return "MENU"
	case PLAYING:
		return "PLAYING"
	case FINISHED:
		return "FINISHED"
	default:
		return fmt.Sprintf("N/A(%d)", s)
	}
}

// Difficulty selects one of the three fixed maze presets.
type Difficulty int

const (
	EASY Difficulty = iota + 1
	MEDIUM
	HARD
)

var Difficulties = []Difficulty{EASY, MEDIUM, HARD}

func (d Difficulty) Name() string {
	switch d {
	case EASY:
		return "EASY"
	case MEDIUM:
		return "MEDIUM"
	case HARD:
		return "HARD"
	default:
		return fmt.Sprintf("N/A(%d)", d)
	}
}

// Size is the maze edge length for the preset.
func (d Difficulty) Size() int {
	switch d {
	case MEDIUM:
		return 15
	case HARD:
		return 20
	default:
		return 10
	}
}

// DifficultyFromKey maps the menu digits 1, 2 and 3.
func DifficultyFromKey(digit int) (Difficulty, bool) {
	d := Difficulty(digit)
	if d < EASY || d > HARD {
		return 0, false
	}
	return d, true
}
