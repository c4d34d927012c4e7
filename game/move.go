package game

import (
	"fmt"
	"strings"
)

// Direction is one of the four slides. Its value doubles as the index into
// per-move score arrays.
type Direction uint8

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Directions lists every move in the order the searcher tries them.
var Directions = [NumMoves]Direction{Left, Right, Up, Down}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return fmt.Sprintf("direction(%d)", uint8(d))
}

// ParseDirection accepts full names, the wasd keys, and l, r and u as
// short forms. "d" is the wasd key for right.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "l", "a":
		return Left, nil
	case "right", "r", "d":
		return Right, nil
	case "up", "u", "w":
		return Up, nil
	case "down", "s":
		return Down, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

func (d Direction) MarshalText() ([]byte, error) {
	if d >= NumMoves {
		return nil, fmt.Errorf("invalid direction %d", uint8(d))
	}
	return []byte(d.String()), nil
}

func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
