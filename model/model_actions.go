package model

import (
	"fmt"
	"math"
)

// Direction indexes the four neighbours of a cell: 0 right, 1 down, 2 left, 3 up.
type Direction int

const (
	Right Direction = iota
	Down
	Left
	Up
)

var Directions = [4]Direction{Right, Down, Left, Up}

var deltas = [4][2]int{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}

func (d Direction) Valid() bool {
	return d >= Right && d <= Up
}

func (d Direction) Delta() (int, int) {
	if !d.Valid() {
		return 0, 0
	}
	return deltas[d][0], deltas[d][1]
}

func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

func (d Direction) Name() string {
	switch d {
	case Right:
		return "RIGHT"
	case Down:
		return "DOWN"
	case Left:
		return "LEFT"
	case Up:
		return "UP"
	default:
		return fmt.Sprintf("N/A(%d)", d)
	}
}

// Vec is a point or displacement in pixel space.
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec) Scale(f float64) Vec {
	return Vec{X: v.X * f, Y: v.Y * f}
}

func (v Vec) Dot(o Vec) float64 {
	return v.X*o.X + v.Y*o.Y
}

func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Center is the pixel centre of cell p.
func Center(p Point, cellSize float64) Vec {
	return Vec{X: (float64(p.X) + .5) * cellSize, Y: (float64(p.Y) + .5) * cellSize}
}

// CellOf maps a pixel position to the cell containing it.
func CellOf(v Vec, cellSize float64) Point {
	return Point{X: int(math.Floor(v.X / cellSize)), Y: int(math.Floor(v.Y / cellSize))}
}
