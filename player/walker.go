package player

import "github.com/zucenko/homeward/model"

// Walker occupies exactly one cell and moves a whole cell per accepted step.
type Walker struct {
	cell     model.Point
	cellSize float64
}

func NewWalker(start model.Point, cellSize float64) *Walker {
	return &Walker{cell: start, cellSize: cellSize}
}

func (w *Walker) Cell() model.Point {
	return w.cell
}

// Position is the pixel centre of the occupied cell.
func (w *Walker) Position() model.Vec {
	return model.Center(w.cell, w.cellSize)
}

// Step moves one cell in d unless the destination is a wall. A rejected step changes nothing.
func (w *Walker) Step(d model.Direction, grid *model.Grid) model.MoveResult {
	dest := w.cell.Add(d)
	if !d.Valid() || grid.IsWall(dest.X, dest.Y) {
		return model.MoveResult{Direction: d, Col: w.cell.X, Row: w.cell.Y, Success: false}
	}
	w.cell = dest
	return model.MoveResult{Direction: d, Col: dest.X, Row: dest.Y, Success: true}
}

// Update steps on the first fresh press of the frame. Held keys do not repeat.
func (w *Walker) Update(in Intent, grid *model.Grid) bool {
	d, ok := in.First()
	if !ok {
		return false
	}
	return w.Step(d, grid).Success
}
