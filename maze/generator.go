package maze

import (
	"math/rand"

	"github.com/zucenko/homeward/model"
)

// MinSize is the smallest grid Generate builds.
const MinSize = 5

// carving moves two cells at a time so a wall remains between corridors
var carveSteps = [4]model.Point{{X: 0, Y: 2}, {X: 2, Y: 0}, {X: 0, Y: -2}, {X: -2, Y: 0}}

// frame is one pending cell of the carve, with its own direction order.
type frame struct {
	at   model.Point
	dirs [4]model.Point
	next int
}

// Generate carves a size x size maze from (1,1) with a depth first backtracker.
// The same rng state always yields the same grid. Sizes below MinSize are raised to it.
func Generate(size int, rng *rand.Rand) *model.Grid {
	if size < MinSize {
		size = MinSize
	}
	walls := make([][]bool, size)
	for c := range walls {
		walls[c] = make([]bool, size)
		for r := range walls[c] {
			walls[c][r] = true
		}
	}
	carve(walls, model.Point{X: 1, Y: 1}, rng)
	patch(walls)
	return model.NewGrid(walls)
}

// carve runs the recursive backtracker on an explicit stack. Each visited cell draws
// a fresh permutation of the four steps, exactly where the recursive form would.
func carve(walls [][]bool, start model.Point, rng *rand.Rand) {
	size := len(walls)
	stack := []frame{visit(walls, start, rng)}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.dirs) {
			stack = stack[:len(stack)-1]
			continue
		}
		d := top.dirs[top.next]
		top.next++

		nx, ny := top.at.X+d.X, top.at.Y+d.Y
		if nx < 1 || nx > size-2 || ny < 1 || ny > size-2 || !walls[nx][ny] {
			continue
		}
		walls[top.at.X+d.X/2][top.at.Y+d.Y/2] = false
		stack = append(stack, visit(walls, model.Point{X: nx, Y: ny}, rng))
	}
}

func visit(walls [][]bool, p model.Point, rng *rand.Rand) frame {
	walls[p.X][p.Y] = false
	f := frame{at: p, dirs: carveSteps}
	rng.Shuffle(len(f.dirs), func(i, j int) {
		f.dirs[i], f.dirs[j] = f.dirs[j], f.dirs[i]
	})
	return f
}

// patch opens both endpoints plus a three cell run below the start and above the goal.
// It does not check that the two are connected.
func patch(walls [][]bool) {
	size := len(walls)
	walls[1][1] = false
	walls[size-2][size-2] = false
	for i := 0; i < 3; i++ {
		walls[1][1+i] = false
		walls[size-2][size-2-i] = false
	}
}
