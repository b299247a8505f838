package model

// Point addresses a cell by column and row.
type Point struct {
	X, Y int
}

func (p Point) Add(d Direction) Point {
	dx, dy := d.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Grid is a square wall map indexed [col][row]. It is never mutated after NewGrid.
type Grid struct {
	size  int
	walls [][]bool
}

// NewGrid copies walls into a Grid. Missing cells of a ragged matrix are walls.
func NewGrid(walls [][]bool) *Grid {
	size := len(walls)
	matrix := make([][]bool, size)
	for c := 0; c < size; c++ {
		matrix[c] = make([]bool, size)
		for r := 0; r < size; r++ {
			matrix[c][r] = r >= len(walls[c]) || walls[c][r]
		}
	}
	return &Grid{size: size, walls: matrix}
}

func (g *Grid) Size() int {
	return g.size
}

// IsWall reports true for walls and for every coordinate outside the grid.
func (g *Grid) IsWall(x, y int) bool {
	if x < 0 || x >= g.size || y < 0 || y >= g.size {
		return true
	}
	return g.walls[x][y]
}

func (g *Grid) Open(p Point) bool {
	return !g.IsWall(p.X, p.Y)
}

func (g *Grid) Start() Point {
	return Point{X: 1, Y: 1}
}

func (g *Grid) Goal() Point {
	return Point{X: g.size - 2, Y: g.size - 2}
}

// OpenCells counts passable cells.
func (g *Grid) OpenCells() int {
	n := 0
	for c := range g.walls {
		for _, wall := range g.walls[c] {
			if !wall {
				n++
			}
		}
	}
	return n
}
