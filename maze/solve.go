package maze

import "github.com/zucenko/homeward/model"

// Solve returns the shortest 4-neighbour path from one open cell to another,
// both ends included, or nil when either end is a wall or no path exists.
func Solve(g *model.Grid, from, to model.Point) []model.Point {
	if !g.Open(from) || !g.Open(to) {
		return nil
	}
	size := g.Size()
	index := func(p model.Point) int { return p.X*size + p.Y }

	cameFrom := make([]int, size*size)
	for i := range cameFrom {
		cameFrom[i] = -1
	}
	cameFrom[index(from)] = index(from)

	queue := []model.Point{from}
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		if curr == to {
			break
		}
		for _, d := range model.Directions {
			next := curr.Add(d)
			if !g.Open(next) || cameFrom[index(next)] >= 0 {
				continue
			}
			cameFrom[index(next)] = index(curr)
			queue = append(queue, next)
		}
	}
	if cameFrom[index(to)] < 0 {
		return nil
	}

	var path []model.Point
	for i := index(to); ; i = cameFrom[i] {
		path = append(path, model.Point{X: i / size, Y: i % size})
		if i == index(from) {
			break
		}
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}
	return path
}

// Reachable reports whether the goal can be walked to from the start.
func Reachable(g *model.Grid) bool {
	return Solve(g, g.Start(), g.Goal()) != nil
}
