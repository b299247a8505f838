package maze

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/zucenko/homeward/model"
)

const (
	glyphWall  = '#'
	glyphOpen  = ' '
	glyphStart = 'S'
	glyphGoal  = 'E'
	glyphPath  = '.'
)

// Format draws g one row per line. Cells on path are marked, start and goal win over path.
func Format(g *model.Grid, path []model.Point) string {
	onPath := make(map[model.Point]bool, len(path))
	for _, p := range path {
		onPath[p] = true
	}
	var b strings.Builder
	for r := 0; r < g.Size(); r++ {
		for c := 0; c < g.Size(); c++ {
			p := model.Point{X: c, Y: r}
			switch {
			case g.IsWall(c, r):
				b.WriteRune(glyphWall)
			case p == g.Start():
				b.WriteRune(glyphStart)
			case p == g.Goal():
				b.WriteRune(glyphGoal)
			case onPath[p]:
				b.WriteRune(glyphPath)
			default:
				b.WriteRune(glyphOpen)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Parse reads the Format layout back into a grid. Every marker other than '#' is open.
func Parse(reader io.Reader) (*model.Grid, error) {
	scanner := bufio.NewScanner(reader)
	scanner.Split(bufio.ScanLines)
	lines := make([]string, 0)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" && len(lines) > 0 {
			break
		}
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading maze: %w", err)
	}
	size := len(lines)
	if size == 0 {
		return nil, fmt.Errorf("empty maze")
	}

	walls := make([][]bool, size)
	for c := range walls {
		walls[c] = make([]bool, size)
	}
	for r, line := range lines {
		row := []rune(line)
		if len(row) != size {
			return nil, fmt.Errorf("row %d has %d cells, want %d", r, len(row), size)
		}
		for c, char := range row {
			switch char {
			case glyphWall:
				walls[c][r] = true
			case glyphOpen, glyphStart, glyphGoal, glyphPath:
			default:
				return nil, fmt.Errorf("row %d col %d: unexpected %q", r, c, char)
			}
		}
	}
	return model.NewGrid(walls), nil
}
