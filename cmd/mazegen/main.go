package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/zucenko/homeward/maze"
	"github.com/zucenko/homeward/model"
)

type options struct {
	size  int
	seed  int64
	solve bool
	in    string
}

func main() {
	var opts options
	flag.IntVar(&opts.size, "size", 15, "maze size in cells, at least 5")
	flag.Int64Var(&opts.seed, "seed", 0, "random seed, 0 picks one from the clock")
	flag.BoolVar(&opts.solve, "solve", false, "mark the shortest path from start to goal")
	flag.StringVar(&opts.in, "in", "", "read a maze in the printed format instead of generating one")
	flag.Parse()

	if opts.seed == 0 {
		opts.seed = time.Now().UnixNano()
	}
	reachable, err := run(os.Stdout, opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if !reachable && opts.solve {
		os.Exit(1)
	}
}

// run prints the maze with its stats and reports whether the goal is reachable.
func run(w io.Writer, opts options) (bool, error) {
	g, err := grid(w, opts)
	if err != nil {
		return false, err
	}

	path := maze.Solve(g, g.Start(), g.Goal())
	fmt.Fprintf(w, "Grid: %dx%d, %d open cells\n", g.Size(), g.Size(), g.OpenCells())
	if path != nil {
		fmt.Fprintf(w, "Solution path length: %d steps\n", len(path)-1)
	} else {
		fmt.Fprintln(w, "Status: goal unreachable")
	}

	reachable := path != nil
	if !opts.solve {
		path = nil
	}
	fmt.Fprint(w, maze.Format(g, path))
	return reachable, nil
}

func grid(w io.Writer, opts options) (*model.Grid, error) {
	if opts.in == "" {
		startT := time.Now()
		g := maze.Generate(opts.size, rand.New(rand.NewSource(opts.seed)))
		fmt.Fprintf(w, "Seed: %d, generated in %v\n", opts.seed, time.Since(startT))
		return g, nil
	}
	f, err := os.Open(opts.in)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	g, err := maze.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opts.in, err)
	}
	return g, nil
}
