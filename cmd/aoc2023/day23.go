package main

import (
	"bytes"
	"log"

	"github.com/advent-go/aoc"
)

var slopes = map[byte]aoc.Direction{
	'^': aoc.Up,
	'>': aoc.Right,
	'v': aoc.Down,
	'<': aoc.Left,
}

// trailEnds returns the single open tiles in the top and bottom rows.
func trailEnds(g aoc.Grid[byte]) (start, end aoc.Pt) {
	top := bytes.IndexByte(g[0], '.')
	bottom := bytes.IndexByte(g[len(g)-1], '.')
	if top == -1 || bottom == -1 {
		log.Fatal("trail has no entrance or exit")
	}
	return aoc.Pt{X: top, Y: 0}, aoc.Pt{X: bottom, Y: len(g) - 1}
}

func isForest(b byte) bool {
	return b == '#'
}

func (s solver) longestHike(g *aoc.Graph[aoc.Pt], start, end aoc.Pt) int {
	s.Log().Debug("trail graph", "nodes", len(g.Nodes))
	n, ok := g.LongestPath(start, end)
	if !ok {
		log.Fatalf("no hike from %v to %v", start, end)
	}
	return n
}

/*
want=94

	#.#####################
	#.......#########...###
	#######.#########.#.###
	###.....#.>.>.###.#.###
	###v#####.#v#.###.#.###
	###.>...#.#.#.....#...#
	###v###.#.#.#########.#
	###...#.#.#.......#...#
	#####.#.#.#######.#.###
	#.....#.#.#.......#...#
	#.#####.#.#.#########v#
	#.#...#...#...###...>.#
	#.#.#v#######v###.###v#
	#...#.>.#...>.>.#.###.#
	#####v#.#.###v#.#.###.#
	#.....#...#...#.#.#...#
	#.#########.###.#.#.###
	#...###...#...#...#.###
	###.###.#.###v#####v###
	#...#...#.#.>.>.#.>.###
	#.###.###.#.###.#.#v###
	#.....###...###...#...#
	#####################.#
*/
func (s solver) D23p1() any {
	grid := s.Grid()
	start, end := trailEnds(grid)
	g := aoc.Explore(start, func(p aoc.Pt, arc func(aoc.Pt, int)) {
		if d, ok := slopes[grid.At(p)]; ok {
			if next, ok := grid.Move(aoc.Path{Pt: p, Dir: d}); ok && !isForest(grid.At(next.Pt)) {
				arc(next.Pt, 1)
			}
			return
		}
		for c := range grid.Neighbors4(p.X, p.Y) {
			if !isForest(c.V) {
				arc(c.Pt, 1)
			}
		}
	})
	return s.longestHike(g, start, end)
}

// want=154
func (s solver) D23p2() any {
	grid := s.Grid()
	start, end := trailEnds(grid)
	g := grid.ToGraph(start, false, isForest)
	g.Collapse(start, end)
	return s.longestHike(g, start, end)
}
