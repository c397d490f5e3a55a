package main

import (
	"bytes"
	"log"

	"github.com/advent-go/aoc"
	"github.com/dustin/go-humanize"
)

// minHeatLoss returns the least heat lost moving a crucible from the top-left
// block to the bottom-right one under the given straight-line limits.
func (s solver) minHeatLoss(limits aoc.RunLimits) int {
	grid, err := aoc.ParseGrid(bytes.NewReader(s.Input()), func(_ aoc.Pt, r rune) (int, error) {
		return aoc.ParseDigit(r)
	})
	if err != nil {
		log.Fatalf("parsing heat map: %v", err)
	}
	size := grid.Size()
	start := aoc.Heading{Dir: aoc.Right}
	g := aoc.Explore(start, func(h aoc.Heading, arc func(aoc.Heading, int)) {
		for next := range limits.Next(h, size) {
			arc(next, grid.At(next.Pt))
		}
	})
	s.Log().Debug("crucible graph", "nodes", humanize.Comma(int64(len(g.Nodes))), "limits", limits)

	// The crucible can only stop once it has gone Min blocks straight.
	end := aoc.Pt{X: size.X - 1, Y: size.Y - 1}
	loss, ok := g.ShortestPath(start, func(h aoc.Heading) bool {
		return h.Pt == end && h.Run >= limits.Min
	})
	if !ok {
		log.Fatalf("no route to %v", end)
	}
	return loss
}

/*
want=102

	2413432311323
	3215453535623
	3255245654254
	3446585845452
	4546657867536
	1438598798454
	4457876987766
	3637877979653
	4654967986887
	4564679986453
	1224686865563
	2546548887735
	4322674655533
*/
func (s solver) D17p1() any {
	return s.minHeatLoss(aoc.RunLimits{Max: 3})
}

// want=94
func (s solver) D17p2() any {
	return s.minHeatLoss(aoc.RunLimits{Min: 4, Max: 10})
}
