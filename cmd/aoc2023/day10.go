package main

import (
	"log"

	"github.com/advent-go/aoc"
)

// pipes maps each pipe tile to the two sides it opens to.
var pipes = map[byte][2]aoc.Direction{
	'|': {aoc.Up, aoc.Down},
	'-': {aoc.Right, aoc.Left},
	'L': {aoc.Up, aoc.Right},
	'J': {aoc.Up, aoc.Left},
	'7': {aoc.Down, aoc.Left},
	'F': {aoc.Right, aoc.Down},
}

func opensTo(tile byte, d aoc.Direction) bool {
	ends, ok := pipes[tile]
	return ok && (ends[0] == d || ends[1] == d)
}

// startPipe returns the pipe hidden under the S tile, worked out from the
// neighbors that open towards it.
func startPipe(grid aoc.Grid[byte], start aoc.Pt) byte {
	var exits []aoc.Direction
	for _, d := range aoc.Directions {
		if next, ok := grid.Move(aoc.Path{Pt: start, Dir: d}); ok && opensTo(grid.At(next.Pt), d.Reverse()) {
			exits = append(exits, d)
		}
	}
	if len(exits) != 2 {
		log.Fatalf("start connects to %d pipes", len(exits))
	}
	for tile, ends := range pipes {
		if ends == [2]aoc.Direction(exits) {
			return tile
		}
	}
	log.Fatalf("no pipe opens %v and %v", exits[0], exits[1])
	return 0
}

// pipeLoop returns the tiles of the loop through S in walking order, and
// puts the real pipe in place of S.
func (s solver) pipeLoop() (aoc.Grid[byte], []aoc.Pt) {
	grid := s.Grid()
	start, ok := grid.Find(func(b byte) bool { return b == 'S' })
	if !ok {
		log.Fatal("no start tile")
	}
	grid.Set(start, startPipe(grid, start))

	loop := []aoc.Pt{start}
	at := aoc.Path{Pt: start, Dir: pipes[grid.At(start)][0]}
	for {
		next, ok := grid.Move(at)
		if !ok {
			log.Fatalf("pipe at %v leads off the map", at.Pt)
		}
		if next.Pt == start {
			return grid, loop
		}
		loop = append(loop, next.Pt)

		back := at.Dir.Reverse()
		if !opensTo(grid.At(next.Pt), back) {
			log.Fatalf("loop breaks at %v", next.Pt)
		}
		ends := pipes[grid.At(next.Pt)]
		next.Dir = ends[0]
		if ends[0] == back {
			next.Dir = ends[1]
		}
		at = next
	}
}

/*
want=8

	..F7.
	.FJ|.
	SJ.L7
	|F--J
	LJ...
*/
func (s solver) D10p1() any {
	_, loop := s.pipeLoop()
	return len(loop) / 2
}

// widen draws the loop at double scale with a one cell border, so tiles that
// touch without connecting get a gap between them. Tile (x, y) lands on
// (2x+1, 2y+1).
func widen(grid aoc.Grid[byte], loop []aoc.Pt) aoc.Grid[bool] {
	size := grid.Size()
	wide := aoc.MakeGrid[bool](2*size.X+1, 2*size.Y+1)
	for _, p := range loop {
		at := aoc.Pt{X: 2*p.X + 1, Y: 2*p.Y + 1}
		wide.Set(at, true)
		for _, d := range pipes[grid.At(p)] {
			dx, dy := d.Delta()
			if c, ok := wide.Offset(at.X, dx, at.Y, dy); ok {
				wide.Set(c.Pt, true)
			}
		}
	}
	return wide
}

/*
want=8

	.F----7F7F7F7F-7....
	.|F--7||||||||FJ....
	.||.FJ||||||||L7....
	FJL7L7LJLJ||LJ.L-7..
	L--J.L7...LJS7F-7L7.
	....F-J..F7FJ|L7L7L7
	....L7.F7||L7|.L7L7|
	.....|FJLJ|FJ|F7|.LJ
	....FJL-7.||.||||...
	....L---J.LJ.LJLJ...
*/
func (s solver) D10p2() any {
	wide := widen(s.pipeLoop())

	outside := map[aoc.Pt]bool{{}: true}
	q := aoc.NewQueue(aoc.Pt{})
	q.While(func(p aoc.Pt) bool {
		for c := range wide.Neighbors4(p.X, p.Y) {
			if !c.V && !outside[c.Pt] {
				outside[c.Pt] = true
				q.Push(c.Pt)
			}
		}
		return true
	})
	s.Debugf("outside: %d of %d cells", len(outside), wide.Width()*wide.Height())

	inside := 0
	for y := 1; y < wide.Height(); y += 2 {
		for x := 1; x < wide.Width(); x += 2 {
			p := aoc.Pt{X: x, Y: y}
			if !wide.At(p) && !outside[p] {
				inside++
			}
		}
	}
	return inside
}
