package main

import (
	"slices"

	"github.com/advent-go/aoc"
	"tailscale.com/util/deephash"
)

// tilt rolls every round rock ('O') in direction d until it hits a cube
// rock, another round rock or the edge.
func tilt(g aoc.Grid[byte], d aoc.Direction) {
	size := g.Size()
	pts := make([]aoc.Pt, 0, size.X*size.Y)
	for y := range size.Y {
		for x := range size.X {
			pts = append(pts, aoc.Pt{X: x, Y: y})
		}
	}
	// Rocks nearest the destination edge move first.
	if d == aoc.Down || d == aoc.Right {
		slices.Reverse(pts)
	}
	for _, p := range pts {
		if g.At(p) != 'O' {
			continue
		}
		cur := aoc.Path{Pt: p, Dir: d}
		for {
			next, ok := g.Move(cur)
			if !ok || g.At(next.Pt) != '.' {
				break
			}
			cur = next
		}
		g.Set(p, '.')
		g.Set(cur.Pt, 'O')
	}
}

func spin(g aoc.Grid[byte]) {
	for _, d := range []aoc.Direction{aoc.Up, aoc.Left, aoc.Down, aoc.Right} {
		tilt(g, d)
	}
}

// northLoad sums, for each round rock, its distance from the south edge
// counted in rows.
func northLoad(g aoc.Grid[byte]) int {
	load := 0
	for y, row := range g {
		for _, b := range row {
			if b == 'O' {
				load += len(g) - y
			}
		}
	}
	return load
}

/*
want=136

	O....#....
	O.OO#....#
	.....##...
	OO.#O....O
	.O.....O#.
	O.#..O.#.#
	..O..#O..O
	.......O..
	#....###..
	#OO..#....
*/
func (s solver) D14p1() any {
	g := s.Grid()
	tilt(g, aoc.Up)
	return northLoad(g)
}

// want=64
func (s solver) D14p2() any {
	const cycles = 1_000_000_000
	g := s.Grid()
	seen := make(map[deephash.Sum]int)
	for i := 0; i < cycles; i++ {
		h := g.Hash()
		if j, ok := seen[h]; ok {
			period := i - j
			s.Debugf("state after %d spins repeats after %d more", j, period)
			for range (cycles - i) % period {
				spin(g)
			}
			break
		}
		seen[h] = i
		spin(g)
	}
	return northLoad(g)
}
