package main

import (
	"bytes"

	"github.com/advent-go/aoc"
)

// emptyBefore returns, for each index of lines, how many lines before it
// contain no galaxy.
func emptyBefore(lines [][]byte) []int {
	out := make([]int, len(lines))
	n := 0
	for i, l := range lines {
		out[i] = n
		if bytes.IndexByte(l, '#') == -1 {
			n++
		}
	}
	return out
}

// galaxyDistances returns the sum of the distances between every pair of
// galaxies after each empty row and column has grown to factor copies.
func galaxyDistances(g aoc.Grid[byte], factor int) int {
	rows := emptyBefore(g)
	cols := emptyBefore(g.Transpose())
	var galaxies []aoc.Pt
	for y, row := range g {
		for x, b := range row {
			if b == '#' {
				galaxies = append(galaxies, aoc.Pt{
					X: x + cols[x]*(factor-1),
					Y: y + rows[y]*(factor-1),
				})
			}
		}
	}
	sum := 0
	for i, a := range galaxies {
		for _, b := range galaxies[i+1:] {
			sum += a.MDist(b)
		}
	}
	return sum
}

/*
want=374

	...#......
	.......#..
	#.........
	..........
	......#...
	.#........
	.........#
	..........
	.......#..
	#...#.....
*/
func (s solver) D11p1() any {
	return galaxyDistances(s.Grid(), 2)
}

// want=8410
func (s solver) D11p2() any {
	factor := 1_000_000
	if s.SampleMode {
		factor = 100
	}
	return galaxyDistances(s.Grid(), factor)
}
