package main

import (
	"log"
	"strings"

	"github.com/advent-go/aoc"
)

func (s solver) patterns() []aoc.Grid[byte] {
	var out []aoc.Grid[byte]
	for _, b := range s.Blocks() {
		g, err := aoc.ByteGrid(strings.NewReader(b))
		if err != nil {
			log.Fatalf("pattern %d: %v", len(out)+1, err)
		}
		out = append(out, g)
	}
	return out
}

func mismatches(a, b []byte) int {
	n := 0
	for i := range a {
		if a[i] != b[i] {
			n++
		}
	}
	return n
}

// mirror returns the number of lines before the reflection line whose two
// sides differ in exactly smudges cells, or 0 if there is none.
func mirror(lines [][]byte, smudges int) int {
	for i := 1; i < len(lines); i++ {
		diff := 0
		for l, r := i-1, i; l >= 0 && r < len(lines) && diff <= smudges; l, r = l-1, r+1 {
			diff += mismatches(lines[l], lines[r])
		}
		if diff == smudges {
			return i
		}
	}
	return 0
}

func summarize(g aoc.Grid[byte], smudges int) int {
	if n := mirror(g, smudges); n > 0 {
		return 100 * n
	}
	var cols [][]byte
	for _, col := range g.Columns() {
		cols = append(cols, col)
	}
	if n := mirror(cols, smudges); n > 0 {
		return n
	}
	log.Fatalf("no reflection with %d smudges in:\n%v", smudges, g)
	panic("unreachable")
}

/*
want=405

	#.##..##.
	..#.##.#.
	##......#
	##......#
	..#.##.#.
	..##..##.
	#.#.##.#.

	#...##..#
	#....#..#
	..##..###
	#####.##.
	#####.##.
	..##..###
	#....#..#
*/
func (s solver) D13p1() any {
	sum := 0
	for _, g := range s.patterns() {
		sum += summarize(g, 0)
	}
	return sum
}

// want=400
func (s solver) D13p2() any {
	sum := 0
	for _, g := range s.patterns() {
		sum += summarize(g, 1)
	}
	return sum
}
