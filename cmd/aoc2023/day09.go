package main

import "github.com/advent-go/aoc"

func (s solver) extrapolateAll(forward bool) int {
	var next []int
	s.ForLines(func(line string) {
		if vals := aoc.Fields(line); len(vals) > 0 {
			next = append(next, aoc.Extrapolate(vals, forward))
		}
	})
	return aoc.Sum(next...)
}

/*
want=114

	0 3 6 9 12 15
	1 3 6 10 15 21
	10 13 16 21 30 45
*/
func (s solver) D9p1() any {
	return s.extrapolateAll(true)
}

// want=2
func (s solver) D9p2() any {
	return s.extrapolateAll(false)
}
