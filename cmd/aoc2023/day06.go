package main

import (
	"log"
	"math"
	"strings"

	"github.com/advent-go/aoc"
)

// waysToWin returns how many whole button-hold times beat record in a race
// lasting t. Holding for h travels h*(t-h), so the winners lie strictly
// between the roots of h^2 - t*h + record = 0.
func waysToWin(t, record int) int {
	hi, lo := aoc.SolveQuad(1, -t, record)
	first := int(math.Floor(lo)) + 1
	last := int(math.Ceil(hi)) - 1
	if last < first {
		return 0
	}
	return last - first + 1
}

func (s solver) races() (times, records []string) {
	lines := s.Lines()
	if len(lines) < 2 {
		log.Fatalf("want 2 lines, got %d", len(lines))
	}
	times = strings.Fields(aoc.TrimPrefix(lines[0], "Time:"))
	records = strings.Fields(aoc.TrimPrefix(lines[1], "Distance:"))
	if len(times) != len(records) {
		log.Fatalf("%d times but %d distances", len(times), len(records))
	}
	return times, records
}

/*
want=288

	Time:      7  15   30
	Distance:  9  40  200
*/
func (s solver) D6p1() any {
	times, records := s.races()
	prod := 1
	for i := range times {
		prod *= waysToWin(aoc.Int(times[i]), aoc.Int(records[i]))
	}
	return prod
}

// want=71503
func (s solver) D6p2() any {
	times, records := s.races()
	return waysToWin(aoc.Int(strings.Join(times, "")), aoc.Int(strings.Join(records, "")))
}
