package main

import (
	"log"
	"strconv"
	"strings"

	"github.com/advent-go/aoc"
)

type digStep struct {
	dir  aoc.Direction
	dist int
}

var digDirs = map[string]aoc.Direction{
	"U": aoc.Up, "R": aoc.Right, "D": aoc.Down, "L": aoc.Left,
	"3": aoc.Up, "0": aoc.Right, "1": aoc.Down, "2": aoc.Left,
}

// parseDigStep parses a line like "R 6 (#70c710)". If fromColor is set,
// the step is read from the hex code instead: five digits of distance
// followed by one of direction.
func parseDigStep(line string, fromColor bool) digStep {
	f := strings.Fields(line)
	if len(f) != 3 {
		log.Fatalf("bad dig step %q", line)
	}
	dir, dist := f[0], f[1]
	if fromColor {
		hex := strings.TrimSuffix(aoc.TrimPrefix(f[2], "(#"), ")")
		if len(hex) != 6 {
			log.Fatalf("bad color in %q", line)
		}
		n, err := strconv.ParseInt(hex[:5], 16, 64)
		if err != nil {
			log.Fatalf("bad color in %q: %v", line, err)
		}
		dir, dist = hex[5:], strconv.FormatInt(n, 10)
	}
	d, ok := digDirs[dir]
	if !ok {
		log.Fatalf("bad direction %q in %q", dir, line)
	}
	return digStep{dir: d, dist: aoc.Int(dist)}
}

// lagoonSize returns the number of cubic meters dug out, trench included.
func (s solver) lagoonSize(fromColor bool) int {
	cur := aoc.Pt{}
	pts := []aoc.Pt{cur}
	s.ForLines(func(line string) {
		if line == "" {
			return
		}
		st := parseDigStep(line, fromColor)
		dx, dy := st.dir.Delta()
		cur = cur.Add(aoc.Pt{X: dx * st.dist, Y: dy * st.dist})
		pts = append(pts, cur)
	})
	if cur != pts[0] {
		log.Fatalf("dig plan ends at %v, not back at the start", cur)
	}
	return aoc.PolygonBoundedPoints(pts)
}

/*
want=62

	R 6 (#70c710)
	D 5 (#0dc571)
	L 2 (#5713f0)
	D 2 (#d2c081)
	R 2 (#59c680)
	D 2 (#411b91)
	L 5 (#8ceee2)
	U 2 (#caa173)
	L 1 (#1b58a2)
	U 2 (#caa171)
	R 2 (#7807d2)
	U 3 (#a77fa3)
	L 2 (#015232)
	U 2 (#7a21e3)
*/
func (s solver) D18p1() any {
	return s.lagoonSize(false)
}

// want=952408144115
func (s solver) D18p2() any {
	return s.lagoonSize(true)
}
