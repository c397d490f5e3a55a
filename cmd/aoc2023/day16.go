package main

import (
	"github.com/advent-go/aoc"
)

// deflect returns the directions a beam heading d leaves tile in.
func deflect(tile byte, d aoc.Direction) []aoc.Direction {
	horizontal := d == aoc.Left || d == aoc.Right
	switch tile {
	case '/':
		return []aoc.Direction{d.Turn(!horizontal)}
	case '\\':
		return []aoc.Direction{d.Turn(horizontal)}
	case '|':
		if horizontal {
			return []aoc.Direction{aoc.Up, aoc.Down}
		}
	case '-':
		if !horizontal {
			return []aoc.Direction{aoc.Left, aoc.Right}
		}
	}
	return []aoc.Direction{d}
}

// energized returns how many tiles a beam entering at start passes through.
func energized(g aoc.Grid[byte], start aoc.Path) int {
	seen := make(map[aoc.Path]bool)
	lit := make(map[aoc.Pt]bool)
	var todo aoc.Stack[aoc.Path]
	todo.Push(start)
	todo.While(func(p aoc.Path) bool {
		if seen[p] {
			return true
		}
		seen[p] = true
		lit[p.Pt] = true
		for _, d := range deflect(g.At(p.Pt), p.Dir) {
			if next, ok := g.Move(aoc.Path{Pt: p.Pt, Dir: d}); ok {
				todo.Push(next)
			}
		}
		return true
	})
	return len(lit)
}

/*
want=46

	.|...\....
	|.-.\.....
	.....|-...
	........|.
	..........
	.........\
	..../.\\..
	.-.-/..|..
	.|....-|.\
	..//.|....
*/
func (s solver) D16p1() any {
	return energized(s.Grid(), aoc.Path{Dir: aoc.Right})
}

// want=51
func (s solver) D16p2() any {
	g := s.Grid()
	best := 0
	for _, p := range g.EdgePaths() {
		best = max(best, energized(g, p))
	}
	return best
}
