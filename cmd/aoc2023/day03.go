package main

import (
	"github.com/advent-go/aoc"
)

// partNumber is a number in the engine schematic, identified by the
// position of its first digit.
type partNumber struct {
	start aoc.Pt
	val   int
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isSymbol(b byte) bool {
	return b != '.' && !isDigit(b)
}

// partNumbers maps every digit cell of g to the number it belongs to.
func partNumbers(g aoc.Grid[byte]) map[aoc.Pt]partNumber {
	nums := make(map[aoc.Pt]partNumber)
	for y, row := range g {
		for x := 0; x < len(row); {
			if !isDigit(row[x]) {
				x++
				continue
			}
			end := x
			for end < len(row) && isDigit(row[end]) {
				end++
			}
			n := partNumber{start: aoc.Pt{X: x, Y: y}, val: aoc.Int(string(row[x:end]))}
			for i := x; i < end; i++ {
				nums[aoc.Pt{X: i, Y: y}] = n
			}
			x = end
		}
	}
	return nums
}

// adjacentNumbers returns the distinct numbers touching p, in the order
// they are first seen around it.
func adjacentNumbers(g aoc.Grid[byte], nums map[aoc.Pt]partNumber, p aoc.Pt) []partNumber {
	var out []partNumber
	for c := range g.Neighbors8(p.X, p.Y) {
		n, ok := nums[c.Pt]
		if !ok {
			continue
		}
		dup := false
		for _, o := range out {
			dup = dup || o.start == n.start
		}
		if !dup {
			out = append(out, n)
		}
	}
	return out
}

/*
want=4361

	467..114..
	...*......
	..35..633.
	......#...
	617*......
	.....+.58.
	..592.....
	......755.
	...$.*....
	.664.598..
*/
func (s solver) D3p1() any {
	g := s.Grid()
	nums := partNumbers(g)
	parts := make(map[aoc.Pt]int)
	for y, row := range g {
		for x, b := range row {
			if !isSymbol(b) {
				continue
			}
			for _, n := range adjacentNumbers(g, nums, aoc.Pt{X: x, Y: y}) {
				parts[n.start] = n.val
			}
		}
	}
	sum := 0
	for _, v := range parts {
		sum += v
	}
	return sum
}

// want=467835
func (s solver) D3p2() any {
	g := s.Grid()
	nums := partNumbers(g)
	sum := 0
	for y, row := range g {
		for x, b := range row {
			if b != '*' {
				continue
			}
			if adj := adjacentNumbers(g, nums, aoc.Pt{X: x, Y: y}); len(adj) == 2 {
				sum += adj[0].val * adj[1].val
			}
		}
	}
	return sum
}
