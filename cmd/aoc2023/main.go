// Command aoc2023 solves Advent of Code 2023 puzzles.
//
// Each D{day}p{part} method is first checked against the sample in its doc
// comment, then run on the real input:
//
//	aoc2023 -day 17
//	aoc2023 -day 17 -part 2 -skip-sample
package main

import (
	"embed"

	"github.com/advent-go/aoc"
)

func main() {
	aoc.Run(2023, source, &solver{})
}

//go:embed *.go
var source embed.FS

type solver struct {
	*aoc.Puzzle
}
