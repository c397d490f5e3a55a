package aoc

import "iter"

// Heading is a position together with the direction it was entered from and
// the number of consecutive steps taken in that direction. It is comparable,
// so it can be used directly as a Graph key.
type Heading struct {
	Pt  Pt
	Dir Direction
	Run int
}

// RunLimits restricts straight-line travel: a Heading must have gone at
// least Min steps in a row before turning, and at most Max.
type RunLimits struct {
	Min, Max int
}

// Next yields the legal successors of h inside a grid of the given size.
// Reversing is never allowed. Going straight increments Run; turning resets
// it to 1. A Heading with Run 0 has not moved yet and may turn regardless
// of Min.
func (l RunLimits) Next(h Heading, size Pt) iter.Seq[Heading] {
	return func(yield func(Heading) bool) {
		for _, d := range [...]Direction{h.Dir.Turn(false), h.Dir, h.Dir.Turn(true)} {
			run := 1
			if d == h.Dir {
				if h.Run >= l.Max {
					continue
				}
				run = h.Run + 1
			} else if h.Run > 0 && h.Run < l.Min {
				continue
			}
			dx, dy := d.Delta()
			x, okx := CheckedOffset(h.Pt.X, dx)
			y, oky := CheckedOffset(h.Pt.Y, dy)
			if !okx || !oky || x >= size.X || y >= size.Y {
				continue
			}
			if !yield(Heading{Pt: Pt{x, y}, Dir: d, Run: run}) {
				return
			}
		}
	}
}
