package aoc

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"math"
	"reflect"

	"golang.org/x/exp/constraints"
	"tailscale.com/util/deephash"
)

// Grid is a rectangular matrix of cells, indexed as g[y][x]. Every row has
// the same length.
type Grid[T any] [][]T

// Cell is one in-bounds cell of a Grid along with its coordinates.
type Cell[T any] struct {
	Pt Pt
	V  T
}

func (g Grid[T]) At(p Pt) T {
	return g[p.Y][p.X]
}

func (g Grid[T]) Set(p Pt, v T) {
	g[p.Y][p.X] = v
}

// Get returns the value at column x, row y. It reports false if the
// coordinate is outside the grid.
func (g Grid[T]) Get(x, y int) (T, bool) {
	if y < 0 || y >= len(g) || x < 0 || x >= len(g[y]) {
		var zero T
		return zero, false
	}
	return g[y][x], true
}

// Width returns the number of columns. It panics if g has no rows.
func (g Grid[T]) Width() int {
	if len(g) == 0 {
		panic("aoc: Width of grid with no rows")
	}
	return len(g[0])
}

// Height returns the number of rows.
func (g Grid[T]) Height() int {
	return len(g)
}

func (g Grid[T]) Size() Pt {
	if len(g) == 0 {
		return Pt{}
	}
	return Pt{len(g[0]), len(g)}
}

// CheckedOffset returns v+d. It reports false instead of wrapping if v is
// negative or the result would be negative or overflow.
func CheckedOffset(v, d int) (int, bool) {
	if v < 0 {
		return 0, false
	}
	if d > 0 && v > math.MaxInt-d {
		return 0, false
	}
	n := v + d
	if n < 0 {
		return 0, false
	}
	return n, true
}

// Offset returns the cell at (x+dx, y+dy), or false if that coordinate is
// negative or out of bounds.
func (g Grid[T]) Offset(x, dx, y, dy int) (Cell[T], bool) {
	nx, ok := CheckedOffset(x, dx)
	if !ok {
		return Cell[T]{}, false
	}
	ny, ok := CheckedOffset(y, dy)
	if !ok {
		return Cell[T]{}, false
	}
	v, ok := g.Get(nx, ny)
	if !ok {
		return Cell[T]{}, false
	}
	return Cell[T]{Pt: Pt{nx, ny}, V: v}, true
}

var (
	// Row by row, left to right.
	mooreOffsets = [...]Pt{
		{-1, -1}, {0, -1}, {1, -1},
		{-1, 0}, {1, 0},
		{-1, 1}, {0, 1}, {1, 1},
	}
	// Up, left, right, down.
	vonNeumannOffsets = [...]Pt{{0, -1}, {-1, 0}, {1, 0}, {0, 1}}
)

// Neighbors8 yields the in-bounds cells surrounding (x, y), diagonals
// included, top row first.
func (g Grid[T]) Neighbors8(x, y int) iter.Seq[Cell[T]] {
	return g.neighbors(x, y, mooreOffsets[:])
}

// Neighbors4 yields the in-bounds cells above, left of, right of and below
// (x, y), in that order.
func (g Grid[T]) Neighbors4(x, y int) iter.Seq[Cell[T]] {
	return g.neighbors(x, y, vonNeumannOffsets[:])
}

func (g Grid[T]) neighbors(x, y int, offsets []Pt) iter.Seq[Cell[T]] {
	return func(yield func(Cell[T]) bool) {
		for _, d := range offsets {
			c, ok := g.Offset(x, d.X, y, d.Y)
			if !ok {
				continue
			}
			if !yield(c) {
				return
			}
		}
	}
}

// Column returns a copy of column i, or false if there is no such column.
func (g Grid[T]) Column(i int) ([]T, bool) {
	if len(g) == 0 || i < 0 || i >= g.Width() {
		return nil, false
	}
	col := make([]T, len(g))
	for y, row := range g {
		col[y] = row[i]
	}
	return col, true
}

// Columns yields every column of g, left to right.
func (g Grid[T]) Columns() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		for i := 0; ; i++ {
			col, ok := g.Column(i)
			if !ok || !yield(i, col) {
				return
			}
		}
	}
}

func MakeGrid[T any](x, y int) Grid[T] {
	out := make(Grid[T], y)
	for i := range out {
		out[i] = make([]T, x)
	}
	return out
}

// ParseGrid reads one row per non-empty line of r, converting each rune with
// cell. It fails if cell fails, if rows differ in width, or if there are no
// rows at all.
func ParseGrid[T any](r io.Reader, cell func(p Pt, r rune) (T, error)) (Grid[T], error) {
	var g Grid[T]
	s := bufio.NewScanner(r)
	s.Buffer(nil, 1<<20)
	for line := 1; s.Scan(); line++ {
		text := s.Text()
		if text == "" {
			continue
		}
		y := len(g)
		row := make([]T, 0, len(text))
		for _, c := range text {
			v, err := cell(Pt{len(row), y}, c)
			if err != nil {
				return nil, fmt.Errorf("line %d, column %d: %w", line, len(row)+1, err)
			}
			row = append(row, v)
		}
		if y > 0 && len(row) != len(g[0]) {
			return nil, fmt.Errorf("line %d: %d cells, want %d", line, len(row), len(g[0]))
		}
		g = append(g, row)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	if len(g) == 0 {
		return nil, errors.New("no grid rows")
	}
	return g, nil
}

// ByteGrid parses r as a grid of ASCII characters.
func ByteGrid(r io.Reader) (Grid[byte], error) {
	return ParseGrid(r, func(_ Pt, c rune) (byte, error) {
		if c > 0x7f {
			return 0, fmt.Errorf("non-ASCII character %q", c)
		}
		return byte(c), nil
	})
}

// Find returns the first cell, in row-major order, for which match is true.
func (g Grid[T]) Find(match func(T) bool) (Pt, bool) {
	for y, row := range g {
		for x, v := range row {
			if match(v) {
				return Pt{x, y}, true
			}
		}
	}
	return Pt{}, false
}

var hashers map[reflect.Type]any // map[reflect.Type]func(*Grid[T]) deephash.Sum

// Hash returns a digest of the grid contents, for spotting repeated states
// in simulations.
func (g Grid[T]) Hash() deephash.Sum {
	if hashers == nil {
		hashers = make(map[reflect.Type]any)
	}
	rt := reflect.TypeOf(g)
	h, ok := hashers[rt]
	if !ok {
		h = deephash.HasherForType[Grid[T]]()
		hashers[rt] = h
	}
	return h.(func(*Grid[T]) deephash.Sum)(&g)
}

func (g Grid[T]) TransposeInto(out Grid[T]) {
	size := g.Size()
	for x := 0; x < size.X; x++ {
		for y := 0; y < size.Y; y++ {
			out[x][y] = g[y][x]
		}
	}
}

// Transpose returns a new grid whose rows are the columns of g.
func (g Grid[T]) Transpose() Grid[T] {
	size := g.Size()
	out := MakeGrid[T](size.Y, size.X)
	g.TransposeInto(out)
	return out
}

// Clone returns a deep copy of g.
func (g Grid[T]) Clone() Grid[T] {
	out := make(Grid[T], len(g))
	for y, row := range g {
		out[y] = append([]T(nil), row...)
	}
	return out
}

// String renders a byte grid one row per line; other cell types use %v.
func (g Grid[T]) String() string {
	var buf []byte
	for _, row := range g {
		for _, v := range row {
			if b, ok := any(v).(byte); ok {
				buf = append(buf, b)
			} else {
				buf = fmt.Append(buf, v)
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}

// ToGraph returns the unit-cost graph of the cells reachable from start. If
// allowDiagonals is true, diagonal neighbors are connected as well. If
// blocked is not nil, cells for which it returns true are left out.
func (grid Grid[T]) ToGraph(start Pt, allowDiagonals bool, blocked func(T) bool) *Graph[Pt] {
	neighbors := grid.Neighbors4
	if allowDiagonals {
		neighbors = grid.Neighbors8
	}
	return Explore(start, func(p Pt, arc func(Pt, int)) {
		for c := range neighbors(p.X, p.Y) {
			if blocked == nil || !blocked(c.V) {
				arc(c.Pt, 1)
			}
		}
	})
}

// Path is a point and a direction.
type Path struct {
	Pt  Pt
	Dir Direction
}

// Move steps p one cell in its direction. It reports false if that leaves
// the grid.
func (g Grid[T]) Move(p Path) (Path, bool) {
	dx, dy := p.Dir.Delta()
	c, ok := g.Offset(p.Pt.X, dx, p.Pt.Y, dy)
	if !ok {
		return Path{}, false
	}
	p.Pt = c.Pt
	return p, true
}

// EdgePaths returns every border cell paired with the direction pointing
// into the grid.
func (g Grid[T]) EdgePaths() []Path {
	size := g.Size()
	var paths []Path
	for x := 0; x < size.X; x++ {
		paths = append(paths, Path{
			Pt:  Pt{x, 0},
			Dir: Down,
		}, Path{
			Pt:  Pt{x, size.Y - 1},
			Dir: Up,
		})
	}
	for y := 0; y < size.Y; y++ {
		paths = append(paths, Path{
			Pt:  Pt{0, y},
			Dir: Right,
		}, Path{
			Pt:  Pt{size.X - 1, y},
			Dir: Left,
		})
	}
	return paths
}

type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists the four directions clockwise from Up.
var Directions = [...]Direction{Up, Right, Down, Left}

// Turn rotates d a quarter turn, clockwise if right is true.
func (d Direction) Turn(right bool) Direction {
	if right {
		return (d + 1) % 4
	}
	return (d + 3) % 4
}

func (d Direction) Reverse() Direction {
	return (d + 2) % 4
}

// Delta returns the unit step for d, with y growing downward.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Right:
		return 1, 0
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	}
	panic(fmt.Sprintf("aoc: bad direction %d", int(d)))
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "<"
	case Right:
		return ">"
	case Up:
		return "^"
	case Down:
		return "v"
	}
	return ""
}

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}

func (p Pt2[T]) Add(q Pt2[T]) Pt2[T] {
	return Pt2[T]{p.X + q.X, p.Y + q.Y}
}

// MDist returns the manhattan distance between a and b.
func (a Pt2[T]) MDist(b Pt2[T]) T {
	return AbsDiff[T](a.X, b.X) + AbsDiff[T](a.Y, b.Y)
}
