package aoc

import (
	"iter"
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var digits3x3 = Grid[int]{
	{1, 2, 3},
	{4, 5, 6},
	{7, 8, 9},
}

func values[T any](seq iter.Seq[Cell[T]]) []T {
	var out []T
	for c := range seq {
		out = append(out, c.V)
	}
	return out
}

func TestGridDimensions(t *testing.T) {
	g := MakeGrid[byte](4, 2)
	assert.Equal(t, 4, g.Width())
	assert.Equal(t, 2, g.Height())
	assert.Equal(t, Pt{4, 2}, g.Size())

	assert.Equal(t, 0, Grid[int]{}.Height())
	assert.Panics(t, func() { Grid[int]{}.Width() })
}

func TestGridGet(t *testing.T) {
	tests := []struct {
		x, y   int
		want   int
		wantOK bool
	}{
		{0, 0, 1, true},
		{2, 0, 3, true},
		{1, 2, 8, true},
		{3, 0, 0, false},
		{0, 3, 0, false},
		{-1, 0, 0, false},
		{0, -1, 0, false},
	}
	for _, tt := range tests {
		got, ok := digits3x3.Get(tt.x, tt.y)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("Get(%d, %d) = %v, %v; want %v, %v", tt.x, tt.y, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestCheckedOffset(t *testing.T) {
	tests := []struct {
		v, d   int
		want   int
		wantOK bool
	}{
		{0, 0, 0, true},
		{3, -3, 0, true},
		{3, 2, 5, true},
		{0, -1, 0, false},
		{-1, 1, 0, false},
		{1, math.MaxInt, 0, false},
		{math.MaxInt, 0, math.MaxInt, true},
		{5, math.MinInt, 0, false},
	}
	for _, tt := range tests {
		got, ok := CheckedOffset(tt.v, tt.d)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("CheckedOffset(%d, %d) = %v, %v; want %v, %v", tt.v, tt.d, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestGridOffset(t *testing.T) {
	c, ok := digits3x3.Offset(1, 1, 1, -1)
	require.True(t, ok)
	assert.Equal(t, Cell[int]{Pt: Pt{2, 0}, V: 3}, c)

	for _, d := range [][2]int{
		{-2, 0},
		{0, -2},
		{2, 0},
		{0, 2},
		{math.MaxInt, 0},
		{0, math.MaxInt},
		{math.MinInt, 0},
		{0, math.MinInt},
	} {
		if c, ok := digits3x3.Offset(1, d[0], 1, d[1]); ok {
			t.Errorf("Offset(1, %d, 1, %d) = %v; want none", d[0], d[1], c)
		}
	}
}

func TestNeighbors8(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 4, 6, 7, 8, 9}, values(digits3x3.Neighbors8(1, 1)))
	assert.Equal(t, []int{2, 4, 5}, values(digits3x3.Neighbors8(0, 0)))
	assert.Equal(t, []int{5, 6, 8}, values(digits3x3.Neighbors8(2, 2)))
	assert.Equal(t, []int{1, 3, 4, 5, 6}, values(digits3x3.Neighbors8(1, 0)))
}

func TestNeighbors4(t *testing.T) {
	assert.Equal(t, []int{2, 4, 6, 8}, values(digits3x3.Neighbors4(1, 1)))
	assert.Equal(t, []int{2, 4}, values(digits3x3.Neighbors4(0, 0)))
	assert.Equal(t, []int{1, 3, 5}, values(digits3x3.Neighbors4(1, 0)))
}

func TestNeighborCounts(t *testing.T) {
	g := MakeGrid[int](5, 4)
	count := func(seq iter.Seq[Cell[int]]) int {
		return len(values(seq))
	}
	for y := range g.Height() {
		for x := range g.Width() {
			edges := 0
			if x == 0 || x == g.Width()-1 {
				edges++
			}
			if y == 0 || y == g.Height()-1 {
				edges++
			}
			want8, want4 := 8, 4
			switch edges {
			case 1:
				want8, want4 = 5, 3
			case 2:
				want8, want4 = 3, 2
			}
			assert.Equal(t, want8, count(g.Neighbors8(x, y)), "Neighbors8(%d, %d)", x, y)
			assert.Equal(t, want4, count(g.Neighbors4(x, y)), "Neighbors4(%d, %d)", x, y)
		}
	}
}

func TestNeighborsSingleCell(t *testing.T) {
	g := Grid[int]{{7}}
	assert.Empty(t, values(g.Neighbors8(0, 0)))
	assert.Empty(t, values(g.Neighbors4(0, 0)))
}

func TestNeighborsStopEarly(t *testing.T) {
	var got []int
	for c := range digits3x3.Neighbors8(1, 1) {
		got = append(got, c.V)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []int{1, 2}, got)
}

func TestColumn(t *testing.T) {
	col, ok := digits3x3.Column(1)
	require.True(t, ok)
	assert.Equal(t, []int{2, 5, 8}, col)

	_, ok = digits3x3.Column(3)
	assert.False(t, ok)
	_, ok = digits3x3.Column(-1)
	assert.False(t, ok)
	_, ok = Grid[int]{}.Column(0)
	assert.False(t, ok)

	var cols [][]int
	for i, c := range digits3x3.Columns() {
		assert.Equal(t, len(cols), i)
		cols = append(cols, c)
	}
	assert.Equal(t, [][]int(digits3x3.Transpose()), cols)
}

func TestParseGrid(t *testing.T) {
	g, err := ParseGrid(strings.NewReader("123\n456\n\n"), func(_ Pt, r rune) (int, error) {
		return ParseDigit(r)
	})
	require.NoError(t, err)
	assert.Equal(t, Grid[int]{{1, 2, 3}, {4, 5, 6}}, g)

	_, err = ParseGrid(strings.NewReader("12\n4x\n"), func(_ Pt, r rune) (int, error) {
		return ParseDigit(r)
	})
	assert.ErrorContains(t, err, "line 2, column 2")

	_, err = ByteGrid(strings.NewReader("abc\nab\n"))
	assert.ErrorContains(t, err, "2 cells, want 3")

	_, err = ByteGrid(strings.NewReader("\n\n"))
	assert.Error(t, err)

	_, err = ByteGrid(strings.NewReader("aé\n"))
	assert.Error(t, err)
}

func TestGridFind(t *testing.T) {
	g := Grid[byte]{[]byte("..."), []byte(".S.")}
	p, ok := g.Find(func(b byte) bool { return b == 'S' })
	require.True(t, ok)
	assert.Equal(t, Pt{1, 1}, p)

	_, ok = g.Find(func(b byte) bool { return b == '#' })
	assert.False(t, ok)
}

func TestGridHash(t *testing.T) {
	a := Grid[byte]{[]byte("#."), []byte(".#")}
	b := a.Clone()
	assert.Equal(t, a.Hash(), b.Hash())

	b.Set(Pt{0, 0}, '.')
	assert.Equal(t, byte('#'), a.At(Pt{0, 0}))
	assert.NotEqual(t, a.Hash(), b.Hash())
}

func TestGridString(t *testing.T) {
	assert.Equal(t, "#.\n.#\n", Grid[byte]{[]byte("#."), []byte(".#")}.String())
	assert.Equal(t, "12\n34\n", Grid[int]{{1, 2}, {3, 4}}.String())
}

func TestDirection(t *testing.T) {
	for _, d := range Directions {
		assert.Equal(t, d, d.Turn(true).Turn(false))
		assert.Equal(t, d.Reverse(), d.Turn(true).Turn(true))
		dx, dy := d.Delta()
		rx, ry := d.Reverse().Delta()
		assert.Equal(t, [2]int{-dx, -dy}, [2]int{rx, ry})
	}
	assert.Equal(t, Right, Up.Turn(true))
	assert.Equal(t, Left, Up.Turn(false))
	assert.Equal(t, "^>v<", Up.String()+Right.String()+Down.String()+Left.String())
	assert.Panics(t, func() { Direction(7).Delta() })
}

func TestMove(t *testing.T) {
	next, ok := digits3x3.Move(Path{Pt: Pt{1, 1}, Dir: Up})
	require.True(t, ok)
	assert.Equal(t, Path{Pt: Pt{1, 0}, Dir: Up}, next)

	_, ok = digits3x3.Move(next)
	assert.False(t, ok)
	_, ok = digits3x3.Move(Path{Pt: Pt{2, 2}, Dir: Right})
	assert.False(t, ok)
}

func TestEdgePaths(t *testing.T) {
	paths := digits3x3.EdgePaths()
	assert.Len(t, paths, 12)
	for _, p := range paths {
		next, ok := digits3x3.Move(p)
		if assert.True(t, ok, "%v points out of the grid", p) {
			assert.NotEqual(t, p.Pt, next.Pt)
		}
	}
	assert.True(t, slices.Contains(paths, Path{Pt: Pt{2, 1}, Dir: Left}))
}

func TestToGraph(t *testing.T) {
	g := Grid[byte]{
		[]byte("..#"),
		[]byte(".#."),
		[]byte("..."),
	}
	wall := func(b byte) bool { return b == '#' }

	graph := g.ToGraph(Pt{0, 0}, false, wall)
	assert.Len(t, graph.Nodes, 7)
	assert.False(t, graph.Nodes[Pt{2, 0}])
	assert.Equal(t, map[Pt]int{{1, 0}: 1, {0, 1}: 1}, graph.Edges[Pt{0, 0}])

	diag := g.ToGraph(Pt{0, 0}, true, wall)
	assert.Equal(t, 1, diag.Edges[Pt{0, 1}][Pt{1, 2}])

	all := g.ToGraph(Pt{0, 0}, false, nil)
	assert.Len(t, all.Nodes, 9)
}

func TestMDist(t *testing.T) {
	assert.Equal(t, 7, Pt{1, 6}.MDist(Pt{5, 3}))
	assert.Equal(t, Pt{3, -1}, Pt{1, 1}.Add(Pt{2, -2}))
}
