package aoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolygonArea(t *testing.T) {
	tests := []struct {
		pts     []Pt
		want    int
		bounded int
	}{
		{
			pts: []Pt{
				{X: 0, Y: 0},
				{X: 5, Y: 0},
				{X: 5, Y: 5},
				{X: 0, Y: 5},
				{X: 0, Y: 0},
			},
			want:    25,
			bounded: 36,
		},
		{
			// Counter-clockwise L shape.
			pts: []Pt{
				{X: 0, Y: 0},
				{X: 0, Y: 2},
				{X: 2, Y: 2},
				{X: 2, Y: 1},
				{X: 1, Y: 1},
				{X: 1, Y: 0},
				{X: 0, Y: 0},
			},
			want:    3,
			bounded: 8,
		},
	}

	for _, tt := range tests {
		if got := PolygonArea(tt.pts); got != tt.want {
			t.Errorf("PolygonArea(%v) = %v, want %v", tt.pts, got, tt.want)
		}
		if got := PolygonBoundedPoints(tt.pts); got != tt.bounded {
			t.Errorf("PolygonBoundedPoints(%v) = %v, want %v", tt.pts, got, tt.bounded)
		}
	}
}

func TestLCM(t *testing.T) {
	assert.Equal(t, 12, LCM(4, 6))
	assert.Equal(t, 60, LCM(3, 4, 5, 6))
	assert.Equal(t, 7, LCM(7))
	assert.Panics(t, func() { LCM() })
	assert.Equal(t, 6, GCD(12, 18))
}

func TestExtrapolate(t *testing.T) {
	tests := []struct {
		seq            []int
		next, previous int
	}{
		{[]int{0, 3, 6, 9, 12, 15}, 18, -3},
		{[]int{1, 3, 6, 10, 15, 21}, 28, 0},
		{[]int{10, 13, 16, 21, 30, 45}, 68, 5},
		{[]int{4, 4, 4}, 4, 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.next, Extrapolate(tt.seq, true), "next of %v", tt.seq)
		assert.Equal(t, tt.previous, Extrapolate(tt.seq, false), "previous of %v", tt.seq)
	}
}

func TestSolveQuad(t *testing.T) {
	// Holding a race button for x ms of 7 to beat 9 mm: x^2 - 7x + 9 < 0.
	hi, lo := SolveQuad(1, -7, 9)
	assert.InDelta(t, 5.303, hi, 0.001)
	assert.InDelta(t, 1.697, lo, 0.001)
}

func TestParsing(t *testing.T) {
	assert.Equal(t, []int{7, -3, 12}, Fields(" 7  -3\t12 "))
	assert.Equal(t, 42, Int(" 42\n"))
	assert.Equal(t, 3, Sum(1, 2))
	assert.Equal(t, 4, AbsDiff(3, 7))

	d, err := ParseDigit('7')
	require.NoError(t, err)
	assert.Equal(t, 7, d)
	_, err = ParseDigit('x')
	assert.Error(t, err)
}
