package aoc

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunLimitsNext(t *testing.T) {
	size := Pt{5, 5}
	tests := []struct {
		name   string
		limits RunLimits
		from   Heading
		want   []Heading
	}{
		{
			name:   "fresh start",
			limits: RunLimits{Max: 3},
			from:   Heading{Pt: Pt{2, 2}, Dir: Right},
			want: []Heading{
				{Pt: Pt{2, 1}, Dir: Up, Run: 1},
				{Pt: Pt{3, 2}, Dir: Right, Run: 1},
				{Pt: Pt{2, 3}, Dir: Down, Run: 1},
			},
		},
		{
			name:   "run exhausted",
			limits: RunLimits{Max: 3},
			from:   Heading{Pt: Pt{2, 2}, Dir: Right, Run: 3},
			want: []Heading{
				{Pt: Pt{2, 1}, Dir: Up, Run: 1},
				{Pt: Pt{2, 3}, Dir: Down, Run: 1},
			},
		},
		{
			name:   "too soon to turn",
			limits: RunLimits{Min: 4, Max: 10},
			from:   Heading{Pt: Pt{1, 2}, Dir: Down, Run: 2},
			want: []Heading{
				{Pt: Pt{1, 3}, Dir: Down, Run: 3},
			},
		},
		{
			name:   "not moved yet",
			limits: RunLimits{Min: 4, Max: 10},
			from:   Heading{Dir: Right},
			want: []Heading{
				{Pt: Pt{1, 0}, Dir: Right, Run: 1},
				{Pt: Pt{0, 1}, Dir: Down, Run: 1},
			},
		},
		{
			name:   "corner",
			limits: RunLimits{Max: 3},
			from:   Heading{Pt: Pt{0, 0}, Dir: Up, Run: 1},
			want: []Heading{
				{Pt: Pt{1, 0}, Dir: Right, Run: 1},
			},
		},
		{
			name:   "far edge",
			limits: RunLimits{Max: 3},
			from:   Heading{Pt: Pt{4, 4}, Dir: Right, Run: 1},
			want: []Heading{
				{Pt: Pt{4, 3}, Dir: Up, Run: 1},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slices.Collect(tt.limits.Next(tt.from, size))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRunLimitsNeverReverses(t *testing.T) {
	l := RunLimits{Max: 3}
	for _, d := range Directions {
		from := Heading{Pt: Pt{2, 2}, Dir: d, Run: 1}
		for next := range l.Next(from, Pt{5, 5}) {
			assert.NotEqual(t, d.Reverse(), next.Dir)
		}
	}
}
