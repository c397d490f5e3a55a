package aoc

import (
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Number is any built-in integer or float type.
type Number interface {
	constraints.Integer | constraints.Float
}

// ParseDigit returns the value of the decimal digit r.
func ParseDigit(r rune) (int, error) {
	if r < '0' || r > '9' {
		return 0, fmt.Errorf("not a digit: %q", r)
	}
	return int(r - '0'), nil
}

// Int parses s, ignoring surrounding space. A bad number is fatal.
func Int(s string) int {
	return MustGet(strconv.Atoi(strings.TrimSpace(s)))
}

// Fields returns the whitespace-separated integers in s.
func Fields(s string) []int {
	var out []int
	for _, f := range strings.Fields(s) {
		out = append(out, Int(f))
	}
	return out
}

func Sum[T Number](nums ...T) T {
	var total T
	for _, n := range nums {
		total += n
	}
	return total
}

// AbsDiff returns |x - y|.
func AbsDiff[T Number](x, y T) T {
	if x < y {
		return y - x
	}
	return x - y
}

// GCD returns the greatest common divisor of a and b.
func GCD(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of nums. It panics if nums is
// empty.
func LCM(nums ...int) int {
	if len(nums) == 0 {
		panic("aoc: LCM of no integers")
	}
	lcm := nums[0]
	for _, n := range nums[1:] {
		lcm = lcm / GCD(lcm, n) * n
	}
	return lcm
}

// SolveQuad returns the roots of ax^2 + bx + c = 0, larger root first when a
// is positive. Complex roots are fatal.
func SolveQuad[T Number](a, b, c T) (float64, float64) {
	fa, fb, fc := float64(a), float64(b), float64(c)
	disc := fb*fb - 4*fa*fc
	if disc < 0 {
		log.Fatalf("no real roots for %vx^2 + %vx + %v", a, b, c)
	}
	sq := math.Sqrt(disc)
	return (-fb + sq) / (2 * fa), (-fb - sq) / (2 * fa)
}

// Extrapolate continues the sequence x by one value: after its end if
// forward is true, otherwise before its start. It takes differences until
// they are constant.
func Extrapolate[T Number](x []T, forward bool) T {
	if len(x) == 1 {
		return x[0]
	}
	diffs := make([]T, len(x)-1)
	constant := true
	for i := range diffs {
		diffs[i] = x[i+1] - x[i]
		constant = constant && diffs[i] == diffs[0]
	}
	step := diffs[0]
	if !constant {
		step = Extrapolate(diffs, forward)
	}
	if forward {
		return x[len(x)-1] + step
	}
	return x[0] - step
}

// PolygonArea returns the area of the closed polygon pts (first point
// repeated at the end), using the shoelace formula. Orientation does not
// matter.
func PolygonArea(pts []Pt) int {
	var twice int
	for i := 1; i < len(pts); i++ {
		twice += pts[i-1].X*pts[i].Y - pts[i-1].Y*pts[i].X
	}
	return AbsDiff(twice, 0) / 2
}

// PolygonPerimeter returns the length of the rectilinear polygon pts.
func PolygonPerimeter(pts []Pt) int {
	var n int
	for i := 1; i < len(pts); i++ {
		n += pts[i-1].MDist(pts[i])
	}
	return n
}

// PolygonBoundedPoints returns the number of integer points inside or on the
// closed rectilinear polygon pts. By Pick's theorem the interior holds
// A - b/2 + 1 of them, where b is the number on the boundary.
func PolygonBoundedPoints(pts []Pt) int {
	return PolygonArea(pts) + PolygonPerimeter(pts)/2 + 1
}
