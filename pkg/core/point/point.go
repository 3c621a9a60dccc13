package point

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

var (
	// ErrInvalidPoint is returned when text or YAML cannot be read as a point
	ErrInvalidPoint = errors.New("invalid point")
)

// Point is a location on the integer plane
type Point struct {
	X int32
	Y int32
}

// NewPoint creates a point from its coordinates
func NewPoint(x, y int32) Point {
	return Point{X: x, Y: y}
}

// Origin returns the point (0, 0)
func Origin() Point {
	return Point{}
}

// String formats the point as "x,y", the same form Parse accepts
func (p Point) String() string {
	return strconv.FormatInt(int64(p.X), 10) + "," + strconv.FormatInt(int64(p.Y), 10)
}

// Parse reads a point written as "x,y". Surrounding brackets or parentheses
// and whitespace around either coordinate are ignored.
func Parse(s string) (Point, error) {
	trimmed := strings.TrimSpace(s)
	trimmed = strings.TrimPrefix(trimmed, "[")
	trimmed = strings.TrimSuffix(trimmed, "]")
	trimmed = strings.TrimPrefix(trimmed, "(")
	trimmed = strings.TrimSuffix(trimmed, ")")

	xs, ys, ok := strings.Cut(trimmed, ",")
	if !ok {
		return Point{}, fmt.Errorf("%w: %q is not of the form x,y", ErrInvalidPoint, s)
	}

	x, err := strconv.ParseInt(strings.TrimSpace(xs), 10, 32)
	if err != nil {
		return Point{}, fmt.Errorf("%w: x coordinate of %q: %v", ErrInvalidPoint, s, err)
	}
	y, err := strconv.ParseInt(strings.TrimSpace(ys), 10, 32)
	if err != nil {
		return Point{}, fmt.Errorf("%w: y coordinate of %q: %v", ErrInvalidPoint, s, err)
	}

	return Point{X: int32(x), Y: int32(y)}, nil
}

// ParseAll parses every element of args with Parse, stopping at the first error
func ParseAll(args []string) ([]Point, error) {
	points := make([]Point, 0, len(args))
	for i, arg := range args {
		p, err := Parse(arg)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		points = append(points, p)
	}
	return points, nil
}

// Random returns a point with both coordinates drawn uniformly from
// [-bound, bound]. A negative bound is treated as its absolute value.
func Random(r *rand.Rand, bound int32) Point {
	b := int64(bound)
	if b < 0 {
		b = -b
	}
	span := 2*b + 1
	return Point{
		X: int32(r.Int63n(span) - b),
		Y: int32(r.Int63n(span) - b),
	}
}

// RandomN returns n random points, see Random
func RandomN(r *rand.Rand, n int, bound int32) []Point {
	points := make([]Point, n)
	for i := range points {
		points[i] = Random(r, bound)
	}
	return points
}
