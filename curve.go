package koch

import (
	"errors"
	"math"
)

// ErrNegativeDepth is returned by Generate when the recursion depth is
// negative. View clamps its depth before generating, so seeing this error
// indicates a caller bug rather than a runtime condition.
var ErrNegativeDepth = errors.New("koch: negative recursion depth")

// Curve is an ordered sequence of points describing a polyline.
// Insertion order is the drawn path.
type Curve []Point

// Generate computes the von Koch curve between start and end at the given
// recursion depth. The result has PointCount(depth) points, begins with
// start and ends with end. Depth 0 returns the segment unchanged.
//
// A zero-length segment has no direction to build a spike from and is
// returned as the two-point curve [start, end] at any depth.
func Generate(start, end Point, depth int) (Curve, error) {
	if depth < 0 {
		return nil, ErrNegativeDepth
	}
	c := make(Curve, 0, PointCount(depth))
	c = appendKoch(c, start, end, depth)
	return append(c, end), nil
}

// PointCount returns the number of points produced by Generate for a
// non-degenerate segment at the given depth: 4^depth + 1.
func PointCount(depth int) int {
	n := 1
	for i := 0; i < depth; i++ {
		n *= 4
	}
	return n + 1
}

// appendKoch appends the points of the Koch curve from start to end onto c,
// excluding the final end point. Leaving end off lets sub-curves and the
// three snowflake sides splice without duplicate points at the joins.
func appendKoch(c Curve, start, end Point, depth int) Curve {
	if depth == 0 {
		return append(c, start)
	}
	d := end.Sub(start)
	length := d.Length()
	if length == 0 {
		return append(c, start)
	}
	angle := d.Angle()

	// One third and two thirds along the segment, plus the spike apex:
	// rotated +60 degrees from the direction of travel, one third of the
	// segment length away from p1.
	p1 := start.Add(d.Div(3))
	p3 := start.Add(d.Mul(2.0 / 3.0))
	p2 := p1.Add(Pt(math.Cos(angle+math.Pi/3), math.Sin(angle+math.Pi/3)).Mul(length / 3))

	c = appendKoch(c, start, p1, depth-1)
	c = appendKoch(c, p1, p2, depth-1)
	c = appendKoch(c, p2, p3, depth-1)
	return appendKoch(c, p3, end, depth-1)
}

// Bounds returns the axis-aligned bounding box of the curve.
// An empty curve yields the zero Rect.
func (c Curve) Bounds() Rect {
	if len(c) == 0 {
		return Rect{}
	}
	r := Rect{Min: c[0], Max: c[0]}
	for _, p := range c[1:] {
		r.Min.X = math.Min(r.Min.X, p.X)
		r.Min.Y = math.Min(r.Min.Y, p.Y)
		r.Max.X = math.Max(r.Max.X, p.X)
		r.Max.Y = math.Max(r.Max.Y, p.Y)
	}
	return r
}

// Rect represents an axis-aligned rectangle.
// Min is the top-left corner, Max the bottom-right.
type Rect struct {
	Min, Max Point
}

// NewRect creates a rectangle from two points.
// The points are normalized so Min <= Max.
func NewRect(p1, p2 Point) Rect {
	return Rect{
		Min: Point{X: math.Min(p1.X, p2.X), Y: math.Min(p1.Y, p2.Y)},
		Max: Point{X: math.Max(p1.X, p2.X), Y: math.Max(p1.Y, p2.Y)},
	}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return r.Min.Lerp(r.Max, 0.5)
}
