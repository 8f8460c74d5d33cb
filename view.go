package koch

import "math"

// Valid ranges for the interactive parameters. Mutators clamp rather than
// reject, so a View never holds an out-of-range value.
const (
	MinZoom = 0.1
	MaxZoom = 50.0

	MinDepth = 0
	MaxDepth = 7
)

// Defaults for a freshly created View.
const (
	DefaultZoom     = 1.0
	DefaultDepth    = 4
	DefaultBaseSize = 600.0
)

// View holds the interactive parameters of the snowflake display: zoom
// factor, pan offset and recursion depth. It places the base triangle on a
// canvas and assembles the full outline.
//
// A View is not safe for concurrent use; the intended model is a single
// event-processing goroutine mutating it and regenerating the outline
// synchronously.
type View struct {
	zoom       float64
	panX, panY float64
	depth      int
	baseSize   float64
}

// NewView creates a View with the default zoom, pan and depth, then applies
// the given options.
func NewView(opts ...ViewOption) *View {
	v := &View{
		zoom:     DefaultZoom,
		depth:    DefaultDepth,
		baseSize: DefaultBaseSize,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Zoom returns the current zoom factor.
func (v *View) Zoom() float64 { return v.zoom }

// Depth returns the current recursion depth.
func (v *View) Depth() int { return v.depth }

// ApplyZoomFactor multiplies the zoom by factor and clamps the result to
// [MinZoom, MaxZoom]. Every zoom source (wheel, keys, buttons) goes through
// here; only the derivation of factor differs per input device.
func (v *View) ApplyZoomFactor(factor float64) {
	v.zoom = clamp(v.zoom*factor, MinZoom, MaxZoom)
}

// Pan shifts the view by (dx, dy) screen units. Panning is unbounded.
func (v *View) Pan(dx, dy float64) {
	v.panX += dx
	v.panY += dy
}

// AdjustDepth adds delta to the recursion depth and clamps the result to
// [MinDepth, MaxDepth].
func (v *View) AdjustDepth(delta int) {
	d := v.depth + delta
	if d < MinDepth {
		d = MinDepth
	}
	if d > MaxDepth {
		d = MaxDepth
	}
	v.depth = d
}

// Reset restores the default zoom, pan and depth. The base size is a
// construction-time constant and is left untouched.
func (v *View) Reset() {
	v.zoom = DefaultZoom
	v.panX, v.panY = 0, 0
	v.depth = DefaultDepth
}

// Matrix returns the view transform for a w-by-h canvas: base-triangle
// coordinates (origin at the triangle's bounding center) scaled by the zoom
// and moved to the canvas center offset by the pan.
func (v *View) Matrix(w, h float64) Matrix {
	return Translate(w/2+v.panX, h/2+v.panY).Multiply(Scale(v.zoom, v.zoom))
}

// TriangleVertices returns the three corners of the base equilateral
// triangle for a w-by-h canvas, apex up, in the order apex, bottom-left,
// bottom-right. The side length is the base size times the current zoom.
func (v *View) TriangleVertices(w, h float64) (Point, Point, Point) {
	m := v.Matrix(w, h)
	height := v.baseSize * math.Sqrt(3) / 2
	apex := m.TransformPoint(Pt(0, -height/2))
	left := m.TransformPoint(Pt(-v.baseSize/2, height/2))
	right := m.TransformPoint(Pt(v.baseSize/2, height/2))
	return apex, left, right
}

// Outline builds the snowflake outline for a w-by-h canvas: the Koch curve
// of each triangle side at the current depth, spliced into one closed
// polygon of 3*4^depth points. The first point is not repeated at the end;
// the renderer closes the polygon.
func (v *View) Outline(w, h float64) Curve {
	apex, left, right := v.TriangleVertices(w, h)

	c := make(Curve, 0, 3*(PointCount(v.depth)-1))
	c = appendKoch(c, apex, left, v.depth)
	c = appendKoch(c, left, right, v.depth)
	c = appendKoch(c, right, apex, v.depth)

	Logger().Debug("outline rebuilt",
		"depth", v.depth, "zoom", v.zoom, "points", len(c))
	return c
}

// Fit adjusts zoom and pan so the outline is centered on the canvas and
// fills most of it, whatever the current state.
func (v *View) Fit(w, h float64) {
	b := v.Outline(w, h).Bounds()
	if b.Width() == 0 || b.Height() == 0 {
		return
	}
	// Bounding center expressed in base-triangle coordinates; it stays put
	// while zoom changes, so the new pan follows directly from it.
	c := b.Center()
	bx := (c.X - w/2 - v.panX) / v.zoom
	by := (c.Y - h/2 - v.panY) / v.zoom

	const margin = 0.9
	v.ApplyZoomFactor(margin * math.Min(w/b.Width(), h/b.Height()))
	v.panX = -v.zoom * bx
	v.panY = -v.zoom * by
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}
