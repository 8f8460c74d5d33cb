package koch

import (
	"errors"
	"math"
	"testing"
)

const epsilon = 1e-9

// pointsEqual compares coordinates within eps; eps = 0 demands exact
// equality.
func pointsEqual(p1, p2 Point, eps float64) bool {
	return math.Abs(p1.X-p2.X) <= eps && math.Abs(p1.Y-p2.Y) <= eps
}

func TestPointsEqual(t *testing.T) {
	tests := []struct {
		name   string
		p1, p2 Point
		eps    float64
		want   bool
	}{
		{"identical exact", Pt(500, 140.1923788646684), Pt(500, 140.1923788646684), 0, true},
		{"identical with tolerance", Pt(1, 2), Pt(1, 2), epsilon, true},
		{"different exact", Pt(1, 2), Pt(1, 2.0000001), 0, false},
		{"within tolerance", Pt(1, 2), Pt(1, 2+1e-12), epsilon, true},
		{"outside tolerance", Pt(1, 2), Pt(1, 2.1), epsilon, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pointsEqual(tt.p1, tt.p2, tt.eps); got != tt.want {
				t.Errorf("pointsEqual(%v, %v, %v) = %v, want %v", tt.p1, tt.p2, tt.eps, got, tt.want)
			}
		})
	}
}

func curvesEqual(c1, c2 Curve, eps float64) bool {
	if len(c1) != len(c2) {
		return false
	}
	for i := range c1 {
		if !pointsEqual(c1[i], c2[i], eps) {
			return false
		}
	}
	return true
}

func TestGenerate_Depth0(t *testing.T) {
	tests := []struct {
		name       string
		start, end Point
	}{
		{"horizontal", Pt(0, 0), Pt(100, 0)},
		{"diagonal", Pt(-3, 7), Pt(12.5, -4.25)},
		{"vertical", Pt(2, 2), Pt(2, 50)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Generate(tt.start, tt.end, 0)
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			want := Curve{tt.start, tt.end}
			if !curvesEqual(c, want, 0) {
				t.Errorf("Generate() = %v, want %v", c, want)
			}
		})
	}
}

func TestGenerate_PointCount(t *testing.T) {
	start, end := Pt(-50, 20), Pt(130, -60)
	for depth := 0; depth <= 6; depth++ {
		c, err := Generate(start, end, depth)
		if err != nil {
			t.Fatalf("Generate(depth=%d) error = %v", depth, err)
		}
		if len(c) != PointCount(depth) {
			t.Errorf("depth %d: len = %d, want %d", depth, len(c), PointCount(depth))
		}
	}
}

func TestGenerate_Endpoints(t *testing.T) {
	start, end := Pt(10, 40), Pt(-200, 15)
	for depth := 0; depth <= 6; depth++ {
		c, err := Generate(start, end, depth)
		if err != nil {
			t.Fatalf("Generate(depth=%d) error = %v", depth, err)
		}
		if !pointsEqual(c[0], start, 0) {
			t.Errorf("depth %d: first point = %v, want %v", depth, c[0], start)
		}
		if !pointsEqual(c[len(c)-1], end, 0) {
			t.Errorf("depth %d: last point = %v, want %v", depth, c[len(c)-1], end)
		}
	}
}

func TestGenerate_NegativeDepth(t *testing.T) {
	c, err := Generate(Pt(0, 0), Pt(1, 0), -1)
	if !errors.Is(err, ErrNegativeDepth) {
		t.Errorf("Generate(depth=-1) error = %v, want ErrNegativeDepth", err)
	}
	if c != nil {
		t.Errorf("Generate(depth=-1) curve = %v, want nil", c)
	}
}

func TestGenerate_ZeroLengthSegment(t *testing.T) {
	p := Pt(42, -17)
	for depth := 0; depth <= MaxDepth; depth++ {
		c, err := Generate(p, p, depth)
		if err != nil {
			t.Fatalf("Generate(depth=%d) error = %v", depth, err)
		}
		if !curvesEqual(c, Curve{p, p}, 0) {
			t.Errorf("depth %d: Generate(P, P) = %v, want [P, P]", depth, c)
		}
	}
}

// A single subdivision of a horizontal segment must yield four segments of
// equal length with an equilateral bump, not a flat zigzag.
func TestGenerate_EquilateralSpike(t *testing.T) {
	c, err := Generate(Pt(0, 0), Pt(3, 0), 1)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	want := Curve{
		Pt(0, 0),
		Pt(1, 0),
		Pt(1.5, math.Sqrt(3)/2),
		Pt(2, 0),
		Pt(3, 0),
	}
	if !curvesEqual(c, want, epsilon) {
		t.Fatalf("Generate() = %v, want %v", c, want)
	}
	for i := 1; i < len(c); i++ {
		if d := c[i].Distance(c[i-1]); math.Abs(d-1) > epsilon {
			t.Errorf("segment %d length = %v, want 1", i, d)
		}
	}
}

// The depth-d curve must equal the four depth-(d-1) curves generated on the
// sub-segments built from the subdivision formulas, spliced with
// trailing-point removal. This is the recursive definition checking itself,
// and pins down the +60 degree rotation convention.
func TestGenerate_SelfSimilarity(t *testing.T) {
	start, end := Pt(12, -7), Pt(-80, 33)
	for depth := 1; depth <= 5; depth++ {
		full, err := Generate(start, end, depth)
		if err != nil {
			t.Fatalf("Generate(depth=%d) error = %v", depth, err)
		}

		d := end.Sub(start)
		length := d.Length()
		angle := d.Angle()
		p1 := start.Add(d.Div(3))
		p3 := start.Add(d.Mul(2.0 / 3.0))
		p2 := p1.Add(Pt(math.Cos(angle+math.Pi/3), math.Sin(angle+math.Pi/3)).Mul(length / 3))

		var spliced Curve
		segs := []struct{ a, b Point }{{start, p1}, {p1, p2}, {p2, p3}, {p3, end}}
		for i, s := range segs {
			sub, err := Generate(s.a, s.b, depth-1)
			if err != nil {
				t.Fatalf("Generate(sub %d) error = %v", i, err)
			}
			if i < len(segs)-1 {
				sub = sub[:len(sub)-1]
			}
			spliced = append(spliced, sub...)
		}

		if !curvesEqual(full, spliced, 1e-12) {
			t.Errorf("depth %d: curve differs from spliced sub-curves", depth)
		}
	}
}

func TestPointCount(t *testing.T) {
	tests := []struct {
		depth int
		want  int
	}{
		{0, 2},
		{1, 5},
		{2, 17},
		{3, 65},
		{7, 16385},
	}
	for _, tt := range tests {
		if got := PointCount(tt.depth); got != tt.want {
			t.Errorf("PointCount(%d) = %d, want %d", tt.depth, got, tt.want)
		}
	}
}

func TestCurve_Bounds(t *testing.T) {
	tests := []struct {
		name string
		c    Curve
		want Rect
	}{
		{"empty", Curve{}, Rect{}},
		{"single point", Curve{Pt(3, 4)}, Rect{Min: Pt(3, 4), Max: Pt(3, 4)}},
		{
			"mixed",
			Curve{Pt(1, 5), Pt(-2, 0), Pt(4, -3)},
			Rect{Min: Pt(-2, -3), Max: Pt(4, 5)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.c.Bounds()
			if !pointsEqual(got.Min, tt.want.Min, 0) || !pointsEqual(got.Max, tt.want.Max, 0) {
				t.Errorf("Bounds() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRect(t *testing.T) {
	r := NewRect(Pt(10, -2), Pt(-4, 6))
	if !pointsEqual(r.Min, Pt(-4, -2), 0) || !pointsEqual(r.Max, Pt(10, 6), 0) {
		t.Fatalf("NewRect normalized to %+v", r)
	}
	if r.Width() != 14 {
		t.Errorf("Width() = %v, want 14", r.Width())
	}
	if r.Height() != 8 {
		t.Errorf("Height() = %v, want 8", r.Height())
	}
	if !pointsEqual(r.Center(), Pt(3, 2), 0) {
		t.Errorf("Center() = %v, want (3, 2)", r.Center())
	}
}
