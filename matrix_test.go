package koch

import "testing"

func TestIdentity(t *testing.T) {
	m := Identity()
	if !m.IsIdentity() {
		t.Error("Identity().IsIdentity() = false")
	}
	p := Pt(3, -7)
	if got := m.TransformPoint(p); got != p {
		t.Errorf("Identity().TransformPoint(%v) = %v", p, got)
	}
}

func TestMatrix_TransformPoint(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		p    Point
		want Point
	}{
		{"translate", Translate(10, 20), Pt(1, 2), Pt(11, 22)},
		{"scale", Scale(2, 3), Pt(4, 5), Pt(8, 15)},
		{"translate then scale applied inner-first", Translate(10, 20).Multiply(Scale(2, 2)), Pt(1, 1), Pt(12, 22)},
		{"scale then translate applied inner-first", Scale(2, 2).Multiply(Translate(10, 20)), Pt(1, 1), Pt(22, 42)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.TransformPoint(tt.p); !pointsEqual(got, tt.want, epsilon) {
				t.Errorf("TransformPoint(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestMatrix_TransformVector(t *testing.T) {
	m := Translate(100, 200).Multiply(Scale(3, 3))
	if got := m.TransformVector(Pt(1, -2)); !pointsEqual(got, Pt(3, -6), epsilon) {
		t.Errorf("TransformVector = %v, want (3, -6); translation must not apply", got)
	}
}

func TestMatrix_MultiplyIdentity(t *testing.T) {
	m := Translate(5, 6).Multiply(Scale(2, 3))
	if got := m.Multiply(Identity()); got != m {
		t.Errorf("m * I = %+v, want %+v", got, m)
	}
	if got := Identity().Multiply(m); got != m {
		t.Errorf("I * m = %+v, want %+v", got, m)
	}
}
