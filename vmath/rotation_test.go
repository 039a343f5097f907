package vmath

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const eps = 1e-9

func approxVec(a, b Vec3F) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps && math.Abs(a.Z-b.Z) < eps
}

func TestEulerRotationZeroIsIdentity(t *testing.T) {
	r := NewEulerRotation(0, 0, 0)
	points := []Vec3F{{7, 7, -7}, {-7, 3.5, 2}, {0, 0, 0}, {1, -1, 1}}
	for _, p := range points {
		got := r.Apply(p)
		// Exact: every cross term is multiplied by sin(0) == 0
		if got != p {
			t.Errorf("Apply(%v) = %v, want exact identity", p, got)
		}
	}
}

func length(v Vec3F) float64 {
	return mgl64.Vec3{v.X, v.Y, v.Z}.Len()
}

func TestEulerRotationPreservesLength(t *testing.T) {
	angles := [][3]float64{
		{0.3, 0.2, 0.1},
		{1.2, -0.7, 2.9},
		{math.Pi, math.Pi / 2, -math.Pi / 3},
		{12.5, 40.1, -3.3},
	}
	p := Vec3F{3, -4, 5}
	for _, a := range angles {
		r := NewEulerRotation(a[0], a[1], a[2])
		got := length(r.Apply(p))
		if math.Abs(got-length(p)) > eps {
			t.Errorf("Angles %v: length %f, want %f", a, got, length(p))
		}
	}
}

func TestEulerRotationSingleAxis(t *testing.T) {
	// Only A: rotation in the j/k plane, i unchanged
	r := NewEulerRotation(math.Pi/2, 0, 0)
	got := r.Apply(Vec3F{0, 1, 0})
	want := Vec3F{0, 0, -1}
	if !approxVec(got, want) {
		t.Errorf("A=π/2 on +j: got %v, want %v", got, want)
	}

	// Only C: rotation in the i/j plane
	r = NewEulerRotation(0, 0, math.Pi/2)
	got = r.Apply(Vec3F{1, 0, 0})
	want = Vec3F{0, -1, 0}
	if !approxVec(got, want) {
		t.Errorf("C=π/2 on +i: got %v, want %v", got, want)
	}
}

func TestDiagonalMatrixZeroIsIdentity(t *testing.T) {
	m := DiagonalMatrix(0)
	if m != mgl64.Ident3() {
		t.Errorf("DiagonalMatrix(0) = %v, want identity", m)
	}
}

func TestDiagonalRotationZeroScalesBySize(t *testing.T) {
	size := 7.0
	r := NewDiagonalRotation(0, size)
	for _, unit := range []Vec3F{{1, 1, 1}, {-1, 1, -1}, {0.4, -0.2, 1}} {
		p := V3FScale(unit, size)
		got := r.Apply(p)
		if !approxVec(got, p) {
			t.Errorf("Apply(%v) at A=0 = %v, want %v", p, got, p)
		}
	}
}

func TestDiagonalMatrixMatchesAxisAngle(t *testing.T) {
	axis := mgl64.Vec3{1, 1, 1}.Normalize()
	for _, a := range []float64{0.1, 0.75, 2.0, -1.3, 5.5} {
		got := DiagonalMatrix(a)
		want := mgl64.HomogRotate3D(a, axis).Mat3()
		if !got.ApproxEqualThreshold(want, eps) {
			t.Errorf("Angle %f: got %v, want %v", a, got, want)
		}
	}
}

func TestDiagonalRotationFixesAxis(t *testing.T) {
	r := NewDiagonalRotation(1.234, 5)
	p := Vec3F{5, 5, 5}
	if got := r.Apply(p); !approxVec(got, p) {
		t.Errorf("Diagonal axis point moved: %v -> %v", p, got)
	}
}

func TestDiagonalRotationThirdTurnPermutesAxes(t *testing.T) {
	r := NewDiagonalRotation(2*math.Pi/3, 1)
	tests := []struct {
		in, want Vec3F
	}{
		{Vec3F{1, 0, 0}, Vec3F{0, 1, 0}},
		{Vec3F{0, 1, 0}, Vec3F{0, 0, 1}},
		{Vec3F{0, 0, 1}, Vec3F{1, 0, 0}},
	}
	for _, tt := range tests {
		if got := r.Apply(tt.in); !approxVec(got, tt.want) {
			t.Errorf("Apply(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDiagonalRotationZeroSize(t *testing.T) {
	r := NewDiagonalRotation(1, 0)
	if got := r.Apply(Vec3F{1, 2, 3}); got != (Vec3F{}) {
		t.Errorf("Zero size should collapse to origin, got %v", got)
	}
}
