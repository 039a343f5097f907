package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Rotation maps a cube-space point to camera-aligned space before the camera offset
type Rotation interface {
	Apply(p Vec3F) Vec3F
}

// EulerRotation is the composed yaw-pitch-roll rotation by angles A, B, C
// Trig terms are evaluated once at construction; Apply is allocation-free
type EulerRotation struct {
	sinA, cosA float64
	sinB, cosB float64
	sinC, cosC float64
}

// NewEulerRotation precomputes the trig terms for one frame
func NewEulerRotation(a, b, c float64) EulerRotation {
	return EulerRotation{
		sinA: math.Sin(a), cosA: math.Cos(a),
		sinB: math.Sin(b), cosB: math.Cos(b),
		sinC: math.Sin(c), cosC: math.Cos(c),
	}
}

// Apply rotates (i, j, k)
// Term order matches the expanded matrix product so results are bit-stable across callers
func (r EulerRotation) Apply(p Vec3F) Vec3F {
	i, j, k := p.X, p.Y, p.Z
	sinA, cosA := r.sinA, r.cosA
	sinB, cosB := r.sinB, r.cosB
	sinC, cosC := r.sinC, r.cosC

	x := j*sinA*sinB*cosC -
		k*cosA*sinB*cosC +
		j*cosA*sinC +
		k*sinA*sinC +
		i*cosB*cosC

	y := j*cosA*cosC +
		k*sinA*cosC -
		j*sinA*sinB*sinC +
		k*cosA*sinB*sinC -
		i*cosB*sinC

	z := k*cosA*cosB -
		j*sinA*cosB +
		i*sinB

	return Vec3F{x, y, z}
}

// DiagonalRotation rotates about the cube's main diagonal (1,1,1)/√3 by angle A
// Input is normalized by size into unit-cube space, rotated, then scaled back by size
type DiagonalRotation struct {
	m    mgl64.Mat3
	size float64
}

// NewDiagonalRotation builds the rotation for angle a and cube half-extent size
func NewDiagonalRotation(a, size float64) DiagonalRotation {
	return DiagonalRotation{m: DiagonalMatrix(a), size: size}
}

// DiagonalMatrix returns the Rodrigues rotation matrix for axis (1,1,1)/√3
// Rows follow the cyclic pattern: diag on the diagonal, lo/hi rotating through the off-diagonals
func DiagonalMatrix(a float64) mgl64.Mat3 {
	sinA, cosA := math.Sin(a), math.Cos(a)
	third := (1 - cosA) / 3
	skew := sinA / math.Sqrt(3)

	diag := cosA + third
	lo := third - skew
	hi := third + skew

	return mgl64.Mat3FromRows(
		mgl64.Vec3{diag, lo, hi},
		mgl64.Vec3{hi, diag, lo},
		mgl64.Vec3{lo, hi, diag},
	)
}

// Apply rotates p; a zero size yields the origin
func (r DiagonalRotation) Apply(p Vec3F) Vec3F {
	if r.size == 0 {
		return Vec3F{}
	}
	u := V3FScale(p, 1/r.size)
	v := r.m.Mul3x1(mgl64.Vec3{u.X, u.Y, u.Z})
	return V3FScale(Vec3F{v[0], v[1], v[2]}, r.size)
}
