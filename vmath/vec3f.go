// Package vmath provides the float vector and rotation primitives used by the rasterizer.
package vmath

// Vec3F is a float64 3D vector in cube or camera space
type Vec3F struct {
	X, Y, Z float64
}

// V3FScale multiplies every component by s
func V3FScale(v Vec3F, s float64) Vec3F {
	return Vec3F{v.X * s, v.Y * s, v.Z * s}
}

// Array returns the components as a float32 triple for mesh writers
func (v Vec3F) Array() [3]float32 {
	return [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
}
