// Package gesture turns raw pointer samples into wire commands.
package gesture

import "math"

// Vec is a 2D displacement in presentation-layer pixels.
type Vec struct {
	X float64
	Y float64
}

// Magnitude returns the euclidean length of the vector.
func (v Vec) Magnitude() float64 {
	return math.Hypot(v.X, v.Y)
}

// Clamp bounds v to maxRadius. A vector inside the radius is returned
// unchanged; a vector outside it is scaled onto the circle, preserving
// direction. A non-positive radius always yields the zero vector.
func Clamp(v Vec, maxRadius float64) Vec {
	if maxRadius <= 0 {
		return Vec{}
	}
	mag := v.Magnitude()
	if mag <= maxRadius {
		return v
	}
	scale := maxRadius / mag
	return Vec{X: v.X * scale, Y: v.Y * scale}
}
