package tri

import "math"

const sqrt3 = 1.7320508075688772

// Point is a position on the Euclidean plane.
type Point struct {
	X float64
	Y float64
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 { return math.Hypot(p.X-q.X, p.Y-q.Y) }

// ToEuclid maps lattice components to the orthonormal plane: the X axis stays
// horizontal and the Y axis leans 60 degrees.
func ToEuclid(x, y float64) (float64, float64) {
	return x + y/2, sqrt3 / 2 * y
}

// FromEuclid is the exact inverse of ToEuclid.
func FromEuclid(ex, ey float64) (float64, float64) {
	return ex - ey/sqrt3, 2 * ey / sqrt3
}

// AtEuclid returns the fine-lattice position of a Euclidean point measured in
// vertex steps, the inverse of the Euclid methods.
func AtEuclid(p Point) AxialF {
	x, y := FromEuclid(p.X, p.Y)
	return AxialF{X: x, Y: y}.MulN(UnitLength)
}
