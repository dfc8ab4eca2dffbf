package tri

import (
	"fmt"
	"iter"
)

// Axial is an integer lattice coordinate. Only X and Y are stored; Z is derived
// so that X+Y+Z == 0 holds for every value.
type Axial struct {
	X int
	Y int
}

// NewAxial returns the coordinate (x, y, -x-y).
func NewAxial(x, y int) Axial { return Axial{X: x, Y: y} }

// FromXY builds a coordinate from its X and Y components.
func FromXY(x, y int) Axial { return Axial{X: x, Y: y} }

// FromYZ builds a coordinate from its Y and Z components.
func FromYZ(y, z int) Axial { return Axial{X: -y - z, Y: y} }

// FromZX builds a coordinate from its Z and X components.
func FromZX(z, x int) Axial { return Axial{X: x, Y: -x - z} }

// FromAxis builds the coordinate whose component on axis is a and whose other
// two components split -a evenly (truncated toward zero).
func FromAxis(axis Axis, a int) Axial {
	switch axis {
	case AxisX:
		return FromXY(a, -a/2)
	case AxisY:
		return FromYZ(a, -a/2)
	case AxisZ:
		return FromZX(a, -a/2)
	}
	return Axial{}
}

// FromPair builds a coordinate from the two components named by pair, in the
// pair's rotation order.
func FromPair(pair AxisPair, a, b int) Axial {
	switch pair {
	case AxisXY:
		return FromXY(a, b)
	case AxisYZ:
		return FromYZ(a, b)
	case AxisZX:
		return FromZX(a, b)
	}
	return Axial{}
}

// Z returns the derived third component.
func (a Axial) Z() int { return -a.X - a.Y }

// XYZ returns all three components.
func (a Axial) XYZ() (int, int, int) { return a.X, a.Y, a.Z() }

// Comp returns the component on axis, or 0 for AxisNone.
func (a Axial) Comp(axis Axis) int {
	switch axis {
	case AxisX:
		return a.X
	case AxisY:
		return a.Y
	case AxisZ:
		return a.Z()
	}
	return 0
}

// Add returns a+b.
func (a Axial) Add(b Axial) Axial { return Axial{a.X + b.X, a.Y + b.Y} }

// Sub returns a-b.
func (a Axial) Sub(b Axial) Axial { return Axial{a.X - b.X, a.Y - b.Y} }

// Mul multiplies component-wise.
func (a Axial) Mul(b Axial) Axial { return Axial{a.X * b.X, a.Y * b.Y} }

// Div divides component-wise. A zero divisor component yields 0.
func (a Axial) Div(b Axial) Axial { return Axial{div(a.X, b.X), div(a.Y, b.Y)} }

// Mod takes the truncated remainder component-wise. A zero divisor component yields 0.
func (a Axial) Mod(b Axial) Axial { return Axial{rem(a.X, b.X), rem(a.Y, b.Y)} }

// AddN adds k to both stored components.
func (a Axial) AddN(k int) Axial { return Axial{a.X + k, a.Y + k} }

// SubN subtracts k from both stored components.
func (a Axial) SubN(k int) Axial { return Axial{a.X - k, a.Y - k} }

// MulN scales a by k.
func (a Axial) MulN(k int) Axial { return Axial{a.X * k, a.Y * k} }

// DivN divides by k, truncating toward zero. k == 0 yields the zero coordinate.
func (a Axial) DivN(k int) Axial { return Axial{div(a.X, k), div(a.Y, k)} }

// ModN takes the truncated remainder by k. k == 0 yields the zero coordinate.
func (a Axial) ModN(k int) Axial { return Axial{rem(a.X, k), rem(a.Y, k)} }

// NSub returns (k-X, k-Y). Addition and multiplication commute, so only the
// non-commutative operators have scalar-first forms.
func (a Axial) NSub(k int) Axial { return Axial{k - a.X, k - a.Y} }

// NDiv returns (k/X, k/Y) with 0 for a zero component.
func (a Axial) NDiv(k int) Axial { return Axial{div(k, a.X), div(k, a.Y)} }

// NMod returns (k%X, k%Y) with 0 for a zero component.
func (a Axial) NMod(k int) Axial { return Axial{rem(k, a.X), rem(k, a.Y)} }

// ModEuclid returns the always non-negative residues of X and Y modulo m.
func (a Axial) ModEuclid(m int) Axial { return Axial{modEuclid(a.X, m), modEuclid(a.Y, m)} }

// Neg returns -a.
func (a Axial) Neg() Axial { return Axial{-a.X, -a.Y} }

// Length is the lattice norm (|X|+|Y|+|Z|)/2, the number of unit steps from the origin.
func (a Axial) Length() int { return (abs(a.X) + abs(a.Y) + abs(a.Z())) / 2 }

// Normalized returns a scaled to length 1, or the zero vector when a is zero.
func (a Axial) Normalized() AxialF { return a.Float().Normalized() }

// Rotate60 rotates counter-clockwise by k*60 degrees. The rotation is exact.
func (a Axial) Rotate60(k int) Axial {
	x, y, z := a.XYZ()
	switch modEuclid(k, 6) {
	case 1:
		return Axial{-y, -z}
	case 2:
		return Axial{z, x}
	case 3:
		return Axial{-x, -y}
	case 4:
		return Axial{y, z}
	case 5:
		return Axial{-z, -x}
	}
	return a
}

// Rotate30 rotates counter-clockwise by k*30 degrees. Odd steps land between
// lattice directions, so the result is returned as a float coordinate; it is
// exact whenever X-Y and X+2Y of the 60 degree rotation are even.
func (a Axial) Rotate30(k int) AxialF { return a.Float().Rotate30(k) }

// RotateAround rotates a by k*60 degrees about center.
func (a Axial) RotateAround(center Axial, k int) Axial {
	return a.Sub(center).Rotate60(k).Add(center)
}

// MaxAxis returns the axis of the largest component.
func (a Axial) MaxAxis() Axis { return maxAxis(a.X, a.Y, a.Z()) }

// MinAxis returns the axis of the smallest component.
func (a Axial) MinAxis() Axis { return minAxis(a.X, a.Y, a.Z()) }

// AbsMaxAxis returns the axis of the largest component by magnitude.
func (a Axial) AbsMaxAxis() Axis { return maxAxis(abs(a.X), abs(a.Y), abs(a.Z())) }

// NearTriangleVector returns the triangle direction vector closest to a.
func (a Axial) NearTriangleVector() Axial { return a.Float().NearTriangleVector() }

// NearVertexVector returns the vertex direction vector closest to a.
func (a Axial) NearVertexVector() Axial { return a.Float().NearVertexVector() }

// OffsetTo returns b-a.
func (a Axial) OffsetTo(b Axial) Axial { return b.Sub(a) }

// OffsetFrom returns a-b.
func (a Axial) OffsetFrom(b Axial) Axial { return a.Sub(b) }

// DistanceTo returns the lattice distance between a and b.
func (a Axial) DistanceTo(b Axial) int { return a.OffsetTo(b).Length() }

// DirectionTo returns the normalized offset from a to b.
func (a Axial) DirectionTo(b Axial) AxialF { return a.OffsetTo(b).Normalized() }

// TriangleVectorTo returns the triangle direction vector pointing from a toward b.
func (a Axial) TriangleVectorTo(b Axial) Axial { return a.OffsetTo(b).NearTriangleVector() }

// VertexVectorTo returns the vertex direction vector pointing from a toward b.
func (a Axial) VertexVectorTo(b Axial) Axial { return a.OffsetTo(b).NearVertexVector() }

// Dot returns the three-component dot product.
func (a Axial) Dot(b Axial) int { return a.X*b.X + a.Y*b.Y + a.Z()*b.Z() }

// Shape classifies a against UnitLength.
func (a Axial) Shape() Shape { return Classify(a, UnitLength) }

// Euclid projects a onto the Euclidean plane, one vertex step per unit.
func (a Axial) Euclid() Point { return a.Float().Euclid() }

// Float converts a to a float coordinate.
func (a Axial) Float() AxialF { return AxialF{X: float64(a.X), Y: float64(a.Y)} }

func (a Axial) String() string {
	return fmt.Sprintf("(X: %d, Y: %d, Z: %d)", a.X, a.Y, a.Z())
}

// Sum adds every coordinate of seq.
func Sum(seq iter.Seq[Axial]) Axial {
	var s Axial
	for a := range seq {
		s = s.Add(a)
	}
	return s
}

func div(a, b int) int {
	if b == 0 {
		return 0
	}
	return a / b
}

func rem(a, b int) int {
	if b == 0 {
		return 0
	}
	return a % b
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
