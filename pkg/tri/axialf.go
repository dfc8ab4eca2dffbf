package tri

import (
	"fmt"
	"math"
)

// AxialF is a continuous lattice coordinate, used for positions between
// lattice points. Z is derived exactly as for Axial.
type AxialF struct {
	X float64
	Y float64
}

// NewAxialF returns the coordinate (x, y, -x-y).
func NewAxialF(x, y float64) AxialF { return AxialF{X: x, Y: y} }

// Z returns the derived third component.
func (a AxialF) Z() float64 { return -a.X - a.Y }

// XYZ returns all three components.
func (a AxialF) XYZ() (float64, float64, float64) { return a.X, a.Y, a.Z() }

// Comp returns the component on axis, or 0 for AxisNone.
func (a AxialF) Comp(axis Axis) float64 {
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

func (a AxialF) Add(b AxialF) AxialF { return AxialF{a.X + b.X, a.Y + b.Y} }
func (a AxialF) Sub(b AxialF) AxialF { return AxialF{a.X - b.X, a.Y - b.Y} }
func (a AxialF) Mul(b AxialF) AxialF { return AxialF{a.X * b.X, a.Y * b.Y} }
func (a AxialF) Div(b AxialF) AxialF { return AxialF{a.X / b.X, a.Y / b.Y} }
func (a AxialF) Mod(b AxialF) AxialF { return AxialF{math.Mod(a.X, b.X), math.Mod(a.Y, b.Y)} }

func (a AxialF) AddN(k float64) AxialF { return AxialF{a.X + k, a.Y + k} }
func (a AxialF) SubN(k float64) AxialF { return AxialF{a.X - k, a.Y - k} }
func (a AxialF) MulN(k float64) AxialF { return AxialF{a.X * k, a.Y * k} }
func (a AxialF) DivN(k float64) AxialF { return AxialF{a.X / k, a.Y / k} }
func (a AxialF) ModN(k float64) AxialF { return AxialF{math.Mod(a.X, k), math.Mod(a.Y, k)} }

// NSub returns (k-X, k-Y).
func (a AxialF) NSub(k float64) AxialF { return AxialF{k - a.X, k - a.Y} }

// NDiv returns (k/X, k/Y).
func (a AxialF) NDiv(k float64) AxialF { return AxialF{k / a.X, k / a.Y} }

// NMod returns (k mod X, k mod Y).
func (a AxialF) NMod(k float64) AxialF { return AxialF{math.Mod(k, a.X), math.Mod(k, a.Y)} }

// Neg returns -a.
func (a AxialF) Neg() AxialF { return AxialF{-a.X, -a.Y} }

// Length is the lattice norm (|X|+|Y|+|Z|)/2.
func (a AxialF) Length() float64 {
	return (math.Abs(a.X) + math.Abs(a.Y) + math.Abs(a.Z())) / 2
}

// Normalized returns a scaled to length 1, or the zero vector when a is zero.
func (a AxialF) Normalized() AxialF {
	l := a.Length()
	if l <= 0 {
		return AxialF{}
	}
	return a.DivN(l)
}

// RoundHex snaps a to the nearest lattice point. X and Y are rounded
// independently, then the axis with the larger residual absorbs the combined
// residual of both so the neighbouring cell is picked correctly.
func (a AxialF) RoundHex() Axial {
	rx, ry := math.Round(a.X), math.Round(a.Y)
	dx, dy := a.X-rx, a.Y-ry
	if math.Abs(dx) >= math.Abs(dy) {
		rx += math.Round(dx + dy/2)
	} else {
		ry += math.Round(dx/2 + dy)
	}
	return Axial{X: int(rx), Y: int(ry)}
}

// RoundHexToMultiple snaps a to the nearest point of the lattice scaled by m.
// m == 0 behaves like RoundHex.
func (a AxialF) RoundHexToMultiple(m int) Axial {
	if m == 0 {
		return a.RoundHex()
	}
	return a.DivN(float64(m)).RoundHex().MulN(m)
}

// Round rounds X and Y independently.
func (a AxialF) Round() Axial {
	return Axial{X: int(math.Round(a.X)), Y: int(math.Round(a.Y))}
}

// RoundToMultiple rounds X and Y independently to multiples of m.
func (a AxialF) RoundToMultiple(m int) Axial {
	if m == 0 {
		return a.Round()
	}
	return a.DivN(float64(m)).Round().MulN(m)
}

// Trunc drops the fractional parts of X and Y.
func (a AxialF) Trunc() Axial { return Axial{X: int(a.X), Y: int(a.Y)} }

// IsNear reports whether the nearest lattice point has the given shape.
func (a AxialF) IsNear(shape Shape) bool { return a.RoundHex().Shape() == shape }

// Rotate60 rotates counter-clockwise by k*60 degrees.
func (a AxialF) Rotate60(k int) AxialF {
	x, y, z := a.XYZ()
	switch modEuclid(k, 6) {
	case 1:
		return AxialF{-y, -z}
	case 2:
		return AxialF{z, x}
	case 3:
		return AxialF{-x, -y}
	case 4:
		return AxialF{y, z}
	case 5:
		return AxialF{-z, -x}
	}
	return a
}

// Rotate30 rotates counter-clockwise by k*30 degrees. Odd steps combine the
// 60 degree rotation r with a half step: ((r.X-r.Y)/2, (r.X+2r.Y)/2), which
// also scales the Euclidean length by sqrt(3)/2.
func (a AxialF) Rotate30(k int) AxialF {
	r := a.Rotate60(floorDiv(k, 2))
	if modEuclid(k, 2) == 0 {
		return r
	}
	return AxialF{(r.X - r.Y) / 2, (r.X + 2*r.Y) / 2}
}

// RotateAround rotates a by k*60 degrees about center.
func (a AxialF) RotateAround(center AxialF, k int) AxialF {
	return a.Sub(center).Rotate60(k).Add(center)
}

// MaxAxis returns the axis of the largest component.
func (a AxialF) MaxAxis() Axis { return maxAxis(a.X, a.Y, a.Z()) }

// MinAxis returns the axis of the smallest component.
func (a AxialF) MinAxis() Axis { return minAxis(a.X, a.Y, a.Z()) }

// AbsMaxAxis returns the axis of the largest component by magnitude.
func (a AxialF) AbsMaxAxis() Axis {
	return maxAxis(math.Abs(a.X), math.Abs(a.Y), math.Abs(a.Z()))
}

// NearTriangleVector returns the triangle direction vector closest to a: the
// dominant axis by magnitude, negated when that component is negative. The
// zero vector resolves to TriangleX.
func (a AxialF) NearTriangleVector() Axial {
	axis := a.AbsMaxAxis()
	return TriangleDirectionOf(axis, a.Comp(axis) < 0).Vector()
}

// NearVertexVector returns the vertex direction vector closest to a: the pair
// of the largest and smallest components, oriented so the largest component
// stays positive. The zero vector has no such pair and yields the zero vector.
func (a AxialF) NearVertexVector() Axial {
	hi := a.MaxAxis()
	pair := PairOf(hi, a.MinAxis())
	if pair == AxisPairNone {
		return Axial{}
	}
	v := VertexDirectionOf(pair, false).Vector()
	if v.MaxAxis() != hi {
		return v.Neg()
	}
	return v
}

// OffsetTo returns b-a.
func (a AxialF) OffsetTo(b AxialF) AxialF { return b.Sub(a) }

// OffsetFrom returns a-b.
func (a AxialF) OffsetFrom(b AxialF) AxialF { return a.Sub(b) }

// DistanceTo returns the lattice distance between a and b.
func (a AxialF) DistanceTo(b AxialF) float64 { return a.OffsetTo(b).Length() }

// DirectionTo returns the normalized offset from a to b.
func (a AxialF) DirectionTo(b AxialF) AxialF { return a.OffsetTo(b).Normalized() }

// TriangleVectorTo returns the triangle direction vector pointing from a toward b.
func (a AxialF) TriangleVectorTo(b AxialF) Axial { return a.OffsetTo(b).NearTriangleVector() }

// VertexVectorTo returns the vertex direction vector pointing from a toward b.
func (a AxialF) VertexVectorTo(b AxialF) Axial { return a.OffsetTo(b).NearVertexVector() }

// Dot returns the three-component dot product.
func (a AxialF) Dot(b AxialF) float64 { return a.X*b.X + a.Y*b.Y + a.Z()*b.Z() }

// Angle is the unsigned angle from +X measured in sextants (60 degree units),
// in [0, 3]. It is piecewise linear along the lattice norm, so lattice
// directions land on whole numbers. The zero vector has angle 0.
func (a AxialF) Angle() float64 {
	l := a.Length()
	if l <= 0 {
		return 0
	}
	angle := 2 - (2*a.X+a.Y)/l
	if angle > 1 {
		angle--
		if angle < 2 {
			angle = angle/2 + 1
		}
	}
	return angle
}

// SignedAngle is Angle, negative below the X axis, in [-3, 3].
func (a AxialF) SignedAngle() float64 {
	if a.Y >= 0 {
		return a.Angle()
	}
	return -a.Angle()
}

// FullAngle is the full counter-clockwise sweep from +X in sextants, in [0, 6).
func (a AxialF) FullAngle() float64 {
	if a.Y >= 0 {
		return a.Angle()
	}
	return 6 - a.Angle()
}

// SignedAngleTo is the sweep from a to b in sextants.
func (a AxialF) SignedAngleTo(b AxialF) float64 { return b.FullAngle() - a.FullAngle() }

// AngleTo is the magnitude of SignedAngleTo.
func (a AxialF) AngleTo(b AxialF) float64 { return math.Abs(a.SignedAngleTo(b)) }

// FullAngleTo is SignedAngleTo wrapped into [0, 6).
func (a AxialF) FullAngleTo(b AxialF) float64 {
	r := math.Mod(a.SignedAngleTo(b), 6)
	if r < 0 {
		r += 6
	}
	return r
}

// Shape classifies the nearest lattice point of a.
func (a AxialF) Shape() Shape { return a.RoundHex().Shape() }

// Euclid projects a onto the Euclidean plane, one vertex step per unit.
func (a AxialF) Euclid() Point {
	x, y := ToEuclid(a.X, a.Y)
	return Point{X: x / UnitLength, Y: y / UnitLength}
}

func (a AxialF) String() string {
	return fmt.Sprintf("(X: %.2f, Y: %.2f, Z: %.2f)", a.X, a.Y, a.Z())
}
