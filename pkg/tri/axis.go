package tri

import "cmp"

// Axis names one of the three basis coordinates of the lattice.
type Axis uint8

const (
	AxisNone Axis = iota
	AxisX
	AxisY
	AxisZ
)

// Axes lists the three basis axes in rotation order.
var Axes = [3]Axis{AxisX, AxisY, AxisZ}

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	}
	return "none"
}

// Rotate steps the axis k times through X -> Y -> Z -> X.
func (a Axis) Rotate(k int) Axis {
	if a == AxisNone {
		return AxisNone
	}
	return Axes[(int(a)-1+modEuclid(k, 3))%3]
}

// Complement returns the pair made of the two other axes.
func (a Axis) Complement() AxisPair {
	switch a {
	case AxisX:
		return AxisYZ
	case AxisY:
		return AxisZX
	case AxisZ:
		return AxisXY
	}
	return AxisPairNone
}

// AxisPair is an unordered pair of distinct axes. Vertex directions are keyed by pairs.
type AxisPair uint8

const (
	AxisPairNone AxisPair = iota
	AxisXY
	AxisYZ
	AxisZX
)

// AxisPairs lists the three pairs in rotation order.
var AxisPairs = [3]AxisPair{AxisXY, AxisYZ, AxisZX}

// PairOf returns the pair {a, b}, or AxisPairNone when a == b or either is AxisNone.
func PairOf(a, b Axis) AxisPair {
	if a == AxisNone || b == AxisNone || a == b {
		return AxisPairNone
	}
	for _, p := range AxisPairs {
		if p.Contains(a) && p.Contains(b) {
			return p
		}
	}
	return AxisPairNone
}

func (p AxisPair) String() string {
	switch p {
	case AxisXY:
		return "XY"
	case AxisYZ:
		return "YZ"
	case AxisZX:
		return "ZX"
	}
	return "none"
}

// Axes returns both members of the pair in rotation order.
func (p AxisPair) Axes() (Axis, Axis) {
	switch p {
	case AxisXY:
		return AxisX, AxisY
	case AxisYZ:
		return AxisY, AxisZ
	case AxisZX:
		return AxisZ, AxisX
	}
	return AxisNone, AxisNone
}

// Contains reports whether a is a member of the pair.
func (p AxisPair) Contains(a Axis) bool {
	x, y := p.Axes()
	return a != AxisNone && (a == x || a == y)
}

// Rotate steps the pair k times through XY -> YZ -> ZX -> XY.
func (p AxisPair) Rotate(k int) AxisPair {
	if p == AxisPairNone {
		return AxisPairNone
	}
	return AxisPairs[(int(p)-1+modEuclid(k, 3))%3]
}

// Complement returns the axis missing from the pair.
func (p AxisPair) Complement() Axis {
	switch p {
	case AxisXY:
		return AxisZ
	case AxisYZ:
		return AxisX
	case AxisZX:
		return AxisY
	}
	return AxisNone
}

// maxAxis picks the axis of the largest component; ties favour X, then Y.
func maxAxis[T cmp.Ordered](x, y, z T) Axis {
	switch {
	case x >= y && x >= z:
		return AxisX
	case y >= z:
		return AxisY
	}
	return AxisZ
}

// minAxis picks the axis of the smallest component; ties favour X, then Y.
func minAxis[T cmp.Ordered](x, y, z T) Axis {
	switch {
	case x <= y && x <= z:
		return AxisX
	case y <= z:
		return AxisY
	}
	return AxisZ
}

func modEuclid(a, m int) int {
	if m == 0 {
		return 0
	}
	r := a % m
	if r < 0 {
		if m < 0 {
			r -= m
		} else {
			r += m
		}
	}
	return r
}

func floorDiv(a, b int) int {
	if b == 0 {
		return 0
	}
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
