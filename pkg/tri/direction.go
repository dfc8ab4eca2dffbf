package tri

// TriangleDirection is one of the six steps from a vertex toward the centroid
// of a surrounding triangle: an axis and a sign.
type TriangleDirection uint8

const (
	TriangleNone TriangleDirection = iota
	TriangleX
	TriangleY
	TriangleZ
	TriangleNegX
	TriangleNegY
	TriangleNegZ
)

// TriangleDirections lists the six directions counter-clockwise, starting at
// TriangleX (-30 degrees). Each entry is the previous one rotated by 60 degrees.
var TriangleDirections = [6]TriangleDirection{
	TriangleX, TriangleNegZ, TriangleY, TriangleNegX, TriangleZ, TriangleNegY,
}

// VertexDirection is one of the six steps between adjacent vertices: an axis
// pair and a sign.
type VertexDirection uint8

const (
	VertexNone VertexDirection = iota
	VertexXY
	VertexYZ
	VertexZX
	VertexNegXY
	VertexNegYZ
	VertexNegZX
)

// VertexDirections lists the six directions counter-clockwise, starting at
// VertexNegZX (0 degrees). Each entry is the previous one rotated by 60 degrees.
var VertexDirections = [6]VertexDirection{
	VertexNegZX, VertexYZ, VertexNegXY, VertexZX, VertexNegYZ, VertexXY,
}

// Unit vectors indexed by direction; index 0 is the None sentinel and maps to
// the zero vector. Filled once at package init and only read afterwards.
var (
	triangleVectors = buildTriangleVectors()
	vertexVectors   = buildVertexVectors()
)

func buildTriangleVectors() [7]Axial {
	var t [7]Axial
	for _, axis := range Axes {
		t[TriangleDirectionOf(axis, false)] = FromAxis(axis, 2)
		t[TriangleDirectionOf(axis, true)] = FromAxis(axis, 2).Neg()
	}
	return t
}

func buildVertexVectors() [7]Axial {
	var t [7]Axial
	for _, pair := range AxisPairs {
		t[VertexDirectionOf(pair, false)] = FromPair(pair, 1, -1)
		t[VertexDirectionOf(pair, true)] = FromPair(pair, 1, -1).Neg()
	}
	return t
}

// TriangleDirectionOf returns the direction along axis, negated if negative is set.
func TriangleDirectionOf(axis Axis, negative bool) TriangleDirection {
	var d TriangleDirection
	switch axis {
	case AxisX:
		d = TriangleX
	case AxisY:
		d = TriangleY
	case AxisZ:
		d = TriangleZ
	default:
		return TriangleNone
	}
	if negative {
		d += TriangleNegX - TriangleX
	}
	return d
}

// ToTriangleDirection maps a unit vector back to its direction, or TriangleNone.
func ToTriangleDirection(v Axial) TriangleDirection {
	for _, d := range TriangleDirections {
		if triangleVectors[d] == v {
			return d
		}
	}
	return TriangleNone
}

// Vector returns the unit vector of d; TriangleNone and unknown values give the zero vector.
func (d TriangleDirection) Vector() Axial {
	if int(d) >= len(triangleVectors) {
		return Axial{}
	}
	return triangleVectors[d]
}

// Axis returns the basis axis of d.
func (d TriangleDirection) Axis() Axis {
	switch d {
	case TriangleX, TriangleNegX:
		return AxisX
	case TriangleY, TriangleNegY:
		return AxisY
	case TriangleZ, TriangleNegZ:
		return AxisZ
	}
	return AxisNone
}

// Sign is +1 or -1, or 0 for TriangleNone.
func (d TriangleDirection) Sign() int {
	switch d {
	case TriangleX, TriangleY, TriangleZ:
		return 1
	case TriangleNegX, TriangleNegY, TriangleNegZ:
		return -1
	}
	return 0
}

// Rotate turns d by k*60 degrees through its unit vector, so direction and
// vector rotation always agree.
func (d TriangleDirection) Rotate(k int) TriangleDirection {
	return ToTriangleDirection(d.Vector().Rotate60(k))
}

// NearVertexVectors returns the two vertex direction vectors bounding the
// triangle that d points into, counter-clockwise one first.
func (d TriangleDirection) NearVertexVectors() (ccw, cw Axial) {
	ccw, cw = Split(d.Vector())
	return ccw.DivN(3), cw.DivN(3)
}

func (d TriangleDirection) String() string {
	switch d {
	case TriangleX:
		return "+X"
	case TriangleY:
		return "+Y"
	case TriangleZ:
		return "+Z"
	case TriangleNegX:
		return "-X"
	case TriangleNegY:
		return "-Y"
	case TriangleNegZ:
		return "-Z"
	}
	return "none"
}

// VertexDirectionOf returns the direction for pair, negated if negative is set.
func VertexDirectionOf(pair AxisPair, negative bool) VertexDirection {
	var d VertexDirection
	switch pair {
	case AxisXY:
		d = VertexXY
	case AxisYZ:
		d = VertexYZ
	case AxisZX:
		d = VertexZX
	default:
		return VertexNone
	}
	if negative {
		d += VertexNegXY - VertexXY
	}
	return d
}

// ToVertexDirection maps a unit vector back to its direction, or VertexNone.
func ToVertexDirection(v Axial) VertexDirection {
	for _, d := range VertexDirections {
		if vertexVectors[d] == v {
			return d
		}
	}
	return VertexNone
}

// Vector returns the unit vector of d; VertexNone and unknown values give the zero vector.
func (d VertexDirection) Vector() Axial {
	if int(d) >= len(vertexVectors) {
		return Axial{}
	}
	return vertexVectors[d]
}

// Pair returns the axis pair of d.
func (d VertexDirection) Pair() AxisPair {
	switch d {
	case VertexXY, VertexNegXY:
		return AxisXY
	case VertexYZ, VertexNegYZ:
		return AxisYZ
	case VertexZX, VertexNegZX:
		return AxisZX
	}
	return AxisPairNone
}

// Sign is +1 or -1, or 0 for VertexNone.
func (d VertexDirection) Sign() int {
	switch d {
	case VertexXY, VertexYZ, VertexZX:
		return 1
	case VertexNegXY, VertexNegYZ, VertexNegZX:
		return -1
	}
	return 0
}

// Rotate turns d by k*60 degrees through its unit vector.
func (d VertexDirection) Rotate(k int) VertexDirection {
	return ToVertexDirection(d.Vector().Rotate60(k))
}

// NearTriangleVectors returns the two triangle direction vectors on either
// side of d, counter-clockwise one first.
func (d VertexDirection) NearTriangleVectors() (ccw, cw Axial) {
	return Split(d.Vector())
}

func (d VertexDirection) String() string {
	switch d {
	case VertexXY:
		return "+XY"
	case VertexYZ:
		return "+YZ"
	case VertexZX:
		return "+ZX"
	case VertexNegXY:
		return "-XY"
	case VertexNegYZ:
		return "-YZ"
	case VertexNegZX:
		return "-ZX"
	}
	return "none"
}

// Split returns v plus its 60 degree counter-clockwise and clockwise
// rotations. For a vertex step this gives the two triangle vectors beside it;
// for a triangle vector, three times the two vertex steps bounding it.
func Split(v Axial) (ccw, cw Axial) {
	return v.Add(v.Rotate60(1)), v.Add(v.Rotate60(-1))
}
