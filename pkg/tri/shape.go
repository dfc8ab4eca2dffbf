package tri

// UnitLength is the fine-lattice distance between adjacent vertices. It is a
// multiple of 6 so edge midpoints (U/2) and triangle centroids (U/3, 2U/3)
// fall on integer points distinguishable by residue.
const UnitLength = 6

// Shape tags an integer point as the kind of primitive it addresses.
type Shape uint8

const (
	ShapeNone Shape = iota
	ShapeVertex
	ShapeEdge
	ShapeTriangle
)

func (s Shape) String() string {
	switch s {
	case ShapeVertex:
		return "vertex"
	case ShapeEdge:
		return "edge"
	case ShapeTriangle:
		return "triangle"
	}
	return "none"
}

// ParseShape is the inverse of Shape.String; unknown names give ShapeNone.
func ParseShape(name string) Shape {
	for _, s := range []Shape{ShapeVertex, ShapeEdge, ShapeTriangle} {
		if s.String() == name {
			return s
		}
	}
	return ShapeNone
}

// Classify returns the shape addressed by p on a lattice of the given unit
// length, from the Euclidean residues of X and Y:
//
//	vertex:   (0, 0)
//	edge:     (U/2, 0), (0, U/2), (U/2, U/2)
//	triangle: (U/3, U/3), (2U/3, 2U/3)
//
// Every other residue, and any unit that is not a positive multiple of 6, is ShapeNone.
func Classify(p Axial, unit int) Shape {
	if unit <= 0 || unit%6 != 0 {
		return ShapeNone
	}
	half, third := unit/2, unit/3
	switch p.ModEuclid(unit) {
	case Axial{0, 0}:
		return ShapeVertex
	case Axial{half, 0}, Axial{0, half}, Axial{half, half}:
		return ShapeEdge
	case Axial{third, third}, Axial{2 * third, 2 * third}:
		return ShapeTriangle
	}
	return ShapeNone
}
