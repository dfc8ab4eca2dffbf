package tri

import (
	"fmt"
	"iter"
)

// Orientation distinguishes the two kinds of triangle in the tessellation.
type Orientation uint8

const (
	OrientationNone Orientation = iota
	// OrientationUp has one corner above a horizontal side; residue (U/3, U/3).
	OrientationUp
	// OrientationDown has one corner below a horizontal side; residue (2U/3, 2U/3).
	OrientationDown
)

func (o Orientation) String() string {
	switch o {
	case OrientationUp:
		return "up"
	case OrientationDown:
		return "down"
	}
	return "none"
}

// Triangle is a tessellation cell, addressed by its centroid.
type Triangle struct {
	Position Axial
}

// NewTriangle wraps the fine-lattice centroid coordinate (x, y).
func NewTriangle(x, y int) Triangle { return Triangle{Position: Axial{X: x, Y: y}} }

// TriangleOf returns the triangle with corners a, b and c.
func TriangleOf(a, b, c Vertex) Triangle {
	return Triangle{Position: a.Position.Add(b.Position).Add(c.Position).DivN(3)}
}

// TriangleFrom returns the triangle around v that d points into. Its other two
// corners are found by splitting d into the vertex steps bounding it.
func TriangleFrom(v Vertex, d TriangleDirection) Triangle {
	ccw, cw := d.NearVertexVectors()
	b := v.Translate(ccw.MulN(UnitLength))
	c := v.Translate(cw.MulN(UnitLength))
	return TriangleOf(v, b, c)
}

// TriangleNear returns the triangle containing a fine-lattice position: the
// nearest vertex, then the triangle around it selected by the dominant axis of
// the residual offset.
func TriangleNear(position AxialF) Triangle {
	v := VertexNear(position)
	d := ToTriangleDirection(v.Position.Float().TriangleVectorTo(position))
	return TriangleFrom(v, d)
}

func (t Triangle) X() int                     { return t.Position.X }
func (t Triangle) Y() int                     { return t.Position.Y }
func (t Triangle) Z() int                     { return t.Position.Z() }
func (t Triangle) Comp(axis Axis) int         { return t.Position.Comp(axis) }
func (t Triangle) Euclid() Point              { return t.Position.Euclid() }
func (t Triangle) Shape() Shape               { return t.Position.Shape() }
func (t Triangle) IsAligned() bool            { return t.Shape() == ShapeTriangle }
func (t Triangle) Translate(o Axial) Triangle { return Triangle{Position: t.Position.Add(o)} }

// Orientation reports whether t points up or down, or OrientationNone when unaligned.
func (t Triangle) Orientation() Orientation {
	switch t.Position.ModEuclid(UnitLength) {
	case Axial{UnitLength / 3, UnitLength / 3}:
		return OrientationUp
	case Axial{2 * UnitLength / 3, 2 * UnitLength / 3}:
		return OrientationDown
	}
	return OrientationNone
}

func (t Triangle) sign() int {
	switch t.Orientation() {
	case OrientationUp:
		return 1
	case OrientationDown:
		return -1
	}
	return 0
}

// axisOffset scales the TriangleX vector by num/den of a third of a vertex
// step, flips it for down triangles and rotates it onto axis (0, +120 or
// -120 degrees). Unaligned triangles and AxisNone give the zero vector.
func (t Triangle) axisOffset(axis Axis, num int) Axial {
	if axis == AxisNone {
		return Axial{}
	}
	base := TriangleX.Vector().MulN(t.sign() * num * UnitLength / 6)
	return base.Rotate60(2 * (int(axis) - int(AxisX)))
}

// Vertex returns the corner on axis: for up triangles the corner in the
// positive axis direction, for down triangles the negative one.
func (t Triangle) Vertex(axis Axis) Vertex {
	return Vertex{Position: t.Position.Add(t.axisOffset(axis, 2))}
}

// Edge returns the side opposite Vertex(axis).
func (t Triangle) Edge(axis Axis) Edge {
	return Edge{Position: t.Position.Sub(t.axisOffset(axis, 1))}
}

// AdjacentTriangle returns the neighbour across Edge(axis).
func (t Triangle) AdjacentTriangle(axis Axis) Triangle {
	return Triangle{Position: t.Position.Sub(t.axisOffset(axis, 2))}
}

// Vertices yields the three corners in axis order.
func (t Triangle) Vertices() iter.Seq[Vertex] {
	return func(yield func(Vertex) bool) {
		for _, axis := range Axes {
			if !yield(t.Vertex(axis)) {
				return
			}
		}
	}
}

// Edges yields the three sides in axis order.
func (t Triangle) Edges() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		for _, axis := range Axes {
			if !yield(t.Edge(axis)) {
				return
			}
		}
	}
}

// AdjacentTriangles yields the three triangles sharing a side with t.
func (t Triangle) AdjacentTriangles() iter.Seq[Triangle] {
	return func(yield func(Triangle) bool) {
		for _, axis := range Axes {
			if !yield(t.AdjacentTriangle(axis)) {
				return
			}
		}
	}
}

// IsAdjacentToVertex reports whether v is a corner of t.
func (t Triangle) IsAdjacentToVertex(v Vertex) bool { return v.IsAdjacentToTriangle(t) }

// IsAdjacentToEdge reports whether e is a side of t.
func (t Triangle) IsAdjacentToEdge(e Edge) bool { return e.IsAdjacentToTriangle(t) }

// IsAdjacentToTriangle reports whether o shares a side with t.
func (t Triangle) IsAdjacentToTriangle(o Triangle) bool {
	return t.Position.DistanceTo(o.Position) == 2*UnitLength/3
}

func (t Triangle) String() string { return fmt.Sprintf("Triangle%v", t.Position) }
