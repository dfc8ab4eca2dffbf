package tri

import (
	"fmt"
	"iter"
)

// Edge is the segment between two adjacent vertices, addressed by its midpoint.
type Edge struct {
	Position Axial
}

// NewEdge wraps the fine-lattice midpoint coordinate (x, y).
func NewEdge(x, y int) Edge { return Edge{Position: Axial{X: x, Y: y}} }

// EdgeBetween returns the edge joining a and b. The result is only aligned
// when a and b are adjacent aligned vertices; see IsValidEdge.
func EdgeBetween(a, b Vertex) Edge {
	return Edge{Position: a.Position.Add(b.Position).DivN(2)}
}

// IsValidEdge reports whether a and b are one vertex step apart.
func IsValidEdge(a, b Vertex) bool { return a.IsAdjacentToVertex(b) }

// IsValidAlignedEdge additionally requires both endpoints to be aligned.
func IsValidAlignedEdge(a, b Vertex) bool {
	return a.IsAligned() && b.IsAligned() && IsValidEdge(a, b)
}

// EdgeNear snaps a fine-lattice position to an edge of its nearest vertex,
// picking the vertex step closest to the direction of position. A position
// exactly on the vertex resolves to the edge toward +X.
func EdgeNear(position AxialF) Edge {
	a := VertexNear(position).Position
	dir := a.Float().DirectionTo(position).RoundHex()
	if dir == (Axial{}) {
		dir = VertexNegZX.Vector()
	}
	return Edge{Position: a.Add(dir.MulN(UnitLength / 2))}
}

func (e Edge) X() int                 { return e.Position.X }
func (e Edge) Y() int                 { return e.Position.Y }
func (e Edge) Z() int                 { return e.Position.Z() }
func (e Edge) Comp(axis Axis) int     { return e.Position.Comp(axis) }
func (e Edge) Euclid() Point          { return e.Position.Euclid() }
func (e Edge) Shape() Shape           { return e.Position.Shape() }
func (e Edge) IsAligned() bool        { return e.Shape() == ShapeEdge }
func (e Edge) Translate(o Axial) Edge { return Edge{Position: e.Position.Add(o)} }

// Axis is the basis axis the edge is perpendicular to: the one whose
// coordinate is constant along the edge, an exact multiple of UnitLength.
// Unaligned edges have AxisNone.
func (e Edge) Axis() Axis {
	if !e.IsAligned() {
		return AxisNone
	}
	for _, axis := range Axes {
		if modEuclid(e.Comp(axis), UnitLength) == 0 {
			return axis
		}
	}
	return AxisNone
}

// offsetToVertex is the half step from the midpoint to VertexPos. Its sign is
// chosen from the residue pair so both endpoints land on aligned vertices.
func (e Edge) offsetToVertex() Axial {
	r := e.Position.ModEuclid(UnitLength)
	if r.X == r.Y {
		return Axial{X: -r.X, Y: r.Y}
	}
	return Axial{X: r.X, Y: -r.Y}
}

// VertexPos is the endpoint reached by adding the half step.
func (e Edge) VertexPos() Vertex { return Vertex{Position: e.Position.Add(e.offsetToVertex())} }

// VertexNeg is the endpoint reached by subtracting the half step.
func (e Edge) VertexNeg() Vertex { return Vertex{Position: e.Position.Sub(e.offsetToVertex())} }

// Vertices yields both endpoints.
func (e Edge) Vertices() iter.Seq[Vertex] {
	return func(yield func(Vertex) bool) {
		if !yield(e.VertexPos()) {
			return
		}
		yield(e.VertexNeg())
	}
}

// AdjacentEdges yields the four edges sharing a triangle with e.
func (e Edge) AdjacentEdges() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		off := e.offsetToVertex()
		for _, k := range [4]int{1, 2, 4, 5} {
			if !yield(e.Translate(off.Rotate60(k))) {
				return
			}
		}
	}
}

// AdjacentTriangles yields the two triangles on either side of e. Their
// centroids sit a quarter turn from the endpoints at two thirds of the half step.
func (e Edge) AdjacentTriangles() iter.Seq[Triangle] {
	return func(yield func(Triangle) bool) {
		off := e.offsetToVertex().MulN(2).DivN(3)
		for _, k := range [2]int{3, 9} {
			if !yield(Triangle{Position: e.Position.Add(off.Rotate30(k).Round())}) {
				return
			}
		}
	}
}

// IsAdjacentToVertex reports whether v is an endpoint of e.
func (e Edge) IsAdjacentToVertex(v Vertex) bool { return v.IsAdjacentToEdge(e) }

// IsAdjacentToEdge reports whether o shares a triangle with e.
func (e Edge) IsAdjacentToEdge(o Edge) bool {
	return e.Position.DistanceTo(o.Position) == UnitLength/2
}

// IsAdjacentToTriangle reports whether e is a side of t.
func (e Edge) IsAdjacentToTriangle(t Triangle) bool {
	return e.Position.DistanceTo(t.Position) == UnitLength/3
}

func (e Edge) String() string { return fmt.Sprintf("Edge%v", e.Position) }
