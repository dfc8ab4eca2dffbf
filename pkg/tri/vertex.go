package tri

import (
	"fmt"
	"iter"
)

// Vertex is a lattice point where six edges and six triangles meet.
type Vertex struct {
	Position Axial
}

// NewVertex wraps the fine-lattice coordinate (x, y).
func NewVertex(x, y int) Vertex { return Vertex{Position: Axial{X: x, Y: y}} }

// VertexAt returns the vertex at (x, y) counted in vertex steps.
func VertexAt(x, y int) Vertex { return NewVertex(x*UnitLength, y*UnitLength) }

// VertexNear snaps a fine-lattice position to the nearest vertex.
func VertexNear(position AxialF) Vertex {
	return Vertex{Position: position.RoundHexToMultiple(UnitLength)}
}

func (v Vertex) X() int                   { return v.Position.X }
func (v Vertex) Y() int                   { return v.Position.Y }
func (v Vertex) Z() int                   { return v.Position.Z() }
func (v Vertex) Comp(axis Axis) int       { return v.Position.Comp(axis) }
func (v Vertex) Euclid() Point            { return v.Position.Euclid() }
func (v Vertex) Shape() Shape             { return v.Position.Shape() }
func (v Vertex) IsAligned() bool          { return v.Shape() == ShapeVertex }
func (v Vertex) Translate(o Axial) Vertex { return Vertex{Position: v.Position.Add(o)} }

// NearVertex returns the vertex one step away in direction d.
func (v Vertex) NearVertex(d VertexDirection) Vertex {
	return v.Translate(d.Vector().MulN(UnitLength))
}

// NearEdge returns the edge leaving v in direction d.
func (v Vertex) NearEdge(d VertexDirection) Edge {
	return Edge{Position: v.Position.Add(d.Vector().MulN(UnitLength / 2))}
}

// NearTriangle returns the triangle around v that d points into.
func (v Vertex) NearTriangle(d TriangleDirection) Triangle {
	return TriangleFrom(v, d)
}

// AdjacentVertices yields the six neighbouring vertices counter-clockwise from +X.
func (v Vertex) AdjacentVertices() iter.Seq[Vertex] {
	return func(yield func(Vertex) bool) {
		for _, d := range VertexDirections {
			if !yield(v.NearVertex(d)) {
				return
			}
		}
	}
}

// AdjacentEdges yields the six edges meeting at v counter-clockwise from +X.
func (v Vertex) AdjacentEdges() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		for _, d := range VertexDirections {
			if !yield(v.NearEdge(d)) {
				return
			}
		}
	}
}

// AdjacentTriangles yields the six triangles meeting at v counter-clockwise from -30 degrees.
func (v Vertex) AdjacentTriangles() iter.Seq[Triangle] {
	return func(yield func(Triangle) bool) {
		for _, d := range TriangleDirections {
			if !yield(v.NearTriangle(d)) {
				return
			}
		}
	}
}

// IsAdjacentToVertex reports whether o is one vertex step from v.
func (v Vertex) IsAdjacentToVertex(o Vertex) bool {
	return v.Position.DistanceTo(o.Position) == UnitLength
}

// IsAdjacentToEdge reports whether e has v as an endpoint.
func (v Vertex) IsAdjacentToEdge(e Edge) bool {
	return v.Position.DistanceTo(e.Position) == UnitLength/2
}

// IsAdjacentToTriangle reports whether t has v as a corner.
func (v Vertex) IsAdjacentToTriangle(t Triangle) bool {
	return v.Position.DistanceTo(t.Position) == 2*UnitLength/3
}

// DistanceTo counts the vertex steps between v and o.
func (v Vertex) DistanceTo(o Vertex) int {
	return v.Position.DistanceTo(o.Position) / UnitLength
}

func (v Vertex) String() string { return fmt.Sprintf("Vertex%v", v.Position) }
