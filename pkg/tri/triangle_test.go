package tri

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTriangles() []Triangle {
	var out []Triangle
	for _, v := range sampleVertices() {
		for tr := range v.AdjacentTriangles() {
			if !slices.Contains(out, tr) {
				out = append(out, tr)
			}
		}
	}
	return out
}

func TestTriangleOrientation(t *testing.T) {
	assert.Equal(t, OrientationUp, NewTriangle(2, 2).Orientation())
	assert.Equal(t, OrientationDown, NewTriangle(4, 4).Orientation())
	assert.Equal(t, OrientationDown, NewTriangle(-2, -2).Orientation())
	assert.Equal(t, OrientationUp, NewTriangle(-4, 8).Orientation())
	assert.Equal(t, OrientationNone, NewTriangle(3, 0).Orientation())
	assert.Equal(t, "up", OrientationUp.String())
}

func TestTriangleKnownTopology(t *testing.T) {
	up := NewTriangle(2, 2)
	assert.Equal(t, NewVertex(6, 0), up.Vertex(AxisX))
	assert.Equal(t, NewVertex(0, 6), up.Vertex(AxisY))
	assert.Equal(t, NewVertex(0, 0), up.Vertex(AxisZ))
	assert.Equal(t, NewEdge(0, 3), up.Edge(AxisX))
	assert.Equal(t, NewEdge(3, 0), up.Edge(AxisY))
	assert.Equal(t, NewEdge(3, 3), up.Edge(AxisZ))
	assert.Equal(t, NewTriangle(-2, 4), up.AdjacentTriangle(AxisX))
	assert.Equal(t, NewTriangle(4, -2), up.AdjacentTriangle(AxisY))
	assert.Equal(t, NewTriangle(4, 4), up.AdjacentTriangle(AxisZ))

	down := NewTriangle(4, 4)
	assert.Equal(t, NewVertex(0, 6), down.Vertex(AxisX))
	assert.Equal(t, NewVertex(6, 0), down.Vertex(AxisY))
	assert.Equal(t, NewVertex(6, 6), down.Vertex(AxisZ))
	assert.Equal(t, up, down.AdjacentTriangle(AxisZ))

	assert.Equal(t, NewVertex(2, 2), up.Vertex(AxisNone))
}

func TestTriangleTopologyIsConsistent(t *testing.T) {
	for _, tr := range sampleTriangles() {
		require.True(t, tr.IsAligned(), "%v", tr)

		corners := slices.Collect(tr.Vertices())
		require.Len(t, corners, 3)
		require.Equal(t, tr, TriangleOf(corners[0], corners[1], corners[2]))
		for i, v := range corners {
			require.True(t, v.IsAligned(), "%v of %v", v, tr)
			require.True(t, tr.IsAdjacentToVertex(v))
			require.True(t, v.IsAdjacentToVertex(corners[(i+1)%3]))
		}

		for _, axis := range Axes {
			e := tr.Edge(axis)
			require.True(t, e.IsAligned(), "%v of %v", e, tr)
			require.Equal(t, axis, e.Axis(), "%v of %v", e, tr)
			require.True(t, tr.IsAdjacentToEdge(e))
			require.False(t, e.IsAdjacentToVertex(tr.Vertex(axis)))
			for _, other := range Axes {
				if other != axis {
					require.True(t, e.IsAdjacentToVertex(tr.Vertex(other)))
				}
			}

			n := tr.AdjacentTriangle(axis)
			require.True(t, n.IsAligned(), "%v next to %v", n, tr)
			require.NotEqual(t, tr.Orientation(), n.Orientation())
			require.True(t, tr.IsAdjacentToTriangle(n))
			require.True(t, n.IsAdjacentToEdge(e))
			require.Equal(t, tr, n.AdjacentTriangle(axis))
		}
		require.ElementsMatch(t, slices.Collect(tr.Edges()), []Edge{tr.Edge(AxisX), tr.Edge(AxisY), tr.Edge(AxisZ)})
		require.Len(t, slices.Collect(tr.AdjacentTriangles()), 3)
	}
}

func TestTriangleFromVertexCornersAreAdjacent(t *testing.T) {
	for _, v := range sampleVertices() {
		for _, d := range TriangleDirections {
			tr := TriangleFrom(v, d)
			require.True(t, tr.IsAligned(), "%v %v", v, d)
			require.Equal(t, d.Vector().MulN(UnitLength/3), v.Position.OffsetTo(tr.Position))
			corners := slices.Collect(tr.Vertices())
			require.Contains(t, corners, v)
			for i := range corners {
				require.True(t, corners[i].IsAdjacentToVertex(corners[(i+1)%3]))
			}
		}
	}
}

func TestTriangleNear(t *testing.T) {
	assert.Equal(t, NewTriangle(2, 2), TriangleNear(AxialF{2, 2}))
	assert.Equal(t, NewTriangle(4, -2), TriangleNear(AxialF{4.1, -1.9}))

	for _, tr := range sampleTriangles() {
		require.Equal(t, tr, TriangleNear(tr.Position.Float()))
	}

	circumradius := 1 / sqrt3
	for i := -30; i <= 30; i++ {
		for j := -30; j <= 30; j++ {
			p := AxialF{float64(i) * 0.53, float64(j) * 0.71}
			tr := TriangleNear(p)
			require.True(t, tr.IsAligned(), "%v", p)
			require.LessOrEqual(t, p.Euclid().Dist(tr.Euclid()), circumradius+1e-9, "%v in %v", p, tr)
		}
	}
}
