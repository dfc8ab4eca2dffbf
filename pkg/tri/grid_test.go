package tri

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVertexRing(t *testing.T) {
	c := VertexAt(1, -1)
	assert.Equal(t, []Vertex{c}, VertexRing(c, 0))

	for k := 1; k <= 4; k++ {
		ring := VertexRing(c, k)
		require.Len(t, ring, 6*k)
		seen := map[Vertex]bool{}
		for i, v := range ring {
			require.Equal(t, k, c.DistanceTo(v), "k=%d %v", k, v)
			require.False(t, seen[v])
			seen[v] = true
			require.True(t, v.IsAdjacentToVertex(ring[(i+1)%len(ring)]), "k=%d %v", k, v)
		}
	}
	assert.Equal(t, c.Translate(Axial{0, -6}), VertexRing(c, 1)[0])
}

func TestVertexDisk(t *testing.T) {
	c := VertexAt(-2, 0)
	assert.Nil(t, VertexDisk(c, -1))
	assert.Equal(t, []Vertex{c}, VertexDisk(c, 0))

	for r := 1; r <= 4; r++ {
		disk := VertexDisk(c, r)
		require.Len(t, disk, 1+3*r*(r+1))
		for _, v := range disk {
			require.LessOrEqual(t, c.DistanceTo(v), r)
			require.True(t, v.IsAligned())
		}
	}
}

func TestTrianglesInDisk(t *testing.T) {
	c := VertexAt(0, 0)
	assert.Empty(t, TrianglesInDisk(c, 0))

	for r := 1; r <= 3; r++ {
		tris := TrianglesInDisk(c, r)
		require.Len(t, tris, 6*r*r)
		seen := map[Triangle]bool{}
		for _, tr := range tris {
			require.True(t, tr.IsAligned(), "%v", tr)
			require.False(t, seen[tr])
			seen[tr] = true
		}
	}
	assert.ElementsMatch(t, collectTriangles(c), TrianglesInDisk(c, 1))
}

func collectTriangles(v Vertex) []Triangle {
	var out []Triangle
	for tr := range v.AdjacentTriangles() {
		out = append(out, tr)
	}
	return out
}
