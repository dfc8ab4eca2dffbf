package path

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravitas-games/trid/pkg/tri"
)

func requireVertexWalk(t *testing.T, p []tri.Vertex, start, goal tri.Vertex) {
	t.Helper()
	require.NotEmpty(t, p)
	require.Equal(t, start, p[0])
	require.Equal(t, goal, p[len(p)-1])
	for i := 1; i < len(p); i++ {
		require.True(t, p[i-1].IsAdjacentToVertex(p[i]), "step %d: %v -> %v", i, p[i-1], p[i])
	}
}

func TestAStarVertices(t *testing.T) {
	center := tri.VertexAt(0, 0)
	start, goal := tri.VertexAt(-2, 0), tri.VertexAt(2, 0)
	p := AStar(start, goal, VertexHeuristic(goal), VertexNeighborsWithinDisc(center, 3), UnitCost[tri.Vertex])
	requireVertexWalk(t, p, start, goal)
	assert.Len(t, p, 5)
}

func TestAStarTrivialAndUnreachable(t *testing.T) {
	v := tri.VertexAt(1, 1)
	assert.Equal(t, []tri.Vertex{v}, AStar(v, v, VertexHeuristic(v), VertexNeighborsWithinDisc(v, 0), UnitCost[tri.Vertex]))

	goal := tri.VertexAt(5, 0)
	p := AStar(tri.VertexAt(0, 0), goal, VertexHeuristic(goal), VertexNeighborsWithinDisc(tri.VertexAt(0, 0), 2), UnitCost[tri.Vertex])
	assert.Nil(t, p)
}

func TestAStarAroundWall(t *testing.T) {
	set := map[tri.Vertex]bool{}
	for _, v := range tri.VertexDisk(tri.VertexAt(0, 0), 3) {
		set[v] = true
	}
	// a wall across the X axis with a gap at the rim
	wall := map[tri.Vertex]bool{}
	for y := -2; y <= 2; y++ {
		wall[tri.VertexAt(0, y)] = true
	}
	passable := func(v tri.Vertex) bool { return !wall[v] }

	start, goal := tri.VertexAt(-1, 0), tri.VertexAt(1, 0)
	p := AStar(start, goal, VertexHeuristic(goal), VertexNeighborsFromSet(set, passable), UnitCost[tri.Vertex])
	requireVertexWalk(t, p, start, goal)
	for _, v := range p {
		assert.False(t, wall[v], "%v", v)
	}
	assert.Greater(t, len(p), 3)

	bfs := BFS(start, goal, VertexNeighborsFromSet(set, passable), rand.New(rand.NewSource(7)))
	requireVertexWalk(t, bfs, start, goal)
	assert.Len(t, bfs, len(p))
}

func TestAStarTriangles(t *testing.T) {
	center := tri.VertexAt(0, 0)
	start := tri.NewTriangle(2, 2)
	goal := tri.NewTriangle(-2, -2)
	p := AStar(start, goal, TriangleHeuristic(goal), TriangleNeighborsWithinDisc(center, 2), UnitCost[tri.Triangle])
	require.NotEmpty(t, p)
	assert.Equal(t, start, p[0])
	assert.Equal(t, goal, p[len(p)-1])
	for i := 1; i < len(p); i++ {
		assert.True(t, p[i-1].IsAdjacentToTriangle(p[i]))
	}
	// the six triangles around the centre form a cycle; opposite ones are three steps apart
	assert.Len(t, p, 4)
}

func TestTriangleHeuristicIsAdmissible(t *testing.T) {
	goal := tri.NewTriangle(2, 2)
	h := TriangleHeuristic(goal)
	assert.Equal(t, 0, h(goal))
	for n := range goal.AdjacentTriangles() {
		assert.Equal(t, 1, h(n))
	}
}

func TestBFSMatchesAStarLength(t *testing.T) {
	center := tri.VertexAt(0, 0)
	nb := VertexNeighborsWithinDisc(center, 3)
	rng := rand.New(rand.NewSource(42))
	for _, start := range tri.VertexRing(center, 3) {
		goal := tri.VertexAt(0, 0)
		a := AStar(start, goal, VertexHeuristic(goal), nb, UnitCost[tri.Vertex])
		b := BFS(start, goal, nb, rng)
		requireVertexWalk(t, b, start, goal)
		assert.Len(t, b, len(a), "%v", start)
	}
	assert.Nil(t, BFS(center, tri.VertexAt(9, 0), nb, rng))
}

func TestSelectDeterministic(t *testing.T) {
	ring := tri.VertexRing(tri.VertexAt(0, 0), 2)
	v, idx := SelectDeterministic(ring, 1234)
	require.GreaterOrEqual(t, idx, 0)
	assert.Equal(t, ring[idx], v)

	rev := slices.Clone(ring)
	slices.Reverse(rev)
	w, _ := SelectDeterministic(rev, 1234)
	assert.Equal(t, v, w)

	_, idx = SelectDeterministic(nil, 1)
	assert.Equal(t, -1, idx)
}

func TestSelectRandom(t *testing.T) {
	ring := tri.VertexRing(tri.VertexAt(0, 0), 1)
	rng := rand.New(rand.NewSource(3))
	for range 20 {
		v, idx := SelectRandom(ring, rng)
		assert.Contains(t, ring, v)
		assert.Equal(t, ring[idx], v)
	}
	_, idx := SelectRandom(nil, rng)
	assert.Equal(t, -1, idx)
}
