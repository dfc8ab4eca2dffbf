// Package path finds routes across the vertex and triangle graphs of the
// tessellation.
package path

import (
	"container/heap"
	"slices"

	"github.com/gravitas-games/trid/pkg/tri"
)

// AStar computes a shortest path using the A* algorithm.
//   - start, goal: any comparable node (tri.Vertex, tri.Triangle, ...)
//   - h: admissible heuristic (e.g. VertexHeuristic(goal))
//   - neighbors: nodes reachable in one step
//   - cost: step cost between two adjacent nodes; values below 1 count as 1
//
// Returns the path including start and goal, or nil if no path exists.
func AStar[N comparable](start, goal N,
	h func(n N) int,
	neighbors func(n N) []N,
	cost func(a, b N) int,
) []N {
	if start == goal {
		return []N{start}
	}
	open := &nodePQ[N]{}
	heap.Init(open)
	push := func(n N, f int) { heap.Push(open, pqNode[N]{n: n, f: f}) }

	g := map[N]int{start: 0}
	came := map[N]N{}
	closed := map[N]bool{}
	push(start, h(start))

	for open.Len() > 0 {
		cur := heap.Pop(open).(pqNode[N]).n
		if closed[cur] {
			continue
		}
		closed[cur] = true
		if cur == goal {
			return reconstruct(came, start, goal)
		}
		for _, nb := range neighbors(cur) {
			if closed[nb] {
				continue
			}
			step := cost(cur, nb)
			if step <= 0 {
				step = 1
			}
			tentative := g[cur] + step
			if old, ok := g[nb]; !ok || tentative < old {
				g[nb] = tentative
				came[nb] = cur
				push(nb, tentative+h(nb))
			}
		}
	}
	return nil
}

func reconstruct[N comparable](prev map[N]N, start, goal N) []N {
	path := []N{goal}
	for cur := goal; cur != start; {
		cur = prev[cur]
		path = append(path, cur)
	}
	slices.Reverse(path)
	return path
}

type pqNode[N comparable] struct {
	n N
	f int
}

type nodePQ[N comparable] []pqNode[N]

func (p nodePQ[N]) Len() int           { return len(p) }
func (p nodePQ[N]) Less(i, j int) bool { return p[i].f < p[j].f }
func (p nodePQ[N]) Swap(i, j int)      { p[i], p[j] = p[j], p[i] }
func (p *nodePQ[N]) Push(x any)        { *p = append(*p, x.(pqNode[N])) }
func (p *nodePQ[N]) Pop() any {
	old := *p
	n := len(old)
	x := old[n-1]
	*p = old[:n-1]
	return x
}

// UnitCost charges 1 per step.
func UnitCost[N comparable](a, b N) int { return 1 }

// VertexHeuristic counts the vertex steps left to goal.
func VertexHeuristic(goal tri.Vertex) func(v tri.Vertex) int {
	return func(v tri.Vertex) int { return v.DistanceTo(goal) }
}

// TriangleHeuristic bounds the triangle steps left to goal: each step crosses
// one edge and moves the centroid 2U/3 on the lattice.
func TriangleHeuristic(goal tri.Triangle) func(t tri.Triangle) int {
	step := 2 * tri.UnitLength / 3
	return func(t tri.Triangle) int {
		return (t.Position.DistanceTo(goal.Position) + step - 1) / step
	}
}

// VertexNeighborsWithinDisc limits vertex neighbours to the disc of radius r
// (in vertex steps) around center.
func VertexNeighborsWithinDisc(center tri.Vertex, r int) func(v tri.Vertex) []tri.Vertex {
	return func(v tri.Vertex) []tri.Vertex {
		out := make([]tri.Vertex, 0, 6)
		for n := range v.AdjacentVertices() {
			if center.DistanceTo(n) <= r {
				out = append(out, n)
			}
		}
		return out
	}
}

// VertexNeighborsFromSet keeps the neighbours that are members of set and
// passable. A nil passable admits every member.
func VertexNeighborsFromSet(set map[tri.Vertex]bool, passable func(v tri.Vertex) bool) func(v tri.Vertex) []tri.Vertex {
	return func(v tri.Vertex) []tri.Vertex {
		out := make([]tri.Vertex, 0, 6)
		for n := range v.AdjacentVertices() {
			if set[n] && (passable == nil || passable(n)) {
				out = append(out, n)
			}
		}
		return out
	}
}

// TriangleNeighborsWithinDisc limits triangle neighbours to those whose
// corners all lie within r vertex steps of center.
func TriangleNeighborsWithinDisc(center tri.Vertex, r int) func(t tri.Triangle) []tri.Triangle {
	return func(t tri.Triangle) []tri.Triangle {
		out := make([]tri.Triangle, 0, 3)
		for n := range t.AdjacentTriangles() {
			if withinDisc(n, center, r) {
				out = append(out, n)
			}
		}
		return out
	}
}

func withinDisc(t tri.Triangle, center tri.Vertex, r int) bool {
	for v := range t.Vertices() {
		if center.DistanceTo(v) > r {
			return false
		}
	}
	return true
}
