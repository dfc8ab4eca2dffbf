package path

import (
	"math/rand"

	"github.com/gravitas-games/trid/pkg/tri"
)

// SelectRandom picks a random vertex from ring, returning it and its index.
// An empty ring gives the zero vertex and -1.
func SelectRandom(ring []tri.Vertex, rng *rand.Rand) (tri.Vertex, int) {
	if len(ring) == 0 {
		return tri.Vertex{}, -1
	}
	idx := 0
	if len(ring) > 1 {
		idx = rng.Intn(len(ring))
	}
	return ring[idx], idx
}

// SelectDeterministic picks a stable vertex from ring using a seed.
// It hashes each position with the seed and selects the minimum hash, so two
// callers holding the same vertices in any order agree on the pick.
// An empty ring gives the zero vertex and -1.
func SelectDeterministic(ring []tri.Vertex, seed int64) (tri.Vertex, int) {
	if len(ring) == 0 {
		return tri.Vertex{}, -1
	}
	bestIdx := 0
	best := ^uint64(0)
	for i, v := range ring {
		h := hashWithSeed(seed, v.Position)
		if h < best {
			best = h
			bestIdx = i
		}
	}
	return ring[bestIdx], bestIdx
}

func hashWithSeed(seed int64, a tri.Axial) uint64 {
	// splitmix-like integer hashing mixed with axial coords
	x := uint64(seed)
	x ^= uint64(uint32(a.X)) * 0x9E3779B97F4A7C15
	x ^= uint64(uint32(a.Y)) * 0xBF58476D1CE4E5B9
	x = (x ^ (x >> 30)) * 0xBF58476D1CE4E5B9
	x = (x ^ (x >> 27)) * 0x94D049BB133111EB
	x ^= x >> 31
	return x
}

// BFS finds a shortest path in step count from start to goal, visiting each
// node's neighbours in an order shuffled by rng so equal-length routes vary.
// Returns nil if goal is unreachable.
func BFS[N comparable](start, goal N, neighbors func(n N) []N, rng *rand.Rand) []N {
	if start == goal {
		return []N{start}
	}
	prev := make(map[N]N)
	visited := map[N]bool{start: true}
	q := []N{start}
	for len(q) > 0 {
		cur := q[0]
		q = q[1:]
		nbs := neighbors(cur)
		rng.Shuffle(len(nbs), func(i, j int) { nbs[i], nbs[j] = nbs[j], nbs[i] })
		for _, nxt := range nbs {
			if visited[nxt] {
				continue
			}
			visited[nxt] = true
			prev[nxt] = cur
			if nxt == goal {
				return reconstruct(prev, start, goal)
			}
			q = append(q, nxt)
		}
	}
	return nil
}
