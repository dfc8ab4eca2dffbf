package main

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/gravitas-games/trid/pkg/tri"
	"github.com/gravitas-games/trid/pkg/tri/path"
)

func newPathCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path X1 Y1 X2 Y2",
		Short: "Find a shortest walk between two vertices or two triangles",
		Long: `Path searches the vertex graph (or, with --triangles, the triangle graph)
inside a disc centred on the start. Positions are fine-lattice coordinates of
aligned primitives. A* is used unless --bfs asks for a seeded breadth-first walk.`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseInts(args)
			if err != nil {
				return err
			}
			from, to := tri.Axial{X: n[0], Y: n[1]}, tri.Axial{X: n[2], Y: n[3]}
			radius, _ := cmd.Flags().GetInt("radius")
			useBFS, _ := cmd.Flags().GetBool("bfs")
			seed, _ := cmd.Flags().GetInt64("seed")
			triangles, _ := cmd.Flags().GetBool("triangles")
			rng := rand.New(rand.NewSource(seed))

			if triangles {
				return a.triangleWalk(cmd, from, to, radius, useBFS, rng)
			}
			start, goal := tri.Vertex{Position: from}, tri.Vertex{Position: to}
			if !start.IsAligned() || !goal.IsAligned() {
				return fmt.Errorf("path endpoints %v and %v must be vertices", from, to)
			}
			if radius <= 0 {
				radius = start.DistanceTo(goal) + 1
			}
			nb := path.VertexNeighborsWithinDisc(start, radius)
			var walk []tri.Vertex
			if useBFS {
				walk = path.BFS(start, goal, nb, rng)
			} else {
				walk = path.AStar(start, goal, path.VertexHeuristic(goal), nb, path.UnitCost[tri.Vertex])
			}
			if walk == nil {
				return fmt.Errorf("no path from %v to %v within %d steps of the start", start, goal, radius)
			}
			a.log.Info("path found", "from", start, "to", goal, "steps", len(walk)-1, "bfs", useBFS)
			return a.emit(cmd.OutOrStdout(), report{}.add("steps", len(walk)-1).add("path", walk))
		},
	}
	cmd.Flags().Int("radius", 0, "Search disc radius in vertex steps (default: distance + 1)")
	cmd.Flags().Bool("bfs", false, "Use breadth-first search with shuffled neighbour order")
	cmd.Flags().Int64("seed", 1, "Seed for --bfs neighbour shuffling")
	cmd.Flags().Bool("triangles", false, "Walk between triangles instead of vertices")
	return cmd
}

func (a *app) triangleWalk(cmd *cobra.Command, from, to tri.Axial, radius int, useBFS bool, rng *rand.Rand) error {
	start, goal := tri.Triangle{Position: from}, tri.Triangle{Position: to}
	if !start.IsAligned() || !goal.IsAligned() {
		return fmt.Errorf("path endpoints %v and %v must be triangles", from, to)
	}
	center := tri.VertexNear(from.Float())
	if radius <= 0 {
		radius = center.DistanceTo(tri.VertexNear(to.Float())) + 2
	}
	nb := path.TriangleNeighborsWithinDisc(center, radius)
	var walk []tri.Triangle
	if useBFS {
		walk = path.BFS(start, goal, nb, rng)
	} else {
		walk = path.AStar(start, goal, path.TriangleHeuristic(goal), nb, path.UnitCost[tri.Triangle])
	}
	if walk == nil {
		return fmt.Errorf("no path from %v to %v within %d steps of %v", start, goal, radius, center)
	}
	a.log.Info("path found", "from", start, "to", goal, "steps", len(walk)-1, "bfs", useBFS)
	return a.emit(cmd.OutOrStdout(), report{}.add("steps", len(walk)-1).add("path", walk))
}
