package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/gravitas-games/trid/pkg/tri"
)

func newNeighborsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "neighbors X Y",
		Short: "List the vertices, edges and triangles adjacent to a primitive",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parseAxial(args)
			if err != nil {
				return err
			}
			r := report{}.add("position", p)
			switch shape := p.Shape(); shape {
			case tri.ShapeVertex:
				v := tri.Vertex{Position: p}
				r = r.add("shape", shape).
					add("vertices", slices.Collect(v.AdjacentVertices())).
					add("edges", slices.Collect(v.AdjacentEdges())).
					add("triangles", slices.Collect(v.AdjacentTriangles()))
			case tri.ShapeEdge:
				e := tri.Edge{Position: p}
				r = r.add("shape", shape).
					add("axis", e.Axis()).
					add("vertices", slices.Collect(e.Vertices())).
					add("edges", slices.Collect(e.AdjacentEdges())).
					add("triangles", slices.Collect(e.AdjacentTriangles()))
			case tri.ShapeTriangle:
				t := tri.Triangle{Position: p}
				r = r.add("shape", shape).
					add("orientation", t.Orientation()).
					add("vertices", slices.Collect(t.Vertices())).
					add("edges", slices.Collect(t.Edges())).
					add("triangles", slices.Collect(t.AdjacentTriangles()))
			default:
				return fmt.Errorf("position %v is not a vertex, edge or triangle", p)
			}
			a.log.Debug("neighbors listed", "position", p)
			return a.emit(cmd.OutOrStdout(), r)
		},
	}
}
