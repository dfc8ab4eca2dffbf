package main

import (
	"github.com/spf13/cobra"

	"github.com/gravitas-games/trid/pkg/tri"
	"github.com/gravitas-games/trid/pkg/tri/path"
)

func newRingCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ring X Y",
		Short: "List the vertices on a ring (or disc) around a vertex",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			center, err := vertexArg(args)
			if err != nil {
				return err
			}
			radius, _ := cmd.Flags().GetInt("radius")
			disk, _ := cmd.Flags().GetBool("disk")

			var vs []tri.Vertex
			if disk {
				vs = tri.VertexDisk(center, radius)
			} else {
				vs = tri.VertexRing(center, radius)
			}
			r := report{}.add("center", center).add("radius", radius).add("count", len(vs)).add("vertices", vs)
			if cmd.Flags().Changed("pick") {
				seed, _ := cmd.Flags().GetInt64("pick")
				v, idx := path.SelectDeterministic(vs, seed)
				r = r.add("pick", v).add("pick_index", idx)
			}
			if tris, _ := cmd.Flags().GetBool("triangles"); tris {
				r = r.add("triangles", tri.TrianglesInDisk(center, radius))
			}
			a.log.Debug("ring listed", "center", center, "radius", radius, "count", len(vs))
			return a.emit(cmd.OutOrStdout(), r)
		},
	}
	cmd.Flags().Int("radius", 1, "Ring radius in vertex steps")
	cmd.Flags().Bool("disk", false, "List the whole disc instead of the ring")
	cmd.Flags().Int64("pick", 0, "Pick one vertex deterministically using this seed")
	cmd.Flags().Bool("triangles", false, "Also list the triangles inside the disc")
	return cmd
}
