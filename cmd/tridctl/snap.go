package main

import (
	"github.com/spf13/cobra"

	"github.com/gravitas-games/trid/pkg/tri"
)

func newSnapCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snap X Y",
		Short: "Snap a continuous position to the nearest vertex, edge and triangle",
		Long: `Snap takes a fine-lattice position (or, with --euclid, a Euclidean point
measured in vertex steps) and reports the primitives it falls on.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := parseFloats(args)
			if err != nil {
				return err
			}
			pos := tri.AxialF{X: f[0], Y: f[1]}
			if euclid, _ := cmd.Flags().GetBool("euclid"); euclid {
				pos = tri.AtEuclid(tri.Point{X: f[0], Y: f[1]})
			}

			nearest := pos.RoundHex()
			v := tri.VertexNear(pos)
			e := tri.EdgeNear(pos)
			t := tri.TriangleNear(pos)
			a.log.Debug("snapped", "position", pos, "vertex", v, "edge", e, "triangle", t)

			return a.emit(cmd.OutOrStdout(), report{}.
				add("position", pos).
				add("nearest", nearest).
				add("shape", nearest.Shape()).
				add("vertex", v).
				add("edge", e).
				add("triangle", t).
				add("orientation", t.Orientation()))
		},
	}
	cmd.Flags().Bool("euclid", false, "Read X Y as a Euclidean point in vertex steps")
	return cmd
}
