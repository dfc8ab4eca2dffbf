package main

import (
	"github.com/spf13/cobra"

	"github.com/gravitas-games/trid/pkg/tri"
)

func newRotateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rotate X Y",
		Short: "Rotate a position counter-clockwise in 60 (or 30) degree steps",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parseAxial(args)
			if err != nil {
				return err
			}
			steps, _ := cmd.Flags().GetInt("steps")
			half, _ := cmd.Flags().GetBool("half")
			center := tri.Axial{}
			if around, _ := cmd.Flags().GetString("around"); around != "" {
				if center, err = parsePair(around); err != nil {
					return err
				}
			}

			r := report{}.add("position", p).add("around", center).add("steps", steps)
			offset := p.Sub(center)
			if half {
				r = r.add("rotated", offset.Rotate30(steps).Add(center.Float()))
			} else {
				r = r.add("rotated", offset.Rotate60(steps).Add(center))
			}
			a.log.Debug("rotated", "position", p, "steps", steps, "half", half)
			return a.emit(cmd.OutOrStdout(), r)
		},
	}
	cmd.Flags().Int("steps", 1, "Number of steps; negative turns clockwise")
	cmd.Flags().Bool("half", false, "Use 30 degree steps (result may be fractional)")
	cmd.Flags().String("around", "", "Rotation centre as X,Y (default origin)")
	return cmd
}
