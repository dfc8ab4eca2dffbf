package main

import (
	"github.com/spf13/cobra"

	"github.com/gravitas-games/trid/pkg/tri"
)

func newClassifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "classify X Y",
		Short: "Report which primitive an integer position addresses",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parseAxial(args)
			if err != nil {
				return err
			}
			unit := a.cfg.Lattice.UnitLength
			shape := tri.Classify(p, unit)
			a.log.Debug("classified", "position", p, "unit_length", unit, "shape", shape)

			return a.emit(cmd.OutOrStdout(), report{}.
				add("position", p).
				add("unit_length", unit).
				add("shape", shape))
		},
	}
}
