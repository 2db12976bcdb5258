package main

import (
	"Timberline/internal/calc/beam"

	"github.com/spf13/cobra"
)

var beamIn beam.Input

var beamCmd = &cobra.Command{
	Use:   "beam",
	Short: "Size a primary beam",
	RunE: func(cmd *cobra.Command, args []string) error {
		beamIn.Grade = grade
		beamIn.FireRating = fireRating
		res, err := beam.Size(engine, beamIn)
		if err != nil {
			return err
		}
		printResult(cmd.OutOrStdout(), "BEAM", res)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(beamCmd)

	beamCmd.Flags().Float64VarP(&beamIn.SpanM, "span", "s", 0, "Beam span (m) [required]")
	beamCmd.Flags().Float64VarP(&beamIn.LoadKPa, "load", "l", 0, "Floor load (kPa) [required]")
	beamCmd.Flags().Float64VarP(&beamIn.TributaryWidthM, "tributary", "t", 0, "Tributary width (m) [required]")
	beamCmd.Flags().BoolVar(&beamIn.IsEdgeBeam, "edge", false, "Edge beam, loaded from one side")
	beamCmd.Flags().Float64Var(&beamIn.SupportedDeadKPa, "supported-dead", 0, "Extra dead load from supported framing (kPa)")

	beamCmd.MarkFlagRequired("span")
	beamCmd.MarkFlagRequired("load")
	beamCmd.MarkFlagRequired("tributary")
}
