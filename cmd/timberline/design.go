package main

import (
	"fmt"
	"text/tabwriter"

	"Timberline/internal/calc/premium/autodesign"

	"github.com/spf13/cobra"
)

var designIn autodesign.StructureInput

var designCmd = &cobra.Command{
	Use:   "design",
	Short: "Size joists, beams and columns for a whole floor plate",
	RunE: func(cmd *cobra.Command, args []string) error {
		designIn.Grade = grade
		designIn.FireRating = fireRating
		res, err := autodesign.Structure(engine, designIn)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "GEOMETRY")
		fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Joist span:\t%.2f m\n", res.Geometry.JoistSpanM)
		fmt.Fprintf(w, "  Beam span:\t%.2f m\n", res.Geometry.BeamSpanM)
		fmt.Fprintf(w, "  Tributary width:\t%.2f m (edge %.2f m)\n", res.Geometry.TributaryWidthM, res.Geometry.EdgeTributaryWidthM)
		w.Flush()
		for _, warning := range res.Geometry.Warnings {
			fmt.Fprintln(out, "  !", warning)
		}

		printResult(out, "JOIST", res.Joist)
		printResult(out, "INTERIOR BEAM", res.InteriorBeam)
		printResult(out, "EDGE BEAM", res.EdgeBeam)
		printResult(out, "COLUMN", res.Column)

		fmt.Fprintln(out)
		if res.Validation.Valid {
			fmt.Fprintln(out, "VALIDATION: OK")
		} else {
			fmt.Fprintln(out, "VALIDATION: FAILED")
		}
		for _, msg := range res.Validation.Messages {
			fmt.Fprintln(out, "  -", msg)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(designCmd)

	designCmd.Flags().Float64Var(&designIn.Geometry.BuildingLengthM, "length", 0, "Building length (m) [required]")
	designCmd.Flags().Float64Var(&designIn.Geometry.BuildingWidthM, "width", 0, "Building width (m) [required]")
	designCmd.Flags().IntVar(&designIn.Geometry.BaysAlongLength, "bays-length", 1, "Number of bays along the length")
	designCmd.Flags().IntVar(&designIn.Geometry.BaysAlongWidth, "bays-width", 1, "Number of bays along the width")
	designCmd.Flags().Float64SliceVar(&designIn.Geometry.CustomBayLengthsM, "bay-lengths", nil, "Custom bay lengths (m), comma separated")
	designCmd.Flags().Float64SliceVar(&designIn.Geometry.CustomBayWidthsM, "bay-widths", nil, "Custom bay widths (m), comma separated")
	designCmd.Flags().BoolVar(&designIn.Geometry.JoistsLengthwise, "joists-lengthwise", false, "Joists run along the building length")
	designCmd.Flags().Float64Var(&designIn.JoistSpacingMM, "spacing", 600, "Joist spacing (mm)")
	designCmd.Flags().Float64VarP(&designIn.LoadKPa, "load", "l", 0, "Floor load (kPa) [required]")
	designCmd.Flags().Float64Var(&designIn.StoreyHeightM, "height", 3.2, "Storey height (m)")
	designCmd.Flags().IntVar(&designIn.Floors, "floors", 1, "Number of floors")

	designCmd.MarkFlagRequired("length")
	designCmd.MarkFlagRequired("width")
	designCmd.MarkFlagRequired("load")
}
