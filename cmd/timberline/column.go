package main

import (
	"Timberline/internal/calc/column"

	"github.com/spf13/cobra"
)

var columnIn column.Input

var columnCmd = &cobra.Command{
	Use:   "column",
	Short: "Size an interior column under a beam",
	RunE: func(cmd *cobra.Command, args []string) error {
		columnIn.Grade = grade
		columnIn.FireRating = fireRating
		res, err := column.Size(engine, columnIn)
		if err != nil {
			return err
		}
		printResult(cmd.OutOrStdout(), "COLUMN", res)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(columnCmd)

	columnCmd.Flags().Float64VarP(&columnIn.BeamWidthMM, "beam-width", "b", 0, "Width of the supported beam (mm) [required]")
	columnCmd.Flags().Float64VarP(&columnIn.LoadKPa, "load", "l", 0, "Floor load (kPa) [required]")
	columnCmd.Flags().Float64Var(&columnIn.HeightM, "height", 0, "Storey height (m) [required]")
	columnCmd.Flags().IntVar(&columnIn.Floors, "floors", 1, "Number of floors carried")
	columnCmd.Flags().Float64Var(&columnIn.BayLengthM, "bay-length", 0, "Tributary bay length (m) [required]")
	columnCmd.Flags().Float64Var(&columnIn.BayWidthM, "bay-width", 0, "Tributary bay width (m) [required]")

	columnCmd.MarkFlagRequired("beam-width")
	columnCmd.MarkFlagRequired("load")
	columnCmd.MarkFlagRequired("height")
	columnCmd.MarkFlagRequired("bay-length")
	columnCmd.MarkFlagRequired("bay-width")
}
