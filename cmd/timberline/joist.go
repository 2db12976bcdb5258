package main

import (
	"Timberline/internal/calc/joist"

	"github.com/spf13/cobra"
)

var joistIn joist.Input

var joistCmd = &cobra.Command{
	Use:   "joist",
	Short: "Size a floor joist",
	RunE: func(cmd *cobra.Command, args []string) error {
		joistIn.Grade = grade
		joistIn.FireRating = fireRating
		res, err := joist.Size(engine, joistIn)
		if err != nil {
			return err
		}
		printResult(cmd.OutOrStdout(), "JOIST", res)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(joistCmd)

	joistCmd.Flags().Float64VarP(&joistIn.SpanM, "span", "s", 0, "Joist span (m) [required]")
	joistCmd.Flags().Float64Var(&joistIn.SpacingMM, "spacing", 600, "Joist spacing (mm)")
	joistCmd.Flags().Float64VarP(&joistIn.LoadKPa, "load", "l", 0, "Floor load (kPa) [required]")

	joistCmd.MarkFlagRequired("span")
	joistCmd.MarkFlagRequired("load")
}
