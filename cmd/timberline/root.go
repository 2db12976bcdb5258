package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"Timberline/internal/calc/sizing"

	"github.com/spf13/cobra"
)

var (
	catalogPath   string
	materialsPath string
	grade         string
	fireRating    string

	engine *sizing.Context
)

var rootCmd = &cobra.Command{
	Use:   "timberline",
	Short: "Size glulam joists, beams and columns",
	Long: `Size mass-timber floor members against a section catalog.

Members are snapped to the smallest catalog section that passes bending,
shear, deflection and (for columns) buckling on the section left after
the fire char allowance.

Examples:
  timberline joist --span 6 --spacing 800 --load 3
  timberline beam --span 8 --load 3 --tributary 6 --fire 60
  timberline column --beam-width 215 --load 3 --height 3.2 --floors 4 --bay-length 8 --bay-width 6
  timberline design --length 48 --width 24 --bays-length 6 --bays-width 4`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		ctx, warnings, err := sizing.FromFiles(catalogPath, materialsPath)
		if err != nil {
			return err
		}
		for _, w := range warnings {
			fmt.Fprintln(cmd.ErrOrStderr(), "warning:", w)
		}
		engine = ctx
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "Section catalog file (csv or xlsx), bundled catalog if empty")
	rootCmd.PersistentFlags().StringVar(&materialsPath, "materials", "", "Grade table file (csv or xlsx), bundled table if empty")
	rootCmd.PersistentFlags().StringVarP(&grade, "grade", "g", "GL24h", "Timber grade")
	rootCmd.PersistentFlags().StringVarP(&fireRating, "fire", "f", "none", "Fire resistance rating: none, 30, 60, 90, 120")
}

func printResult(out io.Writer, title string, res sizing.Result) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, title)
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Section:\t%.0f x %.0f mm\n", res.WidthMM, res.DepthMM)
	fmt.Fprintf(w, "  Grade:\t%s\n", res.Grade)
	fmt.Fprintf(w, "  Fire rating:\t%s (allowance %.1f mm)\n", res.FireRating, res.Detail.FireAllowanceMM)
	fmt.Fprintf(w, "  Span / height:\t%.2f m\n", res.SpanM)
	fmt.Fprintf(w, "  Governing:\t%s\n", res.Governing)
	fmt.Fprintf(w, "  Required section:\t%.1f x %.1f mm\n", res.Detail.RequiredWidthMM, res.Detail.RequiredDepthMM)
	fmt.Fprintf(w, "  Residual section:\t%.1f x %.1f mm\n", res.Detail.ResidualWidthMM, res.Detail.ResidualDepthMM)
	fmt.Fprintf(w, "  Utilisation:\t%.2f\n", res.Detail.Utilization.Max())
	fmt.Fprintf(w, "  Self-weight iterations:\t%d\n", res.Iterations)
	if res.UsingFallback {
		fmt.Fprintf(w, "  Sizes:\tstandard fallback\n")
	}
	w.Flush()
	for _, warning := range res.Warnings {
		fmt.Fprintln(out, "  !", warning)
	}
}
