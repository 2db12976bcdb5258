// Package column sizes the columns under the primary beams.
package column

import (
	"Timberline/internal/calc"
	"Timberline/internal/calc/loads"
	"Timberline/internal/calc/sizing"
)

type Input struct {
	// BeamWidthMM is the final width of the supported beam. The column
	// takes exactly this width so the connection is flush.
	BeamWidthMM float64 `json:"beam_width_mm"`
	LoadKPa     float64 `json:"load_kpa"`
	HeightM     float64 `json:"height_m"`
	Floors      int     `json:"floors"`
	FireRating  string  `json:"fire_rating"`
	BayLengthM  float64 `json:"bay_length_m"`
	BayWidthM   float64 `json:"bay_width_m"`
	Grade       string  `json:"grade"`
	// SupportedDeadKN is the self-weight of floor framing delivered to the
	// column per storey.
	SupportedDeadKN float64 `json:"supported_dead_kn,omitempty"`
}

// Size returns the column for the lowest storey of a stack of Floors
// identical storeys. Depth is sized for compression with buckling about the
// width, never less than height/20 or the width itself.
func Size(ctx *sizing.Context, in Input) (sizing.Result, error) {
	if in.BeamWidthMM <= 0 {
		return sizing.Result{}, calc.Invalidf("beam width must be positive")
	}
	if in.LoadKPa <= 0 {
		return sizing.Result{}, calc.Invalidf("load must be positive")
	}
	if in.HeightM <= 0 {
		return sizing.Result{}, calc.Invalidf("storey height must be positive")
	}
	if in.Floors < 1 {
		return sizing.Result{}, calc.Invalidf("floors must be at least 1")
	}
	if in.BayLengthM <= 0 || in.BayWidthM <= 0 {
		return sizing.Result{}, calc.Invalidf("tributary bay dimensions must be positive")
	}
	if in.SupportedDeadKN < 0 {
		return sizing.Result{}, calc.Invalidf("supported dead load must not be negative")
	}

	axial := loads.ColumnAxial(in.BayLengthM, in.BayWidthM, in.LoadKPa, in.Floors) +
		in.SupportedDeadKN*float64(in.Floors)
	return sizing.Solve(ctx, sizing.Request{
		SpanM:       in.HeightM,
		AxialLoadKN: axial,
		Floors:      in.Floors,
		Grade:       in.Grade,
		FireRating:  in.FireRating,
		WidthMM:     in.BeamWidthMM,
	}, sizing.ColumnPolicy())
}
