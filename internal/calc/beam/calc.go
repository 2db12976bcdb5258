// Package beam sizes the primary beams that collect joist reactions and
// carry them to the columns.
package beam

import (
	"Timberline/internal/calc"
	"Timberline/internal/calc/loads"
	"Timberline/internal/calc/sizing"
)

type Input struct {
	SpanM           float64 `json:"span_m"`
	LoadKPa         float64 `json:"load_kpa"`
	Grade           string  `json:"grade"`
	TributaryWidthM float64 `json:"tributary_width_m"`
	FireRating      string  `json:"fire_rating"`
	// IsEdgeBeam halves the tributary width: the beam is loaded from one side.
	IsEdgeBeam bool `json:"is_edge_beam"`
	// SupportedDeadKPa is extra dead load from the members the beam carries,
	// typically the joist self-weight.
	SupportedDeadKPa float64 `json:"supported_dead_kpa,omitempty"`
}

// Size returns the smallest catalog beam for the span. The deflection limit
// follows LoadKPa; SupportedDeadKPa only adds to the line load.
func Size(ctx *sizing.Context, in Input) (sizing.Result, error) {
	if in.SpanM <= 0 {
		return sizing.Result{}, calc.Invalidf("span must be positive")
	}
	if in.LoadKPa <= 0 {
		return sizing.Result{}, calc.Invalidf("load must be positive")
	}
	if in.TributaryWidthM <= 0 {
		return sizing.Result{}, calc.Invalidf("tributary width is required for a beam")
	}
	if in.SupportedDeadKPa < 0 {
		return sizing.Result{}, calc.Invalidf("supported dead load must not be negative")
	}

	trib := loads.BeamTributary(in.TributaryWidthM, in.IsEdgeBeam)
	return sizing.Solve(ctx, sizing.Request{
		SpanM:       in.SpanM,
		LineLoadKNM: loads.LineLoad(in.LoadKPa+in.SupportedDeadKPa, trib),
		AreaLoadKPa: in.LoadKPa,
		Grade:       in.Grade,
		FireRating:  in.FireRating,
	}, sizing.BeamPolicy())
}
