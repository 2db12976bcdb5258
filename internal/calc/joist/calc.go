// Package joist sizes floor joists: closely spaced secondary members
// carrying the floor load between beams.
package joist

import (
	"Timberline/internal/calc"
	"Timberline/internal/calc/loads"
	"Timberline/internal/calc/sizing"
)

type Input struct {
	SpanM      float64 `json:"span_m"`
	SpacingMM  float64 `json:"spacing_mm"`
	LoadKPa    float64 `json:"load_kpa"`
	Grade      string  `json:"grade"`
	FireRating string  `json:"fire_rating"`
}

// Size returns the smallest catalog joist for the span at the given spacing.
func Size(ctx *sizing.Context, in Input) (sizing.Result, error) {
	if in.SpanM <= 0 {
		return sizing.Result{}, calc.Invalidf("span must be positive")
	}
	if in.SpacingMM <= 0 {
		return sizing.Result{}, calc.Invalidf("joist spacing must be positive")
	}
	if in.LoadKPa <= 0 {
		return sizing.Result{}, calc.Invalidf("load must be positive")
	}
	return sizing.Solve(ctx, sizing.Request{
		SpanM:       in.SpanM,
		LineLoadKNM: loads.LineLoad(in.LoadKPa, in.SpacingMM/1000),
		AreaLoadKPa: in.LoadKPa,
		Grade:       in.Grade,
		FireRating:  in.FireRating,
	}, sizing.JoistPolicy())
}

// SelfWeightKPa spreads the weight of the chosen joist over the floor
// area it serves.
func SelfWeightKPa(res sizing.Result, spacingMM float64) float64 {
	return loads.AreaEquivalent(res.Detail.SelfWeightKNM, spacingMM/1000)
}
