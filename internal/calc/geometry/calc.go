// Package geometry turns a building footprint and its bay layout into the
// spans and tributary widths the member sizing works from.
package geometry

import (
	"fmt"
	"math"

	"Timberline/internal/calc"
)

// ToleranceM is the largest accepted gap between the sum of custom bays
// and the building dimension before a warning is raised.
const ToleranceM = 0.01

type Input struct {
	BuildingLengthM   float64   `json:"building_length_m"`
	BuildingWidthM    float64   `json:"building_width_m"`
	BaysAlongLength   int       `json:"bays_along_length"`
	BaysAlongWidth    int       `json:"bays_along_width"`
	CustomBayLengthsM []float64 `json:"custom_bay_lengths_m,omitempty"`
	CustomBayWidthsM  []float64 `json:"custom_bay_widths_m,omitempty"`
	// JoistsLengthwise means joists are laid out in sequence along the
	// building length, each spanning across a bay width.
	JoistsLengthwise bool `json:"joists_lengthwise"`
}

type Result struct {
	BayLengthsM         []float64 `json:"bay_lengths_m"`
	BayWidthsM          []float64 `json:"bay_widths_m"`
	AvgBayLengthM       float64   `json:"avg_bay_length_m"`
	AvgBayWidthM        float64   `json:"avg_bay_width_m"`
	JoistSpanM          float64   `json:"joist_span_m"`
	BeamSpanM           float64   `json:"beam_span_m"`
	TributaryWidthM     float64   `json:"tributary_width_m"`
	EdgeTributaryWidthM float64   `json:"edge_tributary_width_m"`
	Warnings            []string  `json:"warnings,omitempty"`
}

func Resolve(in Input) (Result, error) {
	if in.BuildingLengthM <= 0 || in.BuildingWidthM <= 0 {
		return Result{}, calc.Invalidf("building length and width must be positive")
	}

	var res Result
	lengths, warn, err := bays("length", in.BuildingLengthM, in.BaysAlongLength, in.CustomBayLengthsM)
	if err != nil {
		return Result{}, err
	}
	if warn != "" {
		res.Warnings = append(res.Warnings, warn)
	}
	widths, warn, err := bays("width", in.BuildingWidthM, in.BaysAlongWidth, in.CustomBayWidthsM)
	if err != nil {
		return Result{}, err
	}
	if warn != "" {
		res.Warnings = append(res.Warnings, warn)
	}

	res.BayLengthsM = lengths
	res.BayWidthsM = widths
	res.AvgBayLengthM = in.BuildingLengthM / float64(len(lengths))
	res.AvgBayWidthM = in.BuildingWidthM / float64(len(widths))

	joistSpans, beamSpans := widths, lengths
	if !in.JoistsLengthwise {
		joistSpans, beamSpans = lengths, widths
	}
	res.JoistSpanM = maxOf(joistSpans)
	res.BeamSpanM = maxOf(beamSpans)
	res.TributaryWidthM = tributary(joistSpans)
	res.EdgeTributaryWidthM = res.TributaryWidthM / 2
	return res, nil
}

// bays returns the bay dimensions along one building direction. Custom bays
// are rescaled so they sum exactly to the building dimension.
func bays(axis string, totalM float64, count int, custom []float64) ([]float64, string, error) {
	if len(custom) == 0 {
		if count <= 0 {
			return nil, "", calc.Invalidf("bay count along %s must be positive", axis)
		}
		out := make([]float64, count)
		for i := range out {
			out[i] = totalM / float64(count)
		}
		return out, "", nil
	}

	sum := 0.0
	for i, b := range custom {
		if b <= 0 {
			return nil, "", calc.Invalidf("custom bay %d along %s must be positive", i+1, axis)
		}
		sum += b
	}

	out := make([]float64, len(custom))
	scale := totalM / sum
	for i, b := range custom {
		out[i] = b * scale
	}
	// put the rounding residue on the last bay so the sum is exact
	acc := 0.0
	for _, b := range out[:len(out)-1] {
		acc += b
	}
	out[len(out)-1] = totalM - acc

	var warn string
	if math.Abs(sum-totalM) > ToleranceM {
		warn = fmt.Sprintf("custom bays along %s sum to %.3f m, rescaled to %.3f m", axis, sum, totalM)
	}
	return out, warn, nil
}

// tributary is the largest half-sum of adjacent spans, the load width of
// the most heavily loaded interior beam line. A single bay loads its beam
// over the full span.
func tributary(spans []float64) float64 {
	if len(spans) == 1 {
		return spans[0]
	}
	best := 0.0
	for i := 0; i+1 < len(spans); i++ {
		if t := (spans[i] + spans[i+1]) / 2; t > best {
			best = t
		}
	}
	return best
}

func maxOf(v []float64) float64 {
	m := 0.0
	for _, x := range v {
		if x > m {
			m = x
		}
	}
	return m
}
