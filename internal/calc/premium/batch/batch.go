package batch

import (
	"fmt"

	"Timberline/internal/calc"
	"Timberline/internal/calc/beam"
	"Timberline/internal/calc/joist"
	"Timberline/internal/calc/sizing"
)

type JoistBatchInput struct {
	Items []joist.Input `json:"items"`
}

type BeamBatchInput struct {
	Items []beam.Input `json:"items"`
}

type BatchResult struct {
	Results []sizing.Result `json:"results"`
}

// CalculateJoists sizes every item against the same context snapshot and
// stops at the first invalid item.
func CalculateJoists(ctx *sizing.Context, in JoistBatchInput) (BatchResult, error) {
	if len(in.Items) == 0 {
		return BatchResult{}, calc.Invalidf("no items")
	}
	out := BatchResult{Results: make([]sizing.Result, 0, len(in.Items))}
	for i, item := range in.Items {
		res, err := joist.Size(ctx, item)
		if err != nil {
			return BatchResult{}, fmt.Errorf("item %d: %w", i+1, err)
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}

func CalculateBeams(ctx *sizing.Context, in BeamBatchInput) (BatchResult, error) {
	if len(in.Items) == 0 {
		return BatchResult{}, calc.Invalidf("no items")
	}
	out := BatchResult{Results: make([]sizing.Result, 0, len(in.Items))}
	for i, item := range in.Items {
		res, err := beam.Size(ctx, item)
		if err != nil {
			return BatchResult{}, fmt.Errorf("item %d: %w", i+1, err)
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}
