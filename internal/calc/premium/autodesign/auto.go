package autodesign

import (
	"Timberline/internal/calc"
	"Timberline/internal/calc/beam"
	"Timberline/internal/calc/column"
	"Timberline/internal/calc/geometry"
	"Timberline/internal/calc/joist"
	"Timberline/internal/calc/sizing"
	"Timberline/internal/calc/validate"
)

type StructureInput struct {
	Geometry       geometry.Input `json:"geometry"`
	JoistSpacingMM float64        `json:"joist_spacing_mm"`
	LoadKPa        float64        `json:"load_kpa"`
	StoreyHeightM  float64        `json:"storey_height_m"`
	Floors         int            `json:"floors"`
	Grade          string         `json:"grade"`
	FireRating     string         `json:"fire_rating"`
}

type StructureResult struct {
	Geometry     geometry.Result `json:"geometry"`
	Joist        sizing.Result   `json:"joist"`
	InteriorBeam sizing.Result   `json:"interior_beam"`
	EdgeBeam     sizing.Result   `json:"edge_beam"`
	Column       sizing.Result   `json:"column"`
	Validation   validate.Report `json:"validation"`
}

// Structure sizes one typical floor bay and the column stack under it:
// joists first, then beams carrying the joist weight, then an interior
// column as wide as the interior beam.
func Structure(ctx *sizing.Context, in StructureInput) (StructureResult, error) {
	if in.JoistSpacingMM <= 0 {
		return StructureResult{}, calc.Invalidf("joist spacing must be positive")
	}
	if in.StoreyHeightM <= 0 {
		return StructureResult{}, calc.Invalidf("storey height must be positive")
	}
	if in.Floors < 1 {
		return StructureResult{}, calc.Invalidf("floors must be at least 1")
	}

	geo, err := geometry.Resolve(in.Geometry)
	if err != nil {
		return StructureResult{}, err
	}

	j, err := joist.Size(ctx, joist.Input{
		SpanM:      geo.JoistSpanM,
		SpacingMM:  in.JoistSpacingMM,
		LoadKPa:    in.LoadKPa,
		Grade:      in.Grade,
		FireRating: in.FireRating,
	})
	if err != nil {
		return StructureResult{}, err
	}
	joistDead := joist.SelfWeightKPa(j, in.JoistSpacingMM)

	beamInput := beam.Input{
		SpanM:            geo.BeamSpanM,
		LoadKPa:          in.LoadKPa,
		Grade:            in.Grade,
		TributaryWidthM:  geo.TributaryWidthM,
		FireRating:       in.FireRating,
		SupportedDeadKPa: joistDead,
	}
	interior, err := beam.Size(ctx, beamInput)
	if err != nil {
		return StructureResult{}, err
	}
	beamInput.IsEdgeBeam = true
	edge, err := beam.Size(ctx, beamInput)
	if err != nil {
		return StructureResult{}, err
	}

	// framing weight reaching one interior column per storey
	framingDead := joistDead*geo.BeamSpanM*geo.TributaryWidthM +
		interior.Detail.SelfWeightKNM*geo.BeamSpanM

	col, err := column.Size(ctx, column.Input{
		BeamWidthMM:     interior.WidthMM,
		LoadKPa:         in.LoadKPa,
		HeightM:         in.StoreyHeightM,
		Floors:          in.Floors,
		FireRating:      in.FireRating,
		BayLengthM:      geo.BeamSpanM,
		BayWidthM:       geo.TributaryWidthM,
		Grade:           in.Grade,
		SupportedDeadKN: framingDead,
	})
	if err != nil {
		return StructureResult{}, err
	}

	return StructureResult{
		Geometry:     geo,
		Joist:        j,
		InteriorBeam: interior,
		EdgeBeam:     edge,
		Column:       col,
		Validation:   validate.Validate(j, interior, col),
	}, nil
}
