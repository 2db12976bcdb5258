package autodesign

import (
	"errors"
	"testing"

	"Timberline/internal/calc"
	"Timberline/internal/calc/geometry"
	"Timberline/internal/calc/sizing"
	"Timberline/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func office() StructureInput {
	return StructureInput{
		Geometry: geometry.Input{
			BuildingLengthM: 48,
			BuildingWidthM:  24,
			BaysAlongLength: 8,
			BaysAlongWidth:  4,
		},
		JoistSpacingMM: 600,
		LoadKPa:        3,
		StoreyHeightM:  3.2,
		Floors:         4,
	}
}

func TestStructure_Chain(t *testing.T) {
	res, err := Structure(sizing.Default(), office())
	require.NoError(t, err)

	assert.Equal(t, catalog.Joist, res.Joist.MemberType)
	assert.Equal(t, catalog.Beam, res.InteriorBeam.MemberType)
	assert.Equal(t, catalog.Column, res.Column.MemberType)
	assert.InDelta(t, res.Geometry.JoistSpanM, res.Joist.SpanM, 1e-9)
	assert.InDelta(t, res.Geometry.BeamSpanM, res.InteriorBeam.SpanM, 1e-9)

	assert.Equal(t, res.InteriorBeam.WidthMM, res.Column.WidthMM, "column is flush with the interior beam")
	assert.InDelta(t, res.InteriorBeam.Detail.LineLoadKNM/2, res.EdgeBeam.Detail.LineLoadKNM, 1e-9)
	assert.Greater(t, res.InteriorBeam.Detail.LineLoadKNM, 3*res.Geometry.TributaryWidthM, "joist weight is carried by the beam")
	assert.True(t, res.Validation.Valid, res.Validation.Messages)
}

func TestStructure_FireRatingPropagates(t *testing.T) {
	in := office()
	in.FireRating = "90/90/90"
	res, err := Structure(sizing.Default(), in)
	require.NoError(t, err)

	for _, r := range []sizing.Result{res.Joist, res.InteriorBeam, res.EdgeBeam, res.Column} {
		assert.Equal(t, "90/90/90", string(r.FireRating))
		assert.InDelta(t, 65.5, r.Detail.FireAllowanceMM, 1e-9)
	}
}

func TestStructure_Invalid(t *testing.T) {
	ctx := sizing.Default()
	for _, mutate := range []func(*StructureInput){
		func(in *StructureInput) { in.JoistSpacingMM = 0 },
		func(in *StructureInput) { in.StoreyHeightM = 0 },
		func(in *StructureInput) { in.Floors = 0 },
		func(in *StructureInput) { in.Geometry.BuildingWidthM = 0 },
		func(in *StructureInput) { in.LoadKPa = 0 },
	} {
		in := office()
		mutate(&in)
		_, err := Structure(ctx, in)
		assert.True(t, errors.Is(err, calc.ErrInvalidInput), "%+v", in)
	}
}
