package column

import (
	"errors"
	"testing"

	"Timberline/internal/calc"
	"Timberline/internal/calc/sizing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSize_WidthMatchesBeam(t *testing.T) {
	ctx := sizing.Default()
	for _, w := range []float64{165, 215, 290} {
		res, err := Size(ctx, Input{BeamWidthMM: w, LoadKPa: 3, HeightM: 3.2, Floors: 3, BayLengthM: 8, BayWidthM: 6})
		require.NoError(t, err)
		assert.Equal(t, w, res.WidthMM)
		assert.GreaterOrEqual(t, res.DepthMM, res.WidthMM)
	}
}

func TestSize_AxialLoad(t *testing.T) {
	res, err := Size(sizing.Default(), Input{
		BeamWidthMM: 215, LoadKPa: 3, HeightM: 3.2, Floors: 3,
		BayLengthM: 8, BayWidthM: 6, SupportedDeadKN: 10,
	})
	require.NoError(t, err)
	// 8 × 6 × 3 × 3 floors plus 10 kN framing per floor, plus the column stack
	assert.Greater(t, res.Detail.AxialLoadKN, 462.0)
	assert.Less(t, res.Detail.AxialLoadKN, 470.0)
}

func TestSize_SlendernessMinimum(t *testing.T) {
	res, err := Size(sizing.Default(), Input{BeamWidthMM: 165, LoadKPa: 1, HeightM: 6, Floors: 1, BayLengthM: 3, BayWidthM: 3})
	require.NoError(t, err)
	assert.Equal(t, sizing.Minimum, res.Governing)
	assert.GreaterOrEqual(t, res.DepthMM, 300.0, "height/20")
}

func TestSize_DepthAtLeastWidth(t *testing.T) {
	res, err := Size(sizing.Default(), Input{BeamWidthMM: 240, LoadKPa: 1, HeightM: 2.4, Floors: 1, BayLengthM: 3, BayWidthM: 3})
	require.NoError(t, err)
	assert.Equal(t, 240.0, res.WidthMM)
	assert.Equal(t, 240.0, res.DepthMM)
	assert.Equal(t, sizing.Minimum, res.Governing)
}

func TestSize_FireShrinksResidual(t *testing.T) {
	res, err := Size(sizing.Default(), Input{BeamWidthMM: 290, LoadKPa: 3, HeightM: 3.2, Floors: 2, BayLengthM: 8, BayWidthM: 6, FireRating: "60/60/60"})
	require.NoError(t, err)
	assert.Equal(t, 290.0, res.WidthMM)
	assert.InDelta(t, 290-92.0, res.Detail.ResidualWidthMM, 1e-9, "four faces exposed")
	assert.InDelta(t, res.DepthMM-92, res.Detail.ResidualDepthMM, 1e-9)
}

func TestSize_Invalid(t *testing.T) {
	ctx := sizing.Default()
	base := Input{BeamWidthMM: 215, LoadKPa: 3, HeightM: 3.2, Floors: 3, BayLengthM: 8, BayWidthM: 6}
	mutations := []func(*Input){
		func(in *Input) { in.BeamWidthMM = 0 },
		func(in *Input) { in.LoadKPa = 0 },
		func(in *Input) { in.HeightM = 0 },
		func(in *Input) { in.Floors = 0 },
		func(in *Input) { in.BayWidthM = 0 },
		func(in *Input) { in.SupportedDeadKN = -1 },
	}
	for i, mutate := range mutations {
		in := base
		mutate(&in)
		_, err := Size(ctx, in)
		assert.True(t, errors.Is(err, calc.ErrInvalidInput), "mutation %d", i)
	}
}
