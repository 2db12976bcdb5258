package deflection

import (
	"errors"
	"testing"

	"Timberline/internal/calc"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequiredDepth_RoundTrip(t *testing.T) {
	w, L, E, b := 2.4, 6000.0, 11500.0, 120.0
	allow := L / 360
	d := RequiredDepth(w, L, E, allow, b)
	I := b * d * d * d / 12
	assert.InDelta(t, allow, UDL(w, L, E, I), 1e-6, "required depth should deflect exactly to the limit")
}

func TestCalculate_Section(t *testing.T) {
	res, err := Calculate(Input{SpanM: 6, UDLKNM: 2.4, WidthMM: 120, DepthMM: 335, LoadKPa: 3})
	require.NoError(t, err)

	assert.Equal(t, 360.0, res.LimitRatio, "3 kPa uses L/360")
	assert.InDelta(t, 16.667, res.DeflectionLimitMM, 0.01)
	assert.InDelta(t, 9.37, res.DeflectionMM, 0.05)
	assert.True(t, res.OK)
	assert.Less(t, res.RequiredDepthMM, 335.0)
}

func TestCalculate_ExplicitRatioWins(t *testing.T) {
	res, err := Calculate(Input{SpanM: 6, UDLKNM: 2.4, WidthMM: 120, DepthMM: 335, LoadKPa: 3, DeflectionLimitRatio: 250})
	require.NoError(t, err)
	assert.Equal(t, 250.0, res.LimitRatio)
}

func TestCalculate_Invalid(t *testing.T) {
	_, err := Calculate(Input{SpanM: 6, UDLKNM: 2.4, WidthMM: 120})
	assert.True(t, errors.Is(err, calc.ErrInvalidInput))

	_, err = Calculate(Input{SpanM: 6, UDLKNM: 2.4, WidthMM: 120, DepthMM: 300})
	assert.True(t, errors.Is(err, calc.ErrInvalidInput), "ratio or load is required")
}
