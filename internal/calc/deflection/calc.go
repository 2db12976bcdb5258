// Package deflection holds the simply supported, uniformly loaded beam
// deflection formulas. Units are N, mm and MPa throughout; 1 kN/m = 1 N/mm.
package deflection

import (
	"math"

	"Timberline/internal/calc"
	"Timberline/internal/calc/loads"
)

// UDL returns midspan deflection 5wL⁴/(384EI), mm.
func UDL(wNmm, spanMM, eMPa, iMM4 float64) float64 {
	return 5.0 * wNmm * math.Pow(spanMM, 4) / (384.0 * eMPa * iMM4)
}

// RequiredInertia solves UDL for I at the allowable deflection, mm⁴.
func RequiredInertia(wNmm, spanMM, eMPa, allowableMM float64) float64 {
	return 5.0 * wNmm * math.Pow(spanMM, 4) / (384.0 * eMPa * allowableMM)
}

// RequiredDepth returns the rectangular depth whose inertia b·d³/12
// meets RequiredInertia for width b, mm.
func RequiredDepth(wNmm, spanMM, eMPa, allowableMM, widthMM float64) float64 {
	i := RequiredInertia(wNmm, spanMM, eMPa, allowableMM)
	return math.Cbrt(12.0 * i / widthMM)
}

type Input struct {
	SpanM                float64 `json:"span_m"`
	UDLKNM               float64 `json:"udl_kn_m"`
	E_MPa                float64 `json:"e_mpa"`
	WidthMM              float64 `json:"width_mm"`
	DepthMM              float64 `json:"depth_mm"`
	LoadKPa              float64 `json:"load_kpa"`
	DeflectionLimitRatio float64 `json:"deflection_limit_ratio"`
}

type Result struct {
	InertiaMM4        float64 `json:"inertia_mm4"`
	DeflectionMM      float64 `json:"deflection_mm"`
	DeflectionLimitMM float64 `json:"deflection_limit_mm"`
	LimitRatio        float64 `json:"limit_ratio"`
	RequiredDepthMM   float64 `json:"required_depth_mm"`
	OK                bool    `json:"ok"`
	Notes             string  `json:"notes"`
}

// Calculate checks a given rectangular section. Without an explicit ratio
// the limit follows the load class of LoadKPa.
func Calculate(in Input) (Result, error) {
	if in.SpanM <= 0 || in.UDLKNM <= 0 || in.WidthMM <= 0 || in.DepthMM <= 0 {
		return Result{}, calc.Invalidf("span, load, width and depth must be positive")
	}
	if in.E_MPa <= 0 {
		in.E_MPa = 11500
	}
	if in.DeflectionLimitRatio <= 0 {
		if in.LoadKPa <= 0 {
			return Result{}, calc.Invalidf("either deflection_limit_ratio or load_kpa is required")
		}
		in.DeflectionLimitRatio = loads.DeflectionLimit(in.LoadKPa)
	}

	b := in.WidthMM
	h := in.DepthMM
	I := b * math.Pow(h, 3) / 12.0
	L := in.SpanM * 1000.0
	defl := UDL(in.UDLKNM, L, in.E_MPa, I)
	limit := L / in.DeflectionLimitRatio
	return Result{
		InertiaMM4:        I,
		DeflectionMM:      defl,
		DeflectionLimitMM: limit,
		LimitRatio:        in.DeflectionLimitRatio,
		RequiredDepthMM:   RequiredDepth(in.UDLKNM, L, in.E_MPa, limit, b),
		OK:                defl <= limit,
		Notes:             "Simply supported, uniformly distributed load.",
	}, nil
}
