package loads

// Class groups area loads by occupancy intensity; each class carries its
// own deflection limit.
type Class string

const (
	ClassLight      Class = "light"
	ClassCommercial Class = "commercial"
	ClassHeavy      Class = "heavy"
)

// Gravity converts kg to N, m/s².
const Gravity = 9.81

// Classify places an area load (kPa) in its class: below 3 kPa light,
// 3 up to 5 kPa commercial, 5 kPa and above heavy.
func Classify(loadKPa float64) Class {
	switch {
	case loadKPa < 3:
		return ClassLight
	case loadKPa < 5:
		return ClassCommercial
	default:
		return ClassHeavy
	}
}

// DeflectionLimit returns the span/deflection ratio for an area load.
func DeflectionLimit(loadKPa float64) float64 {
	switch Classify(loadKPa) {
	case ClassLight:
		return 300
	case ClassCommercial:
		return 360
	default:
		return 400
	}
}

// LineLoad spreads an area load over a tributary width: kPa × m = kN/m.
func LineLoad(loadKPa, tributaryM float64) float64 {
	return loadKPa * tributaryM
}

// BeamTributary halves the width for a beam loaded from one side only.
func BeamTributary(widthM float64, edge bool) float64 {
	if edge {
		return widthM / 2
	}
	return widthM
}

// ColumnAxial is the floor load reaching a column: area × load × floors, kN.
func ColumnAxial(bayLengthM, bayWidthM, loadKPa float64, floors int) float64 {
	return bayLengthM * bayWidthM * loadKPa * float64(floors)
}

// SelfWeight returns the weight per metre of a rectangular timber section, kN/m.
func SelfWeight(densityKgM3, widthMM, depthMM float64) float64 {
	return densityKgM3 * Gravity / 1000.0 * (widthMM * depthMM / 1e6)
}

// AreaEquivalent converts a line load carried at a given spacing back to kPa.
func AreaEquivalent(lineKNM, spacingM float64) float64 {
	if spacingM <= 0 {
		return 0
	}
	return lineKNM / spacingM
}
