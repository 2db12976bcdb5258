// Package fire converts a fire-resistance level into the sacrificial
// timber allowance added to each exposed face of a member.
package fire

import (
	"strconv"
	"strings"
)

type Rating string

const (
	None Rating = "none"
	R30  Rating = "30/30/30"
	R60  Rating = "60/60/60"
	R90  Rating = "90/90/90"
	R120 Rating = "120/120/120"
)

const (
	// CharringRateMMPerMin is the notional one-dimensional charring rate for glulam.
	CharringRateMMPerMin = 0.65
	// ZeroStrengthLayerMM is added beneath the char line for heat-affected timber.
	ZeroStrengthLayerMM = 7.0
)

// Ratings lists the supported levels, least to most onerous.
func Ratings() []Rating {
	return []Rating{None, R30, R60, R90, R120}
}

// Minutes returns the structural adequacy period of r.
func (r Rating) Minutes() int {
	switch r {
	case R30:
		return 30
	case R60:
		return 60
	case R90:
		return 90
	case R120:
		return 120
	default:
		return 0
	}
}

// Parse accepts "60/60/60", "60", "FRL 60/60/60" and "none". Unrecognised
// labels yield None with ok=false.
func Parse(label string) (Rating, bool) {
	s := strings.ToLower(strings.TrimSpace(label))
	s = strings.TrimSpace(strings.TrimPrefix(s, "frl"))
	switch s {
	case "", "none", "0", "-", "n/a":
		return None, true
	}
	first := s
	if i := strings.IndexByte(s, '/'); i >= 0 {
		first = s[:i]
	}
	minutes, err := strconv.Atoi(strings.TrimSpace(first))
	if err != nil {
		return None, false
	}
	for _, r := range Ratings() {
		if r.Minutes() == minutes && minutes > 0 {
			return r, true
		}
	}
	return None, false
}

// Allowance returns the depth lost per exposed face over the rated period, mm.
func Allowance(r Rating) float64 {
	minutes := r.Minutes()
	if minutes == 0 {
		return 0
	}
	return CharringRateMMPerMin*float64(minutes) + ZeroStrengthLayerMM
}

// AllowanceFor is Allowance on a raw label; unknown labels give 0.
func AllowanceFor(label string) float64 {
	r, _ := Parse(label)
	return Allowance(r)
}
