// Package validate cross-checks a sized joist, beam and column as a set.
package validate

import (
	"fmt"
	"math"

	"Timberline/internal/calc/sizing"
	"Timberline/internal/catalog"
)

// widthToleranceMM absorbs float noise when comparing catalog widths.
const widthToleranceMM = 1e-6

type Input struct {
	Joist  sizing.Result `json:"joist"`
	Beam   sizing.Result `json:"beam"`
	Column sizing.Result `json:"column"`
}

type Report struct {
	Valid    bool     `json:"valid"`
	Messages []string `json:"messages"`
}

// Validate never modifies its arguments. A member over capacity is only an
// error when it carries no warning of its own.
func Validate(joist, beam, column sizing.Result) Report {
	rep := Report{Valid: true, Messages: []string{}}
	fail := func(format string, args ...any) {
		rep.Valid = false
		rep.Messages = append(rep.Messages, fmt.Sprintf(format, args...))
	}
	note := func(format string, args ...any) {
		rep.Messages = append(rep.Messages, fmt.Sprintf(format, args...))
	}

	members := []struct {
		want catalog.MemberType
		res  sizing.Result
	}{
		{catalog.Joist, joist},
		{catalog.Beam, beam},
		{catalog.Column, column},
	}
	for _, m := range members {
		if m.res.MemberType != m.want {
			fail("expected a %s result, got %q", m.want, m.res.MemberType)
			continue
		}
		if m.res.WidthMM <= 0 || m.res.DepthMM <= 0 {
			fail("%s has no section", m.want)
			continue
		}
		if u := m.res.Detail.Utilization.Max(); u > 1 {
			if m.res.HasWarning() {
				note("%s utilisation %.2f exceeds 1.0 (warned)", m.want, u)
			} else {
				fail("%s utilisation %.2f exceeds 1.0 without a warning", m.want, u)
			}
		}
		if m.res.UsingFallback {
			note("%s sized from standard fallback sizes", m.want)
		}
	}

	if math.Abs(column.WidthMM-beam.WidthMM) > widthToleranceMM {
		fail("column width %.0f mm does not match beam width %.0f mm", column.WidthMM, beam.WidthMM)
	}
	if joist.FireRating != beam.FireRating || beam.FireRating != column.FireRating {
		note("members sized for different fire ratings: %s, %s, %s", joist.FireRating, beam.FireRating, column.FireRating)
	}
	return rep
}
