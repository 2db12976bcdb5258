package sizing

import (
	"math"

	"Timberline/internal/calc/fire"
	"Timberline/internal/catalog"
)

// Criterion names the check that fixed a member's size.
type Criterion string

const (
	Bending     Criterion = "bending"
	Deflection  Criterion = "deflection"
	Shear       Criterion = "shear"
	Compression Criterion = "compression"
	Buckling    Criterion = "buckling"
	Minimum     Criterion = "minimum"
)

// Utilization is demand over capacity per check. Zero means not checked.
type Utilization struct {
	Bending     float64 `json:"bending"`
	Shear       float64 `json:"shear"`
	Deflection  float64 `json:"deflection"`
	Compression float64 `json:"compression"`
}

func (u Utilization) Max() float64 {
	return math.Max(math.Max(u.Bending, u.Shear), math.Max(u.Deflection, u.Compression))
}

// Demand is the net depth each criterion requires at the net width, mm.
type Demand struct {
	BendingMM     float64 `json:"bending_mm,omitempty"`
	ShearMM       float64 `json:"shear_mm,omitempty"`
	DeflectionMM  float64 `json:"deflection_mm,omitempty"`
	CompressionMM float64 `json:"compression_mm,omitempty"`
	MinimumMM     float64 `json:"minimum_mm,omitempty"`

	// compression is Buckling for slender columns, Compression otherwise.
	compression Criterion
}

// governing returns the largest demand. Ties keep the earlier criterion in
// the order bending, shear, deflection, compression, minimum.
func (d Demand) governing() (float64, Criterion) {
	depth, c := d.BendingMM, Bending
	if d.ShearMM > depth {
		depth, c = d.ShearMM, Shear
	}
	if d.DeflectionMM > depth {
		depth, c = d.DeflectionMM, Deflection
	}
	if d.CompressionMM > depth {
		depth, c = d.CompressionMM, d.compression
	}
	if d.MinimumMM > depth {
		depth, c = d.MinimumMM, Minimum
	}
	return depth, c
}

// Detail records the engineering quantities behind a result. Stresses and
// deflections are evaluated on the residual section left after charring,
// under the external load plus the self-weight of the full section.
type Detail struct {
	LineLoadKNM               float64 `json:"line_load_kn_m,omitempty"`
	SelfWeightKNM             float64 `json:"self_weight_kn_m,omitempty"`
	SelfWeightKN              float64 `json:"self_weight_kn,omitempty"`
	AxialLoadKN               float64 `json:"axial_load_kn,omitempty"`
	BendingMomentKNM          float64 `json:"bending_moment_knm,omitempty"`
	ShearForceKN              float64 `json:"shear_force_kn,omitempty"`
	RequiredSectionModulusMM3 float64 `json:"required_section_modulus_mm3,omitempty"`
	SectionModulusMM3         float64 `json:"section_modulus_mm3,omitempty"`
	MomentOfInertiaMM4        float64 `json:"moment_of_inertia_mm4"`
	ActualDeflectionMM        float64 `json:"actual_deflection_mm,omitempty"`
	AllowableDeflectionMM     float64 `json:"allowable_deflection_mm,omitempty"`
	DeflectionLimit           float64 `json:"deflection_limit,omitempty"`
	BucklingStressMPa         float64 `json:"buckling_stress_mpa,omitempty"`
	CompressiveCapacityKN     float64 `json:"compressive_capacity_kn,omitempty"`

	NetWidthMM        float64 `json:"net_width_mm"`
	StructuralDepthMM float64 `json:"structural_depth_mm"`
	RequiredWidthMM   float64 `json:"required_width_mm"`
	RequiredDepthMM   float64 `json:"required_depth_mm"`
	ResidualWidthMM   float64 `json:"residual_width_mm"`
	ResidualDepthMM   float64 `json:"residual_depth_mm"`
	FireAllowanceMM   float64 `json:"fire_allowance_mm"`

	Demand      Demand      `json:"demand"`
	Utilization Utilization `json:"utilization"`
}

// Result is a sized member. It is built fresh per call and never shared.
type Result struct {
	MemberType       catalog.MemberType `json:"member_type"`
	Grade            string             `json:"grade"`
	FireRating       fire.Rating        `json:"fire_rating"`
	WidthMM          float64            `json:"width_mm"`
	DepthMM          float64            `json:"depth_mm"`
	SpanM            float64            `json:"span_m"`
	Governing        Criterion          `json:"governing_criterion"`
	Detail           Detail             `json:"engineering_detail"`
	Iterations       int                `json:"iterations"`
	UsingFallback    bool               `json:"using_fallback"`
	CapacityExceeded bool               `json:"capacity_exceeded"`
	Warnings         []string           `json:"warnings,omitempty"`
}

// HasWarning reports whether anything about the result needs attention.
func (r Result) HasWarning() bool {
	return r.CapacityExceeded || len(r.Warnings) > 0
}
