package sizing

import (
	"errors"
	"fmt"
	"math"

	"Timberline/internal/calc"
	"Timberline/internal/calc/deflection"
	"Timberline/internal/calc/fire"
	"Timberline/internal/calc/loads"
	"Timberline/internal/catalog"
)

// Request is the policy-independent sizing input. Flexural members read
// LineLoadKNM and AreaLoadKPa; axial members read AxialLoadKN and Floors.
type Request struct {
	// SpanM is the clear span, or the storey height for columns.
	SpanM       float64
	LineLoadKNM float64
	// AreaLoadKPa selects the deflection limit.
	AreaLoadKPa float64
	AxialLoadKN float64
	// Floors stacks column self-weight over this many storeys.
	Floors     int
	Grade      string
	FireRating string
	// WidthMM pins the gross width when positive.
	WidthMM float64
}

const (
	maxIterations = 20
	convergenceMM = 0.1
	eps           = 1e-9
)

var errNoContext = errors.New("sizing: context not initialised")

func (r Request) validate(p Policy) error {
	if r.SpanM <= 0 {
		return calc.Invalidf("span must be positive")
	}
	switch p.Mode {
	case Flexure:
		if r.LineLoadKNM <= 0 || r.AreaLoadKPa <= 0 {
			return calc.Invalidf("load must be positive")
		}
	case Axial:
		if r.AxialLoadKN <= 0 {
			return calc.Invalidf("axial load must be positive")
		}
		if r.Floors < 1 {
			return calc.Invalidf("floors must be at least 1")
		}
	}
	if r.WidthMM < 0 {
		return calc.Invalidf("width must not be negative")
	}
	return nil
}

// Solve sizes one member: required net section from the governing check,
// self-weight iterated to convergence, fire allowance added per exposed
// face, then the smallest catalog section whose residual passes every check.
// A fire-rated beam or joist is never shallower than its unfired size plus
// the depth allowance.
func Solve(ctx *Context, req Request, p Policy) (Result, error) {
	if ctx == nil {
		return Result{}, errNoContext
	}
	if err := req.validate(p); err != nil {
		return Result{}, err
	}

	props, grade, found := ctx.materials.Lookup(req.Grade)
	rating, known := fire.Parse(req.FireRating)
	allowance := fire.Allowance(rating)
	widthAllowance := float64(p.WidthFaces) * allowance
	depthAllowance := float64(p.DepthFaces) * allowance

	res := Result{
		MemberType: p.Member,
		Grade:      grade,
		FireRating: rating,
		SpanM:      req.SpanM,
	}
	if !found {
		res.Warnings = append(res.Warnings, fmt.Sprintf("grade %q not found, using %s", req.Grade, grade))
	}
	if !known {
		res.Warnings = append(res.Warnings, fmt.Sprintf("fire rating %q not recognised, no allowance applied", req.FireRating))
	}

	grossW := req.WidthMM
	var netW float64
	if grossW > 0 {
		netW = grossW - widthAllowance
		if netW <= 0 {
			return Result{}, calc.Invalidf("width %.0f mm leaves no residual section at %s", grossW, rating)
		}
	} else {
		netW = p.netWidth(rating)
		grossW = netW + widthAllowance
	}

	an := newAnalysis(p, req, props)

	// A charred flexural member keeps at least the unfired section under
	// the char layer on its exposed depth face.
	var floorD float64
	var floorGov Criterion
	if p.Mode == Flexure && depthAllowance > 0 {
		unfiredReq := req
		unfiredReq.FireRating = string(fire.None)
		unfired, err := Solve(ctx, unfiredReq, p)
		if err != nil {
			return Result{}, err
		}
		floorD, floorGov = unfired.DepthMM, unfired.Governing
	}

	var (
		demand Demand
		netD   float64
		grossD float64
		gov    Criterion
		sw     float64
	)
	for i := 1; i <= maxIterations; i++ {
		res.Iterations = i
		demand = an.demand(netW, sw)
		d, g := demand.governing()
		if d < floorD {
			d, g = floorD, floorGov
		}
		next := d + depthAllowance
		if p.DepthAtLeastWidth && next < grossW {
			next, g = grossW, Minimum
		}
		converged := i > 1 && math.Abs(next-grossD) < convergenceMM
		netD, grossD, gov = d, next, g
		sw = an.selfWeight(grossW, grossD)
		if converged {
			break
		}
	}

	entries, fallback := ctx.sections(p.Member)
	res.UsingFallback = fallback
	if req.WidthMM > 0 {
		var note string
		entries, note = pinWidth(entries, req.WidthMM, p.Member)
		if note != "" {
			res.Warnings = append(res.Warnings, note)
		}
	}

	chosen, detail, ok := snap(entries, an, grossW, grossD, widthAllowance, depthAllowance)
	if !ok {
		res.CapacityExceeded = true
		res.Warnings = append(res.Warnings, fmt.Sprintf(
			"no %s section reaches %.0f x %.0f mm, largest available used", p.Member, grossW, grossD))
	}

	detail.NetWidthMM = netW
	detail.StructuralDepthMM = netD
	detail.RequiredWidthMM = grossW
	detail.RequiredDepthMM = grossD
	detail.FireAllowanceMM = allowance
	detail.Demand = demand

	res.WidthMM = chosen.WidthMM
	res.DepthMM = chosen.DepthMM
	res.Governing = gov
	res.Detail = detail
	return res, nil
}

// pinWidth keeps the sections of one width. A width the catalog does not
// list is offered with every depth known for the member type.
func pinWidth(entries []catalog.Entry, widthMM float64, t catalog.MemberType) ([]catalog.Entry, string) {
	var out []catalog.Entry
	depths := make(map[float64]bool)
	for _, e := range entries {
		if math.Abs(e.WidthMM-widthMM) < eps {
			out = append(out, e)
		}
		depths[e.DepthMM] = true
	}
	if len(out) > 0 {
		return out, ""
	}
	for d := range depths {
		out = append(out, catalog.Entry{MemberType: t, WidthMM: widthMM, DepthMM: d})
	}
	catalog.SortEntries(out)
	return out, fmt.Sprintf("%s width %.0f mm is not catalogued, depths taken from all %s sections", t, widthMM, t)
}

// snap walks entries in (width, depth) order and returns the first one at
// least as large as required whose residual section passes. When none
// does it returns the largest entry and ok=false.
func snap(entries []catalog.Entry, an analysis, reqW, reqD, widthAllowance, depthAllowance float64) (catalog.Entry, Detail, bool) {
	for _, e := range entries {
		if e.WidthMM < reqW-eps || e.DepthMM < reqD-eps {
			continue
		}
		rw, rd := e.WidthMM-widthAllowance, e.DepthMM-depthAllowance
		if rw <= 0 || rd <= 0 {
			continue
		}
		det := an.evaluate(rw, rd, an.selfWeight(e.WidthMM, e.DepthMM))
		if det.Utilization.Max() <= 1+eps {
			det.ResidualWidthMM, det.ResidualDepthMM = rw, rd
			return e, det, true
		}
	}
	if len(entries) == 0 {
		return catalog.Entry{}, Detail{}, false
	}
	largest := entries[len(entries)-1]
	rw := math.Max(largest.WidthMM-widthAllowance, 1)
	rd := math.Max(largest.DepthMM-depthAllowance, 1)
	det := an.evaluate(rw, rd, an.selfWeight(largest.WidthMM, largest.DepthMM))
	det.ResidualWidthMM, det.ResidualDepthMM = rw, rd
	return largest, det, false
}

// analysis is the failure-mode model of a policy.
type analysis interface {
	// demand returns the net depth each check needs at net width b.
	demand(b, selfWeight float64) Demand
	// selfWeight of the gross section in the unit the analysis loads with.
	selfWeight(grossW, grossD float64) float64
	// evaluate checks a residual section b × d.
	evaluate(b, d, selfWeight float64) Detail
}

func newAnalysis(p Policy, req Request, props catalog.Properties) analysis {
	if p.Mode == Axial {
		return axial{
			props:    props,
			heightMM: req.SpanM * 1000,
			loadN:    req.AxialLoadKN * 1000,
			floors:   req.Floors,
			minRatio: p.SlendernessRatio,
		}
	}
	ratio := loads.DeflectionLimit(req.AreaLoadKPa)
	span := req.SpanM * 1000
	return flexure{
		props:      props,
		spanMM:     span,
		w:          req.LineLoadKNM,
		limitRatio: ratio,
		allowMM:    span / ratio,
	}
}

// flexure models a simply supported member under uniform load. Loads are
// in N/mm (= kN/m), lengths in mm, stresses in MPa.
type flexure struct {
	props      catalog.Properties
	spanMM     float64
	w          float64
	limitRatio float64
	allowMM    float64
}

func (f flexure) actions(sw float64) (wt, moment, shear float64) {
	wt = f.w + sw
	return wt, wt * f.spanMM * f.spanMM / 8, wt * f.spanMM / 2
}

func (f flexure) demand(b, sw float64) Demand {
	wt, m, v := f.actions(sw)
	z := m / f.props.BendingMPa
	return Demand{
		BendingMM:    math.Sqrt(6 * z / b),
		ShearMM:      1.5 * v / (b * f.props.ShearMPa),
		DeflectionMM: deflection.RequiredDepth(wt, f.spanMM, f.props.EMPa, f.allowMM, b),
	}
}

func (f flexure) selfWeight(w, d float64) float64 {
	return loads.SelfWeight(f.props.DensityKgM3, w, d)
}

func (f flexure) evaluate(b, d, sw float64) Detail {
	wt, m, v := f.actions(sw)
	z := b * d * d / 6
	i := b * d * d * d / 12
	delta := deflection.UDL(wt, f.spanMM, f.props.EMPa, i)
	return Detail{
		LineLoadKNM:               f.w,
		SelfWeightKNM:             sw,
		BendingMomentKNM:          m / 1e6,
		ShearForceKN:              v / 1000,
		RequiredSectionModulusMM3: m / f.props.BendingMPa,
		SectionModulusMM3:         z,
		MomentOfInertiaMM4:        i,
		ActualDeflectionMM:        delta,
		AllowableDeflectionMM:     f.allowMM,
		DeflectionLimit:           f.limitRatio,
		Utilization: Utilization{
			Bending:    m / z / f.props.BendingMPa,
			Shear:      1.5 * v / (b * d) / f.props.ShearMPa,
			Deflection: delta / f.allowMM,
		},
	}
}

// axial models a pinned column buckling about its weak axis. The crushing
// and Euler stresses combine as 1/σu = 1/fc + 1/σcr.
type axial struct {
	props    catalog.Properties
	heightMM float64
	loadN    float64
	floors   int
	minRatio float64
}

func (a axial) stresses(weak float64) (euler, ultimate float64) {
	euler = math.Pi * math.Pi * a.props.EMPa * weak * weak / (12 * a.heightMM * a.heightMM)
	ultimate = 1 / (1/a.props.CompressiveMPa + 1/euler)
	return euler, ultimate
}

func (a axial) demand(b, sw float64) Demand {
	euler, ultimate := a.stresses(b)
	d := Demand{
		CompressionMM: (a.loadN + sw*1000) / (ultimate * b),
		compression:   Compression,
	}
	if euler < a.props.CompressiveMPa {
		d.compression = Buckling
	}
	if a.minRatio > 0 {
		d.MinimumMM = a.heightMM / a.minRatio
	}
	return d
}

// selfWeight is the weight of the column stack carried at the base, kN.
func (a axial) selfWeight(w, d float64) float64 {
	return float64(a.floors) * loads.SelfWeight(a.props.DensityKgM3, w, d) * a.heightMM / 1000
}

func (a axial) evaluate(b, d, sw float64) Detail {
	weak, strong := math.Min(b, d), math.Max(b, d)
	euler, ultimate := a.stresses(weak)
	n := a.loadN + sw*1000
	capacity := ultimate * b * d
	return Detail{
		SelfWeightKN:          sw,
		AxialLoadKN:           n / 1000,
		MomentOfInertiaMM4:    strong * weak * weak * weak / 12,
		BucklingStressMPa:     euler,
		CompressiveCapacityKN: capacity / 1000,
		Utilization: Utilization{
			Compression: n / capacity,
		},
	}
}
