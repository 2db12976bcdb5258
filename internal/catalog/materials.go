package catalog

import (
	"sort"
	"strings"
)

// DefaultGrade is used when a request names a grade the feed does not know.
const DefaultGrade = "GL24h"

// Properties are characteristic mechanical properties of a timber grade.
type Properties struct {
	BendingMPa     float64 `json:"fb_mpa"`
	TensileMPa     float64 `json:"ft_mpa"`
	CompressiveMPa float64 `json:"fc_mpa"`
	ShearMPa       float64 `json:"fv_mpa"`
	EMPa           float64 `json:"e_mpa"`
	DensityKgM3    float64 `json:"density_kg_m3"`
}

// Valid reports whether every property is finite and positive.
func (p Properties) Valid() bool {
	for _, v := range []float64{p.BendingMPa, p.TensileMPa, p.CompressiveMPa, p.ShearMPa, p.EMPa, p.DensityKgM3} {
		if !positive(v) {
			return false
		}
	}
	return true
}

// defaultProperties backs DefaultGrade when a feed omits it (GL24h, EN 14080).
var defaultProperties = Properties{
	BendingMPa:     24,
	TensileMPa:     19.2,
	CompressiveMPa: 24,
	ShearMPa:       3.5,
	EMPa:           11500,
	DensityKgM3:    420,
}

// Materials is an immutable grade table. Lookups ignore case.
type Materials struct {
	grades map[string]Properties
	names  map[string]string
}

// NewMaterials drops invalid rows and guarantees DefaultGrade is present.
func NewMaterials(grades map[string]Properties) *Materials {
	m := &Materials{
		grades: make(map[string]Properties),
		names:  make(map[string]string),
	}
	for name, p := range grades {
		name = strings.TrimSpace(name)
		if name == "" || !p.Valid() {
			continue
		}
		key := strings.ToLower(name)
		m.grades[key] = p
		m.names[key] = name
	}
	key := strings.ToLower(DefaultGrade)
	if _, ok := m.grades[key]; !ok {
		m.grades[key] = defaultProperties
		m.names[key] = DefaultGrade
	}
	return m
}

// Lookup returns the properties for grade and the grade actually used.
// An empty grade asks for DefaultGrade; an unknown one falls back to it
// with found=false.
func (m *Materials) Lookup(grade string) (Properties, string, bool) {
	key := strings.ToLower(strings.TrimSpace(grade))
	if key == "" {
		key = strings.ToLower(DefaultGrade)
	}
	if p, ok := m.grades[key]; ok {
		return p, m.names[key], true
	}
	d := strings.ToLower(DefaultGrade)
	return m.grades[d], m.names[d], false
}

// Grades lists the known grade names, sorted.
func (m *Materials) Grades() []string {
	out := make([]string, 0, len(m.names))
	for _, n := range m.names {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
