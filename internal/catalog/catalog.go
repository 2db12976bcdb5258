// Package catalog holds the read-only data the sizing engine works from:
// the list of manufactured cross-sections per member type and the
// mechanical properties per timber grade.
package catalog

import (
	"math"
	"sort"
	"strings"
)

type MemberType string

const (
	Joist  MemberType = "joist"
	Beam   MemberType = "beam"
	Column MemberType = "column"
)

// MemberTypes lists the member types in load-path order.
func MemberTypes() []MemberType {
	return []MemberType{Joist, Beam, Column}
}

// ParseMemberType accepts the canonical names plus the plurals and
// synonyms found in supplier sheets.
func ParseMemberType(s string) (MemberType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "joist", "joists":
		return Joist, true
	case "beam", "beams", "girder":
		return Beam, true
	case "column", "columns", "post":
		return Column, true
	default:
		return "", false
	}
}

// Entry is one available cross-section.
type Entry struct {
	MemberType MemberType `json:"type"`
	WidthMM    float64    `json:"width_mm"`
	DepthMM    float64    `json:"depth_mm"`
}

// Catalog is an immutable, de-duplicated set of entries. Entries of each
// member type are ordered by width, then depth.
type Catalog struct {
	entries map[MemberType][]Entry
}

// New builds a catalog from raw feed rows. Rows with an unknown member type
// or a dimension that is not finite and positive are dropped, duplicates
// are collapsed.
func New(rows []Entry) *Catalog {
	c := &Catalog{entries: make(map[MemberType][]Entry)}
	seen := make(map[Entry]bool)
	for _, e := range rows {
		t, ok := ParseMemberType(string(e.MemberType))
		if !ok {
			continue
		}
		e.MemberType = t
		if !positive(e.WidthMM) || !positive(e.DepthMM) {
			continue
		}
		if seen[e] {
			continue
		}
		seen[e] = true
		c.entries[e.MemberType] = append(c.entries[e.MemberType], e)
	}
	for t := range c.entries {
		SortEntries(c.entries[t])
	}
	return c
}

// SortEntries orders entries by width, then depth, the order in which
// snapping tries them.
func SortEntries(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].WidthMM != entries[j].WidthMM {
			return entries[i].WidthMM < entries[j].WidthMM
		}
		return entries[i].DepthMM < entries[j].DepthMM
	})
}

// Has reports whether at least one entry exists for t.
func (c *Catalog) Has(t MemberType) bool {
	return c != nil && len(c.entries[t]) > 0
}

// Len returns the total number of entries.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	n := 0
	for _, e := range c.entries {
		n += len(e)
	}
	return n
}

// Entries returns a copy of the entries for t.
func (c *Catalog) Entries(t MemberType) []Entry {
	if c == nil {
		return nil
	}
	return append([]Entry(nil), c.entries[t]...)
}

// All returns every entry in member-type order.
func (c *Catalog) All() []Entry {
	var out []Entry
	for _, t := range MemberTypes() {
		out = append(out, c.Entries(t)...)
	}
	return out
}

// Widths returns the distinct widths available for t, ascending.
func (c *Catalog) Widths(t MemberType) []float64 {
	var out []float64
	for _, e := range c.Entries(t) {
		if len(out) == 0 || out[len(out)-1] != e.WidthMM {
			out = append(out, e.WidthMM)
		}
	}
	return out
}

// Depths returns the depths available for t. A zero width returns the
// union of depths over all widths.
func (c *Catalog) Depths(t MemberType, widthMM float64) []float64 {
	set := make(map[float64]bool)
	for _, e := range c.Entries(t) {
		if widthMM == 0 || e.WidthMM == widthMM {
			set[e.DepthMM] = true
		}
	}
	out := make([]float64, 0, len(set))
	for d := range set {
		out = append(out, d)
	}
	sort.Float64s(out)
	return out
}

// Standard sizes used when no catalog has been supplied for a member type.
var (
	StandardDepthsMM = []float64{200, 270, 335, 410, 480, 550, 620}
	StandardWidthsMM = []float64{65, 90, 120, 140, 165, 190, 215, 240, 265, 290, 315, 340, 365, 390, 415, 440, 465, 490, 515}
)

// Fallback supplies sizes for member types the injected catalog lacks.
type Fallback struct {
	WidthsMM []float64
	DepthsMM []float64
}

// DefaultFallback returns the standard width and depth lists.
func DefaultFallback() Fallback {
	return Fallback{
		WidthsMM: append([]float64(nil), StandardWidthsMM...),
		DepthsMM: append([]float64(nil), StandardDepthsMM...),
	}
}

// Entries expands the fallback lists into catalog entries for t.
func (f Fallback) Entries(t MemberType) []Entry {
	out := make([]Entry, 0, len(f.WidthsMM)*len(f.DepthsMM))
	for _, w := range f.WidthsMM {
		for _, d := range f.DepthsMM {
			out = append(out, Entry{MemberType: t, WidthMM: w, DepthMM: d})
		}
	}
	SortEntries(out)
	return out
}

// positive reports whether v is finite and above zero. NaN fails v > 0.
func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
