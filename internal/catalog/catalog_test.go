package catalog

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMemberType_Aliases(t *testing.T) {
	for in, want := range map[string]MemberType{
		"joist": Joist, "Joists": Joist,
		"beam": Beam, "GIRDER": Beam,
		"column": Column, " post ": Column,
	} {
		got, ok := ParseMemberType(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}
	_, ok := ParseMemberType("slab")
	assert.False(t, ok)
}

func TestNew_NormalisesAndSorts(t *testing.T) {
	c := New([]Entry{
		{MemberType: "beams", WidthMM: 215, DepthMM: 410},
		{MemberType: "beam", WidthMM: 165, DepthMM: 480},
		{MemberType: "beam", WidthMM: 165, DepthMM: 335},
		{MemberType: "beam", WidthMM: 165, DepthMM: 335},
		{MemberType: "beam", WidthMM: 0, DepthMM: 335},
		{MemberType: "slab", WidthMM: 200, DepthMM: 200},
	})

	assert.Equal(t, 3, c.Len(), "duplicates and invalid rows are dropped")
	assert.Equal(t, []Entry{
		{MemberType: Beam, WidthMM: 165, DepthMM: 335},
		{MemberType: Beam, WidthMM: 165, DepthMM: 480},
		{MemberType: Beam, WidthMM: 215, DepthMM: 410},
	}, c.Entries(Beam))
	assert.True(t, c.Has(Beam))
	assert.False(t, c.Has(Joist))
	assert.Equal(t, []float64{165, 215}, c.Widths(Beam))
	assert.Equal(t, []float64{335, 480}, c.Depths(Beam, 165))
	assert.Equal(t, []float64{335, 410, 480}, c.Depths(Beam, 0))
}

func TestNew_DropsNonFinite(t *testing.T) {
	c := New([]Entry{
		{MemberType: Joist, WidthMM: 120, DepthMM: 200},
		{MemberType: Joist, WidthMM: math.Inf(1), DepthMM: 620},
		{MemberType: Joist, WidthMM: 120, DepthMM: math.NaN()},
	})
	assert.Equal(t, []Entry{{MemberType: Joist, WidthMM: 120, DepthMM: 200}}, c.Entries(Joist))
}

func TestEntries_ReturnsCopy(t *testing.T) {
	c := New([]Entry{{MemberType: Joist, WidthMM: 120, DepthMM: 200}})
	got := c.Entries(Joist)
	got[0].DepthMM = 999
	assert.Equal(t, 200.0, c.Entries(Joist)[0].DepthMM)
}

func TestFallback_Entries(t *testing.T) {
	f := DefaultFallback()
	entries := f.Entries(Column)
	require.Len(t, entries, len(StandardWidthsMM)*len(StandardDepthsMM))
	assert.Equal(t, Entry{MemberType: Column, WidthMM: 65, DepthMM: 200}, entries[0])
	assert.Equal(t, Entry{MemberType: Column, WidthMM: 515, DepthMM: 620}, entries[len(entries)-1])
}

func TestDefaultEntries_Bundled(t *testing.T) {
	c := New(DefaultEntries())
	assert.Len(t, c.Entries(Joist), 77)
	assert.Len(t, c.Entries(Beam), 144)
	for _, e := range c.Entries(Column) {
		assert.GreaterOrEqual(t, e.DepthMM, e.WidthMM, "bundled columns are never wider than deep")
	}
}
