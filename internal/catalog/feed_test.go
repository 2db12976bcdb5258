package catalog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestDetectDelimiter(t *testing.T) {
	assert.Equal(t, ',', DetectDelimiter([]byte("type,width,depth\njoist,120,200\n")))
	assert.Equal(t, ';', DetectDelimiter([]byte("type;width;depth\njoist;120;200\n")))
	assert.Equal(t, '\t', DetectDelimiter([]byte("type\twidth\tdepth\njoist\t120\t200\n")))
	assert.Equal(t, ',', DetectDelimiter([]byte("single\n")), "comma when nothing splits")
}

func TestParseCatalogRows_HeaderAliases(t *testing.T) {
	rows, err := ReadRowsCSV(strings.NewReader("Member Type;Depth (mm);Width (mm)\nbeam;410;215\nJoists;200;120\n"))
	require.NoError(t, err)

	feed := ParseCatalogRows(rows)
	assert.Empty(t, feed.Warnings)
	assert.Equal(t, []Entry{
		{MemberType: Beam, WidthMM: 215, DepthMM: 410},
		{MemberType: Joist, WidthMM: 120, DepthMM: 200},
	}, feed.Entries)
}

func TestParseCatalogRows_Positional(t *testing.T) {
	feed := ParseCatalogRows([][]string{{"column", "240", "240"}, {"column", "240", "240"}})
	assert.Equal(t, []Entry{{MemberType: Column, WidthMM: 240, DepthMM: 240}}, feed.Entries)
}

func TestParseCatalogRows_Malformed(t *testing.T) {
	feed := ParseCatalogRows([][]string{
		{"type", "width", "depth"},
		{"joist", "abc", "200"},
		{"slab", "120", "200"},
		{"beam", "165", "-1"},
		{"", "", ""},
		{"beam", "165", "335"},
	})
	assert.Len(t, feed.Entries, 1)
	assert.Len(t, feed.Warnings, 3)
	assert.Contains(t, feed.Warnings[0], "line 2")
}

func TestParseCatalogRows_NonFinite(t *testing.T) {
	feed := ParseCatalogRows([][]string{
		{"type", "width", "depth"},
		{"joist", "120", "200"},
		{"joist", "inf", "620"},
		{"joist", "120", "NaN"},
		{"joist", "-Inf", "270"},
	})
	assert.Equal(t, []Entry{{MemberType: Joist, WidthMM: 120, DepthMM: 200}}, feed.Entries)
	require.Len(t, feed.Warnings, 3)
	assert.Contains(t, feed.Warnings[0], "invalid width")
	assert.Contains(t, feed.Warnings[1], "invalid depth")
}

func TestParseCatalogRows_HeaderMissingColumn(t *testing.T) {
	feed := ParseCatalogRows([][]string{{"type", "width"}, {"joist", "120"}})
	assert.Empty(t, feed.Entries)
	require.Len(t, feed.Warnings, 1)
	assert.Contains(t, feed.Warnings[0], "depth")
}

func TestParseCatalogRows_Empty(t *testing.T) {
	feed := ParseCatalogRows(nil)
	assert.Empty(t, feed.Entries)
	assert.NotEmpty(t, feed.Warnings)
}

func TestParseMaterialRows(t *testing.T) {
	feed := ParseMaterialRows([][]string{
		{"Grade", "fb", "ft", "fc", "fv", "E", "density"},
		{"GL30h", "30", "24", "30", "3.5", "13600", "480"},
		{"Broken", "30", "x", "30", "3.5", "13600", "480"},
		{"", "1", "1", "1", "1", "1", "1"},
		{"Endless", "30", "24", "30", "3.5", "inf", "480"},
		{"Hollow", "30", "24", "30", "NaN", "13600", "480"},
	})
	require.Contains(t, feed.Grades, "GL30h")
	assert.Equal(t, 13600.0, feed.Grades["GL30h"].EMPa)
	assert.NotContains(t, feed.Grades, "Broken")
	assert.NotContains(t, feed.Grades, "Endless")
	assert.NotContains(t, feed.Grades, "Hollow")
	require.Len(t, feed.Warnings, 4)
	assert.Contains(t, feed.Warnings[2], "invalid e")
	assert.Contains(t, feed.Warnings[3], "invalid fv")
}

func TestDefaultGrades_Bundled(t *testing.T) {
	grades := DefaultGrades()
	assert.Len(t, grades, 9)
	assert.Equal(t, 420.0, grades["GL24h"].DensityKgM3)
}

func TestReadRows_XLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"type", "width_mm", "depth_mm"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{"beam", 190, 480}))
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	rows, err := ReadRows("sections.xlsx", &buf)
	require.NoError(t, err)

	feed := ParseCatalogRows(rows)
	assert.Equal(t, []Entry{{MemberType: Beam, WidthMM: 190, DepthMM: 480}}, feed.Entries)
}
