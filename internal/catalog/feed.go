package catalog

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

//go:embed data/catalog.csv
var defaultCatalogCSV []byte

//go:embed data/materials.csv
var defaultMaterialsCSV []byte

// CatalogFeed is the outcome of parsing a section list.
type CatalogFeed struct {
	Entries  []Entry  `json:"entries"`
	Warnings []string `json:"warnings,omitempty"`
}

// MaterialFeed is the outcome of parsing a grade table.
type MaterialFeed struct {
	Grades   map[string]Properties `json:"grades"`
	Warnings []string              `json:"warnings,omitempty"`
}

// DefaultEntries returns the bundled glulam section list.
func DefaultEntries() []Entry {
	rows, err := ReadRowsCSV(bytes.NewReader(defaultCatalogCSV))
	if err != nil {
		return nil
	}
	return ParseCatalogRows(rows).Entries
}

// DefaultGrades returns the bundled grade table.
func DefaultGrades() map[string]Properties {
	rows, err := ReadRowsCSV(bytes.NewReader(defaultMaterialsCSV))
	if err != nil {
		return map[string]Properties{DefaultGrade: defaultProperties}
	}
	return ParseMaterialRows(rows).Grades
}

// DetectDelimiter picks the delimiter giving the most consistent column
// count across lines. Comma wins ties.
func DetectDelimiter(data []byte) rune {
	best := ','
	bestScore := 0
	for _, delim := range []rune{',', ';', '\t', '|'} {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1
		records, err := reader.ReadAll()
		if err != nil || len(records) == 0 {
			continue
		}
		cols := len(records[0])
		if cols < 2 {
			continue
		}
		score := 0
		for _, row := range records {
			if len(row) == cols {
				score++
			}
		}
		if weighted := score*10 + cols; weighted > bestScore {
			bestScore = weighted
			best = delim
		}
	}
	return best
}

// ReadRowsCSV reads every record of a delimited text feed.
func ReadRowsCSV(r io.Reader) ([][]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = DetectDelimiter(data)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	return rows, nil
}

// ReadRowsXLSX reads the first sheet of a workbook.
func ReadRowsXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return rows, nil
}

// ReadRows dispatches on the file name extension.
func ReadRows(name string, r io.Reader) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx", ".xlsm":
		return ReadRowsXLSX(r)
	default:
		return ReadRowsCSV(r)
	}
}

func readRowsFile(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadRows(path, f)
}

// LoadCatalogFile parses a CSV or XLSX section list from disk.
func LoadCatalogFile(path string) (CatalogFeed, error) {
	rows, err := readRowsFile(path)
	if err != nil {
		return CatalogFeed{}, err
	}
	return ParseCatalogRows(rows), nil
}

// LoadMaterialsFile parses a CSV or XLSX grade table from disk.
func LoadMaterialsFile(path string) (MaterialFeed, error) {
	rows, err := readRowsFile(path)
	if err != nil {
		return MaterialFeed{}, err
	}
	return ParseMaterialRows(rows), nil
}

var catalogAliases = map[string][]string{
	"type":  {"type", "member", "member type", "member_type", "element"},
	"width": {"width", "width_mm", "width (mm)", "b", "w"},
	"depth": {"depth", "depth_mm", "depth (mm)", "height", "h", "d"},
}

var materialAliases = map[string][]string{
	"grade":   {"grade", "name", "class", "strength class"},
	"fb":      {"fb", "fb_mpa", "bending", "bending_mpa", "fm"},
	"ft":      {"ft", "ft_mpa", "tension", "tensile", "tensile_mpa"},
	"fc":      {"fc", "fc_mpa", "compression", "compressive", "compressive_mpa"},
	"fv":      {"fv", "fv_mpa", "shear", "shear_mpa"},
	"e":       {"e", "e_mpa", "moe", "modulus", "modulus_of_elasticity"},
	"density": {"density", "density_kg_m3", "rho", "kg/m3"},
}

// detectColumns maps roles to column indices using aliases. ok is false
// when the row does not look like a header.
func detectColumns(row []string, aliases map[string][]string) (map[string]int, bool) {
	mapping := make(map[string]int)
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, names := range aliases {
			for _, alias := range names {
				if normalized != alias {
					continue
				}
				if _, taken := mapping[role]; !taken {
					mapping[role] = i
				}
			}
		}
	}
	return mapping, len(mapping) > 0
}

func cell(row []string, idx int, ok bool) string {
	if !ok || idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func isEmptyRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// ParseCatalogRows converts rows of type, width and depth into entries.
// Without a header the columns are taken positionally.
func ParseCatalogRows(rows [][]string) CatalogFeed {
	var feed CatalogFeed
	if len(rows) == 0 {
		feed.Warnings = append(feed.Warnings, "catalog feed is empty")
		return feed
	}

	mapping, header := detectColumns(rows[0], catalogAliases)
	start := 0
	if header {
		start = 1
		for _, role := range []string{"type", "width", "depth"} {
			if _, ok := mapping[role]; !ok {
				feed.Warnings = append(feed.Warnings, fmt.Sprintf("catalog header lacks %q column", role))
				return feed
			}
		}
	} else {
		mapping = map[string]int{"type": 0, "width": 1, "depth": 2}
	}

	seen := make(map[Entry]bool)
	for i := start; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}
		line := i + 1
		typIdx, typOK := mapping["type"]
		t, ok := ParseMemberType(cell(row, typIdx, typOK))
		if !ok {
			feed.Warnings = append(feed.Warnings, fmt.Sprintf("line %d: unknown member type %q", line, cell(row, typIdx, typOK)))
			continue
		}
		wIdx, wOK := mapping["width"]
		width, err := strconv.ParseFloat(cell(row, wIdx, wOK), 64)
		if err != nil || !positive(width) {
			feed.Warnings = append(feed.Warnings, fmt.Sprintf("line %d: invalid width %q", line, cell(row, wIdx, wOK)))
			continue
		}
		dIdx, dOK := mapping["depth"]
		depth, err := strconv.ParseFloat(cell(row, dIdx, dOK), 64)
		if err != nil || !positive(depth) {
			feed.Warnings = append(feed.Warnings, fmt.Sprintf("line %d: invalid depth %q", line, cell(row, dIdx, dOK)))
			continue
		}
		e := Entry{MemberType: t, WidthMM: width, DepthMM: depth}
		if seen[e] {
			continue
		}
		seen[e] = true
		feed.Entries = append(feed.Entries, e)
	}
	return feed
}

// ParseMaterialRows converts grade rows into a property table. Rows with
// missing or non-positive values are reported and skipped.
func ParseMaterialRows(rows [][]string) MaterialFeed {
	feed := MaterialFeed{Grades: make(map[string]Properties)}
	if len(rows) == 0 {
		feed.Warnings = append(feed.Warnings, "material feed is empty")
		return feed
	}

	roles := []string{"grade", "fb", "ft", "fc", "fv", "e", "density"}
	mapping, header := detectColumns(rows[0], materialAliases)
	start := 0
	if header {
		start = 1
	} else {
		mapping = make(map[string]int)
		for i, role := range roles {
			mapping[role] = i
		}
	}

	for i := start; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}
		line := i + 1
		gIdx, gOK := mapping["grade"]
		grade := cell(row, gIdx, gOK)
		if grade == "" {
			feed.Warnings = append(feed.Warnings, fmt.Sprintf("line %d: missing grade", line))
			continue
		}

		values := make(map[string]float64, len(roles)-1)
		bad := ""
		for _, role := range roles[1:] {
			idx, ok := mapping[role]
			v, err := strconv.ParseFloat(cell(row, idx, ok), 64)
			if err != nil || !positive(v) {
				bad = role
				break
			}
			values[role] = v
		}
		if bad != "" {
			feed.Warnings = append(feed.Warnings, fmt.Sprintf("line %d: grade %s has invalid %s", line, grade, bad))
			continue
		}
		feed.Grades[grade] = Properties{
			BendingMPa:     values["fb"],
			TensileMPa:     values["ft"],
			CompressiveMPa: values["fc"],
			ShearMPa:       values["fv"],
			EMPa:           values["e"],
			DensityKgM3:    values["density"],
		}
	}
	return feed
}
