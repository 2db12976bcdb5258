// Package importer reads joist sizing requests from a spreadsheet.
package importer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"Timberline/internal/calc/joist"

	"github.com/xuri/excelize/v2"
)

// JoistRow is one parsed request and its 1-based sheet row.
type JoistRow struct {
	Row   int
	Input joist.Input
}

// ReadJoistWorkbook reads the first sheet of an XLSX workbook. The first
// row is a header; columns are span_m, spacing_mm, load_kpa, then the
// optional grade and fire_rating.
func ReadJoistWorkbook(r io.Reader) ([]JoistRow, []string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("read sheet: %w", err)
	}
	if len(rows) < 2 {
		return nil, nil, fmt.Errorf("empty sheet")
	}
	inputs, skipped := ParseJoistRows(rows[1:])
	return inputs, skipped, nil
}

// ParseJoistRows converts data rows that follow the header, reporting the
// ones it skips.
func ParseJoistRows(rows [][]string) ([]JoistRow, []string) {
	var inputs []JoistRow
	var skipped []string
	for i, row := range rows {
		line := i + 2
		in, err := parseJoistRow(row)
		if err != nil {
			skipped = append(skipped, fmt.Sprintf("row %d: %v", line, err))
			continue
		}
		inputs = append(inputs, JoistRow{Row: line, Input: in})
	}
	return inputs, skipped
}

func parseJoistRow(row []string) (joist.Input, error) {
	if len(row) < 3 {
		return joist.Input{}, fmt.Errorf("bad row")
	}
	span, err := toFloat(row[0])
	if err != nil {
		return joist.Input{}, fmt.Errorf("span: %w", err)
	}
	spacing, err := toFloat(row[1])
	if err != nil {
		return joist.Input{}, fmt.Errorf("spacing: %w", err)
	}
	load, err := toFloat(row[2])
	if err != nil {
		return joist.Input{}, fmt.Errorf("load: %w", err)
	}
	in := joist.Input{SpanM: span, SpacingMM: spacing, LoadKPa: load}
	if len(row) > 3 {
		in.Grade = strings.TrimSpace(row[3])
	}
	if len(row) > 4 {
		in.FireRating = strings.TrimSpace(row[4])
	}
	return in, nil
}

func toFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
