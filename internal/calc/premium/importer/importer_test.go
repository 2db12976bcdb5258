package importer

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"Timberline/internal/calc/sizing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func workbook(t *testing.T, rows ...[]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		r := row
		require.NoError(t, f.SetSheetRow(sheet, cell, &r))
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return &buf
}

func TestParseJoistRows(t *testing.T) {
	inputs, skipped := ParseJoistRows([][]string{
		{"6", "800", "3", "GL28h", "60/60/60"},
		{" 4.5 ", "600", "2.5"},
		{"x", "600", "2"},
		{"5", "600"},
	})
	require.Len(t, inputs, 2)
	assert.Equal(t, 2, inputs[0].Row)
	assert.Equal(t, 6.0, inputs[0].Input.SpanM)
	assert.Equal(t, "GL28h", inputs[0].Input.Grade)
	assert.Equal(t, "60/60/60", inputs[0].Input.FireRating)
	assert.Equal(t, 3, inputs[1].Row)
	assert.Equal(t, 4.5, inputs[1].Input.SpanM)
	require.Len(t, skipped, 2)
	assert.Contains(t, skipped[0], "row 4")
	assert.Contains(t, skipped[1], "row 5")
}

func TestReadJoistWorkbook(t *testing.T) {
	buf := workbook(t,
		[]interface{}{"span_m", "spacing_mm", "load_kpa", "grade", "fire_rating"},
		[]interface{}{6, 800, 3, "GL24h", "none"},
		[]interface{}{5, 600, 2},
	)
	inputs, skipped, err := ReadJoistWorkbook(buf)
	require.NoError(t, err)
	assert.Empty(t, skipped)
	require.Len(t, inputs, 2)
	assert.Equal(t, 800.0, inputs[0].Input.SpacingMM)
	assert.Equal(t, 3, inputs[1].Row)
}

func TestReadJoistWorkbook_HeaderOnly(t *testing.T) {
	_, _, err := ReadJoistWorkbook(workbook(t, []interface{}{"span_m", "spacing_mm", "load_kpa"}))
	assert.Error(t, err)
}

func TestHandler_Joist(t *testing.T) {
	buf := workbook(t,
		[]interface{}{"span_m", "spacing_mm", "load_kpa"},
		[]interface{}{6, 800, 3},
		[]interface{}{0, 800, 3},
		[]interface{}{5, 600, -2},
	)
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", "joists.xlsx")
	require.NoError(t, err)
	_, err = fw.Write(buf.Bytes())
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/user/tools/import/joist", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	(&Handler{Engine: sizing.NewStore(sizing.Default())}).Joist(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var out JoistImportResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, 1, out.Count)
	require.Len(t, out.Skipped, 2, "invalid rows are reported, not fatal")
	assert.Contains(t, out.Skipped[0], "row 3")
	assert.Contains(t, out.Skipped[1], "row 4")
}
