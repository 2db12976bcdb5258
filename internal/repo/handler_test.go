package repo

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryRepo struct {
	runs []Run
	err  error
}

func (m *memoryRepo) SaveRun(ctx context.Context, kind string, request, result any) (Run, error) {
	if m.err != nil {
		return Run{}, m.err
	}
	req, _ := json.Marshal(request)
	res, _ := json.Marshal(result)
	run := Run{ID: uuid.New(), Kind: kind, CreatedAt: time.Now(), Request: req, Result: res}
	m.runs = append(m.runs, run)
	return run, nil
}

func (m *memoryRepo) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.runs, nil
}

func TestRecord(t *testing.T) {
	m := &memoryRepo{}
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	Record(req, m, "structure", map[string]int{"floors": 3}, map[string]bool{"valid": true})

	require.Len(t, m.runs, 1)
	assert.Equal(t, "structure", m.runs[0].Kind)
	assert.JSONEq(t, `{"floors":3}`, string(m.runs[0].Request))
}

func TestRecord_NilAndFailingRepo(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	assert.NotPanics(t, func() { Record(req, nil, "joist", nil, nil) })
	assert.NotPanics(t, func() { Record(req, &memoryRepo{err: errors.New("down")}, "joist", nil, nil) })
}

func TestRunsHandler_List(t *testing.T) {
	m := &memoryRepo{}
	req := httptest.NewRequest(http.MethodGet, "/api/user/runs?limit=10", nil)
	Record(req, m, "batch-joist", []int{1}, []int{2})

	rec := httptest.NewRecorder()
	(&RunsHandler{Repo: m}).List(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	var runs []Run
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &runs))
	require.Len(t, runs, 1)
	assert.Equal(t, "batch-joist", runs[0].Kind)

	rec = httptest.NewRecorder()
	(&RunsHandler{Repo: &memoryRepo{err: errors.New("down")}}).List(rec, req)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
