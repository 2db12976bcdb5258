package importer

import (
	"fmt"
	"net/http"

	"Timberline/internal/calc"
	"Timberline/internal/calc/joist"
	"Timberline/internal/calc/sizing"
)

const maxUpload = 10 << 20 // 10MB

type Handler struct {
	Engine *sizing.Store
}

type JoistImportResult struct {
	Count   int             `json:"count"`
	Results []sizing.Result `json:"results"`
	Skipped []string        `json:"skipped,omitempty"`
}

func (h *Handler) Joist(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUpload)
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	inputs, skipped, err := ReadJoistWorkbook(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}

	ctx := h.Engine.Load()
	out := JoistImportResult{Results: []sizing.Result{}, Skipped: skipped}
	for _, row := range inputs {
		res, err := joist.Size(ctx, row.Input)
		if err != nil {
			out.Skipped = append(out.Skipped, fmt.Sprintf("row %d: %v", row.Row, err))
			continue
		}
		out.Results = append(out.Results, res)
	}
	out.Count = len(out.Results)
	calc.WriteJSON(w, http.StatusOK, out)
}
