package batch

import (
	"net/http"

	"Timberline/internal/calc"
	"Timberline/internal/calc/sizing"
	"Timberline/internal/repo"
)

type Handler struct {
	Engine *sizing.Store
	Runs   repo.Repository
}

func (h *Handler) Joist(w http.ResponseWriter, r *http.Request) {
	var input JoistBatchInput
	if !calc.DecodeJSON(w, r, &input) {
		return
	}
	res, err := CalculateJoists(h.Engine.Load(), input)
	if err != nil {
		calc.WriteError(w, err)
		return
	}
	repo.Record(r, h.Runs, "batch-joist", input, res)
	calc.WriteJSON(w, http.StatusOK, res)
}

func (h *Handler) Beam(w http.ResponseWriter, r *http.Request) {
	var input BeamBatchInput
	if !calc.DecodeJSON(w, r, &input) {
		return
	}
	res, err := CalculateBeams(h.Engine.Load(), input)
	if err != nil {
		calc.WriteError(w, err)
		return
	}
	repo.Record(r, h.Runs, "batch-beam", input, res)
	calc.WriteJSON(w, http.StatusOK, res)
}
