package autodesign

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

func (h *Handler) Structure(w http.ResponseWriter, r *http.Request) {
	var input StructureInput
	if !calc.DecodeJSON(w, r, &input) {
		return
	}
	res, err := Structure(h.Engine.Load(), input)
	if err != nil {
		calc.WriteError(w, err)
		return
	}
	repo.Record(r, h.Runs, "structure", input, res)
	calc.WriteJSON(w, http.StatusOK, res)
}
