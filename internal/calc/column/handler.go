package column

import (
	"net/http"

	"Timberline/internal/calc"
	"Timberline/internal/calc/sizing"
)

type Handler struct {
	Engine *sizing.Store
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if !calc.DecodeJSON(w, r, &input) {
		return
	}
	res, err := Size(h.Engine.Load(), input)
	if err != nil {
		calc.WriteError(w, err)
		return
	}
	calc.WriteJSON(w, http.StatusOK, res)
}
