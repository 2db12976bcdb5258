package geometry

import (
	"net/http"

	"Timberline/internal/calc"
)

type Handler struct{}

func (h *Handler) Resolve(w http.ResponseWriter, r *http.Request) {
	var input Input
	if !calc.DecodeJSON(w, r, &input) {
		return
	}
	res, err := Resolve(input)
	if err != nil {
		calc.WriteError(w, err)
		return
	}
	calc.WriteJSON(w, http.StatusOK, res)
}
