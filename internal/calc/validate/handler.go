package validate

import (
	"net/http"

	"Timberline/internal/calc"
)

type Handler struct{}

func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	var input Input
	if !calc.DecodeJSON(w, r, &input) {
		return
	}
	calc.WriteJSON(w, http.StatusOK, Validate(input.Joist, input.Beam, input.Column))
}
