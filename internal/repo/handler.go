package repo

import (
	"log"
	"net/http"
	"strconv"

	"Timberline/internal/calc"
)

type RunsHandler struct {
	Repo Repository
}

func (h *RunsHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	runs, err := h.Repo.ListRuns(r.Context(), limit)
	if err != nil {
		log.Printf("ListRuns Error: %v", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	calc.WriteJSON(w, http.StatusOK, runs)
}

// Record stores a run when a repository is configured. Failures are
// logged and never fail the calling request.
func Record(r *http.Request, repo Repository, kind string, request, result any) {
	if repo == nil {
		return
	}
	if _, err := repo.SaveRun(r.Context(), kind, request, result); err != nil {
		log.Printf("SaveRun Error: %v", err)
	}
}
