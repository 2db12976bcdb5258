package sizing

import (
	"log"
	"net/http"

	"Timberline/internal/calc"
	"Timberline/internal/catalog"
)

const maxCatalogUpload = 10 << 20 // 10MB

// CatalogHandler exposes the live catalog and lets it be replaced.
type CatalogHandler struct {
	Store *Store
}

type catalogSnapshot struct {
	Entries  []catalog.Entry             `json:"entries"`
	Fallback map[catalog.MemberType]bool `json:"fallback"`
	Grades   []string                    `json:"grades"`
	Warnings []string                    `json:"warnings,omitempty"`
}

func snapshot(ctx *Context, warnings []string) catalogSnapshot {
	out := catalogSnapshot{
		Entries:  ctx.Catalog().All(),
		Fallback: make(map[catalog.MemberType]bool),
		Grades:   ctx.Materials().Grades(),
		Warnings: warnings,
	}
	for _, t := range catalog.MemberTypes() {
		out.Fallback[t] = !ctx.Catalog().Has(t)
	}
	return out
}

func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	calc.WriteJSON(w, http.StatusOK, snapshot(h.Store.Load(), nil))
}

// Put replaces the catalog from an uploaded CSV or XLSX file ("file" field).
func (h *CatalogHandler) Put(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxCatalogUpload)
	if err := r.ParseMultipartForm(maxCatalogUpload); err != nil {
		http.Error(w, "File too big", http.StatusBadRequest)
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	rows, err := catalog.ReadRows(header.Filename, file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	feed := catalog.ParseCatalogRows(rows)
	if len(feed.Entries) == 0 {
		calc.WriteJSON(w, http.StatusBadRequest, feed)
		return
	}

	next := h.Store.Load().WithCatalog(feed.Entries)
	h.Store.Replace(next)
	log.Printf("catalog replaced from %s: %d sections, %d warnings", header.Filename, next.Catalog().Len(), len(feed.Warnings))
	calc.WriteJSON(w, http.StatusOK, snapshot(next, feed.Warnings))
}
