// Package sizing is the member sizing engine shared by joists, beams and
// columns. A Context carries the read-only catalog and grade table; every
// sizing call is a pure function of its request and that context.
package sizing

import (
	"fmt"
	"sync/atomic"

	"Timberline/internal/catalog"
)

// Context is an immutable snapshot of the section catalog and grade table.
type Context struct {
	catalog   *catalog.Catalog
	materials *catalog.Materials
	fallback  catalog.Fallback
}

// Initialize builds a context from the catalog and material feeds. Calling it
// twice with the same feeds yields equivalent contexts. Member types missing
// from the catalog are sized against the standard fallback sizes.
func Initialize(rows []catalog.Entry, grades map[string]catalog.Properties) *Context {
	return &Context{
		catalog:   catalog.New(rows),
		materials: catalog.NewMaterials(grades),
		fallback:  catalog.DefaultFallback(),
	}
}

// Default initialises from the bundled catalog and grade table.
func Default() *Context {
	return Initialize(catalog.DefaultEntries(), catalog.DefaultGrades())
}

// FromFiles initialises from optional catalog and grade files. An empty path
// keeps the bundled feed. Parse warnings are returned alongside the context.
func FromFiles(catalogPath, materialsPath string) (*Context, []string, error) {
	rows := catalog.DefaultEntries()
	grades := catalog.DefaultGrades()
	var warnings []string
	if catalogPath != "" {
		feed, err := catalog.LoadCatalogFile(catalogPath)
		if err != nil {
			return nil, nil, fmt.Errorf("load catalog %s: %w", catalogPath, err)
		}
		rows = feed.Entries
		warnings = append(warnings, feed.Warnings...)
	}
	if materialsPath != "" {
		feed, err := catalog.LoadMaterialsFile(materialsPath)
		if err != nil {
			return nil, nil, fmt.Errorf("load materials %s: %w", materialsPath, err)
		}
		grades = feed.Grades
		warnings = append(warnings, feed.Warnings...)
	}
	return Initialize(rows, grades), warnings, nil
}

// Catalog returns the section list the context sizes against.
func (c *Context) Catalog() *catalog.Catalog { return c.catalog }

// Materials returns the grade table.
func (c *Context) Materials() *catalog.Materials { return c.materials }

// WithCatalog returns a copy of c sized against a new section list.
func (c *Context) WithCatalog(rows []catalog.Entry) *Context {
	return &Context{
		catalog:   catalog.New(rows),
		materials: c.materials,
		fallback:  c.fallback,
	}
}

// sections returns the candidate sections for t and whether they come
// from the fallback lists.
func (c *Context) sections(t catalog.MemberType) ([]catalog.Entry, bool) {
	if c.catalog.Has(t) {
		return c.catalog.Entries(t), false
	}
	return c.fallback.Entries(t), true
}

// Store serves the current Context to concurrent readers and lets the
// catalog be swapped without locking the sizing path.
type Store struct {
	current atomic.Pointer[Context]
}

// NewStore returns a Store serving ctx.
func NewStore(ctx *Context) *Store {
	s := &Store{}
	s.current.Store(ctx)
	return s
}

// Load returns the current snapshot. It never blocks.
func (s *Store) Load() *Context {
	return s.current.Load()
}

// Replace installs ctx and returns the previous snapshot.
func (s *Store) Replace(ctx *Context) *Context {
	return s.current.Swap(ctx)
}
