// Package web exposes the document catalog over HTTP: the browsable page,
// the cards fragment, and a JSON API.
package web

import (
	"bytes"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/ziadkadry99/doccatalog/internal/catalog"
	"github.com/ziadkadry99/doccatalog/internal/render"
)

// Handler serves catalog pages and API responses.
type Handler struct {
	renderer        *render.Renderer
	catalog         *catalog.Catalog
	defaultCategory string
	cache           *fragmentCache
	log             zerolog.Logger
}

// Options configures a Handler.
type Options struct {
	DefaultCategory string
	CacheTTL        time.Duration
	Logger          zerolog.Logger
}

// New creates a Handler around a renderer.
func New(r *render.Renderer, opts Options) *Handler {
	def := opts.DefaultCategory
	if def == "" {
		def = catalog.DefaultCategory
	}
	return &Handler{
		renderer:        r,
		catalog:         r.Catalog(),
		defaultCategory: def,
		cache:           newFragmentCache(opts.CacheTTL),
		log:             opts.Logger,
	}
}

// RegisterRoutes mounts the catalog endpoints on the given router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.handlePage)
	r.Get("/fragments/cards/{category}", h.handleFragment)
	r.Route("/api/categories", func(r chi.Router) {
		r.Get("/", h.handleCategories)
		r.Get("/{category}/documents", h.handleDocuments)
	})
}

// selected returns the category requested by the page query, or the default.
func (h *Handler) selected(q string) string {
	if q == "" {
		return h.defaultCategory
	}
	return q
}

// pageBuffer renders into memory so a template failure never leaves a
// half-written response.
func (h *Handler) pageBuffer(category string) (*bytes.Buffer, error) {
	var buf bytes.Buffer
	if err := h.renderer.Page(&buf, category); err != nil {
		return nil, err
	}
	return &buf, nil
}
