package web

import (
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/doccatalog/internal/catalog"
)

// categoryResponse is one entry of the category list.
type categoryResponse struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Folder string `json:"folder"`
	Count  int    `json:"count"`
}

// documentsResponse is the JSON response for a category's documents.
type documentsResponse struct {
	Category  string         `json:"category"`
	Label     string         `json:"label"`
	Documents []catalog.Link `json:"documents"`
}

func (h *Handler) handlePage(w http.ResponseWriter, r *http.Request) {
	category := h.selected(r.URL.Query().Get("categoria"))

	buf, err := h.pageBuffer(category)
	if err != nil {
		h.log.Error().Err(err).Str("category", category).Msg("rendering page")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}

func (h *Handler) handleFragment(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")

	html, err := h.fragment(category)
	if err != nil {
		h.log.Error().Err(err).Str("category", category).Msg("rendering cards")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(html))
}

// fragment returns the cards container for a category, from cache when possible.
func (h *Handler) fragment(category string) (template.HTML, error) {
	if html, ok := h.cache.get(category); ok {
		return html, nil
	}
	html, err := h.renderer.Cards(category)
	if err != nil {
		return "", err
	}
	// Only known ids are cached so arbitrary paths cannot grow the cache.
	if h.catalog.Has(category) {
		h.cache.set(category, html)
	}
	return html, nil
}

func (h *Handler) handleCategories(w http.ResponseWriter, r *http.Request) {
	cats := h.catalog.Categories()
	resp := make([]categoryResponse, len(cats))
	for i, c := range cats {
		resp[i] = categoryResponse{
			ID:     c.ID,
			Label:  c.Label,
			Folder: c.Folder,
			Count:  len(c.Documents),
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleDocuments(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "category")

	cat, err := h.catalog.Get(id)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}

	links := h.catalog.Links(cat.ID)
	if links == nil {
		links = []catalog.Link{}
	}
	writeJSON(w, http.StatusOK, documentsResponse{
		Category:  cat.ID,
		Label:     cat.Label,
		Documents: links,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
