package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/ziadkadry99/doccatalog/internal/catalog"
	"github.com/ziadkadry99/doccatalog/internal/render"
)

const cardMarker = `<div class="col-12 col-md-6">`

func setupRouter(t *testing.T, ttl time.Duration) (chi.Router, *Handler) {
	t.Helper()
	rd, err := render.New(catalog.Default(), "")
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}
	h := New(rd, Options{CacheTTL: ttl, Logger: zerolog.Nop()})
	r := chi.NewRouter()
	h.RegisterRoutes(r)
	return r, h
}

func get(t *testing.T, r http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestPageDefaultsToArticulos(t *testing.T) {
	r, _ := setupRouter(t, 0)
	w := get(t, r, "/")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("content type = %q", ct)
	}
	body := w.Body.String()
	if got := strings.Count(body, cardMarker); got != 3 {
		t.Errorf("cards = %d, want 3", got)
	}
	if !strings.Contains(body, `<option value="articulos" selected>`) {
		t.Error("articulos not selected on initial load")
	}
	if !strings.Contains(body, `href="./assets/PDF/Articulos/LIBRO ROJO DE LA FLORA NATIVA_ATACAMA.pdf"`) {
		t.Error("articulos link missing")
	}
}

func TestPageSelectsCategory(t *testing.T) {
	r, _ := setupRouter(t, 0)
	body := get(t, r, "/?categoria=eia").Body.String()

	if got := strings.Count(body, cardMarker); got != 1 {
		t.Errorf("cards = %d, want 1", got)
	}
	if !strings.Contains(body, `href="./assets/PDF/EIA/Resumen_Ejecutivo_EIA_Volta.pdf"`) {
		t.Error("eia link missing")
	}
	if !strings.Contains(body, `<h2 id="sectionTitle" class="h4 mb-3">Estudios de Impacto Ambiental</h2>`) {
		t.Error("heading not set to option label")
	}
}

func TestPageUnknownCategory(t *testing.T) {
	r, _ := setupRouter(t, 0)
	w := get(t, r, "/?categoria=mapas")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if strings.Contains(body, cardMarker) {
		t.Error("unexpected cards for unknown category")
	}
	if strings.Count(body, "No hay documentos en esta categoría.") != 1 {
		t.Error("expected exactly one placeholder")
	}
}

func TestFragment(t *testing.T) {
	r, _ := setupRouter(t, 0)
	w := get(t, r, "/fragments/cards/informes")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if strings.Contains(body, "<html") {
		t.Error("fragment contains full page")
	}
	if got := strings.Count(body, cardMarker); got != 2 {
		t.Errorf("cards = %d, want 2", got)
	}
}

func TestFragmentIdenticalAcrossRequestsAndCache(t *testing.T) {
	uncached, _ := setupRouter(t, 0)
	cached, h := setupRouter(t, time.Minute)

	first := get(t, uncached, "/fragments/cards/articulos").Body.String()
	second := get(t, cached, "/fragments/cards/articulos").Body.String()
	third := get(t, cached, "/fragments/cards/articulos").Body.String()

	if first != second || second != third {
		t.Error("fragments differ between renders")
	}
	if h.cache.len() != 1 {
		t.Errorf("cache items = %d, want 1", h.cache.len())
	}
}

func TestFragmentUnknownNotCached(t *testing.T) {
	r, h := setupRouter(t, time.Minute)
	body := get(t, r, "/fragments/cards/mapas").Body.String()
	if !strings.Contains(body, "No hay documentos en esta categoría.") {
		t.Errorf("expected placeholder, got %q", body)
	}
	if h.cache.len() != 0 {
		t.Errorf("cache items = %d, want 0", h.cache.len())
	}
}

func TestCategoriesEndpoint(t *testing.T) {
	r, _ := setupRouter(t, 0)
	w := get(t, r, "/api/categories")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var cats []categoryResponse
	if err := json.NewDecoder(w.Body).Decode(&cats); err != nil {
		t.Fatalf("decoding categories: %v", err)
	}
	if len(cats) != 4 {
		t.Fatalf("categories = %d, want 4", len(cats))
	}
	if cats[0].ID != "articulos" || cats[0].Count != 3 || cats[0].Folder != "Articulos" {
		t.Errorf("first category = %+v", cats[0])
	}
	if cats[1].ID != "eia" || cats[1].Count != 1 {
		t.Errorf("second category = %+v", cats[1])
	}
}

func TestDocumentsEndpoint(t *testing.T) {
	r, _ := setupRouter(t, 0)
	w := get(t, r, "/api/categories/eia/documents")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp documentsResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding documents: %v", err)
	}
	if resp.Category != "eia" || len(resp.Documents) != 1 {
		t.Fatalf("unexpected response %+v", resp)
	}
	doc := resp.Documents[0]
	if doc.Path != "./assets/PDF/EIA/Resumen_Ejecutivo_EIA_Volta.pdf" {
		t.Errorf("path = %q", doc.Path)
	}
	if doc.Filename != "Resumen_Ejecutivo_EIA_Volta.pdf" || doc.Title != "Resumen ejecutivo" {
		t.Errorf("document = %+v", doc)
	}
}

func TestDocumentsEndpointUnknown(t *testing.T) {
	r, _ := setupRouter(t, 0)
	w := get(t, r, "/api/categories/mapas/documents")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decoding error: %v", err)
	}
	if !strings.Contains(body["error"], "unknown category") {
		t.Errorf("error = %q", body["error"])
	}
}
