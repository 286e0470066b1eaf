// Package render turns a catalog category into the HTML shown on the
// document page: one card per document, or a placeholder.
package render

import (
	"bytes"
	"fmt"
	"html"
	"html/template"
	"io"

	"github.com/ziadkadry99/doccatalog/internal/catalog"
)

// DefaultTitle is the page title used when none is configured.
const DefaultTitle = "Biblioteca de documentos"

// Card is one rendered document.
type Card struct {
	Title       string
	Description string
	Filename    string
	Path        string
}

// View is the result of rendering a category.
type View struct {
	Category string
	Heading  string
	Cards    []Card
	HTML     template.HTML
}

// Empty reports whether the view shows the placeholder.
func (v View) Empty() bool { return len(v.Cards) == 0 }

// Renderer renders catalog categories. It is safe for concurrent use.
type Renderer struct {
	catalog *catalog.Catalog
	tmpl    *template.Template
	title   string
}

// cardData is the template view of a card. Href is pre-built so the path
// reaches the page exactly as resolved, without URL normalization.
type cardData struct {
	Title       string
	Description string
	Filename    string
	Href        template.HTMLAttr
}

type optionData struct {
	ID       string
	Label    string
	Selected bool
	Disabled bool
}

type pageData struct {
	Title   string
	Heading string
	Options []optionData
	Cards   []cardData
}

// New parses the templates and binds them to a catalog.
func New(c *catalog.Catalog, title string) (*Renderer, error) {
	if title == "" {
		title = DefaultTitle
	}
	tmpl, err := template.New("render").Parse(cardsTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing cards template: %w", err)
	}
	if _, err := tmpl.Parse(pageTemplate); err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}
	return &Renderer{catalog: c, tmpl: tmpl, title: title}, nil
}

// Catalog returns the catalog being rendered.
func (r *Renderer) Catalog() *catalog.Catalog { return r.catalog }

// Render builds the heading and container content for a category.
// Unknown or empty categories produce the placeholder, not an error.
func (r *Renderer) Render(categoryID string) (View, error) {
	links := r.catalog.Links(categoryID)
	view := View{
		Category: categoryID,
		Heading:  r.catalog.Label(categoryID),
		Cards:    make([]Card, len(links)),
	}
	for i, l := range links {
		view.Cards[i] = Card{
			Title:       l.Title,
			Description: l.Description,
			Filename:    l.Filename,
			Path:        l.Path,
		}
	}

	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "cards", cardsData(view.Cards)); err != nil {
		return View{}, fmt.Errorf("rendering cards for %q: %w", categoryID, err)
	}
	view.HTML = template.HTML(buf.String())
	return view, nil
}

// Cards returns only the container content for a category.
func (r *Renderer) Cards(categoryID string) (template.HTML, error) {
	v, err := r.Render(categoryID)
	if err != nil {
		return "", err
	}
	return v.HTML, nil
}

// Page writes the full document page with categoryID selected.
func (r *Renderer) Page(w io.Writer, categoryID string) error {
	view, err := r.Render(categoryID)
	if err != nil {
		return err
	}

	cats := r.catalog.Categories()
	data := pageData{
		Title:   r.title,
		Heading: view.Heading,
		Options: make([]optionData, len(cats)),
		Cards:   cardsData(view.Cards),
	}
	for i, c := range cats {
		data.Options[i] = optionData{ID: c.ID, Label: c.Label, Selected: c.ID == categoryID}
	}
	// An unknown id still needs a selected option so the control
	// agrees with the heading.
	if !r.catalog.Has(categoryID) {
		unknown := optionData{ID: categoryID, Label: view.Heading, Selected: true, Disabled: true}
		data.Options = append([]optionData{unknown}, data.Options...)
	}

	if err := r.tmpl.ExecuteTemplate(w, "page", data); err != nil {
		return fmt.Errorf("rendering page for %q: %w", categoryID, err)
	}
	return nil
}

func cardsData(cards []Card) []cardData {
	out := make([]cardData, len(cards))
	for i, c := range cards {
		out[i] = cardData{
			Title:       c.Title,
			Description: c.Description,
			Filename:    c.Filename,
			Href:        template.HTMLAttr(`href="` + html.EscapeString(c.Path) + `"`),
		}
	}
	return out
}
