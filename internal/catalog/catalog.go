// Package catalog holds the immutable table of downloadable documents,
// grouped by category, and resolves the paths their links point to.
package catalog

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Catalog maps category ids to their documents and folders.
// A Catalog is read-only after construction and safe for concurrent use.
type Catalog struct {
	base    string
	order   []string
	labels  map[string]string
	folders map[string]string
	docs    map[string][]Document
}

// New builds a catalog from the given categories. Categories keep their
// declaration order. An empty base falls back to DefaultBase.
func New(base string, categories []Category) (*Catalog, error) {
	if base == "" {
		base = DefaultBase
	}
	c := &Catalog{
		base:    strings.TrimSuffix(base, "/"),
		labels:  make(map[string]string, len(categories)),
		folders: make(map[string]string, len(categories)),
		docs:    make(map[string][]Document, len(categories)),
	}

	for _, cat := range categories {
		if cat.ID == "" {
			return nil, &ValidationError{Message: "category id is required"}
		}
		if _, dup := c.labels[cat.ID]; dup {
			return nil, &ValidationError{Category: cat.ID, Message: "duplicate category id"}
		}
		for i, d := range cat.Documents {
			if d.Filename == "" {
				return nil, &ValidationError{Category: cat.ID, Message: fmt.Sprintf("document %d has no filename", i)}
			}
		}

		label := cat.Label
		if label == "" {
			label = cat.ID
		}
		c.order = append(c.order, cat.ID)
		c.labels[cat.ID] = label
		// A category without a folder stays listed but renders no links.
		if cat.Folder != "" {
			c.folders[cat.ID] = cat.Folder
		}
		c.docs[cat.ID] = append([]Document(nil), cat.Documents...)
	}

	return c, nil
}

// Load reads a YAML catalog definition from path.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing catalog %s: %w", path, err)
	}
	if len(f.Categories) == 0 {
		return nil, &ValidationError{Message: "no categories defined"}
	}
	return New(f.Base, f.Categories)
}

// Base returns the directory prefix used for every link.
func (c *Catalog) Base() string { return c.base }

// Categories returns every category in declaration order.
func (c *Catalog) Categories() []Category {
	out := make([]Category, 0, len(c.order))
	for _, id := range c.order {
		cat, _ := c.Lookup(id)
		out = append(out, cat)
	}
	return out
}

// Has reports whether id names a category.
func (c *Catalog) Has(id string) bool {
	_, ok := c.labels[id]
	return ok
}

// Lookup returns a copy of the category with the given id.
func (c *Catalog) Lookup(id string) (Category, bool) {
	label, ok := c.labels[id]
	if !ok {
		return Category{}, false
	}
	return Category{
		ID:        id,
		Label:     label,
		Folder:    c.folders[id],
		Documents: c.Documents(id),
	}, true
}

// Get is Lookup with an error for unknown ids.
func (c *Catalog) Get(id string) (Category, error) {
	cat, ok := c.Lookup(id)
	if !ok {
		return Category{}, fmt.Errorf("%w: %q", ErrUnknownCategory, id)
	}
	return cat, nil
}

// Label returns the display label for id, or id itself when unknown.
func (c *Catalog) Label(id string) string {
	if label, ok := c.labels[id]; ok {
		return label
	}
	return id
}

// Documents returns the documents of a category in order, or nil.
func (c *Catalog) Documents(id string) []Document {
	docs, ok := c.docs[id]
	if !ok {
		return nil
	}
	return append([]Document(nil), docs...)
}

// Folder returns the folder display name of a category.
func (c *Catalog) Folder(id string) (string, bool) {
	f, ok := c.folders[id]
	return f, ok
}

// Path returns the download link of filename inside the folder of
// category id. The result is a plain concatenation with no encoding
// applied. It is empty when the category is unknown or has no folder.
func (c *Catalog) Path(id, filename string) string {
	folder, ok := c.folders[id]
	if !ok {
		return ""
	}
	return c.join(folder, filename)
}

func (c *Catalog) join(folder, filename string) string {
	return c.base + "/" + folder + "/" + filename
}

// Links resolves the download link of every document in a category.
// It returns nil when the category is unknown, empty or has no folder.
func (c *Catalog) Links(id string) []Link {
	docs := c.docs[id]
	folder, ok := c.folders[id]
	if len(docs) == 0 || !ok {
		return nil
	}
	links := make([]Link, len(docs))
	for i, d := range docs {
		links[i] = Link{Document: d, Path: c.join(folder, d.Filename)}
	}
	return links
}
