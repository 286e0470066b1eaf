package catalog

// DefaultBase is the page-relative directory that holds the category folders.
const DefaultBase = "./assets/PDF"

// Document is a single downloadable file listed under a category.
type Document struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Filename    string `yaml:"filename" json:"filename"`
}

// Category groups documents and names the folder they live in.
type Category struct {
	ID        string     `yaml:"id" json:"id"`
	Label     string     `yaml:"label" json:"label"`
	Folder    string     `yaml:"folder" json:"folder"`
	Documents []Document `yaml:"documents" json:"documents"`
}

// Link pairs a document with the path its download link points to.
type Link struct {
	Document
	Path string `json:"path"`
}

// file is the on-disk shape of a catalog definition.
type file struct {
	Base       string     `yaml:"base"`
	Categories []Category `yaml:"categories"`
}
