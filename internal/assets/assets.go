// Package assets checks that the files a catalog links to exist on disk.
package assets

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/ziadkadry99/doccatalog/internal/catalog"
)

// Missing is a catalog document whose file was not found.
type Missing struct {
	Category string
	Filename string
	Path     string
}

// Report is the result of verifying a catalog against a directory.
type Report struct {
	Checked int
	Missing []Missing
	// Orphans are PDFs inside a category folder that no document lists,
	// relative to the static root.
	Orphans []string
}

// OK reports whether every linked file was found.
func (r Report) OK() bool { return len(r.Missing) == 0 }

// Verify resolves every catalog link against root, the directory the page
// is served from, and reports missing and unreferenced files.
func Verify(c *catalog.Catalog, root string) (Report, error) {
	return VerifyFS(c, os.DirFS(root))
}

// VerifyFS is Verify over an arbitrary file system.
func VerifyFS(c *catalog.Catalog, fsys fs.FS) (Report, error) {
	var rep Report
	referenced := make(map[string]bool)
	folders := make(map[string]bool)

	for _, cat := range c.Categories() {
		dir := c.Path(cat.ID, "")
		if dir == "" {
			continue
		}
		folders[relPath(dir)] = true

		for _, l := range c.Links(cat.ID) {
			rel := relPath(l.Path)
			referenced[rel] = true
			rep.Checked++

			info, err := fs.Stat(fsys, rel)
			if err != nil || info.IsDir() {
				rep.Missing = append(rep.Missing, Missing{Category: cat.ID, Filename: l.Filename, Path: l.Path})
			}
		}
	}

	for dir := range folders {
		dir = strings.TrimSuffix(dir, "/")
		if info, err := fs.Stat(fsys, dir); err != nil || !info.IsDir() {
			continue
		}
		sub, err := fs.Sub(fsys, dir)
		if err != nil {
			return Report{}, fmt.Errorf("opening %s: %w", dir, err)
		}
		matches, err := doublestar.Glob(sub, "**/*.{pdf,PDF}")
		if err != nil {
			return Report{}, fmt.Errorf("scanning %s: %w", dir, err)
		}
		for _, m := range matches {
			full := path.Join(dir, m)
			if !referenced[full] {
				rep.Orphans = append(rep.Orphans, full)
			}
		}
	}
	sort.Strings(rep.Orphans)

	return rep, nil
}

// relPath turns a page-relative link into an fs.FS path.
func relPath(p string) string {
	p = strings.TrimPrefix(p, "./")
	p = strings.TrimPrefix(p, "/")
	return p
}
