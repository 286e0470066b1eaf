package web

import (
	"html/template"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// fragmentCache keeps rendered card containers keyed by category id.
type fragmentCache struct {
	store *gocache.Cache
}

// newFragmentCache returns nil when ttl is zero, which disables caching.
func newFragmentCache(ttl time.Duration) *fragmentCache {
	if ttl <= 0 {
		return nil
	}
	return &fragmentCache{store: gocache.New(ttl, 2*ttl)}
}

func (c *fragmentCache) get(category string) (template.HTML, bool) {
	if c == nil {
		return "", false
	}
	v, ok := c.store.Get(category)
	if !ok {
		return "", false
	}
	html, ok := v.(template.HTML)
	return html, ok
}

func (c *fragmentCache) set(category string, html template.HTML) {
	if c == nil {
		return
	}
	c.store.SetDefault(category, html)
}

func (c *fragmentCache) len() int {
	if c == nil {
		return 0
	}
	return c.store.ItemCount()
}
