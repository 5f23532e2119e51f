package preview

import (
	"image"
	"log"
	"sort"
	"sync"

	"github.com/san-kum/saverium/internal/registry"
)

// Cache memoizes thumbnails by display name. Entries are never
// invalidated.
type Cache struct {
	r        *Renderer
	mu       sync.Mutex
	images   map[string]*image.RGBA
	failures map[string]error
}

func NewCache(r *Renderer) *Cache {
	if r == nil {
		r = NewRenderer()
	}
	return &Cache{r: r, images: make(map[string]*image.RGBA), failures: make(map[string]error)}
}

// Get returns the thumbnail for e, rendering it on first use. A failed
// render is logged and replaced by a placeholder.
func (c *Cache) Get(e registry.Entry) *image.RGBA {
	c.mu.Lock()
	defer c.mu.Unlock()
	if img, ok := c.images[e.Name]; ok {
		return img
	}
	img, err := c.r.Generate(e)
	if err != nil {
		log.Printf("preview: %v, using placeholder", err)
		c.failures[e.Name] = err
		img = Placeholder(e.Name, c.r.Width, c.r.Height)
	}
	c.images[e.Name] = img
	return img
}

// Warm renders every entry up front. progress, if set, is called after
// each one.
func (c *Cache) Warm(entries []registry.Entry, progress func(done, total int)) {
	for i, e := range entries {
		c.Get(e)
		if progress != nil {
			progress(i+1, len(entries))
		}
	}
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.images)
}

// Failures lists the names that fell back to a placeholder, sorted.
func (c *Cache) Failures() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, 0, len(c.failures))
	for name := range c.failures {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func (c *Cache) Size() (int, int) { return c.r.Width, c.r.Height }
