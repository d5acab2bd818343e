package partial

// Cache holds partials loaded during a single run. Entries are written once
// and never invalidated; a changed partial file needs a fresh Cache.
// It is not safe for concurrent use.
type Cache struct {
	entries map[string]string
}

func NewCache() *Cache {
	return &Cache{entries: make(map[string]string)}
}

// Get returns the cached text for name.
func (c *Cache) Get(name string) (string, bool) {
	s, ok := c.entries[name]
	return s, ok
}

// Set stores text for name unless an entry already exists.
func (c *Cache) Set(name, text string) {
	if _, ok := c.entries[name]; ok {
		return
	}
	c.entries[name] = text
}

func (c *Cache) Len() int {
	return len(c.entries)
}
