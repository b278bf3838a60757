package dictionary

import "sync"

// IndexCache holds built tries keyed by dictionary version so that a
// version that was already indexed is never rebuilt.
type IndexCache struct {
	mu      sync.RWMutex
	indexes map[int]*Trie
}

// NewIndexCache creates an empty cache
func NewIndexCache() *IndexCache {
	return &IndexCache{indexes: make(map[int]*Trie)}
}

// Get returns the trie built for version, if any
func (c *IndexCache) Get(version int) (*Trie, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	t, ok := c.indexes[version]
	return t, ok
}

// Put stores the trie built for version
func (c *IndexCache) Put(version int, t *Trie) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.indexes[version] = t
}

// Invalidate drops every cached index
func (c *IndexCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.indexes = make(map[int]*Trie)
}
