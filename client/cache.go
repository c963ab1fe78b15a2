package client

import "sync"

// QueryKey identifies one cached query: an entity name plus its encoded
// parameters or id.
type QueryKey struct {
	Entity string
	Params string
}

// QueryCache holds query results until a mutation invalidates them.
type QueryCache struct {
	mu      sync.RWMutex
	entries map[QueryKey]any
}

func NewQueryCache() *QueryCache {
	return &QueryCache{entries: make(map[QueryKey]any)}
}

func (c *QueryCache) Get(key QueryKey) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[key]
	return v, ok
}

func (c *QueryCache) Set(key QueryKey, v any) {
	c.mu.Lock()
	c.entries[key] = v
	c.mu.Unlock()
}

func (c *QueryCache) Invalidate(key QueryKey) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// InvalidateEntity drops every key of entity, whatever its parameters.
func (c *QueryCache) InvalidateEntity(entity string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.entries {
		if k.Entity == entity {
			delete(c.entries, k)
		}
	}
}

func (c *QueryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// cached returns the entry under key, running fetch on a miss. Failures are
// not cached.
func cached[V any](c *QueryCache, key QueryKey, fetch func() (V, error)) (V, error) {
	if v, ok := c.Get(key); ok {
		if typed, ok := v.(V); ok {
			return typed, nil
		}
	}
	v, err := fetch()
	if err != nil {
		return v, err
	}
	c.Set(key, v)
	return v, nil
}
