package utils

import (
	"os"
	"sort"
	"sync"
	"time"
)

// CacheItem represents a cached value with the file metadata it was built from
type CacheItem[T any] struct {
	Value   T
	ModTime time.Time
	Size    int64
}

// FileCache caches values derived from files. An entry stays valid only while
// the file's modification time and size are unchanged.
type FileCache[V any] struct {
	items map[string]*CacheItem[V]
	mutex sync.RWMutex
	hits  int
	miss  int
}

// NewFileCache creates an empty file cache
func NewFileCache[V any]() *FileCache[V] {
	return &FileCache[V]{
		items: make(map[string]*CacheItem[V]),
	}
}

// Get returns the value cached for path when the file has not changed since
// it was stored. Stale entries are dropped.
func (c *FileCache[V]) Get(path string) (V, bool) {
	c.mutex.RLock()
	item, exists := c.items[path]
	c.mutex.RUnlock()

	var zero V
	if !exists {
		c.count(false)
		return zero, false
	}

	if stat, err := os.Stat(path); err == nil {
		if stat.ModTime().Equal(item.ModTime) && stat.Size() == item.Size {
			c.count(true)
			return item.Value, true
		}
	}

	c.Delete(path)
	c.count(false)
	return zero, false
}

// Set stores value for path together with the file's current metadata
func (c *FileCache[V]) Set(path string, value V) error {
	stat, err := os.Stat(path)
	if err != nil {
		return err
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.items[path] = &CacheItem[V]{
		Value:   value,
		ModTime: stat.ModTime(),
		Size:    stat.Size(),
	}
	return nil
}

// Delete removes the entry for path
func (c *FileCache[V]) Delete(path string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	delete(c.items, path)
}

// Clear removes all entries and resets the statistics
func (c *FileCache[V]) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.items = make(map[string]*CacheItem[V])
	c.hits, c.miss = 0, 0
}

// Keys returns the cached paths in sorted order
func (c *FileCache[V]) Keys() []string {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	keys := make([]string, 0, len(c.items))
	for key := range c.items {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// GetStats returns cache statistics
func (c *FileCache[V]) GetStats() CacheStats {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return CacheStats{
		Size:   len(c.items),
		Hits:   c.hits,
		Misses: c.miss,
	}
}

func (c *FileCache[V]) count(hit bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if hit {
		c.hits++
	} else {
		c.miss++
	}
}

// CacheStats provides cache statistics
type CacheStats struct {
	Size   int
	Hits   int
	Misses int
}
