package trends

import (
	"container/list"
	"sync"
)

type cacheEntry struct {
	key   string
	value []KeywordTrendRecord
}

// datasetCache is a small LRU over loaded per-category datasets. A racing
// first access may load the same dataset twice; the second store simply
// refreshes the entry, so duplicate loads are harmless.
type datasetCache struct {
	mu       sync.Mutex
	capacity int
	items    map[string]*list.Element
	ll       *list.List
}

func newDatasetCache(size int) *datasetCache {
	if size <= 0 {
		size = 32
	}
	return &datasetCache{
		capacity: size,
		items:    make(map[string]*list.Element, size),
		ll:       list.New(),
	}
}

func (c *datasetCache) Get(key string) ([]KeywordTrendRecord, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if elem, ok := c.items[key]; ok {
		c.ll.MoveToFront(elem)
		if entry, ok := elem.Value.(cacheEntry); ok {
			return entry.value, true
		}
	}
	return nil, false
}

func (c *datasetCache) Set(key string, value []KeywordTrendRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if elem, ok := c.items[key]; ok {
		elem.Value = cacheEntry{key: key, value: value}
		c.ll.MoveToFront(elem)
		return
	}
	elem := c.ll.PushFront(cacheEntry{key: key, value: value})
	c.items[key] = elem
	if c.ll.Len() > c.capacity {
		tail := c.ll.Back()
		if tail != nil {
			c.ll.Remove(tail)
			if entry, ok := tail.Value.(cacheEntry); ok {
				delete(c.items, entry.key)
			}
		}
	}
}
