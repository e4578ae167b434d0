package rule

import (
	"sync"

	"github.com/numkit/quadrature/utils"
)

// Cache memoizes Legendre Gauss-Kronrod pairs keyed by order. Pairs are
// deterministic for a fixed weight and order, so entries are computed
// at most once per order and shared; reads are safe from any number of
// goroutines.
type Cache struct {
	mu    sync.RWMutex
	pairs map[int]*Pair
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{pairs: map[int]*Pair{}}
}

// Pair returns the Gauss-Kronrod pair of order n, computing and storing
// it on first request.
func (c *Cache) Pair(n int) (*Pair, error) {

	c.mu.RLock()
	p, ok := c.pairs[n]
	c.mu.RUnlock()

	if ok {
		return p, nil
	}

	p, err := New(n)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	// Another goroutine may have raced the computation; keep the first
	// stored pair so callers always observe one identity per order.
	if prev, ok := c.pairs[n]; ok {
		p = prev
	} else {
		c.pairs[n] = p
	}
	c.mu.Unlock()

	return p, nil
}

// Orders returns the sorted list of orders currently cached.
func (c *Cache) Orders() []int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return utils.GetSortedKeys(c.pairs)
}

var defaultCache = NewCache()

// GaussKronrod returns the Legendre Gauss-Kronrod pair of order n from
// the package-level cache.
func GaussKronrod(n int) (*Pair, error) {
	return defaultCache.Pair(n)
}
