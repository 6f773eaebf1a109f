package engine

import (
	"fmt"
	"log"
	"sync"
)

// Key identifies one engine configuration: the normalized script identifier
// and whether accelerated inference was requested.
type Key struct {
	Script      string
	Accelerated bool
}

// Factory constructs a new engine for a script/acceleration pair.
type Factory func(script string, accelerated bool) (Engine, error)

// Cache holds one engine per (script, acceleration) pair for the lifetime of
// the process. Engine construction is expensive (model loading), so handles
// are built once and never evicted.
type Cache struct {
	mu      sync.Mutex
	factory Factory
	engines map[Key]Engine
}

// NewCache creates an empty engine cache that constructs engines with factory.
func NewCache(factory Factory) *Cache {
	return &Cache{
		factory: factory,
		engines: make(map[Key]Engine),
	}
}

// GetOrCreate returns the cached engine for the given pair, constructing and
// storing one on first use. Construction failures are not cached; a later call
// for the same pair tries again.
func (c *Cache) GetOrCreate(script string, accelerated bool) (Engine, error) {
	key := Key{Script: script, Accelerated: accelerated}

	c.mu.Lock()
	defer c.mu.Unlock()

	if eng, ok := c.engines[key]; ok {
		log.Printf("reusing cached engine for %s (accelerated=%t)", script, accelerated)
		return eng, nil
	}

	log.Printf("initializing engine for %s (accelerated=%t)", script, accelerated)
	eng, err := c.factory(script, accelerated)
	if err != nil {
		return nil, fmt.Errorf("initialize engine for %s: %w", script, err)
	}
	c.engines[key] = eng
	return eng, nil
}

// Len reports the number of cached engines.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.engines)
}
