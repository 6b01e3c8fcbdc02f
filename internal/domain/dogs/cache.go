package dogs

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

// queryCache memoiza resultados por clave de consulta. El dataset es inmutable,
// así que nunca hay que invalidar; solo se acota el tamaño (FIFO).
type queryCache[V any] struct {
	mu    sync.RWMutex
	max   int
	items map[string]V
	order []string
	group singleflight.Group
}

func newQueryCache[V any](max int) *queryCache[V] {
	if max <= 0 {
		return nil
	}
	return &queryCache[V]{
		max:   max,
		items: make(map[string]V, max),
	}
}

// get devuelve el valor cacheado o lo calcula una sola vez aunque haya
// llamadas concurrentes con la misma clave. hit indica si ya estaba.
func (c *queryCache[V]) get(key string, compute func() V) (v V, hit bool) {
	if c == nil {
		return compute(), false
	}

	c.mu.RLock()
	v, ok := c.items[key]
	c.mu.RUnlock()
	if ok {
		return v, true
	}

	res, _, _ := c.group.Do(key, func() (any, error) {
		// otro Do pudo haber terminado entre el RUnlock y acá
		c.mu.RLock()
		cached, ok := c.items[key]
		c.mu.RUnlock()
		if ok {
			return cached, nil
		}

		out := compute()
		c.put(key, out)
		return out, nil
	})
	return res.(V), false
}

func (c *queryCache[V]) put(key string, v V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.items[key]; ok {
		return
	}
	if len(c.order) >= c.max {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.items, oldest)
	}
	c.items[key] = v
	c.order = append(c.order, key)
}

func (c *queryCache[V]) len() int {
	if c == nil {
		return 0
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
