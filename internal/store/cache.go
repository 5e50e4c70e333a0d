// Package store provides a per-collection snapshot cache for list reads.
// Writes invalidate their collection so the next read hits the database; a
// failed read falls back to the previous snapshot when one exists. The
// fallback covers display reads only, writes always go straight through.
package store

import "sync"

// Collection caches the last successfully fetched row set of one entity table.
// The zero value is ready to use; handlers own one per collection instead of a
// process-wide registry.
type Collection[T any] struct {
	mu    sync.RWMutex
	rows  []T
	valid bool
}

// Load runs fetch and snapshots its result. If fetch fails and a previous
// snapshot exists, the snapshot is returned with a nil error (stale reads are
// preferred over an empty view); otherwise the error propagates.
func (c *Collection[T]) Load(fetch func() ([]T, error)) ([]T, error) {
	rows, err := fetch()
	if err != nil {
		c.mu.RLock()
		defer c.mu.RUnlock()
		if c.valid {
			return c.rows, nil
		}
		return nil, err
	}
	c.mu.Lock()
	c.rows = rows
	c.valid = true
	c.mu.Unlock()
	return rows, nil
}

// Invalidate drops the snapshot; called after any create/update/delete.
func (c *Collection[T]) Invalidate() {
	c.mu.Lock()
	c.rows = nil
	c.valid = false
	c.mu.Unlock()
}

// Cached reports whether a snapshot is currently held (used by tests).
func (c *Collection[T]) Cached() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.valid
}
