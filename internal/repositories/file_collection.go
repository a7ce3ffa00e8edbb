package repositories

import (
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"
)

// Snapshotter loads and saves whole named collections.
type Snapshotter interface {
	Load(name string, out interface{}) error
	Save(name string, records interface{}) error
}

// fileCollection is an ordered, ID-indexed slice of records mirrored to a
// snapshot file. Records handed out are copies; writes flush the whole slice.
type fileCollection[K comparable, T any] struct {
	mu      sync.RWMutex
	store   Snapshotter
	name    string
	keyOf   func(*T) K
	clone   func(T) T
	records []T
	index   map[K]int
}

func loadFileCollection[K comparable, T any](st Snapshotter, name string, keyOf func(*T) K, clone func(T) T, prepare func(*T)) (*fileCollection[K, T], error) {
	var records []T
	if err := st.Load(name, &records); err != nil {
		return nil, err
	}

	c := &fileCollection[K, T]{
		store:   st,
		name:    name,
		keyOf:   keyOf,
		clone:   clone,
		records: make([]T, 0, len(records)),
		index:   make(map[K]int, len(records)),
	}
	for i := range records {
		if prepare != nil {
			prepare(&records[i])
		}
		// First occurrence wins.
		key := keyOf(&records[i])
		if _, ok := c.index[key]; ok {
			log.WithFields(log.Fields{"collection": name, "id": key}).Warn("Dropping record with duplicate ID")
			continue
		}
		c.index[key] = len(c.records)
		c.records = append(c.records, records[i])
	}
	return c, nil
}

func (c *fileCollection[K, T]) all() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.records))
	for i := range c.records {
		out[i] = c.clone(c.records[i])
	}
	return out
}

func (c *fileCollection[K, T]) get(key K) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i, ok := c.index[key]
	if !ok {
		var zero T
		return zero, false
	}
	return c.clone(c.records[i]), true
}

// find returns the first record, in insertion order, matching pred.
func (c *fileCollection[K, T]) find(pred func(*T) bool) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for i := range c.records {
		if pred(&c.records[i]) {
			return c.clone(c.records[i]), true
		}
	}
	var zero T
	return zero, false
}

func (c *fileCollection[K, T]) each(fn func(*T)) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for i := range c.records {
		fn(&c.records[i])
	}
}

func (c *fileCollection[K, T]) insert(rec T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := c.keyOf(&rec)
	if _, ok := c.index[key]; ok {
		return fmt.Errorf("%s %v: %w", c.name, key, ErrDuplicateKey)
	}
	c.index[key] = len(c.records)
	c.records = append(c.records, c.clone(rec))
	return c.flushLocked()
}

func (c *fileCollection[K, T]) replace(rec T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := c.keyOf(&rec)
	i, ok := c.index[key]
	if !ok {
		return fmt.Errorf("%s %v: %w", c.name, key, ErrNotFound)
	}
	c.records[i] = c.clone(rec)
	return c.flushLocked()
}

// flushLocked writes the snapshot. On failure the in-memory state is kept and
// diverges from disk until the next successful flush.
func (c *fileCollection[K, T]) flushLocked() error {
	if err := c.store.Save(c.name, c.records); err != nil {
		return fmt.Errorf("failed to persist %s: %w", c.name, err)
	}
	return nil
}

func identity[T any](v T) T { return v }
