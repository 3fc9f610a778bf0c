// Package syncmap guards an rbtree.Tree with a read-write mutex so it
// can be shared between goroutines.
package syncmap

import (
	"sync"

	"github.com/AlonMell/rbmap/internal/rbtree"
)

// Map is a Red-Black Tree map safe for concurrent use. Writers hold the
// lock exclusively; lookups share it.
type Map[E any] struct {
	tree *rbtree.Tree[E]
	mu   sync.RWMutex
}

// New creates a new, empty Map.
func New[E any]() *Map[E] {
	return &Map[E]{
		tree: rbtree.New[E](),
	}
}

// Insert adds key if it is not present yet. It reports whether the key
// was added.
func (m *Map[E]) Insert(key string, val E) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.tree.Insert(key, val)
}

// Delete removes key and returns the value it held.
func (m *Map[E]) Delete(key string) (E, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.tree.Delete(key)
}

// Update runs fn with exclusive access to the underlying tree, so a
// sequence of operations is applied atomically. fn must not keep the
// tree after it returns.
func (m *Map[E]) Update(fn func(t *rbtree.Tree[E])) {
	m.mu.Lock()
	defer m.mu.Unlock()

	fn(m.tree)
}

// Get retrieves a value by key.
func (m *Map[E]) Get(key string) (E, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.tree.Get(key)
}

func (m *Map[E]) Contains(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.tree.Contains(key)
}

// Depth returns the depth of key, 0 if it is absent.
func (m *Map[E]) Depth(key string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.tree.Depth(key)
}

// Len returns the number of entries in the Map.
func (m *Map[E]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.tree.Len()
}

func (m *Map[E]) IsEmpty() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.tree.IsEmpty()
}

// Check validates the underlying tree, see rbtree.Tree.Check.
func (m *Map[E]) Check() error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.tree.Check()
}

func (m *Map[E]) String() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.tree.String()
}
