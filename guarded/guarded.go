// Package guarded wraps a bstree.Tree with a reader/writer mutex for
// callers that share one tree between goroutines. The underlying tree
// performs no synchronization of its own: concurrent readers are safe
// with respect to each other but never with respect to a mutator, and
// this package is the canonical way to enforce that from the outside.
//
// Iterators are deliberately not exposed here; a cursor held across an
// unlock could observe a mutation mid-flight. Traversal happens inside
// the lock via Ascend, Keys, or a View callback.
package guarded

import (
	"sync"

	"github.com/go-dsa/dsa/bstree"
)

// Tree is a bstree.Tree guarded by an RWMutex.
type Tree[K any] struct {
	mu   sync.RWMutex
	tree *bstree.Tree[K]
}

// New wraps an existing tree. The caller must not touch the wrapped tree
// directly afterwards.
func New[K any](tree *bstree.Tree[K]) *Tree[K] {
	return &Tree[K]{tree: tree}
}

// NewOrdered creates a guarded tree over a fresh bstree ordered by '<'.
func NewOrdered[K bstree.Ordered]() *Tree[K] {
	return New(bstree.New[K]())
}

// Insert adds key, reporting whether it was absent.
func (g *Tree[K]) Insert(key K) bool {
	g.mu.Lock()
	_, ok := g.tree.Insert(key)
	g.mu.Unlock()
	return ok
}

// Delete removes key, reporting whether it was present. An OnRelease
// failure surfaces through the error.
func (g *Tree[K]) Delete(key K) (bool, error) {
	g.mu.Lock()
	n, err := g.tree.DeleteKey(key)
	g.mu.Unlock()
	return n != 0, err
}

// Contains reports whether key is present.
func (g *Tree[K]) Contains(key K) bool {
	g.mu.RLock()
	ok := g.tree.Contains(key)
	g.mu.RUnlock()
	return ok
}

// Len returns the number of keys.
func (g *Tree[K]) Len() int {
	g.mu.RLock()
	n := g.tree.Len()
	g.mu.RUnlock()
	return n
}

// Min returns the smallest key, reporting false when the tree is empty.
func (g *Tree[K]) Min() (K, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	it := g.tree.Begin()
	if !it.Valid() {
		var zero K
		return zero, false
	}
	return it.Key(), true
}

// Max returns the largest key, reporting false when the tree is empty.
func (g *Tree[K]) Max() (K, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	it := g.tree.Last()
	if !it.Valid() {
		var zero K
		return zero, false
	}
	return it.Key(), true
}

// Keys returns a snapshot of all keys in ascending order.
func (g *Tree[K]) Keys() []K {
	g.mu.RLock()
	keys := g.tree.Keys()
	g.mu.RUnlock()
	return keys
}

// Ascend calls fn under the read lock for each key in ascending order
// until fn returns false. fn must not mutate the tree.
func (g *Tree[K]) Ascend(fn func(key K) bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	g.tree.Ascend(fn)
}

// View runs fn with the tree under the read lock for multi-step reads.
// fn must not mutate the tree.
func (g *Tree[K]) View(fn func(tree *bstree.Tree[K])) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	fn(g.tree)
}

// Update runs fn with the tree under the write lock for multi-step
// mutations, such as iterator-driven deletes.
func (g *Tree[K]) Update(fn func(tree *bstree.Tree[K]) error) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return fn(g.tree)
}
