// Package bstree implements an in-memory binary search tree over unique
// keys with parent pointers to allow bidirectional iteration through the
// nodes in sorted order.
//
// Note: an individual tree is not thread safe, so either access only in a
// single goroutine or guard access externally (see the guarded package).
//
// The tree is not self-balancing. Point operations cost O(height), which
// degrades toward O(size) under adversarial insertion order; deletion of
// nodes with two children alternates the promoted side by size parity to
// keep deletion sequences from degenerating the shape on their own.
package bstree

import (
	"math"
	"sync"
)

// Ordered is the set of types for which the '<' operator works.
type Ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 | ~string
}

// LessFunc reports whether a sorts strictly before b. It must describe a
// strict weak ordering; keys a and b are considered equal when neither
// sorts before the other.
type LessFunc[K any] func(a, b K) bool

// CrossOrder orders probe values of type Q against stored keys of type K
// without converting between the two. It is the heterogeneous counterpart
// of a LessFunc and drives the *By lookup functions.
type CrossOrder[Q, K any] struct {
	// Less reports whether the probe sorts before the key.
	Less func(q Q, k K) bool
	// Greater reports whether the probe sorts after the key.
	Greater func(q Q, k K) bool
}

// Propagation selects which allocator transfers accompany assignment and
// swap. The zero value propagates nothing: trees keep their own allocator
// and fall back to element-wise transfer when allocators differ.
type Propagation uint8

const (
	PropagateOnCopy Propagation = 1 << iota
	PropagateOnMove
	PropagateOnSwap
	// AlwaysEqual declares all allocators interchangeable, so node
	// ownership may transfer wholesale even between distinct freelists.
	AlwaysEqual
)

type (
	// Tree is an ordered set of unique keys. The zero value is not
	// usable; construct with New, NewFunc, NewIn or From.
	Tree[K any] struct {
		less    LessFunc[K]
		alloc   *FreeList[K]
		release func(K) error
		root    *node[K]
		size    int
		begin   Iterator[K]
		end     Iterator[K]
	}

	// a node in the tree; the parent link is never used for ownership,
	// only root-to-leaf links own subtrees
	node[K any] struct {
		key    K
		left   *node[K]
		right  *node[K]
		parent *node[K]
	}

	// FreeList holds a reusable pool of tree nodes. A single FreeList
	// may be shared by several trees; it is safe for concurrent use.
	FreeList[K any] struct {
		mu   sync.Mutex
		pool []*node[K]
	}
)

// DefaultFreeListSize is the pool capacity used by the constructors that
// do not take an explicit allocator.
const DefaultFreeListSize = 32

// NewFreeList creates a node pool retaining up to size reclaimed nodes.
func NewFreeList[K any](size int) *FreeList[K] {
	return &FreeList[K]{pool: make([]*node[K], 0, size)}
}

// New creates an empty tree ordered by '<'.
func New[K Ordered]() *Tree[K] {
	return NewFunc(func(a, b K) bool { return a < b })
}

// NewFunc creates an empty tree ordered by less.
func NewFunc[K any](less LessFunc[K]) *Tree[K] {
	return NewIn(less, NewFreeList[K](DefaultFreeListSize))
}

// NewIn creates an empty tree ordered by less that obtains and releases
// its nodes through alloc.
func NewIn[K any](less LessFunc[K], alloc *FreeList[K]) *Tree[K] {
	if less == nil {
		panic("bstree: nil LessFunc")
	}
	if alloc == nil {
		alloc = NewFreeList[K](DefaultFreeListSize)
	}
	return &Tree[K]{less: less, alloc: alloc}
}

// From creates a tree ordered by '<' holding the given keys. Duplicates
// are dropped.
func From[K Ordered](keys ...K) *Tree[K] {
	t := New[K]()
	t.InsertAll(keys...)
	return t
}

// Len returns the number of keys currently in the tree.
func (t *Tree[K]) Len() int {
	return t.size
}

// Empty reports whether the tree holds no keys.
func (t *Tree[K]) Empty() bool {
	return t.size == 0
}

// MaxSize returns the theoretical upper bound on Len.
func (t *Tree[K]) MaxSize() int {
	return math.MaxInt
}

// Allocator returns the freelist the tree draws its nodes from.
func (t *Tree[K]) Allocator() *FreeList[K] {
	return t.alloc
}

// OnRelease installs f to be called with each key as its node is torn
// down by DeleteAt, DeleteKey, DeleteRange or Clear. A non-nil error from
// f propagates to the caller after the node has been unlinked, accounted
// for and returned to the freelist; the key is gone either way.
func (t *Tree[K]) OnRelease(f func(K) error) {
	t.release = f
}

// Begin returns an iterator positioned at the smallest key, equal to
// End() when the tree is empty.
func (t *Tree[K]) Begin() Iterator[K] {
	return t.begin
}

// End returns the one-past-the-largest-key iterator.
func (t *Tree[K]) End() Iterator[K] {
	return t.end
}

// Last returns an iterator positioned at the largest key, equal to End()
// when the tree is empty. It is the starting point for reverse traversal
// via Prev.
func (t *Tree[K]) Last() Iterator[K] {
	if t.end.node == nil {
		return t.end
	}
	return Iterator[K]{node: t.end.node, state: statePositioned}
}

// Ascend calls fn for each key in ascending order until fn returns false.
func (t *Tree[K]) Ascend(fn func(key K) bool) {
	for it := t.begin; it.state == statePositioned; it = it.Next() {
		if !fn(it.node.key) {
			return
		}
	}
}

// Descend calls fn for each key in descending order until fn returns false.
func (t *Tree[K]) Descend(fn func(key K) bool) {
	for it := t.Last(); it.state == statePositioned; it = it.Prev() {
		if !fn(it.node.key) {
			return
		}
	}
}

// Keys returns all keys in ascending order.
func (t *Tree[K]) Keys() []K {
	keys := make([]K, 0, t.size)
	t.Ascend(func(key K) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Equal reports whether both trees hold the same keys in the same order,
// judged by the receiver's comparator.
func (t *Tree[K]) Equal(other *Tree[K]) bool {
	if t.size != other.size {
		return false
	}
	a, b := t.begin, other.begin
	for a.state == statePositioned {
		if t.less(a.node.key, b.node.key) || t.less(b.node.key, a.node.key) {
			return false
		}
		a, b = a.Next(), b.Next()
	}
	return true
}

// Less reports whether the receiver's key sequence sorts
// lexicographically before other's, judged by the receiver's comparator.
func (t *Tree[K]) Less(other *Tree[K]) bool {
	a, b := t.begin, other.begin
	for a.state == statePositioned && b.state == statePositioned {
		if t.less(a.node.key, b.node.key) {
			return true
		}
		if t.less(b.node.key, a.node.key) {
			return false
		}
		a, b = a.Next(), b.Next()
	}
	return a.state != statePositioned && b.state == statePositioned
}
