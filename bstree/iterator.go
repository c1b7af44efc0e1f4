package bstree

// Iterator states. An iterator is positioned at a node, has run off the
// end, or has run off the front. Falling off the front is a one-shot
// terminal state: such an iterator compares equal to nothing, including
// another before-begin iterator, so it cannot be mistaken for a sentinel.
type iterState uint8

const (
	// zero value: an end-like singular iterator
	stateAfterEnd iterState = iota
	statePositioned
	stateBeforeBegin
)

// Iterator is a cursor over the keys of a Tree in sorted order. Iterators
// are values; Next and Prev return a new cursor and leave the receiver
// untouched. The zero Iterator behaves like the end of an empty tree.
//
// An iterator stays usable across mutations of its tree as long as the
// node it points at survives; deleting that node invalidates it.
type Iterator[K any] struct {
	node  *node[K]
	state iterState
}

// Valid reports whether the iterator is positioned at a key and may be
// dereferenced with Key.
func (it Iterator[K]) Valid() bool {
	return it.state == statePositioned
}

// Key returns the key the iterator is positioned at. Calling Key on an
// after-end or before-begin iterator is a contract violation and panics.
func (it Iterator[K]) Key() K {
	if it.state != statePositioned {
		panic("bstree: Key called on an iterator that is not positioned at a key")
	}
	return it.node.key
}

// Next returns an iterator at the in-order successor. Advancing past the
// largest key yields the after-end state; advancing an after-end or
// before-begin iterator returns it unchanged.
func (it Iterator[K]) Next() Iterator[K] {
	if it.state != statePositioned {
		return it
	}

	n := it.node
	// with a right child the successor is that subtree's leftmost node
	if n.right != nil {
		return Iterator[K]{node: n.right.min(), state: statePositioned}
	}
	// otherwise climb until we leave some ancestor through a left link
	for n.parent != nil {
		if n == n.parent.left {
			return Iterator[K]{node: n.parent, state: statePositioned}
		}
		n = n.parent
	}
	// climbed off the root from the right: fall off the end, keeping the
	// node so that Prev can step back onto it
	return Iterator[K]{node: it.node, state: stateAfterEnd}
}

// Prev returns an iterator at the in-order predecessor. Stepping back
// from the after-end state lands on the largest key; stepping back past
// the smallest key yields the unusable before-begin state.
func (it Iterator[K]) Prev() Iterator[K] {
	switch it.state {
	case stateAfterEnd:
		if it.node != nil {
			return Iterator[K]{node: it.node, state: statePositioned}
		}
		return it
	case stateBeforeBegin:
		return it
	}

	n := it.node
	if n.left != nil {
		return Iterator[K]{node: n.left.max(), state: statePositioned}
	}
	for n.parent != nil {
		if n == n.parent.right {
			return Iterator[K]{node: n.parent, state: statePositioned}
		}
		n = n.parent
	}
	// fell off the front
	return Iterator[K]{state: stateBeforeBegin}
}

// Equal reports whether two iterators denote the same position: both
// positioned at the same node, or both after the end of the same key
// sequence. Before-begin iterators never compare equal.
func (it Iterator[K]) Equal(other Iterator[K]) bool {
	switch {
	case it.state == statePositioned && other.state == statePositioned:
		return it.node == other.node
	case it.state == stateAfterEnd && other.state == stateAfterEnd:
		// node is compared too so that a stale end from an earlier
		// shape of the tree does not pass for the current one
		return it.node == other.node
	default:
		return false
	}
}
