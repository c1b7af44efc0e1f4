package bstree

// recompute the cached extremal cursors from the root after wholesale
// graph replacement
func (t *Tree[K]) resetCursors() {
	if t.root == nil {
		t.begin = Iterator[K]{}
		t.end = Iterator[K]{}
		return
	}
	t.begin = Iterator[K]{node: t.root.min(), state: statePositioned}
	t.end = Iterator[K]{node: t.root.max(), state: stateAfterEnd}
}

// Clone returns an independent deep copy of the tree, preserving the node
// graph's shape and sharing the comparator, allocator and release hook.
func (t *Tree[K]) Clone() *Tree[K] {
	c := &Tree[K]{less: t.less, alloc: t.alloc, release: t.release}
	c.root = copyGraph(t.root, c.alloc)
	c.size = t.size
	c.resetCursors()
	return c
}

// CopyFrom replaces the receiver's contents with a deep copy of src. With
// PropagateOnCopy the receiver clears through its old allocator and then
// adopts src's; otherwise the copy is built with the receiver's own
// allocator. The receiver also adopts src's comparator. A non-nil error
// comes from releasing the receiver's previous keys and leaves the
// receiver empty and valid.
func (t *Tree[K]) CopyFrom(src *Tree[K], policy Propagation) error {
	if t == src {
		return nil
	}
	if err := t.Clear(); err != nil {
		return err
	}
	t.less = src.less
	if policy&PropagateOnCopy != 0 {
		t.alloc = src.alloc
	}
	t.root = copyGraph(src.root, t.alloc)
	t.size = src.size
	t.resetCursors()
	return nil
}

// MoveFrom transfers src's contents into the receiver, leaving src empty
// and valid. When the policy propagates on move, or the two allocators
// are interchangeable, the transfer is an O(1) handover of the root and
// cached cursors. Otherwise node ownership cannot cross allocators, so
// the keys are copied element-wise into nodes from the receiver's own
// allocator and src is cleared through its own.
func (t *Tree[K]) MoveFrom(src *Tree[K], policy Propagation) error {
	if t == src {
		return nil
	}
	if err := t.Clear(); err != nil {
		return err
	}
	t.less = src.less

	if policy&PropagateOnMove != 0 || t.alloc.equal(src.alloc, policy) {
		if policy&PropagateOnMove != 0 {
			t.alloc = src.alloc
		}
		t.root, t.size = src.root, src.size
		t.begin, t.end = src.begin, src.end
		src.root = nil
		src.size = 0
		src.begin = Iterator[K]{}
		src.end = Iterator[K]{}
		return nil
	}

	t.root = copyGraph(src.root, t.alloc)
	t.size = src.size
	t.resetCursors()
	return src.Clear()
}

// Swap exchanges the contents of two trees, comparators and release
// hooks included. When the policy propagates on swap, or the allocators
// are interchangeable, the exchange is an O(1) swap of roots and cursors.
// Otherwise node ownership cannot cross allocators, so each side is
// rebuilt element-wise from nodes of its own allocator, costing
// O(len(t) + len(other)). Swap never fails: every key survives the
// exchange, so the release hooks are not consulted.
func (t *Tree[K]) Swap(other *Tree[K], policy Propagation) {
	if t == other {
		return
	}

	t.less, other.less = other.less, t.less
	t.release, other.release = other.release, t.release

	if policy&PropagateOnSwap != 0 || t.alloc.equal(other.alloc, policy) {
		if policy&PropagateOnSwap != 0 {
			t.alloc, other.alloc = other.alloc, t.alloc
		}
		t.root, other.root = other.root, t.root
		t.size, other.size = other.size, t.size
		t.begin, other.begin = other.begin, t.begin
		t.end, other.end = other.end, t.end
		return
	}

	mine := copyGraph(other.root, t.alloc)
	mineSize := other.size
	theirs := copyGraph(t.root, other.alloc)
	theirsSize := t.size

	// the old node graphs are torn down without the release hooks: the
	// keys live on in the rebuilt trees
	relT, relO := t.release, other.release
	t.release, other.release = nil, nil
	t.Clear()
	other.Clear()
	t.release, other.release = relT, relO

	t.root, t.size = mine, mineSize
	t.resetCursors()
	other.root, other.size = theirs, theirsSize
	other.resetCursors()
}
