package bstree

// point the erased node's parent (or the root slot) at repl instead
func (t *Tree[K]) replaceChild(old, repl *node[K]) {
	switch {
	case old.parent == nil:
		t.root = repl
	case old.parent.left == old:
		old.parent.left = repl
	default:
		old.parent.right = repl
	}
	if repl != nil {
		repl.parent = old.parent
	}
}

// DeleteAt removes the key at pos, which must be positioned, and returns
// an iterator at its in-order successor. A non-nil error comes from the
// OnRelease hook and is reported only after the node has been unlinked,
// the size adjusted and the storage reclaimed; the key is removed either
// way.
func (t *Tree[K]) DeleteAt(pos Iterator[K]) (Iterator[K], error) {
	if pos.state != statePositioned {
		panic("bstree: DeleteAt on an iterator that is not positioned at a key")
	}
	n := pos.node
	succ := pos.Next()

	// the extremal cursors move to the erased node's in-order
	// neighbours; both are computed before the graph is restructured
	var newBegin, newEnd *node[K]
	if n == t.begin.node {
		newBegin = succ.node
	}
	if n == t.end.node {
		newEnd = pos.Prev().node
	}

	switch {
	case n.left == nil && n.right == nil:
		t.replaceChild(n, nil)
	case n.left == nil:
		// splice the lone right child into the vacated slot
		t.replaceChild(n, n.right)
	case n.right == nil:
		t.replaceChild(n, n.left)
	default:
		// Two children: promote one child into the vacated slot and
		// re-attach the other by a plain descent from the promoted
		// subtree. The promoted side alternates with the parity of the
		// tree's size so that adversarial deletion sequences cannot
		// keep collapsing the same flank toward a list. Both subtrees
		// keep their internal shape; the splice costs O(height).
		keep, move := n.left, n.right
		if t.size%2 != 0 {
			keep, move = n.right, n.left
		}
		t.replaceChild(n, keep)

		at := keep
		for {
			// keys are unique, so the two subtrees never hold an
			// equal pair and a two-way test suffices
			if t.less(move.key, at.key) {
				if at.left != nil {
					at = at.left
					continue
				}
				at.left = move
				move.parent = at
				break
			}
			if at.right != nil {
				at = at.right
				continue
			}
			at.right = move
			move.parent = at
			break
		}
	}

	var err error
	if t.release != nil {
		err = t.release(n.key)
	}
	t.size--
	t.alloc.freeNode(n)

	if t.size == 0 {
		t.begin = Iterator[K]{}
		t.end = Iterator[K]{}
	} else {
		if newBegin != nil {
			t.begin = Iterator[K]{node: newBegin, state: statePositioned}
		}
		if newEnd != nil {
			t.end = Iterator[K]{node: newEnd, state: stateAfterEnd}
		}
	}
	if succ.state == stateAfterEnd {
		// the largest key was removed; its successor is the refreshed
		// end position, not the stale one through the dead node
		succ = t.end
	}
	return succ, err
}

// DeleteKey removes key if present, reporting how many keys were removed:
// 0 or 1. The error, if any, comes from the OnRelease hook.
func (t *Tree[K]) DeleteKey(key K) (int, error) {
	n := t.root
	for n != nil {
		switch {
		case t.less(key, n.key):
			n = n.left
		case t.less(n.key, key):
			n = n.right
		default:
			_, err := t.DeleteAt(Iterator[K]{node: n, state: statePositioned})
			return 1, err
		}
	}
	return 0, nil
}

// DeleteRange removes every key in the half-open range [first, last) and
// returns last. A release failure stops the sweep after the failing key
// has been removed.
func (t *Tree[K]) DeleteRange(first, last Iterator[K]) (Iterator[K], error) {
	for it := first; !it.Equal(last) && it.state == statePositioned; {
		var err error
		it, err = t.DeleteAt(it)
		if err != nil {
			return it, err
		}
	}
	return last, nil
}

// Clear removes all keys, releasing every node back to the freelist. The
// teardown is iterative and runs to completion even when OnRelease fails;
// the first failure is returned.
func (t *Tree[K]) Clear() error {
	err := t.freeGraph(t.root)
	t.root = nil
	t.size = 0
	t.begin = Iterator[K]{}
	t.end = Iterator[K]{}
	return err
}
