package bstree

// install n as the root of an empty tree
func (t *Tree[K]) makeRoot(n *node[K]) {
	t.root = n
	t.size = 1
	t.begin = Iterator[K]{node: n, state: statePositioned}
	t.end = Iterator[K]{node: n, state: stateAfterEnd}
}

// attach n as parent's missing left child, shifting the begin cursor when
// the attachment extends the front of the sorted range
func (t *Tree[K]) attachLeft(parent, n *node[K]) {
	parent.left = n
	n.parent = parent
	t.size++
	if parent == t.begin.node {
		t.begin = Iterator[K]{node: n, state: statePositioned}
	}
}

// attach n as parent's missing right child, shifting the end cursor when
// the attachment extends the back of the sorted range
func (t *Tree[K]) attachRight(parent, n *node[K]) {
	parent.right = n
	n.parent = parent
	t.size++
	if parent == t.end.node {
		t.end = Iterator[K]{node: n, state: stateAfterEnd}
	}
}

// Insert adds key to the tree. It returns an iterator at the key along
// with true when the key was inserted, or at the already-present equal
// key along with false; a refused insert leaves the tree unchanged.
func (t *Tree[K]) Insert(key K) (Iterator[K], bool) {
	if t.root == nil {
		n := t.alloc.newNode()
		n.key = key
		t.makeRoot(n)
		return t.begin, true
	}

	n := t.root
	for {
		switch {
		case t.less(key, n.key):
			if n.left != nil {
				n = n.left
				continue
			}
			c := t.alloc.newNode()
			c.key = key
			t.attachLeft(n, c)
			return Iterator[K]{node: c, state: statePositioned}, true
		case t.less(n.key, key):
			if n.right != nil {
				n = n.right
				continue
			}
			c := t.alloc.newNode()
			c.key = key
			t.attachRight(n, c)
			return Iterator[K]{node: c, state: statePositioned}, true
		default:
			return Iterator[K]{node: n, state: statePositioned}, false
		}
	}
}

// InsertHint adds key like Insert, searching outward from hint before
// falling back to the full walk from the root. A hint adjacent to the
// key's position saves the descent; any hint, including a stale or
// unrelated one, still yields a correct insert.
func (t *Tree[K]) InsertHint(hint Iterator[K], key K) (Iterator[K], bool) {
	if t.root == nil {
		return t.Insert(key)
	}

	pos := hint
	if pos.state == stateAfterEnd && pos.node == t.end.node {
		pos = t.Last()
	}
	if pos.state != statePositioned {
		return t.Insert(key)
	}

	if t.less(key, pos.node.key) {
		// walk backward until the key no longer sorts before pos
		for !pos.Equal(t.begin) && t.less(key, pos.node.key) {
			pos = pos.Prev()
		}
	} else {
		// walk forward until pos no longer sorts before the key
		for pos.state == statePositioned && t.less(pos.node.key, key) {
			pos = pos.Next()
		}
		if pos.state != statePositioned {
			// ran past the largest key; attach after it
			pos = t.Last()
		}
	}

	n := pos.node
	switch {
	case t.less(key, n.key):
		if n.left == nil {
			c := t.alloc.newNode()
			c.key = key
			t.attachLeft(n, c)
			return Iterator[K]{node: c, state: statePositioned}, true
		}
	case t.less(n.key, key):
		if n.right == nil {
			c := t.alloc.newNode()
			c.key = key
			t.attachRight(n, c)
			return Iterator[K]{node: c, state: statePositioned}, true
		}
	default:
		return pos, false
	}

	// the adjacent slot is occupied, so the hint walk landed us next to
	// an interior node; let the full descent place the key
	return t.Insert(key)
}

// InsertAll adds each of the given keys, skipping duplicates.
func (t *Tree[K]) InsertAll(keys ...K) {
	for _, key := range keys {
		t.Insert(key)
	}
}

// InsertRange adds every key in the half-open iterator range
// [first, last), which may come from another tree.
func (t *Tree[K]) InsertRange(first, last Iterator[K]) {
	for it := first; !it.Equal(last) && it.state == statePositioned; it = it.Next() {
		t.Insert(it.node.key)
	}
}

// Emplace constructs a key via ctor directly into a freshly allocated
// node and inserts it. If ctor fails, the node is returned to the
// freelist before the error propagates; if the key is already present,
// the node is likewise reclaimed and the existing position returned with
// false.
func (t *Tree[K]) Emplace(ctor func() (K, error)) (Iterator[K], bool, error) {
	n := t.alloc.newNode()
	key, err := ctor()
	if err != nil {
		t.alloc.freeNode(n)
		return Iterator[K]{}, false, err
	}
	n.key = key

	it, ok := t.insertNode(n)
	if !ok {
		t.alloc.freeNode(n)
	}
	return it, ok, nil
}

// EmplaceHint is Emplace with an insertion hint; see InsertHint.
func (t *Tree[K]) EmplaceHint(hint Iterator[K], ctor func() (K, error)) (Iterator[K], bool, error) {
	key, err := ctor()
	if err != nil {
		return Iterator[K]{}, false, err
	}
	it, ok := t.InsertHint(hint, key)
	return it, ok, nil
}

// insertNode walks the tree and links a prebuilt node into place. It
// reports false, without touching the tree, when an equal key is already
// present; the caller owns the rejected node.
func (t *Tree[K]) insertNode(n *node[K]) (Iterator[K], bool) {
	if t.root == nil {
		t.makeRoot(n)
		return t.begin, true
	}

	at := t.root
	for {
		switch {
		case t.less(n.key, at.key):
			if at.left != nil {
				at = at.left
				continue
			}
			t.attachLeft(at, n)
			return Iterator[K]{node: n, state: statePositioned}, true
		case t.less(at.key, n.key):
			if at.right != nil {
				at = at.right
				continue
			}
			t.attachRight(at, n)
			return Iterator[K]{node: n, state: statePositioned}, true
		default:
			return Iterator[K]{node: at, state: statePositioned}, false
		}
	}
}
