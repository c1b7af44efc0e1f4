package bstree

// allocate a node from the pool, falling back to the heap when empty
func (f *FreeList[K]) newNode() *node[K] {
	f.mu.Lock()
	i := len(f.pool) - 1
	if i < 0 {
		f.mu.Unlock()
		return new(node[K])
	}
	n := f.pool[i]
	f.pool[i] = nil
	f.pool = f.pool[:i]
	f.mu.Unlock()
	return n
}

// scrub a node and reclaim it; nodes beyond the pool capacity are left
// for the garbage collector
func (f *FreeList[K]) freeNode(n *node[K]) {
	var zero K
	n.key = zero
	n.left = nil
	n.right = nil
	n.parent = nil
	f.mu.Lock()
	if len(f.pool) < cap(f.pool) {
		f.pool = append(f.pool, n)
	}
	f.mu.Unlock()
}

// equal reports whether nodes may move between this freelist and other
// under the given policy
func (f *FreeList[K]) equal(other *FreeList[K], policy Propagation) bool {
	return f == other || policy&AlwaysEqual != 0
}

// lowest node in a subtree
func (n *node[K]) min() *node[K] {
	for n.left != nil {
		n = n.left
	}
	return n
}

// highest node in a subtree
func (n *node[K]) max() *node[K] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// freeGraph tears down an entire subtree iteratively: repeatedly descend
// to a leaf, unlink it from its parent, release the key and reclaim the
// node, then continue from the parent. Trees can degenerate into long
// chains, so recursion is off the table here. Release failures do not
// stop the teardown; the first one is reported.
func (t *Tree[K]) freeGraph(n *node[K]) error {
	var firstErr error
	for n != nil {
		if n.left != nil {
			n = n.left
			continue
		}
		if n.right != nil {
			n = n.right
			continue
		}
		p := n.parent
		if p != nil {
			if p.left == n {
				p.left = nil
			} else if p.right == n {
				p.right = nil
			}
		}
		if t.release != nil {
			if err := t.release(n.key); err != nil && firstErr == nil {
				firstErr = err
			}
		}
		t.alloc.freeNode(n)
		n = p
	}
	return firstErr
}

// copyGraph deep-copies a node graph preserving its shape, allocating
// from alloc. The walk is an iterative pre-order descent mirrored across
// source and copy, so its stack usage does not depend on tree depth.
func copyGraph[K any](src *node[K], alloc *FreeList[K]) *node[K] {
	if src == nil {
		return nil
	}
	dst := alloc.newNode()
	dst.key = src.key

	sw, dw := src, dst
	for sw != nil {
		switch {
		case sw.left != nil && dw.left == nil:
			c := alloc.newNode()
			c.key = sw.left.key
			c.parent = dw
			dw.left = c
			sw, dw = sw.left, c
		case sw.right != nil && dw.right == nil:
			c := alloc.newNode()
			c.key = sw.right.key
			c.parent = dw
			dw.right = c
			sw, dw = sw.right, c
		default:
			// leaf or fully copied interior node; climb back up
			sw, dw = sw.parent, dw.parent
		}
	}
	return dst
}
