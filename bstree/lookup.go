package bstree

// Lookups walk from the root using the two one-directional comparisons
// less(a, b) and less(b, a); keys are never compared for equality
// directly. The *By variants at the bottom of this file do the same walk
// with a CrossOrder, so a probe of a different but comparable type can be
// looked up without constructing a key. They are package-level functions
// because Go methods cannot introduce type parameters.

// Find returns an iterator at key, or End() if the key is absent.
func (t *Tree[K]) Find(key K) Iterator[K] {
	n := t.root
	for n != nil {
		switch {
		case t.less(key, n.key):
			n = n.left
		case t.less(n.key, key):
			n = n.right
		default:
			return Iterator[K]{node: n, state: statePositioned}
		}
	}
	return t.end
}

// Contains reports whether key is in the tree.
func (t *Tree[K]) Contains(key K) bool {
	return t.Count(key) != 0
}

// Count returns the number of keys equal to key: 0 or 1, since keys are
// unique.
func (t *Tree[K]) Count(key K) int {
	n := t.root
	for n != nil {
		switch {
		case t.less(key, n.key):
			n = n.left
		case t.less(n.key, key):
			n = n.right
		default:
			return 1
		}
	}
	return 0
}

// LowerBound returns an iterator at the first key not less than key, or
// End() if every key is less.
func (t *Tree[K]) LowerBound(key K) Iterator[K] {
	var candidate *node[K]
	n := t.root
	for n != nil {
		if t.less(n.key, key) {
			n = n.right
		} else {
			candidate = n
			n = n.left
		}
	}
	if candidate == nil {
		return t.end
	}
	return Iterator[K]{node: candidate, state: statePositioned}
}

// UpperBound returns an iterator at the first key greater than key, or
// End() if no key is greater.
func (t *Tree[K]) UpperBound(key K) Iterator[K] {
	var candidate *node[K]
	n := t.root
	for n != nil {
		if t.less(key, n.key) {
			candidate = n
			n = n.left
		} else {
			n = n.right
		}
	}
	if candidate == nil {
		return t.end
	}
	return Iterator[K]{node: candidate, state: statePositioned}
}

// EqualRange returns the half-open range of keys equal to key. Keys are
// unique, so the range is [LowerBound(key), LowerBound(key).Next()) when
// the key is present and otherwise empty, positioned where the key would
// be inserted.
func (t *Tree[K]) EqualRange(key K) (first, last Iterator[K]) {
	first = t.LowerBound(key)
	last = first
	if first.state == statePositioned && !t.less(key, first.node.key) {
		// first is not less than key by construction, so they are equal
		last = first.Next()
	}
	return first, last
}

// FindBy looks up a probe of a different type through ord, returning an
// iterator at the matching key or End().
func FindBy[Q, K any](t *Tree[K], probe Q, ord CrossOrder[Q, K]) Iterator[K] {
	n := t.root
	for n != nil {
		switch {
		case ord.Less(probe, n.key):
			n = n.left
		case ord.Greater(probe, n.key):
			n = n.right
		default:
			return Iterator[K]{node: n, state: statePositioned}
		}
	}
	return t.end
}

// CountBy returns the number of keys comparing equal to probe under ord:
// 0 or 1.
func CountBy[Q, K any](t *Tree[K], probe Q, ord CrossOrder[Q, K]) int {
	if FindBy(t, probe, ord).state == statePositioned {
		return 1
	}
	return 0
}

// LowerBoundBy returns an iterator at the first key that probe does not
// sort after, or End().
func LowerBoundBy[Q, K any](t *Tree[K], probe Q, ord CrossOrder[Q, K]) Iterator[K] {
	var candidate *node[K]
	n := t.root
	for n != nil {
		if ord.Greater(probe, n.key) {
			n = n.right
		} else {
			candidate = n
			n = n.left
		}
	}
	if candidate == nil {
		return t.end
	}
	return Iterator[K]{node: candidate, state: statePositioned}
}

// UpperBoundBy returns an iterator at the first key that probe sorts
// before, or End().
func UpperBoundBy[Q, K any](t *Tree[K], probe Q, ord CrossOrder[Q, K]) Iterator[K] {
	var candidate *node[K]
	n := t.root
	for n != nil {
		if ord.Less(probe, n.key) {
			candidate = n
			n = n.left
		} else {
			n = n.right
		}
	}
	if candidate == nil {
		return t.end
	}
	return Iterator[K]{node: candidate, state: statePositioned}
}

// EqualRangeBy returns the half-open range of keys comparing equal to
// probe under ord; see EqualRange.
func EqualRangeBy[Q, K any](t *Tree[K], probe Q, ord CrossOrder[Q, K]) (first, last Iterator[K]) {
	first = LowerBoundBy(t, probe, ord)
	last = first
	if first.state == statePositioned && !ord.Less(probe, first.node.key) {
		last = first.Next()
	}
	return first, last
}
