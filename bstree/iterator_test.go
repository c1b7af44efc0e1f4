package bstree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIteratorWalksForward(t *testing.T) {
	tree := From(5, 3, 8, 1, 4)

	it := tree.Begin()
	for _, want := range []int{1, 3, 4, 5, 8} {
		require.True(t, it.Valid())
		assert.Equal(t, want, it.Key())
		it = it.Next()
	}
	assert.False(t, it.Valid())
	assert.True(t, it.Equal(tree.End()))
}

func TestIteratorWalksBackward(t *testing.T) {
	tree := From(5, 3, 8, 1, 4)

	it := tree.End()
	for _, want := range []int{8, 5, 4, 3, 1} {
		it = it.Prev()
		require.True(t, it.Valid())
		assert.Equal(t, want, it.Key())
	}
	assert.True(t, it.Equal(tree.Begin()))
}

func TestAdvancingBeginSizeTimesReachesEnd(t *testing.T) {
	tree := From(7, 2, 9, 4, 11, 1)

	it := tree.Begin()
	for i := 0; i < tree.Len(); i++ {
		require.True(t, it.Valid())
		it = it.Next()
	}
	assert.True(t, it.Equal(tree.End()))

	back := tree.End()
	for i := 0; i < tree.Len(); i++ {
		back = back.Prev()
		require.True(t, back.Valid())
	}
	assert.True(t, back.Equal(tree.Begin()))
}

func TestIteratorTerminalStates(t *testing.T) {
	tree := From(1, 2)

	// advancing past the end is sticky
	end := tree.Begin().Next().Next()
	assert.True(t, end.Equal(tree.End()))
	assert.True(t, end.Next().Equal(end))

	// stepping back from the end lands on the largest key
	assert.Equal(t, 2, tree.End().Prev().Key())

	// falling off the front is one-shot: the result compares equal to
	// nothing, not even another before-begin iterator, and stays put
	front := tree.Begin().Prev()
	assert.False(t, front.Valid())
	assert.False(t, front.Equal(front))
	assert.False(t, front.Equal(tree.Begin()))
	assert.False(t, front.Equal(tree.End()))
	assert.False(t, front.Equal(tree.Begin().Prev()))
	assert.True(t, front.Prev().state == stateBeforeBegin)
	assert.True(t, front.Next().state == stateBeforeBegin)
}

func TestZeroIteratorBehavesLikeEmptyEnd(t *testing.T) {
	var it Iterator[int]
	assert.False(t, it.Valid())
	assert.True(t, it.Equal(it.Next()))

	empty := New[int]()
	assert.True(t, it.Equal(empty.End()))
	assert.True(t, empty.Begin().Equal(empty.End()))
	assert.True(t, empty.Last().Equal(empty.End()))
}

func TestIteratorKeyPanicsOffTheRange(t *testing.T) {
	tree := From(1)

	assert.Panics(t, func() { tree.End().Key() })
	assert.Panics(t, func() { tree.Begin().Prev().Key() })

	var zero Iterator[int]
	assert.Panics(t, func() { zero.Key() })
}

func TestIteratorEqualityAcrossStates(t *testing.T) {
	tree := From(1, 2, 3)

	a := tree.Find(2)
	b := tree.Begin().Next()
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(tree.Begin()))
	assert.False(t, a.Equal(tree.End()))

	// a positioned iterator at the largest key is not the end
	assert.False(t, tree.Last().Equal(tree.End()))
}

func TestEndCursorTracksMutation(t *testing.T) {
	tree := From(1, 2, 3)

	// growing on the right moves the end past the new largest key
	tree.Insert(9)
	assert.Equal(t, 9, tree.End().Prev().Key())

	// erasing the largest key pulls the end back
	_, err := tree.DeleteKey(9)
	require.NoError(t, err)
	assert.Equal(t, 3, tree.End().Prev().Key())

	// ends from different shapes of the tree do not mix
	stale := tree.End()
	tree.Insert(10)
	assert.False(t, stale.Equal(tree.End()))
}

func TestBeginCursorTracksMutation(t *testing.T) {
	tree := From(5, 6)

	tree.Insert(1)
	assert.Equal(t, 1, tree.Begin().Key())

	_, err := tree.DeleteKey(1)
	require.NoError(t, err)
	assert.Equal(t, 5, tree.Begin().Key())

	// erasing the smallest key when it has a right child: the new
	// smallest is inside that child's subtree, not the old parent
	tree = From(5, 2, 3, 8)
	_, err = tree.DeleteKey(2)
	require.NoError(t, err)
	assert.Equal(t, 3, tree.Begin().Key())
	checkInvariants(t, tree)
}

func TestInsertHint(t *testing.T) {
	tree := From(10, 20, 30, 40)

	// good hint: position directly after the new key
	it, ok := tree.InsertHint(tree.Find(20), 15)
	assert.True(t, ok)
	assert.Equal(t, 15, it.Key())
	checkInvariants(t, tree)

	// end hint for an append at the back
	it, ok = tree.InsertHint(tree.End(), 50)
	assert.True(t, ok)
	assert.Equal(t, 50, it.Key())
	assert.Equal(t, 50, tree.End().Prev().Key())
	checkInvariants(t, tree)

	// wildly wrong hints still insert correctly
	it, ok = tree.InsertHint(tree.Begin(), 45)
	assert.True(t, ok)
	assert.Equal(t, 45, it.Key())
	it, ok = tree.InsertHint(tree.Find(50), 5)
	assert.True(t, ok)
	assert.Equal(t, 5, it.Key())
	checkInvariants(t, tree)

	// duplicate through a hint is refused
	it, ok = tree.InsertHint(tree.Find(30), 30)
	assert.False(t, ok)
	assert.Equal(t, 30, it.Key())

	// a singular hint falls back to the plain insert
	var zero Iterator[int]
	_, ok = tree.InsertHint(zero, 33)
	assert.True(t, ok)
	checkInvariants(t, tree)

	assert.Equal(t, []int{5, 10, 15, 20, 30, 33, 40, 45, 50}, tree.Keys())
}

func TestInsertHintExhaustive(t *testing.T) {
	// every hint position must produce a correct tree for every key
	base := []int{10, 20, 30, 40, 50}
	for _, key := range []int{5, 15, 25, 35, 55, 10, 30, 50} {
		for hintKey := range base {
			tree := From(base...)
			hint := tree.Find(base[hintKey])
			_, ok := tree.InsertHint(hint, key)

			want := From(base...)
			_, wantOK := want.Insert(key)
			assert.Equal(t, wantOK, ok, "key %d hint %d", key, base[hintKey])
			assert.Equal(t, want.Keys(), tree.Keys(), "key %d hint %d", key, base[hintKey])
			checkInvariants(t, tree)
		}
	}
}
