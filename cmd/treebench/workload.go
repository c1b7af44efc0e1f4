package main

import (
	"encoding/binary"
	"math/rand"

	gbtree "github.com/google/btree"

	"github.com/go-dsa/dsa/bstree"
)

// index is the minimal ordered-index surface the suites exercise.
type index interface {
	name() string
	insert(key int64)
	get(key int64) bool
	scan(start, end int64) int
}

type workload string

const (
	oltp      workload = "oltp-90-10"
	olap      workload = "olap-10-90"
	reporting workload = "range-scan"
)

// executeWorkload runs a mixed distribution of point reads, writes and
// range scans against idx.
func executeWorkload(idx index, w workload, ops int) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < ops; i++ {
		choice := rng.Intn(100)
		key := int64(rng.Intn(ops))

		switch w {
		case oltp:
			if choice < 90 {
				idx.get(key)
			} else {
				idx.insert(key)
			}
		case olap:
			if choice < 10 {
				idx.get(key)
			} else {
				idx.insert(key)
			}
		case reporting:
			idx.scan(key, key+100)
		}
	}
}

type bstreeIndex struct {
	tree *bstree.Tree[int64]
}

func newBstreeIndex() *bstreeIndex {
	return &bstreeIndex{tree: bstree.New[int64]()}
}

func (x *bstreeIndex) name() string { return "bstree" }

func (x *bstreeIndex) insert(key int64) {
	x.tree.Insert(key)
}

func (x *bstreeIndex) get(key int64) bool {
	return x.tree.Contains(key)
}

func (x *bstreeIndex) scan(start, end int64) int {
	count := 0
	for it := x.tree.LowerBound(start); it.Valid() && it.Key() < end; it = it.Next() {
		count++
	}
	return count
}

type btreeIndex struct {
	tree *gbtree.BTreeG[int64]
}

func newBtreeIndex(degree int) *btreeIndex {
	return &btreeIndex{tree: gbtree.NewOrderedG[int64](degree)}
}

func (x *btreeIndex) name() string { return "google-btree" }

func (x *btreeIndex) insert(key int64) {
	x.tree.ReplaceOrInsert(key)
}

func (x *btreeIndex) get(key int64) bool {
	return x.tree.Has(key)
}

func (x *btreeIndex) scan(start, end int64) int {
	count := 0
	x.tree.AscendRange(start, end, func(int64) bool {
		count++
		return true
	})
	return count
}

func encodeKey(key int64) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(key))
	return buf[:]
}
