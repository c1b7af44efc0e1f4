package main

import (
	"github.com/cockroachdb/pebble"
)

type pebbleIndex struct {
	db *pebble.DB
}

func openPebble(path string) (*pebbleIndex, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, err
	}
	return &pebbleIndex{db: db}, nil
}

func (x *pebbleIndex) name() string { return "pebble" }

func (x *pebbleIndex) insert(key int64) {
	_ = x.db.Set(encodeKey(key), []byte("v"), pebble.NoSync)
}

func (x *pebbleIndex) get(key int64) bool {
	_, closer, err := x.db.Get(encodeKey(key))
	if err != nil {
		return false
	}
	closer.Close()
	return true
}

func (x *pebbleIndex) scan(start, end int64) int {
	iter, err := x.db.NewIter(&pebble.IterOptions{
		LowerBound: encodeKey(start),
		UpperBound: encodeKey(end),
	})
	if err != nil {
		return 0
	}
	count := 0
	for iter.First(); iter.Valid(); iter.Next() {
		count++
	}
	iter.Close()
	return count
}

func (x *pebbleIndex) Close() error {
	return x.db.Close()
}
