// Package sorting provides in-place sorts over slices with a caller
// supplied ordering predicate: a stable insertion sort for short inputs,
// a shellsort with selectable gap sequences, and a block merge sort that
// needs no work buffer.
package sorting

// LessFunc reports whether a sorts strictly before b.
type LessFunc[T any] func(a, b T) bool

// Ordered is the set of types for which the '<' operator works.
type Ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 | ~string
}

// Insertionsort sorts s in place. It is stable, uses O(1) space and runs
// in O(n) time on sorted input and O(n^2) in the average and worst case;
// suitable for short slices.
func Insertionsort[T any](s []T, less LessFunc[T]) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && less(s[j], s[j-1]); j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
}

// InsertionsortOrdered is Insertionsort for types ordered by '<'.
func InsertionsortOrdered[T Ordered](s []T) {
	Insertionsort(s, func(a, b T) bool { return a < b })
}
