package sorting

// gap run for the block-local shellsort; blocks span 16 to 31 elements
var blockGaps = []int{23, 10, 4, 1}

// Blocksort sorts s in place. It is a block merge sort: O(1) space,
// O(n) best case and O(n log n) average and worst case. The slice
// is carved into 16-31 element blocks that are sorted with a short
// shellsort run, then neighbouring runs are combined with rotations and
// buffer-free merges. Suitable when merge sort behaviour is wanted but a
// scratch buffer is not available.
func Blocksort[T any](s []T, less LessFunc[T]) {
	n := len(s)
	if n < 2 {
		return
	}
	if n < 32 {
		for _, g := range blockGaps {
			gapPass(s, less, g)
		}
		return
	}

	// previous power of two at or below n; scaling block boundaries by
	// n/pow2 spreads the remainder across all blocks instead of leaving
	// a short tail block
	pow2 := prevPow2(n)
	scale := float64(n) / float64(pow2)

	for b := 0; b < pow2; b += 16 {
		start := int(float64(b) * scale)
		end := int(float64(b+16) * scale)
		for _, g := range blockGaps {
			gapPass(s[start:end], less, g)
		}
	}

	// combine increasingly long runs until a single sorted run remains
	for length := 16; length < pow2; length *= 2 {
		for merge := 0; merge < pow2; merge += length * 2 {
			start := int(float64(merge) * scale)
			mid := int(float64(merge+length) * scale)
			end := int(float64(merge+length*2) * scale)

			if less(s[end-1], s[start]) {
				// the runs are entirely out of order; swapping them
				// wholesale is enough
				rotate(s[start:end], mid-start)
			} else if less(s[mid], s[mid-1]) {
				inplaceMerge(s[start:end], mid-start, less)
			}
		}
	}
}

// BlocksortOrdered is Blocksort for types ordered by '<'.
func BlocksortOrdered[T Ordered](s []T) {
	Blocksort(s, func(a, b T) bool { return a < b })
}

func prevPow2(n int) int {
	p := 1
	for p<<1 <= n {
		p <<= 1
	}
	return p
}

// rotate the slice left by k positions with the three-reversal trick
func rotate[T any](s []T, k int) {
	if k <= 0 || k >= len(s) {
		return
	}
	reverse(s[:k])
	reverse(s[k:])
	reverse(s)
}

func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// index of the first element not less than x
func lowerBound[T any](s []T, x T, less LessFunc[T]) int {
	lo, hi := 0, len(s)
	for lo < hi {
		m := int(uint(lo+hi) >> 1)
		if less(s[m], x) {
			lo = m + 1
		} else {
			hi = m
		}
	}
	return lo
}

// index of the first element greater than x
func upperBound[T any](s []T, x T, less LessFunc[T]) int {
	lo, hi := 0, len(s)
	for lo < hi {
		m := int(uint(lo+hi) >> 1)
		if less(x, s[m]) {
			hi = m
		} else {
			lo = m + 1
		}
	}
	return lo
}

// inplaceMerge stably merges the two sorted runs s[:mid] and s[mid:]
// using rotations instead of a work buffer. Each level of the recursion
// halves the longer run, so the depth is O(log len(s)).
func inplaceMerge[T any](s []T, mid int, less LessFunc[T]) {
	n := len(s)
	if mid == 0 || mid == n {
		return
	}
	if n == 2 {
		if less(s[1], s[0]) {
			s[0], s[1] = s[1], s[0]
		}
		return
	}

	var cut1, cut2 int
	if mid > n-mid {
		cut1 = mid / 2
		cut2 = mid + lowerBound(s[mid:], s[cut1], less)
	} else {
		cut2 = mid + (n-mid)/2
		cut1 = upperBound(s[:mid], s[cut2], less)
	}

	rotate(s[cut1:cut2], mid-cut1)
	newMid := cut1 + (cut2 - mid)

	inplaceMerge(s[:newMid], cut1, less)
	inplaceMerge(s[newMid:], cut2-newMid, less)
}
