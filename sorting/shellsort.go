package sorting

// GapSequence selects the gap run used by Shellsort. The sequences are
// truncated to the slice length at run time, so all of them are usable
// for any input size.
type GapSequence int

const (
	Ciura01     GapSequence = iota // Ciura 2001
	Tokuda92                       // Tokuda 1992
	Sedgewick86                    // Sedgewick 1986
)

var (
	ciura01Seq     = []int{701, 301, 132, 57, 23, 10, 4, 1}
	tokuda92Seq    = []int{1182, 525, 233, 103, 46, 20, 9, 4, 1}
	sedgewick86Seq = []int{1073, 281, 77, 23, 8, 1}
)

func (g GapSequence) gaps() []int {
	switch g {
	case Tokuda92:
		return tokuda92Seq
	case Sedgewick86:
		return sedgewick86Seq
	default:
		return ciura01Seq
	}
}

// Shellsort sorts s in place using the given gap sequence. It is not
// stable, uses O(1) space, and generally beats a plain insertion sort on
// small and medium inputs.
func Shellsort[T any](s []T, less LessFunc[T], seq GapSequence) {
	for _, g := range seq.gaps() {
		gapPass(s, less, g)
	}
}

// ShellsortOrdered is Shellsort for types ordered by '<', using the
// default Ciura 2001 sequence.
func ShellsortOrdered[T Ordered](s []T) {
	Shellsort(s, func(a, b T) bool { return a < b }, Ciura01)
}

// one gapped insertion sweep
func gapPass[T any](s []T, less LessFunc[T], g int) {
	for i := g; i < len(s); i++ {
		tmp := s[i]
		j := i
		for ; j >= g && less(tmp, s[j-g]); j -= g {
			s[j] = s[j-g]
		}
		s[j] = tmp
	}
}
