package nx

// compareKeys implements the archive's total order on byte strings:
// compare the shared prefix as unsigned bytes first, and only fall back
// to length (shorter first) when that prefix is equal. This is ordinary
// unsigned byte-lexicographic order, the same order bytes.Compare gives:
// a longer string whose prefix sorts lower still sorts lower than a
// shorter one whose prefix sorts higher. Children in the archive are stored pre-sorted under
// exactly this comparator, so binary search must use it verbatim.
func compareKeys(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

// binarySearchChild finds the child named key among the contiguous range
// [first, first+count) of the node table. A plain bounded loop rather
// than a goto-driven bisection, with identical behavior and no labels.
func binarySearchChild(a *Archive, first uint32, count uint16, key []byte) Node {
	lo, hi := 0, int(count)
	for lo < hi {
		mid := lo + (hi-lo)/2
		candidate := a.node(first + uint32(mid))
		cmp := compareKeys(a.stringBytes(candidate.nameIndex()), key)
		switch {
		case cmp == 0:
			return candidate
		case cmp < 0:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return Node{}
}
