// Package combination enumerates the cartesian product of ordered groups.
package combination

// Generate returns every combination that takes exactly one element from each
// group, in group order. Enumeration is lexicographic: the first group varies
// slowest and the last group varies fastest, so [[a b] [1 2]] yields
// [a 1] [a 2] [b 1] [b 2].
//
// An empty groups slice yields a single empty combination. A group with no
// elements yields no combinations at all. Callers that need "at least one
// result" for other inputs must handle that themselves.
//
// The result has Count(groups) entries; there is no built-in cap.
func Generate[T any](groups [][]T) [][]T {
	result := [][]T{{}}
	for _, group := range groups {
		next := make([][]T, 0, len(result)*len(group))
		for _, prefix := range result {
			for _, item := range group {
				combo := make([]T, len(prefix), len(groups))
				copy(combo, prefix)
				next = append(next, append(combo, item))
			}
		}
		result = next
	}
	return result
}

// Count returns the number of combinations Generate would produce without
// building them.
func Count[T any](groups [][]T) int {
	n := 1
	for _, group := range groups {
		n *= len(group)
		if n == 0 {
			return 0
		}
	}
	return n
}
