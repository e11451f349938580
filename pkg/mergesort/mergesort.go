// Package mergesort provides a stable, allocation-based top-down merge sort.
package mergesort

// Sort returns a new slice holding the elements of s ordered by less.
// Equal elements keep their relative order. s itself is not modified.
func Sort[T any](s []T, less func(a, b T) bool) []T {
	out := make([]T, len(s))
	copy(out, s)
	if len(out) <= 1 {
		return out
	}

	buf := make([]T, len(out))
	sortInto(out, buf, less)
	return out
}

// sortInto sorts s in place using buf (same length) as scratch space.
func sortInto[T any](s, buf []T, less func(a, b T) bool) {
	if len(s) <= 1 {
		return
	}

	mid := len(s) / 2
	sortInto(s[:mid], buf[:mid], less)
	sortInto(s[mid:], buf[mid:], less)

	merge(s[:mid], s[mid:], buf[:len(s)], less)
	copy(s, buf[:len(s)])
}

// merge writes the merged contents of left and right into dst.
// On ties the left element wins, which keeps the sort stable.
func merge[T any](left, right, dst []T, less func(a, b T) bool) {
	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		if less(right[j], left[i]) {
			dst[k] = right[j]
			j++
		} else {
			dst[k] = left[i]
			i++
		}
		k++
	}
	k += copy(dst[k:], left[i:])
	copy(dst[k:], right[j:])
}
